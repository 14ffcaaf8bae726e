package fuelcell

import "math"

// admitOxygen spawns the single oxygen particle once both atoms of the
// admitted pair are ionized and no earlier reaction is still fading.
func (w *World) admitOxygen() {
	st := &w.state
	if st.Oxygen != nil || st.ReactionInProgress || !st.Queue.HasAdmitted {
		return
	}
	target := st.Queue.Admitted
	if st.countIonized(target) < 2 {
		return
	}
	st.Oxygen = &Oxygen{
		X:            w.geom.OxygenSpawnX(),
		Y:            w.geom.Cathode.MidY(),
		VX:           -w.cfg.Params.OxygenBaseSpeed,
		TargetPairID: target,
	}
	w.emit(EventOxygenSpawned, target, st.Oxygen.X, st.Oxygen.Y)
}

// reactionSite returns the midpoint of the target pair once both atoms are
// ionized and parked at the stop boundary.
func (s *SimulationState) reactionSite(pairID int) (x, y float64, ok bool) {
	n := 0
	for _, i := range s.PairAtoms(pairID) {
		a := s.Atoms[i]
		if !a.Ionized || !a.Stopped {
			continue
		}
		x += a.X
		y += a.Y
		n++
		if n == 2 {
			return x / 2, y / 2, true
		}
	}
	return 0, 0, false
}

func (w *World) updateOxygen() {
	st := &w.state
	if st.Oxygen == nil {
		return
	}
	p := w.cfg.Params
	*st.Oxygen = moveOxygen(*st.Oxygen, w.geom.OxygenMinX(p), w.speed)

	mx, my, ok := st.reactionSite(st.Oxygen.TargetPairID)
	if !ok {
		return
	}
	if math.Abs(st.Oxygen.X-mx) < p.ReactionDistance && math.Abs(st.Oxygen.Y-my) < p.ReactionDistance {
		w.react(mx, my)
	}
}

// react consumes the target pair and the oxygen, leaves one droplet at the
// meeting point and unlocks admission of the next pair.
func (w *World) react(x, y float64) {
	st := &w.state
	target := st.Oxygen.TargetPairID
	st.removePair(target)
	st.Oxygen = nil
	st.Water = append(st.Water, Water{
		X:       x,
		Y:       y,
		VX:      w.cfg.Params.WaterSpeed,
		Opacity: 1,
	})
	st.ReactionInProgress = true
	st.Queue.Clear()
	w.emit(EventReaction, target, x, y)
}

// updateWater moves droplets towards the cathode face and fades them out on
// wall time once they reach it.
func (w *World) updateWater() {
	st := &w.state
	p := w.cfg.Params
	exitX := w.geom.WaterExitX()
	fade := p.WaterFade()

	kept := st.Water[:0]
	for _, drop := range st.Water {
		drop = moveWater(drop, w.speed)
		if drop.X >= exitX {
			if !drop.Fading {
				drop.Fading = true
				drop.FadeStart = st.Now
			}
			drop.Opacity = fadeOpacity(st.Now-drop.FadeStart, fade)
			if drop.Opacity <= p.WaterFadeEpsilon {
				st.ReactionInProgress = false
				w.emit(EventWaterFaded, 0, drop.X, drop.Y)
				continue
			}
		}
		kept = append(kept, drop)
	}
	st.Water = kept
}
