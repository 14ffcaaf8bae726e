package fuelcell

import (
	"log"
	"slices"
)

// admitPair spawns and admits a new pair once the queue has drained and the
// minimum gap since the previous admission has elapsed. The reaction lock is
// deliberately not consulted: a pair may start while a droplet still fades.
func (w *World) admitPair() {
	st := &w.state
	p := w.cfg.Params
	if !st.Queue.Empty() {
		return
	}
	if st.Now-st.LastAdmission < p.Gap() {
		return
	}
	st.LastAdmission = st.Now

	id := st.NextPairID
	st.NextPairID++
	st.Queue.Admit(id)

	x := w.geom.SpawnX()
	mid := w.geom.Anode.MidY()
	for _, y := range [2]float64{mid - p.PairGapY, mid + p.PairGapY} {
		st.Atoms = append(st.Atoms, HydrogenAtom{
			X:      x,
			Y:      y,
			VX:     p.BaseSpeed,
			PairID: id,
			Label:  labelHydrogen,
		})
	}
	w.emit(EventPairAdmitted, id, x, mid)
}

// stepAtom applies one tick of motion to an admitted atom followed by the
// transition its pre-move state allows, and reports the transition that fired.
func stepAtom(a HydrogenAtom, ionizeX, stopX float64, p Params, speed float64) (HydrogenAtom, EventKind) {
	a = moveAtom(a, p, speed)
	if !a.Ionized {
		if a.X+p.Radius >= ionizeX {
			a.Ionized = true
			a.Label = labelProton
			a.VX = p.BaseSpeed * p.IonizedBoost
			return a, EventIonized
		}
		return a, 0
	}
	if a.X >= stopX {
		wasStopped := a.Stopped
		a.X = stopX
		a.VX = 0
		a.Stopped = true
		if !wasStopped {
			return a, EventStopped
		}
	}
	return a, 0
}

// updateAtoms moves the admitted pair. Every other atom stays frozen.
func (w *World) updateAtoms() {
	st := &w.state
	p := w.cfg.Params
	ionizeX := w.geom.IonizeX()
	stopX := w.geom.StopX(p)
	limit := float64(w.cfg.Width) + p.CleanupMargin

	var stray []int
	for i := range st.Atoms {
		a := &st.Atoms[i]
		if st.Queue.IsAdmitted(a.PairID) {
			next, kind := stepAtom(*a, ionizeX, stopX, p, w.speed)
			*a = next
			if kind != 0 {
				w.emit(kind, a.PairID, a.X, a.Y)
			}
		}
		if a.X > limit && !slices.Contains(stray, a.PairID) {
			stray = append(stray, a.PairID)
		}
	}
	for _, id := range stray {
		w.discardPair(id)
	}
}

// discardPair drops a pair that left the surface. Both atoms go so the pair
// invariant holds, and an admission or oxygen bound to it is released so the
// cell keeps running.
func (w *World) discardPair(id int) {
	st := &w.state
	log.Printf("fuelcell: discarding pair %d beyond surface bound", id)
	st.removePair(id)
	if st.Queue.IsAdmitted(id) {
		st.Queue.Clear()
	}
	if st.Oxygen != nil && st.Oxygen.TargetPairID == id {
		st.Oxygen = nil
	}
	w.emit(EventPairDiscarded, id, 0, 0)
}
