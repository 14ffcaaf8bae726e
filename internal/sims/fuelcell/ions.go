package fuelcell

// spawnMarkers occasionally starts a minus marker at the bottom of the
// electrolyte's left edge and a plus marker at the top of its right edge.
func (w *World) spawnMarkers() {
	p := w.cfg.Params
	e := w.geom.Electrolyte
	st := &w.state
	if w.rng.Chance(p.IonSpawnChance) {
		st.Markers = append(st.Markers, IonMarker{
			X:     e.X,
			Y:     e.Bottom(),
			Speed: w.rng.Range(p.IonSpeedMin, p.IonSpeedMax),
			Sign:  IonMinus,
		})
	}
	if w.rng.Chance(p.IonSpawnChance) {
		st.Markers = append(st.Markers, IonMarker{
			X:     e.Right(),
			Y:     e.Y,
			Speed: w.rng.Range(p.IonSpeedMin, p.IonSpeedMax),
			Sign:  IonPlus,
		})
	}
}

func (w *World) updateMarkers() {
	st := &w.state
	e := w.geom.Electrolyte
	drift := w.cfg.Params.IonDrift
	kept := st.Markers[:0]
	for _, m := range st.Markers {
		m = moveMarker(m, e, drift, w.speed)
		if m.Progress >= 1 {
			continue
		}
		kept = append(kept, m)
	}
	st.Markers = kept
}
