package fuelcell

import "time"

// moveAtom integrates one tick of horizontal motion. Atoms still travelling
// to the electrolyte get the pair multiplier; ionized atoms do not.
func moveAtom(a HydrogenAtom, p Params, speed float64) HydrogenAtom {
	if a.Ionized {
		a.X += a.VX * speed
		return a
	}
	a.X += a.VX * speed * p.PairHorizontalMultiplier
	return a
}

// moveOxygen integrates oxygen motion and clamps it at minX.
func moveOxygen(o Oxygen, minX, speed float64) Oxygen {
	o.X += o.VX * speed
	if o.X < minX {
		o.X = minX
		o.VX = 0
	}
	return o
}

func moveWater(w Water, speed float64) Water {
	w.X += w.VX * speed
	return w
}

// moveMarker advances a decorative marker along its edge of the electrolyte.
// Minus markers rise from the bottom, plus markers descend from the top.
func moveMarker(m IonMarker, electrolyte Rect, drift, speed float64) IonMarker {
	m.Progress += m.Speed * speed * drift
	if m.Sign == IonMinus {
		m.Y = electrolyte.Bottom() - m.Progress*electrolyte.H
	} else {
		m.Y = electrolyte.Y + m.Progress*electrolyte.H
	}
	return m
}

// fadeOpacity is the linear wall-clock fade: 1 at start, 0 after fade.
func fadeOpacity(elapsed, fade time.Duration) float64 {
	if fade <= 0 {
		return 0
	}
	o := 1 - float64(elapsed)/float64(fade)
	if o < 0 {
		return 0
	}
	if o > 1 {
		return 1
	}
	return o
}
