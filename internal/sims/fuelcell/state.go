package fuelcell

import (
	"slices"
	"time"
)

const (
	labelHydrogen = "H"
	labelProton   = "H+"
)

// HydrogenAtom is one member of a pair travelling from anode to cathode.
type HydrogenAtom struct {
	X, Y    float64
	VX      float64
	Ionized bool
	Stopped bool
	PairID  int
	Label   string
}

// Oxygen is the particle that enters from the cathode to meet a pair.
type Oxygen struct {
	X, Y         float64
	VX           float64
	TargetPairID int
}

// Water is a droplet produced by a reaction.
type Water struct {
	X, Y      float64
	VX        float64
	Opacity   float64
	Fading    bool
	FadeStart time.Duration
}

// IonSign distinguishes the two decorative marker streams.
type IonSign int8

const (
	IonMinus IonSign = -1
	IonPlus  IonSign = 1
)

// IonMarker is a decorative charge marker travelling along an electrolyte
// edge. Progress runs from 0 to 1.
type IonMarker struct {
	X, Y     float64
	Progress float64
	Speed    float64
	Sign     IonSign
}

// Indicator is the blinking LED fed by the cell.
type Indicator struct {
	On bool
}

// PairQueue tracks spawned pairs and which one may move.
type PairQueue struct {
	Pending     []int
	Admitted    int
	HasAdmitted bool
}

// Empty reports whether no pair is pending.
func (q *PairQueue) Empty() bool { return len(q.Pending) == 0 }

// Admit queues id and grants it the right to move.
func (q *PairQueue) Admit(id int) {
	q.Pending = append(q.Pending, id)
	q.Admitted = id
	q.HasAdmitted = true
}

// IsAdmitted reports whether id is the pair currently allowed to move.
func (q *PairQueue) IsAdmitted(id int) bool {
	return q.HasAdmitted && q.Admitted == id
}

// Clear drops all pending pairs and the admission.
func (q *PairQueue) Clear() {
	q.Pending = q.Pending[:0]
	q.Admitted = 0
	q.HasAdmitted = false
}

// SimulationState is everything that changes between ticks.
type SimulationState struct {
	Tick int
	// Now is the accumulated wall time fed through Step.
	Now           time.Duration
	LastAdmission time.Duration
	NextPairID    int

	Queue   PairQueue
	Atoms   []HydrogenAtom
	Oxygen  *Oxygen
	Water   []Water
	Markers []IonMarker

	ReactionInProgress bool
	Indicator          Indicator
}

// Clone returns a deep copy safe to keep across ticks.
func (s SimulationState) Clone() SimulationState {
	out := s
	out.Queue.Pending = slices.Clone(s.Queue.Pending)
	out.Atoms = slices.Clone(s.Atoms)
	out.Water = slices.Clone(s.Water)
	out.Markers = slices.Clone(s.Markers)
	if s.Oxygen != nil {
		o := *s.Oxygen
		out.Oxygen = &o
	}
	return out
}

// PairAtoms returns the indices of the atoms belonging to pairID.
func (s *SimulationState) PairAtoms(pairID int) []int {
	var idx []int
	for i := range s.Atoms {
		if s.Atoms[i].PairID == pairID {
			idx = append(idx, i)
		}
	}
	return idx
}

func (s *SimulationState) countIonized(pairID int) int {
	n := 0
	for _, i := range s.PairAtoms(pairID) {
		if s.Atoms[i].Ionized {
			n++
		}
	}
	return n
}

func (s *SimulationState) removePair(pairID int) {
	s.Atoms = slices.DeleteFunc(s.Atoms, func(a HydrogenAtom) bool {
		return a.PairID == pairID
	})
}
