package fuelcell

import "time"

// EventKind identifies a lifecycle transition.
type EventKind uint8

const (
	EventPairAdmitted EventKind = iota + 1
	EventIonized
	EventStopped
	EventOxygenSpawned
	EventReaction
	EventWaterFaded
	EventPairDiscarded
)

var eventNames = map[EventKind]string{
	EventPairAdmitted:  "pair_admitted",
	EventIonized:       "ionized",
	EventStopped:       "stopped",
	EventOxygenSpawned: "oxygen_spawned",
	EventReaction:      "reaction",
	EventWaterFaded:    "water_faded",
	EventPairDiscarded: "pair_discarded",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event records one transition that happened during a tick.
type Event struct {
	Kind   EventKind
	Tick   int
	At     time.Duration
	PairID int
	X, Y   float64
}
