package fuelcell

import (
	"math"
	"time"

	"fuelcell/internal/core"
)

// World runs the fuel cell animation: hydrogen pairs are admitted one at a
// time, ionize while crossing the electrolyte, meet an oxygen particle and
// leave as water.
type World struct {
	cfg   Config
	geom  Geometry
	state SimulationState
	speed float64

	rng    *core.RNG
	events []Event
}

// New returns a fuel cell simulation on a surface of the given size using
// defaults for everything else.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World configured from the provided options. The
// world is reset with the configured seed and ready to step.
func NewWithConfig(cfg Config) *World {
	speed := cfg.Speed
	if !finite(speed) {
		speed = 1
	}
	if speed < 0 {
		speed = 0
	}
	cfg.Speed = speed
	w := &World{
		cfg:   cfg,
		geom:  NewGeometry(),
		speed: speed,
	}
	w.Reset(cfg.Seed)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "fuelcell" }

// Size reports the drawing surface dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Geometry returns the cell layout.
func (w *World) Geometry() Geometry { return w.geom }

// State returns a copy of the current simulation state.
func (w *World) State() SimulationState { return w.state.Clone() }

// Events lists the transitions of the most recent Step. The slice is reused
// by the next Step.
func (w *World) Events() []Event { return w.events }

// Speed returns the global speed multiplier.
func (w *World) Speed() float64 { return w.speed }

// SetSpeed changes the global speed multiplier. Negative values are clamped
// to zero; NaN and infinities are ignored.
func (w *World) SetSpeed(v float64) {
	if !finite(v) {
		return
	}
	if v < 0 {
		v = 0
	}
	w.speed = v
}

// Reset clears every entity and restarts the admission timer. The seed is
// used as given, zero included, and becomes the configured seed.
func (w *World) Reset(seed int64) {
	w.cfg.Seed = seed
	w.rng = core.NewRNG(seed)
	p := w.cfg.Params
	w.state = SimulationState{
		NextPairID:    1,
		LastAdmission: p.FirstPairDelay() - p.Gap(),
		Indicator:     Indicator{On: true},
	}
	w.events = w.events[:0]
}

// Step advances the world by one tick: indicator, admissions, then motion and
// reactions. dt is the wall time since the previous tick and drives the
// admission gap and the water fade; displacement depends only on the speed
// multiplier.
func (w *World) Step(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	st := &w.state
	st.Now += dt
	st.Tick++
	w.events = w.events[:0]

	w.tickIndicator()

	w.spawnMarkers()
	w.admitPair()
	w.admitOxygen()

	w.updateMarkers()
	w.updateAtoms()
	w.updateOxygen()
	w.updateWater()
}

func (w *World) tickIndicator() {
	every := w.cfg.Params.BlinkTicks
	if every <= 0 {
		return
	}
	if w.state.Tick%every == 0 {
		w.state.Indicator.On = !w.state.Indicator.On
	}
}

func (w *World) emit(kind EventKind, pairID int, x, y float64) {
	w.events = append(w.events, Event{
		Kind:   kind,
		Tick:   w.state.Tick,
		At:     w.state.Now,
		PairID: pairID,
		X:      x,
		Y:      y,
	})
}

func init() {
	core.Register("fuelcell", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
