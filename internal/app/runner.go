package app

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"fuelcell/internal/core"
	"fuelcell/internal/sims/fuelcell"
)

// Listener receives the events emitted during each tick.
type Listener interface {
	Handle(events []fuelcell.Event)
}

type eventSource interface {
	Events() []fuelcell.Event
}

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// Runner owns the run/pause state and feeds wall deltas from a FrameClock
// into a simulation. Both the GUI and the terminal front ends drive it once
// per host tick.
type Runner struct {
	sim      core.Sim
	clock    *core.FrameClock
	run      *core.RunState
	seed     int64
	stepOnce bool

	listeners []Listener
}

// NewRunner wires sim to clock. The runner starts in the running state.
func NewRunner(sim core.Sim, clock *core.FrameClock, seed int64) *Runner {
	if clock == nil {
		clock = core.NewFrameClock(nil, 60)
	}
	return &Runner{sim: sim, clock: clock, run: core.NewRunState(), seed: seed}
}

// Sim returns the driven simulation.
func (r *Runner) Sim() core.Sim { return r.sim }

// Clock returns the frame clock.
func (r *Runner) Clock() *core.FrameClock { return r.clock }

// AddListener registers l for per-tick events.
func (r *Runner) AddListener(l Listener) {
	if l != nil {
		r.listeners = append(r.listeners, l)
	}
}

// Running reports whether the animation is playing.
func (r *Runner) Running() bool { return r.run.Running() }

// RunLabel returns the label for the play/pause control.
func (r *Runner) RunLabel() string { return r.run.Label() }

// TogglePause flips the run state and returns the new value.
func (r *Runner) TogglePause() bool {
	running := r.run.Toggle()
	if running {
		r.clock.Resume()
	}
	return running
}

// SetRunning forces the run state.
func (r *Runner) SetRunning(running bool) {
	if r.run.Set(running) && running {
		r.clock.Resume()
	}
}

// StepOnce schedules a single nominal-length tick while paused.
func (r *Runner) StepOnce() { r.stepOnce = true }

// Reset reseeds the simulation.
func (r *Runner) Reset(seed int64) {
	r.seed = seed
	r.sim.Reset(seed)
	r.stepOnce = false
	r.clock.Resume()
}

// Seed returns the seed of the last reset.
func (r *Runner) Seed() int64 { return r.seed }

// Tick advances the simulation when running, or by one nominal tick when a
// single step was requested. It reports whether the simulation stepped.
func (r *Runner) Tick() bool {
	if !r.run.Running() {
		if !r.stepOnce {
			return false
		}
		r.stepOnce = false
		r.step(r.clock.Step())
		return true
	}
	r.stepOnce = false
	r.step(r.clock.Delta())
	return true
}

func (r *Runner) step(dt time.Duration) {
	r.sim.Step(dt)
	if len(r.listeners) == 0 {
		return
	}
	src, ok := r.sim.(eventSource)
	if !ok {
		return
	}
	events := src.Events()
	if len(events) == 0 {
		return
	}
	for _, l := range r.listeners {
		l.Handle(events)
	}
}

// AdjustSpeed moves the speed control one step in direction, clamped to its
// bounds. It returns the new speed and whether the sim accepted it.
func (r *Runner) AdjustSpeed(direction int) (float64, bool) {
	ctrl, ok := r.control("speed")
	if !ok || direction == 0 {
		return 0, false
	}
	setter, ok := r.sim.(core.FloatParameterSetter)
	if !ok {
		return 0, false
	}
	current, ok := r.floatValue("speed")
	if !ok {
		return 0, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 0.1
	}
	target := ctrl.Clamp(current + float64(direction)*step)
	target = math.Round(target/step) * step
	target = ctrl.Clamp(target)
	if !setter.SetFloatParameter("speed", target) {
		return current, false
	}
	return target, true
}

// Speed returns the current speed readout, or 0 when the sim has none.
func (r *Runner) Speed() float64 {
	v, _ := r.floatValue("speed")
	return v
}

// Status summarizes the runner for status lines.
func (r *Runner) Status() string {
	state := "running"
	if !r.run.Running() {
		state = "paused"
	}
	return fmt.Sprintf("%s  speed %.1fx  seed %d", state, r.Speed(), r.seed)
}

func (r *Runner) control(key string) (core.ParameterControl, bool) {
	provider, ok := r.sim.(core.ParameterControlsProvider)
	if !ok {
		return core.ParameterControl{}, false
	}
	for _, ctrl := range provider.ParameterControls() {
		if ctrl.Key == key {
			return ctrl, true
		}
	}
	return core.ParameterControl{}, false
}

func (r *Runner) floatValue(key string) (float64, bool) {
	provider, ok := r.sim.(parameterProvider)
	if !ok {
		return 0, false
	}
	param, ok := provider.Parameters().Lookup(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(param.Value, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
