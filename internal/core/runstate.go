package core

// RunState gates whether the driver advances the simulation.
type RunState struct {
	running bool
}

// NewRunState returns a RunState that starts running.
func NewRunState() *RunState {
	return &RunState{running: true}
}

// Running reports whether ticks should be scheduled.
func (r *RunState) Running() bool { return r.running }

// Set changes the run flag and reports whether it changed.
func (r *RunState) Set(running bool) bool {
	if r.running == running {
		return false
	}
	r.running = running
	return true
}

// Toggle flips the run flag and returns the new value.
func (r *RunState) Toggle() bool {
	r.running = !r.running
	return r.running
}

// Label is the caption for the control that toggles the state.
func (r *RunState) Label() string {
	if r.running {
		return "Pause"
	}
	return "Play"
}
