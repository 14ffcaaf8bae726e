package core

import "time"

// Size describes the dimensions of a simulation drawing surface.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a frame-stepped simulation must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	// Step advances the simulation by one tick. dt is the wall time that
	// elapsed since the previous tick.
	Step(dt time.Duration)
	Scene() Scene
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
