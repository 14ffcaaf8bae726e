package core

import "time"

// Clock supplies monotonic wall time to drivers.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the process clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a Clock that only moves when advanced explicitly.
type ManualClock struct {
	t time.Time
}

// NewManualClock returns a ManualClock anchored at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{t: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time { return c.t }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// FrameClock converts successive clock readings into per-tick wall deltas.
// Deltas are capped at a few ticks worth of time so a stalled host does not
// teleport entities.
type FrameClock struct {
	clock    Clock
	step     time.Duration
	maxDelta time.Duration
	last     time.Time
}

// NewFrameClock constructs a FrameClock targeting the given TPS.
func NewFrameClock(clock Clock, tps int) *FrameClock {
	if clock == nil {
		clock = SystemClock{}
	}
	fc := &FrameClock{clock: clock}
	fc.SetTPS(tps)
	return fc
}

// SetTPS changes the nominal tick rate. It is safe to call from the main loop.
func (f *FrameClock) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
	f.maxDelta = 4 * f.step
}

// Step reports the nominal duration of one tick.
func (f *FrameClock) Step() time.Duration { return f.step }

// Delta returns the wall time elapsed since the previous call. The first call
// after construction or Resume returns zero.
func (f *FrameClock) Delta() time.Duration {
	now := f.clock.Now()
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta < 0 {
		return 0
	}
	if delta > f.maxDelta {
		return f.maxDelta
	}
	return delta
}

// Resume forgets the previous reading so time spent paused is not reported.
func (f *FrameClock) Resume() {
	f.last = time.Time{}
}
