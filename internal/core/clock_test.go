package core

import (
	"testing"
	"time"
)

func TestFrameClockDeltas(t *testing.T) {
	clock := NewManualClock(time.Unix(100, 0))
	fc := NewFrameClock(clock, 60)

	if d := fc.Delta(); d != 0 {
		t.Fatalf("first delta %v, want 0", d)
	}
	clock.Advance(16 * time.Millisecond)
	if d := fc.Delta(); d != 16*time.Millisecond {
		t.Fatalf("delta %v, want 16ms", d)
	}
	clock.Advance(time.Second)
	if d := fc.Delta(); d != 4*fc.Step() {
		t.Fatalf("long stall should be capped at %v, got %v", 4*fc.Step(), d)
	}
}

func TestFrameClockResumeDropsPausedTime(t *testing.T) {
	clock := NewManualClock(time.Unix(100, 0))
	fc := NewFrameClock(clock, 60)
	fc.Delta()

	clock.Advance(10 * time.Second)
	fc.Resume()
	if d := fc.Delta(); d != 0 {
		t.Fatalf("delta after resume %v, want 0", d)
	}
	clock.Advance(5 * time.Millisecond)
	if d := fc.Delta(); d != 5*time.Millisecond {
		t.Fatalf("delta %v, want 5ms", d)
	}
}

func TestFrameClockDefaultsTPS(t *testing.T) {
	fc := NewFrameClock(nil, 0)
	if fc.Step() != time.Second/60 {
		t.Fatalf("step %v", fc.Step())
	}
}

func TestRunStateLabel(t *testing.T) {
	rs := NewRunState()
	if !rs.Running() || rs.Label() != "Pause" {
		t.Fatalf("new run state should be running with Pause label, got %q", rs.Label())
	}
	if rs.Toggle() || rs.Label() != "Play" {
		t.Fatalf("toggled run state should be paused with Play label, got %q", rs.Label())
	}
	if rs.Set(false) {
		t.Fatal("setting the same value should report no change")
	}
	if !rs.Set(true) || !rs.Running() {
		t.Fatal("set should resume")
	}
}

func TestShapeAlpha(t *testing.T) {
	cases := []struct {
		fade float64
		want float64
	}{
		{0, 1},
		{-1, 1},
		{0.25, 0.75},
		{1, 0},
		{3, 0},
	}
	for _, c := range cases {
		if got := (Shape{Fade: c.fade}).Alpha(); got != c.want {
			t.Fatalf("fade %.2f: alpha %.2f, want %.2f", c.fade, got, c.want)
		}
	}
}

func TestRNGChanceBounds(t *testing.T) {
	rng := NewRNG(1)
	for i := 0; i < 100; i++ {
		if rng.Chance(0) {
			t.Fatal("zero chance fired")
		}
		if !rng.Chance(1) {
			t.Fatal("certain chance missed")
		}
		if v := rng.Range(2, 3); v < 2 || v >= 3 {
			t.Fatalf("range value %.3f out of bounds", v)
		}
	}
	if rng.Range(5, 5) != 5 {
		t.Fatal("degenerate range should return min")
	}
}
