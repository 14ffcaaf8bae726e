package app

import (
	"testing"
	"time"

	"fuelcell/internal/core"
	"fuelcell/internal/sims/fuelcell"
)

type recorder struct {
	kinds []fuelcell.EventKind
}

func (r *recorder) Handle(events []fuelcell.Event) {
	for _, ev := range events {
		r.kinds = append(r.kinds, ev.Kind)
	}
}

func newTestRunner() (*Runner, *fuelcell.World, *core.ManualClock) {
	cfg := fuelcell.DefaultConfig()
	cfg.Params.FirstPairDelayMs = 0
	cfg.Params.IonSpawnChance = 0
	world := fuelcell.NewWithConfig(cfg)
	clock := core.NewManualClock(time.Unix(0, 0))
	return NewRunner(world, core.NewFrameClock(clock, 60), cfg.Seed), world, clock
}

func TestRunnerPauseFreezesAndResumeDoesNotJump(t *testing.T) {
	r, world, clock := newTestRunner()

	r.Tick()
	for i := 0; i < 10; i++ {
		clock.Advance(16 * time.Millisecond)
		r.Tick()
	}
	before := world.State()
	if before.Now != 160*time.Millisecond {
		t.Fatalf("sim time %v, want 160ms", before.Now)
	}

	if r.TogglePause() {
		t.Fatal("toggle should pause")
	}
	for i := 0; i < 100; i++ {
		clock.Advance(16 * time.Millisecond)
		if r.Tick() {
			t.Fatal("paused runner stepped")
		}
	}
	paused := world.State()
	if paused.Tick != before.Tick || paused.Now != before.Now {
		t.Fatalf("state moved while paused: tick %d->%d", before.Tick, paused.Tick)
	}
	if len(paused.Atoms) != len(before.Atoms) || paused.Atoms[0].X != before.Atoms[0].X {
		t.Fatal("atoms moved while paused")
	}

	if !r.TogglePause() {
		t.Fatal("toggle should resume")
	}
	r.Tick()
	resumed := world.State()
	if resumed.Now != before.Now {
		t.Fatalf("first tick after resume advanced time by %v", resumed.Now-before.Now)
	}
	clock.Advance(16 * time.Millisecond)
	r.Tick()
	if got := world.State().Now; got != before.Now+16*time.Millisecond {
		t.Fatalf("time after resume %v, want %v", got, before.Now+16*time.Millisecond)
	}
}

func TestRunnerStepOnceWhilePaused(t *testing.T) {
	r, world, _ := newTestRunner()
	r.SetRunning(false)
	if r.RunLabel() != "Play" {
		t.Fatalf("paused label %q, want Play", r.RunLabel())
	}
	r.StepOnce()
	if !r.Tick() {
		t.Fatal("single step did not run")
	}
	if r.Tick() {
		t.Fatal("single step ran twice")
	}
	st := world.State()
	if st.Tick != 1 || st.Now != r.Clock().Step() {
		t.Fatalf("single step advanced to tick %d at %v", st.Tick, st.Now)
	}
}

func TestRunnerForwardsEvents(t *testing.T) {
	r, _, clock := newTestRunner()
	rec := &recorder{}
	r.AddListener(rec)
	r.AddListener(nil)
	for i := 0; i < 300; i++ {
		r.Tick()
		clock.Advance(16 * time.Millisecond)
	}
	seen := map[fuelcell.EventKind]bool{}
	for _, k := range rec.kinds {
		seen[k] = true
	}
	for _, k := range []fuelcell.EventKind{fuelcell.EventPairAdmitted, fuelcell.EventIonized, fuelcell.EventReaction} {
		if !seen[k] {
			t.Fatalf("listener never saw %v", k)
		}
	}
}

func TestRunnerAdjustSpeed(t *testing.T) {
	r, world, _ := newTestRunner()
	for i := 0; i < 3; i++ {
		if _, ok := r.AdjustSpeed(1); !ok {
			t.Fatal("speed increase rejected")
		}
	}
	if got := world.Speed(); got < 1.299 || got > 1.301 {
		t.Fatalf("speed %.4f, want 1.3", got)
	}
	for i := 0; i < 40; i++ {
		r.AdjustSpeed(-1)
	}
	if world.Speed() != 0 {
		t.Fatalf("speed should clamp at 0, got %.4f", world.Speed())
	}
	for i := 0; i < 40; i++ {
		r.AdjustSpeed(1)
	}
	if world.Speed() != 3 {
		t.Fatalf("speed should clamp at 3, got %.4f", world.Speed())
	}
	if _, ok := r.AdjustSpeed(0); ok {
		t.Fatal("zero direction should be rejected")
	}
}

func TestRunnerResetRestartsCycle(t *testing.T) {
	r, world, clock := newTestRunner()
	for i := 0; i < 50; i++ {
		r.Tick()
		clock.Advance(16 * time.Millisecond)
	}
	r.Reset(7)
	if r.Seed() != 7 {
		t.Fatalf("seed %d, want 7", r.Seed())
	}
	st := world.State()
	if st.Tick != 0 || len(st.Atoms) != 0 {
		t.Fatalf("reset left tick %d atoms %d", st.Tick, len(st.Atoms))
	}
	clock.Advance(time.Second)
	r.Tick()
	if got := world.State().Now; got != 0 {
		t.Fatalf("first tick after reset advanced %v", got)
	}
}
