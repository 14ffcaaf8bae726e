package fuelcell

import (
	"math"
	"testing"
	"time"
)

func TestFromMapOverridesAndIgnoresInvalid(t *testing.T) {
	cfg := FromMap(map[string]string{
		"speed":             "2.5",
		"gap_ms":            "1200",
		"reaction_distance": "55",
		"water_fade_ms":     "0",
		"radius":            "-3",
		"base_speed":        "fast",
		"seed":              "9",
	})
	def := DefaultConfig()

	if cfg.Speed != 2.5 {
		t.Fatalf("speed %.2f, want 2.5", cfg.Speed)
	}
	if cfg.Params.GapMs != 1200 || cfg.Params.Gap() != 1200*time.Millisecond {
		t.Fatalf("gap %d", cfg.Params.GapMs)
	}
	if cfg.Params.ReactionDistance != 55 {
		t.Fatalf("reaction distance %.1f", cfg.Params.ReactionDistance)
	}
	if cfg.Params.WaterFadeMs != def.Params.WaterFadeMs {
		t.Fatal("zero fade duration should be rejected")
	}
	if cfg.Params.Radius != def.Params.Radius {
		t.Fatal("negative radius should be rejected")
	}
	if cfg.Params.BaseSpeed != def.Params.BaseSpeed {
		t.Fatal("unparseable base speed should be ignored")
	}
	if cfg.Seed != 9 {
		t.Fatalf("seed %d", cfg.Seed)
	}
}

func TestFromMapKeepsFirstDelayWithinGap(t *testing.T) {
	cfg := FromMap(map[string]string{"gap_ms": "100"})
	if cfg.Params.FirstPairDelayMs != 100 {
		t.Fatalf("first pair delay %d should clamp to the gap", cfg.Params.FirstPairDelayMs)
	}
}

func TestFromMapNil(t *testing.T) {
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield defaults")
	}
}

func TestNegativeSpeedClampsToZero(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Speed = -1
	w := NewWithConfig(cfg)
	if w.Speed() != 0 {
		t.Fatalf("speed %.2f, want 0", w.Speed())
	}
}

func TestNonFiniteSpeedRejected(t *testing.T) {
	w := NewWithConfig(quietConfig())
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if w.SetFloatParameter("speed", v) {
			t.Fatalf("speed %v accepted", v)
		}
		w.SetSpeed(v)
	}
	if w.Speed() != 1 {
		t.Fatalf("speed %v, want 1", w.Speed())
	}

	admitted := 0
	for i := 0; i < 2000; i++ {
		w.Step(frame)
		if hasEvent(w.Events(), EventPairAdmitted) {
			admitted++
		}
	}
	if admitted < 2 {
		t.Fatalf("%d pairs admitted in 2000 ticks, want at least 2", admitted)
	}
	for _, a := range w.State().Atoms {
		if !finite(a.X) || !finite(a.Y) {
			t.Fatalf("atom %+v has a non-finite position", a)
		}
	}

	cfg := quietConfig()
	cfg.Speed = math.NaN()
	if got := NewWithConfig(cfg).Speed(); got != 1 {
		t.Fatalf("NaN config speed became %v, want 1", got)
	}
	for _, raw := range []string{"NaN", "Inf", "-Inf"} {
		if got := FromMap(map[string]string{"speed": raw, "radius": raw}); got != DefaultConfig() {
			t.Fatalf("%s should be ignored, got speed %v radius %v", raw, got.Speed, got.Params.Radius)
		}
	}
}

func TestResetHonorsZeroSeed(t *testing.T) {
	cfg := DefaultConfig()
	w := NewWithConfig(cfg)
	if w.Config().Seed != cfg.Seed {
		t.Fatalf("initial seed %d, want %d", w.Config().Seed, cfg.Seed)
	}
	w.Reset(0)
	if w.Config().Seed != 0 {
		t.Fatalf("seed after Reset(0) is %d", w.Config().Seed)
	}
	if p, _ := w.Parameters().Lookup("seed"); p.Value != "0" {
		t.Fatalf("snapshot seed %q", p.Value)
	}
}

func TestParameterSetters(t *testing.T) {
	w := NewWithConfig(DefaultConfig())

	if !w.SetFloatParameter("speed", 2) || w.Speed() != 2 {
		t.Fatalf("speed setter failed, speed %.2f", w.Speed())
	}
	if !w.SetFloatParameter("speed", 9) || w.Speed() != speedMax {
		t.Fatalf("speed should clamp to %v, got %.2f", speedMax, w.Speed())
	}
	if w.SetFloatParameter("unknown", 1) {
		t.Fatal("unknown key should be rejected")
	}
	if !w.SetIntParameter("gap_ms", 50) || w.Config().Params.GapMs != gapMin {
		t.Fatalf("gap should clamp to %d, got %d", gapMin, w.Config().Params.GapMs)
	}
	if w.Config().Params.FirstPairDelayMs > gapMin {
		t.Fatal("first pair delay should not exceed the gap")
	}

	param, ok := w.Parameters().Lookup("speed")
	if !ok || param.Value != "3" {
		t.Fatalf("snapshot speed %q ok=%v", param.Value, ok)
	}

	var speedControl bool
	for _, ctrl := range w.ParameterControls() {
		if ctrl.Key == "speed" {
			speedControl = true
			if ctrl.Suffix != "x" || !ctrl.HasMin || ctrl.Min != 0 {
				t.Fatalf("unexpected speed control %+v", ctrl)
			}
		}
	}
	if !speedControl {
		t.Fatal("speed control missing")
	}
}
