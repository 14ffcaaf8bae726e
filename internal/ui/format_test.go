package ui

import (
	"math"
	"slices"
	"testing"

	"fuelcell/internal/core"
)

func TestFormatControlValue(t *testing.T) {
	cases := []struct {
		ctrl  core.ParameterControl
		value float64
		want  string
	}{
		{core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.1, Suffix: "x"}, 1, "1.0x"},
		{core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.1, Suffix: "x"}, 0.26, "0.3x"},
		{core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.005}, 0.0126, "0.013"},
		{core.ParameterControl{Type: core.ParamTypeFloat}, 0.5, "0.50"},
		{core.ParameterControl{Type: core.ParamTypeInt, Step: 250}, 3000, "3000"},
		{core.ParameterControl{Type: core.ParamTypeInt, Suffix: "ms"}, 2999.6, "3000ms"},
	}
	for _, c := range cases {
		if got := FormatControlValue(c.ctrl, c.value); got != c.want {
			t.Fatalf("format %v with %+v = %q, want %q", c.value, c.ctrl, got, c.want)
		}
	}
}

func TestDebugLines(t *testing.T) {
	lines := DebugLines(DebugInfo{Tick: 12, Pending: 1, Admitted: 3, HasAdmitted: true, ReactionLocked: true, Water: 1})
	want := []string{
		"tick 12",
		"queue 1  admitted 3",
		"reaction fading  water 1",
		"oxygen false  ions 0",
	}
	if !slices.Equal(lines, want) {
		t.Fatalf("debug lines %q, want %q", lines, want)
	}
	idle := DebugLines(DebugInfo{})
	if idle[1] != "queue 0  admitted -" || idle[2] != "reaction free  water 0" {
		t.Fatalf("idle lines %q", idle)
	}
}

func TestStepValueSnapsAndClamps(t *testing.T) {
	speed := core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.1, Min: 0, Max: 3, HasMin: true, HasMax: true}
	if got := StepValue(speed, 0.26, 1); math.Abs(got-0.4) > 1e-9 {
		t.Fatalf("0.26 stepped up to %v, want 0.4", got)
	}
	if got := StepValue(speed, 2.95, 1); got != 3 {
		t.Fatalf("step past max gave %v", got)
	}
	if got := StepValue(speed, 0.04, -1); got != 0 {
		t.Fatalf("step below min gave %v", got)
	}
	gap := core.ParameterControl{Type: core.ParamTypeInt, Step: 250, Min: 500, HasMin: true}
	if got := StepValue(gap, 3000, -1); got != 2750 {
		t.Fatalf("gap step %v", got)
	}
	if got := StepValue(gap, 600, -1); got != 500 {
		t.Fatalf("gap floor %v", got)
	}
}

func TestCapitalize(t *testing.T) {
	for in, want := range map[string]string{"fuelcell": "Fuelcell", "élan": "Élan", "": "", "X": "X"} {
		if got := capitalize(in); got != want {
			t.Fatalf("capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
