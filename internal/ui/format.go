package ui

import (
	"math"
	"strconv"
	"unicode"
	"unicode/utf8"

	"fuelcell/internal/core"
)

// FormatControlValue renders a HUD readout. Float precision follows the
// control step; the control suffix is appended.
func FormatControlValue(ctrl core.ParameterControl, value float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(value))) + ctrl.Suffix
	}
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	var precision int
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	default:
		precision = 1
	}
	return strconv.FormatFloat(value, 'f', precision, 64) + ctrl.Suffix
}

// StepValue moves current one control step in direction. Floats snap to the
// step grid, ints round to whole numbers, and both stay within the control
// bounds.
func StepValue(ctrl core.ParameterControl, current float64, direction int) float64 {
	step := ctrl.Step
	if ctrl.Type == core.ParamTypeInt {
		step = math.Max(1, math.Round(step))
	} else if step <= 0 {
		step = 0.05
	}
	target := ctrl.Clamp(current + float64(direction)*step)
	if ctrl.Type == core.ParamTypeInt {
		return math.Round(target)
	}
	return ctrl.Clamp(math.Round(target/step) * step)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// DebugLines summarizes a debug snapshot as text lines for the overlay.
func DebugLines(info DebugInfo) []string {
	lock := "free"
	if info.ReactionLocked {
		lock = "fading"
	}
	admitted := "-"
	if info.HasAdmitted {
		admitted = strconv.Itoa(info.Admitted)
	}
	return []string{
		"tick " + strconv.Itoa(info.Tick),
		"queue " + strconv.Itoa(info.Pending) + "  admitted " + admitted,
		"reaction " + lock + "  water " + strconv.Itoa(info.Water),
		"oxygen " + strconv.FormatBool(info.OxygenActive) + "  ions " + strconv.Itoa(info.Markers),
	}
}

// DebugInfo is the lifecycle summary shown by the debug overlay.
type DebugInfo struct {
	Tick           int
	Pending        int
	Admitted       int
	HasAdmitted    bool
	ReactionLocked bool
	OxygenActive   bool
	Water          int
	Markers        int
}
