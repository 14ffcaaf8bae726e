//go:build !ebiten

package ui

import "fuelcell/internal/core"

// RunControl is the play/pause state the HUD button toggles.
type RunControl interface {
	TogglePause() bool
	RunLabel() string
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim, RunControl, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
