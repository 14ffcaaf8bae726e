package app

import (
	"fuelcell/internal/core"
	"fuelcell/internal/sims/fuelcell"
	"fuelcell/internal/ui"
)

type stateSource interface {
	State() fuelcell.SimulationState
}

// DebugSource exposes the lifecycle summary of sims that publish fuel cell
// state. Other sims yield no summary.
func DebugSource(sim core.Sim) ui.DebugSource {
	return func() (ui.DebugInfo, bool) {
		src, ok := sim.(stateSource)
		if !ok {
			return ui.DebugInfo{}, false
		}
		st := src.State()
		return ui.DebugInfo{
			Tick:           st.Tick,
			Pending:        len(st.Queue.Pending),
			Admitted:       st.Queue.Admitted,
			HasAdmitted:    st.Queue.HasAdmitted,
			ReactionLocked: st.ReactionInProgress,
			OxygenActive:   st.Oxygen != nil,
			Water:          len(st.Water),
			Markers:        len(st.Markers),
		}, true
	}
}
