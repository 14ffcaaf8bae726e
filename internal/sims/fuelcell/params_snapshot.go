package fuelcell

import (
	"strconv"

	"fuelcell/internal/core"
)

const (
	speedMin  = 0
	speedMax  = 3
	speedStep = 0.1

	gapMin  = 250
	gapMax  = 10000
	gapStep = 250
)

func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Run",
			Params: []core.Parameter{
				floatParam("speed", "Speed", w.speed),
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Hydrogen",
			Params: []core.Parameter{
				intParam("gap_ms", "Pair gap (ms)", params.GapMs),
				intParam("first_pair_delay_ms", "First pair delay (ms)", params.FirstPairDelayMs),
				floatParam("pair_gap_y", "Pair spacing", params.PairGapY),
				floatParam("radius", "Atom radius", params.Radius),
				floatParam("base_speed", "Base speed", params.BaseSpeed),
				floatParam("pair_horizontal_multiplier", "Pair multiplier", params.PairHorizontalMultiplier),
				floatParam("ionized_boost", "Ionized boost", params.IonizedBoost),
				floatParam("stop_inset", "Stop inset", params.StopInset),
			},
		},
		{
			Name: "Reaction",
			Params: []core.Parameter{
				floatParam("oxygen_base_speed", "Oxygen speed", params.OxygenBaseSpeed),
				floatParam("oxygen_stop_offset", "Oxygen stop offset", params.OxygenStopOffset),
				floatParam("reaction_distance", "Reaction distance", params.ReactionDistance),
				floatParam("water_speed", "Water speed", params.WaterSpeed),
				intParam("water_fade_ms", "Water fade (ms)", params.WaterFadeMs),
			},
		},
		{
			Name: "Decoration",
			Params: []core.Parameter{
				floatParam("ion_spawn_chance", "Ion spawn chance", params.IonSpawnChance),
				floatParam("ion_drift", "Ion drift", params.IonDrift),
				intParam("blink_ticks", "LED blink ticks", params.BlinkTicks),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable tunables.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:    "speed",
			Label:  "Speed",
			Type:   core.ParamTypeFloat,
			Suffix: "x",
			Step:   speedStep,
			Min:    speedMin,
			Max:    speedMax,
			HasMin: true,
			HasMax: true,
		},
		{
			Key:    "gap_ms",
			Label:  "Pair gap (ms)",
			Type:   core.ParamTypeInt,
			Step:   gapStep,
			Min:    gapMin,
			Max:    gapMax,
			HasMin: true,
			HasMax: true,
		},
	}
}

// SetFloatParameter updates a float tunable, clamping to its control bounds.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "speed":
		if !finite(value) {
			return false
		}
		if value < speedMin {
			value = speedMin
		}
		if value > speedMax {
			value = speedMax
		}
		w.SetSpeed(value)
		return true
	}
	return false
}

// SetIntParameter updates an integer tunable, clamping to its control bounds.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "gap_ms":
		if value < gapMin {
			value = gapMin
		}
		if value > gapMax {
			value = gapMax
		}
		w.cfg.Params.GapMs = value
		if w.cfg.Params.FirstPairDelayMs > value {
			w.cfg.Params.FirstPairDelayMs = value
		}
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
