package fuelcell

import (
	"strconv"
	"time"
)

// Params holds the tunable motion, timing and decoration constants.
type Params struct {
	GapMs            int
	FirstPairDelayMs int

	PairGapY                 float64
	Radius                   float64
	BaseSpeed                float64
	PairHorizontalMultiplier float64
	IonizedBoost             float64
	StopInset                float64
	CleanupMargin            float64

	OxygenBaseSpeed  float64
	OxygenStopOffset float64
	ReactionDistance float64

	WaterSpeed       float64
	WaterFadeMs      int
	WaterFadeEpsilon float64

	IonSpawnChance float64
	IonSpeedMin    float64
	IonSpeedMax    float64
	IonDrift       float64

	BlinkTicks int
}

// Config controls the fuel cell simulation surface and tunables.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Speed is the initial global speed multiplier.
	Speed float64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 500,
		Seed:   1337,
		Speed:  1.0,
		Params: Params{
			GapMs:                    3000,
			FirstPairDelayMs:         300,
			PairGapY:                 25,
			Radius:                   12,
			BaseSpeed:                1.2,
			PairHorizontalMultiplier: 1.5,
			IonizedBoost:             1.2,
			StopInset:                6,
			CleanupMargin:            80,
			OxygenBaseSpeed:          0.7,
			OxygenStopOffset:         10,
			ReactionDistance:         40,
			WaterSpeed:               2.0,
			WaterFadeMs:              400,
			WaterFadeEpsilon:         0.02,
			IonSpawnChance:           0.02,
			IonSpeedMin:              0.001,
			IonSpeedMax:              0.011,
			IonDrift:                 0.8,
			BlinkTicks:               60,
		},
	}
}

// Gap returns the minimum interval between pair admissions.
func (p Params) Gap() time.Duration { return time.Duration(p.GapMs) * time.Millisecond }

// FirstPairDelay returns the delay before the first admission after a reset.
func (p Params) FirstPairDelay() time.Duration {
	return time.Duration(p.FirstPairDelayMs) * time.Millisecond
}

// WaterFade returns the duration of a droplet's fade-out.
func (p Params) WaterFade() time.Duration {
	return time.Duration(p.WaterFadeMs) * time.Millisecond
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values are ignored and the default kept.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && finite(parsed) && parsed >= 0 {
			c.Speed = parsed
		}
	}

	p := &c.Params
	setInt(cfg, "gap_ms", &p.GapMs, 0)
	setInt(cfg, "first_pair_delay_ms", &p.FirstPairDelayMs, 0)
	setFloat(cfg, "pair_gap_y", &p.PairGapY, 0)
	setFloat(cfg, "radius", &p.Radius, 0)
	setFloat(cfg, "base_speed", &p.BaseSpeed, 0)
	setFloat(cfg, "pair_horizontal_multiplier", &p.PairHorizontalMultiplier, 0)
	setFloat(cfg, "ionized_boost", &p.IonizedBoost, 0)
	setFloat(cfg, "stop_inset", &p.StopInset, 0)
	setFloat(cfg, "cleanup_margin", &p.CleanupMargin, 0)
	setFloat(cfg, "oxygen_base_speed", &p.OxygenBaseSpeed, 0)
	setFloat(cfg, "oxygen_stop_offset", &p.OxygenStopOffset, 0)
	setFloat(cfg, "reaction_distance", &p.ReactionDistance, 0)
	setFloat(cfg, "water_speed", &p.WaterSpeed, 0)
	setInt(cfg, "water_fade_ms", &p.WaterFadeMs, 1)
	setFloat(cfg, "water_fade_epsilon", &p.WaterFadeEpsilon, 0)
	setFloat(cfg, "ion_spawn_chance", &p.IonSpawnChance, 0)
	setFloat(cfg, "ion_speed_min", &p.IonSpeedMin, 0)
	setFloat(cfg, "ion_speed_max", &p.IonSpeedMax, 0)
	setFloat(cfg, "ion_drift", &p.IonDrift, 0)
	setInt(cfg, "blink_ticks", &p.BlinkTicks, 1)

	if p.IonSpeedMax < p.IonSpeedMin {
		p.IonSpeedMax = p.IonSpeedMin
	}
	if p.FirstPairDelayMs > p.GapMs {
		p.FirstPairDelayMs = p.GapMs
	}
	return c
}

func setInt(cfg map[string]string, key string, dst *int, min int) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.Atoi(v); err == nil && parsed >= min {
		*dst = parsed
	}
}

func setFloat(cfg map[string]string, key string, dst *float64, min float64) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.ParseFloat(v, 64); err == nil && finite(parsed) && parsed >= min {
		*dst = parsed
	}
}
