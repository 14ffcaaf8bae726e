package app

import (
	"flag"
	"fmt"
	"math"
	"strconv"

	"fuelcell/internal/config"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim        string
	Scale      int
	TPS        int
	Seed       int64
	Speed      float64
	ConfigPath string
	HUD        bool
	HUDWidth   int
	Audio      bool
	Volume     float64
	Set        config.Overrides
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "fuelcell",
		Scale:    1,
		TPS:      60,
		Seed:     1337,
		Speed:    1,
		HUD:      true,
		HUDWidth: 240,
		Volume:   0.6,
	}
}

// Bind attaches the full GUI configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "parameter panel width in pixels")
	c.BindTerminal(fs)
	fs.BoolVar(&c.Audio, "audio", c.Audio, "play a chime on each reaction")
	fs.Float64Var(&c.Volume, "volume", c.Volume, "audio volume in [0,1]")
}

// BindTerminal attaches the subset of flags shared with the terminal front
// end.
func (c *Config) BindTerminal(fs *flag.FlagSet) {
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "animation speed multiplier")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML file with simulation parameters")
	fs.Var(&c.Set, "set", "parameter override in key=value form (repeatable)")
}

// Normalize repairs unusable values and returns advisory notes describing
// each adjustment.
func (c *Config) Normalize() []string {
	var notes []string
	if c.Scale <= 0 {
		notes = append(notes, fmt.Sprintf("scale %d is not positive; using 1", c.Scale))
		c.Scale = 1
	}
	if c.TPS <= 0 {
		notes = append(notes, fmt.Sprintf("tps %d is not positive; using 60", c.TPS))
		c.TPS = 60
	}
	if math.IsNaN(c.Speed) || math.IsInf(c.Speed, 0) || c.Speed < 0 {
		notes = append(notes, fmt.Sprintf("speed %v is unusable; running at 1.0x", c.Speed))
		c.Speed = 1
	}
	if !c.HUD {
		if c.HUDWidth != 0 {
			c.HUDWidth = 0
		}
		notes = append(notes, fmt.Sprintf("hud disabled; speed stays at %.1fx unless changed with +/-", c.Speed))
	} else if c.HUDWidth < 0 {
		c.HUDWidth = 0
	}
	if c.Volume < 0 || c.Volume > 1 {
		notes = append(notes, fmt.Sprintf("volume %.2f out of range; using 0.6", c.Volume))
		c.Volume = 0.6
	}
	return notes
}

// SimValues assembles the simulation parameter map. Precedence from lowest
// to highest: config file, -set overrides, explicitly passed -seed/-speed.
func (c *Config) SimValues(fs *flag.FlagSet) (map[string]string, error) {
	file, err := config.LoadFile(c.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	explicit := map[string]string{}
	visited := map[string]bool{}
	if fs != nil {
		fs.Visit(func(f *flag.Flag) { visited[f.Name] = true })
	}
	_, seedInFile := file["seed"]
	if visited["seed"] || !seedInFile {
		explicit["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	if visited["speed"] {
		explicit["speed"] = strconv.FormatFloat(c.Speed, 'f', -1, 64)
	}
	return config.Merge(file, c.Set.Map(), explicit), nil
}

// SeedFrom returns the seed recorded in values, or fallback when absent or
// malformed.
func SeedFrom(values map[string]string, fallback int64) int64 {
	raw, ok := values["seed"]
	if !ok {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return v
}
