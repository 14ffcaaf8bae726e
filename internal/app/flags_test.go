package app

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func parse(t *testing.T, args ...string) (*Config, *flag.FlagSet) {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	return cfg, fs
}

func TestBindDefaults(t *testing.T) {
	cfg, _ := parse(t)
	if cfg.Sim != "fuelcell" || cfg.Scale != 1 || cfg.TPS != 60 || cfg.Speed != 1 || !cfg.HUD || cfg.Audio {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestNormalizeRepairsValues(t *testing.T) {
	cfg, _ := parse(t, "-speed", "-2", "-scale", "0", "-hud=false")
	notes := cfg.Normalize()
	if cfg.Speed != 1 || cfg.Scale != 1 || cfg.HUDWidth != 0 {
		t.Fatalf("normalize left %+v", cfg)
	}
	if len(notes) != 3 {
		t.Fatalf("expected 3 advisories, got %d: %v", len(notes), notes)
	}
	if !strings.Contains(notes[2], "hud disabled") {
		t.Fatalf("missing hud advisory: %v", notes)
	}
}

func TestSimValuesPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cell.yaml")
	body := "seed: 99\nspeed: 0.5\ngap_ms: 2000\nradius: 10\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, fs := parse(t, "-config", path, "-set", "gap_ms=1500")
	values, err := cfg.SimValues(fs)
	if err != nil {
		t.Fatalf("sim values: %v", err)
	}
	if values["seed"] != "99" || values["speed"] != "0.5" {
		t.Fatalf("file values should win over flag defaults: %v", values)
	}
	if values["gap_ms"] != "1500" || values["radius"] != "10" {
		t.Fatalf("unexpected merged values %v", values)
	}

	cfg, fs = parse(t, "-config", path, "-seed", "5", "-speed", "2")
	values, err = cfg.SimValues(fs)
	if err != nil {
		t.Fatalf("sim values: %v", err)
	}
	if values["seed"] != "5" || values["speed"] != "2" {
		t.Fatalf("explicit flags should win: %v", values)
	}
	if SeedFrom(values, 0) != 5 {
		t.Fatalf("seed from values %d", SeedFrom(values, 0))
	}
}

func TestSimValuesMissingFile(t *testing.T) {
	cfg, fs := parse(t, "-config", filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := cfg.SimValues(fs); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestSeedFromFallback(t *testing.T) {
	if SeedFrom(map[string]string{"seed": "x"}, 3) != 3 {
		t.Fatal("malformed seed should fall back")
	}
	if SeedFrom(nil, 4) != 4 {
		t.Fatal("missing seed should fall back")
	}
}
