package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestParseKeepsScalarLiterals(t *testing.T) {
	values, err := Parse([]byte("speed: 1.50\ngap_ms: 2000\nseed: \"7\"\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if values["speed"] != "1.50" {
		t.Fatalf("speed literal %q, want 1.50", values["speed"])
	}
	if values["gap_ms"] != "2000" || values["seed"] != "7" {
		t.Fatalf("unexpected values %v", values)
	}
}

func TestParseRejectsNestedValues(t *testing.T) {
	_, err := Parse([]byte("speed:\n  value: 2\n"))
	if !errors.Is(err, ErrNotScalar) {
		t.Fatalf("expected ErrNotScalar, got %v", err)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("speed: [1, 2")); err == nil {
		t.Fatal("expected malformed YAML to fail")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cell.yaml")
	if err := os.WriteFile(path, []byte("water_fade_ms: 250\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	values, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if values["water_fade_ms"] != "250" {
		t.Fatalf("unexpected values %v", values)
	}

	empty, err := LoadFile("")
	if err != nil || len(empty) != 0 {
		t.Fatalf("empty path should yield empty map, got %v %v", empty, err)
	}

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped ErrNotExist, got %v", err)
	}
}

func TestMergeLayersOverrideBase(t *testing.T) {
	base := map[string]string{"speed": "1", "gap_ms": "3000"}
	out := Merge(base, map[string]string{"speed": "2"}, map[string]string{"seed": "9"})
	if out["speed"] != "2" || out["gap_ms"] != "3000" || out["seed"] != "9" {
		t.Fatalf("unexpected merge %v", out)
	}
	if base["speed"] != "1" {
		t.Fatal("merge mutated the base map")
	}
}

func TestOverrides(t *testing.T) {
	var o Overrides
	if err := o.Set("speed=2"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := o.Set(" gap_ms = 1500 "); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := o.Set("speed=0.5"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := o.Set("bogus"); err == nil {
		t.Fatal("expected error for missing '='")
	}
	m := o.Map()
	if m["speed"] != "0.5" || m["gap_ms"] != "1500" {
		t.Fatalf("unexpected overrides %v", m)
	}
	if !slices.Equal(Keys(m), []string{"gap_ms", "speed"}) {
		t.Fatalf("unexpected key order %v", Keys(m))
	}
}
