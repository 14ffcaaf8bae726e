package main

import (
	"slices"
	"testing"
)

func TestParseLists(t *testing.T) {
	floats, err := parseFloats("0.5, 1,,2")
	if err != nil {
		t.Fatalf("parse floats: %v", err)
	}
	if !slices.Equal(floats, []float64{0.5, 1, 2}) {
		t.Fatalf("floats %v", floats)
	}
	ints, err := parseInts("1500,3000")
	if err != nil {
		t.Fatalf("parse ints: %v", err)
	}
	if !slices.Equal(ints, []int{1500, 3000}) {
		t.Fatalf("ints %v", ints)
	}
	if _, err := parseInts("10,x"); err == nil {
		t.Fatal("expected error for non-numeric gap")
	}
}

func TestParseFloatsRejectsNonFinite(t *testing.T) {
	for _, raw := range []string{"1,NaN", "Inf", "0.5,-Inf"} {
		if _, err := parseFloats(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestBaseValuesSeedPrecedence(t *testing.T) {
	file := map[string]string{"seed": "42", "speed": "2"}

	if got := baseValues(file, nil, 1337, false)["seed"]; got != "42" {
		t.Fatalf("default -seed overrode the file seed: %s", got)
	}
	if got := baseValues(file, nil, 7, true)["seed"]; got != "7" {
		t.Fatalf("explicit -seed ignored: %s", got)
	}
	if got := baseValues(file, map[string]string{"seed": "9"}, 1337, false)["seed"]; got != "9" {
		t.Fatalf("-set seed ignored: %s", got)
	}
	if got := baseValues(nil, nil, 1337, false)["seed"]; got != "1337" {
		t.Fatalf("missing seed not filled: %s", got)
	}
}

func TestFormatValuesSorted(t *testing.T) {
	got := formatValues(map[string]string{"speed": "2", "gap_ms": "1500", "seed": "1"})
	want := []string{"gap_ms=1500", "seed=1", "speed=2"}
	if !slices.Equal(got, want) {
		t.Fatalf("lines %v, want %v", got, want)
	}
}
