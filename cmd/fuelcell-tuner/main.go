package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"fuelcell/internal/config"
	"fuelcell/internal/sims/fuelcell"

	"gopkg.in/yaml.v3"
)

type report struct {
	Ticks    int                    `yaml:"ticks"`
	DtMs     int                    `yaml:"dt_ms"`
	Seed     int64                  `yaml:"seed"`
	Values   map[string]string      `yaml:"values,omitempty"`
	Baseline fuelcell.CycleResult   `yaml:"baseline"`
	Sweep    []fuelcell.SweepRecord `yaml:"sweep"`
	Best     *fuelcell.SweepRecord  `yaml:"best,omitempty"`
}

func main() {
	ticks := flag.Int("ticks", 3600, "number of ticks to simulate per candidate")
	dtMs := flag.Int("dt", 16, "wall milliseconds fed to each tick")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel candidate evaluations")
	seed := flag.Int64("seed", 1337, "seed used for deterministic simulations")
	configPath := flag.String("config", "", "YAML file with baseline parameters")
	speeds := flag.String("speeds", "0.5,1,1.5,2,3", "comma-separated speed multipliers to sweep")
	gaps := flag.String("gaps", "1500,3000,4500", "comma-separated admission gaps in ms to sweep")
	asYAML := flag.Bool("yaml", false, "print the report as YAML")
	var overrides config.Overrides
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	file, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})
	values := baseValues(file, overrides.Map(), *seed, seedSet)
	base := fuelcell.FromMap(values)
	dt := time.Duration(*dtMs) * time.Millisecond
	if dt <= 0 {
		log.Fatalf("dt must be positive, got %d", *dtMs)
	}

	speedList, err := parseFloats(*speeds)
	if err != nil {
		log.Fatalf("parse -speeds: %v", err)
	}
	gapList, err := parseInts(*gaps)
	if err != nil {
		log.Fatalf("parse -gaps: %v", err)
	}
	var candidates []fuelcell.SweepCandidate
	for _, s := range speedList {
		for _, g := range gapList {
			candidates = append(candidates, fuelcell.SweepCandidate{Speed: s, GapMs: g})
		}
	}

	rep := report{
		Ticks:    *ticks,
		DtMs:     *dtMs,
		Seed:     base.Seed,
		Values:   values,
		Baseline: fuelcell.CycleRun(base, *ticks, dt),
		Sweep:    fuelcell.ThroughputSweep(base, candidates, *ticks, dt, *workers),
	}
	if best, ok := fuelcell.BestThroughput(rep.Sweep); ok {
		rep.Best = &best
	}

	if *asYAML {
		out, err := yaml.Marshal(rep)
		if err != nil {
			log.Fatalf("yaml marshal: %v", err)
		}
		os.Stdout.Write(out)
		return
	}

	if len(values) > 0 {
		fmt.Println("Values:")
		for _, line := range formatValues(values) {
			fmt.Println("  " + line)
		}
		fmt.Println()
	}
	printResult("Baseline", base.Speed, base.Params.GapMs, rep.Baseline, dt)
	fmt.Println("\nSweep:")
	for _, rec := range rep.Sweep {
		printResult("  candidate", rec.Candidate.Speed, rec.Candidate.GapMs, rec.Result, dt)
	}
	if rep.Best != nil {
		fmt.Println()
		printResult("Best", rep.Best.Candidate.Speed, rep.Best.Candidate.GapMs, rep.Best.Result, dt)
	}
}

// baseValues layers the config file under -set overrides. The -seed flag
// wins when passed explicitly, and otherwise only fills in a missing seed.
func baseValues(file, set map[string]string, seed int64, seedSet bool) map[string]string {
	values := config.Merge(file, set)
	if _, ok := values["seed"]; seedSet || !ok {
		values["seed"] = strconv.FormatInt(seed, 10)
	}
	return values
}

// formatValues renders key=value pairs in key order.
func formatValues(values map[string]string) []string {
	keys := config.Keys(values)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+values[k])
	}
	return out
}

func printResult(label string, speed float64, gapMs int, res fuelcell.CycleResult, dt time.Duration) {
	fmt.Printf("%s: speed %.2fx gap %dms -> %d reactions (%.1f/min), first at tick %d, mean cycle %.1f ticks, overlaps %d, max water %d\n",
		label, speed, gapMs, res.Reactions, res.ReactionsPerMinute(dt), res.FirstReactionTick, res.MeanCycleTicks, res.OverlapAdmissions, res.MaxWater)
}

func parseFloats(raw string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%q is not a finite number", part)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseInts(raw string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
