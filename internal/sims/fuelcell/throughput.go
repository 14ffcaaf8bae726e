package fuelcell

import (
	"sync"
	"time"
)

// CycleResult captures telemetry from a deterministic headless run.
type CycleResult struct {
	// TicksSimulated reports how many ticks were executed.
	TicksSimulated int `yaml:"ticks_simulated"`
	// PairsAdmitted counts pairs granted the right to move.
	PairsAdmitted int `yaml:"pairs_admitted"`
	// Reactions counts water droplets produced.
	Reactions int `yaml:"reactions"`
	// WaterFaded counts droplets that finished fading.
	WaterFaded int `yaml:"water_faded"`
	// FirstReactionTick is the tick of the first reaction, or 0 when none
	// happened.
	FirstReactionTick int `yaml:"first_reaction_tick"`
	// MeanCycleTicks is the mean number of ticks from admission to reaction.
	MeanCycleTicks float64 `yaml:"mean_cycle_ticks"`
	// MaxWater records the largest number of droplets alive at once.
	MaxWater int `yaml:"max_water"`
	// OverlapAdmissions counts admissions that happened while a previous
	// droplet was still fading.
	OverlapAdmissions int `yaml:"overlap_admissions"`
}

// ReactionsPerMinute converts the reaction count into a rate over the
// simulated wall time.
func (r CycleResult) ReactionsPerMinute(dt time.Duration) float64 {
	total := time.Duration(r.TicksSimulated) * dt
	if total <= 0 {
		return 0
	}
	return float64(r.Reactions) / total.Minutes()
}

// CycleRun steps a fresh world for the requested number of ticks with a fixed
// wall delta and returns lifecycle telemetry.
func CycleRun(cfg Config, ticks int, dt time.Duration) CycleResult {
	var res CycleResult
	if ticks <= 0 {
		return res
	}
	world := NewWithConfig(cfg)
	admittedAt := map[int]int{}
	cycleTotal := 0

	for i := 0; i < ticks; i++ {
		fadingBefore := world.state.ReactionInProgress
		world.Step(dt)
		res.TicksSimulated++
		for _, ev := range world.Events() {
			switch ev.Kind {
			case EventPairAdmitted:
				res.PairsAdmitted++
				admittedAt[ev.PairID] = ev.Tick
				if fadingBefore {
					res.OverlapAdmissions++
				}
			case EventReaction:
				res.Reactions++
				if res.FirstReactionTick == 0 {
					res.FirstReactionTick = ev.Tick
				}
				if start, ok := admittedAt[ev.PairID]; ok {
					cycleTotal += ev.Tick - start
					delete(admittedAt, ev.PairID)
				}
			case EventWaterFaded:
				res.WaterFaded++
			}
		}
		if n := len(world.state.Water); n > res.MaxWater {
			res.MaxWater = n
		}
	}
	if res.Reactions > 0 {
		res.MeanCycleTicks = float64(cycleTotal) / float64(res.Reactions)
	}
	return res
}

// SweepCandidate is one point in the speed/gap space.
type SweepCandidate struct {
	Speed float64 `yaml:"speed"`
	GapMs int     `yaml:"gap_ms"`
}

// SweepRecord pairs a candidate with its telemetry.
type SweepRecord struct {
	Candidate SweepCandidate `yaml:"candidate"`
	Result    CycleResult    `yaml:"result"`
}

// ThroughputSweep evaluates every candidate on its own world in parallel and
// returns the records in candidate order.
func ThroughputSweep(base Config, candidates []SweepCandidate, ticks int, dt time.Duration, workers int) []SweepRecord {
	if workers <= 0 {
		workers = 1
	}
	records := make([]SweepRecord, len(candidates))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for idx, cand := range candidates {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, c SweepCandidate) {
			defer wg.Done()
			cfg := base
			cfg.Speed = c.Speed
			if c.GapMs > 0 {
				cfg.Params.GapMs = c.GapMs
				if cfg.Params.FirstPairDelayMs > c.GapMs {
					cfg.Params.FirstPairDelayMs = c.GapMs
				}
			}
			records[i] = SweepRecord{Candidate: c, Result: CycleRun(cfg, ticks, dt)}
			<-sem
		}(idx, cand)
	}

	wg.Wait()
	return records
}

// BestThroughput returns the record with the most reactions, preferring the
// shorter mean cycle on ties.
func BestThroughput(records []SweepRecord) (SweepRecord, bool) {
	if len(records) == 0 {
		return SweepRecord{}, false
	}
	best := records[0]
	for _, rec := range records[1:] {
		if rec.Result.Reactions > best.Result.Reactions {
			best = rec
			continue
		}
		if rec.Result.Reactions == best.Result.Reactions && rec.Result.MeanCycleTicks < best.Result.MeanCycleTicks {
			best = rec
		}
	}
	return best, true
}
