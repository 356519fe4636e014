package main

import (
	"math"
	"sync"

	"github.com/harshith718/ecolens/config"
	"github.com/harshith718/ecolens/sim"
	"github.com/harshith718/ecolens/telemetry"
)

// minViablePop is the floor below which a population counts as functionally
// extinct for fitness purposes.
const minViablePop = 3

// FitnessEvaluator runs simulations and scores parameter vectors.
type FitnessEvaluator struct {
	params  *ParamVector
	days    int
	seeds   []int64
	baseCfg *config.Config

	mu          sync.Mutex
	lastQuality float64 // quality from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, days int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:  params,
		days:    days,
		seeds:   seeds,
		baseCfg: baseCfg,
	}
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// seedResult holds the result from one seed evaluation.
type seedResult struct {
	fitness float64
	quality float64
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
// Fitness is negative viable-coexistence days averaged across seeds, scaled
// by a quality bonus for balanced populations.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	// Run all seeds in parallel; each run builds its own config and engine,
	// so there is no shared mutable state between goroutines.
	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSeed(x, s)
		}(i, seed)
	}
	wg.Wait()

	totalFitness := 0.0
	totalQuality := 0.0
	for _, r := range results {
		totalFitness += r.fitness
		totalQuality += r.quality
	}
	n := float64(len(results))

	fe.mu.Lock()
	fe.lastQuality = totalQuality / n
	fe.mu.Unlock()

	return totalFitness / n
}

// runSeed runs one simulation and scores it.
func (fe *FitnessEvaluator) runSeed(x []float64, seed int64) seedResult {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)
	cfg.Run.Days = fe.days
	cfg.Run.Seed = seed

	history, err := sim.Run(cfg)
	if err != nil {
		// Out-of-range vectors are clamped before they reach the engine, so
		// this only fires on a broken base config. Score it as worthless.
		return seedResult{fitness: 0, quality: 0}
	}

	viableDays := 0
	for i := 0; i < history.Len(); i++ {
		if history.PreyCount[i] >= minViablePop && history.PredCount[i] >= minViablePop {
			viableDays++
		}
	}

	quality := computeQuality(telemetry.Summarize(history))
	return seedResult{
		fitness: -float64(viableDays) * (1.0 + 0.2*quality),
		quality: quality,
	}
}

// computeQuality scores a run in [0,1] for how balanced it stayed: low
// population variability relative to the mean scores high, crashes score low.
func computeQuality(s telemetry.Summary) float64 {
	if s.MeanPrey <= 0 || s.MeanPred <= 0 {
		return 0
	}
	preyCV := s.StdDevPrey / s.MeanPrey
	predCV := s.StdDevPred / s.MeanPred
	cv := math.Max(preyCV, predCV)

	// CV of 0 is perfectly stable, CV >= 2 counts as chaotic.
	quality := 1.0 - cv/2.0
	if quality < 0 {
		quality = 0
	}
	return quality
}

// copyConfig returns a fresh copy of the base config for one run.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseCfg
	return &cfg
}
