package sim

import (
	"fmt"
	"math/rand"

	"github.com/harshith718/ecolens/config"
	"github.com/harshith718/ecolens/telemetry"
)

// Seeded individuals draw their efficiency uniformly from this range.
const (
	initEffMin = 0.6
	initEffMax = 1.0
)

// Engine advances the ecosystem one day at a time. It owns the only random
// source in the run; every stochastic stage draws from it in a fixed order
// (prey shuffle, predator shuffle, predation, prey lifecycle, predator
// lifecycle, shock), so a seed fully determines the trajectory.
type Engine struct {
	cfg *config.Config
	rng *rand.Rand

	prey      []*Individual
	predators []*Individual
	resource  float64

	preySpecies Species
	predSpecies Species
}

// New validates the configuration, seeds both populations and the resource
// pool, and returns an engine ready to run.
func New(cfg *config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		cfg:         cfg,
		rng:         rand.New(rand.NewSource(cfg.Run.Seed)),
		preySpecies: speciesFrom(cfg.Prey),
		predSpecies: speciesFrom(cfg.Predator),
	}
	e.seedPopulations()
	return e, nil
}

// seedPopulations creates the starting individuals. Prey are seeded before
// predators; each consumes one efficiency draw.
func (e *Engine) seedPopulations() {
	e.prey = make([]*Individual, e.cfg.Population.InitPrey)
	for i := range e.prey {
		e.prey[i] = &Individual{
			Energy:     e.preySpecies.StartEnergy,
			Efficiency: initEffMin + e.rng.Float64()*(initEffMax-initEffMin),
		}
	}
	e.predators = make([]*Individual, e.cfg.Population.InitPred)
	for i := range e.predators {
		e.predators[i] = &Individual{
			Energy:     e.predSpecies.StartEnergy,
			Efficiency: initEffMin + e.rng.Float64()*(initEffMax-initEffMin),
		}
	}
	e.resource = e.cfg.Resource.Initial
}

// Run executes the full day loop and returns the complete history. There is
// no early termination: extinction leaves empty lists that keep cycling
// through the stages, and empty-population averages report as 0.
//
// Each day runs allocation, predation, prey lifecycle, predator lifecycle,
// then resource dynamics. Statistics are recorded before the population caps
// are enforced: a day that overshoots a cap reports its uncapped size and
// carries the truncated list into the next day.
func (e *Engine) Run() *telemetry.History {
	h := telemetry.NewHistory(e.cfg.Run.Days)

	for day := 0; day < e.cfg.Run.Days; day++ {
		allocated := allocateResource(e.prey, e.preySpecies.Consumption, e.resource)

		var kills int
		e.prey, kills = runPredation(e.rng, e.prey, e.predators, e.predSpecies.Consumption)

		var preyBirths, predBirths int
		e.prey, preyBirths = stepLifecycle(e.rng, e.prey, e.preySpecies)
		e.predators, predBirths = stepLifecycle(e.rng, e.predators, e.predSpecies)

		e.resource = updateResource(e.rng, e.resource, allocated, day, e.cfg.Resource)

		h.Append(telemetry.DayStats{
			Day:        day,
			PreyCount:  len(e.prey),
			PredCount:  len(e.predators),
			Resource:   e.resource,
			PreyAvgEff: avgEfficiency(e.prey),
			PredAvgEff: avgEfficiency(e.predators),
			Kills:      kills,
			PreyBirths: preyBirths,
			PredBirths: predBirths,
		})

		// Record first, then cap.
		if len(e.prey) > e.cfg.Population.MaxPrey {
			e.prey = e.prey[:e.cfg.Population.MaxPrey]
		}
		if len(e.predators) > e.cfg.Population.MaxPred {
			e.predators = e.predators[:e.cfg.Population.MaxPred]
		}
	}
	return h
}

// Run is the package-level entry point: validate, seed, simulate, and return
// the per-day history.
func Run(cfg *config.Config) (*telemetry.History, error) {
	e, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return e.Run(), nil
}
