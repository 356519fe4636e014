package sim

import (
	"math"
	"math/rand"
	"testing"
)

// Efficiency 2.0 pushes hunt probability above 1, so every draw succeeds;
// efficiency -1.0 pushes it below 0, so every draw fails.
func alwaysHunter() *Individual { return &Individual{Energy: 2.0, Efficiency: 2.0} }
func neverHunter() *Individual  { return &Individual{Energy: 2.0, Efficiency: -1.0} }

func makePrey(n int) []*Individual {
	prey := make([]*Individual, n)
	for i := range prey {
		prey[i] = &Individual{Energy: 1.0, Efficiency: 0.8}
	}
	return prey
}

func TestRunPredation_NoPrey(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pred := alwaysHunter()
	before := pred.Energy

	prey, kills := runPredation(rng, nil, []*Individual{pred}, 2.0)

	if len(prey) != 0 || kills != 0 {
		t.Errorf("expected no prey and no kills, got %d prey, %d kills", len(prey), kills)
	}
	if pred.Energy != before {
		t.Errorf("predator energy changed with no prey: %f -> %f", before, pred.Energy)
	}
}

func TestRunPredation_OneKillPerPredator(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	prey, kills := runPredation(rng, makePrey(5), []*Individual{alwaysHunter()}, 2.0)

	if kills != 1 {
		t.Errorf("kills = %d, want 1 (each predator eats at most once per day)", kills)
	}
	if len(prey) != 4 {
		t.Errorf("surviving prey = %d, want 4", len(prey))
	}
}

func TestRunPredation_StopsWhenPreyExhausted(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	predators := []*Individual{alwaysHunter(), alwaysHunter(), alwaysHunter(), alwaysHunter(), alwaysHunter()}
	prey, kills := runPredation(rng, makePrey(2), predators, 2.0)

	if kills != 2 {
		t.Errorf("kills = %d, want 2 (no retries once prey run out)", kills)
	}
	if len(prey) != 0 {
		t.Errorf("surviving prey = %d, want 0", len(prey))
	}
}

func TestRunPredation_MissLeavesPreyIntact(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pred := neverHunter()
	prey, kills := runPredation(rng, makePrey(3), []*Individual{pred}, 2.0)

	if kills != 0 || len(prey) != 3 {
		t.Errorf("expected 0 kills and 3 prey, got %d kills, %d prey", kills, len(prey))
	}
}

func TestRunPredation_EnergyReward(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pred := alwaysHunter()
	rate := 2.0
	runPredation(rng, makePrey(1), []*Individual{pred}, rate)

	want := 2.0 + rate*pred.Efficiency
	if math.Abs(pred.Energy-want) > 1e-9 {
		t.Errorf("predator energy = %f, want %f", pred.Energy, want)
	}
}

func TestRunPredation_Conservation(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		predators := make([]*Individual, 8)
		for i := range predators {
			predators[i] = &Individual{Energy: 2.0, Efficiency: 0.7}
		}
		prey, kills := runPredation(rng, makePrey(20), predators, 2.0)

		if len(prey)+kills != 20 {
			t.Errorf("seed %d: survivors (%d) + kills (%d) != 20", seed, len(prey), kills)
		}
	}
}
