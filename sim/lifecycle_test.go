package sim

import (
	"math"
	"math/rand"
	"testing"
)

// certainSurvival returns a species where any individual above MinEnergy
// survives (probability 1) and never reproduces.
func certainSurvival() Species {
	return Species{
		ReproThreshold: 100, // unreachable
		ReproChance:    0,
		BaseSurvival:   1,
		SurvivalWeight: 0,
		EnergyDecay:    0.9,
		MinEnergy:      0.1,
		StartEnergy:    1.0,
	}
}

func TestStepLifecycle_SurvivorDecays(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ind := &Individual{Energy: 1.0, Efficiency: 0.8}

	next, births := stepLifecycle(rng, []*Individual{ind}, certainSurvival())

	if births != 0 {
		t.Errorf("births = %d, want 0", births)
	}
	if len(next) != 1 {
		t.Fatalf("population = %d, want 1", len(next))
	}
	if math.Abs(next[0].Energy-0.9) > 1e-9 {
		t.Errorf("survivor energy = %f, want 0.9", next[0].Energy)
	}
}

func TestStepLifecycle_DiesBelowMinEnergy(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ind := &Individual{Energy: 0.05, Efficiency: 0.8}

	next, _ := stepLifecycle(rng, []*Individual{ind}, certainSurvival())

	if len(next) != 0 {
		t.Errorf("population = %d, want 0 (energy below minimum)", len(next))
	}
}

func TestStepLifecycle_Reproduction(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sp := Species{
		ReproThreshold: 1.0,
		ReproChance:    1.0,
		MutationRate:   0,
		ReproCost:      0.5,
		BaseSurvival:   1,
		SurvivalWeight: 0,
		EnergyDecay:    1.0,
		MinEnergy:      0.1,
		StartEnergy:    1.0,
	}
	parent := &Individual{Energy: 2.0, Efficiency: 0.8}

	next, births := stepLifecycle(rng, []*Individual{parent}, sp)

	if births != 1 {
		t.Errorf("births = %d, want 1", births)
	}
	if len(next) != 2 {
		t.Fatalf("population = %d, want 2 (offspring + parent)", len(next))
	}
	child := next[0]
	if child.Energy != sp.StartEnergy {
		t.Errorf("child energy = %f, want %f", child.Energy, sp.StartEnergy)
	}
	if child.Efficiency != parent.Efficiency {
		t.Errorf("child efficiency = %f, want %f (zero mutation)", child.Efficiency, parent.Efficiency)
	}
	// Parent paid the cost before the survival draw: 2.0 * 0.5 = 1.0.
	if math.Abs(next[1].Energy-1.0) > 1e-9 {
		t.Errorf("parent energy = %f, want 1.0", next[1].Energy)
	}
}

func TestStepLifecycle_ReproduceThenDie(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sp := Species{
		ReproThreshold: 1.0,
		ReproChance:    1.0,
		ReproCost:      0.5,
		BaseSurvival:   0, // never survives
		SurvivalWeight: 0,
		MinEnergy:      0.1,
		StartEnergy:    1.0,
	}
	parent := &Individual{Energy: 2.0, Efficiency: 0.8}

	next, births := stepLifecycle(rng, []*Individual{parent}, sp)

	if births != 1 || len(next) != 1 {
		t.Errorf("expected 1 birth and only the offspring, got %d births, %d individuals", births, len(next))
	}
}

func TestStepLifecycle_SurvivalSeesPostReproductionEnergy(t *testing.T) {
	// Reproduction cost drops the parent below MinEnergy, so a parent that
	// reproduces must die even with certain base survival.
	rng := rand.New(rand.NewSource(1))
	sp := Species{
		ReproThreshold: 1.0,
		ReproChance:    1.0,
		ReproCost:      0.01,
		BaseSurvival:   1,
		SurvivalWeight: 0,
		MinEnergy:      0.1,
		StartEnergy:    1.0,
	}
	parent := &Individual{Energy: 2.0, Efficiency: 0.8}

	next, births := stepLifecycle(rng, []*Individual{parent}, sp)

	if births != 1 {
		t.Fatalf("births = %d, want 1", births)
	}
	if len(next) != 1 {
		t.Errorf("population = %d, want 1 (parent at 0.02 energy fails the min check)", len(next))
	}
}

func TestStepLifecycle_MutationBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sp := Species{
		ReproThreshold: 1.0,
		ReproChance:    1.0,
		MutationRate:   0.05,
		ReproCost:      1.0, // keep parent eligible
		BaseSurvival:   1,
		SurvivalWeight: 0,
		EnergyDecay:    1.0,
		MinEnergy:      0.1,
		StartEnergy:    1.0,
	}

	for i := 0; i < 200; i++ {
		parent := &Individual{Energy: 2.0, Efficiency: 0.8}
		next, _ := stepLifecycle(rng, []*Individual{parent}, sp)
		child := next[0]
		if math.Abs(child.Efficiency-0.8) > sp.MutationRate+1e-9 {
			t.Fatalf("child efficiency %f drifted more than ±%f from parent", child.Efficiency, sp.MutationRate)
		}
	}
}

func TestStepLifecycle_MutationClampedAtFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sp := Species{
		ReproThreshold: 1.0,
		ReproChance:    1.0,
		MutationRate:   0.5,
		ReproCost:      1.0,
		BaseSurvival:   1,
		SurvivalWeight: 0,
		EnergyDecay:    1.0,
		MinEnergy:      0.1,
		StartEnergy:    1.0,
	}

	for i := 0; i < 200; i++ {
		parent := &Individual{Energy: 2.0, Efficiency: minEfficiency}
		next, _ := stepLifecycle(rng, []*Individual{parent}, sp)
		if next[0].Efficiency < minEfficiency {
			t.Fatalf("child efficiency %f fell below the %f floor", next[0].Efficiency, minEfficiency)
		}
	}
}

func TestStepLifecycle_EmptyPopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	next, births := stepLifecycle(rng, nil, certainSurvival())

	if len(next) != 0 || births != 0 {
		t.Errorf("expected empty output for empty input, got %d individuals, %d births", len(next), births)
	}
}
