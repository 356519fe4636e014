package sim

import "github.com/harshith718/ecolens/config"

// Species bundles the lifecycle constants for one population. Prey and
// predators run the same reproduction/survival rule with different values.
type Species struct {
	Consumption    float64 // Intake rate: grazing demand (prey) or hunt reward (predators)
	ReproThreshold float64 // Energy required before reproduction is possible
	ReproChance    float64 // Reproduction probability once above threshold
	MutationRate   float64 // Half-width of the offspring efficiency perturbation
	ReproCost      float64 // Parent energy multiplier after reproducing
	BaseSurvival   float64 // Baseline daily survival probability
	SurvivalWeight float64 // Energy contribution to survival probability
	EnergyDecay    float64 // Daily energy multiplier for survivors
	MinEnergy      float64 // Below this the individual cannot survive the day
	StartEnergy    float64 // Energy granted at seeding and at birth
}

// speciesFrom converts a config species block into engine constants.
func speciesFrom(sc config.SpeciesConfig) Species {
	return Species{
		Consumption:    sc.Consumption,
		ReproThreshold: sc.ReproThreshold,
		ReproChance:    sc.ReproChance,
		MutationRate:   sc.MutationRate,
		ReproCost:      sc.ReproCost,
		BaseSurvival:   sc.BaseSurvival,
		SurvivalWeight: sc.SurvivalWeight,
		EnergyDecay:    sc.EnergyDecay,
		MinEnergy:      sc.MinEnergy,
		StartEnergy:    sc.StartEnergy,
	}
}
