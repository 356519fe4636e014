// Package sim implements the day-stepped predator-prey-resource model:
// proportional resource allocation, stochastic predation, energy-driven
// reproduction and survival with trait mutation, and resource pool dynamics.
package sim

// minEfficiency is the floor applied to mutated offspring traits.
const minEfficiency = 0.05

// Individual is one organism: a metabolic energy reserve plus a heritable
// efficiency trait. Efficiency scales resource conversion for prey and hunt
// success for predators.
type Individual struct {
	Energy     float64
	Efficiency float64
}

// avgEfficiency returns the mean efficiency of a population, or 0 when the
// population is empty.
func avgEfficiency(pop []*Individual) float64 {
	if len(pop) == 0 {
		return 0
	}
	sum := 0.0
	for _, ind := range pop {
		sum += ind.Efficiency
	}
	return sum / float64(len(pop))
}
