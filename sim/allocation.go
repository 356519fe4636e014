package sim

import "math"

// resourceToEnergy converts an allocated share of raw resource into usable
// energy, scaled by the individual's efficiency.
const resourceToEnergy = 0.1

// shareWeight is the proportional claim an individual places on the day's
// resource pool. The 0.5 floor keeps low-efficiency foragers from starving
// outright while still rewarding the trait.
func shareWeight(ind *Individual) float64 {
	return 0.5 + ind.Efficiency
}

// allocateResource splits min(resource, demand) across the prey population in
// proportion to each individual's share weight and credits each share as
// energy through the individual's efficiency. Higher-efficiency foragers
// out-earn their raw share twice over: a larger slice, converted better.
// Returns the amount actually drawn from the pool, which is what the pool is
// debited at the end of the day.
func allocateResource(prey []*Individual, rate, resource float64) float64 {
	if len(prey) == 0 {
		return 0
	}

	need := 0.0
	for _, p := range prey {
		need += rate * shareWeight(p)
	}
	available := math.Min(resource, need)

	total := 0.0
	for _, p := range prey {
		total += shareWeight(p)
	}
	if total == 0 {
		total = 1.0
	}

	for _, p := range prey {
		got := available * (shareWeight(p) / total)
		p.Energy += got * p.Efficiency * resourceToEnergy
	}
	return available
}
