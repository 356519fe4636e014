package sim

import "math/rand"

// Hunt success probability is huntBase + huntWeight * efficiency, so the
// trait moves success from 30% toward 70%.
const (
	huntBase   = 0.3
	huntWeight = 0.4
)

// runPredation gives each predator, in shuffled order, one chance to take the
// prey at the front of the shuffled prey list. Both lists are shuffled first
// so neither side is privileged by position. Processing stops for the day
// once prey run out; there is no retry. Returns the surviving prey and the
// number killed.
//
// Both shuffles mutate the caller's slices in place; the shuffled predator
// order also becomes the iteration order for that population's lifecycle
// stage, which keeps the run's random draw sequence stable.
func runPredation(rng *rand.Rand, prey, predators []*Individual, rate float64) ([]*Individual, int) {
	rng.Shuffle(len(prey), func(i, j int) { prey[i], prey[j] = prey[j], prey[i] })
	rng.Shuffle(len(predators), func(i, j int) { predators[i], predators[j] = predators[j], predators[i] })

	kills := 0
	for _, pred := range predators {
		if len(prey) == 0 {
			break
		}
		if rng.Float64() < huntBase+huntWeight*pred.Efficiency {
			prey = prey[1:]
			pred.Energy += rate * pred.Efficiency
			kills++
		}
	}
	return prey, kills
}
