package sim

import "math/rand"

// stepLifecycle applies one day's reproduction and survival checks to a
// population and returns the next day's population: offspring plus survivors,
// nothing else. The two checks are independent per individual - reproducing
// does not guarantee surviving, and the survival draw sees the
// post-reproduction energy.
//
// Reproduction: above the energy threshold, a ReproChance draw creates one
// offspring with the species' start energy and the parent's efficiency plus a
// uniform perturbation in [-MutationRate, +MutationRate], floored at
// minEfficiency. The parent then pays the reproduction cost.
//
// Survival: above MinEnergy, the individual survives with probability
// BaseSurvival + SurvivalWeight * (E / (ReproThreshold + 1)), and a survivor's
// energy decays by EnergyDecay.
func stepLifecycle(rng *rand.Rand, pop []*Individual, sp Species) (next []*Individual, births int) {
	next = make([]*Individual, 0, len(pop))
	for _, ind := range pop {
		if ind.Energy > sp.ReproThreshold && rng.Float64() < sp.ReproChance {
			eff := ind.Efficiency + (rng.Float64()*2-1)*sp.MutationRate
			if eff < minEfficiency {
				eff = minEfficiency
			}
			next = append(next, &Individual{Energy: sp.StartEnergy, Efficiency: eff})
			births++
			ind.Energy *= sp.ReproCost
		}
		if ind.Energy > sp.MinEnergy && rng.Float64() < sp.BaseSurvival+sp.SurvivalWeight*(ind.Energy/(sp.ReproThreshold+1)) {
			ind.Energy *= sp.EnergyDecay
			next = append(next, ind)
		}
	}
	return next, births
}
