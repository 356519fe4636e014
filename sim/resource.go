package sim

import (
	"math"
	"math/rand"

	"github.com/harshith718/ecolens/config"
)

// updateResource applies the end-of-day pool dynamics, in order: debit what
// the prey actually drew, add regeneration, roll for a shock event, then damp
// toward a slowly oscillating carrying capacity.
//
// A shock multiplies the pool by a uniform factor in [ShockMin, ShockMax] -
// independent across days, no memory. The carrying capacity is a soft
// ceiling: while the pool sits above it, the pool shrinks by CapacityDamping
// per day rather than being clamped, so transient overshoot is allowed.
func updateResource(rng *rand.Rand, resource, allocated float64, day int, rc config.ResourceConfig) float64 {
	resource = math.Max(0, resource-allocated) + rc.RegenRate

	if rng.Float64() < rc.ShockChance {
		resource *= rc.ShockMin + rng.Float64()*(rc.ShockMax-rc.ShockMin)
	}

	carrying := math.Max(1, rc.Initial*(1+rc.CapacityWave*math.Sin(float64(day)/rc.CapacityPeriod)))
	if resource > carrying {
		resource *= rc.CapacityDamping
	}
	return resource
}
