// Package main provides CMA-ES parameter search for configurations that
// sustain long-lived predator-prey coexistence.
package main

import (
	"github.com/harshith718/ecolens/config"
)

// ParamSpec defines a single searchable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value

	// Apply writes the value into a config.
	Apply func(*config.Config, float64)
}

// ParamVector holds the set of all searchable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of searchable parameters. Caps and
// species survival baselines stay locked; the search moves the knobs that
// shape the resource budget and the reproductive pressure on each side.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Resource budget
			{Name: "init_resource", Min: 50, Max: 1000, Default: 300,
				Apply: func(c *config.Config, v float64) { c.Resource.Initial = v }},
			{Name: "resource_regen", Min: 1, Max: 40, Default: 8,
				Apply: func(c *config.Config, v float64) { c.Resource.RegenRate = v }},
			{Name: "shock_chance", Min: 0, Max: 0.2, Default: 0.02,
				Apply: func(c *config.Config, v float64) { c.Resource.ShockChance = v }},
			// Consumption
			{Name: "prey_consumption", Min: 0.2, Max: 3.0, Default: 1.0,
				Apply: func(c *config.Config, v float64) { c.Prey.Consumption = v }},
			{Name: "pred_consumption", Min: 0.5, Max: 5.0, Default: 2.0,
				Apply: func(c *config.Config, v float64) { c.Predator.Consumption = v }},
			// Reproduction pressure
			{Name: "prey_repro_thresh", Min: 1.0, Max: 5.0, Default: 2.0,
				Apply: func(c *config.Config, v float64) { c.Prey.ReproThreshold = v }},
			{Name: "pred_repro_thresh", Min: 2.0, Max: 10.0, Default: 5.0,
				Apply: func(c *config.Config, v float64) { c.Predator.ReproThreshold = v }},
			// Trait drift
			{Name: "prey_mut_rate", Min: 0.0, Max: 0.2, Default: 0.05,
				Apply: func(c *config.Config, v float64) { c.Prey.MutationRate = v }},
			{Name: "pred_mut_rate", Min: 0.0, Max: 0.2, Default: 0.03,
				Apply: func(c *config.Config, v float64) { c.Predator.MutationRate = v }},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp bounds raw values to each spec's [Min, Max] range.
func (pv *ParamVector) Clamp(raw []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v := raw[i]
		if v < spec.Min {
			v = spec.Min
		}
		if v > spec.Max {
			v = spec.Max
		}
		clamped[i] = v
	}
	return clamped
}

// ApplyToConfig writes clamped raw values into the config.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, raw []float64) {
	clamped := pv.Clamp(raw)
	for i, spec := range pv.Specs {
		spec.Apply(cfg, clamped[i])
	}
}
