// Package config provides configuration loading and validation for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Run        RunConfig        `yaml:"run"`
	Population PopulationConfig `yaml:"population"`
	Resource   ResourceConfig   `yaml:"resource"`
	Prey       SpeciesConfig    `yaml:"prey"`
	Predator   SpeciesConfig    `yaml:"predator"`
}

// RunConfig holds run-level parameters.
type RunConfig struct {
	Days int   `yaml:"days"` // Number of simulated days
	Seed int64 `yaml:"seed"` // RNG seed for the whole run
}

// PopulationConfig holds population seeding and cap parameters.
type PopulationConfig struct {
	InitPrey int `yaml:"init_prey"` // Starting prey count
	InitPred int `yaml:"init_pred"` // Starting predator count
	MaxPrey  int `yaml:"max_prey"`  // Hard cap applied after each day
	MaxPred  int `yaml:"max_pred"`  // Hard cap applied after each day
}

// ResourceConfig holds resource pool dynamics parameters.
type ResourceConfig struct {
	Initial         float64 `yaml:"initial"`          // Starting pool size, also the carrying-capacity baseline
	RegenRate       float64 `yaml:"regen_rate"`       // Added to the pool every day
	ShockChance     float64 `yaml:"shock_chance"`     // Per-day probability of a shock event
	ShockMin        float64 `yaml:"shock_min"`        // Lower bound of the shock multiplier
	ShockMax        float64 `yaml:"shock_max"`        // Upper bound of the shock multiplier
	CapacityWave    float64 `yaml:"capacity_wave"`    // Amplitude of the carrying-capacity oscillation
	CapacityPeriod  float64 `yaml:"capacity_period"`  // Days per radian of the oscillation
	CapacityDamping float64 `yaml:"capacity_damping"` // Multiplier applied while above carrying capacity
}

// SpeciesConfig holds the per-species lifecycle parameters.
type SpeciesConfig struct {
	Consumption    float64 `yaml:"consumption"`     // Per-individual intake rate (grazing demand or hunt reward)
	ReproThreshold float64 `yaml:"repro_threshold"` // Energy required before reproduction is possible
	ReproChance    float64 `yaml:"repro_chance"`    // Reproduction probability once above threshold
	MutationRate   float64 `yaml:"mutation_rate"`   // Half-width of the offspring efficiency perturbation
	ReproCost      float64 `yaml:"repro_cost"`      // Parent energy multiplier after reproducing
	BaseSurvival   float64 `yaml:"base_survival"`   // Baseline daily survival probability
	SurvivalWeight float64 `yaml:"survival_weight"` // Energy contribution to survival probability
	EnergyDecay    float64 `yaml:"energy_decay"`    // Daily energy multiplier for survivors
	MinEnergy      float64 `yaml:"min_energy"`      // Below this the individual cannot survive the day
	StartEnergy    float64 `yaml:"start_energy"`    // Energy granted at seeding and at birth
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used. The merged configuration
// is validated before being returned.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects configurations the engine cannot run: a non-positive day
// count, negative population or resource seeds, or probability fields outside
// [0,1]. A configuration that passes cannot fail later in the core loop.
func (c *Config) Validate() error {
	if c.Run.Days <= 0 {
		return fmt.Errorf("run.days must be positive, got %d", c.Run.Days)
	}
	if c.Population.InitPrey < 0 {
		return fmt.Errorf("population.init_prey must be non-negative, got %d", c.Population.InitPrey)
	}
	if c.Population.InitPred < 0 {
		return fmt.Errorf("population.init_pred must be non-negative, got %d", c.Population.InitPred)
	}
	if c.Population.MaxPrey <= 0 {
		return fmt.Errorf("population.max_prey must be positive, got %d", c.Population.MaxPrey)
	}
	if c.Population.MaxPred <= 0 {
		return fmt.Errorf("population.max_pred must be positive, got %d", c.Population.MaxPred)
	}
	if c.Resource.Initial < 0 {
		return fmt.Errorf("resource.initial must be non-negative, got %g", c.Resource.Initial)
	}
	if err := validateProb("resource.shock_chance", c.Resource.ShockChance); err != nil {
		return err
	}
	if err := c.Prey.validate("prey"); err != nil {
		return err
	}
	if err := c.Predator.validate("predator"); err != nil {
		return err
	}
	return nil
}

func (s *SpeciesConfig) validate(name string) error {
	if err := validateProb(name+".repro_chance", s.ReproChance); err != nil {
		return err
	}
	if err := validateProb(name+".base_survival", s.BaseSurvival); err != nil {
		return err
	}
	return nil
}

func validateProb(field string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s must be in [0,1], got %g", field, v)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
