package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_EmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.Run.Days != 200 {
		t.Errorf("run.days = %d, want 200", cfg.Run.Days)
	}
	if cfg.Run.Seed != 42 {
		t.Errorf("run.seed = %d, want 42", cfg.Run.Seed)
	}
	if cfg.Population.MaxPrey != 2000 || cfg.Population.MaxPred != 500 {
		t.Errorf("caps = %d/%d, want 2000/500", cfg.Population.MaxPrey, cfg.Population.MaxPred)
	}
	if cfg.Prey.ReproThreshold != 2.0 || cfg.Predator.ReproThreshold != 5.0 {
		t.Errorf("repro thresholds = %g/%g, want 2/5", cfg.Prey.ReproThreshold, cfg.Predator.ReproThreshold)
	}
	if cfg.Prey.StartEnergy != 1.0 || cfg.Predator.StartEnergy != 2.0 {
		t.Errorf("start energy = %g/%g, want 1/2", cfg.Prey.StartEnergy, cfg.Predator.StartEnergy)
	}
}

func TestLoad_FileOverridesMergeWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	override := "run:\n  days: 50\nresource:\n  regen_rate: 12.5\n"
	if err := os.WriteFile(path, []byte(override), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading override: %v", err)
	}
	if cfg.Run.Days != 50 {
		t.Errorf("run.days = %d, want 50 (overridden)", cfg.Run.Days)
	}
	if cfg.Resource.RegenRate != 12.5 {
		t.Errorf("resource.regen_rate = %g, want 12.5 (overridden)", cfg.Resource.RegenRate)
	}
	if cfg.Population.InitPrey != 80 {
		t.Errorf("population.init_prey = %d, want 80 (default retained)", cfg.Population.InitPrey)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero days", func(c *Config) { c.Run.Days = 0 }},
		{"negative days", func(c *Config) { c.Run.Days = -5 }},
		{"negative init prey", func(c *Config) { c.Population.InitPrey = -1 }},
		{"negative init pred", func(c *Config) { c.Population.InitPred = -1 }},
		{"zero prey cap", func(c *Config) { c.Population.MaxPrey = 0 }},
		{"negative resource", func(c *Config) { c.Resource.Initial = -1 }},
		{"shock chance above 1", func(c *Config) { c.Resource.ShockChance = 1.5 }},
		{"shock chance below 0", func(c *Config) { c.Resource.ShockChance = -0.1 }},
		{"prey repro chance above 1", func(c *Config) { c.Prey.ReproChance = 1.1 }},
		{"predator survival below 0", func(c *Config) { c.Predator.BaseSurvival = -0.2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			if err != nil {
				t.Fatal(err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Run.Days = 77
	cfg.Predator.MutationRate = 0.09

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading config: %v", err)
	}
	if loaded.Run.Days != 77 {
		t.Errorf("run.days = %d, want 77", loaded.Run.Days)
	}
	if loaded.Predator.MutationRate != 0.09 {
		t.Errorf("predator.mutation_rate = %g, want 0.09", loaded.Predator.MutationRate)
	}
}
