package config

import (
	"math"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded defaults: %v", err)
	}

	if cfg.Grid.Width != 100 || cfg.Grid.Height != 100 {
		t.Errorf("grid = %dx%d, want 100x100", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Terrain.Seed != 42 {
		t.Errorf("seed = %d, want 42", cfg.Terrain.Seed)
	}
	if math.Abs(cfg.Terrain.SeaLevel-0.35) > 1e-9 {
		t.Errorf("sea level = %v, want 0.35", cfg.Terrain.SeaLevel)
	}
	if cfg.Flora.MaxPlants != 300 {
		t.Errorf("max plants = %d, want 300", cfg.Flora.MaxPlants)
	}
	if math.Abs(cfg.Flora.FertilityMultiplier-8.0) > 1e-9 {
		t.Errorf("fertility multiplier = %v, want 8.0", cfg.Flora.FertilityMultiplier)
	}
	if cfg.Fauna.PlantsToGrow != 5 || cfg.Fauna.PlantsToReproduce != 10 {
		t.Errorf("growth thresholds = %d/%d, want 5/10", cfg.Fauna.PlantsToGrow, cfg.Fauna.PlantsToReproduce)
	}
	if cfg.Fauna.ReproCooldown != 50 {
		t.Errorf("reproduction cooldown = %d, want 50", cfg.Fauna.ReproCooldown)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero grid width", func(c *Config) { c.Grid.Width = 0 }},
		{"negative grid height", func(c *Config) { c.Grid.Height = -3 }},
		{"sea level above 1", func(c *Config) { c.Terrain.SeaLevel = 1.2 }},
		{"negative fertility distance", func(c *Config) { c.Terrain.FertilityMaxDistance = -1 }},
		{"zero falloff rate", func(c *Config) { c.Terrain.FertilityFalloffRate = 0 }},
		{"spawn probability above 1", func(c *Config) { c.Flora.BaseSpawnProb = 1.5 }},
		{"negative multiplier", func(c *Config) { c.Flora.FertilityMultiplier = -2 }},
		{"negative capacity", func(c *Config) { c.Flora.MaxPlants = -1 }},
		{"zero max energy", func(c *Config) { c.Fauna.MaxEnergy = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			if err != nil {
				t.Fatalf("loading defaults: %v", err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestInitAndCfg(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("init: %v", err)
	}
	if Cfg() == nil {
		t.Fatal("Cfg returned nil after Init")
	}
}
