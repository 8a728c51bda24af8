// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Fertility bounds for land tiles. Values outside this range are clamped
// during terrain generation; this is a documented design choice, not an error.
const (
	MinFertility = 0.1
	MaxFertility = 1.0
)

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Grid      GridConfig      `yaml:"grid"`
	Terrain   TerrainConfig   `yaml:"terrain"`
	Flora     FloraConfig     `yaml:"flora"`
	Fauna     FaunaConfig     `yaml:"fauna"`
	Timing    TimingConfig    `yaml:"timing"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
	TileSize  int `yaml:"tile_size"` // pixels per tile in graphical mode
}

// GridConfig holds world grid dimensions in tiles.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TerrainConfig holds terrain generation parameters.
type TerrainConfig struct {
	Seed                 int64   `yaml:"seed"`
	SeaLevel             float64 `yaml:"sea_level"`
	FertilityMaxDistance int     `yaml:"fertility_max_distance"`
	FertilityFalloffRate float64 `yaml:"fertility_falloff_rate"`
}

// FloraConfig holds plant spawning parameters.
type FloraConfig struct {
	MaxPlants           int     `yaml:"max_plants"`
	SpawnIntervalMS     int     `yaml:"spawn_interval_ms"`
	BaseSpawnProb       float64 `yaml:"base_spawn_probability"`
	FertilityMultiplier float64 `yaml:"fertility_multiplier"`
}

// FaunaConfig holds creature lifecycle parameters.
type FaunaConfig struct {
	MaxCreatures      int     `yaml:"max_creatures"`
	InitialCreatures  int     `yaml:"initial_creatures"`
	UpdateIntervalMS  int     `yaml:"update_interval_ms"`
	PlantsToGrow      int     `yaml:"plants_to_grow"`      // plants a newborn needs to become adult
	PlantsToReproduce int     `yaml:"plants_to_reproduce"` // plants an adult needs to reproduce
	ReproductionRange int     `yaml:"reproduction_range"`  // max Manhattan distance to a mate
	MaxAge            int     `yaml:"max_age"`
	EnergyLossPerTick float64 `yaml:"energy_loss_per_tick"`
	EnergyFromPlant   float64 `yaml:"energy_from_plant"`
	MaxEnergy         float64 `yaml:"max_energy"`
	InitialEnergy     float64 `yaml:"initial_energy"`
	ReproCooldown     int     `yaml:"reproduction_cooldown"` // ticks between reproductions
	SearchRadius      int     `yaml:"search_radius"`         // how far creatures can see
}

// TimingConfig holds simulation scheduling parameters.
type TimingConfig struct {
	UpdateIntervalMS int `yaml:"update_interval_ms"` // world tick interval
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindowTicks int `yaml:"stats_window_ticks"`
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
// If path is empty, only embedded defaults are used.
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

// Validate rejects out-of-range parameters before any simulation state exists.
func (c *Config) Validate() error {
	if c.Grid.Width < 1 || c.Grid.Height < 1 {
		return fmt.Errorf("config: grid dimensions must be >= 1, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Terrain.SeaLevel < 0 || c.Terrain.SeaLevel > 1 {
		return fmt.Errorf("config: sea_level must be in [0,1], got %g", c.Terrain.SeaLevel)
	}
	if c.Terrain.FertilityMaxDistance < 0 {
		return fmt.Errorf("config: fertility_max_distance must be >= 0, got %d", c.Terrain.FertilityMaxDistance)
	}
	if c.Terrain.FertilityFalloffRate <= 0 {
		return fmt.Errorf("config: fertility_falloff_rate must be > 0, got %g", c.Terrain.FertilityFalloffRate)
	}
	if c.Flora.BaseSpawnProb < 0 || c.Flora.BaseSpawnProb > 1 {
		return fmt.Errorf("config: base_spawn_probability must be in [0,1], got %g", c.Flora.BaseSpawnProb)
	}
	if c.Flora.FertilityMultiplier < 0 {
		return fmt.Errorf("config: fertility_multiplier must be >= 0, got %g", c.Flora.FertilityMultiplier)
	}
	if c.Flora.MaxPlants < 0 || c.Fauna.MaxCreatures < 0 {
		return fmt.Errorf("config: capacities must be >= 0, got max_plants=%d max_creatures=%d",
			c.Flora.MaxPlants, c.Fauna.MaxCreatures)
	}
	if c.Fauna.MaxEnergy <= 0 || c.Fauna.EnergyLossPerTick <= 0 {
		return fmt.Errorf("config: max_energy and energy_loss_per_tick must be > 0")
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
