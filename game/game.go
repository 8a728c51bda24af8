// Package game wires the world and systems together and drives the
// tick-based simulation loop.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/verdant/config"
	"github.com/pthm-cable/verdant/renderer"
	"github.com/pthm-cable/verdant/systems"
	"github.com/pthm-cable/verdant/telemetry"
	"github.com/pthm-cable/verdant/ui"
	"github.com/pthm-cable/verdant/world"
)

// Options configures game construction.
type Options struct {
	Seed           int64
	LogStats       bool
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
}

// Game holds the complete simulation state and its schedulers. All three
// engines (world update, plant spawning, creature updates) run on one
// sequential path; a tick either fully completes or never starts.
type Game struct {
	cfg  *config.Config
	opts Options

	world     *world.World
	terrain   *systems.TerrainGenerator
	flora     *systems.FloraSystem
	fauna     *systems.FaunaSystem
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	rng       *rand.Rand

	renderer *renderer.Renderer
	hud      *ui.HUD
	controls *ui.ControlsPanel

	tick        int
	paused      bool
	speed       int
	spawnEvery  int // ticks between plant spawn attempts
	faunaEvery  int // ticks between creature updates
	initialized bool
}

// NewGameWithOptions constructs and initializes a game.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	if opts.StepsPerUpdate < 1 {
		opts.StepsPerUpdate = 1
	}

	g := &Game{
		cfg:       cfg,
		opts:      opts,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		collector: telemetry.NewCollector(cfg.Telemetry.StatsWindowTicks),
		speed:     1,
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	} else {
		g.output = output
	}

	if !opts.Headless {
		g.renderer = renderer.New(cfg.Screen, cfg.Terrain.Seed)
		g.hud = ui.NewHUD()
		g.controls = ui.NewControlsPanel(int32(cfg.Grid.Width*cfg.Screen.TileSize+10), 10, 280)
	}

	if err := g.Init(); err != nil {
		slog.Error("failed to initialize simulation", "error", err)
	}

	return g
}

// Init builds the world from the current configuration: terrain generation,
// scheduler intervals, and initial creature seeding.
func (g *Game) Init() error {
	cfg := g.cfg

	g.world = world.New(cfg.Flora.MaxPlants, cfg.Fauna.MaxCreatures)

	g.terrain = systems.NewTerrainGenerator(cfg.Terrain)
	grid, err := g.terrain.Generate(cfg.Grid.Width, cfg.Grid.Height)
	if err != nil {
		return err
	}
	g.world.SetTerrain(grid)

	g.flora = systems.NewFloraSystem(systems.NewFertilityStrategy(cfg.Flora), g.rng)
	g.fauna = systems.NewFaunaSystem(cfg.Fauna, g.rng, g.collector)

	g.spawnEvery = intervalTicks(cfg.Flora.SpawnIntervalMS, cfg.Timing.UpdateIntervalMS)
	g.faunaEvery = intervalTicks(cfg.Fauna.UpdateIntervalMS, cfg.Timing.UpdateIntervalMS)

	g.spawnInitialCreatures()

	if err := g.output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	stats := g.world.GetStatistics()
	slog.Info("world initialized",
		"grid", cfg.Grid.Width*cfg.Grid.Height,
		"land_tiles", stats.LandTiles,
		"water_tiles", stats.WaterTiles,
		"avg_fertility", stats.AvgFertility,
		"creatures", stats.CreatureCount,
	)

	g.initialized = true
	return nil
}

// Reset clears all simulation state and rebuilds the world from the current
// configuration (which the controls panel may have changed).
func (g *Game) Reset() error {
	g.world.Clear()
	g.collector.Reset()
	g.tick = 0
	g.paused = false
	g.initialized = false
	return g.Init()
}

// step advances the simulation one tick. The world update runs every tick;
// plant spawning and creature updates run on their configured intervals, all
// sequentially on the same world.
func (g *Game) step() {
	if !g.initialized {
		return
	}

	g.world.Update()
	g.tick++

	if g.tick%g.spawnEvery == 0 {
		if g.flora.AttemptSpawn(g.world) {
			g.collector.RecordPlantSpawned()
		}
	}

	if g.tick%g.faunaEvery == 0 {
		g.fauna.Update(g.world)
	}

	if g.collector.WindowDone(g.tick) {
		stats := g.collector.Flush(g.world, g.tick)
		if g.opts.LogStats {
			stats.LogStats()
		}
		if err := g.output.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
	}
}

// Update runs one frame in graphical mode: input, then speed-many ticks
// unless paused.
func (g *Game) Update() {
	g.handleInput()
	if g.paused {
		return
	}
	for i := 0; i < g.speed; i++ {
		g.step()
	}
}

// UpdateHeadless runs StepsPerUpdate ticks with no input or rendering.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.opts.StepsPerUpdate; i++ {
		g.step()
	}
}

// Tick returns the current tick count.
func (g *Game) Tick() int { return g.tick }

// World returns the simulation state for read-only consumers.
func (g *Game) World() *world.World { return g.world }

// Unload releases output resources.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// intervalTicks converts a millisecond interval into whole ticks of the base
// update interval, with a floor of one tick.
func intervalTicks(intervalMS, updateMS int) int {
	if updateMS <= 0 {
		return 1
	}
	ticks := intervalMS / updateMS
	if ticks < 1 {
		return 1
	}
	return ticks
}
