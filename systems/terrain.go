package systems

import (
	"fmt"
	"math/rand"

	"github.com/pthm-cable/verdant/config"
	"github.com/pthm-cable/verdant/world"
)

// TerrainGenerator produces finished tile grids. Generation is deterministic:
// the same parameters yield a bit-identical grid.
type TerrainGenerator struct {
	cfg config.TerrainConfig
}

// NewTerrainGenerator creates a generator with the given terrain parameters.
func NewTerrainGenerator(cfg config.TerrainConfig) *TerrainGenerator {
	return &TerrainGenerator{cfg: cfg}
}

// Generate runs the five-stage pipeline: heightmap synthesis, hydraulic
// erosion, water/land classification, fertility field, and grid finalization.
// Parameters are validated before any work happens.
func (g *TerrainGenerator) Generate(width, height int) (*world.Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("terrain: grid dimensions must be >= 1, got %dx%d", width, height)
	}
	if g.cfg.SeaLevel < 0 || g.cfg.SeaLevel > 1 {
		return nil, fmt.Errorf("terrain: sea_level must be in [0,1], got %g", g.cfg.SeaLevel)
	}
	if g.cfg.FertilityMaxDistance < 0 {
		return nil, fmt.Errorf("terrain: fertility_max_distance must be >= 0, got %d", g.cfg.FertilityMaxDistance)
	}
	if g.cfg.FertilityFalloffRate <= 0 {
		return nil, fmt.Errorf("terrain: fertility_falloff_rate must be > 0, got %g", g.cfg.FertilityFalloffRate)
	}

	// Stage 1: multi-octave heightmap
	noise := NewValueNoise(g.cfg.Seed)
	hm := noise.Heightmap(width, height)

	// Stage 2: droplet erosion, seeded so runs are reproducible
	rng := rand.New(rand.NewSource(g.cfg.Seed))
	erodeHeightmap(hm, width, height, g.cfg.SeaLevel, rng)

	// Stage 3: classify water vs land
	isWater := make([][]bool, height)
	for y := range isWater {
		isWater[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			isWater[y][x] = hm[y][x] < g.cfg.SeaLevel
		}
	}

	// Stage 4: fertility from water proximity
	fertility := fertilityField(isWater, width, height, g.cfg.FertilityMaxDistance, g.cfg.FertilityFalloffRate)

	// Stage 5: finalize the grid
	grid := world.NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if isWater[y][x] {
				grid.Set(world.NewWaterTile(x, y))
			} else {
				grid.Set(world.NewLandTile(x, y, fertility[y][x]))
			}
		}
	}
	return grid, nil
}
