package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/verdant/config"
	"github.com/pthm-cable/verdant/world"
)

func testTerrainCfg() config.TerrainConfig {
	return config.TerrainConfig{
		Seed:                 42,
		SeaLevel:             0.35,
		FertilityMaxDistance: 15,
		FertilityFalloffRate: 0.08,
	}
}

func TestGenerateDeterministic(t *testing.T) {
	gen := NewTerrainGenerator(testTerrainCfg())

	a, err := gen.Generate(40, 40)
	if err != nil {
		t.Fatalf("first generate: %v", err)
	}
	b, err := gen.Generate(40, 40)
	if err != nil {
		t.Fatalf("second generate: %v", err)
	}

	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			ta, tb := a.At(x, y), b.At(x, y)
			if ta.Kind != tb.Kind {
				t.Fatalf("kind mismatch at (%d,%d)", x, y)
			}
			if ta.Fertility != tb.Fertility {
				t.Fatalf("fertility mismatch at (%d,%d): %v vs %v", x, y, ta.Fertility, tb.Fertility)
			}
		}
	}
}

func TestGenerateScenario100x100(t *testing.T) {
	gen := NewTerrainGenerator(testTerrainCfg())

	grid, err := gen.Generate(100, 100)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	land, water := 0, 0
	var fertilitySum float64
	grid.Each(func(tile *world.Tile) {
		if tile.Kind == world.Land {
			land++
			fertilitySum += tile.Fertility
		} else {
			water++
		}
	})

	if land+water != 10000 {
		t.Errorf("tile count = %d, want 10000", land+water)
	}
	if land == 0 {
		t.Fatal("expected some land at sea level 0.35")
	}

	avg := fertilitySum / float64(land)
	if avg < config.MinFertility || avg > config.MaxFertility {
		t.Errorf("avg fertility = %v, want in [%v,%v]", avg, config.MinFertility, config.MaxFertility)
	}
}

func TestGenerateFertilityBounds(t *testing.T) {
	gen := NewTerrainGenerator(testTerrainCfg())

	grid, err := gen.Generate(60, 60)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	grid.Each(func(tile *world.Tile) {
		if tile.Kind != world.Land {
			return
		}
		if tile.Fertility < config.MinFertility || tile.Fertility > config.MaxFertility {
			t.Fatalf("fertility out of bounds at (%d,%d): %v", tile.X, tile.Y, tile.Fertility)
		}
	})
}

func TestGenerateRejectsInvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		cfg    config.TerrainConfig
		width  int
		height int
	}{
		{"zero width", testTerrainCfg(), 0, 10},
		{"zero height", testTerrainCfg(), 10, 0},
		{"negative dimensions", testTerrainCfg(), -5, -5},
		{"sea level above 1", config.TerrainConfig{Seed: 1, SeaLevel: 1.5, FertilityMaxDistance: 15, FertilityFalloffRate: 0.08}, 10, 10},
		{"negative sea level", config.TerrainConfig{Seed: 1, SeaLevel: -0.1, FertilityMaxDistance: 15, FertilityFalloffRate: 0.08}, 10, 10},
		{"zero falloff", config.TerrainConfig{Seed: 1, SeaLevel: 0.35, FertilityMaxDistance: 15}, 10, 10},
		{"negative max distance", config.TerrainConfig{Seed: 1, SeaLevel: 0.35, FertilityMaxDistance: -1, FertilityFalloffRate: 0.08}, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewTerrainGenerator(tt.cfg)
			if _, err := gen.Generate(tt.width, tt.height); err == nil {
				t.Error("expected an error, got nil")
			}
		})
	}
}

func TestDistanceToFertility(t *testing.T) {
	const falloff = 0.08

	if got := distanceToFertility(0, falloff); got != config.MaxFertility {
		t.Errorf("distance 0: fertility = %v, want %v", got, config.MaxFertility)
	}

	// Monotonic decay: closer to water means at least as fertile
	prev := distanceToFertility(0, falloff)
	for _, d := range []float64{0.5, 1, 2, 5, 10, 20, 50} {
		f := distanceToFertility(d, falloff)
		if f > prev {
			t.Errorf("fertility increased with distance at %v: %v > %v", d, f, prev)
		}
		prev = f
	}

	// Unreachable water decays to the floor
	if got := distanceToFertility(math.Inf(1), falloff); got != config.MinFertility {
		t.Errorf("infinite distance: fertility = %v, want %v", got, config.MinFertility)
	}
}

func TestNearestWaterDistance(t *testing.T) {
	water := []waterPos{{0, 0}, {10, 0}}

	if got := nearestWaterDistance(0, 0, water, 15); got != 0 {
		t.Errorf("distance at water cell = %v, want 0", got)
	}
	if got := nearestWaterDistance(3, 4, water, 15); math.Abs(got-5) > 1e-9 {
		t.Errorf("distance = %v, want 5", got)
	}
	if got := nearestWaterDistance(5, 5, nil, 15); !math.IsInf(got, 1) {
		t.Errorf("distance with no water = %v, want +Inf", got)
	}

	// Beyond the Manhattan cutoff nothing is considered
	if got := nearestWaterDistance(50, 50, water, 15); !math.IsInf(got, 1) {
		t.Errorf("distance past cutoff = %v, want +Inf", got)
	}
}

func TestValueNoise(t *testing.T) {
	n := NewValueNoise(42)

	if a, b := n.Sample(3.7, 9.2), n.Sample(3.7, 9.2); a != b {
		t.Error("noise must be deterministic for identical inputs")
	}

	other := NewValueNoise(43)
	same := true
	for i := 0; i < 16 && same; i++ {
		x, y := float64(i)*1.3, float64(i)*2.1
		same = n.Sample(x, y) == other.Sample(x, y)
	}
	if same {
		t.Error("different seeds should produce different noise fields")
	}
}

func TestHeightmapNormalized(t *testing.T) {
	n := NewValueNoise(7)
	hm := n.Heightmap(32, 24)

	if len(hm) != 24 || len(hm[0]) != 32 {
		t.Fatalf("heightmap dimensions = %dx%d, want 32x24", len(hm[0]), len(hm))
	}
	for y := range hm {
		for x := range hm[y] {
			if hm[y][x] < 0 || hm[y][x] > 1 {
				t.Fatalf("height out of [0,1] at (%d,%d): %v", x, y, hm[y][x])
			}
		}
	}
}

func TestErosionKeepsHeightsClamped(t *testing.T) {
	n := NewValueNoise(11)
	hm := n.Heightmap(30, 30)

	rng := rand.New(rand.NewSource(11))
	erodeHeightmap(hm, 30, 30, 0.35, rng)

	for y := range hm {
		for x := range hm[y] {
			if hm[y][x] < 0 || hm[y][x] > 1 {
				t.Fatalf("height out of [0,1] at (%d,%d): %v", x, y, hm[y][x])
			}
		}
	}
}
