package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/verdant/config"
	"github.com/pthm-cable/verdant/world"
)

// landWorld builds a world whose grid is all land at the given fertility.
func landWorld(w, h, maxPlants, maxCreatures int, fertility float64) *world.World {
	grid := world.NewGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			grid.Set(world.NewLandTile(x, y, fertility))
		}
	}
	wld := world.New(maxPlants, maxCreatures)
	wld.SetTerrain(grid)
	return wld
}

func TestFertilityStrategyProbability(t *testing.T) {
	s := FertilityStrategy{BaseProbability: 0.08, FertilityMultiplier: 3.0}

	tile := world.NewLandTile(0, 0, 1.0)
	if got := s.Probability(&tile); math.Abs(got-0.32) > 1e-9 {
		t.Errorf("probability = %v, want 0.32", got)
	}

	low := world.NewLandTile(0, 0, 0.1)
	if got := s.Probability(&low); math.Abs(got-0.08*1.3) > 1e-9 {
		t.Errorf("probability = %v, want %v", got, 0.08*1.3)
	}

	water := world.NewWaterTile(0, 0)
	if got := s.Probability(&water); got != 0 {
		t.Errorf("water probability = %v, want 0", got)
	}
}

func TestFertilityStrategyCapsAtOne(t *testing.T) {
	s := FertilityStrategy{BaseProbability: 0.5, FertilityMultiplier: 8.0}
	tile := world.NewLandTile(0, 0, 1.0)
	if got := s.Probability(&tile); got != 1.0 {
		t.Errorf("probability = %v, want capped at 1.0", got)
	}
}

func TestFertilityStrategyOccupiedTile(t *testing.T) {
	w := landWorld(3, 3, 10, 10, 0.8)
	if !w.AddPlant(world.NewPlant(1, 1)) {
		t.Fatal("expected plant to be added")
	}

	s := FertilityStrategy{BaseProbability: 0.08, FertilityMultiplier: 3.0}
	if got := s.Probability(w.Tile(1, 1)); got != 0 {
		t.Errorf("occupied tile probability = %v, want 0", got)
	}
	if got := s.Probability(w.Tile(0, 0)); got == 0 {
		t.Error("free land tile should have nonzero probability")
	}
}

func TestAttemptSpawnPlacesPlant(t *testing.T) {
	w := landWorld(5, 5, 10, 10, 0.9)
	rng := rand.New(rand.NewSource(1))
	flora := NewFloraSystem(NewFertilityStrategy(config.FloraConfig{
		MaxPlants:           10,
		BaseSpawnProb:       0.08,
		FertilityMultiplier: 8.0,
	}), rng)

	if !flora.AttemptSpawn(w) {
		t.Fatal("expected spawn to succeed on an all-land grid")
	}
	if len(w.Plants()) != 1 {
		t.Fatalf("plant count = %d, want 1", len(w.Plants()))
	}
	p := w.Plants()[0]
	if !w.Tile(p.X, p.Y).HasPlant() {
		t.Error("spawned plant's tile occupancy flag not set")
	}
}

func TestAttemptSpawnAtCapacity(t *testing.T) {
	w := landWorld(3, 3, 1, 10, 0.9)
	rng := rand.New(rand.NewSource(1))
	flora := NewFloraSystem(FertilityStrategy{BaseProbability: 0.08, FertilityMultiplier: 8.0}, rng)

	if !flora.AttemptSpawn(w) {
		t.Fatal("first spawn should succeed")
	}
	if flora.AttemptSpawn(w) {
		t.Error("spawn at capacity should fail")
	}
	if len(w.Plants()) != 1 {
		t.Errorf("plant count = %d, want 1", len(w.Plants()))
	}
}

func TestAttemptSpawnNoEligibleTiles(t *testing.T) {
	// All-water grid has no eligible tiles
	grid := world.NewGrid(4, 4)
	w := world.New(10, 10)
	w.SetTerrain(grid)

	rng := rand.New(rand.NewSource(1))
	flora := NewFloraSystem(FertilityStrategy{BaseProbability: 0.08, FertilityMultiplier: 8.0}, rng)

	if flora.AttemptSpawn(w) {
		t.Error("spawn on all-water grid should fail")
	}
}

func TestAttemptSpawnNeverExceedsCapacity(t *testing.T) {
	w := landWorld(6, 6, 5, 10, 1.0)
	rng := rand.New(rand.NewSource(3))
	flora := NewFloraSystem(FertilityStrategy{BaseProbability: 0.5, FertilityMultiplier: 8.0}, rng)

	for i := 0; i < 50; i++ {
		flora.AttemptSpawn(w)
		if len(w.Plants()) > 5 {
			t.Fatalf("plant count %d exceeded capacity 5", len(w.Plants()))
		}
	}
	if len(w.Plants()) != 5 {
		t.Errorf("plant count = %d, want exactly 5 after many attempts", len(w.Plants()))
	}
}
