package systems

import (
	"math/rand"

	"github.com/pthm-cable/verdant/config"
	"github.com/pthm-cable/verdant/world"
)

// SpawnStrategy calculates the spawn probability for a tile, in [0, 1].
type SpawnStrategy interface {
	Probability(t *world.Tile) float64
}

// FertilityStrategy weights spawn probability by land fertility, strongly
// favoring tiles near water.
type FertilityStrategy struct {
	BaseProbability     float64
	FertilityMultiplier float64
}

// NewFertilityStrategy creates the fertility-based spawn strategy.
func NewFertilityStrategy(cfg config.FloraConfig) FertilityStrategy {
	return FertilityStrategy{
		BaseProbability:     cfg.BaseSpawnProb,
		FertilityMultiplier: cfg.FertilityMultiplier,
	}
}

// Probability returns 0 for tiles that cannot support a plant, otherwise
// min(base * (1 + fertility * multiplier), 1).
func (s FertilityStrategy) Probability(t *world.Tile) float64 {
	if !t.CanSupportPlant() {
		return 0
	}
	p := s.BaseProbability * (1 + t.Fertility*s.FertilityMultiplier)
	if p > 1 {
		return 1
	}
	return p
}

// FloraSystem spawns plants using a pluggable probability strategy.
type FloraSystem struct {
	strategy SpawnStrategy
	rng      *rand.Rand
}

// NewFloraSystem creates the plant spawner.
func NewFloraSystem(strategy SpawnStrategy, rng *rand.Rand) *FloraSystem {
	return &FloraSystem{strategy: strategy, rng: rng}
}

// AttemptSpawn makes one weighted draw over all eligible tiles and places a
// plant there. Returns false when at capacity, when no tile is eligible, or
// when the world rejects the add. Capacity and occupancy are still enforced
// by the world on the final add.
func (s *FloraSystem) AttemptSpawn(w *world.World) bool {
	stats := w.GetStatistics()
	if stats.PlantCount >= stats.MaxPlants {
		return false
	}
	grid := w.Grid()
	if grid == nil {
		return false
	}

	var eligible []*world.Tile
	var weights []float64
	var total float64
	grid.Each(func(t *world.Tile) {
		p := s.strategy.Probability(t)
		if p > 0 {
			eligible = append(eligible, t)
			weights = append(weights, p)
			total += p
		}
	})
	if len(eligible) == 0 {
		return false
	}

	// Weighted random draw; dividing each weight by the total is equivalent
	// to drawing against the running sum directly.
	r := s.rng.Float64() * total
	chosen := eligible[len(eligible)-1]
	for i, weight := range weights {
		if r < weight {
			chosen = eligible[i]
			break
		}
		r -= weight
	}

	return w.AddPlant(world.NewPlant(chosen.X, chosen.Y))
}
