package world

// World is the aggregate state container: it owns the grid, the plant list,
// and the creature list, and is the sole mutator of all three. Cross-entity
// consistency (tile occupancy vs. plant list) is enforced only through the
// add/remove operations here.
type World struct {
	grid      *Grid
	plants    []*Plant
	creatures []*Creature

	ticks        int
	maxPlants    int
	maxCreatures int

	nextCreatureID uint32
}

// Statistics is a read-only snapshot of aggregate world state.
type Statistics struct {
	PlantCount    int
	CreatureCount int
	MaleCount     int
	FemaleCount   int
	NewbornCount  int
	AdultCount    int
	LandTiles     int
	WaterTiles    int
	AvgFertility  float64
	MaxPlants     int
	MaxCreatures  int
}

// New creates an empty world with the given capacity bounds.
func New(maxPlants, maxCreatures int) *World {
	return &World{
		maxPlants:    maxPlants,
		maxCreatures: maxCreatures,
	}
}

// SetTerrain installs the terrain grid. Existing entities are dropped since
// their positions may no longer reference valid tiles.
func (w *World) SetTerrain(g *Grid) {
	w.grid = g
	w.plants = w.plants[:0]
	w.creatures = w.creatures[:0]
}

// Grid returns the terrain grid for read-only iteration.
func (w *World) Grid() *Grid { return w.grid }

// Plants returns the plant list for read-only iteration.
func (w *World) Plants() []*Plant { return w.plants }

// Creatures returns the creature list for read-only iteration.
func (w *World) Creatures() []*Creature { return w.creatures }

// Ticks returns the number of completed world updates.
func (w *World) Ticks() int { return w.ticks }

// MaxPlants returns the plant capacity bound.
func (w *World) MaxPlants() int { return w.maxPlants }

// MaxCreatures returns the creature capacity bound.
func (w *World) MaxCreatures() int { return w.maxCreatures }

// Tile returns the tile at (x, y), or nil when out of bounds or before
// terrain was set.
func (w *World) Tile(x, y int) *Tile {
	if w.grid == nil {
		return nil
	}
	return w.grid.At(x, y)
}

// AddPlant places a plant if capacity allows and its tile can support it.
// Returns false on any ordinary rejection; the caller retries next tick.
func (w *World) AddPlant(p *Plant) bool {
	if len(w.plants) >= w.maxPlants {
		return false
	}
	tile := w.Tile(p.X, p.Y)
	if tile == nil || !tile.CanSupportPlant() {
		return false
	}
	w.plants = append(w.plants, p)
	tile.hasPlant = true
	return true
}

// RemovePlant removes a plant and clears its tile's occupancy flag.
func (w *World) RemovePlant(p *Plant) {
	for i, q := range w.plants {
		if q == p {
			w.plants = append(w.plants[:i], w.plants[i+1:]...)
			break
		}
	}
	if tile := w.Tile(p.X, p.Y); tile != nil {
		tile.hasPlant = false
	}
}

// PlantAt returns the plant occupying (x, y), or nil.
func (w *World) PlantAt(x, y int) *Plant {
	for _, p := range w.plants {
		if p.X == x && p.Y == y {
			return p
		}
	}
	return nil
}

// AddCreature adds a creature if capacity allows, assigning its ID.
func (w *World) AddCreature(c *Creature) bool {
	if len(w.creatures) >= w.maxCreatures {
		return false
	}
	w.nextCreatureID++
	c.ID = w.nextCreatureID
	w.creatures = append(w.creatures, c)
	return true
}

// RemoveDeadCreatures filters out creatures whose Alive flag has dropped.
func (w *World) RemoveDeadCreatures() {
	live := w.creatures[:0]
	for _, c := range w.creatures {
		if c.Alive {
			live = append(live, c)
		}
	}
	w.creatures = live
}

// Update advances the world by one tick: plants age and the tick counter
// increments.
func (w *World) Update() {
	for _, p := range w.plants {
		p.Update()
	}
	w.ticks++
}

// Clear drops all entities and terrain, returning the world to its
// pre-initialization state.
func (w *World) Clear() {
	w.grid = nil
	w.plants = nil
	w.creatures = nil
	w.ticks = 0
}

// GetStatistics computes a snapshot of aggregate state. O(grid + creatures).
func (w *World) GetStatistics() Statistics {
	stats := Statistics{
		PlantCount:    len(w.plants),
		CreatureCount: len(w.creatures),
		MaxPlants:     w.maxPlants,
		MaxCreatures:  w.maxCreatures,
	}

	for _, c := range w.creatures {
		if c.Gender == Male {
			stats.MaleCount++
		} else {
			stats.FemaleCount++
		}
		if c.Stage == Newborn {
			stats.NewbornCount++
		} else {
			stats.AdultCount++
		}
	}

	if w.grid == nil {
		return stats
	}

	var fertilitySum float64
	w.grid.Each(func(t *Tile) {
		if t.Kind == Land {
			stats.LandTiles++
			fertilitySum += t.Fertility
		} else {
			stats.WaterTiles++
		}
	})
	if stats.LandTiles > 0 {
		stats.AvgFertility = fertilitySum / float64(stats.LandTiles)
	}

	return stats
}
