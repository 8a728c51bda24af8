package game

import (
	"log/slog"

	"github.com/pthm-cable/verdant/world"
)

// spawnInitialCreatures seeds the starting population: adults on random land
// tiles with enough plants eaten to reproduce soon after the run begins.
func (g *Game) spawnInitialCreatures() {
	cfg := g.cfg.Fauna

	var land []*world.Tile
	g.world.Grid().Each(func(t *world.Tile) {
		if t.CanSupportPlant() {
			land = append(land, t)
		}
	})
	if len(land) == 0 {
		slog.Warn("no land tiles available for initial creatures")
		return
	}

	for i := 0; i < cfg.InitialCreatures; i++ {
		tile := land[g.rng.Intn(len(land))]
		gender := world.Male
		if g.rng.Intn(2) == 1 {
			gender = world.Female
		}
		c := world.NewCreature(tile.X, tile.Y, gender, world.Adult, cfg)
		c.PlantsEaten = cfg.PlantsToReproduce
		if !g.world.AddCreature(c) {
			break
		}
	}
}
