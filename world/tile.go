// Package world holds the simulation data model: the tile grid, plants,
// creatures, and the World aggregate that owns them.
package world

import "github.com/pthm-cable/verdant/config"

// TileKind represents the type of terrain in a tile.
type TileKind uint8

const (
	Water TileKind = iota
	Land
)

// Tile is one cell of the terrain grid. Water tiles carry no fertility and
// never support plants. Land tiles carry a fertility scalar in
// [config.MinFertility, config.MaxFertility], fixed at generation time.
type Tile struct {
	X, Y      int
	Kind      TileKind
	Fertility float64

	// hasPlant is mutated only by World when a plant is added or removed.
	hasPlant bool
}

// NewWaterTile creates a water tile at grid coordinates.
func NewWaterTile(x, y int) Tile {
	return Tile{X: x, Y: y, Kind: Water}
}

// NewLandTile creates a land tile with its fertility clamped to the
// documented bounds.
func NewLandTile(x, y int, fertility float64) Tile {
	if fertility < config.MinFertility {
		fertility = config.MinFertility
	}
	if fertility > config.MaxFertility {
		fertility = config.MaxFertility
	}
	return Tile{X: x, Y: y, Kind: Land, Fertility: fertility}
}

// CanSupportPlant reports whether a plant may be placed on this tile.
func (t *Tile) CanSupportPlant() bool {
	return t.Kind == Land && !t.hasPlant
}

// HasPlant reports whether a plant currently occupies this tile.
func (t *Tile) HasPlant() bool {
	return t.hasPlant
}
