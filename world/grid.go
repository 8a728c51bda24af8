package world

// Grid is the static spatial substrate: a row-major 2D array of tiles with
// dimensions fixed at generation time.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// NewGrid allocates a grid of the given dimensions. Tiles start as water;
// the terrain generator assigns their final kind and fertility.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.tiles[y*width+x] = NewWaterTile(x, y)
		}
	}
	return g
}

// Width returns the grid width in tiles.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in tiles.
func (g *Grid) Height() int { return g.height }

// At returns the tile at (x, y), or nil if the coordinates are out of bounds.
func (g *Grid) At(x, y int) *Tile {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return nil
	}
	return &g.tiles[y*g.width+x]
}

// Set replaces the tile at the tile's own coordinates. Used by the terrain
// generator during finalization; out-of-bounds tiles are ignored.
func (g *Grid) Set(t Tile) {
	if t.X < 0 || t.X >= g.width || t.Y < 0 || t.Y >= g.height {
		return
	}
	g.tiles[t.Y*g.width+t.X] = t
}

// Each calls fn for every tile in row-major order.
func (g *Grid) Each(fn func(t *Tile)) {
	for i := range g.tiles {
		fn(&g.tiles[i])
	}
}
