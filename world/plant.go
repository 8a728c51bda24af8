package world

// Plant is a stationary vegetation entity occupying exactly one land tile.
type Plant struct {
	X, Y int
	Age  int
}

// NewPlant creates a plant at grid coordinates.
func NewPlant(x, y int) *Plant {
	return &Plant{X: x, Y: y}
}

// Update advances the plant by one tick.
func (p *Plant) Update() {
	p.Age++
}
