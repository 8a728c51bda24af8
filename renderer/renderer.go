// Package renderer draws read-only world snapshots with raylib. It never
// mutates simulation state.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/verdant/config"
	"github.com/pthm-cable/verdant/world"
)

// fertilityStop is a point on the land color gradient.
type fertilityStop struct {
	fertility float64
	color     rl.Color
}

// Land gradient from tan (infertile) to dark green (very fertile).
var fertilityStops = []fertilityStop{
	{0.00, rl.NewColor(0xC4, 0xA5, 0x7B, 255)},
	{0.15, rl.NewColor(0xA8, 0x95, 0x6C, 255)},
	{0.30, rl.NewColor(0x8B, 0x9D, 0x5C, 255)},
	{0.45, rl.NewColor(0x6B, 0x8E, 0x4D, 255)},
	{0.60, rl.NewColor(0x4A, 0x7C, 0x3E, 255)},
	{0.80, rl.NewColor(0x2D, 0x6B, 0x2F, 255)},
	{1.00, rl.NewColor(0x1A, 0x55, 0x20, 255)},
}

var (
	waterColor = rl.NewColor(0x1E, 0x90, 0xFF, 255)
	plantColor = rl.NewColor(0x0A, 0x3D, 0x0F, 255)

	maleAdultColor     = rl.NewColor(0x00, 0x00, 0xFF, 255)
	femaleAdultColor   = rl.NewColor(0xFF, 0x14, 0x93, 255)
	maleNewbornColor   = rl.NewColor(0x87, 0xCE, 0xEB, 255)
	femaleNewbornColor = rl.NewColor(0xFF, 0xB6, 0xC1, 255)
)

// Renderer draws the terrain grid, plants, and creatures.
type Renderer struct {
	tileSize int32
	jitter   opensimplex.Noise
}

// New creates a renderer. The noise source drives per-tile color jitter so
// large uniform regions don't look flat.
func New(cfg config.ScreenConfig, seed int64) *Renderer {
	return &Renderer{
		tileSize: int32(cfg.TileSize),
		jitter:   opensimplex.New(seed),
	}
}

// Draw renders the whole world snapshot.
func (r *Renderer) Draw(w *world.World) {
	grid := w.Grid()
	if grid == nil {
		return
	}

	ts := r.tileSize
	grid.Each(func(t *world.Tile) {
		var c rl.Color
		if t.Kind == world.Water {
			c = waterColor
		} else {
			c = r.landColor(t)
		}
		rl.DrawRectangle(int32(t.X)*ts, int32(t.Y)*ts, ts, ts, c)
	})

	half := float32(ts) / 2
	for _, p := range w.Plants() {
		rl.DrawCircle(int32(p.X)*ts+ts/2, int32(p.Y)*ts+ts/2, half*0.7, plantColor)
	}

	for _, c := range w.Creatures() {
		radius := half * 0.9
		if c.Stage == world.Newborn {
			radius = half * 0.5
		}
		rl.DrawCircle(int32(c.X)*ts+ts/2, int32(c.Y)*ts+ts/2, radius, creatureColor(c))
	}
}

// landColor interpolates the fertility gradient and applies a small noise
// jitter for an organic look.
func (r *Renderer) landColor(t *world.Tile) rl.Color {
	c := fertilityColor(t.Fertility)
	n := r.jitter.Eval2(float64(t.X)*0.3, float64(t.Y)*0.3)
	d := int32(n * 10)
	return rl.NewColor(
		clampChannel(int32(c.R)+d),
		clampChannel(int32(c.G)+d),
		clampChannel(int32(c.B)+d),
		255,
	)
}

// fertilityColor linearly interpolates between the two gradient stops
// surrounding the fertility value.
func fertilityColor(fertility float64) rl.Color {
	for i := 0; i < len(fertilityStops)-1; i++ {
		lo, hi := fertilityStops[i], fertilityStops[i+1]
		if fertility < lo.fertility || fertility > hi.fertility {
			continue
		}
		span := hi.fertility - lo.fertility
		t := 0.0
		if span > 0 {
			t = (fertility - lo.fertility) / span
		}
		return rl.NewColor(
			lerpChannel(lo.color.R, hi.color.R, t),
			lerpChannel(lo.color.G, hi.color.G, t),
			lerpChannel(lo.color.B, hi.color.B, t),
			255,
		)
	}
	return fertilityStops[len(fertilityStops)-1].color
}

func creatureColor(c *world.Creature) rl.Color {
	if c.Stage == world.Newborn {
		if c.Gender == world.Male {
			return maleNewbornColor
		}
		return femaleNewbornColor
	}
	if c.Gender == world.Male {
		return maleAdultColor
	}
	return femaleAdultColor
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func clampChannel(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
