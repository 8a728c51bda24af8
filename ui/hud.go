// Package ui renders the heads-up display and the controls panel. Both read
// snapshots only; configuration edits are applied on restart.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/verdant/world"
)

// HUDData holds everything needed to render the main HUD.
type HUDData struct {
	Title      string
	Stats      world.Statistics
	Tick       int
	SimTime    int // seconds of simulated time
	Speed      int
	FPS        int32
	Paused     bool
	GridBottom int32 // pixel y just below the rendered grid
}

// HUD renders the main heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD below the grid.
func (h *HUD) Draw(data HUDData) {
	y := data.GridBottom + 8

	rl.DrawText(data.Title, 10, y, 20, rl.DarkGray)

	rl.DrawText(
		fmt.Sprintf("Plants: %d/%d | Creatures: %d/%d (M %d / F %d, newborn %d / adult %d)",
			data.Stats.PlantCount, data.Stats.MaxPlants,
			data.Stats.CreatureCount, data.Stats.MaxCreatures,
			data.Stats.MaleCount, data.Stats.FemaleCount,
			data.Stats.NewbornCount, data.Stats.AdultCount),
		10, y+26, 16, rl.Gray,
	)

	rl.DrawText(
		fmt.Sprintf("Land: %d | Water: %d | Avg fertility: %.2f",
			data.Stats.LandTiles, data.Stats.WaterTiles, data.Stats.AvgFertility),
		10, y+46, 16, rl.Gray,
	)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | Time: %ds | Speed: %dx | FPS: %d",
			data.Tick, data.SimTime, data.Speed, data.FPS),
		10, y+66, 16, rl.Gray,
	)

	status := "Running"
	if data.Paused {
		status = "PAUSED"
	}
	rl.DrawText(status, 10, y+86, 16, rl.Orange)
}

// DrawControls renders the key legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32) {
	rl.DrawText("space pause | n step | r restart | +/- speed", 10, screenHeight-25, 14, rl.LightGray)
}
