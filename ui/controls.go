package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/verdant/config"
)

// Action is a control request raised by the panel for the orchestrator.
type Action int

const (
	ActionNone Action = iota
	ActionTogglePause
	ActionRestart
)

// ControlsPanel edits the configuration surface. Slider changes only write
// config values; they take effect when the simulation is restarted.
type ControlsPanel struct {
	x, y  int32
	width int32
}

// NewControlsPanel creates the panel at the given position.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{x: x, y: y, width: width}
}

// Draw renders the panel and returns the requested action, if any.
func (c *ControlsPanel) Draw(cfg *config.Config, paused bool) Action {
	x := float32(c.x)
	w := float32(c.width)
	y := float32(c.y)

	rl.DrawText("Configuration", c.x, int32(y), 18, rl.DarkGray)
	y += 30

	cfg.Terrain.Seed = int64(c.slider(x, &y, w, "Seed", float32(cfg.Terrain.Seed), 0, 10000))
	cfg.Terrain.SeaLevel = float64(c.slider(x, &y, w, "Sea level", float32(cfg.Terrain.SeaLevel), 0, 1))
	cfg.Terrain.FertilityMaxDistance = int(c.slider(x, &y, w, "Fert. distance", float32(cfg.Terrain.FertilityMaxDistance), 1, 40))
	cfg.Terrain.FertilityFalloffRate = float64(c.slider(x, &y, w, "Fert. falloff", float32(cfg.Terrain.FertilityFalloffRate), 0.01, 0.5))
	cfg.Flora.MaxPlants = int(c.slider(x, &y, w, "Max plants", float32(cfg.Flora.MaxPlants), 10, 1000))
	cfg.Flora.SpawnIntervalMS = int(c.slider(x, &y, w, "Spawn ms", float32(cfg.Flora.SpawnIntervalMS), 50, 2000))
	cfg.Flora.BaseSpawnProb = float64(c.slider(x, &y, w, "Base prob", float32(cfg.Flora.BaseSpawnProb), 0.01, 1))
	cfg.Flora.FertilityMultiplier = float64(c.slider(x, &y, w, "Fert. mult", float32(cfg.Flora.FertilityMultiplier), 0, 10))
	cfg.Fauna.MaxCreatures = int(c.slider(x, &y, w, "Max creatures", float32(cfg.Fauna.MaxCreatures), 1, 300))
	cfg.Fauna.InitialCreatures = int(c.slider(x, &y, w, "Initial creatures", float32(cfg.Fauna.InitialCreatures), 0, 100))

	y += 10
	pauseLabel := "Pause"
	if paused {
		pauseLabel = "Resume"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w/2 - 5, Height: 30}, pauseLabel) {
		return ActionTogglePause
	}
	if gui.Button(rl.Rectangle{X: x + w/2 + 5, Y: y, Width: w/2 - 5, Height: 30}, "Restart") {
		return ActionRestart
	}
	return ActionNone
}

// slider draws one labeled slider row and advances the layout cursor.
func (c *ControlsPanel) slider(x float32, y *float32, w float32, label string, value, min, max float32) float32 {
	rl.DrawText(fmt.Sprintf("%s: %.2f", label, value), int32(x), int32(*y), 12, rl.Gray)
	*y += 16
	v := gui.SliderBar(rl.Rectangle{X: x, Y: *y, Width: w, Height: 16}, "", "", value, min, max)
	*y += 24
	return v
}
