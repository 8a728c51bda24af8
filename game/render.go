package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/verdant/ui"
)

// Draw renders one frame: terrain, entities, HUD, and the controls panel.
// Nothing in the draw path mutates simulation state.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(240, 240, 240, 255))

	g.renderer.Draw(g.world)

	stats := g.world.GetStatistics()
	g.hud.Draw(ui.HUDData{
		Title:      "Verdant",
		Stats:      stats,
		Tick:       g.tick,
		SimTime:    g.tick * g.cfg.Timing.UpdateIntervalMS / 1000,
		Speed:      g.speed,
		FPS:        rl.GetFPS(),
		Paused:     g.paused,
		GridBottom: int32(g.cfg.Grid.Height * g.cfg.Screen.TileSize),
	})
	g.hud.DrawControls(int32(g.cfg.Screen.Height))

	action := g.controls.Draw(g.cfg, g.paused)
	switch action {
	case ui.ActionTogglePause:
		g.paused = !g.paused
	case ui.ActionRestart:
		if err := g.Reset(); err != nil {
			slog.Error("failed to restart simulation", "error", err)
		}
	}

	rl.EndDrawing()
}
