package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes keyboard controls and controls-panel actions in
// graphical mode.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyN) && g.paused {
		g.step()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		if err := g.Reset(); err != nil {
			slog.Error("failed to reset simulation", "error", err)
		}
	}
	if rl.IsKeyPressed(rl.KeyEqual) && g.speed < 16 {
		g.speed *= 2
	}
	if rl.IsKeyPressed(rl.KeyMinus) && g.speed > 1 {
		g.speed /= 2
	}
}
