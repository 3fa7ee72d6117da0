package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Nudge the warp slider from the keyboard, one step at a time
	if rl.IsKeyPressed(rl.KeyUp) {
		g.SetSliderValue(g.sliderValue + g.mapping.Step)
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		g.SetSliderValue(g.sliderValue - g.mapping.Step)
	}

	// Stats panel toggle
	if rl.IsKeyPressed(rl.KeyS) {
		g.statsPanel.Toggle()
	}
}
