package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/warpfield/telemetry"
	"github.com/pthm-cable/warpfield/ui"
)

// Update runs input handling and one simulation step for the frame.
func (g *Game) Update() {
	g.perf.StartTick()

	g.perf.StartPhase(telemetry.PhaseInput)
	g.handleInput()

	deltaMS := rl.GetFrameTime() * 1000
	if deltaMS < 0 {
		deltaMS = 0
	}
	g.lastFrameMS = deltaMS

	if !g.paused {
		g.perf.StartPhase(telemetry.PhaseSimulate)
		g.step(deltaMS)
	}

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.collector.RecordFrameMS(float64(deltaMS))
	g.flushTelemetry()
}

// Draw renders the frame: starfield first, then the UI panels. The warp
// slider is immediate-mode, so its value is read back here and fed
// through the mapping.
func (g *Game) Draw() {
	g.perf.StartPhase(telemetry.PhaseDraw)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.starRenderer.Present(g.prims, g.pointMode())

	g.perf.StartPhase(telemetry.PhaseUI)

	raw := g.warpPanel.Draw(g.sliderValue, g.params.Warp)
	if raw != g.sliderValue {
		g.SetSliderValue(raw)
	}

	g.statsPanel.Draw(ui.QuickStatsData{
		FPS:     rl.GetFPS(),
		Stars:   g.starCount,
		FrameMS: g.lastFrameMS,
		Paused:  g.paused,
	})

	rl.EndDrawing()

	g.perf.EndTick()
	g.perf.RecordFrame()
}
