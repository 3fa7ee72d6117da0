// Starfield preview tool - interactive parameter tuning with sliders.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/warpfield/components"
	"github.com/pthm-cable/warpfield/field"
)

const (
	windowWidth  = 760
	windowHeight = 420
	viewSize     = 360
	panelWidth   = windowWidth - viewSize - 40
)

type star struct {
	lat   components.Lateral
	depth components.Depth
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Starfield Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	rng := rand.New(rand.NewSource(42))

	params := field.Params{
		Warp:      1,
		PointSize: 0.5,
		Bounds:    field.Bounds{W: viewSize, H: viewSize},
	}
	starCount := 750
	lineWidth := float32(1)

	stars := make([]star, 0, starCount)
	resize := func(n int) {
		for len(stars) < n {
			var s star
			field.Respawn(rng, params.Bounds, &s.lat, &s.depth)
			stars = append(stars, s)
		}
		stars = stars[:n]
	}
	resize(starCount)

	viewX := float32(10)
	viewY := float32(30)
	centerX := viewX + viewSize/2
	centerY := viewY + viewSize/2

	paused := false

	for !rl.WindowShouldClose() {
		deltaMS := rl.GetFrameTime() * 1000

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// View area
		rl.DrawRectangle(int32(viewX), int32(viewY), viewSize, viewSize, rl.Black)

		if !paused {
			for i := range stars {
				s := &stars[i]
				prim, ok := field.UpdateStar(rng, &s.lat, &s.depth, deltaMS, params)
				if !ok {
					continue
				}
				if prim.Kind == field.PrimCircle {
					rl.DrawCircleV(rl.Vector2{X: centerX + prim.X1, Y: centerY + prim.Y1}, prim.Radius, rl.White)
				} else {
					rl.DrawLineEx(
						rl.Vector2{X: centerX + prim.X1, Y: centerY + prim.Y1},
						rl.Vector2{X: centerX + prim.X2, Y: centerY + prim.Y2},
						lineWidth, rl.White,
					)
				}
			}
		}

		rl.DrawRectangleLines(int32(viewX), int32(viewY), viewSize, viewSize, rl.DarkGray)
		rl.DrawText("Starfield", int32(viewX), 8, 16, rl.DarkGray)

		// Control panel
		panelX := float32(viewSize + 30)
		panelY := float32(30)

		rl.DrawText("Field Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		// Warp slider (direct internal range, no UI remap here)
		rl.DrawText("Warp speed", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		params.Warp = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"1", "11",
			params.Warp, 1, 11,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.Warp), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		panelY += 35

		// Star count slider
		rl.DrawText("Star count", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newCount := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"100", "1500",
			float32(starCount), 100, 1500,
		)
		rl.DrawText(fmt.Sprintf("%d", starCount), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int(newCount) != starCount {
			starCount = int(newCount)
			resize(starCount)
		}
		panelY += 35

		// Point size slider
		rl.DrawText("Point size", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		params.PointSize = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.25", "2.0",
			params.PointSize, 0.25, 2.0,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.PointSize), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		panelY += 35

		// Line width slider
		rl.DrawText("Line width", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		lineWidth = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"1", "4",
			lineWidth, 1, 4,
		)
		rl.DrawText(fmt.Sprintf("%.1f", lineWidth), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		panelY += 45

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(paused, "Resume", "Pause")) {
			paused = !paused
		}

		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reseed") {
			stars = stars[:0]
			resize(starCount)
		}
		panelY += 55

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		yamlLines := []string{
			"field:",
			fmt.Sprintf("  star_count: %d", starCount),
			fmt.Sprintf("  point_size: %.2f", params.PointSize),
			fmt.Sprintf("  line_width: %.1f", lineWidth),
		}
		for _, line := range yamlLines {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.EndDrawing()
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
