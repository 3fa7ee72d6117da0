package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// WarpPanel renders the warp-speed slider. The slider exposes the gentle
// UI range; the game quantizes and remaps the returned value.
type WarpPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32

	min, max float32
}

// NewWarpPanel creates a warp control panel.
func NewWarpPanel(x, y, width int32, min, max float32) *WarpPanel {
	return &WarpPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		min:      min,
		max:      max,
	}
}

// Draw renders the panel and returns the slider's current raw value.
// raygui is immediate-mode, so reading the control happens during draw.
func (w *WarpPanel) Draw(value, warp float32) float32 {
	r := w.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	panelHeight := lineHeight*2 + padding*2 + 24

	r.DrawPanel(w.x, w.y, w.width, panelHeight)

	y := w.y + padding
	rl.DrawText("Warp", w.x+padding, y, r.Theme.HeaderFontSize, rl.White)
	warpText := fmt.Sprintf("%.1fx", warp)
	warpWidth := rl.MeasureText(warpText, r.Theme.HeaderFontSize)
	rl.DrawText(warpText, w.x+w.width-padding-warpWidth, y, r.Theme.HeaderFontSize, r.Theme.ValueColor)
	y += lineHeight + 4

	newValue := gui.SliderBar(
		rl.Rectangle{
			X:      float32(w.x + padding),
			Y:      float32(y),
			Width:  float32(w.width - padding*2),
			Height: 20,
		},
		fmt.Sprintf("%.0f", w.min), fmt.Sprintf("%.0f", w.max),
		value, w.min, w.max,
	)

	return newValue
}

// QuickStatsData holds data for the quick stats panel.
type QuickStatsData struct {
	FPS     int32
	Stars   int
	FrameMS float32
	Paused  bool
}

// QuickStatsPanel renders frame and field statistics.
type QuickStatsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewQuickStatsPanel creates a quick stats panel.
func NewQuickStatsPanel(x, y, width int32) *QuickStatsPanel {
	return &QuickStatsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
	}
}

// Toggle switches panel visibility.
func (q *QuickStatsPanel) Toggle() bool {
	q.visible = !q.visible
	return q.visible
}

// Draw renders the quick stats panel.
func (q *QuickStatsPanel) Draw(data QuickStatsData) int32 {
	if !q.visible {
		return q.y
	}

	r := q.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	lines := int32(4)
	if data.Paused {
		lines++
	}
	panelHeight := lineHeight*lines + padding*2 + 4

	r.DrawPanel(q.x, q.y, q.width, panelHeight)

	y := q.y + padding
	y = r.DrawSectionHeader(q.x+padding, y, "Field")
	y += 2
	y = r.DrawLabelValue(q.x+padding, y, "FPS", fmt.Sprintf("%d", data.FPS))
	y = r.DrawLabelValue(q.x+padding, y, "Stars", fmt.Sprintf("%d", data.Stars))
	y = r.DrawLabelValue(q.x+padding, y, "Frame", fmt.Sprintf("%.2f ms", data.FrameMS))
	if data.Paused {
		rl.DrawText("PAUSED", q.x+padding, y, r.Theme.FontSize, rl.Yellow)
		y += lineHeight
	}

	return y
}
