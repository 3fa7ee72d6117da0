package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type circleCmd struct {
	cx, cy, radius float32
}

type lineCmd struct {
	x1, y1, x2, y2 float32
}

// RaylibSurface buffers primitives and draws them through raylib inside
// the current BeginDrawing/EndDrawing pass. Centered coordinates are
// translated to screen space using the view center.
type RaylibSurface struct {
	centerX, centerY float32

	circles []circleCmd
	lines   []lineCmd
}

// NewRaylibSurface creates a surface for a view of the given size.
func NewRaylibSurface(width, height float32) *RaylibSurface {
	return &RaylibSurface{
		centerX: width / 2,
		centerY: height / 2,
	}
}

// Clear discards the buffered primitives. The buffers are reused frame
// to frame to avoid per-frame allocation.
func (s *RaylibSurface) Clear() {
	s.circles = s.circles[:0]
	s.lines = s.lines[:0]
}

// Circle queues a filled circle.
func (s *RaylibSurface) Circle(cx, cy, radius float32) {
	s.circles = append(s.circles, circleCmd{cx: cx, cy: cy, radius: radius})
}

// Line queues a line segment.
func (s *RaylibSurface) Line(x1, y1, x2, y2 float32) {
	s.lines = append(s.lines, lineCmd{x1: x1, y1: y1, x2: x2, y2: y2})
}

// Fill renders the queued circles in the given color.
func (s *RaylibSurface) Fill(c Color) {
	col := toRaylib(c)
	for i := range s.circles {
		cmd := &s.circles[i]
		rl.DrawCircleV(rl.Vector2{X: s.centerX + cmd.cx, Y: s.centerY + cmd.cy}, cmd.radius, col)
	}
}

// Stroke renders the queued lines at the given width and color.
func (s *RaylibSurface) Stroke(width float32, c Color) {
	col := toRaylib(c)
	for i := range s.lines {
		cmd := &s.lines[i]
		rl.DrawLineEx(
			rl.Vector2{X: s.centerX + cmd.x1, Y: s.centerY + cmd.y1},
			rl.Vector2{X: s.centerX + cmd.x2, Y: s.centerY + cmd.y2},
			width,
			col,
		)
	}
}

func toRaylib(c Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
