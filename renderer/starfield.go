package renderer

import (
	"github.com/pthm-cable/warpfield/field"
)

// StarRenderer presents a frame's worth of star primitives onto a
// Surface. All primitives in a frame share one appearance, so the style
// is applied once per frame rather than per star.
type StarRenderer struct {
	surface   Surface
	color     Color
	lineWidth float32
}

// NewStarRenderer creates a renderer drawing onto the given surface.
func NewStarRenderer(surface Surface, lineWidth float32) *StarRenderer {
	return &StarRenderer{
		surface:   surface,
		color:     White,
		lineWidth: lineWidth,
	}
}

// Present clears the surface, queues every primitive, then applies the
// single style pass: fill when the field is in point mode (warp speed
// exactly 1), stroke otherwise.
func (r *StarRenderer) Present(prims []field.Primitive, pointMode bool) {
	r.surface.Clear()

	for i := range prims {
		p := &prims[i]
		switch p.Kind {
		case field.PrimCircle:
			r.surface.Circle(p.X1, p.Y1, p.Radius)
		case field.PrimLine:
			r.surface.Line(p.X1, p.Y1, p.X2, p.Y2)
		}
	}

	if pointMode {
		r.surface.Fill(r.color)
	} else {
		r.surface.Stroke(r.lineWidth, r.color)
	}
}
