// Package renderer draws the starfield. The Surface abstraction keeps the
// simulation presentable to a window, a test buffer or a headless run.
package renderer

// Color is an RGBA color in the 0-255 range.
type Color struct {
	R, G, B, A uint8
}

// White is the single star color.
var White = Color{R: 255, G: 255, B: 255, A: 255}

// Surface is the drawing collaborator the field renders onto. Primitives
// accumulate after Clear; a terminal Fill or Stroke call applies one
// style to everything issued since the last Clear.
type Surface interface {
	// Clear discards all accumulated primitives.
	Clear()
	// Circle queues a filled circle. Coordinates are centered on the
	// view axis.
	Circle(cx, cy, radius float32)
	// Line queues a line segment. Coordinates are centered on the
	// view axis.
	Line(x1, y1, x2, y2 float32)
	// Fill renders the queued circles in the given color.
	Fill(c Color)
	// Stroke renders the queued lines at the given width and color.
	Stroke(width float32, c Color)
}
