package renderer

// RecordedCircle is a circle captured by a Record surface.
type RecordedCircle struct {
	CX, CY, Radius float32
}

// RecordedLine is a line segment captured by a Record surface.
type RecordedLine struct {
	X1, Y1, X2, Y2 float32
}

// RecordedStroke is a stroke pass captured by a Record surface.
type RecordedStroke struct {
	Width float32
	Color Color
}

// Record is an in-memory Surface for tests and headless runs.
type Record struct {
	Circles []RecordedCircle
	Lines   []RecordedLine
	Fills   []Color
	Strokes []RecordedStroke
	Clears  int
}

// NewRecord creates an empty recording surface.
func NewRecord() *Record {
	return &Record{}
}

// Clear discards accumulated primitives and counts the clear.
func (r *Record) Clear() {
	r.Circles = r.Circles[:0]
	r.Lines = r.Lines[:0]
	r.Fills = r.Fills[:0]
	r.Strokes = r.Strokes[:0]
	r.Clears++
}

// Circle records a circle primitive.
func (r *Record) Circle(cx, cy, radius float32) {
	r.Circles = append(r.Circles, RecordedCircle{CX: cx, CY: cy, Radius: radius})
}

// Line records a line primitive.
func (r *Record) Line(x1, y1, x2, y2 float32) {
	r.Lines = append(r.Lines, RecordedLine{X1: x1, Y1: y1, X2: x2, Y2: y2})
}

// Fill records a fill pass.
func (r *Record) Fill(c Color) {
	r.Fills = append(r.Fills, c)
}

// Stroke records a stroke pass.
func (r *Record) Stroke(width float32, c Color) {
	r.Strokes = append(r.Strokes, RecordedStroke{Width: width, Color: c})
}
