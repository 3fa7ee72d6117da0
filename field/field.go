// Package field implements the starfield simulation: depth advance,
// perspective projection and draw-primitive emission for each star.
// It is pure math with no rendering dependencies.
package field

import (
	"math/rand"

	"github.com/pthm-cable/warpfield/components"
)

// TargetFrameMS is the nominal frame duration the depth decay is tuned
// against. At 60 FPS a star loses exactly warp units of depth per frame;
// at other refresh rates the decrement scales so perceived speed matches.
const TargetFrameMS = 1000.0 / 60.0

// Bounds holds the view dimensions the projection maps into.
type Bounds struct {
	W, H float32
}

// Params holds the per-frame simulation parameters. A single value is
// built each frame by the game and passed into every star update; nothing
// in this package holds mutable shared state.
type Params struct {
	Warp      float32 // warp speed in [speed_min, speed_max]
	PointSize float32 // circle radius at rest speed
	Bounds    Bounds
}

// PrimitiveKind discriminates the draw primitives a star can emit.
type PrimitiveKind uint8

const (
	PrimCircle PrimitiveKind = iota
	PrimLine
)

// Primitive is one draw command contributed by a star. Coordinates are
// centered on the view axis; the renderer translates to screen space.
type Primitive struct {
	Kind   PrimitiveKind
	X1, Y1 float32 // circle center, or line start
	X2, Y2 float32 // line end
	Radius float32 // circle radius
}

// Project maps a lateral offset at depth z to a screen offset from the
// view center. The further the star, the smaller the projected offset.
func Project(offset, z, dim float32) float32 {
	return offset / z * dim
}

// Respawn places a star far away at a fresh random lateral offset.
// Offsets are integer-valued over the centered view rectangle; depth is
// an integer in [W/2, W].
func Respawn(rng *rand.Rand, b Bounds, lat *components.Lateral, d *components.Depth) {
	halfW := int(b.W) / 2
	halfH := int(b.H) / 2
	lat.X = float32(rng.Intn(2*halfW+1) - halfW)
	lat.Y = float32(rng.Intn(2*halfH+1) - halfH)
	d.Z = float32(rng.Intn(int(b.W)-halfW+1) + halfW)
}

// UpdateStar advances one star by deltaMS and reports the primitive it
// contributes this frame. The reported bool is false when the star passed
// the viewer plane: it has been respawned and draws nothing this frame.
func UpdateStar(rng *rand.Rand, lat *components.Lateral, d *components.Depth, deltaMS float32, p Params) (Primitive, bool) {
	// Apparent position from the previous frame's depth. This must run
	// before the depth advance: the z < 1 guard below keeps the next
	// projection away from a near-zero divisor.
	sx0 := Project(lat.X, d.Z, p.Bounds.W)
	sy0 := Project(lat.Y, d.Z, p.Bounds.H)

	d.Z -= p.Warp * (deltaMS / TargetFrameMS)
	if d.Z < 1 {
		Respawn(rng, p.Bounds, lat, d)
		return Primitive{}, false
	}

	sx1 := Project(lat.X, d.Z, p.Bounds.W)
	sy1 := Project(lat.Y, d.Z, p.Bounds.H)

	// At rest speed a streak would be sub-pixel; draw a point instead.
	if p.Warp == 1 {
		return Primitive{Kind: PrimCircle, X1: sx0, Y1: sy0, Radius: p.PointSize}, true
	}

	// The streak endpoint extrapolates past the true current position in
	// proportion to warp, stretching the trail with velocity.
	tx := sx0 + (sx1-sx0)*p.Warp
	ty := sy0 + (sy1-sy0)*p.Warp
	return Primitive{Kind: PrimLine, X1: sx0, Y1: sy0, X2: tx, Y2: ty}, true
}
