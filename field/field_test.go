package field

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/warpfield/components"
)

func testParams(warp float32) Params {
	return Params{
		Warp:      warp,
		PointSize: 0.5,
		Bounds:    Bounds{W: 360, H: 360},
	}
}

func TestProjectOnAxis(t *testing.T) {
	// Stars exactly on the viewing axis never move laterally.
	for _, z := range []float32{1, 2, 180, 360, 0.5} {
		if got := Project(0, z, 360); got != 0 {
			t.Errorf("Project(0, %v, 360) = %v, want 0", z, got)
		}
	}
}

func TestProjectPerspectiveDivide(t *testing.T) {
	tests := []struct {
		name   string
		offset float32
		z      float32
		dim    float32
		want   float32
	}{
		{"half depth", 100, 200, 360, 180},
		{"full depth", 100, 360, 360, 100},
		{"near", 100, 100, 360, 360},
		{"negative offset", -100, 200, 360, -180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(tt.offset, tt.z, tt.dim)
			if math.Abs(float64(got-tt.want)) > 0.001 {
				t.Errorf("Project(%v, %v, %v) = %v, want %v", tt.offset, tt.z, tt.dim, got, tt.want)
			}
		})
	}
}

func TestRespawnRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := Bounds{W: 360, H: 360}

	for i := 0; i < 10000; i++ {
		var lat components.Lateral
		var d components.Depth
		Respawn(rng, b, &lat, &d)

		if lat.X < -180 || lat.X > 180 {
			t.Fatalf("X out of range: %v", lat.X)
		}
		if lat.Y < -180 || lat.Y > 180 {
			t.Fatalf("Y out of range: %v", lat.Y)
		}
		if d.Z < 180 || d.Z > 360 {
			t.Fatalf("Z out of spawn range: %v", d.Z)
		}
		if lat.X != float32(int(lat.X)) || lat.Y != float32(int(lat.Y)) || d.Z != float32(int(d.Z)) {
			t.Fatalf("respawn values not integer-valued: %v %v %v", lat.X, lat.Y, d.Z)
		}
	}
}

func TestUpdateStarPointMode(t *testing.T) {
	// One nominal frame at rest speed: depth drops by exactly 1 and the
	// star draws a circle at its previous projected position.
	rng := rand.New(rand.NewSource(1))
	lat := components.Lateral{X: 100, Y: 0}
	d := components.Depth{Z: 200}

	prim, ok := UpdateStar(rng, &lat, &d, TargetFrameMS, testParams(1))
	if !ok {
		t.Fatal("expected a primitive, got reset")
	}
	if prim.Kind != PrimCircle {
		t.Fatalf("expected circle at warp 1, got kind %v", prim.Kind)
	}
	if math.Abs(float64(d.Z-199)) > 0.001 {
		t.Errorf("z = %v, want 199", d.Z)
	}
	if math.Abs(float64(prim.X1-180)) > 0.001 {
		t.Errorf("circle x = %v, want 180", prim.X1)
	}
	if prim.Y1 != 0 {
		t.Errorf("circle y = %v, want 0", prim.Y1)
	}
	if prim.Radius != 0.5 {
		t.Errorf("radius = %v, want 0.5", prim.Radius)
	}
}

func TestUpdateStarStreakMode(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	lat := components.Lateral{X: 100, Y: 0}
	d := components.Depth{Z: 200}

	prim, ok := UpdateStar(rng, &lat, &d, TargetFrameMS, testParams(11))
	if !ok {
		t.Fatal("expected a primitive, got reset")
	}
	if prim.Kind != PrimLine {
		t.Fatalf("expected line at warp 11, got kind %v", prim.Kind)
	}
	if math.Abs(float64(d.Z-189)) > 0.001 {
		t.Errorf("z = %v, want 189", d.Z)
	}

	// Trail start is the previous projection; the endpoint extrapolates
	// the positional delta by the warp factor.
	if math.Abs(float64(prim.X1-180)) > 0.001 {
		t.Errorf("trail start x = %v, want 180", prim.X1)
	}
	sx1 := float32(100.0 / 189.0 * 360.0)
	wantEnd := 180 + (sx1-180)*11
	if math.Abs(float64(prim.X2-wantEnd)) > 0.01 {
		t.Errorf("trail end x = %v, want %v", prim.X2, wantEnd)
	}
}

func TestTrailLengthGrowsWithWarp(t *testing.T) {
	trailLen := func(warp float32) float64 {
		rng := rand.New(rand.NewSource(1))
		lat := components.Lateral{X: 100, Y: 50}
		d := components.Depth{Z: 300}
		prim, ok := UpdateStar(rng, &lat, &d, TargetFrameMS, testParams(warp))
		if !ok {
			t.Fatalf("unexpected reset at warp %v", warp)
		}
		dx := float64(prim.X2 - prim.X1)
		dy := float64(prim.Y2 - prim.Y1)
		return math.Hypot(dx, dy)
	}

	prev := trailLen(2)
	for _, warp := range []float32{3, 5, 8, 11} {
		l := trailLen(warp)
		if l <= prev {
			t.Errorf("trail length did not grow: warp %v gave %v, previous %v", warp, l, prev)
		}
		prev = l
	}
}

func TestUpdateStarResetsBelowOne(t *testing.T) {
	// A star entering update at z=0.5 must reset without drawing.
	rng := rand.New(rand.NewSource(1))
	lat := components.Lateral{X: 10, Y: 10}
	d := components.Depth{Z: 0.5}

	_, ok := UpdateStar(rng, &lat, &d, TargetFrameMS, testParams(1))
	if ok {
		t.Fatal("expected reset, got a primitive")
	}
	if d.Z < 180 || d.Z > 360 {
		t.Errorf("respawned z = %v, want [180, 360]", d.Z)
	}
	if lat.X < -180 || lat.X > 180 || lat.Y < -180 || lat.Y > 180 {
		t.Errorf("respawned offset out of range: (%v, %v)", lat.X, lat.Y)
	}
}

func TestUpdateStarDepthMonotonic(t *testing.T) {
	// With fixed warp and delta, depth strictly decreases until reset.
	rng := rand.New(rand.NewSource(1))
	lat := components.Lateral{X: 0, Y: 0}
	d := components.Depth{Z: 50}
	p := testParams(3)

	prev := d.Z
	for i := 0; i < 100; i++ {
		_, ok := UpdateStar(rng, &lat, &d, TargetFrameMS, p)
		if !ok {
			return // reset reached, monotonic run complete
		}
		if d.Z >= prev {
			t.Fatalf("depth did not decrease: %v -> %v", prev, d.Z)
		}
		prev = d.Z
	}
	t.Fatal("star never reset from z=50 at warp 3")
}

func TestUpdateStarFrameRateIndependence(t *testing.T) {
	// Two half-length frames advance depth as far as one nominal frame.
	rng := rand.New(rand.NewSource(1))
	p := testParams(4)

	latA := components.Lateral{X: 20, Y: 20}
	dA := components.Depth{Z: 200}
	UpdateStar(rng, &latA, &dA, TargetFrameMS, p)

	latB := components.Lateral{X: 20, Y: 20}
	dB := components.Depth{Z: 200}
	UpdateStar(rng, &latB, &dB, TargetFrameMS/2, p)
	UpdateStar(rng, &latB, &dB, TargetFrameMS/2, p)

	if math.Abs(float64(dA.Z-dB.Z)) > 0.001 {
		t.Errorf("depth advance depends on frame rate: %v vs %v", dA.Z, dB.Z)
	}
}

func TestUpdateStarZeroDelta(t *testing.T) {
	// A zero-length frame emits a primitive without advancing depth.
	rng := rand.New(rand.NewSource(1))
	lat := components.Lateral{X: 100, Y: 0}
	d := components.Depth{Z: 200}

	prim, ok := UpdateStar(rng, &lat, &d, 0, testParams(5))
	if !ok {
		t.Fatal("expected a primitive, got reset")
	}
	if d.Z != 200 {
		t.Errorf("z = %v, want 200", d.Z)
	}
	// With no depth change the extrapolated endpoint collapses onto the start.
	if prim.X1 != prim.X2 || prim.Y1 != prim.Y2 {
		t.Errorf("expected degenerate trail, got (%v,%v)-(%v,%v)", prim.X1, prim.Y1, prim.X2, prim.Y2)
	}
}
