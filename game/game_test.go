package game

import (
	"testing"

	"github.com/pthm-cable/warpfield/config"
)

func newHeadlessGame(t *testing.T) *Game {
	t.Helper()
	config.MustInit("")
	if err := config.Cfg().ApplyProfile("desktop"); err != nil {
		t.Fatal(err)
	}
	g, err := NewGame(Options{Seed: 1, Headless: true})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(g.Unload)
	return g
}

func TestHeadlessPointMode(t *testing.T) {
	g := newHeadlessGame(t)

	g.UpdateHeadless()

	rec := g.Record()
	if rec.Clears != 1 {
		t.Errorf("clears = %d, want 1", rec.Clears)
	}

	// Fresh spawns sit at z >= W/2, so no star can reset on the first
	// nominal frame at rest speed: every star draws a point.
	if len(rec.Circles) != 750 {
		t.Errorf("circles = %d, want 750", len(rec.Circles))
	}
	if len(rec.Lines) != 0 {
		t.Errorf("lines = %d, want 0 at rest speed", len(rec.Lines))
	}
	if len(rec.Fills) != 1 {
		t.Errorf("fills = %d, want 1", len(rec.Fills))
	}
	if g.Tick() != 1 {
		t.Errorf("tick = %d, want 1", g.Tick())
	}
}

func TestHeadlessStreakMode(t *testing.T) {
	g := newHeadlessGame(t)

	g.SetSliderValue(5)
	g.UpdateHeadless()

	rec := g.Record()
	if len(rec.Circles) != 0 {
		t.Errorf("circles = %d, want 0 at max warp", len(rec.Circles))
	}
	if len(rec.Lines) != 750 {
		t.Errorf("lines = %d, want 750", len(rec.Lines))
	}
	if len(rec.Strokes) != 1 {
		t.Errorf("strokes = %d, want 1", len(rec.Strokes))
	}
}

func TestSliderMapping(t *testing.T) {
	g := newHeadlessGame(t)

	tests := []struct {
		slider float32
		warp   float32
	}{
		{1, 1},
		{3, 6},
		{5, 11},
	}

	for _, tt := range tests {
		g.SetSliderValue(tt.slider)
		got := g.Warp()
		if diff := float64(got - tt.warp); diff < -1e-5 || diff > 1e-5 {
			t.Errorf("slider %v -> warp %v, want %v", tt.slider, got, tt.warp)
		}
	}

	// Point rendering keys off warp == 1 exactly
	g.SetSliderValue(1)
	if g.Warp() != 1 {
		t.Errorf("slider 1 -> warp %v, want exactly 1", g.Warp())
	}
}

func TestFieldSizeIsStable(t *testing.T) {
	// Stars reset in place; the collection never grows or shrinks.
	g := newHeadlessGame(t)

	g.SetSliderValue(5)
	for i := 0; i < 300; i++ {
		g.UpdateHeadless()
	}

	rec := g.Record()
	total := len(rec.Circles) + len(rec.Lines)
	resets := 750 - total
	if resets < 0 {
		t.Fatalf("more primitives than stars: %d", total)
	}
	if total == 0 {
		t.Fatal("no star drew anything after 300 ticks")
	}
}
