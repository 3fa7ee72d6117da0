package field

import (
	"math"
	"testing"
)

func defaultMapping(step float32) Mapping {
	return Mapping{SliderMin: 1, SliderMax: 5, Step: step, SpeedMin: 1, SpeedMax: 11}
}

func TestMappingSpeed(t *testing.T) {
	m := defaultMapping(0.1)

	tests := []struct {
		name   string
		slider float32
		want   float32
	}{
		{"rest speed", 1, 1},
		{"midpoint", 3, 6},
		{"maximum", 5, 11},
		{"quarter", 2, 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Speed(tt.slider)
			if math.Abs(float64(got-tt.want)) > 0.0001 {
				t.Errorf("Speed(%v) = %v, want %v", tt.slider, got, tt.want)
			}
		})
	}
}

func TestMappingSpeedRestIsExact(t *testing.T) {
	// Point rendering keys off warp == 1 exactly, so the minimum slider
	// position must map to exactly 1.
	m := defaultMapping(0.1)
	if got := m.Speed(m.Quantize(1)); got != 1 {
		t.Errorf("Speed(Quantize(1)) = %v, want exactly 1", got)
	}
}

func TestMappingQuantize(t *testing.T) {
	tests := []struct {
		name string
		step float32
		in   float32
		want float32
	}{
		{"snap down", 0.25, 2.3, 2.25},
		{"snap up", 0.25, 2.4, 2.5},
		{"on step", 0.25, 3.75, 3.75},
		{"clamp low", 0.25, 0.2, 1},
		{"clamp high", 0.25, 7, 5},
		{"fine step", 0.1, 1.04, 1},
		{"no step passes through", 0, 2.34, 2.34},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := defaultMapping(tt.step)
			got := m.Quantize(tt.in)
			if math.Abs(float64(got-tt.want)) > 0.0001 {
				t.Errorf("Quantize(%v) with step %v = %v, want %v", tt.in, tt.step, got, tt.want)
			}
		})
	}
}
