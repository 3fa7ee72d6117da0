package telemetry

import (
	"math"
	"testing"
)

func TestComputeFrameStats(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	mean, p10, p50, p90 := ComputeFrameStats(values)

	if math.Abs(mean-5.5) > 0.001 {
		t.Errorf("mean = %v, want 5.5", mean)
	}
	// Empirical quantiles: smallest sample with CDF >= p
	if p10 != 1 {
		t.Errorf("p10 = %v, want 1", p10)
	}
	if p50 != 5 {
		t.Errorf("p50 = %v, want 5", p50)
	}
	if p90 != 9 {
		t.Errorf("p90 = %v, want 9", p90)
	}
}

func TestComputeFrameStatsUnsortedInput(t *testing.T) {
	// Input order must not matter, and the caller's slice stays untouched.
	values := []float64{9, 1, 5, 3, 7}
	mean, _, p50, _ := ComputeFrameStats(values)

	if math.Abs(mean-5) > 0.001 {
		t.Errorf("mean = %v, want 5", mean)
	}
	if p50 != 5 {
		t.Errorf("p50 = %v, want 5", p50)
	}
	if values[0] != 9 {
		t.Error("input slice was reordered")
	}
}

func TestComputeFrameStatsEmpty(t *testing.T) {
	mean, p10, p50, p90 := ComputeFrameStats(nil)
	if mean != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Error("empty input should return all zeros")
	}
}
