// Package telemetry collects frame statistics and performance timings
// for the starfield simulation.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Field state at window end
	Stars int     `csv:"stars"`
	Warp  float64 `csv:"warp"`

	// Events during window
	Resets  int `csv:"resets"`
	Points  int `csv:"points"`
	Streaks int `csv:"streaks"`

	// Frame time distribution over the window
	FrameMSMean float64 `csv:"frame_ms_mean"`
	FrameMSP10  float64 `csv:"frame_ms_p10"`
	FrameMSP50  float64 `csv:"frame_ms_p50"`
	FrameMSP90  float64 `csv:"frame_ms_p90"`
}

// ComputeFrameStats returns mean and p10/p50/p90 of frame times in ms.
// Returns zeros for an empty sample set.
func ComputeFrameStats(frameMS []float64) (mean, p10, p50, p90 float64) {
	if len(frameMS) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(frameMS))
	copy(sorted, frameMS)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return mean, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("stars", s.Stars),
		slog.Float64("warp", s.Warp),
		slog.Int("resets", s.Resets),
		slog.Int("points", s.Points),
		slog.Int("streaks", s.Streaks),
		slog.Float64("frame_ms_mean", s.FrameMSMean),
		slog.Float64("frame_ms_p50", s.FrameMSP50),
		slog.Float64("frame_ms_p90", s.FrameMSP90),
	)
}
