package telemetry

// Collector accumulates per-frame events and emits WindowStats when a
// window closes. Single-goroutine use only, matching the frame loop.
type Collector struct {
	windowStartTick int32

	resets  int
	points  int
	streaks int

	frameMS []float64
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// RecordReset counts a star passing the viewer plane.
func (c *Collector) RecordReset() {
	c.resets++
}

// RecordPrimitives counts the primitives emitted in one frame.
func (c *Collector) RecordPrimitives(points, streaks int) {
	c.points += points
	c.streaks += streaks
}

// RecordFrameMS records one frame's elapsed time in milliseconds.
func (c *Collector) RecordFrameMS(ms float64) {
	c.frameMS = append(c.frameMS, ms)
}

// Snapshot closes the current window and returns its stats. The
// collector resets for the next window.
func (c *Collector) Snapshot(tick int32, simTimeSec float64, stars int, warp float64) WindowStats {
	mean, p10, p50, p90 := ComputeFrameStats(c.frameMS)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   tick,
		SimTimeSec:      simTimeSec,
		Stars:           stars,
		Warp:            warp,
		Resets:          c.resets,
		Points:          c.points,
		Streaks:         c.streaks,
		FrameMSMean:     mean,
		FrameMSP10:      p10,
		FrameMSP50:      p50,
		FrameMSP90:      p90,
	}

	c.windowStartTick = tick
	c.resets = 0
	c.points = 0
	c.streaks = 0
	c.frameMS = c.frameMS[:0]

	return stats
}
