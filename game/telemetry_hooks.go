package game

import (
	"log/slog"
)

// flushTelemetry closes the stats window when due and emits it to slog
// and the CSV output. Output failures are logged, not fatal.
func (g *Game) flushTelemetry() {
	if g.windowTicks <= 0 || g.tick == 0 || g.tick%g.windowTicks != 0 {
		return
	}

	stats := g.collector.Snapshot(g.tick, g.simMS/1000, g.starCount, float64(g.params.Warp))
	perfStats := g.perf.Stats()

	if g.logStats {
		slog.Info("window", "stats", stats)
		perfStats.LogStats()
	}

	if err := g.output.WriteFrames(stats); err != nil {
		logError("writing frame stats", err)
	}
	if err := g.output.WritePerf(perfStats, g.tick); err != nil {
		logError("writing perf stats", err)
	}
}

func logError(msg string, err error) {
	slog.Error(msg, "error", err)
}
