// Package game wires the starfield simulation to the window, the UI and
// telemetry. One Game instance owns all state for a run.
package game

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/warpfield/components"
	"github.com/pthm-cable/warpfield/config"
	"github.com/pthm-cable/warpfield/field"
	"github.com/pthm-cable/warpfield/renderer"
	"github.com/pthm-cable/warpfield/telemetry"
	"github.com/pthm-cable/warpfield/ui"
)

// Options holds startup parameters assembled by main.
type Options struct {
	Seed           int64
	Headless       bool
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
}

// Game holds the complete application state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand

	starMapper *ecs.Map2[components.Lateral, components.Depth]
	starFilter *ecs.Filter2[components.Lateral, components.Depth]
	starCount  int

	// Simulation parameters; rebuilt whenever the slider moves and
	// passed explicitly into every star update.
	mapping     field.Mapping
	params      field.Params
	sliderValue float32

	// Primitive buffer reused across frames
	prims []field.Primitive

	starRenderer *renderer.StarRenderer
	record       *renderer.Record // surface backing headless runs

	warpPanel  *ui.WarpPanel
	statsPanel *ui.QuickStatsPanel

	perf        *telemetry.PerfCollector
	collector   *telemetry.Collector
	output      *telemetry.OutputManager
	logStats    bool
	windowTicks int32

	tick        int32
	simMS       float64
	paused      bool
	lastFrameMS float32
}

// NewGame creates a game instance from the loaded configuration.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	g := &Game{
		world:      world,
		rng:        rand.New(rand.NewSource(opts.Seed)),
		starMapper: ecs.NewMap2[components.Lateral, components.Depth](world),
		starFilter: ecs.NewFilter2[components.Lateral, components.Depth](world),
		starCount:  cfg.Field.StarCount,
		logStats:   opts.LogStats,
		mapping: field.Mapping{
			SliderMin: float32(cfg.Warp.SliderMin),
			SliderMax: float32(cfg.Warp.SliderMax),
			Step:      float32(cfg.Warp.SliderStep),
			SpeedMin:  float32(cfg.Warp.SpeedMin),
			SpeedMax:  float32(cfg.Warp.SpeedMax),
		},
		collector: telemetry.NewCollector(),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
	}

	g.params = field.Params{
		Warp:      g.mapping.SpeedMin,
		PointSize: float32(cfg.Field.PointSize),
		Bounds: field.Bounds{
			W: cfg.Derived.ScreenW32,
			H: cfg.Derived.ScreenH32,
		},
	}
	g.sliderValue = g.mapping.SliderMin

	// Rendering surface: window-backed normally, in-memory when headless
	var surface renderer.Surface
	if opts.Headless {
		g.record = renderer.NewRecord()
		surface = g.record
	} else {
		surface = renderer.NewRaylibSurface(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32)
	}
	g.starRenderer = renderer.NewStarRenderer(surface, float32(cfg.Field.LineWidth))

	// UI panels
	panelWidth := int32(130)
	g.warpPanel = ui.NewWarpPanel(10, 10, panelWidth, g.mapping.SliderMin, g.mapping.SliderMax)
	g.statsPanel = ui.NewQuickStatsPanel(10, 76, panelWidth)

	// Stats window length in frames
	windowSec := opts.StatsWindowSec
	if windowSec <= 0 {
		windowSec = cfg.Telemetry.StatsWindow
	}
	g.windowTicks = int32(windowSec * float64(cfg.Screen.TargetFPS))

	// Optional CSV output
	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.output = om
	if err := g.output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	g.spawnField()

	return g, nil
}

// spawnField creates the star entities. The collection is fixed for the
// session; stars are mutated in place from then on.
func (g *Game) spawnField() {
	for i := 0; i < g.starCount; i++ {
		var lat components.Lateral
		var d components.Depth
		field.Respawn(g.rng, g.params.Bounds, &lat, &d)
		g.starMapper.NewEntity(&lat, &d)
	}
}

// step advances every star by deltaMS and rebuilds the primitive buffer.
func (g *Game) step(deltaMS float32) {
	g.prims = g.prims[:0]
	points, streaks := 0, 0

	query := g.starFilter.Query()
	for query.Next() {
		lat, d := query.Get()

		prim, ok := field.UpdateStar(g.rng, lat, d, deltaMS, g.params)
		if !ok {
			g.collector.RecordReset()
			continue
		}

		g.prims = append(g.prims, prim)
		if prim.Kind == field.PrimCircle {
			points++
		} else {
			streaks++
		}
	}

	g.collector.RecordPrimitives(points, streaks)
	g.simMS += float64(deltaMS)
	g.tick++
}

// SetSliderValue quantizes a raw slider value and remaps it into the
// warp-speed range. The UI handler is the only writer.
func (g *Game) SetSliderValue(v float32) {
	g.sliderValue = g.mapping.Quantize(v)
	g.params.Warp = g.mapping.Speed(g.sliderValue)
}

// SliderValue returns the current quantized slider value.
func (g *Game) SliderValue() float32 {
	return g.sliderValue
}

// Warp returns the current warp speed.
func (g *Game) Warp() float32 {
	return g.params.Warp
}

// pointMode reports whether stars render as points this frame.
func (g *Game) pointMode() bool {
	return g.params.Warp == 1
}

// Tick returns the current frame counter.
func (g *Game) Tick() int32 {
	return g.tick
}

// Record returns the recording surface backing a headless run, or nil
// in graphical mode.
func (g *Game) Record() *renderer.Record {
	return g.record
}

// UpdateHeadless runs one tick at the nominal frame delta without any
// window. Primitives land on the recording surface.
func (g *Game) UpdateHeadless() {
	g.perf.StartTick()

	g.perf.StartPhase(telemetry.PhaseSimulate)
	g.step(field.TargetFrameMS)

	g.perf.StartPhase(telemetry.PhaseDraw)
	g.starRenderer.Present(g.prims, g.pointMode())

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.collector.RecordFrameMS(field.TargetFrameMS)
	g.flushTelemetry()

	g.perf.EndTick()
}

// Unload releases run resources.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		logError("closing output", err)
	}
}
