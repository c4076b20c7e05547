// Package game is the animation driver: it owns the simulation state, paces
// the evolution engine from the rate control, and renders the board.
package game

import (
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/cellab/lifegrid/camera"
	"github.com/cellab/lifegrid/config"
	"github.com/cellab/lifegrid/life"
	"github.com/cellab/lifegrid/telemetry"
	"github.com/cellab/lifegrid/ui"
)

// Options configures a Game instance.
type Options struct {
	Seed      int64
	LogStats  bool
	OutputDir string
	Headless  bool
}

// Game holds the complete driver state: the single Simulation instance, the
// control values, the viewport, and the telemetry pipeline.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	sim      *life.Simulation
	alive    int
	controls ui.ControlsState
	panel    *ui.ControlsPanel
	view     *camera.Viewport
	theme    ui.Theme

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool

	paused    bool
	stepAccum float32

	screenW, screenH float32
}

// NewGame creates a driver with a freshly seeded board.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()
	rng := rand.New(rand.NewSource(opts.Seed))

	sim, err := life.NewSimulation(cfg.Derived.Cols, cfg.Derived.Rows, rng)
	if err != nil {
		return nil, err
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:       cfg,
		rng:       rng,
		sim:       sim,
		panel:     ui.NewControlsPanel(int32(cfg.UI.PanelWidth)),
		theme:     ui.DefaultTheme(),
		collector: telemetry.NewCollector(cfg.Telemetry.StatsWindow, cfg.Derived.Cols*cfg.Derived.Rows),
		output:    output,
		logStats:  opts.LogStats,
		screenW:   float32(cfg.Screen.Width),
		screenH:   float32(cfg.Screen.Height),
		controls: ui.ControlsState{
			FrameRate:       cfg.Board.FrameRate,
			SeedProbability: cfg.Board.SeedProbability,
		},
	}
	g.view = camera.New(g.screenW, g.screenH,
		cfg.Derived.BoardW32, cfg.Derived.BoardH32, float32(cfg.UI.PanelWidth))

	g.reset()
	return g, nil
}

// reset reseeds the board from the density control and clears the stall
// state. The slider values themselves are left alone.
func (g *Game) reset() {
	// The generation counter restarts at zero; report the window in
	// progress before it does.
	g.flushPartial()

	g.sim.Reset(g.controls.SeedProbability)
	g.alive = g.sim.Grid().CountAlive()
	g.stepAccum = 0
	g.collector.RecordReset(g.alive)

	slog.Info("board reset",
		"probability", g.controls.SeedProbability,
		"alive", g.alive,
		"cols", g.sim.Grid().Cols(),
		"rows", g.sim.Grid().Rows(),
	)
}

// Update advances the simulation according to the rate control. The rate is
// read once per frame; generations owed are accumulated against real frame
// time so the cadence tracks the slider without drifting. Once stalled, the
// engine is no longer invoked; rendering continues with the static board.
func (g *Game) Update() {
	g.handleInput()

	if g.paused || g.sim.Stalled() {
		return
	}

	g.stepAccum += rl.GetFrameTime() * float32(g.controls.FrameRate)
	for g.stepAccum >= 1 {
		g.stepAccum--
		g.step()
		if g.sim.Stalled() {
			g.stepAccum = 0
			break
		}
	}
}

// UpdateHeadless advances exactly one generation with no frame pacing.
func (g *Game) UpdateHeadless() {
	if g.sim.Stalled() {
		return
	}
	g.step()
}

// step runs one generation plus the telemetry that hangs off it. A stalled
// board never advances again until reset, so single-step requests landing
// here after the stall are ignored.
func (g *Game) step() {
	if g.sim.Stalled() {
		return
	}

	res := g.sim.Step()
	g.alive = res.Alive
	g.collector.RecordStep(res)

	if g.sim.Stalled() {
		g.collector.RecordStall()
		slog.Info("board stalled",
			"generation", g.sim.Generation(),
			"alive", res.Alive,
		)
		g.flushPartial()
		return
	}

	g.flushStats()
}

// flushStats emits window stats when a window closes.
func (g *Game) flushStats() {
	if !g.collector.ShouldFlush(g.sim.Generation()) {
		return
	}
	g.emitWindow(g.collector.Flush(g.sim.Generation()))
}

// flushPartial emits the in-progress window, if any. Called on the stall
// transition, before a reset, and at shutdown so short runs and run tails
// still produce telemetry.
func (g *Game) flushPartial() {
	if !g.collector.HasSamples() {
		return
	}
	g.emitWindow(g.collector.Flush(g.sim.Generation()))
}

func (g *Game) emitWindow(stats telemetry.WindowStats) {
	if g.logStats {
		slog.Info("window stats",
			"window_end", stats.WindowEndGen,
			"alive", stats.Alive,
			"pop_mean", stats.PopMean,
			"pop_std", stats.PopStd,
			"births", stats.Births,
			"deaths", stats.Deaths,
			"density", stats.Density,
			"stalled", stats.Stalled,
		)
		if g.collector.IsStable(3, 0.05) {
			slog.Info("population stable", "window_end", stats.WindowEndGen)
		}
	}

	if err := g.output.WriteWindow(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
}

// Generation returns the current generation count.
func (g *Game) Generation() int {
	return g.sim.Generation()
}

// Stalled reports whether the simulation has reached its terminal state.
func (g *Game) Stalled() bool {
	return g.sim.Stalled()
}

// Unload flushes any remaining telemetry and releases the driver's
// resources.
func (g *Game) Unload() {
	g.flushPartial()
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close telemetry output", "error", err)
	}
}
