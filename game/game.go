// Package game runs the visualizer loop: input, scene update, telemetry and drawing.
package game

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/dotcross/config"
	"github.com/pthm-cable/dotcross/input"
	"github.com/pthm-cable/dotcross/renderer"
	"github.com/pthm-cable/dotcross/scene"
	"github.com/pthm-cable/dotcross/telemetry"
	"github.com/pthm-cable/dotcross/ui"
)

const controlsPanelWidth = 260

// Options configures a Game.
type Options struct {
	LogStats  bool
	OutputDir string
	Headless  bool
}

// Game holds everything that lives for one run.
type Game struct {
	cfg   *config.Config
	opts  Options
	state *scene.State

	// Exactly one input source is set.
	window *windowInput
	sweep  *input.Sweep

	// Graphics (nil in headless mode)
	arrows   *renderer.ArrowRenderer
	hud      *ui.HUD
	controls *ui.ControlsPanel
	palette  renderer.Palette

	perf        *telemetry.PerfCollector
	output      *telemetry.OutputManager
	writeFailed bool

	readout scene.Readout

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game from the global config.
// Graphical mode must be called after the raylib window exists.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	g := &Game{
		cfg:          cfg,
		opts:         opts,
		state:        scene.New(cfg),
		perf:         telemetry.NewPerfCollector(cfg.Telemetry.LogEvery),
		output:       output,
		screenWidth:  cfg.Derived.ScreenW32,
		screenHeight: cfg.Derived.ScreenH32,
	}

	if opts.Headless {
		blueStart := g.state.Arrow(scene.Secondary).Start
		g.sweep = input.NewSweep(blueStart, cfg.Sweep.Radius, cfg.Sweep.Frames, cfg.Keys.BlueEnd)
	} else {
		g.window = &windowInput{}
		g.palette = renderer.NewPalette(cfg)
		g.arrows = renderer.NewArrowRenderer(g.palette)
		g.hud = ui.NewHUD(g.palette, cfg.Derived.FontSize, cfg.Derived.Margin)
		g.controls = ui.NewControlsPanel(g.palette, int32(g.screenWidth)-controlsPanelWidth-cfg.Derived.Margin, cfg.Derived.Margin, controlsPanelWidth)
	}

	// Geometry is valid before the first update.
	g.readout = g.state.Readout()

	return g, nil
}

// Update samples window input and advances one frame.
func (g *Game) Update() {
	g.perf.StartFrame()
	g.handleInput()

	g.perf.StartPhase(telemetry.PhaseUpdate)
	g.state.Update(g.window)

	g.finishUpdate()
}

// UpdateHeadless advances one frame of the sweep without touching raylib.
func (g *Game) UpdateHeadless() {
	g.perf.StartFrame()

	g.perf.StartPhase(telemetry.PhaseUpdate)
	g.state.Update(g.sweep)
	g.sweep.Advance()

	g.finishUpdate()
	g.perf.EndFrame()
}

func (g *Game) finishUpdate() {
	g.perf.StartPhase(telemetry.PhaseReadout)
	g.readout = g.state.Readout()

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.recordSample()
	g.logStats()
}

// Draw renders the current frame.
func (g *Game) Draw() {
	g.perf.StartPhase(telemetry.PhaseDraw)

	rl.BeginDrawing()
	rl.ClearBackground(g.palette.Background)

	g.arrows.Draw(g.state, g.readout)
	g.hud.Draw(g.state.HUDLines(g.readout))
	g.hud.DrawPrompts(g.state.PromptLines(), int32(g.screenHeight))
	g.controls.Draw(g.state.Overlays, g.readout)

	rl.EndDrawing()
	g.perf.EndFrame()
}

// Done reports whether a headless sweep has finished. Graphical runs end when the window closes.
func (g *Game) Done() bool {
	return g.sweep != nil && g.sweep.Done()
}

// Frame returns the number of frames updated so far.
func (g *Game) Frame() int {
	return g.state.Frame()
}

// Unload flushes output files.
func (g *Game) Unload() {
	slog.Info("shutting down", "frames", g.state.Frame(), "perf", g.perf.Stats())
	if err := g.output.Close(); err != nil {
		slog.Error("closing output", "error", err)
	}
}
