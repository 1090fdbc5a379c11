// Package loop implements the fixed-step update/draw cycle: one event poll
// per iteration, updates every UpdateInterval milliseconds, optional
// frame skipping and a once-per-second FPS report in the window title.
package loop

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sdlbase/internal/core"
	"github.com/vovakirdan/sdlbase/internal/platform"
)

// Loop timing, in milliseconds.
const (
	UpdateInterval = 1000 / 60 // Integer division: 16 ms between updates
	FPSInterval    = 1000      // FPS sampling window
	YieldDelay     = 1         // Sleep per iteration to avoid spinning
)

// Fixed draw colors.
var (
	BackgroundColor = core.ColorWhite
	HeroColor       = core.ColorRed
)

// Options configures a Game.
type Options struct {
	// Title prefixes the FPS report: "<Title>: <fps> FPS".
	Title string

	// FrameSkip is the number of draws skipped per drawn frame.
	// 0 draws after every update; N draws once every N+1 updates.
	FrameSkip int

	// Logger receives lifecycle and diagnostic messages. Nil discards them.
	Logger *log.Logger
}

// loopState is everything the cycle mutates between iterations.
type loopState struct {
	running       bool
	lastUpdate    uint64
	lastFPSSample uint64
	fps           int
	framesSkipped int
	frameSkip     int
}

// Game owns the platform resources, the key state and the hero.
// It is not safe for concurrent use; every method runs on the loop's goroutine.
type Game struct {
	sys    platform.System
	logger *log.Logger
	title  string

	// Resources acquired by Start, released by Stop.
	subsystem bool
	window    platform.Window
	renderer  platform.Renderer

	keys  *core.KeyState
	hero  core.Hero
	state loopState
}

// New creates a stopped game driving sys.
func New(sys platform.System, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	frameSkip := opts.FrameSkip
	if frameSkip < 0 {
		frameSkip = 0
	}
	return &Game{
		sys:    sys,
		logger: logger,
		title:  opts.Title,
		keys:   core.NewKeyState(),
		state:  loopState{frameSkip: frameSkip},
	}
}

// Start initializes the platform, opens a width x height window and runs
// the loop until it is asked to quit. On failure nothing is left acquired
// and the loop is not entered.
func (g *Game) Start(width, height int) error {
	if err := g.sys.Init(); err != nil {
		g.logger.Error("platform init failed", "error", err)
		return &StartupError{Kind: ErrSubsystemInit, Err: err}
	}
	g.subsystem = true

	window, renderer, err := g.sys.CreateWindowAndRenderer(width, height, platform.WindowShown)
	if err != nil {
		g.logger.Error("window creation failed", "width", width, "height", height, "error", err)
		g.Stop()
		return &StartupError{Kind: ErrWindowCreation, Err: err}
	}
	g.window = window
	g.renderer = renderer

	g.logger.Info("loop started", "width", width, "height", height, "frame_skip", g.state.frameSkip)
	g.state.running = true
	g.Run()
	g.logger.Info("loop finished", "x", g.hero.X, "y", g.hero.Y)
	return nil
}

// Stop releases the renderer, the window and the subsystem, each only if
// held. It is safe to call any number of times, with or without Start.
func (g *Game) Stop() {
	g.state.running = false

	if g.renderer != nil {
		if err := g.renderer.Destroy(); err != nil {
			g.logger.Warn("renderer destroy failed", "error", err)
		}
		g.renderer = nil
	}
	if g.window != nil {
		if err := g.window.Destroy(); err != nil {
			g.logger.Warn("window destroy failed", "error", err)
		}
		g.window = nil
	}
	if g.subsystem {
		g.sys.Quit()
		g.subsystem = false
		g.logger.Debug("platform released")
	}
}

// Run executes iterations while the game is running. It returns
// immediately if Start has not succeeded or OnQuit was called.
func (g *Game) Run() {
	now := g.sys.Ticks()
	g.state.lastUpdate = now
	g.state.lastFPSSample = now
	g.state.fps = 0
	g.state.framesSkipped = 0

	for g.state.running {
		g.tick()
	}
}

// tick runs a single loop iteration.
func (g *Game) tick() {
	if ev, ok := g.sys.PollEvent(); ok {
		g.handleEvent(ev)
	}

	now := g.sys.Ticks()
	if now-g.state.lastUpdate >= UpdateInterval {
		g.state.lastUpdate = now
		g.update()

		g.state.framesSkipped++
		if g.state.framesSkipped > g.state.frameSkip {
			g.draw()
			g.state.fps++
			g.state.framesSkipped = 0
		}
	}

	if now-g.state.lastFPSSample >= FPSInterval {
		g.state.lastFPSSample = now
		g.fpsChanged(g.state.fps)
		g.state.fps = 0
	}

	g.sys.Delay(YieldDelay)
}

func (g *Game) handleEvent(ev core.Event) {
	switch ev.Type {
	case core.EventQuit:
		g.OnQuit()
	case core.EventKeyDown:
		g.keys.Set(ev.Key, true)
	case core.EventKeyUp:
		g.keys.Set(ev.Key, false)
	case core.EventMouseButtonDown, core.EventMouseButtonUp, core.EventMouseMotion:
		// pointer input is not used
	}
}

// update advances the simulation by one fixed step.
func (g *Game) update() {
	g.hero.Step(g.keys)
}

// draw redraws the whole frame.
func (g *Game) draw() {
	if g.renderer == nil {
		return
	}
	if err := g.renderer.Clear(BackgroundColor); err != nil {
		g.logger.Debug("clear failed", "error", err)
	}
	if err := g.renderer.FillRect(g.hero.Bounds(), HeroColor); err != nil {
		g.logger.Debug("fill failed", "error", err)
	}
	g.renderer.Present()
}

func (g *Game) fpsChanged(fps int) {
	g.logger.Debug("fps sample", "fps", fps)
	if g.window != nil {
		g.window.SetTitle(fmt.Sprintf("%s: %d FPS", g.title, fps))
	}
}

// OnQuit asks the loop to exit after the current iteration.
func (g *Game) OnQuit() {
	g.state.running = false
}

// Running reports whether the loop is active.
func (g *Game) Running() bool {
	return g.state.running
}

// Hero returns a copy of the hero.
func (g *Game) Hero() core.Hero {
	return g.hero
}

// Keys returns the live key state.
func (g *Game) Keys() *core.KeyState {
	return g.keys
}
