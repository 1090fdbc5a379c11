// Package sdl implements the platform on SDL2 through go-sdl2.
// SDL expects every video call on the main OS thread, so importing this
// package locks the main goroutine to it.
package sdl

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/vovakirdan/sdlbase/internal/config"
	"github.com/vovakirdan/sdlbase/internal/core"
	"github.com/vovakirdan/sdlbase/internal/platform"
	"github.com/vovakirdan/sdlbase/internal/registry"
)

func init() {
	runtime.LockOSThread()

	registry.Register("sdl", "SDL2 window (go-sdl2)",
		func(cfg config.Config, logger *log.Logger) platform.System {
			return New(logger)
		})
}

// System is an SDL2 platform.System.
type System struct {
	logger *log.Logger
}

// New creates an SDL system. Nothing is initialized until Init.
func New(logger *log.Logger) *System {
	if logger == nil {
		logger = log.Default()
	}
	return &System{logger: logger.WithPrefix("sdl")}
}

func (s *System) Init() error {
	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return fmt.Errorf("sdl: init: %w", err)
	}
	s.logger.Debug("initialized", "platform", sdl.GetPlatform())
	return nil
}

func (s *System) CreateWindowAndRenderer(width, height int, flags platform.WindowFlags) (platform.Window, platform.Renderer, error) {
	window, renderer, err := sdl.CreateWindowAndRenderer(int32(width), int32(height), windowFlags(flags))
	if err != nil {
		return nil, nil, fmt.Errorf("sdl: create window and renderer: %w", err)
	}
	return &Window{w: window}, &Renderer{r: renderer}, nil
}

func (s *System) PollEvent() (core.Event, bool) {
	ev := sdl.PollEvent()
	if ev == nil {
		return core.Event{}, false
	}
	return translateEvent(ev), true
}

func (s *System) Ticks() uint64 {
	return uint64(sdl.GetTicks())
}

func (s *System) Delay(ms uint32) {
	sdl.Delay(ms)
}

func (s *System) Quit() {
	sdl.Quit()
}

func windowFlags(f platform.WindowFlags) uint32 {
	var out uint32
	if f&platform.WindowShown != 0 {
		out |= sdl.WINDOW_SHOWN
	}
	if f&platform.WindowResizable != 0 {
		out |= sdl.WINDOW_RESIZABLE
	}
	return out
}

// translateEvent maps an SDL event onto the loop's event model. Events the
// loop has no use for come back as EventNone.
func translateEvent(ev sdl.Event) core.Event {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return core.QuitEvent()
	case *sdl.KeyboardEvent:
		key := core.KeyCode(e.Keysym.Sym)
		if e.Type == sdl.KEYDOWN {
			return core.KeyDownEvent(key)
		}
		return core.KeyUpEvent(key)
	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN {
			return core.Event{Type: core.EventMouseButtonDown}
		}
		return core.Event{Type: core.EventMouseButtonUp}
	case *sdl.MouseMotionEvent:
		return core.Event{Type: core.EventMouseMotion}
	}
	return core.Event{Type: core.EventNone}
}

// Window wraps an *sdl.Window.
type Window struct {
	w *sdl.Window
}

func (w *Window) SetTitle(title string) {
	w.w.SetTitle(title)
}

func (w *Window) Destroy() error {
	return w.w.Destroy()
}

// Renderer wraps an *sdl.Renderer.
type Renderer struct {
	r *sdl.Renderer
}

func (r *Renderer) Clear(c core.Color) error {
	if err := r.r.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	return r.r.Clear()
}

func (r *Renderer) FillRect(rect core.Rect, c core.Color) error {
	if err := r.r.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	return r.r.FillRect(&sdl.Rect{
		X: int32(rect.X),
		Y: int32(rect.Y),
		W: int32(rect.W),
		H: int32(rect.H),
	})
}

func (r *Renderer) Present() {
	r.r.Present()
}

func (r *Renderer) Destroy() error {
	return r.r.Destroy()
}
