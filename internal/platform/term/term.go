// Package term implements the platform on a terminal through tcell.
//
// The terminal plays the window: logical pixels are rasterized into cells
// (core.Canvas) and flushed on Present. Terminals report key presses and
// auto-repeats but never releases, so a key that has not repeated for
// ReleaseAfter is reported as released.
package term

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/sdlbase/internal/config"
	"github.com/vovakirdan/sdlbase/internal/core"
	"github.com/vovakirdan/sdlbase/internal/platform"
	"github.com/vovakirdan/sdlbase/internal/registry"
)

// eventBuffer bounds the number of terminal events waiting for the loop.
const eventBuffer = 100

func init() {
	registry.Register("term", "Terminal window (tcell)",
		func(cfg config.Config, logger *log.Logger) platform.System {
			return New(Options{
				CellWidth:    cfg.Terminal.CellWidth,
				CellHeight:   cfg.Terminal.CellHeight,
				ReleaseAfter: time.Duration(cfg.Terminal.ReleaseMs) * time.Millisecond,
				Logger:       logger,
			})
		})
}

// Options configures a System.
type Options struct {
	CellWidth    int           // Logical pixels per cell, horizontally
	CellHeight   int           // Logical pixels per cell, vertically
	ReleaseAfter time.Duration // Silence after which a held key is released

	// NewScreen creates the tcell screen; defaults to tcell.NewScreen.
	NewScreen func() (tcell.Screen, error)

	Logger *log.Logger
}

// System is a terminal platform.System.
type System struct {
	opts   Options
	logger *log.Logger

	screen tcell.Screen
	events chan tcell.Event
	start  time.Time

	held map[core.KeyCode]time.Time // Last press or repeat per held key
	now  func() time.Time
}

// New creates a terminal system. The screen is opened by Init.
func New(opts Options) *System {
	if opts.CellWidth <= 0 {
		opts.CellWidth = 8
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = 16
	}
	if opts.ReleaseAfter <= 0 {
		opts.ReleaseAfter = 500 * time.Millisecond
	}
	if opts.NewScreen == nil {
		opts.NewScreen = tcell.NewScreen
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &System{
		opts:   opts,
		logger: logger.WithPrefix("term"),
		held:   make(map[core.KeyCode]time.Time),
		now:    time.Now,
	}
}

func (s *System) Init() error {
	screen, err := s.opts.NewScreen()
	if err != nil {
		return fmt.Errorf("term: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: cannot init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	s.screen = screen
	s.events = make(chan tcell.Event, eventBuffer)
	s.start = s.now()

	// PollEvent blocks; pump it so the loop can poll without waiting.
	// It returns nil once the screen is finalized.
	go func(screen tcell.Screen, out chan<- tcell.Event) {
		defer close(out)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			out <- ev
		}
	}(screen, s.events)

	w, h := screen.Size()
	s.logger.Debug("screen ready", "cols", w, "rows", h)
	return nil
}

func (s *System) CreateWindowAndRenderer(width, height int, flags platform.WindowFlags) (platform.Window, platform.Renderer, error) {
	if s.screen == nil {
		return nil, nil, fmt.Errorf("term: screen not initialized")
	}
	canvas := core.NewCanvas(width, height, s.opts.CellWidth, s.opts.CellHeight)
	cols, rows := s.screen.Size()
	if canvas.Width() > cols || canvas.Height() > rows {
		s.logger.Warn("terminal smaller than window, output is clipped",
			"need_cols", canvas.Width(), "need_rows", canvas.Height(), "cols", cols, "rows", rows)
	}
	return &Window{screen: s.screen}, &Renderer{screen: s.screen, canvas: canvas}, nil
}

// PollEvent returns the next translated terminal event, or a synthesized
// release for a key whose repeats stopped.
func (s *System) PollEvent() (core.Event, bool) {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return s.expire()
			}
			if out, ok := s.translate(ev); ok {
				return out, true
			}
		default:
			return s.expire()
		}
	}
}

func (s *System) translate(ev tcell.Event) (core.Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		out, ok := translateKey(e)
		if ok && out.Type == core.EventKeyDown {
			s.held[out.Key] = s.now()
		}
		return out, ok
	case *tcell.EventMouse:
		return core.Event{Type: core.EventMouseMotion}, true
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return core.Event{}, false
}

// expire releases one held key whose last press is older than ReleaseAfter.
func (s *System) expire() (core.Event, bool) {
	now := s.now()
	for k, last := range s.held {
		if now.Sub(last) >= s.opts.ReleaseAfter {
			delete(s.held, k)
			return core.KeyUpEvent(k), true
		}
	}
	return core.Event{}, false
}

// translateKey maps a tcell key press. Esc and Ctrl+C quit since a
// terminal has no close button.
func translateKey(e *tcell.EventKey) (core.Event, bool) {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.QuitEvent(), true
	case tcell.KeyLeft:
		return core.KeyDownEvent(core.KeyLeft), true
	case tcell.KeyRight:
		return core.KeyDownEvent(core.KeyRight), true
	case tcell.KeyUp:
		return core.KeyDownEvent(core.KeyUp), true
	case tcell.KeyDown:
		return core.KeyDownEvent(core.KeyDown), true
	case tcell.KeyRune:
		r := e.Rune()
		if r < 0x80 {
			return core.KeyDownEvent(core.KeyCode(r)), true
		}
	}
	return core.Event{}, false
}

func (s *System) Ticks() uint64 {
	return uint64(s.now().Sub(s.start).Milliseconds())
}

func (s *System) Delay(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// Quit restores the terminal. The pump goroutine exits once PollEvent
// observes the finalized screen.
func (s *System) Quit() {
	if s.screen == nil {
		return
	}
	s.screen.Fini()
	s.screen = nil
	clear(s.held)
}

// Window maps the title onto the terminal title.
type Window struct {
	screen tcell.Screen
	title  string
}

func (w *Window) SetTitle(title string) {
	w.title = title
	w.screen.SetTitle(title)
}

// Title returns the last title set.
func (w *Window) Title() string {
	return w.title
}

func (w *Window) Destroy() error {
	return nil
}

// Renderer rasterizes into a canvas and copies it to the screen on Present.
type Renderer struct {
	screen tcell.Screen
	canvas *core.Canvas
}

func (r *Renderer) Clear(c core.Color) error {
	r.canvas.Clear(c)
	return nil
}

func (r *Renderer) FillRect(rect core.Rect, c core.Color) error {
	r.canvas.FillRect(rect, c)
	return nil
}

func (r *Renderer) Present() {
	for y := 0; y < r.canvas.Height(); y++ {
		for x := 0; x < r.canvas.Width(); x++ {
			c := r.canvas.At(x, y)
			if c == r.canvas.Background() {
				r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(toTcell(c)))
				continue
			}
			r.screen.SetContent(x, y, '█', nil, tcell.StyleDefault.Foreground(toTcell(c)).Background(toTcell(r.canvas.Background())))
		}
	}
	r.screen.Show()
}

func (r *Renderer) Destroy() error {
	r.screen.Clear()
	return nil
}

func toTcell(c core.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
