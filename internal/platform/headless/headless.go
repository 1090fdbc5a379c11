// Package headless implements a platform with a virtual clock and no
// output device. Time only moves when the loop sleeps (or a frame is
// presented, if PresentCost is set), which makes runs deterministic.
// Every draw call is recorded for inspection.
package headless

import (
	"errors"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sdlbase/internal/config"
	"github.com/vovakirdan/sdlbase/internal/core"
	"github.com/vovakirdan/sdlbase/internal/platform"
	"github.com/vovakirdan/sdlbase/internal/registry"
)

// DefaultDuration is the virtual run time of a registry-created system
// before it sends Quit.
const DefaultDuration = 3000

var (
	errNotInitialized   = errors.New("headless: subsystem not initialized")
	errAlreadyDestroyed = errors.New("headless: already destroyed")
)

func init() {
	registry.Register("headless", "Headless (virtual clock, no output)",
		func(cfg config.Config, logger *log.Logger) platform.System {
			s := New(Options{
				CellWidth:  cfg.Terminal.CellWidth,
				CellHeight: cfg.Terminal.CellHeight,
			})
			s.Schedule(DefaultDuration, core.QuitEvent())
			return s
		})
}

// Options configures a System.
type Options struct {
	InitErr   error // Returned by Init when set
	WindowErr error // Returned by CreateWindowAndRenderer when set

	// PresentCost is added to the clock by every Present, modelling vsync.
	PresentCost uint32

	// Cell size of the recorded frame; defaults to 8x16.
	CellWidth  int
	CellHeight int
}

type scheduled struct {
	at uint64
	ev core.Event
}

// System is a headless platform.System.
type System struct {
	opts        Options
	now         uint64
	events      []scheduled
	initialized bool

	InitCalls int
	QuitCalls int
	Polled    int // Events delivered by PollEvent

	window   *Window
	renderer *Renderer
}

// New creates a headless system at virtual time 0.
func New(opts Options) *System {
	if opts.CellWidth <= 0 {
		opts.CellWidth = 8
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = 16
	}
	return &System{opts: opts}
}

// Schedule queues ev for delivery once the clock reaches at.
// Events with equal times are delivered in scheduling order.
func (s *System) Schedule(at uint64, ev core.Event) {
	i := sort.Search(len(s.events), func(i int) bool { return s.events[i].at > at })
	s.events = append(s.events, scheduled{})
	copy(s.events[i+1:], s.events[i:])
	s.events[i] = scheduled{at: at, ev: ev}
}

// Pending returns the number of events not yet delivered.
func (s *System) Pending() int {
	return len(s.events)
}

// Advance moves the clock forward without sleeping.
func (s *System) Advance(ms uint64) {
	s.now += ms
}

// Window returns the last window created, or nil.
func (s *System) Window() *Window {
	return s.window
}

// Renderer returns the last renderer created, or nil.
func (s *System) Renderer() *Renderer {
	return s.renderer
}

// Initialized reports whether Init succeeded and Quit has not been called since.
func (s *System) Initialized() bool {
	return s.initialized
}

func (s *System) Init() error {
	s.InitCalls++
	if s.opts.InitErr != nil {
		return s.opts.InitErr
	}
	s.initialized = true
	return nil
}

func (s *System) CreateWindowAndRenderer(width, height int, flags platform.WindowFlags) (platform.Window, platform.Renderer, error) {
	if !s.initialized {
		return nil, nil, errNotInitialized
	}
	if s.opts.WindowErr != nil {
		return nil, nil, s.opts.WindowErr
	}
	s.window = &Window{Width: width, Height: height, Flags: flags}
	s.renderer = &Renderer{
		sys:    s,
		canvas: core.NewCanvas(width, height, s.opts.CellWidth, s.opts.CellHeight),
	}
	return s.window, s.renderer, nil
}

func (s *System) PollEvent() (core.Event, bool) {
	if len(s.events) == 0 || s.events[0].at > s.now {
		return core.Event{}, false
	}
	ev := s.events[0].ev
	s.events = s.events[1:]
	s.Polled++
	return ev, true
}

func (s *System) Ticks() uint64 {
	return s.now
}

func (s *System) Delay(ms uint32) {
	s.now += uint64(ms)
}

func (s *System) Quit() {
	s.QuitCalls++
	s.initialized = false
}

// Window records title changes.
type Window struct {
	Width, Height int
	Flags         platform.WindowFlags
	Titles        []string
	Destroys      int
}

func (w *Window) SetTitle(title string) {
	w.Titles = append(w.Titles, title)
}

// Title returns the current title, or "" if never set.
func (w *Window) Title() string {
	if len(w.Titles) == 0 {
		return ""
	}
	return w.Titles[len(w.Titles)-1]
}

func (w *Window) Destroy() error {
	w.Destroys++
	if w.Destroys > 1 {
		return errAlreadyDestroyed
	}
	return nil
}

// Renderer records draw calls and rasterizes them into a canvas.
type Renderer struct {
	sys    *System
	canvas *core.Canvas

	Clears   []core.Color
	Fills    []core.Rect
	Presents int
	Destroys int
}

func (r *Renderer) Clear(c core.Color) error {
	r.Clears = append(r.Clears, c)
	r.canvas.Clear(c)
	return nil
}

func (r *Renderer) FillRect(rect core.Rect, c core.Color) error {
	r.Fills = append(r.Fills, rect)
	r.canvas.FillRect(rect, c)
	return nil
}

func (r *Renderer) Present() {
	r.Presents++
	r.sys.now += uint64(r.sys.opts.PresentCost)
}

func (r *Renderer) Destroy() error {
	r.Destroys++
	if r.Destroys > 1 {
		return errAlreadyDestroyed
	}
	return nil
}

// Canvas returns the rasterized frame.
func (r *Renderer) Canvas() *core.Canvas {
	return r.canvas
}
