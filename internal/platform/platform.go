// Package platform defines the windowing collaborator the loop drives.
// Concrete backends live in subpackages (sdl, term, headless) and register
// themselves with the registry package.
package platform

import "github.com/vovakirdan/sdlbase/internal/core"

// WindowFlags are backend-neutral window creation flags.
type WindowFlags uint32

const (
	// WindowShown makes the window visible on creation.
	WindowShown WindowFlags = 1 << iota
	// WindowResizable permits the user to resize the window.
	WindowResizable
)

// System is the platform subsystem: it owns the event queue and the clock.
// Init must succeed before any other call; Quit releases it.
type System interface {
	// Init initializes the subsystem.
	Init() error

	// CreateWindowAndRenderer opens a window of the given size in logical
	// pixels together with a renderer drawing into it.
	CreateWindowAndRenderer(width, height int, flags WindowFlags) (Window, Renderer, error)

	// PollEvent returns the next pending event without blocking.
	// The boolean is false when no event is pending.
	PollEvent() (core.Event, bool)

	// Ticks returns monotonic milliseconds since Init.
	Ticks() uint64

	// Delay sleeps for at least ms milliseconds.
	Delay(ms uint32)

	// Quit releases the subsystem.
	Quit()
}

// Window is a top-level window.
type Window interface {
	SetTitle(title string)
	Destroy() error
}

// Renderer draws into a window.
type Renderer interface {
	// Clear fills the whole target with c.
	Clear(c core.Color) error

	// FillRect fills r with c.
	FillRect(r core.Rect, c core.Color) error

	// Present shows everything drawn since the last Present.
	Present()

	Destroy() error
}
