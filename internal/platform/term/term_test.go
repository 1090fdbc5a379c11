package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/sdlbase/internal/core"
	"github.com/vovakirdan/sdlbase/internal/platform"
)

// newSimSystem returns an initialized system on a 60x20 simulation screen.
func newSimSystem(t *testing.T, opts Options) (*System, tcell.SimulationScreen) {
	t.Helper()

	sim := tcell.NewSimulationScreen("UTF-8")
	opts.NewScreen = func() (tcell.Screen, error) { return sim, nil }
	s := New(opts)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	sim.SetSize(60, 20)
	t.Cleanup(s.Quit)
	return s, sim
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		expected core.Event
		ok       bool
	}{
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), core.KeyDownEvent(core.KeyLeft), true},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), core.KeyDownEvent(core.KeyRight), true},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.KeyDownEvent(core.KeyUp), true},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), core.KeyDownEvent(core.KeyDown), true},
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.QuitEvent(), true},
		{"ctrl+c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), core.QuitEvent(), true},
		{"letter", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), core.KeyDownEvent(core.KeyCode('w')), true},
		{"non-ascii rune", tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone), core.Event{}, false},
		{"function key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), core.Event{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := translateKey(tc.ev)
			if ok != tc.ok || got != tc.expected {
				t.Errorf("translateKey() = %+v, %v; expected %+v, %v", got, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestSynthesizedRelease(t *testing.T) {
	s := New(Options{ReleaseAfter: 100 * time.Millisecond})
	clock := time.Unix(0, 0)
	s.now = func() time.Time { return clock }

	if ev, ok := s.translate(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)); !ok || ev != core.KeyDownEvent(core.KeyRight) {
		t.Fatalf("translate() = %+v, %v", ev, ok)
	}

	clock = clock.Add(60 * time.Millisecond)
	if _, ok := s.expire(); ok {
		t.Fatal("key released before the release window")
	}

	// A repeat restarts the window
	s.translate(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	clock = clock.Add(60 * time.Millisecond)
	if _, ok := s.expire(); ok {
		t.Fatal("repeat should keep the key held")
	}

	clock = clock.Add(40 * time.Millisecond)
	ev, ok := s.expire()
	if !ok || ev != core.KeyUpEvent(core.KeyRight) {
		t.Fatalf("expire() = %+v, %v; expected right released", ev, ok)
	}
	if _, ok := s.expire(); ok {
		t.Error("a key is released only once")
	}
}

func TestTicksFollowClock(t *testing.T) {
	s, _ := newSimSystem(t, Options{})
	base := s.start
	s.now = func() time.Time { return base.Add(1500 * time.Millisecond) }

	if s.Ticks() != 1500 {
		t.Errorf("Ticks() = %d, expected 1500", s.Ticks())
	}
}

func TestPollEventFromScreen(t *testing.T) {
	s, sim := newSimSystem(t, Options{})

	if _, ok := s.PollEvent(); ok {
		// A resize or similar may be queued by Init; it is never surfaced
		t.Fatal("no input was injected yet")
	}

	sim.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if ev, ok := s.PollEvent(); ok {
			if ev != core.KeyDownEvent(core.KeyLeft) {
				t.Fatalf("PollEvent() = %+v, expected left down", ev)
			}
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("injected key never arrived")
}

func TestRendererPresent(t *testing.T) {
	s, sim := newSimSystem(t, Options{CellWidth: 8, CellHeight: 16})

	w, r, err := s.CreateWindowAndRenderer(480, 320, platform.WindowShown)
	if err != nil {
		t.Fatalf("CreateWindowAndRenderer() failed: %v", err)
	}

	r.Clear(core.ColorWhite)
	r.FillRect(core.NewRect(0, 0, core.HeroSize, core.HeroSize), core.ColorRed)
	r.Present()

	cells, width, _ := sim.GetContents()
	at := func(x, y int) rune {
		c := cells[y*width+x]
		if len(c.Runes) == 0 {
			return ' '
		}
		return c.Runes[0]
	}
	if at(0, 0) != '█' || at(1, 0) != '█' {
		t.Errorf("hero cells = %q %q, expected blocks", at(0, 0), at(1, 0))
	}
	if at(2, 0) != ' ' || at(0, 1) != ' ' {
		t.Errorf("background cells = %q %q, expected spaces", at(2, 0), at(0, 1))
	}

	w.SetTitle("Test: 60 FPS")
	if w.(*Window).Title() != "Test: 60 FPS" {
		t.Errorf("Title() = %q", w.(*Window).Title())
	}
}

func TestCreateBeforeInit(t *testing.T) {
	s := New(Options{})
	if _, _, err := s.CreateWindowAndRenderer(10, 10, 0); err == nil {
		t.Error("CreateWindowAndRenderer() before Init should fail")
	}
	s.Quit() // no screen, must not panic
}
