package registry

import (
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sdlbase/internal/config"
	"github.com/vovakirdan/sdlbase/internal/core"
	"github.com/vovakirdan/sdlbase/internal/platform"
)

type stubSystem struct{ width int }

func (s *stubSystem) Init() error { return nil }
func (s *stubSystem) CreateWindowAndRenderer(int, int, platform.WindowFlags) (platform.Window, platform.Renderer, error) {
	return nil, nil, nil
}
func (s *stubSystem) PollEvent() (core.Event, bool) { return core.Event{}, false }
func (s *stubSystem) Ticks() uint64                 { return 0 }
func (s *stubSystem) Delay(uint32)                  {}
func (s *stubSystem) Quit()                         {}

func stubFactory(cfg config.Config, _ *log.Logger) platform.System {
	return &stubSystem{width: cfg.Window.Width}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-create", "Create Stub", stubFactory)

	if !Exists("test-create") {
		t.Fatal("Exists() = false after Register")
	}

	cfg := config.Default()
	sys, err := Create("test-create", cfg, nil)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	stub, ok := sys.(*stubSystem)
	if !ok {
		t.Fatalf("Create() returned %T, expected *stubSystem", sys)
	}
	if stub.width != cfg.Window.Width {
		t.Errorf("factory saw width %d, expected %d", stub.width, cfg.Window.Width)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does-not-exist", config.Default(), nil)
	if err == nil {
		t.Fatal("Create() with unknown id should fail")
	}
	if !strings.Contains(err.Error(), "does-not-exist") {
		t.Errorf("error %q should name the backend", err)
	}
	if Exists("does-not-exist") {
		t.Error("Exists() = true for unknown id")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", "Dup", stubFactory)

	defer func() {
		if recover() == nil {
			t.Error("second Register() with the same id should panic")
		}
	}()
	Register("test-dup", "Dup again", stubFactory)
}

func TestListSorted(t *testing.T) {
	Register("test-list-b", "B", stubFactory)
	Register("test-list-a", "A", stubFactory)

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	titles := make(map[string]string)
	for _, info := range list {
		titles[info.ID] = info.Title
	}
	if titles["test-list-a"] != "A" || titles["test-list-b"] != "B" {
		t.Errorf("List() titles = %v, missing registered entries", titles)
	}
}
