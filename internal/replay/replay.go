// Package replay loads scripted input for deterministic runs on the
// headless backend.
//
// A script is YAML:
//
//	duration_ms: 2000
//	frame_skip: 0
//	present_cost_ms: 0
//	events:
//	  - {at: 0, type: keydown, key: right}
//	  - {at: 500, type: keyup, key: right}
package replay

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/sdlbase/internal/core"
	"github.com/vovakirdan/sdlbase/internal/platform/headless"
)

// DefaultDuration is used when a script sets no duration.
const DefaultDuration = 1000

// Script is a timed list of input events.
type Script struct {
	DurationMs    uint64        `yaml:"duration_ms"`
	FrameSkip     *int          `yaml:"frame_skip"` // Overrides the configured frame skip when set
	PresentCostMs uint32        `yaml:"present_cost_ms"`
	Events        []ScriptEvent `yaml:"events"`
}

// ScriptEvent is one input event at a virtual time.
type ScriptEvent struct {
	At   uint64 `yaml:"at"`
	Type string `yaml:"type"` // keydown, keyup, quit, mousedown, mouseup, mousemove
	Key  string `yaml:"key"`  // Key name for keydown/keyup, see core.ParseKey
}

var eventTypes = map[string]core.EventType{
	"quit":      core.EventQuit,
	"keydown":   core.EventKeyDown,
	"keyup":     core.EventKeyUp,
	"mousedown": core.EventMouseButtonDown,
	"mouseup":   core.EventMouseButtonUp,
	"mousemove": core.EventMouseMotion,
}

// Load reads and parses a script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("replay: failed to read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("replay: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a script and checks every event.
func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, err
	}
	if s.DurationMs == 0 {
		s.DurationMs = DefaultDuration
	}
	if s.FrameSkip != nil && *s.FrameSkip < 0 {
		return Script{}, fmt.Errorf("frame_skip must not be negative, got %d", *s.FrameSkip)
	}
	for i, ev := range s.Events {
		if _, err := ev.Event(); err != nil {
			return Script{}, fmt.Errorf("event %d: %w", i, err)
		}
	}
	return s, nil
}

// Event converts the scripted entry into a core event.
func (e ScriptEvent) Event() (core.Event, error) {
	typ, ok := eventTypes[strings.ToLower(e.Type)]
	if !ok {
		return core.Event{}, fmt.Errorf("unknown event type %q", e.Type)
	}
	out := core.Event{Type: typ}
	if typ == core.EventKeyDown || typ == core.EventKeyUp {
		key, ok := core.ParseKey(e.Key)
		if !ok {
			return core.Event{}, fmt.Errorf("unknown key %q", e.Key)
		}
		out.Key = key
	}
	return out, nil
}

// NewSystem builds a headless system with the script's events queued and a
// Quit at the end of the duration.
func (s Script) NewSystem(cellW, cellH int) *headless.System {
	sys := headless.New(headless.Options{
		PresentCost: s.PresentCostMs,
		CellWidth:   cellW,
		CellHeight:  cellH,
	})
	for _, e := range s.Events {
		// Parse validated every event
		ev, _ := e.Event()
		sys.Schedule(e.At, ev)
	}
	sys.Schedule(s.DurationMs, core.QuitEvent())
	return sys
}
