package core

import (
	"fmt"
	"strings"
)

// KeyCode is a raw virtual key code. The values of the named keys match
// SDL's SDL_Keycode so the SDL backend can pass codes through untouched;
// other backends translate into the same space.
type KeyCode int32

// Key codes the loop and its backends care about.
const (
	KeyUnknown KeyCode = 0
	KeyEscape  KeyCode = 27
	KeySpace   KeyCode = 32
	KeyRight   KeyCode = 0x4000004F
	KeyLeft    KeyCode = 0x40000050
	KeyDown    KeyCode = 0x40000051
	KeyUp      KeyCode = 0x40000052
)

var keyNames = map[KeyCode]string{
	KeyEscape: "escape",
	KeySpace:  "space",
	KeyRight:  "right",
	KeyLeft:   "left",
	KeyDown:   "down",
	KeyUp:     "up",
}

// String returns the lower-case name of a known key, or "key(0x..)" otherwise.
func (k KeyCode) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%#x)", int32(k))
}

// ParseKey resolves a key name as produced by String.
// Single printable characters map to their ASCII code, as in SDL.
func ParseKey(name string) (KeyCode, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range keyNames {
		if n == name {
			return k, true
		}
	}
	if len(name) == 1 && name[0] > ' ' && name[0] < 0x7f {
		return KeyCode(name[0]), true
	}
	return KeyUnknown, false
}

// KeyState maps key codes to their pressed state.
// Keys never observed read as released. Entries are never removed.
type KeyState struct {
	keys map[KeyCode]bool
}

// NewKeyState creates an empty key state.
func NewKeyState() *KeyState {
	return &KeyState{keys: make(map[KeyCode]bool)}
}

// Set records whether the key is currently held.
func (s *KeyState) Set(k KeyCode, pressed bool) {
	if s.keys == nil {
		s.keys = make(map[KeyCode]bool)
	}
	s.keys[k] = pressed
}

// IsPressed returns true if the key is held. Unknown keys are not pressed.
func (s *KeyState) IsPressed(k KeyCode) bool {
	if s.keys == nil {
		return false
	}
	return s.keys[k]
}

// Len returns the number of keys observed so far.
func (s *KeyState) Len() int {
	return len(s.keys)
}
