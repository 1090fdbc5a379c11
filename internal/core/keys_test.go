package core

import "testing"

func TestKeyStateUnsetKeysAreReleased(t *testing.T) {
	s := NewKeyState()

	codes := []KeyCode{KeyUnknown, KeyLeft, KeyRight, KeyUp, KeyDown, KeyEscape, 'a', -1, 0x7fffffff}
	for _, k := range codes {
		if s.IsPressed(k) {
			t.Errorf("IsPressed(%v) = true for a key never set", k)
		}
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected 0 after lookups only", s.Len())
	}
}

func TestKeyStateZeroValue(t *testing.T) {
	var s KeyState
	if s.IsPressed(KeyLeft) {
		t.Error("zero KeyState should report keys as released")
	}
	s.Set(KeyLeft, true)
	if !s.IsPressed(KeyLeft) {
		t.Error("zero KeyState should accept Set")
	}
}

func TestKeyStateSetRoundTrip(t *testing.T) {
	s := NewKeyState()

	s.Set(KeyRight, true)
	if !s.IsPressed(KeyRight) {
		t.Fatal("IsPressed(right) = false after Set(right, true)")
	}

	s.Set(KeyRight, false)
	if s.IsPressed(KeyRight) {
		t.Error("IsPressed(right) = true after Set(right, false)")
	}

	// Released keys stay observed
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
}

func TestKeyStateIndependentKeys(t *testing.T) {
	s := NewKeyState()
	s.Set(KeyLeft, true)
	s.Set(KeyUp, true)
	s.Set(KeyLeft, false)

	if s.IsPressed(KeyLeft) {
		t.Error("left should be released")
	}
	if !s.IsPressed(KeyUp) {
		t.Error("up should still be held")
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name     string
		expected KeyCode
		ok       bool
	}{
		{"left", KeyLeft, true},
		{"RIGHT", KeyRight, true},
		{" up ", KeyUp, true},
		{"down", KeyDown, true},
		{"escape", KeyEscape, true},
		{"a", KeyCode('a'), true},
		{"", KeyUnknown, false},
		{"pageup", KeyUnknown, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseKey(tc.name)
			if got != tc.expected || ok != tc.ok {
				t.Errorf("ParseKey(%q) = %v, %v; expected %v, %v", tc.name, got, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestKeyCodeString(t *testing.T) {
	if KeyLeft.String() != "left" {
		t.Errorf("KeyLeft.String() = %q", KeyLeft.String())
	}
	if KeyCode(0x41).String() != "key(0x41)" {
		t.Errorf("KeyCode(0x41).String() = %q", KeyCode(0x41).String())
	}
}
