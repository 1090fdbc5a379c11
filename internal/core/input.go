package core

// EventType identifies the kind of a platform input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventKeyDown
	EventKeyUp
	EventMouseButtonDown
	EventMouseButtonUp
	EventMouseMotion
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	case EventMouseButtonDown:
		return "MouseButtonDown"
	case EventMouseButtonUp:
		return "MouseButtonUp"
	case EventMouseMotion:
		return "MouseMotion"
	default:
		return "Unknown"
	}
}

// Event is a single input event translated from the windowing backend.
// Key is only meaningful for EventKeyDown and EventKeyUp.
type Event struct {
	Type EventType
	Key  KeyCode
}

// QuitEvent returns a quit request.
func QuitEvent() Event {
	return Event{Type: EventQuit}
}

// KeyDownEvent returns a key press for the given code.
func KeyDownEvent(k KeyCode) Event {
	return Event{Type: EventKeyDown, Key: k}
}

// KeyUpEvent returns a key release for the given code.
func KeyUpEvent(k KeyCode) Event {
	return Event{Type: EventKeyUp, Key: k}
}
