package core

// EventType classifies a polled platform event.
// Backends translate their native events into these so the render loop
// never sees backend-specific types.
type EventType int

const (
	EventNone   EventType = iota // No event pending
	EventQuit                    // Window closed, quit key, or interrupt
	EventKey                     // Any other key press
	EventResize                  // Window or terminal size changed
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventKey:
		return "Key"
	case EventResize:
		return "Resize"
	default:
		return "Unknown"
	}
}

// Event is a single input event delivered by a backend's PollEvent.
type Event struct {
	Type EventType
	Key  string // Key name for EventKey
	W, H int    // New size for EventResize
}

// NoEvent is returned by PollEvent when the queue is empty.
var NoEvent = Event{Type: EventNone}

// QuitEvent builds a quit event.
func QuitEvent() Event {
	return Event{Type: EventQuit}
}

// IsQuit reports whether the event asks the program to stop.
func (e Event) IsQuit() bool {
	return e.Type == EventQuit
}
