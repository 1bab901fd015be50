package event

// EventType represents the type of loop event
type EventType int

const (
	// EventKey carries a key press from the input pump
	// Trigger: terminal input goroutine | Payload: *KeyPayload
	EventKey EventType = iota + 1

	// EventResize reports a new terminal size
	// Trigger: terminal input goroutine | Payload: *ResizePayload
	EventResize

	// EventQuit asks the loop to stop after the current tick
	// Trigger: quit key, signal | Payload: nil
	EventQuit

	// EventReload delivers a reloaded configuration to the loop goroutine
	// Trigger: config watcher | Payload: config.Config
	EventReload
)

// String returns the event name used in logs
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventResize:
		return "resize"
	case EventQuit:
		return "quit"
	case EventReload:
		return "reload"
	default:
		return "unknown"
	}
}

// GameEvent is one queued loop event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Frame number at push time
}
