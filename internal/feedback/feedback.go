// Package feedback carries the side-effect requests a game session raises
// (sounds and haptic pulses) from the engine to whatever can play them.
package feedback

// Event tags one feedback request.
type Event int

const (
	EventFlip Event = iota + 1
	EventMatch
	EventNoMatch
	EventGameOver
)

// String returns the tag name.
func (e Event) String() string {
	switch e {
	case EventFlip:
		return "flip"
	case EventMatch:
		return "match"
	case EventNoMatch:
		return "no-match"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Sink receives feedback events. Emit must not block.
type Sink interface {
	Emit(evt Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(evt Event)

// Emit calls f(evt).
func (f SinkFunc) Emit(evt Event) { f(evt) }

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})
