package feedback

import "sync"

// ChannelSink buffers events for a consumer on another loop.
// Emit never blocks: when the buffer is full the oldest event is dropped.
type ChannelSink struct {
	events   chan Event
	done     chan struct{}
	doneOnce sync.Once
}

// NewChannelSink creates a sink holding up to size events.
func NewChannelSink(size int) *ChannelSink {
	if size < 1 {
		size = 16
	}
	return &ChannelSink{
		events: make(chan Event, size),
		done:   make(chan struct{}),
	}
}

// Emit queues evt.
func (s *ChannelSink) Emit(evt Event) {
	select {
	case <-s.done:
		return
	default:
	}

	select {
	case s.events <- evt:
	default:
		select {
		case <-s.events:
		default:
		}
		select {
		case s.events <- evt:
		default:
		}
	}
}

// Events returns the receive side.
func (s *ChannelSink) Events() <-chan Event {
	return s.events
}

// Drain returns every queued event without blocking.
func (s *ChannelSink) Drain() []Event {
	var out []Event
	for {
		select {
		case evt := <-s.events:
			out = append(out, evt)
		default:
			return out
		}
	}
}

// Close stops accepting events. Safe to call more than once.
func (s *ChannelSink) Close() {
	s.doneOnce.Do(func() {
		close(s.done)
	})
}
