package scanner

import (
	"context"
	"errors"
	"sync"
)

// ErrSourceClosed is returned when submitting to a closed ManualSource
var ErrSourceClosed = errors.New("scanner: source closed")

// ManualSource emits payloads typed or pasted by the user. It stands in
// for the camera on desktop builds.
type ManualSource struct {
	mu     sync.Mutex
	queue  chan DecodeEvent
	closed bool
}

// NewManualSource creates a source with a small submission buffer
func NewManualSource() *ManualSource {
	return &ManualSource{queue: make(chan DecodeEvent, 8)}
}

// Submit queues a payload for the running controller
func (m *ManualSource) Submit(payload string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrSourceClosed
	}
	select {
	case m.queue <- DecodeEvent{Payload: payload, Format: "manual"}:
		return nil
	default:
		// drop when the buffer is full, like a camera frame nobody consumed
		return nil
	}
}

// Close stops accepting submissions
func (m *ManualSource) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		close(m.queue)
	}
}

// Run forwards submitted payloads to events until ctx is done or the
// source is closed
func (m *ManualSource) Run(ctx context.Context, events chan<- DecodeEvent) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-m.queue:
			if !ok {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
