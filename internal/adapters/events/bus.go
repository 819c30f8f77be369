// Package events provides an in-process bus delivering resource events to the registry.
package events

import (
	"context"
	"iter"
	"sync"

	"go.trai.ch/recent/internal/core/domain"
	"go.trai.ch/recent/internal/core/ports"
)

// DefaultBufferSize is the number of events a bus holds before Publish blocks.
const DefaultBufferSize = 64

var _ ports.EventSource = (*Bus)(nil)

// Bus is a buffered, single-consumer event queue.
type Bus struct {
	mu     sync.RWMutex
	ch     chan domain.Event
	closed bool
}

// NewBus creates a Bus buffering up to size events. Non-positive sizes use DefaultBufferSize.
func NewBus(size int) *Bus {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Bus{ch: make(chan domain.Event, size)}
}

// Publish queues ev, blocking while the buffer is full until ctx is done.
func (b *Bus) Publish(ctx context.Context, ev domain.Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return domain.ErrBusClosed
	}

	select {
	case b.ch <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the bus. Queued events are still delivered. Closing twice is a no-op.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	close(b.ch)
}

// Events yields queued events until the bus is closed and drained.
func (b *Bus) Events() iter.Seq[domain.Event] {
	return func(yield func(domain.Event) bool) {
		for ev := range b.ch {
			if !yield(ev) {
				return
			}
		}
	}
}
