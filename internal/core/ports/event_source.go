package ports

import (
	"iter"

	"go.trai.ch/recent/internal/core/domain"
)

// EventSource delivers resource notifications.
type EventSource interface {
	// Events returns an iterator of notifications.
	// The iterator ends when the source is closed.
	Events() iter.Seq[domain.Event]
}
