package ports

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks

// Watcher observes directories and reports saved files as events.
type Watcher interface {
	EventSource

	// Add watches root and every directory below it.
	Add(root string) error

	// Run processes file system notifications until ctx is done or the watcher is closed.
	// The event stream ends when Run returns.
	Run(ctx context.Context) error

	// Close stops the watcher. Pending notifications are delivered before Run returns.
	Close() error
}

// WatcherFactory creates a new, unstarted Watcher.
type WatcherFactory func() (Watcher, error)
