package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/recent/internal/core/domain"
	"go.trai.ch/recent/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// skippedDirectories are never watched.
var skippedDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
}

const eventChannelBuffer = 100

// Watcher turns writes to regular files into domain.ResourceSaved events.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	debouncer *Debouncer
	events    chan domain.Event
	done      chan struct{}
	doneOnce  sync.Once

	mu     sync.Mutex
	closed bool
}

// NewWatcher creates a watcher coalescing notifications over window.
func NewWatcher(logger ports.Logger, window time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		logger:    logger,
		events:    make(chan domain.Event, eventChannelBuffer),
		done:      make(chan struct{}),
	}
	w.debouncer = NewDebouncer(window, w.emit)
	return w, nil
}

// Add watches root and every directory below it.
func (w *Watcher) Add(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", root)
	}
	if !info.IsDir() {
		return zerr.With(zerr.New("not a directory"), "path", root)
	}

	for dir := range walkDirectories(root) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", dir)
		}
	}
	return nil
}

// Close stops the watcher. Run flushes pending paths before returning.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}

// Events yields saved-file events until Run returns.
func (w *Watcher) Events() iter.Seq[domain.Event] {
	return func(yield func(domain.Event) bool) {
		for ev := range w.events {
			if !yield(ev) {
				return
			}
		}
	}
}

// Run processes notifications until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.shutdown(false)
			return ctx.Err()

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				w.shutdown(true)
				return nil
			}
			w.handle(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				w.shutdown(true)
				return nil
			}
			w.logger.Error(zerr.Wrap(err, domain.ErrWatchFailed.Error()))
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		return
	}

	if info.IsDir() {
		if event.Has(fsnotify.Create) && !skippedDirectories[info.Name()] {
			for dir := range walkDirectories(event.Name) {
				_ = w.fsWatcher.Add(dir)
			}
		}
		return
	}

	if info.Mode().IsRegular() {
		w.debouncer.Add(event.Name)
	}
}

// shutdown ends the event stream. A graceful shutdown delivers pending paths first.
func (w *Watcher) shutdown(graceful bool) {
	if graceful {
		w.debouncer.Flush()
	}
	w.doneOnce.Do(func() { close(w.done) })
	if !graceful {
		w.debouncer.Flush()
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.closed {
		w.closed = true
		close(w.events)
	}
}

// emit publishes one ResourceSaved per path, giving up once the watcher is done.
func (w *Watcher) emit(paths []string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, path := range paths {
		if w.closed {
			return
		}
		select {
		case w.events <- domain.ResourceSaved{Identifier: path}:
		case <-w.done:
			return
		}
	}
}

// walkDirectories yields root and the directories below it, skipping ignored ones.
func walkDirectories(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // unreadable directories are skipped
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && skippedDirectories[d.Name()] {
				return fs.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}
