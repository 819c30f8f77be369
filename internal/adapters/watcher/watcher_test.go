package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recent/internal/adapters/watcher"
	"go.trai.ch/recent/internal/core/domain"
	"go.trai.ch/recent/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const testWindow = 20 * time.Millisecond

func newWatcher(t *testing.T) *watcher.Watcher {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(log, testWindow)
	require.NoError(t, err)
	return w
}

// nextEvent waits for one event from the watcher.
func nextEvent(t *testing.T, events <-chan domain.Event) domain.Event {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a watcher event")
		return nil
	}
}

func collect(w *watcher.Watcher) <-chan domain.Event {
	out := make(chan domain.Event, 16)
	go func() {
		defer close(out)
		for ev := range w.Events() {
			out <- ev
		}
	}()
	return out
}

func TestWatcher_EmitsSavedFiles(t *testing.T) {
	root := t.TempDir()
	w := newWatcher(t)
	require.NoError(t, w.Add(root))

	done := make(chan error, 1)
	go func() { done <- w.Run(t.Context()) }()
	events := collect(w)

	path := filepath.Join(root, "cells.tif")
	require.NoError(t, os.WriteFile(path, []byte("pixels"), 0o600))

	ev := nextEvent(t, events)
	assert.Equal(t, domain.EventSaved, ev.Kind())
	assert.Equal(t, path, ev.Resource())

	require.NoError(t, w.Close())
	require.NoError(t, <-done)

	// The stream ends once Run returns.
	for range events {
	}
}

func TestWatcher_WatchesNewDirectories(t *testing.T) {
	root := t.TempDir()
	w := newWatcher(t)
	require.NoError(t, w.Add(root))

	go func() { _ = w.Run(t.Context()) }()
	t.Cleanup(func() { _ = w.Close() })
	events := collect(w)

	sub := filepath.Join(root, "session")
	require.NoError(t, os.Mkdir(sub, 0o750))

	// Give the watcher time to register the new directory.
	path := filepath.Join(sub, "cells.tif")
	require.Eventually(t, func() bool {
		if err := os.WriteFile(path, []byte("pixels"), 0o600); err != nil {
			return false
		}
		select {
		case ev := <-events:
			return ev.Resource() == path
		case <-time.After(200 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWatcher_StopsOnContextCancel(t *testing.T) {
	root := t.TempDir()
	w := newWatcher(t)
	require.NoError(t, w.Add(root))
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Empty(t, slices.Collect(w.Events()))
}

func TestWatcher_Add_Errors(t *testing.T) {
	w := newWatcher(t)
	t.Cleanup(func() { _ = w.Close() })

	err := w.Add(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrWatchFailed.Error())

	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	assert.Error(t, w.Add(file))
}
