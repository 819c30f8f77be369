// Package app implements the application layer of the recent files registry.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"go.trai.ch/recent/internal/adapters/events"
	"go.trai.ch/recent/internal/adapters/menu"
	"go.trai.ch/recent/internal/core/domain"
	"go.trai.ch/recent/internal/core/ports"
	"go.trai.ch/recent/internal/engine/recent"
	"go.trai.ch/recent/internal/ui/listing"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App orchestrates the recent registry, the menu and the watcher for the CLI.
type App struct {
	registry   *recent.Registry
	menu       *menu.Registry
	newWatcher ports.WatcherFactory
	logger     ports.Logger
	tracer     ports.Tracer
	printer    *listing.Printer
}

// New creates an App and binds the open and reopen actions of the menu.
func New(
	registry *recent.Registry,
	menuRegistry *menu.Registry,
	newWatcher ports.WatcherFactory,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	a := &App{
		registry:   registry,
		menu:       menuRegistry,
		newWatcher: newWatcher,
		logger:     log,
		tracer:     tracer,
		printer:    listing.New(os.Stdout),
	}
	menuRegistry.Handle(domain.OpenActionID, a.openAction)
	menuRegistry.Handle(domain.ReopenActionID, a.openAction)
	return a
}

// WithOutput redirects user-facing output to w.
func (a *App) WithOutput(w io.Writer) *App {
	a.printer = listing.New(w)
	return a
}

// Add records paths as recently used, in order.
func (a *App) Add(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return domain.ErrNoPathsSpecified
	}
	for _, path := range paths {
		err := a.traced(ctx, "recent.add", path, func(ctx context.Context) error {
			return a.registry.Add(ctx, path)
		})
		if err != nil {
			return err
		}
		_ = a.printer.Success("added " + path)
	}
	return nil
}

// Open reports paths as opened through the event bus.
func (a *App) Open(ctx context.Context, paths []string) error {
	return a.notify(ctx, "recent.open", paths, func(path string) domain.Event {
		return domain.ResourceOpened{Identifier: path}
	})
}

// Saved reports paths as saved through the event bus.
func (a *App) Saved(ctx context.Context, paths []string) error {
	return a.notify(ctx, "recent.saved", paths, func(path string) domain.Event {
		return domain.ResourceSaved{Identifier: path}
	})
}

func (a *App) notify(ctx context.Context, name string, paths []string, event func(string) domain.Event) error {
	if len(paths) == 0 {
		return domain.ErrNoPathsSpecified
	}

	ctx, span := a.tracer.Start(ctx, name, ports.WithAttribute("count", len(paths)))
	defer span.End()

	bus := events.NewBus(len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.registry.Consume(gctx, bus)
	})
	g.Go(func() error {
		defer bus.Close()
		for _, path := range paths {
			if err := bus.Publish(gctx, event(path)); err != nil {
				return err
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return err
	}
	for _, path := range paths {
		_ = a.printer.Success("recorded " + path)
	}
	return nil
}

// Remove drops path from the recent list. Removing an untracked path only warns.
func (a *App) Remove(ctx context.Context, path string) error {
	var found bool
	err := a.traced(ctx, "recent.remove", path, func(context.Context) error {
		var err error
		found, err = a.registry.Remove(path)
		return err
	})
	if err != nil {
		return err
	}

	if !found {
		_ = a.printer.Warning(path + " was not in the recent list")
		return nil
	}
	_ = a.printer.Success("removed " + path)
	return nil
}

// Clear forgets every recent path.
func (a *App) Clear(ctx context.Context) error {
	_, span := a.tracer.Start(ctx, "recent.clear")
	defer span.End()

	if err := a.registry.Clear(); err != nil {
		span.RecordError(err)
		return err
	}
	_ = a.printer.Success("cleared recent files")
	return nil
}

// List prints the shown recent paths, or every path when all is set.
func (a *App) List(_ context.Context, all bool) error {
	paths := a.registry.Shown()
	if all {
		paths = a.registry.List()
	}
	return a.printer.Paths("Recent files", paths)
}

// Menu prints the Open Recent submenu.
func (a *App) Menu(_ context.Context) error {
	return a.printer.Menu(domain.RecentMenuPath(), a.recentEntries())
}

// recentEntries returns the Open Recent entries of the shown paths, most recent last.
func (a *App) recentEntries() []domain.Descriptor {
	byResource := make(map[string]domain.Descriptor)
	for _, d := range a.menu.Entries(domain.RecentMenuPath()) {
		if resource, ok := d.Resource(); ok {
			byResource[resource] = d
		}
	}

	shown := a.registry.Shown()
	entries := make([]domain.Descriptor, 0, len(shown))
	for _, path := range shown {
		if d, ok := byResource[path]; ok {
			entries = append(entries, d)
		}
	}
	return entries
}

// Reopen runs the n-th entry of the Open Recent submenu, counting from 1.
func (a *App) Reopen(ctx context.Context, n int) error {
	entries := a.recentEntries()
	if n < 1 || n > len(entries) {
		return zerr.With(zerr.With(domain.ErrMenuIndexOutOfRange, "index", n), "entries", len(entries))
	}

	ctx, span := a.tracer.Start(ctx, "recent.reopen", ports.WithAttribute("id", entries[n-1].ID))
	defer span.End()

	if err := a.menu.Run(ctx, entries[n-1].ID); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// Watch records files saved below dirs until ctx is done.
func (a *App) Watch(ctx context.Context, dirs []string) error {
	if len(dirs) == 0 {
		return domain.ErrNoPathsSpecified
	}

	w, err := a.newWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			return err
		}
	}
	a.logger.Info("watching " + strings.Join(dirs, ", "))

	ctx, span := a.tracer.Start(ctx, "recent.watch", ports.WithAttribute("dirs", dirs))
	defer span.End()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return w.Run(gctx)
	})
	g.Go(func() error {
		return a.registry.Consume(gctx, w)
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		span.RecordError(err)
	}
	return err
}

// openAction is bound to the open and reopen menu actions.
func (a *App) openAction(ctx context.Context, presets map[string]string) error {
	path, ok := presets[domain.InputFileParam]
	if !ok {
		return zerr.With(domain.ErrMissingPreset, "param", domain.InputFileParam)
	}
	return a.Open(ctx, []string{path})
}

// traced runs fn inside a span named name carrying path.
func (a *App) traced(ctx context.Context, name, path string, fn func(context.Context) error) error {
	ctx, span := a.tracer.Start(ctx, name, ports.WithAttribute("path", path))
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
