// Package recent implements the registry of recently used resources.
//
// The registry keeps an ordered list of resource identifiers, most recent
// last, and one command descriptor per identifier. Both collections change
// together under a single lock, every change is written through to the
// preference store, and descriptors are mirrored into the command registry.
package recent

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"go.trai.ch/recent/internal/core/domain"
	"go.trai.ch/recent/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry tracks recently used resource identifiers and their reopen descriptors.
type Registry struct {
	store    ports.PreferenceStore
	commands ports.CommandRegistry
	factory  ports.DescriptorFactory

	mu       sync.RWMutex
	files    []string
	index    map[string]*domain.Descriptor
	maxShown int
}

// NewRegistry loads the persisted recent list and registers one descriptor per entry.
// It fails if the preference store cannot be read.
func NewRegistry(
	store ports.PreferenceStore,
	commands ports.CommandRegistry,
	factory ports.DescriptorFactory,
) (*Registry, error) {
	stored, err := store.LoadList(domain.RecentFilesKey)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRecentLoadFailed.Error())
	}

	r := &Registry{
		store:    store,
		commands: commands,
		factory:  factory,
		files:    dedupe(stored),
		index:    make(map[string]*domain.Descriptor, len(stored)),
		maxShown: domain.MaxFilesShown,
	}

	descriptors := make([]*domain.Descriptor, 0, len(r.files))
	for _, path := range r.files {
		d := factory.Create(path)
		r.index[path] = d
		descriptors = append(descriptors, d)
	}

	if len(descriptors) > 0 {
		commands.RegisterMany(descriptors)
	}

	return r, nil
}

// WithMaxShown sets how many entries Shown returns. Non-positive values keep the default.
func (r *Registry) WithMaxShown(n int) *Registry {
	if n <= 0 {
		return r
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.maxShown = n
	return r
}

// Add makes path the most recently used entry.
//
// A path already tracked is moved to the end and its descriptor refreshed
// in place; a new path gets a fresh descriptor that is registered.
func (r *Registry) Add(ctx context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, present := r.index[path]

	next := slices.Clone(r.files)
	if present {
		next = slices.DeleteFunc(next, func(p string) bool { return p == path })
	}
	next = append(next, path)

	if err := r.store.SaveList(domain.RecentFilesKey, next); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRecentSaveFailed.Error()), "path", path)
	}
	r.files = next

	if present {
		r.commands.UpdateOne(ctx, existing)
		return nil
	}

	d := r.factory.Create(path)
	r.index[path] = d
	r.commands.RegisterOne(d)
	return nil
}

// Remove drops path from the list and unregisters its descriptor.
// It reports whether path was tracked. The list is persisted even when it was not.
func (r *Registry) Remove(path string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := slices.Contains(r.files, path)
	next := slices.DeleteFunc(slices.Clone(r.files), func(p string) bool { return p == path })

	if err := r.store.SaveList(domain.RecentFilesKey, next); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrRecentSaveFailed.Error()), "path", path)
	}
	r.files = next

	if d, ok := r.index[path]; ok {
		delete(r.index, path)
		r.commands.UnregisterOne(d)
	}

	return found, nil
}

// Clear empties the list, the persisted preference and the registered descriptors.
func (r *Registry) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Clear(domain.RecentFilesKey); err != nil {
		return zerr.Wrap(err, domain.ErrRecentClearFailed.Error())
	}

	// Unregister in list order; the index holds exactly the listed paths.
	descriptors := make([]*domain.Descriptor, 0, len(r.index))
	for _, path := range r.files {
		descriptors = append(descriptors, r.index[path])
	}
	r.files = nil
	clear(r.index)

	if len(descriptors) > 0 {
		r.commands.UnregisterMany(descriptors)
	}

	return nil
}

// List returns a copy of every tracked path, most recent last.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.files)
}

// Shown returns a copy of the most recent entries up to the shown cap, most recent last.
func (r *Registry) Shown() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := max(len(r.files)-r.maxShown, 0)
	return slices.Clone(r.files[start:])
}

// Descriptor returns the descriptor linked to path.
func (r *Registry) Descriptor(path string) (*domain.Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.index[path]
	return d, ok
}

// Handle reacts to a resource notification by touching its identifier.
func (r *Registry) Handle(ctx context.Context, ev domain.Event) error {
	if ev == nil {
		return zerr.With(domain.ErrUnknownEvent, "type", "<nil>")
	}
	switch kind := ev.Kind(); kind {
	case domain.EventOpened, domain.EventSaved:
		return r.Add(ctx, ev.Resource())
	default:
		return zerr.With(zerr.With(domain.ErrUnknownEvent, "kind", string(kind)), "type", fmt.Sprintf("%T", ev))
	}
}

// Consume handles every event from src until the source ends or ctx is done.
func (r *Registry) Consume(ctx context.Context, src ports.EventSource) error {
	for ev := range src.Events() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.Handle(ctx, ev); err != nil {
			return err
		}
	}
	return ctx.Err()
}

// dedupe drops earlier occurrences of repeated paths, keeping the last one.
func dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for i := len(paths) - 1; i >= 0; i-- {
		if _, ok := seen[paths[i]]; ok {
			continue
		}
		seen[paths[i]] = struct{}{}
		out = append(out, paths[i])
	}
	slices.Reverse(out)
	return out
}
