// Package menu implements an in-process command registry that backs the
// application menus.
package menu

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"go.trai.ch/recent/internal/core/domain"
	"go.trai.ch/recent/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.CommandRegistry = (*Registry)(nil)
	_ ports.ActionCatalog   = (*Registry)(nil)
)

// ActionHandler runs an action with the presets of the descriptor that invoked it.
type ActionHandler func(ctx context.Context, presets map[string]string) error

// Registry holds command descriptors keyed by ID, in registration order.
type Registry struct {
	logger ports.Logger
	now    func() time.Time

	mu       sync.RWMutex
	order    []string
	byID     map[string]*domain.Descriptor
	handlers map[string]ActionHandler
}

// New creates a Registry holding the builtin open command with the given icon.
func New(logger ports.Logger, openIconPath string) *Registry {
	r := &Registry{
		logger:   logger,
		now:      time.Now,
		byID:     make(map[string]*domain.Descriptor),
		handlers: make(map[string]ActionHandler),
	}
	r.RegisterOne(&domain.Descriptor{
		ID:       domain.OpenActionID,
		Action:   domain.OpenActionID,
		Menu:     domain.NewMenuPath(domain.FileMenuLabel, domain.OpenMenuLabel),
		IconPath: openIconPath,
	})
	return r
}

// WithClock replaces the clock used to stamp refreshed descriptors.
func (r *Registry) WithClock(now func() time.Time) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
	return r
}

// RegisterMany registers every descriptor in order.
func (r *Registry) RegisterMany(ds []*domain.Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range ds {
		r.register(d)
	}
}

// RegisterOne registers d. A descriptor with an ID already present replaces it in place.
func (r *Registry) RegisterOne(d *domain.Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.register(d)
}

func (r *Registry) register(d *domain.Descriptor) {
	if d == nil || d.ID == "" {
		r.logger.Warn("ignoring command without identifier")
		return
	}
	existing, ok := r.byID[d.ID]
	if !ok {
		r.order = append(r.order, d.ID)
	}
	if ok && existing != d {
		prev, _ := existing.Resource()
		next, _ := d.Resource()
		if prev != next {
			r.logger.Warn(fmt.Sprintf("command %q for %s replaced by %s", d.ID, prev, next))
		}
	}
	r.byID[d.ID] = d
}

// UnregisterOne removes d.
func (r *Registry) UnregisterOne(d *domain.Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unregister(d)
}

// UnregisterMany removes every descriptor in ds.
func (r *Registry) UnregisterMany(ds []*domain.Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range ds {
		r.unregister(d)
	}
}

func (r *Registry) unregister(d *domain.Descriptor) {
	if d == nil {
		r.logger.Warn("ignoring unregister of nil command")
		return
	}
	if _, ok := r.byID[d.ID]; !ok {
		r.logger.Warn(fmt.Sprintf("command %q is not registered", d.ID))
		return
	}
	delete(r.byID, d.ID)
	r.order = slices.DeleteFunc(r.order, func(id string) bool { return id == d.ID })
}

// UpdateOne marks d as refreshed by bumping its revision and touch time.
func (r *Registry) UpdateOne(_ context.Context, d *domain.Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d == nil {
		r.logger.Warn("ignoring update of nil command")
		return
	}
	current, ok := r.byID[d.ID]
	if !ok {
		r.logger.Warn(fmt.Sprintf("command %q is not registered", d.ID))
		return
	}
	current.Revision++
	current.Touched = r.now()
}

// Lookup returns the descriptor registered under id.
func (r *Registry) Lookup(id string) (*domain.Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[id]
	return d, ok
}

// Entries returns snapshots of the descriptors located strictly below prefix,
// ordered by leaf weight. Equal weights keep registration order.
func (r *Registry) Entries(prefix domain.MenuPath) []domain.Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Descriptor
	for _, id := range r.order {
		d := r.byID[id]
		if len(d.Menu) > len(prefix) && d.Menu.HasPrefix(prefix) {
			snapshot := *d
			snapshot.Presets = maps.Clone(d.Presets)
			out = append(out, snapshot)
		}
	}

	slices.SortStableFunc(out, func(a, b domain.Descriptor) int {
		wa, wb := a.Menu.Leaf().Weight, b.Menu.Leaf().Weight
		switch {
		case wa < wb:
			return -1
		case wa > wb:
			return 1
		default:
			return 0
		}
	})
	return out
}

// Handle binds handler to actionID, replacing any previous handler.
func (r *Registry) Handle(actionID string, handler ActionHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[actionID] = handler
}

// Run invokes the handler bound to the action of command id with a copy of its presets.
func (r *Registry) Run(ctx context.Context, id string) error {
	r.mu.RLock()
	d, ok := r.byID[id]
	var (
		handler ActionHandler
		presets map[string]string
		found   bool
	)
	if ok {
		handler, found = r.handlers[d.Action]
		presets = maps.Clone(d.Presets)
	}
	r.mu.RUnlock()

	if !ok {
		return zerr.With(domain.ErrCommandNotFound, "id", id)
	}
	if !found {
		return zerr.With(zerr.With(domain.ErrActionNotFound, "action", d.Action), "id", id)
	}
	return handler(ctx, presets)
}
