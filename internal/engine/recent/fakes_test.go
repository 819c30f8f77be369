package recent_test

import (
	"context"
	"errors"
	"iter"
	"slices"
	"sync"

	"go.trai.ch/recent/internal/core/domain"
)

var errDiskFull = errors.New("disk full")

// memStore is an in-memory PreferenceStore.
type memStore struct {
	mu      sync.Mutex
	lists   map[string][]string
	saves   int
	failing bool
}

func newMemStore(initial ...string) *memStore {
	s := &memStore{lists: make(map[string][]string)}
	if len(initial) > 0 {
		s.lists[domain.RecentFilesKey] = slices.Clone(initial)
	}
	return s
}

func (s *memStore) LoadList(key string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.lists[key]), nil
}

func (s *memStore) SaveList(key string, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return errDiskFull
	}
	s.saves++
	s.lists[key] = slices.Clone(values)
	return nil
}

func (s *memStore) Clear(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return errDiskFull
	}
	delete(s.lists, key)
	return nil
}

func (s *memStore) stored() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.lists[domain.RecentFilesKey])
}

func (s *memStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func (s *memStore) setFailing(failing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = failing
}

// recordingRegistry is a CommandRegistry that tracks what is registered.
type recordingRegistry struct {
	mu           sync.Mutex
	registered   map[*domain.Descriptor]struct{}
	batches      int
	unregistered []*domain.Descriptor
	updates      []*domain.Descriptor
}

func newRecordingRegistry() *recordingRegistry {
	return &recordingRegistry{registered: make(map[*domain.Descriptor]struct{})}
}

func (r *recordingRegistry) RegisterMany(ds []*domain.Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches++
	for _, d := range ds {
		r.registered[d] = struct{}{}
	}
}

func (r *recordingRegistry) RegisterOne(d *domain.Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registered[d] = struct{}{}
}

func (r *recordingRegistry) UnregisterOne(d *domain.Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.registered, d)
	r.unregistered = append(r.unregistered, d)
}

func (r *recordingRegistry) UnregisterMany(ds []*domain.Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range ds {
		delete(r.registered, d)
	}
	r.unregistered = append(r.unregistered, ds...)
}

func (r *recordingRegistry) UpdateOne(_ context.Context, d *domain.Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d.Revision++
	r.updates = append(r.updates, d)
}

// resources returns the sorted identifiers of the registered descriptors.
func (r *recordingRegistry) resources() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.registered))
	for d := range r.registered {
		p, _ := d.Resource()
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// stubFactory creates minimal descriptors bound to the identifier.
type stubFactory struct {
	mu      sync.Mutex
	created int
}

func (f *stubFactory) Create(identifier string) *domain.Descriptor {
	f.mu.Lock()
	f.created++
	f.mu.Unlock()
	return &domain.Descriptor{
		ID:      "recent." + identifier,
		Action:  domain.ReopenActionID,
		Presets: map[string]string{domain.InputFileParam: identifier},
		Menu:    domain.NewMenuPath(domain.FileMenuLabel, domain.RecentMenuLabel, identifier),
	}
}

// sliceSource is an EventSource over a fixed slice.
type sliceSource []domain.Event

func (s sliceSource) Events() iter.Seq[domain.Event] {
	return func(yield func(domain.Event) bool) {
		for _, ev := range s {
			if !yield(ev) {
				return
			}
		}
	}
}

// unknownEvent is an Event kind the registry does not handle.
type unknownEvent struct {
	domain.ResourceOpened
}

func (unknownEvent) Kind() domain.EventKind { return "renamed" }

type ctxKey struct{}

// nonNil normalizes a nil slice to an empty one for comparisons.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
