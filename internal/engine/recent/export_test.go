package recent

import "slices"

// IndexedPaths returns the sorted keys of the descriptor index.
// This is exported for testing purposes only.
func (r *Registry) IndexedPaths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	paths := make([]string, 0, len(r.index))
	for p := range r.index {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}
