// Package seeds provides deterministic fallback data per domain, so every
// surface is populable before a backend exists or when a live fetch fails.
package seeds

import "sync"

// Domain names under which seed sets are registered.
const (
	DomainMemories  = "memories"
	DomainLocations = "locations"
	DomainProposals = "proposals"
	DomainSkills    = "skills"
)

// Registry holds the seed set for each domain plus the shared mock-data
// flag. The flag is mutated only through SetEnabled and observed through
// Subscribe; readers never touch it directly.
type Registry struct {
	mu      sync.RWMutex
	enabled bool
	seeds   map[string]any
	subs    []chan bool
}

// NewRegistry creates a registry with the given initial flag state.
func NewRegistry(enabled bool) *Registry {
	return &Registry{
		enabled: enabled,
		seeds:   make(map[string]any),
	}
}

// Register stores the seed set for a domain. Re-registration replaces the
// previous set, so registering on every startup path is safe.
func (r *Registry) Register(domain string, items any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seeds[domain] = items
}

// Enabled reports whether mock-data fallback is active.
func (r *Registry) Enabled() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.enabled
}

// SetEnabled flips the mock-data flag and notifies subscribers. Slow
// subscribers miss intermediate states rather than blocking the writer.
func (r *Registry) SetEnabled(enabled bool) {
	r.mu.Lock()
	if r.enabled == enabled {
		r.mu.Unlock()
		return
	}
	r.enabled = enabled
	subs := make([]chan bool, len(r.subs))
	copy(subs, r.subs)
	r.mu.Unlock()

	for _, sub := range subs {
		select {
		case sub <- enabled:
		default:
		}
	}
}

// Subscribe returns a channel that receives the new flag value after each
// change.
func (r *Registry) Subscribe() <-chan bool {
	ch := make(chan bool, 1)
	r.mu.Lock()
	r.subs = append(r.subs, ch)
	r.mu.Unlock()
	return ch
}

// Resolve applies the fallback decision table: non-empty live data always
// wins; otherwise the registered seed set is returned only while the flag
// is enabled; otherwise the result is empty. Seed data is copied so
// callers cannot mutate the registry.
func Resolve[T any](r *Registry, domain string, live []T) []T {
	if len(live) > 0 {
		return live
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.enabled {
		return []T{}
	}

	seed, ok := r.seeds[domain].([]T)
	if !ok {
		return []T{}
	}
	out := make([]T, len(seed))
	copy(out, seed)
	return out
}
