// Package registry holds the in-memory activity catalog.
package registry

import (
	"context"
	"slices"
	"sync"

	"example.com/registration/internal/domain"
)

// InMemoryRegistry stores activities in process memory for the process
// lifetime. A single RWMutex guards the map, so each operation observes and
// mutates a consistent catalog regardless of how the HTTP server
// parallelizes requests.
type InMemoryRegistry struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
	seed       map[string]domain.Activity
}

// NewInMemoryRegistry constructs a registry populated from seed data. The
// seed is copied, so later mutations of the argument have no effect.
func NewInMemoryRegistry(seed map[string]domain.Activity) *InMemoryRegistry {
	return &InMemoryRegistry{
		activities: cloneCatalog(seed),
		seed:       cloneCatalog(seed),
	}
}

func cloneCatalog(src map[string]domain.Activity) map[string]domain.Activity {
	out := make(map[string]domain.Activity, len(src))
	for name, activity := range src {
		out[name] = activity.Clone()
	}
	return out
}

// Snapshot returns a deep copy of the full catalog. Callers may mutate the
// result without affecting the registry.
func (r *InMemoryRegistry) Snapshot(ctx context.Context) (map[string]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneCatalog(r.activities), nil
}

// SignUp appends email to the named activity's participant list. Lookup is
// exact-match on the name. The duplicate check and the append run under one
// lock acquisition.
func (r *InMemoryRegistry) SignUp(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if slices.Contains(activity.Participants, email) {
		return domain.ErrAlreadyRegistered
	}

	activity.Participants = append(activity.Participants, email)
	r.activities[name] = activity
	return nil
}

// Unregister removes email from the named activity's participant list,
// preserving the order of the remaining entries.
func (r *InMemoryRegistry) Unregister(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	idx := slices.Index(activity.Participants, email)
	if idx < 0 {
		return domain.ErrNotRegistered
	}

	activity.Participants = slices.Delete(activity.Participants, idx, idx+1)
	r.activities[name] = activity
	return nil
}

// ParticipantTotal counts enrollments across all activities.
func (r *InMemoryRegistry) ParticipantTotal() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, activity := range r.activities {
		total += len(activity.Participants)
	}
	return total
}

// Reset restores the catalog to its seed state. Test harness helper, not a
// production operation.
func (r *InMemoryRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.activities = cloneCatalog(r.seed)
}
