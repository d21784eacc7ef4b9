package memstore

import (
	"sync"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/store"
	"github.com/google/uuid"
)

// repository is a generic keyed in-memory container for one entity type.
// It stores values (not pointers) so callers can never mutate stored state
// without going through the repository, and it keeps a separate key slice
// so iteration always follows insertion order.
type repository[T any] struct {
	mu    sync.RWMutex
	items map[uuid.UUID]T
	order []uuid.UUID
}

func newRepository[T any]() *repository[T] {
	return &repository[T]{
		items: make(map[uuid.UUID]T),
	}
}

// add inserts the value under the given ID.
// Returns store.ErrDuplicate if the ID is already present.
func (r *repository[T]) add(id uuid.UUID, v T) error {
	return r.addUnless(id, v, nil, nil)
}

// addUnless inserts the value under the given ID unless an existing entry
// matches the conflict predicate, in which case conflictErr is returned.
// The uniqueness check and the insert happen under one lock, so two
// concurrent creates cannot both pass the check.
func (r *repository[T]) addUnless(id uuid.UUID, v T, conflict func(T) bool, conflictErr error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; ok {
		return store.ErrDuplicate
	}

	if conflict != nil {
		for _, key := range r.order {
			if conflict(r.items[key]) {
				return conflictErr
			}
		}
	}

	r.items[id] = v
	r.order = append(r.order, id)
	return nil
}

// get returns the value stored under the given ID.
func (r *repository[T]) get(id uuid.UUID) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.items[id]
	return v, ok
}

// getBy returns the first value, in insertion order, matching the
// predicate.
func (r *repository[T]) getBy(match func(T) bool) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, key := range r.order {
		if v := r.items[key]; match(v) {
			return v, true
		}
	}

	var zero T
	return zero, false
}

// all returns every stored value in insertion order.
func (r *repository[T]) all() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.items[key])
	}
	return out
}

// filter returns every stored value matching the predicate, in insertion
// order.
func (r *repository[T]) filter(match func(T) bool) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []T
	for _, key := range r.order {
		if v := r.items[key]; match(v) {
			out = append(out, v)
		}
	}
	return out
}

// replace overwrites the value stored under the given ID.
// Returns false if the ID is absent; replace never creates an entry.
func (r *repository[T]) replace(id uuid.UUID, v T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false
	}

	r.items[id] = v
	return true
}

// replaceUnless overwrites the value stored under the given ID unless
// another entry (with a different key) matches the conflict predicate.
// Returns store.ErrNotFound if the ID is absent.
func (r *repository[T]) replaceUnless(id uuid.UUID, v T, conflict func(T) bool, conflictErr error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return store.ErrNotFound
	}

	if conflict != nil {
		for _, key := range r.order {
			if key == id {
				continue
			}
			if conflict(r.items[key]) {
				return conflictErr
			}
		}
	}

	r.items[id] = v
	return nil
}

// remove deletes the entry stored under the given ID.
// Returns false if the ID is absent, so a second delete of the same ID
// reports not-found instead of succeeding.
func (r *repository[T]) remove(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false
	}

	delete(r.items, id)
	for i, key := range r.order {
		if key == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}
