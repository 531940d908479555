package registry

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/arthur-debert/outliner/pkg/errors"
)

// Registry maps identifiers to items. It is safe for concurrent use.
type Registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

func New[T any]() *Registry[T] {
	return &Registry[T]{items: make(map[string]T)}
}

// Register fails with ALREADY_EXISTS rather than replacing an item.
func (r *Registry[T]) Register(id string, item T) error {
	if id == "" {
		return errors.New(errors.ErrInvalidInput, "registry identifier cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.items[id]; taken {
		return errors.Newf(errors.ErrAlreadyExists, "%q is already registered", id).
			WithDetail("id", id)
	}
	r.items[id] = item
	return nil
}

// MustRegister is Register for tables built at init time, where a clash is
// a programming error.
func (r *Registry[T]) MustRegister(id string, item T) {
	if err := r.Register(id, item); err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
}

func (r *Registry[T]) Get(id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return item, errors.Newf(errors.ErrNotFound, "%q is not registered", id).
			WithDetail("id", id)
	}
	return item, nil
}

func (r *Registry[T]) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[id]
	return ok
}

func (r *Registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// List returns the identifiers in lexical order.
func (r *Registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.items))
}

// Values returns the items ordered by identifier.
func (r *Registry[T]) Values() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := slices.Sorted(maps.Keys(r.items))
	values := make([]T, len(ids))
	for i, id := range ids {
		values[i] = r.items[id]
	}
	return values
}
