package registry

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/arthur-debert/gdot/pkg/errors"
)

// Registry maps names to items. It is safe for concurrent use.
type Registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

func New[T any]() *Registry[T] {
	return &Registry[T]{items: make(map[string]T)}
}

// Register adds item under name. Names are unique and non-empty.
func (r *Registry[T]) Register(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.items[name]; taken {
		return errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", name)
	}
	r.items[name] = item
	return nil
}

// Get returns the item for name, or ErrNotFound.
func (r *Registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	item, ok := r.items[name]
	r.mu.RUnlock()
	if !ok {
		return item, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name)
	}
	return item, nil
}

// List returns the registered names, sorted.
func (r *Registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.items))
}

// MustRegister is Register for static tables, where a failure is a bug.
func MustRegister[T any](reg *Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}
