package datefmt

import (
	"fmt"
	"slices"
	"sync"
	"time"
)

// NamedFunc renders an already normalized instant.
type NamedFunc func(t time.Time) string

// registry maps formatter names to functions and remembers insertion order.
type registry struct {
	mu    sync.RWMutex
	names []string
	funcs map[string]NamedFunc
}

func newRegistry() *registry {
	return &registry{funcs: make(map[string]NamedFunc)}
}

// add stores fn under name. Replacing an existing name keeps its original position.
func (r *registry) add(name string, fn NamedFunc) error {
	if name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidFormatter)
	}
	if fn == nil {
		return fmt.Errorf("%w: function for %q is nil", ErrInvalidFormatter, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.funcs[name]; !exists {
		r.names = append(r.names, name)
	}
	r.funcs[name] = fn
	return nil
}

func (r *registry) lookup(name string) (NamedFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[name]
	return fn, ok
}

func (r *registry) list() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.names)
}
