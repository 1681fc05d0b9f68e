// Package registry implements the string-keyed strategy registries shared
// by the notification and reporting pipelines. A registry is populated at
// startup and read-only afterwards; strategies are constructed fresh per
// call, so constructors must be cheap and side-effect free.
package registry

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknown marks a lookup for a key no constructor was registered under.
var ErrUnknown = errors.New("unknown strategy")

// Builder constructs a strategy instance. Builders take no arguments;
// strategies needing configuration are registered as closures capturing it.
type Builder[S any] func() S

// Registry maps keys to strategy builders for one strategy family.
type Registry[S any] struct {
	name     string
	builders map[string]Builder[S]
}

// New creates an empty registry. The name appears in lookup errors.
func New[S any](name string) *Registry[S] {
	return &Registry[S]{
		name:     name,
		builders: make(map[string]Builder[S]),
	}
}

// Register adds a builder under key. Registration happens once at startup;
// an empty key, nil builder, or duplicate key is a programming error and
// panics.
func (r *Registry[S]) Register(key string, builder Builder[S]) {
	if key == "" {
		panic(fmt.Sprintf("registry %s: empty key", r.name))
	}
	if builder == nil {
		panic(fmt.Sprintf("registry %s: nil builder for %q", r.name, key))
	}
	if _, exists := r.builders[key]; exists {
		panic(fmt.Sprintf("registry %s: duplicate key %q", r.name, key))
	}
	r.builders[key] = builder
}

// Create builds a fresh strategy for key.
func (r *Registry[S]) Create(key string) (S, error) {
	builder, ok := r.builders[key]
	if !ok {
		var zero S
		return zero, fmt.Errorf("%w: %s registry has no %q", ErrUnknown, r.name, key)
	}
	return builder(), nil
}

// Keys returns the registered keys in sorted order.
func (r *Registry[S]) Keys() []string {
	keys := make([]string, 0, len(r.builders))
	for key := range r.builders {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
