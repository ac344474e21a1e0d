package schema

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// ErrSchemaConflict is returned when a schema name is redeclared with a
// different definition. Redeclaring an identical definition is a no-op.
var ErrSchemaConflict = errors.New("schema already registered with a different definition")

// Registry is a process-wide cache of declared schemas keyed by name. The
// resolver introspects registered schemas without re-deriving their field
// lists. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*Schema
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*Schema)}
}

// Register declares s under its name. Registering the same definition again
// is a no-op; a conflicting definition fails with ErrSchemaConflict.
func (r *Registry) Register(s *Schema) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.schemas[s.name]
	if !ok {
		r.schemas[s.name] = s
		return nil
	}
	if equal(existing, s) {
		return nil
	}
	return fmt.Errorf("schema %q: %w", s.name, ErrSchemaConflict)
}

// Lookup returns the schema registered under name, if any.
func (r *Registry) Lookup(name string) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[name]
	return s, ok
}

// Names returns the registered schema names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func equal(a, b *Schema) bool {
	return a.name == b.name &&
		reflect.DeepEqual(a.opts, b.opts) &&
		reflect.DeepEqual(a.fields, b.fields)
}

// defaultRegistry backs the package-level Register/Lookup functions. It is
// initialized once for the process and only ever appended to.
var defaultRegistry = NewRegistry()

// Register declares s in the process-wide registry.
func Register(s *Schema) error { return defaultRegistry.Register(s) }

// Lookup finds a schema in the process-wide registry.
func Lookup(name string) (*Schema, bool) { return defaultRegistry.Lookup(name) }
