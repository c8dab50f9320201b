// Package coerce converts worksheet cells into typed Go values.
//
// Handlers are kept in a Registry keyed by the declared Go type of a record
// field. The Default registry is shared by every conversion in the process;
// register additional handlers during start-up, before conversions run.
package coerce

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"
)

var (
	// ErrUnsupportedType indicates a declared type with no registered handler.
	ErrUnsupportedType = errors.New("unsupported field type")

	// ErrNotCoercible indicates a cell whose storage kind cannot be read as the requested type.
	ErrNotCoercible = errors.New("cell value cannot be coerced")
)

// Cell gives handlers typed access to the columns of the current row.
// Accessors fail with an error wrapping ErrNotCoercible when the stored kind
// cannot be interpreted as requested.
type Cell interface {
	String(col int) (string, error)
	Float(col int) (float64, error)
	Int(col int) (int, error)
	DateTime(col int) (time.Time, error)
	TimeSpan(col int) (time.Duration, error)
}

// Handler reads column col of the current row and returns a value of the
// registered type.
type Handler func(c Cell, col int) (any, error)

type entry struct {
	name   string
	handle Handler
}

// Registry maps declared types to handlers.
type Registry struct {
	mu     sync.RWMutex
	byType map[reflect.Type]entry
	byName map[string]reflect.Type
}

// NewRegistry returns a registry holding the built-in handlers.
func NewRegistry() *Registry {
	r := &Registry{
		byType: make(map[reflect.Type]entry),
		byName: make(map[string]reflect.Type),
	}
	registerBuiltins(r)
	return r
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a handler for t to the default registry.
func Register(t reflect.Type, name string, h Handler) {
	defaultRegistry.Register(t, name, h)
}

// Register adds or replaces the handler for t. The name identifies the type
// in schema files and in validation messages.
// Panics if t is a pointer type or h is nil.
func (r *Registry) Register(t reflect.Type, name string, h Handler) {
	if t == nil || t.Kind() == reflect.Pointer {
		panic(fmt.Sprintf("coerce: cannot register handler for %v", t))
	}
	if h == nil {
		panic(fmt.Sprintf("coerce: nil handler for %v", t))
	}
	if name == "" {
		name = t.String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.byType[t]; ok && old.name != name {
		delete(r.byName, old.name)
	}
	r.byType[t] = entry{name: name, handle: h}
	r.byName[name] = t
}

// RegisterType adds a handler for T using a typed conversion function.
func RegisterType[T any](r *Registry, name string, fn func(c Cell, col int) (T, error)) {
	r.Register(reflect.TypeFor[T](), name, func(c Cell, col int) (any, error) {
		v, err := fn(c, col)
		if err != nil {
			return nil, err
		}
		return v, nil
	})
}

// Supports reports whether a handler is registered for t or, when t is a
// pointer, for its element type.
func (r *Registry) Supports(t reflect.Type) bool {
	_, ok := r.lookup(t)
	return ok
}

// Name returns the registered name of t.
func (r *Registry) Name(t reflect.Type) string {
	if e, ok := r.lookup(t); ok {
		return e.name
	}
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// TypeOf returns the type registered under name.
func (r *Registry) TypeOf(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byName[name]
	return t, ok
}

// Names returns all registered type names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Coerce converts column col of the current row to t.
// Returns an error wrapping ErrUnsupportedType if no handler exists for t.
func (r *Registry) Coerce(c Cell, col int, t reflect.Type) (any, error) {
	e, ok := r.lookup(t)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, t)
	}
	return e.handle(c, col)
}

func (r *Registry) lookup(t reflect.Type) (entry, bool) {
	if t == nil {
		return entry{}, false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byType[t]
	return e, ok
}
