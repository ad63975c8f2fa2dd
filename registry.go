package diagrams

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// RenderFunc renders a value of type T on backend B.
type RenderFunc[B any, T any, R any] func(b B, v T) R

// BackendFactory is a function that creates a new backend instance.
// Factories are registered via RegisterBackend and called by NewBackend.
type BackendFactory func() any

type rendererKey struct {
	backend reflect.Type
	prim    reflect.Type
	result  reflect.Type
}

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	renderers  = make(map[rendererKey]any)
	backends   = make(map[string]BackendFactory)
)

func keyFor[B, T, R any]() rendererKey {
	return rendererKey{
		backend: reflect.TypeFor[B](),
		prim:    reflect.TypeFor[T](),
		result:  reflect.TypeFor[R](),
	}
}

// RegisterRenderer declares that backend B can render values of type T.
// This lets a backend package support primitive types it does not own,
// and lets primitive packages stay ignorant of backends. It is typically
// called from init() in backend packages:
//
//	func init() {
//	    diagrams.RegisterRenderer[*Backend, Element](renderEllipse)
//	}
//
// RegisterRenderer panics if fn is nil or if a renderer for the same
// backend, primitive and result types is already registered.
func RegisterRenderer[B any, R any, T any](fn RenderFunc[B, T, R]) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if fn == nil {
		panic("diagrams: RegisterRenderer function is nil")
	}
	key := keyFor[B, T, R]()
	if _, dup := renderers[key]; dup {
		panic(fmt.Sprintf("diagrams: RegisterRenderer called twice for %v on %v", key.prim, key.backend))
	}
	renderers[key] = fn
	Logger().Debug("diagrams: renderer registered", "backend", key.backend, "primitive", key.prim)
}

// UnregisterRenderer removes a renderer from the registry.
// This is primarily useful for testing. If no renderer is registered,
// this is a no-op.
func UnregisterRenderer[B any, R any, T any]() {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(renderers, keyFor[B, T, R]())
}

// HasRenderer reports whether a renderer for T on B is registered.
func HasRenderer[B any, R any, T any]() bool {
	_, ok := lookupRenderer[B, T, R]()
	return ok
}

func lookupRenderer[B, T, R any]() (RenderFunc[B, T, R], bool) {
	registryMu.RLock()
	fn, ok := renderers[keyFor[B, T, R]()]
	registryMu.RUnlock()
	if !ok {
		return nil, false
	}
	return fn.(RenderFunc[B, T, R]), true
}

// RegisterBackend registers a backend factory with the given name,
// following the database/sql driver pattern:
//
//	func init() {
//	    diagrams.RegisterBackend("svg", func() any { return New() })
//	}
//
// RegisterBackend panics if factory is nil or if a backend with the same
// name is already registered.
func RegisterBackend(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("diagrams: RegisterBackend factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("diagrams: RegisterBackend called twice for " + name)
	}
	backends[name] = factory
	Logger().Debug("diagrams: backend registered", "name", name)
}

// UnregisterBackend removes a backend from the registry.
// If the backend is not registered, this is a no-op.
func UnregisterBackend(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates a backend instance by name and checks that it has
// type B:
//
//	import _ "github.com/gogpu/diagrams/backend/svg"
//
//	b, err := diagrams.NewBackend[*svg.Backend]("svg")
//
// Returns an error wrapping ErrUnknownBackend if the name is not
// registered, or an *IncompatibleBackendError if the instance is not a B.
func NewBackend[B any](name string) (B, error) {
	var zero B

	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return zero, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	inst := factory()
	b, ok := inst.(B)
	if !ok {
		return zero, &IncompatibleBackendError{
			Name: name,
			Want: reflect.TypeFor[B](),
			Got:  reflect.TypeOf(inst),
		}
	}
	return b, nil
}

// Backends returns a sorted list of registered backend names.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
