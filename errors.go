package diagrams

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for the diagrams package.
var (
	// ErrIncompatibleBackend is returned when a backend does not have the
	// type an operation expects.
	ErrIncompatibleBackend = errors.New("diagrams: incompatible backend")

	// ErrUnsupportedPrimitive is returned when a value cannot be rendered
	// by the requested backend.
	ErrUnsupportedPrimitive = errors.New("diagrams: unsupported primitive")

	// ErrNonInvertibleTransform is returned when a transformation without
	// an inverse is applied where one is required.
	ErrNonInvertibleTransform = errors.New("diagrams: non-invertible transform")

	// ErrUnknownBackend is returned when no backend is registered under a
	// name.
	ErrUnknownBackend = errors.New("diagrams: unknown backend")

	// ErrUnknownName is returned when a local-point expression refers to a
	// name the diagram does not define.
	ErrUnknownName = errors.New("diagrams: unknown name")
)

// UnsupportedPrimitiveError reports a primitive type with no renderer for
// a backend type.
type UnsupportedPrimitiveError struct {
	Backend   reflect.Type
	Primitive reflect.Type
}

func (e *UnsupportedPrimitiveError) Error() string {
	return fmt.Sprintf("diagrams: no renderer for %v on backend %v", e.Primitive, e.Backend)
}

func (e *UnsupportedPrimitiveError) Unwrap() error { return ErrUnsupportedPrimitive }

// IncompatibleBackendError reports a registered backend whose type does
// not match the requested one.
type IncompatibleBackendError struct {
	Name string
	Want reflect.Type
	Got  reflect.Type
}

func (e *IncompatibleBackendError) Error() string {
	return fmt.Sprintf("diagrams: backend %q is %v, want %v", e.Name, e.Got, e.Want)
}

func (e *IncompatibleBackendError) Unwrap() error { return ErrIncompatibleBackend }

// UnknownNameError reports a name missing from a NameSet.
type UnknownNameError struct {
	Name Name
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("diagrams: unknown name %q", e.Name)
}

func (e *UnknownNameError) Unwrap() error { return ErrUnknownName }
