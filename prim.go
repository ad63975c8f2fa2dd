package diagrams

import "reflect"

// Transformable is implemented by geometric values that can be mapped
// through a Transformation. Transform must return a new value and leave
// the receiver unchanged.
type Transformable[T any, V Vector[V]] interface {
	Transform(t Transformation[V]) T
}

// Renderable is implemented by geometric values that know how to render
// themselves on backend B, producing the backend's render context R.
type Renderable[T any, B any, V Vector[V], R any] interface {
	Transformable[T, V]
	Render(b B) R
}

// primitive is the type-erased view of a wrapped value.
type primitive[B any, V Vector[V], R any] interface {
	transform(t Transformation[V]) primitive[B, V, R]
	render(b B) R
	value() any
}

// methodPrim wraps a value that renders itself.
type methodPrim[B any, V Vector[V], R any, T Renderable[T, B, V, R]] struct {
	v T
}

func (p methodPrim[B, V, R, T]) transform(t Transformation[V]) primitive[B, V, R] {
	return methodPrim[B, V, R, T]{v: p.v.Transform(t)}
}

func (p methodPrim[B, V, R, T]) render(b B) R { return p.v.Render(b) }
func (p methodPrim[B, V, R, T]) value() any   { return own(p.v) }

// funcPrim wraps a value rendered by a separate RenderFunc.
type funcPrim[B any, V Vector[V], R any, T Transformable[T, V]] struct {
	v  T
	fn RenderFunc[B, T, R]
}

func (p funcPrim[B, V, R, T]) transform(t Transformation[V]) primitive[B, V, R] {
	return funcPrim[B, V, R, T]{v: p.v.Transform(t), fn: p.fn}
}

func (p funcPrim[B, V, R, T]) render(b B) R { return p.fn(b, p.v) }
func (p funcPrim[B, V, R, T]) value() any   { return own(p.v) }

// Cloner is implemented by primitive values that hold references, such
// as slices, which a Prim must not share with its caller.
type Cloner[T any] interface {
	Clone() T
}

// own returns a copy of v that shares no references with it.
func own[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

// Prim holds one geometric value of any type that backend B can render.
// The concrete type is erased; only the ability to transform and render
// is retained. A Prim is immutable: values implementing Cloner are
// copied when wrapped and again when returned by Value.
//
// The zero Prim holds nothing and is rejected by NewDiagram.
type Prim[B any, V Vector[V], R any] struct {
	p primitive[B, V, R]
}

// Wrap lifts a value that renders itself into a Prim. The Renderable
// constraint is checked at compile time:
//
//	p := diagrams.Wrap[*Backend, diagrams.V2, Element](myShape)
func Wrap[B any, V Vector[V], R any, T Renderable[T, B, V, R]](v T) Prim[B, V, R] {
	return Prim[B, V, R]{p: methodPrim[B, V, R, T]{v: own(v)}}
}

// WrapFunc lifts a value into a Prim rendered by fn.
// fn must not be nil.
func WrapFunc[B any, V Vector[V], R any, T Transformable[T, V]](v T, fn RenderFunc[B, T, R]) Prim[B, V, R] {
	if fn == nil {
		panic("diagrams: WrapFunc with nil render function")
	}
	return Prim[B, V, R]{p: funcPrim[B, V, R, T]{v: own(v), fn: fn}}
}

// Lift wraps a value for backend B, checking at run time that the pair is
// renderable. A value with its own Render(B) R method is used directly;
// otherwise the renderer registered with RegisterRenderer is used.
// Lift returns an *UnsupportedPrimitiveError if neither exists.
func Lift[B any, V Vector[V], R any, T Transformable[T, V]](v T) (Prim[B, V, R], error) {
	if _, ok := any(v).(interface{ Render(B) R }); ok {
		return WrapFunc[B, V, R](v, renderSelf[B, T, R]), nil
	}
	fn, ok := lookupRenderer[B, T, R]()
	if !ok {
		err := &UnsupportedPrimitiveError{
			Backend:   reflect.TypeFor[B](),
			Primitive: reflect.TypeFor[T](),
		}
		Logger().Debug("diagrams: lift failed",
			"backend", err.Backend, "primitive", err.Primitive)
		return Prim[B, V, R]{}, err
	}
	return WrapFunc[B, V, R](v, fn), nil
}

// renderSelf renders a value through its own Render method. It receives
// the current value, so it stays correct after transforms.
func renderSelf[B, T, R any](b B, v T) R {
	return any(v).(interface{ Render(B) R }).Render(b)
}

// IsValid reports whether p holds a value.
func (p Prim[B, V, R]) IsValid() bool {
	return p.p != nil
}

// Transform returns a new Prim holding the transformed value.
// The original value is not modified.
func (p Prim[B, V, R]) Transform(t Transformation[V]) Prim[B, V, R] {
	if p.p == nil {
		return p
	}
	return Prim[B, V, R]{p: p.p.transform(t)}
}

// Render renders the held value on b. The zero Prim renders as the
// zero R.
func (p Prim[B, V, R]) Render(b B) R {
	if p.p == nil {
		var zero R
		return zero
	}
	return p.p.render(b)
}

// Value returns the held value.
func (p Prim[B, V, R]) Value() any {
	if p.p == nil {
		return nil
	}
	return p.p.value()
}
