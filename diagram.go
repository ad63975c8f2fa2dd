package diagrams

import "slices"

// Diagram is the compositional unit: an ordered sequence of primitives
// for backend B, the bounding function of their union, and a set of named
// points, all measured from an implicit local origin.
//
// Diagrams are immutable. Every operation returns a new Diagram and
// never modifies its operands, so diagrams can be shared freely and
// combined from multiple goroutines.
//
// The zero value is the empty diagram.
type Diagram[B any, V Vector[V], R any] struct {
	prims  []Prim[B, V, R]
	bounds Bounds[V]
	names  NameSet[V]
}

// NewDiagram builds a diagram from its parts. The backend and vector
// space of all three parts are fixed by the type parameters; NewDiagram
// only rejects zero Prims, with ErrUnsupportedPrimitive.
func NewDiagram[B any, V Vector[V], R any](prims []Prim[B, V, R], bounds Bounds[V], names NameSet[V]) (Diagram[B, V, R], error) {
	for _, p := range prims {
		if !p.IsValid() {
			return Diagram[B, V, R]{}, ErrUnsupportedPrimitive
		}
	}
	return Diagram[B, V, R]{
		prims:  slices.Clip(slices.Clone(prims)),
		bounds: bounds,
		names:  names,
	}, nil
}

// Empty returns the empty diagram, the identity of Atop.
func Empty[B any, V Vector[V], R any]() Diagram[B, V, R] {
	return Diagram[B, V, R]{}
}

// Strut returns an invisible diagram spanning the segment from −v/2 to
// v/2. It has no primitives and only takes up space.
func Strut[B any, V Vector[V], R any](v V) Diagram[B, V, R] {
	half := v.Scale(0.5)
	return Diagram[B, V, R]{bounds: PointBounds(half.Neg(), half)}
}

// Prims returns a copy of the primitive sequence.
func (d Diagram[B, V, R]) Prims() []Prim[B, V, R] {
	return slices.Clone(d.prims)
}

// Len returns the number of primitives.
func (d Diagram[B, V, R]) Len() int {
	return len(d.prims)
}

// Bounds returns the bounding function.
func (d Diagram[B, V, R]) Bounds() Bounds[V] {
	return d.bounds
}

// Names returns the named points.
func (d Diagram[B, V, R]) Names() NameSet[V] {
	return d.names
}

// WithName returns a copy of d with name bound to the local point p.
func (d Diagram[B, V, R]) WithName(name Name, p V) Diagram[B, V, R] {
	d.names = d.names.With(name, p)
	return d
}

// Phantom returns a diagram with d's bounds and names but no primitives.
func (d Diagram[B, V, R]) Phantom() Diagram[B, V, R] {
	d.prims = nil
	return d
}

// Pad scales d's bounding function by s about the local origin without
// touching its primitives.
func (d Diagram[B, V, R]) Pad(s float64) Diagram[B, V, R] {
	d.bounds = d.bounds.Scale(s)
	return d
}

// Atop places d on top of o. The result lists d's primitives before o's,
// its bounding function is the union of both, and its names are the
// union of both with o's points winning on collision.
func (d Diagram[B, V, R]) Atop(o Diagram[B, V, R]) Diagram[B, V, R] {
	prims := make([]Prim[B, V, R], 0, len(d.prims)+len(o.prims))
	prims = append(prims, d.prims...)
	prims = append(prims, o.prims...)
	if len(prims) == 0 {
		prims = nil
	}
	return Diagram[B, V, R]{
		prims:  prims,
		bounds: d.bounds.Combine(o.bounds),
		names:  d.names.Union(o.names),
	}
}

// Mconcat folds Atop over ds. The first diagram ends up on top.
func Mconcat[B any, V Vector[V], R any](ds ...Diagram[B, V, R]) Diagram[B, V, R] {
	var out Diagram[B, V, R]
	for _, d := range ds {
		out = out.Atop(d)
	}
	return out
}

// Translate moves d by v.
func (d Diagram[B, V, R]) Translate(v V) Diagram[B, V, R] {
	t := Translation(v)
	return Diagram[B, V, R]{
		prims:  transformPrims(d.prims, t),
		bounds: d.bounds.Translate(v),
		names:  d.names.Map(t.Apply),
	}
}

// Beside places o next to d in direction v so that the two just touch:
// o is moved by v·(d.At(v) + o.At(−v)), then d is placed atop it.
func (d Diagram[B, V, R]) Beside(v V, o Diagram[B, V, R]) Diagram[B, V, R] {
	s := d.bounds.At(v) + o.bounds.At(v.Neg())
	return d.Atop(o.Translate(v.Scale(s)))
}

// Cat lays ds out in a row along v, each one beside the previous.
func Cat[B any, V Vector[V], R any](v V, ds ...Diagram[B, V, R]) Diagram[B, V, R] {
	if len(ds) == 0 {
		return Diagram[B, V, R]{}
	}
	out := ds[0]
	for _, d := range ds[1:] {
		out = out.Beside(v, d)
	}
	return out
}

// Rebase moves the local origin to the point denoted by e. The offset u
// is obtained by evaluating e against d's names; primitives are moved by
// −u, the bounding function is rebased at u and u is subtracted from
// every named point. The geometry does not change shape, only the frame.
func (d Diagram[B, V, R]) Rebase(e LExpr[V]) (Diagram[B, V, R], error) {
	u, err := e.Eval(d.names)
	if err != nil {
		return Diagram[B, V, R]{}, err
	}
	return d.rebaseAt(u), nil
}

func (d Diagram[B, V, R]) rebaseAt(u V) Diagram[B, V, R] {
	back := u.Neg()
	return Diagram[B, V, R]{
		prims:  transformPrims(d.prims, Translation(back)),
		bounds: d.bounds.Rebase(u),
		names:  d.names.Map(func(p V) V { return p.Add(back) }),
	}
}

// AlignTo moves the local origin to the boundary of d along v.
func (d Diagram[B, V, R]) AlignTo(v V) Diagram[B, V, R] {
	return d.rebaseAt(d.bounds.Boundary(v))
}

// CenterOn moves the local origin to the midpoint of d's extent along v.
func (d Diagram[B, V, R]) CenterOn(v V) Diagram[B, V, R] {
	mid := (d.bounds.At(v) - d.bounds.At(v.Neg())) / 2
	return d.rebaseAt(v.Scale(mid))
}

// Transform maps every primitive, the bounding function and every named
// point through t. It fails with ErrNonInvertibleTransform if t does not
// carry its inverse, in which case nothing is transformed.
func (d Diagram[B, V, R]) Transform(t Transformation[V]) (Diagram[B, V, R], error) {
	bounds, err := d.bounds.Transform(t)
	if err != nil {
		return Diagram[B, V, R]{}, err
	}
	return Diagram[B, V, R]{
		prims:  transformPrims(d.prims, t),
		bounds: bounds,
		names:  d.names.Map(t.Apply),
	}, nil
}

// Render renders every primitive on b exactly once, in sequence order,
// and returns the render contexts in the same order. Backends call this
// from RenderDiagram.
func (d Diagram[B, V, R]) Render(b B) []R {
	out := make([]R, len(d.prims))
	for i, p := range d.prims {
		out[i] = p.Render(b)
	}
	return out
}

func transformPrims[B any, V Vector[V], R any](prims []Prim[B, V, R], t Transformation[V]) []Prim[B, V, R] {
	if len(prims) == 0 {
		return nil
	}
	out := make([]Prim[B, V, R], len(prims))
	for i, p := range prims {
		out[i] = p.Transform(t)
	}
	return out
}
