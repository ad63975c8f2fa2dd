package diagrams

// Bounds is the bounding function of a region: the support function
// scaled by the direction's squared length.
//
// For a direction v, At(v) is the smallest s such that every point p of
// the region satisfies p·v <= s·(v·v). In other words s·v is the point
// where the region's supporting hyperplane perpendicular to v crosses
// the ray along v. Only the convex hull of a region is observable.
//
// The zero value is the bounding function of the empty region. It
// evaluates to zero in every direction and is the identity of Combine.
type Bounds[V Vector[V]] struct {
	fn func(V) float64
}

// NewBounds wraps a bounding function. fn must be total.
func NewBounds[V Vector[V]](fn func(V) float64) Bounds[V] {
	return Bounds[V]{fn: fn}
}

// PointBounds returns the bounding function of the convex hull of pts.
// With no points it returns the empty bounding function.
func PointBounds[V Vector[V]](pts ...V) Bounds[V] {
	if len(pts) == 0 {
		return Bounds[V]{}
	}
	pts = append([]V(nil), pts...)
	return NewBounds(func(v V) float64 {
		vv := v.Dot(v)
		if vv == 0 {
			return 0
		}
		best := pts[0].Dot(v)
		for _, p := range pts[1:] {
			best = max(best, p.Dot(v))
		}
		return best / vv
	})
}

// IsEmpty reports whether b is the empty bounding function.
func (b Bounds[V]) IsEmpty() bool {
	return b.fn == nil
}

// At evaluates the bounding function in direction v.
func (b Bounds[V]) At(v V) float64 {
	if b.fn == nil {
		return 0
	}
	return b.fn(v)
}

// Boundary returns the point where the boundary crosses the ray along v.
func (b Bounds[V]) Boundary(v V) V {
	return v.Scale(b.At(v))
}

// Extent returns the width of the region along v, in units of v.
func (b Bounds[V]) Extent(v V) float64 {
	return b.At(v) + b.At(v.Neg())
}

// Combine returns the pointwise maximum of two bounding functions: the
// bounds of the union of both regions.
func (b Bounds[V]) Combine(o Bounds[V]) Bounds[V] {
	switch {
	case b.fn == nil:
		return o
	case o.fn == nil:
		return b
	}
	f, g := b.fn, o.fn
	return NewBounds(func(v V) float64 {
		return max(f(v), g(v))
	})
}

// CombineBounds folds Combine over bs.
func CombineBounds[V Vector[V]](bs ...Bounds[V]) Bounds[V] {
	var out Bounds[V]
	for _, b := range bs {
		out = out.Combine(b)
	}
	return out
}

// Rebase measures the region relative to the new origin u:
//
//	f'(v) = f(v) − (u·v)/(v·v)
//
// At the zero direction the function is left unchanged.
func (b Bounds[V]) Rebase(u V) Bounds[V] {
	if b.fn == nil {
		return b
	}
	f := b.fn
	return NewBounds(func(v V) float64 {
		vv := v.Dot(v)
		if vv == 0 {
			return f(v)
		}
		return f(v) - u.Dot(v)/vv
	})
}

// Translate returns the bounds of the region moved by t.
func (b Bounds[V]) Translate(t V) Bounds[V] {
	return b.Rebase(t.Neg())
}

// Scale returns the bounds of the region scaled by s about the origin.
// Negative s mirrors the region.
func (b Bounds[V]) Scale(s float64) Bounds[V] {
	if b.fn == nil {
		return b
	}
	f := b.fn
	if s < 0 {
		return NewBounds(func(v V) float64 { return -s * f(v.Neg()) })
	}
	return NewBounds(func(v V) float64 { return s * f(v) })
}

// Transform returns the bounds of the region mapped through t.
//
// For x -> A·x + b the supporting value in direction v is
// max p·(Aᵀv) + b·v, so
//
//	f_T(v) = (f(Aᵀv)·|Aᵀv|² + b·v)/(v·v)
//
// Transform requires t to carry its inverse and returns
// ErrNonInvertibleTransform otherwise.
func (b Bounds[V]) Transform(t Transformation[V]) (Bounds[V], error) {
	if !t.Invertible() {
		return Bounds[V]{}, ErrNonInvertibleTransform
	}
	if b.fn == nil {
		return b, nil
	}
	f := b.fn
	return NewBounds(func(v V) float64 {
		vv := v.Dot(v)
		if vv == 0 {
			return f(v)
		}
		w := t.ApplyTranspose(v)
		return (f(w)*w.Dot(w) + t.TranslationPart().Dot(v)) / vv
	}), nil
}
