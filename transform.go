package diagrams

// LinearMap is a linear function on a vector space.
type LinearMap[V any] func(V) V

// Linear describes the linear part of a Transformation.
//
// A Linear with every map nil is the identity. Otherwise Forward is
// required, and a transformation can only be applied to bounding
// functions or inverted when Transpose, Inverse and InverseTranspose are
// all given.
type Linear[V any] struct {
	Forward          LinearMap[V]
	Transpose        LinearMap[V]
	Inverse          LinearMap[V]
	InverseTranspose LinearMap[V]
}

// Transformation is an affine transformation x -> A·x + b of a vector
// space. It carries the transpose of A (needed to transform bounding
// functions) and, when known, the inverse of A with its transpose.
//
// The zero value is the identity transformation.
type Transformation[V Vector[V]] struct {
	linear      Linear[V]
	translation V
	singular    bool
}

// Identity returns the identity transformation.
func Identity[V Vector[V]]() Transformation[V] {
	return Transformation[V]{}
}

// Translation returns the transformation that moves every point by v.
func Translation[V Vector[V]](v V) Transformation[V] {
	return Transformation[V]{translation: v}
}

// Scaling returns the uniform scaling by s about the origin.
// Scaling by zero is not invertible.
func Scaling[V Vector[V]](s float64) Transformation[V] {
	scale := func(v V) V { return v.Scale(s) }
	l := Linear[V]{Forward: scale, Transpose: scale}
	if s != 0 {
		inv := func(v V) V { return v.Scale(1 / s) }
		l.Inverse = inv
		l.InverseTranspose = inv
	}
	return NewTransformation(l, *new(V))
}

// NewTransformation builds x -> l.Forward(x) + translation. A nil
// Forward is the identity. When Forward is set but any of the other maps
// is missing, the result is not invertible: Inverse and Bounds.Transform
// fail with ErrNonInvertibleTransform.
func NewTransformation[V Vector[V]](l Linear[V], translation V) Transformation[V] {
	complete := l.Transpose != nil && l.Inverse != nil && l.InverseTranspose != nil
	if l.Forward == nil {
		complete = l.Transpose == nil && l.Inverse == nil && l.InverseTranspose == nil
	}
	return Transformation[V]{
		linear:      l,
		translation: translation,
		singular:    !complete,
	}
}

func apply[V any](m LinearMap[V], v V) V {
	if m == nil {
		return v
	}
	return m(v)
}

// Apply transforms a point: linear part followed by translation.
func (t Transformation[V]) Apply(p V) V {
	return apply(t.linear.Forward, p).Add(t.translation)
}

// ApplyVector transforms a displacement. Translation does not act on
// vectors.
func (t Transformation[V]) ApplyVector(v V) V {
	return apply(t.linear.Forward, v)
}

// ApplyTranspose applies the transpose of the linear part.
func (t Transformation[V]) ApplyTranspose(v V) V {
	return apply(t.linear.Transpose, v)
}

// TranslationPart returns b in x -> A·x + b.
func (t Transformation[V]) TranslationPart() V {
	return t.translation
}

// Invertible reports whether t carries its inverse.
func (t Transformation[V]) Invertible() bool {
	return !t.singular
}

// Inverse returns the inverse transformation.
// Returns ErrNonInvertibleTransform if t does not carry an inverse.
func (t Transformation[V]) Inverse() (Transformation[V], error) {
	if t.singular {
		return Transformation[V]{}, ErrNonInvertibleTransform
	}
	l := Linear[V]{
		Forward:          t.linear.Inverse,
		Transpose:        t.linear.InverseTranspose,
		Inverse:          t.linear.Forward,
		InverseTranspose: t.linear.Transpose,
	}
	// x = A⁻¹·(y − b)
	return Transformation[V]{
		linear:      l,
		translation: apply(l.Forward, t.translation).Neg(),
	}, nil
}

// Compose returns the transformation that applies u first and then t.
func (t Transformation[V]) Compose(u Transformation[V]) Transformation[V] {
	l := Linear[V]{
		Forward:   chain(t.linear.Forward, u.linear.Forward),
		Transpose: chain(u.linear.Transpose, t.linear.Transpose),
	}
	if !t.singular && !u.singular {
		l.Inverse = chain(u.linear.Inverse, t.linear.Inverse)
		l.InverseTranspose = chain(t.linear.InverseTranspose, u.linear.InverseTranspose)
	}
	return Transformation[V]{
		linear:      l,
		translation: t.ApplyVector(u.translation).Add(t.translation),
		singular:    t.singular || u.singular,
	}
}

// chain returns outer∘inner, keeping nil when both sides are the identity.
func chain[V any](outer, inner LinearMap[V]) LinearMap[V] {
	switch {
	case outer == nil:
		return inner
	case inner == nil:
		return outer
	}
	return func(v V) V { return outer(inner(v)) }
}
