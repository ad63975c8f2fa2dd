package diagrams

// LExpr is an expression denoting a point in a diagram's local frame.
// It is evaluated against the diagram's named points.
type LExpr[V Vector[V]] interface {
	Eval(names NameSet[V]) (V, error)
}

// LExprFunc adapts a function to the LExpr interface.
type LExprFunc[V Vector[V]] func(NameSet[V]) (V, error)

// Eval calls f(names).
func (f LExprFunc[V]) Eval(names NameSet[V]) (V, error) {
	return f(names)
}

// Origin denotes the current local origin.
func Origin[V Vector[V]]() LExpr[V] {
	return Const(*new(V))
}

// Const denotes a fixed point.
func Const[V Vector[V]](p V) LExpr[V] {
	return LExprFunc[V](func(NameSet[V]) (V, error) { return p, nil })
}

// Named denotes the point bound to name. Evaluation fails with an
// *UnknownNameError when the name is missing.
func Named[V Vector[V]](name Name) LExpr[V] {
	return LExprFunc[V](func(names NameSet[V]) (V, error) {
		p, ok := names.Lookup(name)
		if !ok {
			return p, &UnknownNameError{Name: name}
		}
		return p, nil
	})
}

// Sum denotes the vector sum of es.
func Sum[V Vector[V]](es ...LExpr[V]) LExpr[V] {
	return LExprFunc[V](func(names NameSet[V]) (V, error) {
		var acc V
		for _, e := range es {
			p, err := e.Eval(names)
			if err != nil {
				return acc, err
			}
			acc = acc.Add(p)
		}
		return acc, nil
	})
}

// Diff denotes a − b.
func Diff[V Vector[V]](a, b LExpr[V]) LExpr[V] {
	return Sum(a, Scaled(-1, b))
}

// Scaled denotes e scaled by s.
func Scaled[V Vector[V]](s float64, e LExpr[V]) LExpr[V] {
	return LExprFunc[V](func(names NameSet[V]) (V, error) {
		p, err := e.Eval(names)
		if err != nil {
			return p, err
		}
		return p.Scale(s), nil
	})
}

// Between denotes the point a fraction t of the way from a to b.
func Between[V Vector[V]](a, b LExpr[V], t float64) LExpr[V] {
	return Sum(Scaled(1-t, a), Scaled(t, b))
}
