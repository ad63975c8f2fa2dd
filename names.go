package diagrams

import (
	"iter"
	"maps"
	"slices"
)

// Name labels a point in a diagram's local frame.
type Name string

// NameSet maps names to points of a vector space. It is immutable: every
// operation returns a new set and leaves the receiver untouched.
//
// The zero value is an empty set.
type NameSet[V Vector[V]] struct {
	m map[Name]V
}

// NewNameSet returns a set holding a copy of points.
func NewNameSet[V Vector[V]](points map[Name]V) NameSet[V] {
	if len(points) == 0 {
		return NameSet[V]{}
	}
	return NameSet[V]{m: maps.Clone(points)}
}

// Len returns the number of names.
func (n NameSet[V]) Len() int {
	return len(n.m)
}

// Lookup returns the point stored under name.
func (n NameSet[V]) Lookup(name Name) (V, bool) {
	p, ok := n.m[name]
	return p, ok
}

// Names returns the names in sorted order.
func (n NameSet[V]) Names() []Name {
	return slices.Sorted(maps.Keys(n.m))
}

// All iterates over name/point pairs in sorted name order.
func (n NameSet[V]) All() iter.Seq2[Name, V] {
	return func(yield func(Name, V) bool) {
		for _, name := range n.Names() {
			if !yield(name, n.m[name]) {
				return
			}
		}
	}
}

// With returns a copy of the set with name bound to p.
func (n NameSet[V]) With(name Name, p V) NameSet[V] {
	m := make(map[Name]V, len(n.m)+1)
	maps.Copy(m, n.m)
	m[name] = p
	return NameSet[V]{m: m}
}

// Without returns a copy of the set with name removed.
func (n NameSet[V]) Without(name Name) NameSet[V] {
	if _, ok := n.m[name]; !ok {
		return n
	}
	m := maps.Clone(n.m)
	delete(m, name)
	return NameSet[V]{m: m}
}

// Map applies fn to every point.
func (n NameSet[V]) Map(fn func(V) V) NameSet[V] {
	if len(n.m) == 0 {
		return n
	}
	m := make(map[Name]V, len(n.m))
	for name, p := range n.m {
		m[name] = fn(p)
	}
	return NameSet[V]{m: m}
}

// Union merges two sets. When both define a name, o's point wins.
func (n NameSet[V]) Union(o NameSet[V]) NameSet[V] {
	switch {
	case len(o.m) == 0:
		return n
	case len(n.m) == 0:
		return o
	}
	m := make(map[Name]V, len(n.m)+len(o.m))
	maps.Copy(m, n.m)
	maps.Copy(m, o.m)
	return NameSet[V]{m: m}
}
