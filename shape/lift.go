package shape

import (
	"fmt"

	"github.com/gogpu/diagrams"
)

// Shape is satisfied by every shape in this package and by any other
// plane primitive that reports its own bounds.
type Shape[T any] interface {
	diagrams.Transformable[T, diagrams.V2]
	Bounds() diagrams.Bounds[diagrams.V2]
}

// Lift returns a diagram holding s as its only primitive, bounded by
// s.Bounds(). It fails with an error wrapping
// diagrams.ErrUnsupportedPrimitive if backend B has no renderer for T.
func Lift[B any, R any, T Shape[T]](s T) (diagrams.Diagram[B, diagrams.V2, R], error) {
	p, err := diagrams.Lift[B, diagrams.V2, R](s)
	if err != nil {
		return diagrams.Diagram[B, diagrams.V2, R]{}, fmt.Errorf("shape: %w", err)
	}
	return diagrams.NewDiagram([]diagrams.Prim[B, diagrams.V2, R]{p}, s.Bounds(), diagrams.NameSet[diagrams.V2]{})
}
