package diagrams

// Backend is implemented by rendering targets. B is the backend's own
// type, V its vector space, R the render context its primitives produce,
// O its option type and Out the type of finished output.
//
// RenderDiagram is the sole entry point turning a Diagram into output.
// Implementations obtain the per-primitive render contexts from
// Diagram.Render, which calls each primitive exactly once in sequence
// order, and paint them so that earlier primitives end up on top.
//
// A backend value is created once by the caller and is never mutated by
// the diagrams package. Side effects (writing pixels, emitting markup)
// belong to the backend.
//
// # Example Backend
//
//	type Backend struct{}
//
//	type Element func(w io.Writer)
//
//	func (b *Backend) RenderDiagram(d diagrams.Diagram[*Backend, diagrams.V2, Element], opts ...Option) ([]byte, error) {
//	    var buf bytes.Buffer
//	    elems := d.Render(b)
//	    for i := len(elems) - 1; i >= 0; i-- {
//	        elems[i](&buf)
//	    }
//	    return buf.Bytes(), nil
//	}
type Backend[B any, V Vector[V], R any, O any, Out any] interface {
	RenderDiagram(d Diagram[B, V, R], opts ...O) (Out, error)
}
