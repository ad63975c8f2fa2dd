// Package diagrams provides the algebraic core of a declarative diagram
// engine.
//
// # Overview
//
// A [Diagram] is an ordered sequence of primitives, the bounding function
// of their union and a set of named points. Diagrams are combined with
// [Diagram.Atop], [Diagram.Beside] and [Cat], moved with
// [Diagram.Transform] and [Diagram.Translate], and re-anchored with
// [Diagram.Rebase]. Every operation returns a new Diagram.
//
// Diagrams are generic over three things:
//   - V, the vector space ([Vector]); [V2] is the plane
//   - B, the backend type that will render them
//   - R, the render context B's primitives produce
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/diagrams"
//	    "github.com/gogpu/diagrams/backend/svg"
//	    "github.com/gogpu/diagrams/shape"
//	)
//
//	a, _ := svg.Shape(shape.Circle(20))
//	b, _ := svg.Shape(shape.Rect(40, 30))
//	d := diagrams.HSep(10, a, b)
//
//	out, err := svg.New().RenderDiagram(d, svg.WithMargin(5))
//
// # Bounding Functions
//
// A [Bounds] maps a direction v to the distance, in units of v, from the
// local origin to the region's supporting line perpendicular to v. Bounds
// form a commutative monoid under [Bounds.Combine] (pointwise maximum)
// with the zero value as identity.
//
// # Primitives and Backends
//
// A [Prim] erases the type of a primitive, keeping only the ability to
// transform it and render it on one backend. A primitive type can render
// itself ([Renderable], [Wrap]) or a backend package can declare that it
// knows how to draw a type it does not own ([RegisterRenderer], [Lift]).
// Neither side needs to import the other.
//
// Backends implement [Backend] and usually register themselves by name
// with [RegisterBackend], following the database/sql driver pattern.
//
// # Coordinate System
//
// Plane helpers use standard computer graphics coordinates:
//   - X increases right
//   - Y increases down
//   - Angles in radians, increasing from +X towards +Y
package diagrams
