// Package shape provides concrete plane primitives for diagrams.
//
// Shapes know nothing about backends. Each shape can be transformed and
// reports its exact bounding function; backend packages register
// renderers for the shape types they can draw, and [Lift] turns a shape
// into a one-primitive diagram for any backend that has done so.
//
//	c := shape.Circle(10).WithStyle(shape.DefaultStyle.WithFill(color.White))
//	d, err := shape.Lift[*svg.Backend, svg.Element](c)
//
// The supported shapes are:
//   - [Ellipse]: ellipses and circles, stored as a center and two
//     conjugate semi-axes so any affine transform keeps them exact
//   - [Polygon]: closed polygons and open polylines
//   - [Text]: single-line labels measured with the Go Regular font
package shape
