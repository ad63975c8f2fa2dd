package diagrams

import "math"

// Vector is the constraint satisfied by every vector space a diagram can
// live in. Scalars are float64; the zero value of V must be the additive
// identity.
//
// The core only ever calls these four operations. It never inspects a
// vector's representation.
type Vector[V any] interface {
	// Add returns the sum of two vectors.
	Add(V) V

	// Neg returns the additive inverse.
	Neg() V

	// Scale returns the vector multiplied by a scalar.
	Scale(float64) V

	// Dot returns the inner product of two vectors.
	Dot(V) float64
}

// V2 is a vector in the 2-D plane.
//
// Uses standard computer graphics coordinates: X increases right and Y
// increases down.
type V2 struct {
	X, Y float64
}

// Vec is a convenience function to create a V2.
func Vec(x, y float64) V2 {
	return V2{X: x, Y: y}
}

// Unit vectors along the axes.
var (
	UnitX = V2{X: 1}
	UnitY = V2{Y: 1}
)

// Add returns the sum of two vectors.
func (v V2) Add(w V2) V2 {
	return V2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v V2) Sub(w V2) V2 {
	return V2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Neg returns the negation of the vector.
func (v V2) Neg() V2 {
	return V2{X: -v.X, Y: -v.Y}
}

// Scale returns the vector scaled by a scalar.
func (v V2) Scale(s float64) V2 {
	return V2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of two vectors.
func (v V2) Dot(w V2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z-component of the 3-D cross product with z=0.
func (v V2) Cross(w V2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length (magnitude) of the vector.
func (v V2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSq returns the squared length of the vector.
func (v V2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// Returns zero vector if the original vector has zero length.
func (v V2) Normalize() V2 {
	length := v.Length()
	if length == 0 {
		return V2{}
	}
	return V2{X: v.X / length, Y: v.Y / length}
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v V2) Perp() V2 {
	return V2{X: -v.Y, Y: v.X}
}

// IsZero returns true if the vector is the zero vector.
func (v V2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v V2) Approx(w V2, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}

// FromAngle returns the unit vector at angle radians from the X axis.
func FromAngle(angle float64) V2 {
	return V2{X: math.Cos(angle), Y: math.Sin(angle)}
}
