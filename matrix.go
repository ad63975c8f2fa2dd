package diagrams

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// singularEpsilon is the determinant magnitude, relative to the square
// of the largest linear entry, below which a Matrix is treated as
// non-invertible.
const singularEpsilon = 1e-12

// IdentityMatrix returns the identity transformation matrix.
func IdentityMatrix() Matrix {
	return Matrix{A: 1, E: 1}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse matrix and whether it exists. Uniformly
// small matrices are still invertible; only a determinant that is tiny
// compared to the entries counts as singular.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	scale := max(math.Abs(m.A), math.Abs(m.B), math.Abs(m.D), math.Abs(m.E))
	if det == 0 || math.Abs(det) <= singularEpsilon*scale*scale {
		return Matrix{}, false
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, true
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p V2) V2 {
	return V2{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(v V2) V2 {
	return V2{
		X: m.A*v.X + m.B*v.Y,
		Y: m.D*v.X + m.E*v.Y,
	}
}

// transposeVector applies the transpose of the linear part.
func (m Matrix) transposeVector(v V2) V2 {
	return V2{
		X: m.A*v.X + m.D*v.Y,
		Y: m.B*v.X + m.E*v.Y,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == IdentityMatrix()
}

// Affine converts a matrix into a Transformation of the plane. Singular
// matrices produce a transformation without an inverse.
func Affine(m Matrix) Transformation[V2] {
	l := Linear[V2]{
		Forward:   m.TransformVector,
		Transpose: m.transposeVector,
	}
	if inv, ok := m.Invert(); ok {
		l.Inverse = inv.TransformVector
		l.InverseTranspose = inv.transposeVector
	}
	return NewTransformation(l, V2{X: m.C, Y: m.F})
}

// MatrixOf recovers the matrix of a plane transformation by probing the
// basis vectors.
func MatrixOf(t Transformation[V2]) Matrix {
	ex := t.ApplyVector(UnitX)
	ey := t.ApplyVector(UnitY)
	b := t.TranslationPart()
	return Matrix{
		A: ex.X, B: ey.X, C: b.X,
		D: ex.Y, E: ey.Y, F: b.Y,
	}
}

// Translate returns a translation of the plane.
func Translate(x, y float64) Transformation[V2] {
	return Translation(V2{X: x, Y: y})
}

// ScaleXY returns a non-uniform scaling about the origin.
func ScaleXY(sx, sy float64) Transformation[V2] {
	return Affine(Matrix{A: sx, E: sy})
}

// Rotate returns a rotation about the origin (angle in radians).
func Rotate(angle float64) Transformation[V2] {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Affine(Matrix{
		A: cos, B: -sin,
		D: sin, E: cos,
	})
}

// Shear returns a shear of the plane.
func Shear(x, y float64) Transformation[V2] {
	return Affine(Matrix{
		A: 1, B: x,
		D: y, E: 1,
	})
}

// ReflectX mirrors the plane across the Y axis (negates X).
func ReflectX() Transformation[V2] {
	return ScaleXY(-1, 1)
}

// ReflectY mirrors the plane across the X axis (negates Y).
func ReflectY() Transformation[V2] {
	return ScaleXY(1, -1)
}

// Extents returns the axis-aligned box enclosing a plane bounding
// function. The empty bounding function yields a degenerate box at the
// origin.
func Extents(b Bounds[V2]) (lo, hi V2) {
	lo = V2{X: -b.At(UnitX.Neg()), Y: -b.At(UnitY.Neg())}
	hi = V2{X: b.At(UnitX), Y: b.At(UnitY)}
	return lo, hi
}
