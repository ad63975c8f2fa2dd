package shape

import (
	"math"

	"github.com/gogpu/diagrams"
)

// Ellipse is the image of the unit circle under an affine map:
//
//	Center + cos(θ)·U + sin(θ)·W
//
// U and W are conjugate semi-axes. They stay exact under any affine
// transformation.
type Ellipse struct {
	Center diagrams.V2
	U, W   diagrams.V2
	Style  Style
}

// Circle returns a circle of radius r centered at the origin.
func Circle(r float64) Ellipse {
	return NewEllipse(r, r)
}

// NewEllipse returns an axis-aligned ellipse with radii rx and ry
// centered at the origin.
func NewEllipse(rx, ry float64) Ellipse {
	return Ellipse{
		U:     diagrams.Vec(rx, 0),
		W:     diagrams.Vec(0, ry),
		Style: DefaultStyle,
	}
}

// WithStyle returns a copy of e with style s.
func (e Ellipse) WithStyle(s Style) Ellipse {
	e.Style = s
	return e
}

// Transform maps the ellipse through t.
func (e Ellipse) Transform(t diagrams.Transformation[diagrams.V2]) Ellipse {
	e.Center = t.Apply(e.Center)
	e.U = t.ApplyVector(e.U)
	e.W = t.ApplyVector(e.W)
	return e
}

// Matrix returns the affine map taking the unit circle onto e.
func (e Ellipse) Matrix() diagrams.Matrix {
	return diagrams.Matrix{
		A: e.U.X, B: e.W.X, C: e.Center.X,
		D: e.U.Y, E: e.W.Y, F: e.Center.Y,
	}
}

// Bounds returns the exact bounding function. The support of the
// ellipse in direction v is Center·v + |(U·v, W·v)|.
func (e Ellipse) Bounds() diagrams.Bounds[diagrams.V2] {
	c, u, w := e.Center, e.U, e.W
	return diagrams.NewBounds(func(v diagrams.V2) float64 {
		vv := v.Dot(v)
		if vv == 0 {
			return 0
		}
		return (c.Dot(v) + math.Hypot(u.Dot(v), w.Dot(v))) / vv
	})
}

// Points returns n points evenly spaced in parameter along the outline.
func (e Ellipse) Points(n int) []diagrams.V2 {
	pts := make([]diagrams.V2, n)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = e.Center.Add(e.U.Scale(math.Cos(theta))).Add(e.W.Scale(math.Sin(theta)))
	}
	return pts
}
