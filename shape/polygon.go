package shape

import (
	"math"
	"slices"

	"github.com/gogpu/diagrams"
)

// Polygon is a sequence of vertices joined by straight segments. A
// closed polygon joins the last vertex back to the first and can be
// filled; an open one is a polyline.
type Polygon struct {
	Points []diagrams.V2
	Closed bool
	Style  Style
}

// Rect returns a w×h rectangle centered at the origin.
func Rect(w, h float64) Polygon {
	x, y := w/2, h/2
	return Polygon{
		Points: []diagrams.V2{{X: -x, Y: -y}, {X: x, Y: -y}, {X: x, Y: y}, {X: -x, Y: y}},
		Closed: true,
		Style:  DefaultStyle,
	}
}

// RegularPolygon returns a regular n-gon with circumradius r centered at
// the origin, with one vertex pointing up.
func RegularPolygon(n int, r float64) Polygon {
	pts := make([]diagrams.V2, n)
	for i := range pts {
		angle := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		pts[i] = diagrams.FromAngle(angle).Scale(r)
	}
	return Polygon{Points: pts, Closed: true, Style: DefaultStyle}
}

// Polyline returns an open path through pts.
func Polyline(pts ...diagrams.V2) Polygon {
	return Polygon{Points: slices.Clone(pts), Style: DefaultStyle}
}

// Line returns the segment from a to b.
func Line(a, b diagrams.V2) Polygon {
	return Polyline(a, b)
}

// Clone returns a copy of p that does not share its vertex slice.
func (p Polygon) Clone() Polygon {
	p.Points = slices.Clone(p.Points)
	return p
}

// WithStyle returns a copy of p with style s.
func (p Polygon) WithStyle(s Style) Polygon {
	p.Style = s
	return p
}

// Transform maps every vertex through t.
func (p Polygon) Transform(t diagrams.Transformation[diagrams.V2]) Polygon {
	pts := make([]diagrams.V2, len(p.Points))
	for i, pt := range p.Points {
		pts[i] = t.Apply(pt)
	}
	p.Points = pts
	return p
}

// Bounds returns the bounding function of the vertices' convex hull.
// Stroke width is not included.
func (p Polygon) Bounds() diagrams.Bounds[diagrams.V2] {
	return diagrams.PointBounds(p.Points...)
}
