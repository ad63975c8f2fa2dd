// Package svg provides an SVG backend for diagrams.
//
// The backend registers itself as "svg" and registers renderers for
// every shape in the shape package:
//
//	import _ "github.com/gogpu/diagrams/backend/svg"
//
//	b, _ := diagrams.NewBackend[*svg.Backend]("svg")
//
// Or create directly:
//
//	d, _ := svg.Shape(shape.Circle(20))
//	out, err := svg.New().RenderDiagram(d, svg.WithMargin(4))
//
// # Limitations
//
// Strokes use vector-effect="non-scaling-stroke", so line widths are in
// document units and ignore both diagram transforms and fit scaling.
package svg

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"

	svgo "github.com/ajstarks/svgo/float"

	"github.com/gogpu/diagrams"
	"github.com/gogpu/diagrams/shape"
)

// ErrInvalidExtent is returned when a diagram's bounds are not finite or
// the margins leave no room for it.
var ErrInvalidExtent = errors.New("svg: invalid diagram extent")

func init() {
	diagrams.RegisterBackend("svg", func() any {
		return New()
	})
	diagrams.RegisterRenderer[*Backend, Element, shape.Ellipse](renderEllipse)
	diagrams.RegisterRenderer[*Backend, Element, shape.Polygon](renderPolygon)
	diagrams.RegisterRenderer[*Backend, Element, shape.Text](renderText)
}

// Element is the render context of the SVG backend: a deferred write of
// one primitive's markup.
type Element func(c *svgo.SVG)

// Diagram is a plane diagram renderable by this backend.
type Diagram = diagrams.Diagram[*Backend, diagrams.V2, Element]

// Backend renders diagrams to SVG documents.
type Backend struct{}

// Ensure Backend implements the backend contract.
var _ diagrams.Backend[*Backend, diagrams.V2, Element, Option, []byte] = (*Backend)(nil)

// New creates a new SVG backend.
func New() *Backend {
	return &Backend{}
}

// Shape lifts any shape with a registered renderer into a Diagram.
func Shape[T shape.Shape[T]](s T) (Diagram, error) {
	return shape.Lift[*Backend, Element](s)
}

// RenderDiagram writes d as a standalone SVG document. Primitives are
// emitted last to first so that earlier primitives are painted on top.
func (b *Backend) RenderDiagram(d Diagram, opts ...Option) ([]byte, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	lo, hi := diagrams.Extents(d.Bounds())
	w, h := hi.X-lo.X, hi.Y-lo.Y
	if !finite(w) || !finite(h) || !finite(lo.X) || !finite(lo.Y) {
		return nil, ErrInvalidExtent
	}

	scale := 1.0
	docW, docH := w+2*o.margin, h+2*o.margin
	if o.width > 0 && o.height > 0 {
		innerW, innerH := o.width-2*o.margin, o.height-2*o.margin
		if innerW <= 0 || innerH <= 0 {
			return nil, fmt.Errorf("%w: margin %g leaves no room in %gx%g",
				ErrInvalidExtent, o.margin, o.width, o.height)
		}
		if w > 0 && h > 0 {
			scale = min(innerW/w, innerH/h)
		}
		docW, docH = o.width, o.height
	}

	elems := d.Render(b)

	var buf bytes.Buffer
	c := svgo.New(&buf)
	c.Start(docW, docH)
	if o.background != nil {
		c.Rect(0, 0, docW, docH, "fill:"+hexColor(o.background))
	}
	c.Gtransform(fmt.Sprintf("translate(%g,%g) scale(%g)",
		o.margin-lo.X*scale, o.margin-lo.Y*scale, scale))
	for i := len(elems) - 1; i >= 0; i-- {
		if elems[i] == nil {
			diagrams.Logger().Warn("svg: skipped primitive with no element", "index", i)
			continue
		}
		elems[i](c)
	}
	c.Gend()
	c.End()

	diagrams.Logger().Debug("svg: rendered diagram",
		"prims", len(elems), "width", docW, "height", docH)
	return buf.Bytes(), nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func renderEllipse(_ *Backend, e shape.Ellipse) Element {
	m := e.Matrix()
	style := styleAttr(e.Style, true)
	return func(c *svgo.SVG) {
		c.Gtransform(matrixAttr(m))
		c.Circle(0, 0, 1, style)
		c.Gend()
	}
}

func renderPolygon(_ *Backend, p shape.Polygon) Element {
	xs := make([]float64, len(p.Points))
	ys := make([]float64, len(p.Points))
	for i, pt := range p.Points {
		xs[i], ys[i] = pt.X, pt.Y
	}
	style := styleAttr(p.Style, p.Closed)
	return func(c *svgo.SVG) {
		if p.Closed {
			c.Polygon(xs, ys, style)
			return
		}
		c.Polyline(xs, ys, style)
	}
}

func renderText(_ *Backend, t shape.Text) Element {
	m := diagrams.Matrix{
		A: t.U.X, B: t.W.X, C: t.Origin.X,
		D: t.U.Y, E: t.W.Y, F: t.Origin.Y,
	}
	style := fmt.Sprintf("font-family:Go,sans-serif;font-size:%gpx;%s", t.Size, styleAttr(t.Style, true))
	return func(c *svgo.SVG) {
		c.Gtransform(matrixAttr(m))
		c.Text(0, 0, t.Content, style)
		c.Gend()
	}
}

// matrixAttr formats m as an SVG transform. SVG lists the matrix column
// by column.
func matrixAttr(m diagrams.Matrix) string {
	return fmt.Sprintf("matrix(%g,%g,%g,%g,%g,%g)", m.A, m.D, m.B, m.E, m.C, m.F)
}

// styleAttr formats a shape style as an inline CSS declaration list.
func styleAttr(s shape.Style, fillable bool) string {
	fill := "fill:none"
	if fillable && s.Fill != nil {
		fill = "fill:" + hexColor(s.Fill) + opacity("fill-opacity", s.Fill)
	}
	stroke := "stroke:none"
	if s.Stroked() {
		stroke = fmt.Sprintf("stroke:%s%s;stroke-width:%g;vector-effect:non-scaling-stroke",
			hexColor(s.Stroke), opacity("stroke-opacity", s.Stroke), s.LineWidth)
	}
	return fill + ";" + stroke
}

func hexColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func opacity(prop string, c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return ""
	}
	return fmt.Sprintf(";%s:%.3g", prop, float64(n.A)/255)
}
