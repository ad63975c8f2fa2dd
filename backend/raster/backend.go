// Package raster provides a raster backend for diagrams.
// It renders diagrams to pixel images using gg.Context.
//
// # Supported Features
//
//   - Ellipses and polygons, filled and stroked
//   - Open polylines
//   - Text labels in the Go Regular font
//   - PNG output
//
// # Limitations
//
// Ellipses are flattened to polygons. Text is drawn upright at its
// transformed baseline origin; rotation and shear of labels are ignored.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/diagrams/backend/raster"
//
//	// Create via registry
//	b, _ := diagrams.NewBackend[*raster.Backend]("raster")
//
//	// Or create directly
//	img, err := raster.New().RenderDiagram(d, raster.WithMargin(8))
//	raster.EncodePNG(w, img)
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/diagrams"
	"github.com/gogpu/diagrams/shape"
)

// ellipseSegments is the number of segments used to flatten an ellipse.
const ellipseSegments = 96

// ErrInvalidExtent is returned when a diagram's bounds are not finite or
// the margins leave no room for it.
var ErrInvalidExtent = errors.New("raster: invalid diagram extent")

func init() {
	diagrams.RegisterBackend("raster", func() any {
		return New()
	})
	diagrams.RegisterRenderer[*Backend, Op, shape.Ellipse](renderEllipse)
	diagrams.RegisterRenderer[*Backend, Op, shape.Polygon](renderPolygon)
	diagrams.RegisterRenderer[*Backend, Op, shape.Text](renderText)
}

// Op is the render context of the raster backend: a deferred drawing
// operation on a Canvas.
type Op func(c *Canvas) error

// Diagram is a plane diagram renderable by this backend.
type Diagram = diagrams.Diagram[*Backend, diagrams.V2, Op]

// Canvas is the drawing surface passed to each Op. It maps diagram
// coordinates to pixels.
type Canvas struct {
	dc     *gg.Context
	offset diagrams.V2
	scale  float64
}

// Context returns the underlying gg context.
func (c *Canvas) Context() *gg.Context {
	return c.dc
}

// Scale returns the number of pixels per diagram unit.
func (c *Canvas) Scale() float64 {
	return c.scale
}

// ToDevice converts a diagram point to pixel coordinates.
func (c *Canvas) ToDevice(p diagrams.V2) diagrams.V2 {
	return p.Scale(c.scale).Add(c.offset)
}

// Backend renders diagrams to images.
type Backend struct {
	fontOnce sync.Once
	font     *text.FontSource
	fontErr  error
}

// Ensure Backend implements the backend contract.
var _ diagrams.Backend[*Backend, diagrams.V2, Op, Option, image.Image] = (*Backend)(nil)

// New creates a new raster backend.
func New() *Backend {
	return &Backend{}
}

// Shape lifts any shape with a registered renderer into a Diagram.
func Shape[T shape.Shape[T]](s T) (Diagram, error) {
	return shape.Lift[*Backend, Op](s)
}

// RenderDiagram draws d into a new image. Primitives are drawn last to
// first so that earlier primitives end up on top.
func (b *Backend) RenderDiagram(d Diagram, opts ...Option) (image.Image, error) {
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
	width := int(math.Ceil(w + 2*o.margin))
	height := int(math.Ceil(h + 2*o.margin))
	if o.width > 0 && o.height > 0 {
		innerW, innerH := float64(o.width)-2*o.margin, float64(o.height)-2*o.margin
		if innerW <= 0 || innerH <= 0 {
			return nil, fmt.Errorf("%w: margin %g leaves no room in %dx%d",
				ErrInvalidExtent, o.margin, o.width, o.height)
		}
		if w > 0 && h > 0 {
			scale = min(innerW/w, innerH/h)
		}
		width, height = o.width, o.height
	}
	width, height = max(width, 1), max(height, 1)

	c := &Canvas{
		dc:     gg.NewContext(width, height),
		offset: diagrams.Vec(o.margin-lo.X*scale, o.margin-lo.Y*scale),
		scale:  scale,
	}
	if o.background != nil {
		c.dc.ClearWithColor(gg.FromColor(o.background))
	}

	ops := d.Render(b)
	for i := len(ops) - 1; i >= 0; i-- {
		if ops[i] == nil {
			diagrams.Logger().Warn("raster: skipped primitive with no op", "index", i)
			continue
		}
		if err := ops[i](c); err != nil {
			return nil, fmt.Errorf("raster: primitive %d: %w", i, err)
		}
	}

	diagrams.Logger().Debug("raster: rendered diagram",
		"prims", len(ops), "width", width, "height", height)
	return c.dc.Image(), nil
}

// EncodePNG writes img to w in PNG format.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// fontSource loads the label font once per backend.
func (b *Backend) fontSource() (*text.FontSource, error) {
	b.fontOnce.Do(func() {
		b.font, b.fontErr = text.NewFontSource(shape.FontTTF())
	})
	return b.font, b.fontErr
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func renderEllipse(_ *Backend, e shape.Ellipse) Op {
	return func(c *Canvas) error {
		return paintPath(c, e.Points(ellipseSegments), true, e.Style)
	}
}

func renderPolygon(_ *Backend, p shape.Polygon) Op {
	return func(c *Canvas) error {
		return paintPath(c, p.Points, p.Closed, p.Style)
	}
}

func renderText(b *Backend, t shape.Text) Op {
	return func(c *Canvas) error {
		if t.Style.Fill == nil || t.Content == "" {
			return nil
		}
		src, err := b.fontSource()
		if err != nil {
			return err
		}
		size := t.Size * t.U.Length() * c.scale
		if size <= 0 {
			return nil
		}
		o := c.ToDevice(t.Origin)
		c.dc.SetFont(src.Face(size))
		c.dc.SetColor(t.Style.Fill)
		c.dc.DrawString(t.Content, o.X, o.Y)
		return nil
	}
}

// paintPath fills and strokes the polygon through pts.
func paintPath(c *Canvas, pts []diagrams.V2, closed bool, s shape.Style) error {
	if len(pts) < 2 {
		return nil
	}
	dc := c.dc
	dc.ClearPath()
	for i, p := range pts {
		d := c.ToDevice(p)
		if i == 0 {
			dc.MoveTo(d.X, d.Y)
			continue
		}
		dc.LineTo(d.X, d.Y)
	}
	if closed {
		dc.ClosePath()
	}

	fill := closed && s.Fill != nil
	if fill {
		dc.SetColor(s.Fill)
		var err error
		if s.Stroked() {
			err = dc.FillPreserve()
		} else {
			err = dc.Fill()
		}
		if err != nil {
			return err
		}
	}
	if s.Stroked() {
		dc.SetColor(s.Stroke)
		dc.SetLineWidth(s.LineWidth * c.scale)
		return dc.Stroke()
	}
	dc.ClearPath()
	return nil
}
