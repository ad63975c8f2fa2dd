// Package describe builds diagrams from YAML descriptions.
//
// A description is a tree of nodes. Leaves name a shape, inner nodes
// combine their children with a layout, and every node may be styled,
// transformed and re-anchored:
//
//	layout: hsep
//	gap: 10
//	children:
//	  - shape: circle
//	    radius: 20
//	    fill: steelblue
//	  - shape: rect
//	    width: 40
//	    height: 30
//	    rotate: 15
//	  - shape: text
//	    text: hello
//	    size: 16
package describe

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/diagrams"
	"github.com/gogpu/diagrams/shape"
)

// Sentinel errors for the describe package.
var (
	// ErrUnknownShape is returned for an unrecognised shape kind.
	ErrUnknownShape = errors.New("describe: unknown shape")

	// ErrUnknownLayout is returned for an unrecognised layout.
	ErrUnknownLayout = errors.New("describe: unknown layout")

	// ErrUnknownAlign is returned for an unrecognised alignment.
	ErrUnknownAlign = errors.New("describe: unknown alignment")
)

// Node is one element of a description.
type Node struct {
	// Leaf shapes.
	Shape  string       `yaml:"shape,omitempty"`
	Radius float64      `yaml:"radius,omitempty"`
	RX     float64      `yaml:"rx,omitempty"`
	RY     float64      `yaml:"ry,omitempty"`
	Width  float64      `yaml:"width,omitempty"`
	Height float64      `yaml:"height,omitempty"`
	Sides  int          `yaml:"sides,omitempty"`
	Points [][2]float64 `yaml:"points,omitempty"`
	Text   string       `yaml:"text,omitempty"`
	Size   float64      `yaml:"size,omitempty"`

	// Style.
	Fill      string   `yaml:"fill,omitempty"`
	Stroke    string   `yaml:"stroke,omitempty"`
	LineWidth *float64 `yaml:"line_width,omitempty"`

	// Composition.
	Layout   string  `yaml:"layout,omitempty"`
	Gap      float64 `yaml:"gap,omitempty"`
	Children []Node  `yaml:"children,omitempty"`

	// Placement, applied in this order after the node is built.
	Scale     float64               `yaml:"scale,omitempty"`
	Rotate    float64               `yaml:"rotate,omitempty"`
	Translate *[2]float64           `yaml:"translate,omitempty"`
	Align     string                `yaml:"align,omitempty"`
	Origin    string                `yaml:"origin,omitempty"`
	Name      string                `yaml:"name,omitempty"`
	Anchors   map[string][2]float64 `yaml:"anchors,omitempty"`
}

// Parse decodes a YAML description. Unknown fields are rejected.
func Parse(data []byte) (Node, error) {
	var n Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&n); err != nil {
		return Node{}, fmt.Errorf("describe: %w", err)
	}
	return n, nil
}

// Build turns a description into a diagram for backend B.
func Build[B any, R any](n Node) (diagrams.Diagram[B, diagrams.V2, R], error) {
	return build[B, R](n, "root")
}

func build[B any, R any](n Node, path string) (diagrams.Diagram[B, diagrams.V2, R], error) {
	var (
		d   diagrams.Diagram[B, diagrams.V2, R]
		err error
	)
	if n.Shape != "" {
		d, err = buildShape[B, R](n)
	} else {
		d, err = buildLayout[B, R](n, path)
	}
	if err != nil {
		return d, fmt.Errorf("%s: %w", path, err)
	}
	d, err = place(d, n)
	if err != nil {
		return d, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func buildLayout[B any, R any](n Node, path string) (diagrams.Diagram[B, diagrams.V2, R], error) {
	children := make([]diagrams.Diagram[B, diagrams.V2, R], len(n.Children))
	for i, c := range n.Children {
		d, err := build[B, R](c, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return diagrams.Diagram[B, diagrams.V2, R]{}, err
		}
		children[i] = d
	}

	switch n.Layout {
	case "", "atop":
		return diagrams.Mconcat(children...), nil
	case "hcat":
		return diagrams.HCat(children...), nil
	case "vcat":
		return diagrams.VCat(children...), nil
	case "hsep":
		return diagrams.HSep(n.Gap, children...), nil
	case "vsep":
		return diagrams.VSep(n.Gap, children...), nil
	}
	return diagrams.Diagram[B, diagrams.V2, R]{}, fmt.Errorf("%w %q", ErrUnknownLayout, n.Layout)
}

func buildShape[B any, R any](n Node) (diagrams.Diagram[B, diagrams.V2, R], error) {
	var zero diagrams.Diagram[B, diagrams.V2, R]

	base := shape.DefaultStyle
	if n.Shape == "text" {
		base = shape.Style{Fill: shape.DefaultStyle.Stroke}
	}
	style, err := n.style(base)
	if err != nil {
		return zero, err
	}

	switch n.Shape {
	case "circle":
		return shape.Lift[B, R](shape.Circle(n.Radius).WithStyle(style))
	case "ellipse":
		return shape.Lift[B, R](shape.NewEllipse(n.RX, n.RY).WithStyle(style))
	case "rect":
		return shape.Lift[B, R](shape.Rect(n.Width, n.Height).WithStyle(style))
	case "polygon":
		if n.Sides > 0 {
			return shape.Lift[B, R](shape.RegularPolygon(n.Sides, n.Radius).WithStyle(style))
		}
		p := shape.Polyline(points(n.Points)...)
		p.Closed = true
		return shape.Lift[B, R](p.WithStyle(style))
	case "line":
		return shape.Lift[B, R](shape.Polyline(points(n.Points)...).WithStyle(style))
	case "text":
		size := n.Size
		if size == 0 {
			size = 12
		}
		t, err := shape.NewText(n.Text, size)
		if err != nil {
			return zero, err
		}
		return shape.Lift[B, R](t.Centered().WithStyle(style))
	}
	return zero, fmt.Errorf("%w %q", ErrUnknownShape, n.Shape)
}

func (n Node) style(base shape.Style) (shape.Style, error) {
	s := base
	if n.Fill != "" {
		c, err := shape.ParseColor(n.Fill)
		if err != nil {
			return s, err
		}
		s.Fill = c
	}
	if n.Stroke != "" {
		c, err := shape.ParseColor(n.Stroke)
		if err != nil {
			return s, err
		}
		s.Stroke = c
	}
	if n.LineWidth != nil {
		s.LineWidth = *n.LineWidth
	}
	return s, nil
}

func points(raw [][2]float64) []diagrams.V2 {
	pts := make([]diagrams.V2, len(raw))
	for i, p := range raw {
		pts[i] = diagrams.Vec(p[0], p[1])
	}
	return pts
}

// place applies the node's anchors, transforms and re-anchoring.
func place[B any, R any](d diagrams.Diagram[B, diagrams.V2, R], n Node) (diagrams.Diagram[B, diagrams.V2, R], error) {
	for name, p := range n.Anchors {
		d = d.WithName(diagrams.Name(name), diagrams.Vec(p[0], p[1]))
	}

	t := diagrams.Identity[diagrams.V2]()
	if n.Scale != 0 {
		t = diagrams.Scaling[diagrams.V2](n.Scale).Compose(t)
	}
	if n.Rotate != 0 {
		t = diagrams.Rotate(n.Rotate * math.Pi / 180).Compose(t)
	}
	if n.Translate != nil {
		t = diagrams.Translate(n.Translate[0], n.Translate[1]).Compose(t)
	}
	d, err := d.Transform(t)
	if err != nil {
		return d, err
	}

	switch n.Align {
	case "":
	case "left":
		d = d.AlignTo(diagrams.UnitX.Neg())
	case "right":
		d = d.AlignTo(diagrams.UnitX)
	case "top":
		d = d.AlignTo(diagrams.UnitY.Neg())
	case "bottom":
		d = d.AlignTo(diagrams.UnitY)
	case "center":
		d = d.CenterOn(diagrams.UnitX).CenterOn(diagrams.UnitY)
	default:
		return d, fmt.Errorf("%w %q", ErrUnknownAlign, n.Align)
	}

	if n.Origin != "" {
		d, err = d.Rebase(diagrams.Named[diagrams.V2](diagrams.Name(n.Origin)))
		if err != nil {
			return d, err
		}
	}
	if n.Name != "" {
		d = d.WithName(diagrams.Name(n.Name), diagrams.V2{})
	}
	return d, nil
}
