package svg

import "image/color"

// Option configures a render call.
//
// Example:
//
//	out, err := svg.New().RenderDiagram(d,
//	    svg.WithSize(400, 300),
//	    svg.WithBackground(color.White))
type Option func(*options)

// options holds optional configuration for RenderDiagram.
type options struct {
	width, height float64
	margin        float64
	background    color.Color
}

// defaultOptions returns the default render options: the document is
// sized to the diagram's extents with no margin and no background.
func defaultOptions() options {
	return options{}
}

// WithSize fixes the document size. The diagram is scaled uniformly to
// fit inside the margins and keeps its aspect ratio.
func WithSize(width, height float64) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithMargin adds space around the diagram.
func WithMargin(m float64) Option {
	return func(o *options) {
		o.margin = m
	}
}

// WithBackground paints the whole document before the diagram.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}
