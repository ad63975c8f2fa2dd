package raster

import "image/color"

// Option configures a render call.
//
// Example:
//
//	img, err := raster.New().RenderDiagram(d,
//	    raster.WithSize(800, 600),
//	    raster.WithBackground(color.White))
type Option func(*options)

// options holds optional configuration for RenderDiagram.
type options struct {
	width, height int
	margin        float64
	background    color.Color
}

// defaultOptions returns the default render options: the image is sized
// to the diagram's extents at one pixel per unit, with no margin and a
// transparent background.
func defaultOptions() options {
	return options{}
}

// WithSize fixes the image size in pixels. The diagram is scaled
// uniformly to fit inside the margins.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithMargin adds space around the diagram, in pixels.
func WithMargin(m float64) Option {
	return func(o *options) {
		o.margin = m
	}
}

// WithBackground fills the image before the diagram is drawn.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}
