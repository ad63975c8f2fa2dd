package shape

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Sentinel errors for the shape package.
var (
	// ErrUnknownColor is returned by ParseColor for unrecognised input.
	ErrUnknownColor = errors.New("shape: unknown color")

	// ErrInvalidSize is returned for non-positive text sizes.
	ErrInvalidSize = errors.New("shape: invalid size")
)

// Style holds the paint applied to a shape. A nil color disables that
// part of the paint.
type Style struct {
	Fill      color.Color
	Stroke    color.Color
	LineWidth float64
}

// DefaultStyle is a one unit wide black outline with no fill.
var DefaultStyle = Style{Stroke: color.Black, LineWidth: 1}

// WithFill returns a copy of s with the fill color set.
func (s Style) WithFill(c color.Color) Style {
	s.Fill = c
	return s
}

// WithStroke returns a copy of s with the stroke color set.
func (s Style) WithStroke(c color.Color) Style {
	s.Stroke = c
	return s
}

// WithLineWidth returns a copy of s with the stroke width set.
func (s Style) WithLineWidth(w float64) Style {
	s.LineWidth = w
	return s
}

// Stroked reports whether the style draws an outline.
func (s Style) Stroked() bool {
	return s.Stroke != nil && s.LineWidth > 0
}

// ParseColor parses an SVG color keyword ("steelblue"), a hex color
// ("#f80", "#ff8800" or "#ff8800cc") or "none", which yields nil.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "none" || s == "" {
		return nil, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return nil, fmt.Errorf("%w %q", ErrUnknownColor, s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("%w %q", ErrUnknownColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownColor, s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
