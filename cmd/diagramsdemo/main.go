// Command diagramsdemo renders a YAML diagram description to SVG or PNG.
package main

import (
	"bytes"
	"flag"
	"image/color"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/diagrams"
	"github.com/gogpu/diagrams/backend/raster"
	"github.com/gogpu/diagrams/backend/svg"
	"github.com/gogpu/diagrams/internal/describe"
	"github.com/gogpu/diagrams/shape"
)

// sample is rendered when no input file is given.
const sample = `
layout: vsep
gap: 16
children:
  - layout: hsep
    gap: 12
    children:
      - shape: circle
        radius: 30
        fill: tomato
      - shape: rect
        width: 60
        height: 40
        fill: "#4682b4"
        rotate: 20
      - shape: polygon
        sides: 6
        radius: 30
        fill: gold
        stroke: darkgoldenrod
        line_width: 2
  - shape: text
    text: diagrams
    size: 24
`

func main() {
	var (
		input   = flag.String("input", "", "YAML description (default: built-in sample)")
		output  = flag.String("output", "diagram.svg", "output file; .svg or .png")
		width   = flag.Int("width", 0, "output width (0: fit diagram)")
		height  = flag.Int("height", 0, "output height (0: fit diagram)")
		margin  = flag.Float64("margin", 10, "margin around the diagram")
		bg      = flag.String("background", "white", "background color or none")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		diagrams.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	data := []byte(sample)
	if *input != "" {
		var err error
		if data, err = os.ReadFile(*input); err != nil {
			log.Fatalf("Failed to read input: %v", err)
		}
	}
	node, err := describe.Parse(data)
	if err != nil {
		log.Fatalf("Failed to parse description: %v", err)
	}
	background, err := shape.ParseColor(*bg)
	if err != nil {
		log.Fatalf("Invalid background: %v", err)
	}

	var out []byte
	switch filepath.Ext(*output) {
	case ".png":
		out, err = renderPNG(node, *width, *height, *margin, background)
	default:
		out, err = renderSVG(node, *width, *height, *margin, background)
	}
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := os.WriteFile(*output, out, 0o644); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Diagram saved to %s\n", *output)
}

func renderSVG(node describe.Node, w, h int, margin float64, bg color.Color) ([]byte, error) {
	b, err := diagrams.NewBackend[*svg.Backend]("svg")
	if err != nil {
		return nil, err
	}
	d, err := describe.Build[*svg.Backend, svg.Element](node)
	if err != nil {
		return nil, err
	}
	opts := []svg.Option{svg.WithMargin(margin)}
	if w > 0 && h > 0 {
		opts = append(opts, svg.WithSize(float64(w), float64(h)))
	}
	if bg != nil {
		opts = append(opts, svg.WithBackground(bg))
	}
	return b.RenderDiagram(d, opts...)
}

func renderPNG(node describe.Node, w, h int, margin float64, bg color.Color) ([]byte, error) {
	b, err := diagrams.NewBackend[*raster.Backend]("raster")
	if err != nil {
		return nil, err
	}
	d, err := describe.Build[*raster.Backend, raster.Op](node)
	if err != nil {
		return nil, err
	}
	opts := []raster.Option{raster.WithMargin(margin)}
	if w > 0 && h > 0 {
		opts = append(opts, raster.WithSize(w, h))
	}
	if bg != nil {
		opts = append(opts, raster.WithBackground(bg))
	}
	img, err := b.RenderDiagram(d, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := raster.EncodePNG(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
