package main

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/gogpu/diagrams/internal/describe"
)

func TestRenderSample(t *testing.T) {
	node, err := describe.Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	out, err := renderSVG(node, 0, 0, 10, color.White)
	if err != nil {
		t.Fatalf("renderSVG: %v", err)
	}
	if !bytes.Contains(out, []byte("<svg")) {
		t.Error("SVG output has no <svg> element")
	}

	out, err = renderPNG(node, 320, 240, 10, nil)
	if err != nil {
		t.Fatalf("renderPNG: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("\x89PNG")) {
		t.Error("PNG output has no PNG signature")
	}
}
