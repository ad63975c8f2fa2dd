package describe

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/diagrams"
	"github.com/gogpu/diagrams/backend/svg"
	"github.com/gogpu/diagrams/shape"
)

func mustBuild(t *testing.T, src string) svg.Diagram {
	t.Helper()
	n, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	d, err := Build[*svg.Backend, svg.Element](n)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return d
}

func mustFail(t *testing.T, src string) error {
	t.Helper()
	n, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = Build[*svg.Backend, svg.Element](n)
	if err == nil {
		t.Fatal("Build succeeded, want error")
	}
	return err
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestParseUnknownField(t *testing.T) {
	if _, err := Parse([]byte("shape: circle\nradius: 1\ncolour: red\n")); err == nil {
		t.Error("Parse accepted an unknown field")
	}
}

func TestBuildLayouts(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		width  float64
		height float64
		prims  int
	}{
		{"circle", "shape: circle\nradius: 10\n", 20, 20, 1},
		{"ellipse", "shape: ellipse\nrx: 3\nry: 2\n", 6, 4, 1},
		{"rect", "shape: rect\nwidth: 4\nheight: 2\n", 4, 2, 1},
		{"scaled", "shape: circle\nradius: 1\nscale: 3\n", 6, 6, 1},
		{"rotated", "shape: rect\nwidth: 4\nheight: 2\nrotate: 90\n", 2, 4, 1},
		{"polygon points", "shape: polygon\npoints: [[0, 0], [4, 0], [0, 3]]\n", 4, 3, 1},
		{"line", "shape: line\npoints: [[0, 0], [5, 0]]\n", 5, 0, 1},
		{"atop", `
children:
  - shape: circle
    radius: 1
  - shape: circle
    radius: 2
`, 4, 4, 2},
		{"hsep", `
layout: hsep
gap: 5
children:
  - shape: circle
    radius: 10
  - shape: circle
    radius: 10
`, 45, 20, 2},
		{"vcat", `
layout: vcat
children:
  - shape: rect
    width: 2
    height: 1
  - shape: rect
    width: 4
    height: 3
`, 4, 4, 2},
		{"vsep", `
layout: vsep
gap: 2
children:
  - shape: circle
    radius: 1
  - shape: circle
    radius: 1
`, 2, 6, 2},
		{"hcat", `
layout: hcat
children:
  - shape: rect
    width: 2
    height: 1
  - shape: rect
    width: 3
    height: 1
`, 5, 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustBuild(t, tt.src)
			if got := diagrams.Width(d); !approx(got, tt.width) {
				t.Errorf("Width = %v, want %v", got, tt.width)
			}
			if got := diagrams.Height(d); !approx(got, tt.height) {
				t.Errorf("Height = %v, want %v", got, tt.height)
			}
			if d.Len() != tt.prims {
				t.Errorf("Len = %d, want %d", d.Len(), tt.prims)
			}
		})
	}
}

func TestBuildText(t *testing.T) {
	d := mustBuild(t, "shape: text\ntext: hello\n")
	txt, err := shape.NewText("hello", 12)
	if err != nil {
		t.Fatal(err)
	}
	if got := diagrams.Width(d); !approx(got, txt.Advance()) {
		t.Errorf("Width = %v, want %v", got, txt.Advance())
	}
	// Labels are centered on their origin.
	b := d.Bounds()
	if got := b.At(diagrams.UnitX) - b.At(diagrams.UnitX.Neg()); !approx(got, 0) {
		t.Errorf("label is off center by %v", got)
	}
}

func TestBuildPlacement(t *testing.T) {
	d := mustBuild(t, "shape: circle\nradius: 1\ntranslate: [5, 0]\n")
	if got := d.Bounds().At(diagrams.UnitX); !approx(got, 6) {
		t.Errorf("At(x) = %v, want 6", got)
	}

	d = mustBuild(t, "shape: circle\nradius: 2\nalign: left\n")
	if got := d.Bounds().At(diagrams.UnitX.Neg()); !approx(got, 0) {
		t.Errorf("left aligned At(-x) = %v, want 0", got)
	}

	d = mustBuild(t, "shape: circle\nradius: 1\ntranslate: [3, 4]\nalign: center\n")
	if got := d.Bounds().At(diagrams.UnitY); !approx(got, 1) {
		t.Errorf("centered At(y) = %v, want 1", got)
	}
}

func TestBuildOrigin(t *testing.T) {
	d := mustBuild(t, `
shape: rect
width: 4
height: 2
anchors:
  corner: [2, 1]
origin: corner
`)
	if got := d.Bounds().At(diagrams.UnitX); !approx(got, 0) {
		t.Errorf("At(x) = %v, want 0", got)
	}
	if got := d.Bounds().At(diagrams.UnitX.Neg()); !approx(got, 4) {
		t.Errorf("At(-x) = %v, want 4", got)
	}
	if p, ok := d.Names().Lookup("corner"); !ok || !p.IsZero() {
		t.Errorf("corner = %v, %v; want origin", p, ok)
	}
}

func TestBuildNames(t *testing.T) {
	d := mustBuild(t, `
layout: hcat
children:
  - shape: circle
    radius: 1
    name: a
  - shape: circle
    radius: 1
    name: b
`)
	for name, want := range map[diagrams.Name]diagrams.V2{"a": {}, "b": diagrams.Vec(2, 0)} {
		if p, ok := d.Names().Lookup(name); !ok || !p.Approx(want, 1e-9) {
			t.Errorf("%s = %v, want %v", name, p, want)
		}
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"shape", "shape: blob\n", ErrUnknownShape},
		{"layout", "layout: grid\nchildren: [{shape: circle, radius: 1}]\n", ErrUnknownLayout},
		{"align", "shape: circle\nradius: 1\nalign: middle\n", ErrUnknownAlign},
		{"color", "shape: circle\nradius: 1\nfill: notacolor\n", shape.ErrUnknownColor},
		{"origin", "shape: circle\nradius: 1\norigin: nowhere\n", diagrams.ErrUnknownName},
		{"text size", "shape: text\ntext: x\nsize: -1\n", shape.ErrInvalidSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := mustFail(t, tt.src); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBuildErrorPath(t *testing.T) {
	err := mustFail(t, `
layout: hcat
children:
  - shape: circle
    radius: 1
  - shape: blob
`)
	if !strings.Contains(err.Error(), "root.children[1]") {
		t.Errorf("error %q does not name the failing node", err)
	}
}
