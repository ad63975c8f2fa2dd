package diagrams

import (
	"fmt"
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

// V1 is the real line, a vector space without a stacking notion.
type V1 float64

func (v V1) Add(w V1) V1        { return v + w }
func (v V1) Neg() V1            { return -v }
func (v V1) Scale(s float64) V1 { return V1(float64(v) * s) }
func (v V1) Dot(w V1) float64   { return float64(v) * float64(w) }

// recorder is a backend that records every render call.
type recorder struct {
	calls []string
}

// dot is a point primitive that renders itself on a recorder.
type dot struct {
	ID string
	At V2
}

func (d dot) Transform(t Transformation[V2]) dot {
	d.At = t.Apply(d.At)
	return d
}

func (d dot) Render(r *recorder) string {
	s := fmt.Sprintf("%s@%.6f,%.6f", d.ID, d.At.X, d.At.Y)
	r.calls = append(r.calls, s)
	return s
}

// marker is a point on the line with no renderer of its own.
type marker float64

func (m marker) Transform(t Transformation[V1]) marker {
	return marker(t.Apply(V1(m)))
}

type testDiagram = Diagram[*recorder, V2, string]

// discBounds is the bounding function of a disc.
func discBounds(center V2, r float64) Bounds[V2] {
	return NewBounds(func(v V2) float64 {
		vv := v.Dot(v)
		if vv == 0 {
			return 0
		}
		return (center.Dot(v) + r*v.Length()) / vv
	})
}

// disc returns a diagram holding one dot at center, bounded by a disc.
func disc(t *testing.T, id string, center V2, r float64) testDiagram {
	t.Helper()
	d, err := NewDiagram(
		[]Prim[*recorder, V2, string]{Wrap[*recorder, V2, string](dot{ID: id, At: center})},
		discBounds(center, r),
		NameSet[V2]{},
	)
	if err != nil {
		t.Fatalf("NewDiagram: %v", err)
	}
	return d
}

// directions returns sample directions of assorted lengths.
func directions() []V2 {
	var out []V2
	for i := range 16 {
		length := 0.5 + float64(i%3)
		out = append(out, FromAngle(float64(i)*math.Pi/8).Scale(length))
	}
	return out
}

func rendered(d testDiagram) []string {
	return d.Render(&recorder{})
}

// assertSameDiagram compares primitives, bounds at sample directions and
// names.
func assertSameDiagram(t *testing.T, got, want testDiagram) {
	t.Helper()
	gp, wp := rendered(got), rendered(want)
	if fmt.Sprint(gp) != fmt.Sprint(wp) {
		t.Errorf("prims = %v, want %v", gp, wp)
	}
	for _, v := range directions() {
		if g, w := got.Bounds().At(v), want.Bounds().At(v); !approx(g, w) {
			t.Errorf("bounds at %v = %v, want %v", v, g, w)
		}
	}
	gn, wn := got.Names(), want.Names()
	if fmt.Sprint(gn.Names()) != fmt.Sprint(wn.Names()) {
		t.Fatalf("names = %v, want %v", gn.Names(), wn.Names())
	}
	for name, p := range wn.All() {
		q, _ := gn.Lookup(name)
		if !q.Approx(p, eps) {
			t.Errorf("name %q = %v, want %v", name, q, p)
		}
	}
}
