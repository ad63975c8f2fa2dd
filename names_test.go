package diagrams

import (
	"errors"
	"slices"
	"testing"
)

func TestNameSetUnionRightWins(t *testing.T) {
	a := NewNameSet(map[Name]V2{"x": Vec(1, 0), "shared": Vec(1, 1)})
	b := NewNameSet(map[Name]V2{"y": Vec(0, 1), "shared": Vec(2, 2)})

	u := a.Union(b)
	if got := u.Names(); !slices.Equal(got, []Name{"shared", "x", "y"}) {
		t.Errorf("Names() = %v", got)
	}
	if p, _ := u.Lookup("shared"); p != Vec(2, 2) {
		t.Errorf("shared = %v, want right operand's (2, 2)", p)
	}
	if p, _ := a.Lookup("shared"); p != Vec(1, 1) {
		t.Errorf("Union modified its receiver: shared = %v", p)
	}
}

func TestNameSetImmutable(t *testing.T) {
	src := map[Name]V2{"a": Vec(1, 2)}
	n := NewNameSet(src)
	src["a"] = Vec(9, 9)
	if p, _ := n.Lookup("a"); p != Vec(1, 2) {
		t.Errorf("NewNameSet did not copy its input: a = %v", p)
	}

	m := n.With("b", Vec(3, 4))
	if n.Len() != 1 || m.Len() != 2 {
		t.Errorf("With changed the receiver: len %d, %d", n.Len(), m.Len())
	}
	if w := m.Without("a"); w.Len() != 1 || m.Len() != 2 {
		t.Errorf("Without changed the receiver: len %d, %d", w.Len(), m.Len())
	}
}

func TestNameSetMap(t *testing.T) {
	n := NewNameSet(map[Name]V2{"a": Vec(1, 2), "b": Vec(-1, 0)})
	moved := n.Map(Translate(1, 1).Apply)
	for name, want := range map[Name]V2{"a": Vec(2, 3), "b": Vec(0, 1)} {
		if got, ok := moved.Lookup(name); !ok || got != want {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
	if p, _ := n.Lookup("a"); p != Vec(1, 2) {
		t.Errorf("Map modified its receiver: a = %v", p)
	}
}

func TestNameSetAllSorted(t *testing.T) {
	n := NewNameSet(map[Name]V1{"c": 3, "a": 1, "b": 2})
	var got []Name
	for name := range n.All() {
		got = append(got, name)
	}
	if !slices.Equal(got, []Name{"a", "b", "c"}) {
		t.Errorf("All() order = %v", got)
	}
}

func TestLExpr(t *testing.T) {
	names := NewNameSet(map[Name]V2{"a": Vec(2, 0), "b": Vec(0, 4)})

	tests := []struct {
		name string
		e    LExpr[V2]
		want V2
	}{
		{"origin", Origin[V2](), V2{}},
		{"const", Const(Vec(1, 1)), Vec(1, 1)},
		{"named", Named[V2]("a"), Vec(2, 0)},
		{"sum", Sum(Named[V2]("a"), Named[V2]("b")), Vec(2, 4)},
		{"diff", Diff(Named[V2]("b"), Named[V2]("a")), Vec(-2, 4)},
		{"scaled", Scaled(0.5, Named[V2]("b")), Vec(0, 2)},
		{"between", Between(Named[V2]("a"), Named[V2]("b"), 0.5), Vec(1, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.e.Eval(names)
			if err != nil {
				t.Fatalf("Eval: %v", err)
			}
			if !got.Approx(tt.want, eps) {
				t.Errorf("Eval = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLExprUnknownName(t *testing.T) {
	e := Sum(Const(Vec(1, 1)), Named[V2]("missing"))
	_, err := e.Eval(NameSet[V2]{})
	if !errors.Is(err, ErrUnknownName) {
		t.Fatalf("error = %v, want ErrUnknownName", err)
	}
	var ne *UnknownNameError
	if !errors.As(err, &ne) || ne.Name != "missing" {
		t.Errorf("error = %#v, want *UnknownNameError{missing}", err)
	}
}
