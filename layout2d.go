package diagrams

// HCat lays ds out left to right.
func HCat[B any, R any](ds ...Diagram[B, V2, R]) Diagram[B, V2, R] {
	return Cat(UnitX, ds...)
}

// VCat lays ds out top to bottom.
func VCat[B any, R any](ds ...Diagram[B, V2, R]) Diagram[B, V2, R] {
	return Cat(UnitY, ds...)
}

// HSep lays ds out left to right with gap units between neighbours.
func HSep[B any, R any](gap float64, ds ...Diagram[B, V2, R]) Diagram[B, V2, R] {
	return Cat(UnitX, interleave(Strut[B, V2, R](UnitX.Scale(gap)), ds)...)
}

// VSep lays ds out top to bottom with gap units between neighbours.
func VSep[B any, R any](gap float64, ds ...Diagram[B, V2, R]) Diagram[B, V2, R] {
	return Cat(UnitY, interleave(Strut[B, V2, R](UnitY.Scale(gap)), ds)...)
}

func interleave[T any](sep T, xs []T) []T {
	if len(xs) < 2 {
		return xs
	}
	out := make([]T, 0, 2*len(xs)-1)
	for i, x := range xs {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, x)
	}
	return out
}

// Width returns the horizontal extent of d.
func Width[B any, R any](d Diagram[B, V2, R]) float64 {
	return d.Bounds().Extent(UnitX)
}

// Height returns the vertical extent of d.
func Height[B any, R any](d Diagram[B, V2, R]) float64 {
	return d.Bounds().Extent(UnitY)
}
