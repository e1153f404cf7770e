package ast

import "slices"

// Equal reports structural equality of two nodes: same variant and same
// payload, recursively for modules. Positions are not compared. Two nil
// nodes are equal.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !SameKind(a, b) {
		return false
	}

	switch x := a.(type) {
	case *Input:
		return x.Name == b.(*Input).Name
	case *Output:
		return x.Name == b.(*Output).Name
	case *Lut:
		y := b.(*Lut)
		return x.Output == y.Output &&
			slices.Equal(x.Inputs, y.Inputs) &&
			slices.EqualFunc(x.Table, y.Table, slices.Equal[[]uint8, uint8])
	case *Gate:
		y := b.(*Gate)
		return x.Cell == y.Cell && x.C == y.C && x.D == y.D && x.Q == y.Q &&
			equalOptional(x.R, y.R) && equalOptional(x.E, y.E)
	case *Latch:
		y := b.(*Latch)
		return x.Input == y.Input && x.Output == y.Output && x.Control == y.Control && x.Init == y.Init
	case *Subckt:
		y := b.(*Subckt)
		return x.Name == y.Name && slices.Equal(x.Conns, y.Conns)
	case *Module:
		y := b.(*Module)
		return x.Name == y.Name &&
			slices.Equal(x.Inputs, y.Inputs) &&
			slices.Equal(x.Outputs, y.Outputs) &&
			slices.EqualFunc(x.Elems, y.Elems, func(e, f Element) bool { return Equal(e, f) })
	}
	return false
}

// EqualModules compares two parse results element-wise with Equal
func EqualModules(a, b []*Module) bool {
	return slices.EqualFunc(a, b, func(x, y *Module) bool {
		if x == nil || y == nil {
			return x == y
		}
		return Equal(x, y)
	})
}

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
