package ast

// Reserved net names driven by constant cells
const (
	FalseNet = "$false"
	TrueNet  = "$true"
)

type NetKind int

const (
	NamedNet NetKind = iota
	ConstFalse
	ConstTrue
)

// Net is a classified net reference. Constant drivers are recognised once,
// when the reference is parsed.
type Net struct {
	Kind NetKind
	Name string
}

func ParseNet(name string) Net {
	switch name {
	case FalseNet:
		return Net{Kind: ConstFalse, Name: name}
	case TrueNet:
		return Net{Kind: ConstTrue, Name: name}
	default:
		return Net{Kind: NamedNet, Name: name}
	}
}

func (n Net) IsConst() bool {
	return n.Kind == ConstFalse || n.Kind == ConstTrue
}

// Value returns the constant level of a constant net. ok is false for
// named nets.
func (n Net) Value() (v uint8, ok bool) {
	switch n.Kind {
	case ConstFalse:
		return 0, true
	case ConstTrue:
		return 1, true
	default:
		return 0, false
	}
}

func (n Net) String() string {
	return n.Name
}
