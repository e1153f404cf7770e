package ast

type NodeType int

// NodeType is the payload-free discriminant of a Node. It is always derived
// from a node through NodeType() or KindOf, never tracked separately.
const (
	ILLEGAL NodeType = iota

	// Ports
	INPUT
	OUTPUT

	// Statements
	LUT
	GATE
	LATCH
	SUBCKT

	// High-level constructs
	MODULE
)

var nodeTypeNames = [...]string{
	ILLEGAL: "ILLEGAL",
	INPUT:   "INPUT",
	OUTPUT:  "OUTPUT",
	LUT:     "LUT",
	GATE:    "GATE",
	LATCH:   "LATCH",
	SUBCKT:  "SUBCKT",
	MODULE:  "MODULE",
}

func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeTypeNames) {
		return "NodeType(?)"
	}
	return nodeTypeNames[t]
}

// KindOf projects a node onto its kind tag. A nil node is ILLEGAL.
func KindOf(n Node) NodeType {
	if n == nil {
		return ILLEGAL
	}
	return n.NodeType()
}

// SameKind reports whether a and b are the same variant, ignoring payloads.
func SameKind(a, b Node) bool {
	return KindOf(a) == KindOf(b)
}
