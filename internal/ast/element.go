package ast

// Element is a non-port statement of a module body
type Element interface {
	Node
	isElement()
}

func (*Lut) isElement()    {}
func (*Gate) isElement()   {}
func (*Latch) isElement()  {}
func (*Subckt) isElement() {}

// Lut represents a `.names` statement and its on-set truth table
// Example: ".names a b y\n11 1"
type Lut struct {
	Pos    Position
	Inputs []string
	Output string
	Table  [][]uint8 // Each row has len(Inputs) bits
}

// Gate represents a technology-mapped flip-flop cell
// Example: ".gate $_DFF_P_ C=clk D=d Q=q"
type Gate struct {
	Pos  Position
	Cell string // Optional cell type token, empty when absent
	C    string
	D    string
	Q    string
	R    *string
	E    *string
}

// LatchInit is the initial-value field of a `.latch` statement
type LatchInit uint8

const (
	ZERO LatchInit = iota
	ONE
	DONTCARE
	UNKNOWN
)

// ParseLatchInit maps the textual init field onto a LatchInit. Anything other
// than "0", "1" or "2", including the empty string, is UNKNOWN.
func ParseLatchInit(s string) LatchInit {
	switch s {
	case "0":
		return ZERO
	case "1":
		return ONE
	case "2":
		return DONTCARE
	default:
		return UNKNOWN
	}
}

func (li LatchInit) String() string {
	switch li {
	case ZERO:
		return "ZERO"
	case ONE:
		return "ONE"
	case DONTCARE:
		return "DONTCARE"
	default:
		return "UNKNOWN"
	}
}

// Latch represents a `.latch` statement
// Example: ".latch n1 n2 re clk 2"
type Latch struct {
	Pos     Position
	Input   string
	Output  string
	Control string
	Init    LatchInit
}

// Conn binds a formal port of the instantiated model to an actual net
type Conn struct {
	Formal string
	Actual string
}

// Subckt represents a `.subckt` instantiation
// Example: ".subckt adder a=x b=y s=sum"
type Subckt struct {
	Pos   Position
	Name  string
	Conns []Conn // Order of first appearance, one entry per formal
}

// Bind connects formal to actual. A formal that is already bound keeps its
// place in Conns and takes the new actual.
func (s *Subckt) Bind(formal, actual string) {
	for i := range s.Conns {
		if s.Conns[i].Formal == formal {
			s.Conns[i].Actual = actual
			return
		}
	}
	s.Conns = append(s.Conns, Conn{Formal: formal, Actual: actual})
}

// Lookup returns the actual net bound to formal
func (s *Subckt) Lookup(formal string) (string, bool) {
	for _, c := range s.Conns {
		if c.Formal == formal {
			return c.Actual, true
		}
	}
	return "", false
}
