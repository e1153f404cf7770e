package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestKindOf(t *testing.T) {
	cases := []struct {
		node Node
		want NodeType
	}{
		{&Input{Name: "a"}, INPUT},
		{&Output{Name: "y"}, OUTPUT},
		{&Lut{}, LUT},
		{&Gate{}, GATE},
		{&Latch{}, LATCH},
		{&Subckt{}, SUBCKT},
		{&Module{}, MODULE},
		{nil, ILLEGAL},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, KindOf(c.node))
	}
	assert.Equal(t, "SUBCKT", SUBCKT.String())
	assert.Equal(t, "NodeType(?)", NodeType(99).String())
}

func TestSameKindIgnoresPayload(t *testing.T) {
	a := &Lut{Inputs: []string{"a"}, Output: "y", Table: [][]uint8{{1}}}
	b := &Lut{Inputs: []string{"b", "c"}, Output: "z"}

	assert.True(t, SameKind(a, b), "Both are LUTs")
	assert.False(t, Equal(a, b), "Payloads differ")
	assert.False(t, SameKind(a, &Gate{}))
}

func TestEqualIsStructural(t *testing.T) {
	a := &Gate{Pos: Position{Line: 3}, C: "clk", D: "d", Q: "q", R: strPtr("rst")}
	b := &Gate{Pos: Position{Line: 9}, C: "clk", D: "d", Q: "q", R: strPtr("rst")}
	assert.True(t, Equal(a, b), "Positions must not take part in equality")

	b.E = strPtr("en")
	assert.False(t, Equal(a, b), "Optional enable differs")

	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(a, nil))
}

func TestEqualModuleComparesElementsInOrder(t *testing.T) {
	lut := &Lut{Inputs: []string{"a"}, Output: "y", Table: [][]uint8{{1}}}
	latch := &Latch{Input: "y", Output: "q", Control: "clk", Init: ZERO}

	m1 := &Module{Name: "top", Inputs: []string{"a", "clk"}, Outputs: []string{"q"}, Elems: []Element{lut, latch}}
	m2 := &Module{Name: "top", Inputs: []string{"a", "clk"}, Outputs: []string{"q"}, Elems: []Element{lut, latch}}
	m3 := &Module{Name: "top", Inputs: []string{"a", "clk"}, Outputs: []string{"q"}, Elems: []Element{latch, lut}}

	assert.True(t, Equal(m1, m2))
	assert.False(t, Equal(m1, m3), "Element order is significant")
	assert.True(t, EqualModules([]*Module{m1}, []*Module{m2}))
	assert.False(t, EqualModules([]*Module{m1}, []*Module{m1, m2}))
}

func TestParseNet(t *testing.T) {
	assert.Equal(t, Net{Kind: ConstFalse, Name: "$false"}, ParseNet("$false"))
	assert.Equal(t, Net{Kind: ConstTrue, Name: "$true"}, ParseNet("$true"))
	assert.Equal(t, Net{Kind: NamedNet, Name: "$undef"}, ParseNet("$undef"))

	v, ok := ParseNet("$true").Value()
	assert.True(t, ok)
	assert.Equal(t, uint8(1), v)

	_, ok = ParseNet("n1").Value()
	assert.False(t, ok)
	assert.False(t, ParseNet("n1").IsConst())
}

func TestParseLatchInit(t *testing.T) {
	assert.Equal(t, ZERO, ParseLatchInit("0"))
	assert.Equal(t, ONE, ParseLatchInit("1"))
	assert.Equal(t, DONTCARE, ParseLatchInit("2"))
	assert.Equal(t, UNKNOWN, ParseLatchInit("3"))
	assert.Equal(t, UNKNOWN, ParseLatchInit(""))
	assert.Equal(t, "DONTCARE", DONTCARE.String())
}

func TestSubcktLookup(t *testing.T) {
	s := &Subckt{Name: "adder"}
	s.Bind("a", "x")
	s.Bind("b", "y")
	s.Bind("a", "z")

	assert.Equal(t, []Conn{{"a", "z"}, {"b", "y"}}, s.Conns,
		"Rebinding keeps the first position and takes the last actual")

	actual, ok := s.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "z", actual)

	_, ok = s.Lookup("c")
	assert.False(t, ok)
}

func TestModulePortsAndStats(t *testing.T) {
	m := &Module{
		Name:    "top",
		Inputs:  []string{"a", "b"},
		Outputs: []string{"y"},
		Elems: []Element{
			&Lut{Output: "n1"},
			&Lut{Output: "y"},
			&Gate{C: "clk"},
		},
	}

	ports := m.Ports()
	assert.Len(t, ports, 3)
	assert.Equal(t, INPUT, KindOf(ports[0]))
	assert.Equal(t, "b", ports[1].String())
	assert.Equal(t, OUTPUT, KindOf(ports[2]))

	stats := m.Stats()
	assert.Equal(t, 2, stats[LUT])
	assert.Equal(t, 1, stats[GATE])
	assert.Equal(t, 0, stats[LATCH])
}
