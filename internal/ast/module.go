package ast

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Module represents one `.model ... .end` block
// Example: ".model top\n.inputs a b\n.outputs y\n.names a b y\n11 1\n.end"
type Module struct {
	Pos     Position
	EndPos  Position
	Name    string
	Inputs  []string
	Outputs []string
	Elems   []Element // Statements in source order
}

// Input is a module-level primary input port
type Input struct {
	Pos  Position
	Name string
}

// Output is a module-level primary output port
type Output struct {
	Pos  Position
	Name string
}

// Ports returns the module's port lists as Input and Output nodes, inputs
// first. The nodes carry the module position.
func (m *Module) Ports() []Node {
	ports := make([]Node, 0, len(m.Inputs)+len(m.Outputs))
	for _, name := range m.Inputs {
		ports = append(ports, &Input{Pos: m.Pos, Name: name})
	}
	for _, name := range m.Outputs {
		ports = append(ports, &Output{Pos: m.Pos, Name: name})
	}
	return ports
}

// Stats counts the module's elements by kind
func (m *Module) Stats() map[NodeType]int {
	stats := make(map[NodeType]int)
	for _, elem := range m.Elems {
		stats[KindOf(elem)]++
	}
	return stats
}
