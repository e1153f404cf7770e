package ast

import (
	"fmt"
	"strings"
)

func (m *Module) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf(".model %s\n", m.Name))
	b.WriteString(portLine(".inputs", m.Inputs))
	b.WriteString(portLine(".outputs", m.Outputs))
	for _, elem := range m.Elems {
		b.WriteString(elem.String())
		b.WriteString("\n")
	}
	b.WriteString(".end\n")

	return b.String()
}

func portLine(keyword string, names []string) string {
	if len(names) == 0 {
		return keyword + "\n"
	}
	return keyword + " " + strings.Join(names, " ") + "\n"
}

func (i *Input) String() string {
	return i.Name
}

func (o *Output) String() string {
	return o.Name
}

func (l *Lut) String() string {
	var b strings.Builder

	b.WriteString(".names")
	for _, in := range l.Inputs {
		b.WriteString(" " + in)
	}
	b.WriteString(" " + l.Output)

	for _, row := range l.Table {
		b.WriteString("\n")
		for _, bit := range row {
			b.WriteByte('0' + bit)
		}
		// Zero-input rows carry only the output column
		if len(row) > 0 {
			b.WriteString(" ")
		}
		b.WriteString("1")
	}

	return b.String()
}

func (g *Gate) String() string {
	var b strings.Builder

	b.WriteString(".gate")
	if g.Cell != "" {
		b.WriteString(" " + g.Cell)
	}
	b.WriteString(fmt.Sprintf(" C=%s D=%s Q=%s", g.C, g.D, g.Q))
	if g.R != nil {
		b.WriteString(" R=" + *g.R)
	}
	if g.E != nil {
		b.WriteString(" E=" + *g.E)
	}

	return b.String()
}

func (l *Latch) String() string {
	if l.Control == "" && l.Init == UNKNOWN {
		return fmt.Sprintf(".latch %s %s", l.Input, l.Output)
	}
	return fmt.Sprintf(".latch %s %s re %s %d", l.Input, l.Output, l.Control, l.Init)
}

func (s *Subckt) String() string {
	var b strings.Builder

	b.WriteString(".subckt " + s.Name)
	for _, c := range s.Conns {
		b.WriteString(fmt.Sprintf(" %s=%s", c.Formal, c.Actual))
	}

	return b.String()
}
