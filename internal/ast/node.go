package ast

type Node interface {
	NodePos() Position
	NodeType() NodeType
	String() string
}

func (i *Input) NodePos() Position { return i.Pos }
func (*Input) NodeType() NodeType  { return INPUT }

func (o *Output) NodePos() Position { return o.Pos }
func (*Output) NodeType() NodeType  { return OUTPUT }

func (l *Lut) NodePos() Position { return l.Pos }
func (*Lut) NodeType() NodeType  { return LUT }

func (g *Gate) NodePos() Position { return g.Pos }
func (*Gate) NodeType() NodeType  { return GATE }

func (l *Latch) NodePos() Position { return l.Pos }
func (*Latch) NodeType() NodeType  { return LATCH }

func (s *Subckt) NodePos() Position { return s.Pos }
func (*Subckt) NodeType() NodeType  { return SUBCKT }

func (m *Module) NodePos() Position { return m.Pos }
func (*Module) NodeType() NodeType  { return MODULE }
