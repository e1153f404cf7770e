package parser

import "blif/internal/ast"

// Statement keywords
const (
	kwModel   = ".model"
	kwInputs  = ".inputs"
	kwOutputs = ".outputs"
	kwNames   = ".names"
	kwSubckt  = ".subckt"
	kwGate    = ".gate"
	kwLatch   = ".latch"
	kwEnd     = ".end"
)

// field is one whitespace-separated token of a line
type field struct {
	text string
	col  int // 1-based column of the first byte
}

// statement is a tokenised statement line. args excludes the keyword.
type statement struct {
	keyword string
	kwCol   int
	args    []field
	pos     ast.Position // Start of the line
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v'
}

// splitFields tokenises line up to an inline '#' comment
func splitFields(line string) []field {
	line, _ = findOrEnd(line, "#")
	var fields []field
	for i := 0; i < len(line); {
		if isSpace(line[i]) {
			i++
			continue
		}
		start := i
		for i < len(line) && !isSpace(line[i]) {
			i++
		}
		fields = append(fields, field{text: line[start:i], col: start + 1})
	}
	return fields
}

func newStatement(line string, pos ast.Position) statement {
	fields := splitFields(line)
	if len(fields) == 0 {
		return statement{kwCol: 1, pos: pos}
	}
	return statement{keyword: fields[0].text, kwCol: fields[0].col, args: fields[1:], pos: pos}
}

// at returns the position of column col on the statement's line
func (s statement) at(col int) ast.Position {
	p := s.pos
	p.Offset += col - 1
	p.Column = col
	return p
}

// keywordPos is the position of the statement keyword
func (s statement) keywordPos() ast.Position {
	return s.at(s.kwCol)
}

func (s statement) texts() []string {
	out := make([]string, len(s.args))
	for i, f := range s.args {
		out[i] = f.text
	}
	return out
}
