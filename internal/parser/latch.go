package parser

import (
	"blif/internal/ast"
	"blif/internal/errors"
)

// Positional fields of `.latch input output type control init`. The type
// field is read and discarded.
const (
	latchInput = iota
	latchOutput
	latchType
	latchControl
	latchInit
)

func parseLatch(stmt statement) (*ast.Latch, error) {
	args := stmt.args
	switch len(args) {
	case 0:
		return nil, parseError(errors.MissingField(kwLatch, "input net", stmt.keywordPos()))
	case 1:
		return nil, parseError(errors.MissingField(kwLatch, "output net", stmt.keywordPos()))
	}

	l := &ast.Latch{
		Pos:    stmt.keywordPos(),
		Input:  args[latchInput].text,
		Output: args[latchOutput].text,
		Init:   ast.UNKNOWN,
	}
	if len(args) > latchControl {
		l.Control = args[latchControl].text
	}
	if len(args) > latchInit {
		l.Init = ast.ParseLatchInit(args[latchInit].text)
		if l.Init == ast.ONE {
			return nil, parseError(errors.LatchInitOne(stmt.at(args[latchInit].col)))
		}
	}

	return l, nil
}
