package parser

import (
	"blif/internal/ast"
	"blif/internal/errors"
)

// parseModule parses one `.model ... .end` block and leaves the cursor at the
// next `.model` line, or at end of input.
func parseModule(c *cursor) (*ast.Module, error) {
	header := newStatement(c.next())
	if header.keyword != kwModel {
		return nil, parseError(errors.ExpectedKeyword(kwModel, header.keyword, header.keywordPos()))
	}
	if len(header.args) == 0 {
		return nil, parseError(errors.MissingField(kwModel, "name", header.keywordPos()))
	}

	m := &ast.Module{
		Pos:  header.keywordPos(),
		Name: header.args[0].text,
	}

	parsePorts(c, m)

	elems, end, err := parseBody(c)
	if err != nil {
		return nil, err
	}
	if end == nil {
		return nil, parseError(errors.MissingEnd(m.Name, m.Pos))
	}
	m.Elems = elems
	m.EndPos = end.keywordPos()

	// Anything between .end and the next .model is not part of any model
	for !c.atEnd() && !startsModel(c.peek()) {
		c.next()
	}

	return m, nil
}

// parsePorts reads the `.inputs` and `.outputs` lines that open a model body.
// Either may be absent, leaving that port list empty, and either may repeat,
// appending to it. The first other statement ends the port section.
func parsePorts(c *cursor, m *ast.Module) {
	m.Inputs, m.Outputs = []string{}, []string{}
	for {
		c.skipBlank()
		if c.atEnd() {
			return
		}
		stmt := newStatement(c.peek(), c.pos())
		switch stmt.keyword {
		case kwInputs:
			m.Inputs = append(m.Inputs, stmt.texts()...)
		case kwOutputs:
			m.Outputs = append(m.Outputs, stmt.texts()...)
		default:
			return
		}
		c.next()
	}
}

func startsModel(line string) bool {
	return newStatement(line, ast.Position{}).keyword == kwModel
}

// parseBody dispatches statements on their leading keyword until a `.end`
// line or end of input. end is nil when input ran out first. Unrecognised
// statements are skipped.
func parseBody(c *cursor) (elems []ast.Element, end *statement, err error) {
	for !c.atEnd() {
		line, pos := c.next()
		if isBlank(line) {
			continue
		}

		stmt := newStatement(line, pos)
		var elem ast.Element
		switch stmt.keyword {
		case kwEnd:
			return elems, &stmt, nil
		case kwNames:
			elem, err = parseLut(c, stmt)
		case kwSubckt:
			elem, err = parseSubckt(stmt)
		case kwGate:
			elem = parseGate(stmt)
		case kwLatch:
			elem, err = parseLatch(stmt)
		default:
			log.Debugf("%s:%d: skipping unsupported statement %q", pos.Filename, pos.Line, stmt.keyword)
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		elems = append(elems, elem)
	}
	return elems, nil, nil
}
