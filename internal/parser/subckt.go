package parser

import (
	"strings"

	"blif/internal/ast"
	"blif/internal/errors"
)

// parseSubckt parses `.subckt model formal=actual ...`. Connections keep the
// order in which formals first appear; a repeated formal takes the last
// actual. Nothing is checked against the model.
func parseSubckt(stmt statement) (*ast.Subckt, error) {
	if len(stmt.args) == 0 {
		return nil, parseError(errors.MissingField(kwSubckt, "model name", stmt.keywordPos()))
	}

	s := &ast.Subckt{
		Pos:   stmt.keywordPos(),
		Name:  stmt.args[0].text,
		Conns: make([]ast.Conn, 0, len(stmt.args)-1),
	}
	for _, f := range stmt.args[1:] {
		formal, actual, ok := strings.Cut(f.text, "=")
		if !ok {
			return nil, parseError(errors.MalformedConnection(f.text, stmt.at(f.col)))
		}
		s.Bind(formal, actual)
	}

	return s, nil
}
