package parser

import (
	"strings"

	"blif/internal/ast"
)

// Gate roles. Yosys maps flip-flops onto cells such as
//
//	$_DFF_P_      C D Q
//	$_DFFE_PN_    C D E Q
//	$_SDFF_NP0_   C D Q R
//	$_SDFFE_PP0N_ C D E Q R
const (
	roleClock  = "C"
	roleData   = "D"
	roleOutput = "Q"
	roleReset  = "R"
	roleEnable = "E"
)

// parseGate parses a `.gate` statement. Fields are Role=net pairs in any
// order; an optional leading token without '=' names the cell. Unknown roles
// and malformed pairs are skipped.
func parseGate(stmt statement) *ast.Gate {
	g := &ast.Gate{Pos: stmt.keywordPos()}

	for i, f := range stmt.args {
		if i == 0 && !strings.Contains(f.text, "=") {
			g.Cell = f.text
			continue
		}
		if strings.Count(f.text, "=") != 1 {
			log.Debugf("%s:%d: ignoring gate field %q", stmt.pos.Filename, stmt.pos.Line, f.text)
			continue
		}

		role, net, _ := strings.Cut(f.text, "=")
		switch role {
		case roleClock:
			g.C = net
		case roleData:
			g.D = net
		case roleOutput:
			g.Q = net
		case roleReset:
			g.R = &net
		case roleEnable:
			g.E = &net
		default:
			log.Debugf("%s:%d: ignoring unknown gate role %q", stmt.pos.Filename, stmt.pos.Line, role)
		}
	}

	return g
}
