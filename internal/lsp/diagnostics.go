package lsp

import (
	stderrors "errors"

	"blif/internal/errors"
	"blif/internal/parser"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// reportable is implemented by parser.ParseError and parser.FileError
type reportable interface {
	Diagnostic() errors.CompilerError
}

// ConvertParseError transforms a parse failure into LSP diagnostics. The
// parser stops at its first error, so there is at most one entry.
func ConvertParseError(err error) []protocol.Diagnostic {
	if err == nil {
		return []protocol.Diagnostic{}
	}

	var pe *parser.ParseError
	var r reportable
	switch {
	case stderrors.As(err, &pe):
		return []protocol.Diagnostic{toDiagnostic(pe.Diagnostic(), "blif-parser")}
	case stderrors.As(err, &r):
		return []protocol.Diagnostic{toDiagnostic(r.Diagnostic(), "blif")}
	}

	return []protocol.Diagnostic{{
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("blif"),
		Message:  err.Error(),
	}}
}

func toDiagnostic(ce errors.CompilerError, source string) protocol.Diagnostic {
	// LSP positions are 0-based
	line := uint32(max(0, ce.Position.Line-1))
	start := uint32(max(0, ce.Position.Column-1))

	message := ce.Message
	if ce.HelpText != "" {
		message += "\n" + ce.HelpText
	}

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: start},
			End:   protocol.Position{Line: line, Character: start + uint32(max(1, ce.Length))},
		},
		Severity: ptrSeverity(severity(ce.Level)),
		Code:     &protocol.IntegerOrString{Value: ce.Code},
		Source:   ptrString(source),
		Message:  message,
	}
}

func severity(level errors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case errors.Warning:
		return protocol.DiagnosticSeverityWarning
	case errors.Note:
		return protocol.DiagnosticSeverityInformation
	}
	return protocol.DiagnosticSeverityError
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
