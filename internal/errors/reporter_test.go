package errors

import (
	"fmt"
	"testing"

	"blif/internal/ast"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestErrorReporter(t *testing.T) {
	source := ".model top\n.inputs a b\n.outputs y\n.names a b y\n1x 1\n.end\n"

	reporter := NewErrorReporter("top.blif", source)
	err := InvalidBit('x', ast.Position{Line: 5, Column: 2})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorInvalidBit+"]")
	assert.Contains(t, formatted, "invalid truth-table character 'x'")
	assert.Contains(t, formatted, "top.blif:5:2")
	assert.Contains(t, formatted, "1x 1")
	assert.Contains(t, formatted, "    │  ^")
}

func TestErrorReporterWithoutPosition(t *testing.T) {
	reporter := NewErrorReporter("missing.blif", "")
	formatted := reporter.FormatError(ReadFailure("missing.blif", fmt.Errorf("no such file")))

	assert.Contains(t, formatted, "error[E0900]: failed to read file missing.blif: no such file")
	assert.NotContains(t, formatted, "-->")
}

func TestErrorReporterCRLFSource(t *testing.T) {
	reporter := NewErrorReporter("crlf.blif", ".model m\r\n.inputs a\r\n")
	formatted := reporter.FormatError(MissingEnd("m", ast.Position{Line: 1, Column: 1}))

	assert.Contains(t, formatted, ".model m\n")
	assert.NotContains(t, formatted, "\r")
}

func TestParseErrorConstructors(t *testing.T) {
	pos := ast.Position{Line: 4, Column: 1}

	err := LatchInitOne(pos)
	assert.Equal(t, ErrorLatchInitOne, err.Code)
	assert.NotEmpty(t, err.HelpText)

	err = InvalidBit('-', pos)
	assert.Len(t, err.Notes, 1, "Don't-care characters get an explanatory note")

	err = MalformedConnection("abc", pos)
	assert.Equal(t, 3, err.Length)
	assert.Len(t, err.Suggestions, 1)

	err = ExpectedKeyword(".inputs", ".outputs", pos)
	assert.Equal(t, "expected '.inputs', found '.outputs'", err.Message)

	err = ExpectedKeyword(".model", "", pos)
	assert.Equal(t, "expected '.model'", err.Message)

	err = RowWidth(2, 3, pos)
	assert.Contains(t, err.Message, "2 columns")
}

func TestErrorCodeMetadata(t *testing.T) {
	assert.Equal(t, "Parser", GetErrorCategory(ErrorRowWidth))
	assert.Equal(t, "Tooling", GetErrorCategory(ErrorReadFile))
	assert.Equal(t, "Unknown", GetErrorCategory("E0500"))
	assert.Equal(t, "Truth-table entries must be 0 or 1", GetErrorDescription(ErrorInvalidBit))
	assert.Equal(t, "Unknown error code", GetErrorDescription("E9999"))
}
