package errors

import (
	"fmt"

	"blif/internal/ast"
)

// ErrorBuilder provides a fluent interface for creating errors with notes and help
type ErrorBuilder struct {
	err CompilerError
}

// NewError creates a new error builder
func NewError(code, message string, pos ast.Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *ErrorBuilder) WithLength(length int) *ErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *ErrorBuilder) WithSuggestion(message string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithNote adds a note to the error
func (b *ErrorBuilder) WithNote(note string) *ErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *ErrorBuilder) WithHelp(help string) *ErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *ErrorBuilder) Build() CompilerError {
	return b.err
}

// Common parser error constructors

// ExpectedKeyword reports a line that should have started with keyword
func ExpectedKeyword(keyword, found string, pos ast.Position) CompilerError {
	msg := fmt.Sprintf("expected '%s'", keyword)
	if found != "" {
		msg = fmt.Sprintf("expected '%s', found '%s'", keyword, found)
	}
	return NewError(ErrorExpectedKeyword, msg, pos).
		WithLength(max(1, len(found))).
		Build()
}

// MissingField reports a statement lacking a mandatory field
func MissingField(statement, field string, pos ast.Position) CompilerError {
	return NewError(ErrorMissingField, fmt.Sprintf("'%s' is missing its %s", statement, field), pos).
		WithLength(len(statement)).
		Build()
}

// InvalidBit reports a truth-table character that is neither 0 nor 1
func InvalidBit(ch byte, pos ast.Position) CompilerError {
	builder := NewError(ErrorInvalidBit, fmt.Sprintf("invalid truth-table character %q", ch), pos)
	if ch == '-' {
		builder = builder.WithNote("don't-care entries are not supported; expand the cube into explicit rows")
	}
	return builder.Build()
}

// RowWidth reports a truth-table row whose width differs from the input count
func RowWidth(got, want int, pos ast.Position) CompilerError {
	return NewError(ErrorRowWidth, fmt.Sprintf("truth-table row has %d columns, LUT has %d inputs", got, want), pos).
		WithLength(max(1, got)).
		Build()
}

// LatchInitOne reports a latch declared with initial value 1
func LatchInitOne(pos ast.Position) CompilerError {
	return NewError(ErrorLatchInitOne, "latch initial value 1 is not supported", pos).
		WithHelp("reset-to-one behaviour is encoded in the LUT driving the latch, not in its init field").
		Build()
}

// MalformedConnection reports a subcircuit connection token without '='
func MalformedConnection(token string, pos ast.Position) CompilerError {
	return NewError(ErrorMalformedConnection, fmt.Sprintf("malformed connection '%s'", token), pos).
		WithLength(len(token)).
		WithSuggestion("connections are written as formal=actual").
		Build()
}

// MissingEnd reports a model body with no terminating .end line
func MissingEnd(model string, pos ast.Position) CompilerError {
	return NewError(ErrorMissingEnd, fmt.Sprintf("model '%s' is not terminated by '.end'", model), pos).
		WithLength(len(".model")).
		Build()
}

// ReadFailure reports a source file that could not be read
func ReadFailure(path string, cause error) CompilerError {
	return CompilerError{
		Level:   Error,
		Code:    ErrorReadFile,
		Message: fmt.Sprintf("failed to read file %s: %v", path, cause),
	}
}
