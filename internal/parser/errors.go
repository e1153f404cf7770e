package parser

import (
	"fmt"

	"blif/internal/errors"
)

// ParseError is a grammar or decoding failure. It aborts the whole parse.
type ParseError struct {
	errors.CompilerError
}

func (e *ParseError) Error() string {
	p := e.Position
	return fmt.Sprintf("%s:%d:%d: %s[%s]: %s", p.Filename, p.Line, p.Column, e.Level, e.Code, e.Message)
}

func parseError(ce errors.CompilerError) *ParseError {
	return &ParseError{CompilerError: ce}
}

// FileError is a failure to read the source file, kept apart from grammar errors
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to read file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Diagnostic converts the failure into a reportable CompilerError
func (e *FileError) Diagnostic() errors.CompilerError {
	return errors.ReadFailure(e.Path, e.Err)
}

// Diagnostic returns the underlying CompilerError for reporting
func (e *ParseError) Diagnostic() errors.CompilerError {
	return e.CompilerError
}
