package errors

import (
	"fmt"
	"strings"

	"blif/internal/ast"
	"github.com/fatih/color"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
)

// CompilerError is a structured diagnostic with optional hints
type CompilerError struct {
	Level       ErrorLevel
	Code        string       // Error code like E0102
	Message     string       // Primary message
	Position    ast.Position // Zero when the error has no source location
	Length      int          // Width of the marked region
	Suggestions []Suggestion
	Notes       []string
	HelpText    string
}

// Suggestion is a one-line hint shown under the source excerpt
type Suggestion struct {
	Message string
}

// ErrorReporter renders diagnostics against the source they refer to
type ErrorReporter struct {
	filename string
	lines    []string
}

// NewErrorReporter creates a reporter for one source file
func NewErrorReporter(filename, source string) *ErrorReporter {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError renders err as
//
//	error[E0102]: message
//	    --> file:line:col
//	     │
//	  12 │ source line
//	     │    ^^^
//
// followed by any suggestions, notes and help text.
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var out strings.Builder

	paint := levelColor(err.Level)
	if err.Code != "" {
		fmt.Fprintf(&out, "%s[%s]: %s\n", paint(string(err.Level)), err.Code, err.Message)
	} else {
		fmt.Fprintf(&out, "%s: %s\n", paint(string(err.Level)), err.Message)
	}

	line := err.Position.Line
	width := max(3, len(fmt.Sprint(line)))
	gutter := strings.Repeat(" ", width)

	if line > 0 {
		dim := color.New(color.Faint).SprintFunc()
		bold := color.New(color.Bold).SprintFunc()

		fmt.Fprintf(&out, "%s %s %s:%d:%d\n", gutter, dim("-->"), er.filename, line, err.Position.Column)
		fmt.Fprintf(&out, "%s %s\n", gutter, dim("│"))
		if line <= len(er.lines) {
			fmt.Fprintf(&out, "%s %s %s\n", bold(fmt.Sprintf("%*d", width, line)), dim("│"), er.lines[line-1])
			fmt.Fprintf(&out, "%s %s %s\n", gutter, dim("│"), marker(err.Position.Column, err.Length, paint))
		}
	}

	hint := color.New(color.FgCyan).SprintFunc()
	for _, s := range err.Suggestions {
		fmt.Fprintf(&out, "%s %s %s\n", gutter, hint("try:"), s.Message)
	}
	for _, note := range err.Notes {
		fmt.Fprintf(&out, "%s %s %s\n", gutter, color.New(color.FgBlue).Sprint("note:"), note)
	}
	if err.HelpText != "" {
		fmt.Fprintf(&out, "%s %s %s\n", gutter, color.New(color.FgGreen).Sprint("help:"), err.HelpText)
	}

	out.WriteString("\n")
	return out.String()
}

func levelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func marker(column, length int, paint func(...interface{}) string) string {
	return strings.Repeat(" ", max(0, column-1)) + paint(strings.Repeat("^", max(1, length)))
}
