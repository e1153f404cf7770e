package parser

import (
	"strings"

	"blif/internal/ast"
)

// findOrEnd splits s at the first occurrence of delim, which stays at the
// start of after. When delim is absent the whole input is returned as before
// and after is empty, so end of input acts as a boundary instead of an error.
func findOrEnd(s, delim string) (before, after string) {
	if i := strings.Index(s, delim); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}

// takeLine splits s after the first newline, consuming it. Without a newline
// the whole input is the line. A trailing carriage return is dropped.
func takeLine(s string) (line, rest string) {
	line, rest = findOrEnd(s, "\n")
	return strings.TrimSuffix(line, "\r"), strings.TrimPrefix(rest, "\n")
}

// cursor walks a source line by line and keeps track of where it is
type cursor struct {
	filename string
	src      string
	off      int // Offset of the unread input
	line     int // 1-based line number at off
}

func newCursor(filename, src string) *cursor {
	return &cursor{filename: filename, src: src, line: 1}
}

func (c *cursor) rest() string {
	return c.src[c.off:]
}

func (c *cursor) atEnd() bool {
	return c.off >= len(c.src)
}

func (c *cursor) pos() ast.Position {
	return ast.Position{Filename: c.filename, Offset: c.off, Line: c.line, Column: 1}
}

// peek returns the next line without consuming it
func (c *cursor) peek() string {
	line, _ := takeLine(c.rest())
	return line
}

// next consumes the next line and returns it with the position of its start
func (c *cursor) next() (string, ast.Position) {
	pos := c.pos()
	line, rest := takeLine(c.rest())
	c.off = len(c.src) - len(rest)
	c.line++
	return line, pos
}

// skipBlank consumes blank lines and '#' comment lines
func (c *cursor) skipBlank() {
	for !c.atEnd() && isBlank(c.peek()) {
		c.next()
	}
}

func isBlank(line string) bool {
	trimmed := strings.TrimLeft(line, " \t\r\f\v")
	return trimmed == "" || trimmed[0] == '#'
}
