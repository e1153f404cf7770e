package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// BlifLexer splits BLIF text into line-oriented tokens. Every input byte is
// covered by some rule, so lexing never fails on well-formed UTF-8.
var BlifLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments run to end of line
		{Name: "Comment", Pattern: `#[^\n]*`, Action: nil},

		// Dot keywords (order matters, must precede Word)
		{Name: "Keyword", Pattern: `\.[a-zA-Z_][^\s=#]*`, Action: nil},

		// Net names, cell names, truth-table rows
		{Name: "Word", Pattern: `[^\s=#]+`, Action: nil},

		{Name: "Assign", Pattern: `=`, Action: nil},

		// Newlines are significant, statements end with them
		{Name: "Newline", Pattern: `\n`, Action: nil},
		{Name: "Whitespace", Pattern: `[ \t\r\f\v]+`, Action: nil},
	},
})
