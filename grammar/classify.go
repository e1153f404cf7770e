package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Class is the editor-facing role of a token within its statement
type Class int

const (
	ClassKeyword Class = iota
	ClassComment
	ClassNet    // signal names
	ClassBits   // truth-table rows and latch init values
	ClassFormal // the left side of formal=actual
	ClassName   // model, subcircuit, cell and latch type names
)

func (c Class) String() string {
	switch c {
	case ClassKeyword:
		return "keyword"
	case ClassComment:
		return "comment"
	case ClassNet:
		return "net"
	case ClassBits:
		return "bits"
	case ClassFormal:
		return "formal"
	case ClassName:
		return "name"
	}
	return "unknown"
}

// Token is a classified lexeme. Line and Column are 1-based.
type Token struct {
	Class  Class
	Text   string
	Line   int
	Column int
}

var (
	symbols    = BlifLexer.Symbols()
	tokComment = symbols["Comment"]
	tokKeyword = symbols["Keyword"]
	tokWord    = symbols["Word"]
	tokAssign  = symbols["Assign"]
	tokNewline = symbols["Newline"]
)

// Classify lexes src and tags every keyword, word and comment with the role
// it plays in its statement. Assignments and whitespace are dropped.
func Classify(filename, src string) ([]Token, error) {
	lex, err := BlifLexer.Lex(filename, strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	all, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}

	var (
		out     []Token
		line    []lexer.Token
		inTable bool
	)
	flush := func() {
		if len(line) > 0 {
			out, inTable = classifyLine(out, line, inTable)
			line = line[:0]
		}
	}
	for _, tok := range all {
		switch tok.Type {
		case tokNewline, lexer.EOF:
			flush()
		case tokComment:
			flush()
			out = append(out, newToken(ClassComment, tok))
		case tokKeyword, tokWord, tokAssign:
			line = append(line, tok)
		}
	}
	flush()

	return out, nil
}

// classifyLine tags the tokens of one line. inTable reports whether the line
// follows a `.names` header, and the returned flag carries that to the next line.
func classifyLine(out []Token, line []lexer.Token, inTable bool) ([]Token, bool) {
	head := line[0]
	if head.Type != tokKeyword {
		class := ClassNet
		if inTable {
			class = ClassBits
		}
		for _, tok := range line {
			if tok.Type != tokAssign {
				out = append(out, newToken(class, tok))
			}
		}
		return out, inTable
	}

	out = append(out, newToken(ClassKeyword, head))
	keyword := head.Value
	index := 0
	for i := 1; i < len(line); i++ {
		tok := line[i]
		if tok.Type == tokAssign {
			continue
		}
		assignNext := i+1 < len(line) && line[i+1].Type == tokAssign
		assignPrev := line[i-1].Type == tokAssign
		out = append(out, newToken(argClass(keyword, index, assignPrev, assignNext), tok))
		if !assignPrev {
			index++
		}
	}

	return out, keyword == ".names"
}

// argClass picks the class of the index-th argument of keyword
func argClass(keyword string, index int, assignPrev, assignNext bool) Class {
	switch {
	case assignPrev:
		return ClassNet
	case assignNext:
		return ClassFormal
	}

	switch keyword {
	case ".model", ".subckt", ".gate":
		if index == 0 {
			return ClassName
		}
	case ".latch":
		switch index {
		case 2:
			return ClassName
		case 4:
			return ClassBits
		}
	}
	return ClassNet
}

func newToken(class Class, tok lexer.Token) Token {
	return Token{
		Class:  class,
		Text:   tok.Value,
		Line:   tok.Pos.Line,
		Column: tok.Pos.Column,
	}
}
