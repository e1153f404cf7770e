package lsp

import (
	"slices"

	"blif/grammar"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// SemanticTokenTypes is the legend advertised to clients
var SemanticTokenTypes = []string{
	"keyword",
	"comment",
	"variable",
	"number",
	"property",
	"type",
}

var SemanticTokenModifiers = []string{
	"declaration",
}

// SemanticToken is one entry before delta encoding. Line and StartChar are 0-based.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

var classTokenType = map[grammar.Class]string{
	grammar.ClassKeyword: "keyword",
	grammar.ClassComment: "comment",
	grammar.ClassNet:     "variable",
	grammar.ClassBits:    "number",
	grammar.ClassFormal:  "property",
	grammar.ClassName:    "type",
}

// TextDocumentSemanticTokensFull highlights the whole document from its
// lexical structure. It works on unparseable buffers too.
func (h *BlifHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Debugf("TextDocumentSemanticTokensFull called for: %s", params.TextDocument.URI)

	text, _, err := h.document(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	tokens, err := collectSemanticTokens(params.TextDocument.URI, text)
	if err != nil {
		return nil, err
	}

	return &protocol.SemanticTokens{Data: encodeTokens(tokens)}, nil
}

func collectSemanticTokens(filename, text string) ([]SemanticToken, error) {
	classified, err := grammar.Classify(filename, text)
	if err != nil {
		return nil, err
	}

	tokens := make([]SemanticToken, 0, len(classified))
	var statement string
	for _, tok := range classified {
		if tok.Class == grammar.ClassKeyword {
			statement = tok.Text
		}
		modifiers := 0
		// The name on a .model line declares the model
		if tok.Class == grammar.ClassName && statement == ".model" {
			modifiers = 1
		}
		tokens = append(tokens, SemanticToken{
			Line:           uint32(tok.Line - 1),
			StartChar:      uint32(tok.Column - 1),
			Length:         uint32(len(tok.Text)),
			TokenType:      slices.Index(SemanticTokenTypes, classTokenType[tok.Class]),
			TokenModifiers: modifiers,
		})
	}
	return tokens, nil
}

// encodeTokens packs tokens into the LSP wire format of relative
// (deltaLine, deltaStart, length, type, modifiers) quintuples
func encodeTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, 5*len(tokens))
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		deltaStart := token.StartChar
		if deltaLine == 0 {
			deltaStart -= prevStart
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}
