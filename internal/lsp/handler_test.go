package lsp_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"blif/internal/lsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const inverter = ".model top\n.inputs a\n.outputs y\n.names a y\n0 1\n.end\n"

const badBit = ".model top\n.inputs a\n.outputs y\n.names a y\n1x 1\n.end\n"

type recorder struct {
	published []*protocol.PublishDiagnosticsParams
}

func (r *recorder) context() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method == protocol.ServerTextDocumentPublishDiagnostics {
				r.published = append(r.published, params.(*protocol.PublishDiagnosticsParams))
			}
		},
	}
}

func (r *recorder) last(t *testing.T) []protocol.Diagnostic {
	t.Helper()
	require.NotEmpty(t, r.published, "No diagnostics were published")
	return r.published[len(r.published)-1].Diagnostics
}

func writeBlif(t *testing.T, src string) (string, protocol.DocumentUri) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "top.blif")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path, "file://" + filepath.ToSlash(path)
}

func open(t *testing.T, h *lsp.BlifHandler, ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	t.Helper()
	require.NoError(t, h.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "blif", Text: text},
	}))
}

func symbols(t *testing.T, h *lsp.BlifHandler, ctx *glsp.Context, uri protocol.DocumentUri) []protocol.DocumentSymbol {
	t.Helper()
	result, err := h.TextDocumentDocumentSymbol(ctx, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	syms, ok := result.([]protocol.DocumentSymbol)
	require.True(t, ok)
	return syms
}

func TestInitializeAdvertisesCapabilities(t *testing.T) {
	h := lsp.NewBlifHandler()
	result, err := h.Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	res, ok := result.(*protocol.InitializeResult)
	require.True(t, ok)
	assert.NotNil(t, res.Capabilities.SemanticTokensProvider)
	assert.NotNil(t, res.Capabilities.DocumentSymbolProvider)
	assert.NotNil(t, res.Capabilities.TextDocumentSync)
}

func TestDidOpenPublishesParseError(t *testing.T) {
	_, uri := writeBlif(t, badBit)
	h := lsp.NewBlifHandler()
	rec := &recorder{}

	open(t, h, rec.context(), uri, badBit)

	diagnostics := rec.last(t)
	require.Len(t, diagnostics, 1)
	d := diagnostics[0]
	assert.Equal(t, protocol.Position{Line: 4, Character: 1}, d.Range.Start)
	assert.Equal(t, protocol.Position{Line: 4, Character: 2}, d.Range.End)
	require.NotNil(t, d.Code)
	assert.Equal(t, "E0102", d.Code.Value)
	assert.Equal(t, "invalid truth-table character 'x'", d.Message)
	assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
}

func TestDidChangeClearsDiagnostics(t *testing.T) {
	_, uri := writeBlif(t, badBit)
	h := lsp.NewBlifHandler()
	rec := &recorder{}
	ctx := rec.context()

	open(t, h, ctx, uri, badBit)
	require.Len(t, rec.last(t), 1)

	require.NoError(t, h.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: inverter}},
	}))
	assert.Empty(t, rec.last(t))
	assert.NotNil(t, rec.last(t), "An empty list clears the client's diagnostics")
}

func TestDidChangeRereadsFile(t *testing.T) {
	path, uri := writeBlif(t, inverter)
	h := lsp.NewBlifHandler()
	rec := &recorder{}
	ctx := rec.context()

	open(t, h, ctx, uri, inverter)
	require.NoError(t, os.WriteFile(path, []byte(badBit), 0o644))

	require.NoError(t, h.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
		},
	}))
	assert.Len(t, rec.last(t), 1)
}

func TestDocumentSymbols(t *testing.T) {
	src := ".model top\n.inputs a clk\n.outputs y q\n.names a y\n0 1\n.latch y q re clk 0\n.end\n" +
		".model leaf\n.inputs\n.outputs\n.subckt top a=x\n.end\n"
	_, uri := writeBlif(t, src)
	h := lsp.NewBlifHandler()
	ctx := (&recorder{}).context()

	open(t, h, ctx, uri, src)
	syms := symbols(t, h, ctx, uri)
	require.Len(t, syms, 2)

	top := syms[0]
	assert.Equal(t, "top", top.Name)
	assert.Equal(t, protocol.SymbolKindModule, top.Kind)
	assert.Equal(t, uint32(0), top.Range.Start.Line)
	assert.Equal(t, uint32(6), top.Range.End.Line)
	require.Len(t, top.Children, 2)
	assert.Equal(t, "y", top.Children[0].Name)
	assert.Equal(t, protocol.SymbolKindFunction, top.Children[0].Kind)
	assert.Equal(t, "q", top.Children[1].Name)
	assert.Equal(t, uint32(5), top.Children[1].Range.Start.Line)

	require.Len(t, syms[1].Children, 1)
	assert.Equal(t, "top", syms[1].Children[0].Name)
	assert.Equal(t, protocol.SymbolKindObject, syms[1].Children[0].Kind)
}

func TestDocumentSymbolsSurviveSyntaxErrors(t *testing.T) {
	_, uri := writeBlif(t, inverter)
	h := lsp.NewBlifHandler()
	ctx := (&recorder{}).context()

	open(t, h, ctx, uri, inverter)
	require.NoError(t, h.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: badBit}},
	}))

	syms := symbols(t, h, ctx, uri)
	require.Len(t, syms, 1)
	assert.Equal(t, "top", syms[0].Name)
}

func TestDidCloseForgetsDocument(t *testing.T) {
	_, uri := writeBlif(t, inverter)
	h := lsp.NewBlifHandler()
	rec := &recorder{}
	ctx := rec.context()

	open(t, h, ctx, uri, badBit)
	require.NoError(t, h.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))

	// Closed documents are reloaded from disk, which holds the valid netlist
	syms := symbols(t, h, ctx, uri)
	require.Len(t, syms, 1)
	assert.Empty(t, rec.last(t))
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	src := "# inverter\n.model top\n.inputs a\n.outputs y\n.names a y\n0 1\n.end\n"
	_, uri := writeBlif(t, src)
	h := lsp.NewBlifHandler()

	tokens, err := h.TextDocumentSemanticTokensFull((&recorder{}).context(), &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.NotNil(t, tokens)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 13)

	assertToken(t, &decoded[0], 1, 1, 10, "comment", nil)
	assertToken(t, &decoded[1], 2, 1, 6, "keyword", nil)
	assertToken(t, &decoded[2], 2, 8, 3, "type", []string{"declaration"})
	assertToken(t, &decoded[3], 3, 1, 7, "keyword", nil)
	assertToken(t, &decoded[4], 3, 9, 1, "variable", nil)
	assertToken(t, &decoded[5], 4, 1, 8, "keyword", nil)
	assertToken(t, &decoded[6], 4, 10, 1, "variable", nil)
	assertToken(t, &decoded[7], 5, 1, 6, "keyword", nil)
	assertToken(t, &decoded[8], 5, 8, 1, "variable", nil)
	assertToken(t, &decoded[9], 5, 10, 1, "variable", nil)
	assertToken(t, &decoded[10], 6, 1, 1, "number", nil)
	assertToken(t, &decoded[11], 6, 3, 1, "number", nil)
	assertToken(t, &decoded[12], 7, 1, 4, "keyword", nil)
}

func TestSemanticTokensMissingFile(t *testing.T) {
	h := lsp.NewBlifHandler()
	uri := "file://" + filepath.ToSlash(filepath.Join(t.TempDir(), "missing.blif"))

	_, err := h.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	assert.Error(t, err)
}

type DecodedToken struct {
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		if raw[i] == 0 {
			char += raw[i+1]
		} else {
			line += raw[i]
			char = raw[i+1]
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if raw[i+4]&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Line:      line + 1,
			Char:      char + 1,
			Length:    raw[i+2],
			Type:      lsp.SemanticTokenTypes[raw[i+3]],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, line, char, length uint32, tokenType string, modifiers []string) {
	t.Helper()
	require.Equal(t, line, token.Line, "line mismatch")
	require.Equal(t, char, token.Char, "char mismatch")
	require.Equal(t, length, token.Length, "length mismatch")
	require.Equal(t, tokenType, token.Type, "type mismatch")
	require.ElementsMatch(t, modifiers, token.Modifiers, "modifiers mismatch")
}
