package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"blif/internal/ast"
	"blif/internal/parser"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var log = commonlog.GetLogger("blif.lsp")

// BlifHandler implements the LSP server handlers for BLIF netlists
type BlifHandler struct {
	mu      sync.RWMutex
	content map[string]string
	modules map[string][]*ast.Module
}

// NewBlifHandler creates and returns a new BlifHandler instance
func NewBlifHandler() *BlifHandler {
	return &BlifHandler{
		content: make(map[string]string),
		modules: make(map[string][]*ast.Module),
	}
}

// Initialize advertises full-text sync, semantic tokens and document symbols
func (h *BlifHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
			DocumentSymbolProvider: ptrBool(true),
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name: "blif",
		},
	}, nil
}

func (h *BlifHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("BLIF LSP Initialized")
	return nil
}

func (h *BlifHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("BLIF LSP Shutdown")
	return nil
}

func (h *BlifHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen parses the opened buffer and publishes its diagnostics
func (h *BlifHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Infof("Opened file: %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	h.publish(ctx, params.TextDocument.URI, h.update(path, params.TextDocument.Text))
	return nil
}

// TextDocumentDidChange re-parses the document. With full sync the last
// change event carries the whole buffer; without one the file is re-read.
func (h *BlifHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Infof("Changed file: %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	text, ok := wholeText(params.ContentChanges)
	if !ok {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", path, err)
		}
		text = string(content)
	}

	h.publish(ctx, params.TextDocument.URI, h.update(path, text))
	return nil
}

// TextDocumentDidClose drops the cached state of the document
func (h *BlifHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Infof("Closed file: %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.modules, path)

	return nil
}

// update parses text and caches it under path. Modules are only replaced on
// a successful parse, so symbols survive a transient syntax error.
func (h *BlifHandler) update(path, text string) []protocol.Diagnostic {
	modules, err := parser.ParseSource(path, text)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.content[path] = text
	if err != nil {
		return ConvertParseError(err)
	}
	h.modules[path] = modules
	return []protocol.Diagnostic{}
}

// document returns the cached text and modules for uri, loading the file from
// disk when the client never opened it
func (h *BlifHandler) document(ctx *glsp.Context, uri protocol.DocumentUri) (string, []*ast.Module, error) {
	path, err := uriToPath(uri)
	if err != nil {
		return "", nil, err
	}

	h.mu.RLock()
	text, ok := h.content[path]
	modules := h.modules[path]
	h.mu.RUnlock()
	if ok {
		return text, modules, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	text = string(content)
	h.publish(ctx, uri, h.update(path, text))

	h.mu.RLock()
	modules = h.modules[path]
	h.mu.RUnlock()
	return text, modules, nil
}

func (h *BlifHandler) publish(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	log.Debugf("Sending %d diagnostics for %s", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func wholeText(changes []any) (string, bool) {
	for i := len(changes) - 1; i >= 0; i-- {
		switch change := changes[i].(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			return change.Text, true
		case *protocol.TextDocumentContentChangeEventWhole:
			return change.Text, true
		}
	}
	return "", false
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, /C:/... becomes C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
