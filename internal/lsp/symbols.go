package lsp

import (
	"fmt"

	"blif/internal/ast"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// TextDocumentDocumentSymbol lists each model with its elements as children.
// The last successful parse is used while the buffer has errors.
func (h *BlifHandler) TextDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	_, modules, err := h.document(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	symbols := make([]protocol.DocumentSymbol, 0, len(modules))
	for _, m := range modules {
		symbols = append(symbols, moduleSymbol(m))
	}
	return symbols, nil
}

func moduleSymbol(m *ast.Module) protocol.DocumentSymbol {
	detail := fmt.Sprintf("%d inputs, %d outputs", len(m.Inputs), len(m.Outputs))
	children := make([]protocol.DocumentSymbol, 0, len(m.Elems))
	for _, elem := range m.Elems {
		children = append(children, elementSymbol(elem))
	}

	return protocol.DocumentSymbol{
		Name:   m.Name,
		Detail: &detail,
		Kind:   protocol.SymbolKindModule,
		Range: protocol.Range{
			Start: lspPosition(m.Pos),
			End:   protocol.Position{Line: lspPosition(m.EndPos).Line, Character: uint32(len(".end"))},
		},
		SelectionRange: lineRange(m.Pos, len(".model")),
		Children:       children,
	}
}

func elementSymbol(elem ast.Element) protocol.DocumentSymbol {
	var (
		name    string
		detail  string
		keyword string
		kind    protocol.SymbolKind
	)
	switch e := elem.(type) {
	case *ast.Lut:
		name, keyword, kind = e.Output, ".names", protocol.SymbolKindFunction
		detail = fmt.Sprintf("%d-input LUT, %d rows", len(e.Inputs), len(e.Table))
	case *ast.Gate:
		name, keyword, kind = e.Q, ".gate", protocol.SymbolKindVariable
		detail = e.Cell
		if detail == "" {
			detail = "flip-flop"
		}
	case *ast.Latch:
		name, keyword, kind = e.Output, ".latch", protocol.SymbolKindVariable
		detail = "latch, init " + e.Init.String()
	case *ast.Subckt:
		name, keyword, kind = e.Name, ".subckt", protocol.SymbolKindObject
		detail = fmt.Sprintf("%d connections", len(e.Conns))
	}
	// Clients reject symbols with empty names
	if name == "" {
		name = ast.KindOf(elem).String()
	}

	r := lineRange(elem.NodePos(), len(keyword))
	return protocol.DocumentSymbol{
		Name:           name,
		Detail:         &detail,
		Kind:           kind,
		Range:          r,
		SelectionRange: r,
	}
}

func lspPosition(pos ast.Position) protocol.Position {
	return protocol.Position{
		Line:      uint32(max(0, pos.Line-1)),
		Character: uint32(max(0, pos.Column-1)),
	}
}

func lineRange(pos ast.Position, length int) protocol.Range {
	start := lspPosition(pos)
	return protocol.Range{
		Start: start,
		End:   protocol.Position{Line: start.Line, Character: start.Character + uint32(length)},
	}
}
