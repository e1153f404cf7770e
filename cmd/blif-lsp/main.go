// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"os"

	"blif/internal/lsp"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "blif"

var (
	version = "0.1.0"
	handler protocol.Handler
)

func main() {
	verbose := flag.Int("v", 1, "log verbosity (1 = info, 2 = debug)")
	flag.Parse()

	commonlog.Configure(*verbose, nil)
	log := commonlog.GetLogger("blif.lsp")

	blifHandler := lsp.NewBlifHandler()

	handler = protocol.Handler{
		Initialize:                     blifHandler.Initialize,
		Initialized:                    blifHandler.Initialized,
		Shutdown:                       blifHandler.Shutdown,
		SetTrace:                       blifHandler.SetTrace,
		TextDocumentDidOpen:            blifHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           blifHandler.TextDocumentDidClose,
		TextDocumentDidChange:          blifHandler.TextDocumentDidChange,
		TextDocumentSemanticTokensFull: blifHandler.TextDocumentSemanticTokensFull,
		TextDocumentDocumentSymbol:     blifHandler.TextDocumentDocumentSymbol,
	}

	// debug=false keeps glsp's own message tracing off
	s := server.NewServer(&handler, lsName, false)

	log.Infof("Starting BLIF LSP server %s...", version)

	if err := s.RunStdio(); err != nil {
		log.Errorf("Error starting BLIF LSP server: %s", err)
		os.Exit(1)
	}
}
