// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"mcc/internal/lsp"
)

const lsName = "mcc" // Name identifier for the language server

var handler protocol.Handler // Protocol handler instance (wired up below)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	mccHandler := lsp.NewHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     mccHandler.Initialize,
		Initialized:                    mccHandler.Initialized,
		Shutdown:                       mccHandler.Shutdown,
		SetTrace:                       mccHandler.SetTrace,
		TextDocumentDidOpen:            mccHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           mccHandler.TextDocumentDidClose,
		TextDocumentDidChange:          mccHandler.TextDocumentDidChange,
		TextDocumentCompletion:         mccHandler.TextDocumentCompletion,
		TextDocumentDocumentSymbol:     mccHandler.TextDocumentDocumentSymbol,
		TextDocumentSemanticTokensFull: mccHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting mcc LSP server...")

	// Serve over standard input/output, the transport editors expect
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting mcc LSP server:", err)
		os.Exit(1)
	}
}
