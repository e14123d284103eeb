package lsp

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"mcc/internal/ast"
	"mcc/internal/diag"
	"mcc/internal/parser"
	"mcc/internal/source"
	"mcc/internal/types"
)

// SemanticTokenTypes is the legend of token types this server emits,
// advertised to the client during initialization.
var SemanticTokenTypes = []string{
	"keyword",
	"function",
	"type",
	"parameter",
	"variable",
	"modifier",
	"number",
	"string",
	"operator",
}

// SemanticTokenModifiers is the legend of extra tags attached to tokens.
var SemanticTokenModifiers = []string{
	"declaration",
	"definition",
	"readonly",
	"static",
	"deprecated",
	"abstract",
}

// Handler implements the LSP server handlers for mcc source files.
// Documents live in memory as plain text plus the last successfully
// parsed program, keyed by platform-local file path.
type Handler struct {
	mu       sync.RWMutex
	content  map[string]string
	programs map[string]*ast.Program
}

// NewHandler creates and returns a new Handler instance.
func NewHandler() *Handler {
	return &Handler{
		content:  make(map[string]string),
		programs: make(map[string]*ast.Program),
	}
}

// Initialize responds to the client's initialize request and advertises
// the server's capabilities.
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			DocumentSymbolProvider: ptrBool(true),
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

// Initialized is called after the client completes initialization.
func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("mcc LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request.
func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Println("mcc LSP Shutdown")
	return nil
}

// SetTrace handles trace level changes requested by the client.
func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor.
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	diagnostics := h.updateDocument(path, params.TextDocument.Text)
	h.publishDiagnostics(ctx, params.TextDocument.URI, diagnostics)

	return nil
}

// TextDocumentDidChange handles file change notifications from the editor.
// Full document sync is advertised, so every change event carries the
// whole document text.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	text, _ := h.lookupContent(path)
	for _, change := range params.ContentChanges {
		switch event := change.(type) {
		case protocol.TextDocumentContentChangeEvent:
			text = event.Text
		case protocol.TextDocumentContentChangeEventWhole:
			text = event.Text
		}
	}

	diagnostics := h.updateDocument(path, text)
	h.publishDiagnostics(ctx, params.TextDocument.URI, diagnostics)

	return nil
}

// TextDocumentDidClose handles file close notifications from the editor.
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	delete(h.content, path)
	delete(h.programs, path)
	h.mu.Unlock()

	h.publishDiagnostics(ctx, params.TextDocument.URI, nil)

	return nil
}

// TextDocumentCompletion offers the fixed vocabulary of the language:
// keywords, directive names, and builtin type names.
func (h *Handler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	keywords := make([]string, 0, len(parser.KEYWORDS))
	for keyword := range parser.KEYWORDS {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)

	directives := []string{"entry", "extern"}
	typeNames := types.Names()

	items := make([]protocol.CompletionItem, 0, len(keywords)+len(directives)+len(typeNames))
	for _, keyword := range keywords {
		items = append(items, protocol.CompletionItem{
			Label: keyword,
			Kind:  ptrCompletionKind(protocol.CompletionItemKindKeyword),
		})
	}
	for _, directive := range directives {
		items = append(items, protocol.CompletionItem{
			Label: directive,
			Kind:  ptrCompletionKind(protocol.CompletionItemKindKeyword),
		})
	}
	for _, name := range typeNames {
		items = append(items, protocol.CompletionItem{
			Label: name,
			Kind:  ptrCompletionKind(protocol.CompletionItemKindClass),
		})
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentDocumentSymbol returns the outline of a document: one
// symbol per function definition.
func (h *Handler) TextDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	program, err := h.getOrUpdateProgram(ctx, path, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	return collectDocumentSymbols(program), nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the
// entire document.
func (h *Handler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Println("TextDocumentSemanticTokensFull called for:", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	text, ok := h.lookupContent(path)
	if !ok {
		// The client may ask for tokens before it has opened the
		// document; fall back to the on-disk copy.
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", path, err)
		}
		text = string(data)

		if diagnostics := h.updateDocument(path, text); len(diagnostics) > 0 {
			h.publishDiagnostics(ctx, params.TextDocument.URI, diagnostics)
		}
	}

	buf := source.FromString(path, text)
	tokens, err := parser.NewScanner(buf).Tokenize()
	if err != nil {
		// A lexically broken document has no token stream to classify.
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(buf, tokens)),
	}, nil
}

// updateDocument reparses a document, replaces the cached state, and
// converts every fault into a diagnostic. A document that fails to parse
// keeps its text cached but loses its program.
func (h *Handler) updateDocument(path, text string) []protocol.Diagnostic {
	warnings := &diag.Collector{}
	program, err := parser.ParseSource(path, text, warnings)

	faults := warnings.Faults
	if err != nil {
		var fault diag.Fault
		if errors.As(err, &fault) {
			faults = append(faults, fault)
		} else {
			log.Printf("Parse failed for %s: %s\n", path, err)
		}
	}

	h.mu.Lock()
	h.content[path] = text
	if program != nil {
		h.programs[path] = program
	} else {
		delete(h.programs, path)
	}
	h.mu.Unlock()

	return ConvertFaults(faults)
}

func (h *Handler) getOrUpdateProgram(ctx *glsp.Context, path string, uri protocol.DocumentUri) (*ast.Program, error) {
	h.mu.RLock()
	program, ok := h.programs[path]
	h.mu.RUnlock()

	if !ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", path, err)
		}

		if diagnostics := h.updateDocument(path, string(data)); len(diagnostics) > 0 {
			h.publishDiagnostics(ctx, uri, diagnostics)
		}

		h.mu.RLock()
		program = h.programs[path]
		h.mu.RUnlock()
	}

	return program, nil
}

func (h *Handler) lookupContent(path string) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	text, ok := h.content[path]
	return text, ok
}

func (h *Handler) publishDiagnostics(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if diagnostics == nil {
		// An empty array clears stale diagnostics on the client; null
		// would be ignored by some of them.
		diagnostics = []protocol.Diagnostic{}
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// uriToPath converts a file URI to a platform-local file path.
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove the leading slash (/C:/... -> C:/...).
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

func ptrCompletionKind(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}
