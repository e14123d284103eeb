package lsp_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"mcc/internal/diag"
	"mcc/internal/lsp"
)

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := lsp.NewHandler()

	absPath, err := filepath.Abs(filepath.Join("../../examples", "hello.mcs"))
	require.NoError(t, err, "Failed to get absolute path")

	uri := "file://" + filepath.ToSlash(absPath)

	ctx := &glsp.Context{}
	params := &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{
			URI: uri,
		},
	}

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, params)
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")
	require.NotEmpty(t, tokens.Data, "Returned token data should not be empty")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	require.Len(t, decoded, 16)

	assertToken(t, &decoded[0], 1, 2, 6, "modifier", nil)
	assertToken(t, &decoded[1], 1, 9, 2, "keyword", nil)
	assertToken(t, &decoded[2], 1, 12, 5, "function", []string{"declaration"})
	assertToken(t, &decoded[3], 1, 18, 2, "parameter", nil)
	assertToken(t, &decoded[4], 1, 22, 3, "type", nil)
	assertToken(t, &decoded[5], 1, 27, 6, "parameter", nil)
	assertToken(t, &decoded[6], 1, 35, 7, "type", nil)
	assertToken(t, &decoded[7], 1, 44, 5, "parameter", nil)
	assertToken(t, &decoded[8], 1, 51, 5, "type", nil)
	assertToken(t, &decoded[9], 1, 59, 5, "type", nil)
	assertToken(t, &decoded[10], 3, 2, 5, "modifier", nil)
	assertToken(t, &decoded[11], 3, 8, 2, "keyword", nil)
	assertToken(t, &decoded[12], 3, 11, 4, "function", []string{"declaration"})
	assertToken(t, &decoded[13], 3, 19, 3, "type", nil)
	assertToken(t, &decoded[14], 4, 5, 6, "keyword", nil)
	assertToken(t, &decoded[15], 4, 12, 3, "type", nil)
}

func TestDidOpenPublishesFaultDiagnostics(t *testing.T) {
	handler := lsp.NewHandler()

	var published []protocol.PublishDiagnosticsParams
	ctx := captureNotifications(t, &published)

	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        "file:///virtual/broken.mcs",
			LanguageID: "mcc",
			Version:    1,
			Text:       "fn main(): u32 {",
		},
	})

	require.NoError(t, err)
	require.Len(t, published, 1)
	require.Len(t, published[0].Diagnostics, 1)

	diagnostic := published[0].Diagnostics[0]
	assert.Equal(t, "expected '}' to close a block", diagnostic.Message)
	assert.Equal(t, uint32(0), diagnostic.Range.Start.Line)
	assert.Equal(t, uint32(16), diagnostic.Range.Start.Character)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diagnostic.Severity)
	assert.Equal(t, "mcc-parse", *diagnostic.Source)
}

func TestDidOpenCleanFileClearsDiagnostics(t *testing.T) {
	handler := lsp.NewHandler()

	var published []protocol.PublishDiagnosticsParams
	ctx := captureNotifications(t, &published)

	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        "file:///virtual/clean.mcs",
			LanguageID: "mcc",
			Version:    1,
			Text:       "fn id(): u8 { }",
		},
	})

	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.NotNil(t, published[0].Diagnostics)
	assert.Empty(t, published[0].Diagnostics)
}

func TestDidChangeReportsWarnings(t *testing.T) {
	handler := lsp.NewHandler()

	var published []protocol.PublishDiagnosticsParams
	ctx := captureNotifications(t, &published)

	uri := "file:///virtual/program.mcs"

	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        uri,
			LanguageID: "mcc",
			Version:    1,
			Text:       "@entry fn main(): u32 { }",
		},
	})
	require.NoError(t, err)

	changed := "@entry fn main(): u32 { }\n@entry fn other(): u32 { }\n"
	err = handler.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: changed},
		},
	})
	require.NoError(t, err)

	require.Len(t, published, 2)
	require.Len(t, published[1].Diagnostics, 1)

	diagnostic := published[1].Diagnostics[0]
	assert.Equal(t, "duplicate '@entry' directive on 'other', 'main' is already an entry point", diagnostic.Message)
	assert.Equal(t, protocol.DiagnosticSeverityWarning, *diagnostic.Severity)
	assert.Equal(t, uint32(1), diagnostic.Range.Start.Line)
	assert.Equal(t, uint32(1), diagnostic.Range.Start.Character)
	assert.Equal(t, uint32(6), diagnostic.Range.End.Character)
}

func TestDidCloseDropsDocument(t *testing.T) {
	handler := lsp.NewHandler()

	var published []protocol.PublishDiagnosticsParams
	ctx := captureNotifications(t, &published)

	uri := "file:///virtual/closing.mcs"

	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        uri,
			LanguageID: "mcc",
			Version:    1,
			Text:       "fn id(): u8 { }",
		},
	})
	require.NoError(t, err)

	err = handler.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.Len(t, published, 2)

	// With the cached copy gone, a token request falls back to disk and
	// fails for this virtual path.
	_, err = handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	assert.Error(t, err)
}

func TestDocumentSymbolOutline(t *testing.T) {
	handler := lsp.NewHandler()

	var published []protocol.PublishDiagnosticsParams
	ctx := captureNotifications(t, &published)

	uri := "file:///virtual/outline.mcs"
	text := "@extern fn write(fd: u32): usize { }\n\n@entry fn main(): u32 {\n    return u32 { };\n}\n\nfn helper(): u8 { }\n"

	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        uri,
			LanguageID: "mcc",
			Version:    1,
			Text:       text,
		},
	})
	require.NoError(t, err)

	result, err := handler.TextDocumentDocumentSymbol(ctx, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	symbols, ok := result.([]protocol.DocumentSymbol)
	require.True(t, ok, "expected []protocol.DocumentSymbol, got %T", result)
	require.Len(t, symbols, 3)

	assert.Equal(t, "write", symbols[0].Name)
	assert.Equal(t, "extern function", *symbols[0].Detail)
	assert.Equal(t, "main", symbols[1].Name)
	assert.Equal(t, "entry point", *symbols[1].Detail)
	assert.Equal(t, "helper", symbols[2].Name)
	assert.Equal(t, "function", *symbols[2].Detail)

	for _, symbol := range symbols {
		assert.Equal(t, protocol.SymbolKindFunction, symbol.Kind)
	}

	assert.Equal(t, uint32(0), symbols[0].SelectionRange.Start.Line)
	assert.Equal(t, uint32(11), symbols[0].SelectionRange.Start.Character)
}

func TestCompletionListsKeywordsAndTypes(t *testing.T) {
	handler := lsp.NewHandler()

	result, err := handler.TextDocumentCompletion(&glsp.Context{}, &protocol.CompletionParams{})
	require.NoError(t, err)

	list, ok := result.(*protocol.CompletionList)
	require.True(t, ok, "expected *protocol.CompletionList, got %T", result)
	assert.False(t, list.IsIncomplete)

	labels := make([]string, 0, len(list.Items))
	for _, item := range list.Items {
		labels = append(labels, item.Label)
	}

	assert.Contains(t, labels, "fn")
	assert.Contains(t, labels, "return")
	assert.Contains(t, labels, "extern")
	assert.Contains(t, labels, "entry")
	assert.Contains(t, labels, "u32")
	assert.Contains(t, labels, "pointer")
	assert.NotContains(t, labels, "undefined")
}

func TestConvertFaults(t *testing.T) {
	faults := []diag.Fault{
		{Class: diag.Lex, Severity: diag.Error, Path: "a.mcs", Line: 3, Column: 7, Length: 4, Message: "Unterminated string."},
		{Class: diag.Parse, Severity: diag.Warning, Path: "a.mcs", Line: 1, Column: 2, Length: 5, Message: "duplicate directive"},
		{Class: diag.SourceLoad, Severity: diag.Error, Path: "a.mcs", Message: "could not open file, please provide a valid file path"},
	}

	diagnostics := lsp.ConvertFaults(faults)
	require.Len(t, diagnostics, 3)

	lexical := diagnostics[0]
	assert.Equal(t, uint32(2), lexical.Range.Start.Line)
	assert.Equal(t, uint32(6), lexical.Range.Start.Character)
	assert.Equal(t, uint32(10), lexical.Range.End.Character)
	assert.Equal(t, protocol.DiagnosticSeverityError, *lexical.Severity)
	assert.Equal(t, "mcc-lex", *lexical.Source)
	assert.Equal(t, "Unterminated string.", lexical.Message)

	warning := diagnostics[1]
	assert.Equal(t, protocol.DiagnosticSeverityWarning, *warning.Severity)
	assert.Equal(t, "mcc-parse", *warning.Source)

	load := diagnostics[2]
	assert.Equal(t, uint32(0), load.Range.Start.Line)
	assert.Equal(t, uint32(0), load.Range.Start.Character)
	assert.Equal(t, uint32(1), load.Range.End.Character)
	assert.Equal(t, "mcc-source", *load.Source)
}

func TestConvertFaultsEmpty(t *testing.T) {
	assert.Nil(t, lsp.ConvertFaults(nil))
}

func captureNotifications(t *testing.T, published *[]protocol.PublishDiagnosticsParams) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			require.Equal(t, protocol.ServerTextDocumentPublishDiagnostics, method)
			diagParams, ok := params.(*protocol.PublishDiagnosticsParams)
			require.True(t, ok, "expected *protocol.PublishDiagnosticsParams, got %T", params)
			*published = append(*published, *diagParams)
		},
	}
}

type DecodedToken struct {
	Index     int
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
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1, // decoded back to 1-based indexing
			Char:      char + 1,
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (token %d)", token.Index)
	require.Equal(t, expectedChar, token.Char, "char mismatch (token %d)", token.Index)
	require.Equal(t, expectedLength, token.Length, "length mismatch (token %d)", token.Index)
	require.Equal(t, expectedType, token.Type, "type mismatch (token %d)", token.Index)
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch (token %d)", token.Index)
}
