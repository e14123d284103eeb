package lsp

import (
	"strings"

	"mcc/internal/parser"
	"mcc/internal/source"
	"mcc/internal/types"
)

// SemanticToken represents a single LSP semantic token entry.
// Line and StartChar are 0-based positions; TokenType is an index into
// SemanticTokenTypes and TokenModifiers is a bitmask based on
// SemanticTokenModifiers.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// collectSemanticTokens classifies a lexed token stream for highlighting.
// Classification is positional: the grammar is small enough that the
// neighbouring token decides what an identifier is.
func collectSemanticTokens(buf *source.Buffer, tokens []parser.Token) []SemanticToken {
	var out []SemanticToken

	for i, tok := range tokens {
		var kind string
		modifiers := 0

		switch tok.Kind {
		case parser.FUNCTION, parser.RETURN:
			kind = "keyword"
		case parser.INTEGER:
			kind = "number"
		case parser.STRING:
			kind = "string"
		case parser.IDENTIFIER:
			kind, modifiers = classifyIdentifier(buf, tokens, i)
		default:
			continue
		}

		length := tok.End - tok.Begin
		// Clients cannot render tokens that span lines; clip string
		// literals with embedded newlines to their first line.
		if idx := strings.IndexByte(buf.Slice(tok.Begin, tok.End), '\n'); idx >= 0 {
			length = idx
		}
		if length <= 0 {
			continue
		}

		out = append(out, SemanticToken{
			Line:           uint32(tok.Line - 1),
			StartChar:      uint32(tok.Column() - 1),
			Length:         uint32(length),
			TokenType:      indexOf(kind, SemanticTokenTypes),
			TokenModifiers: modifiers,
		})
	}

	return out
}

func classifyIdentifier(buf *source.Buffer, tokens []parser.Token, i int) (string, int) {
	if i > 0 {
		switch tokens[i-1].Kind {
		case parser.AT:
			return "modifier", 0
		case parser.FUNCTION:
			return "function", 1 << indexOf("declaration", SemanticTokenModifiers)
		}
	}

	// Only parameter names sit directly in front of a colon; the colon
	// before a return type always follows a closing parenthesis.
	if i+1 < len(tokens) && tokens[i+1].Kind == parser.COLON {
		return "parameter", 0
	}

	if _, ok := types.Lookup(buf.Slice(tokens[i].Begin, tokens[i].End)); ok {
		return "type", 0
	}

	return "variable", 0
}

// encodeSemanticTokens flattens tokens into the delta-compressed wire
// form: five integers per token, with positions relative to the previous
// token.
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)

	var prevLine, prevStart uint32
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		deltaStart := token.StartChar
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}

// indexOf returns the index of a string in a slice, or 0 if not found.
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
