package parser

import (
	"fmt"

	"mcc/internal/diag"
	"mcc/internal/source"
)

// Scanner walks the source buffer byte by byte with two characters of
// lookahead. All consumption goes through advance so line accounting
// stays correct inside strings and block comments too.
type Scanner struct {
	buf       *source.Buffer
	index     int
	line      int
	lineStart int

	// position of the token being scanned
	start          int
	startLine      int
	startLineStart int
}

func NewScanner(buf *source.Buffer) *Scanner {
	return &Scanner{
		buf:  buf,
		line: 1,
	}
}

// Tokenize materializes the whole token stream before parsing begins.
// The stream always ends with exactly one EOF token. The first fault
// aborts the scan; no partial stream is returned.
func (s *Scanner) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		token, err := s.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		if token.Kind == EOF {
			return tokens, nil
		}
	}
}

func (s *Scanner) next() (Token, error) {
	if err := s.skip(); err != nil {
		return Token{}, err
	}

	s.start = s.index
	s.startLine = s.line
	s.startLineStart = s.lineStart

	if !s.buf.Has(s.index) {
		return s.token(EOF), nil
	}

	c := s.advance()
	switch c {
	case '@':
		return s.token(AT), nil
	case ',':
		return s.token(COMMA), nil
	case ':':
		return s.token(COLON), nil
	case ';':
		return s.token(SEMICOLON), nil
	case '(':
		return s.token(OPEN_PAREN), nil
	case ')':
		return s.token(CLOSE_PAREN), nil
	case '{':
		return s.token(OPEN_BRACE), nil
	case '}':
		return s.token(CLOSE_BRACE), nil
	case '.':
		return s.scanEllipsis()
	case '"':
		return s.scanString()
	}

	if isDigit(c) {
		for s.buf.Has(s.index) && isDigit(s.peek()) {
			s.advance()
		}
		return s.token(INTEGER), nil
	}

	if isAlpha(c) {
		return s.scanIdentifier(), nil
	}

	return Token{}, s.fault(1, invalidTokenMessage(c))
}

// skip consumes whitespace and comments. Whitespace is ` `, `\n`,
// `\r` and `\t`; line comments run to the end of the line; block
// comments run to the first `*/` and do not nest.
func (s *Scanner) skip() error {
	for s.buf.Has(s.index) {
		switch {
		case isWhitespace(s.peek()):
			s.advance()
		case s.peek() == '/' && s.peekNext() == '/':
			for s.buf.Has(s.index) && s.peek() != '\n' {
				s.advance()
			}
		case s.peek() == '/' && s.peekNext() == '*':
			if err := s.skipBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

func (s *Scanner) skipBlockComment() error {
	s.start = s.index
	s.startLine = s.line
	s.startLineStart = s.lineStart

	// both opener characters are consumed before the loop starts, so
	// `/*/` cannot close itself
	s.advance()
	s.advance()

	for s.buf.Has(s.index) {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance()
			s.advance()
			return nil
		}
		s.advance()
	}

	return s.fault(2, "Unterminated block comment.")
}

// scanEllipsis insists on exactly three dots; the language has no
// one or two dot token.
func (s *Scanner) scanEllipsis() (Token, error) {
	if s.peek() == '.' && s.peekNext() == '.' {
		s.advance()
		s.advance()
		return s.token(DOT_DOT_DOT), nil
	}
	if s.peek() == '.' {
		s.advance()
	}
	return Token{}, s.fault(s.index-s.start, "Incomplete '...' token.")
}

func (s *Scanner) scanString() (Token, error) {
	for s.buf.Has(s.index) {
		switch s.advance() {
		case '"':
			return s.token(STRING), nil
		case '\\':
			// a backslash consumes itself plus the next character,
			// whatever it is
			if s.buf.Has(s.index) {
				s.advance()
			}
		}
	}
	return Token{}, s.fault(1, "Unterminated string.")
}

func (s *Scanner) scanIdentifier() Token {
	for s.buf.Has(s.index) && isAlphaNumeric(s.peek()) {
		s.advance()
	}

	token := s.token(IDENTIFIER)
	if kind, ok := KEYWORDS[s.buf.Slice(token.Begin, token.End)]; ok {
		token.Kind = kind
	}
	return token
}

func (s *Scanner) advance() byte {
	c := s.buf.At(s.index)
	s.index++
	if c == '\n' {
		s.line++
		s.lineStart = s.index
	}
	return c
}

func (s *Scanner) peek() byte {
	if !s.buf.Has(s.index) {
		return 0
	}
	return s.buf.At(s.index)
}

func (s *Scanner) peekNext() byte {
	if !s.buf.Has(s.index + 1) {
		return 0
	}
	return s.buf.At(s.index + 1)
}

// token closes the token that started at s.start. Faults at the
// opener of an unterminated construct use the same saved position.
func (s *Scanner) token(kind TokenKind) Token {
	return Token{
		Kind:      kind,
		Begin:     s.start,
		End:       s.index,
		Line:      s.startLine,
		LineStart: s.startLineStart,
	}
}

func (s *Scanner) fault(length int, message string) error {
	return diag.Fault{
		Class:   diag.Lex,
		Path:    s.buf.Path(),
		Line:    s.startLine,
		Column:  s.start - s.startLineStart + 1,
		Length:  length,
		Message: message,
	}
}

// Helper functions.

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func invalidTokenMessage(c byte) string {
	if c >= 0x20 && c <= 0x7E {
		return fmt.Sprintf("Encountered an invalid token 0x%04X `%c`.", c, c)
	}
	return fmt.Sprintf("Encountered an invalid token 0x%04X.", c)
}
