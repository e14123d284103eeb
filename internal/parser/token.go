package parser

// TokenKind identifies the lexical class of a token
type TokenKind int

const (
	// UNDEFINED is the zero value; it never appears in a valid stream
	UNDEFINED TokenKind = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	INTEGER
	STRING

	// Keywords
	FUNCTION
	RETURN

	// Punctuation
	AT
	DOT_DOT_DOT
	COMMA
	COLON
	SEMICOLON
	OPEN_PAREN
	CLOSE_PAREN
	OPEN_BRACE
	CLOSE_BRACE
)

// kindNames is the static reverse table from kind to surface name,
// indexed by TokenKind. It is built once, at compile time.
var kindNames = [...]string{
	UNDEFINED:   "undefined",
	EOF:         "eof",
	IDENTIFIER:  "identifier",
	INTEGER:     "integer",
	STRING:      "string",
	FUNCTION:    "function",
	RETURN:      "return",
	AT:          "at",
	DOT_DOT_DOT: "dotdotdot",
	COMMA:       "comma",
	COLON:       "colon",
	SEMICOLON:   "semicolon",
	OPEN_PAREN:  "open_paren",
	CLOSE_PAREN: "close_paren",
	OPEN_BRACE:  "open_brace",
	CLOSE_BRACE: "close_brace",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "undefined"
	}
	return kindNames[k]
}

// Token is a window into the source buffer: Begin and End are byte
// offsets (half open) and the lexeme is never copied out of the
// buffer. Line is 1-based; LineStart is the offset of the first byte
// of that line, so the column can be derived without a second pass.
type Token struct {
	Kind      TokenKind
	Begin     int
	End       int
	Line      int
	LineStart int
}

// Column returns the 1-based column where the token begins
func (t Token) Column() int {
	return t.Begin - t.LineStart + 1
}
