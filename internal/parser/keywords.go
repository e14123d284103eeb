package parser

var KEYWORDS = map[string]TokenKind{
	"fn":     FUNCTION,
	"return": RETURN,
}
