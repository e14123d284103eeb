package parser

import (
	"mcc/internal/ast"
	"mcc/internal/diag"
)

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind TokenKind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...TokenKind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes a token of the required kind or faults at the
// current token. The fault travels up the rule stack untouched, so
// the run ends at the first structural violation.
func (p *Parser) expect(kind TokenKind, message string) (Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return Token{}, p.faultAtCurrent(message)
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == EOF
}

// lexeme reads a token's text out of the source buffer
func (p *Parser) lexeme(tok Token) string {
	return p.buf.Slice(tok.Begin, tok.End)
}

func (p *Parser) faultAtCurrent(message string) error {
	return p.faultAt(p.peek(), message)
}

func (p *Parser) faultAt(tok Token, message string) error {
	length := tok.End - tok.Begin
	if length < 1 {
		length = 1 // EOF has no width
	}
	return diag.Fault{
		Class:   diag.Parse,
		Path:    p.buf.Path(),
		Line:    tok.Line,
		Column:  tok.Column(),
		Length:  length,
		Message: message,
	}
}

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.buf.Path(),
		Offset:   tok.Begin,
		Line:     tok.Line,
		Column:   tok.Column(),
	}
}

func (p *Parser) makeEndPos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.buf.Path(),
		Offset:   tok.End,
		Line:     tok.Line,
		Column:   tok.Column() + (tok.End - tok.Begin),
	}
}

// makeIdent creates an ast.Ident from an identifier token
func (p *Parser) makeIdent(tok Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  p.lexeme(tok),
	}
}

// expectIdent consumes an identifier token and returns an ast.Ident
func (p *Parser) expectIdent(message string) (ast.Ident, error) {
	tok, err := p.expect(IDENTIFIER, message)
	if err != nil {
		return ast.Ident{}, err
	}
	return p.makeIdent(tok), nil
}
