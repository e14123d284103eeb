package parser

import (
	"fmt"

	"mcc/internal/ast"
	"mcc/internal/types"
)

func (p *Parser) parseFunction() (*ast.FunctionDefinition, error) {
	start, err := p.expect(FUNCTION, "expected 'fn' keyword")
	if err != nil {
		return nil, err
	}

	name, err := p.expectIdent("expected function name")
	if err != nil {
		return nil, err
	}

	params, variadic, err := p.parseParameters()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(COLON, "expected ':' before the return type"); err != nil {
		return nil, err
	}

	returnType, err := p.parseType()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDefinition{
		Pos:        p.makePos(start),
		EndPos:     body.EndPos,
		Name:       name,
		Parameters: params,
		Variadic:   variadic,
		ReturnType: returnType,
		Body:       body,
	}, nil
}

// parseParameters parses the parenthesized parameter list. A trailing
// "..." marks the function variadic and must be the last entry.
func (p *Parser) parseParameters() ([]*ast.Argument, bool, error) {
	if _, err := p.expect(OPEN_PAREN, "expected '(' after function name"); err != nil {
		return nil, false, err
	}

	var params []*ast.Argument
	variadic := false

	if !p.check(CLOSE_PAREN) {
		for {
			if p.match(DOT_DOT_DOT) {
				variadic = true
				break
			}

			param, err := p.parseParameter()
			if err != nil {
				return nil, false, err
			}
			params = append(params, param)

			if !p.match(COMMA) {
				break
			}
		}
	}

	if _, err := p.expect(CLOSE_PAREN, "expected ')' after parameter list"); err != nil {
		return nil, false, err
	}

	return params, variadic, nil
}

func (p *Parser) parseParameter() (*ast.Argument, error) {
	name, err := p.expectIdent("expected parameter name")
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(COLON, "expected ':' after parameter name"); err != nil {
		return nil, err
	}

	paramType, err := p.parseType()
	if err != nil {
		return nil, err
	}

	return &ast.Argument{
		Pos:    name.Pos,
		EndPos: p.makeEndPos(p.previous()),
		Name:   name,
		Type:   paramType,
	}, nil
}

// parseType resolves a type name while parsing. Unknown names fault
// right here; there is no later resolution pass.
func (p *Parser) parseType() (types.Type, error) {
	tok, err := p.expect(IDENTIFIER, "expected a type name")
	if err != nil {
		return types.Undefined, err
	}

	typ, ok := types.Lookup(p.lexeme(tok))
	if !ok {
		return types.Undefined, p.faultAt(tok, fmt.Sprintf("unknown type '%s'", p.lexeme(tok)))
	}
	return typ, nil
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	start, err := p.expect(OPEN_BRACE, "expected '{' to start a block")
	if err != nil {
		return nil, err
	}

	var items []ast.BlockItem
	for !p.check(CLOSE_BRACE) && !p.isAtEnd() {
		switch {
		case p.check(RETURN):
			stmt, err := p.parseReturn()
			if err != nil {
				return nil, err
			}
			items = append(items, stmt)
		case p.check(OPEN_BRACE):
			block, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			items = append(items, block)
		default:
			return nil, p.faultAtCurrent("expected a statement or expression")
		}
	}

	end, err := p.expect(CLOSE_BRACE, "expected '}' to close a block")
	if err != nil {
		return nil, err
	}

	return &ast.Block{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Items:  items,
	}, nil
}

func (p *Parser) parseReturn() (*ast.Return, error) {
	start := p.advance()

	returnType, err := p.parseType()
	if err != nil {
		return nil, err
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	end, err := p.expect(SEMICOLON, "expected ';' after return statement")
	if err != nil {
		return nil, err
	}

	return &ast.Return{
		Pos:        p.makePos(start),
		EndPos:     p.makeEndPos(end),
		Type:       returnType,
		Expression: value,
	}, nil
}

// parseExpression parses one expression. The block expression is the
// only variant the grammar defines so far.
func (p *Parser) parseExpression() (ast.Expr, error) {
	if p.check(OPEN_BRACE) {
		return p.parseBlock()
	}
	return nil, p.faultAtCurrent("expected an expression")
}
