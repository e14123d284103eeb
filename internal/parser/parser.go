package parser

import (
	"fmt"

	"mcc/internal/ast"
	"mcc/internal/diag"
	"mcc/internal/source"
)

// Parser consumes the materialized token stream and builds a Program.
// Every rule commits after one token of lookahead; there is no
// backtracking. The first structural violation aborts the parse, so a
// caller gets either a complete Program or a fault, never both.
type Parser struct {
	buf     *source.Buffer
	tokens  []Token
	current int
	warns   diag.Reporter
}

func NewParser(buf *source.Buffer, tokens []Token, warns diag.Reporter) *Parser {
	if warns == nil {
		warns = diag.Discard{}
	}
	return &Parser{
		buf:    buf,
		tokens: tokens,
		warns:  warns,
	}
}

// ParseProgram parses top-level items until the EOF sentinel.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{
		Pos: p.makePos(p.peek()),
	}

	for !p.isAtEnd() {
		switch {
		case p.check(AT):
			if err := p.parseDirective(program); err != nil {
				return nil, err
			}
		case p.check(FUNCTION):
			fn, err := p.parseFunction()
			if err != nil {
				return nil, err
			}
			program.Functions = append(program.Functions, fn)
		default:
			return nil, p.faultAtCurrent("expected 'fn' or a directive at top level")
		}
	}

	program.EndPos = p.makePos(p.peek())
	return program, nil
}

// parseDirective routes a directive's function definition into its
// Program group. An unrecognized name faults at the name token, not
// at the '@'.
func (p *Parser) parseDirective(program *ast.Program) error {
	p.advance() // '@'

	name, err := p.expect(IDENTIFIER, "expected a directive name after '@'")
	if err != nil {
		return err
	}

	switch p.lexeme(name) {
	case "extern":
		fn, err := p.parseFunction()
		if err != nil {
			return err
		}
		program.Externs = append(program.Externs, fn)
	case "entry":
		fn, err := p.parseFunction()
		if err != nil {
			return err
		}
		if len(program.EntryPoints) > 0 {
			p.warns.Report(diag.Fault{
				Class:    diag.Parse,
				Severity: diag.Warning,
				Path:     p.buf.Path(),
				Line:     name.Line,
				Column:   name.Column(),
				Length:   name.End - name.Begin,
				Message: fmt.Sprintf("duplicate '@entry' directive on '%s', '%s' is already an entry point",
					fn.Name.Value, program.EntryPoints[0].Name.Value),
			})
		}
		program.EntryPoints = append(program.EntryPoints, fn)
	default:
		return p.faultAt(name, fmt.Sprintf("unknown directive '@%s'", p.lexeme(name)))
	}

	return nil
}
