package parser

import (
	"mcc/internal/ast"
	"mcc/internal/diag"
	"mcc/internal/source"
)

// ParseSource scans and parses in-memory source text. Warnings flow
// through warns (nil is fine); the first fault aborts the run and
// comes back as the error.
func ParseSource(path string, text string, warns diag.Reporter) (*ast.Program, error) {
	return ParseBuffer(source.FromString(path, text), warns)
}

// ParseFile loads, scans and parses the file at path.
func ParseFile(path string, warns diag.Reporter) (*ast.Program, error) {
	buf, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	return ParseBuffer(buf, warns)
}

// ParseBuffer scans and parses an already loaded buffer. Callers that
// need the source text afterwards, to render fault frames, load the
// buffer themselves and come in through here.
func ParseBuffer(buf *source.Buffer, warns diag.Reporter) (*ast.Program, error) {
	tokens, err := NewScanner(buf).Tokenize()
	if err != nil {
		return nil, err
	}
	return NewParser(buf, tokens, warns).ParseProgram()
}
