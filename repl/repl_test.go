package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEchoesSyntaxTree(t *testing.T) {
	in := strings.NewReader("fn id(): u8 { }\n\n")
	var out bytes.Buffer

	Start(in, &out)

	assert.Contains(t, out.String(), PROMPT)
	assert.Contains(t, out.String(), "AST:\nfn id(): u8 { }\n")
}

func TestAccumulatesUntilBlankLine(t *testing.T) {
	in := strings.NewReader("fn main(): u32 {\n    return u32 { };\n}\n\n")
	var out bytes.Buffer

	Start(in, &out)

	assert.Contains(t, out.String(), "AST:\nfn main(): u32 {\n  return u32 { };\n}\n")
}

func TestFlushesPendingInputAtEOF(t *testing.T) {
	in := strings.NewReader("fn id(): u8 { }\n")
	var out bytes.Buffer

	Start(in, &out)

	assert.Contains(t, out.String(), "AST:")
}

func TestReportsFaults(t *testing.T) {
	in := strings.NewReader("fn 5\n\n")
	var out bytes.Buffer

	Start(in, &out)

	assert.Contains(t, out.String(), "1:4:repl: expected function name")
	assert.NotContains(t, out.String(), "AST:")
}

func TestReportsWarningsAndTree(t *testing.T) {
	in := strings.NewReader("@entry fn a(): u8 { }\n@entry fn b(): u8 { }\n\n")
	var out bytes.Buffer

	Start(in, &out)

	assert.Contains(t, out.String(), "2:2:repl: duplicate '@entry' directive on 'b', 'a' is already an entry point")
	assert.Contains(t, out.String(), "AST:")
}

func TestBlankInputPrintsNothing(t *testing.T) {
	in := strings.NewReader("\n\n")
	var out bytes.Buffer

	Start(in, &out)

	assert.NotContains(t, out.String(), "AST:")
}
