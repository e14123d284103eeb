// SPDX-License-Identifier: Apache-2.0
package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mcc/internal/types"
)

func TestEmptyBlockString(t *testing.T) {
	block := &Block{}
	assert.Equal(t, "{ }", block.String())
}

func TestReturnString(t *testing.T) {
	ret := &Return{
		Type:       types.U32,
		Expression: &Block{},
	}

	assert.Equal(t, "return u32 { };", ret.String())
}

func TestNestedBlockString(t *testing.T) {
	inner := &Block{Items: []BlockItem{
		&Return{Type: types.USize, Expression: &Block{}},
	}}
	outer := &Block{Items: []BlockItem{inner}}

	expected := "{\n  {\n    return usize { };\n  }\n}"
	assert.Equal(t, expected, outer.String())
}

func TestArgumentString(t *testing.T) {
	arg := &Argument{
		Name: Ident{Value: "fd"},
		Type: types.U32,
	}

	assert.Equal(t, "fd: u32", arg.String())
}

func TestFunctionDefinitionString(t *testing.T) {
	fn := &FunctionDefinition{
		Name: Ident{Value: "write"},
		Parameters: []*Argument{
			{Name: Ident{Value: "fd"}, Type: types.U32},
			{Name: Ident{Value: "buffer"}, Type: types.Pointer},
		},
		Variadic:   false,
		ReturnType: types.USize,
		Body:       &Block{},
	}

	assert.Equal(t, "fn write(fd: u32, buffer: pointer): usize { }", fn.String())
}

func TestVariadicFunctionString(t *testing.T) {
	fn := &FunctionDefinition{
		Name: Ident{Value: "printf"},
		Parameters: []*Argument{
			{Name: Ident{Value: "format"}, Type: types.String},
		},
		Variadic:   true,
		ReturnType: types.I32,
		Body:       &Block{},
	}

	assert.Equal(t, "fn printf(format: string, ...): i32 { }", fn.String())
}

func TestVariadicOnlyFunctionString(t *testing.T) {
	fn := &FunctionDefinition{
		Name:       Ident{Value: "junk"},
		Variadic:   true,
		ReturnType: types.U8,
		Body:       &Block{},
	}

	assert.Equal(t, "fn junk(...): u8 { }", fn.String())
}

func TestProgramStringGroupsDefinitions(t *testing.T) {
	program := &Program{
		Externs: []*FunctionDefinition{
			{Name: Ident{Value: "write"}, ReturnType: types.USize, Body: &Block{}},
		},
		EntryPoints: []*FunctionDefinition{
			{Name: Ident{Value: "main"}, ReturnType: types.U32, Body: &Block{}},
		},
		Functions: []*FunctionDefinition{
			{Name: Ident{Value: "helper"}, ReturnType: types.U8, Body: &Block{}},
		},
	}

	result := program.String()

	assert.Contains(t, result, "@extern fn write(): usize { }")
	assert.Contains(t, result, "@entry fn main(): u32 { }")
	assert.Contains(t, result, "fn helper(): u8 { }")

	// Externs print first, then entry points, then plain functions
	externPos := findSubstring(result, "@extern")
	entryPos := findSubstring(result, "@entry")
	helperPos := findSubstring(result, "fn helper")
	assert.True(t, externPos < entryPos, "externs should print before entry points")
	assert.True(t, entryPos < helperPos, "entry points should print before plain functions")
}

func findSubstring(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
