package ast

import "mcc/internal/types"

// Program is the root of the tree for one source file. Definitions are
// grouped by how they were introduced: bare `fn` definitions, `@extern`
// declarations, and `@entry` entry points. Source order is preserved
// within each group.
type Program struct {
	Pos         Position
	EndPos      Position
	Functions   []*FunctionDefinition
	Externs     []*FunctionDefinition
	EntryPoints []*FunctionDefinition
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Ident represents any identifier like function or parameter names
// Example: "main", "write", "fd"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// FunctionDefinition represents a function header and its body
// Example: "fn write(fd: u32, buffer: pointer, ...): usize { }"
type FunctionDefinition struct {
	Pos        Position
	EndPos     Position
	Name       Ident
	Parameters []*Argument
	Variadic   bool // trailing "..." in the parameter list
	ReturnType types.Type
	Body       *Block
}

// Argument represents a typed formal parameter
// Example: "fd: u32", "buffer: pointer"
type Argument struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   types.Type
}

// Block represents a braced sequence of statements and expressions.
// A block is itself an expression, so blocks nest arbitrarily.
// Example: "{ return u32 { }; }"
type Block struct {
	Pos    Position
	EndPos Position
	Items  []BlockItem
}

// Return represents a return statement with its declared result type
// Example: "return u32 { };"
type Return struct {
	Pos        Position
	EndPos     Position
	Type       types.Type
	Expression Expr
}
