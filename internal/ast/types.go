package ast

type NodeType int

const (
	PROGRAM NodeType = iota
	IDENT

	// Definitions
	FUNCTION_DEFINITION
	ARGUMENT

	// Statements and expressions
	BLOCK
	RETURN_STMT
)
