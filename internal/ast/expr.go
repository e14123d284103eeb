package ast

// Expr is the expression family. The block expression is the sole
// variant today; the interface exists so the family can grow without
// touching existing call sites.
type Expr interface {
	Node
	isExpr()
}

func (*Block) isExpr() {}
