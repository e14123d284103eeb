package ast

// BlockItem is anything that can appear in a block body: statements
// and bare expressions, in source order.
type BlockItem interface {
	Node
	isBlockItem()
}

func (*Return) isBlockItem() {}

func (*Block) isBlockItem() {}
