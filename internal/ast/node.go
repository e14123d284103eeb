package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (p *Program) NodePos() Position    { return p.Pos }
func (p *Program) NodeEndPos() Position { return p.EndPos }
func (*Program) NodeType() NodeType     { return PROGRAM }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (f *FunctionDefinition) NodePos() Position    { return f.Pos }
func (f *FunctionDefinition) NodeEndPos() Position { return f.EndPos }
func (*FunctionDefinition) NodeType() NodeType     { return FUNCTION_DEFINITION }

func (a *Argument) NodePos() Position    { return a.Pos }
func (a *Argument) NodeEndPos() Position { return a.EndPos }
func (*Argument) NodeType() NodeType     { return ARGUMENT }

func (b *Block) NodePos() Position    { return b.Pos }
func (b *Block) NodeEndPos() Position { return b.EndPos }
func (*Block) NodeType() NodeType     { return BLOCK }

func (r *Return) NodePos() Position    { return r.Pos }
func (r *Return) NodeEndPos() Position { return r.EndPos }
func (*Return) NodeType() NodeType     { return RETURN_STMT }
