package ast

import (
	"fmt"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder

	writeGroup := func(directive string, fns []*FunctionDefinition) {
		for _, fn := range fns {
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			if directive != "" {
				b.WriteString(directive)
				b.WriteString(" ")
			}
			b.WriteString(fn.String())
			b.WriteString("\n")
		}
	}

	writeGroup("@extern", p.Externs)
	writeGroup("@entry", p.EntryPoints)
	writeGroup("", p.Functions)

	return b.String()
}

func (f *FunctionDefinition) String() string {
	var b strings.Builder

	b.WriteString("fn ")
	b.WriteString(f.Name.Value)
	b.WriteString("(")
	for i, param := range f.Parameters {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(param.String())
	}
	if f.Variadic {
		if len(f.Parameters) > 0 {
			b.WriteString(", ")
		}
		b.WriteString("...")
	}
	b.WriteString("): ")
	b.WriteString(f.ReturnType.String())
	b.WriteString(" ")
	b.WriteString(f.Body.String())

	return b.String()
}

func (a *Argument) String() string {
	return fmt.Sprintf("%s: %s", a.Name.Value, a.Type)
}

func (b *Block) String() string {
	if len(b.Items) == 0 {
		return "{ }"
	}

	var out strings.Builder
	out.WriteString("{\n")
	for _, item := range b.Items {
		out.WriteString("  " + strings.ReplaceAll(item.String(), "\n", "\n  "))
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}

func (r *Return) String() string {
	return fmt.Sprintf("return %s %s;", r.Type, r.Expression.String())
}

func (i *Ident) String() string {
	return i.Value
}
