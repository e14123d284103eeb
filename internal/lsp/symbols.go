package lsp

import (
	"sort"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"mcc/internal/ast"
)

// collectDocumentSymbols flattens a program into the outline the editor
// shows: one symbol per function definition, in source order, with
// externs and entry points tagged through the detail text.
func collectDocumentSymbols(program *ast.Program) []protocol.DocumentSymbol {
	symbols := make([]protocol.DocumentSymbol, 0)

	if program == nil {
		return symbols
	}

	appendGroup := func(defs []*ast.FunctionDefinition, detail string) {
		for _, def := range defs {
			symbols = append(symbols, makeFunctionSymbol(def, detail))
		}
	}

	appendGroup(program.Externs, "extern function")
	appendGroup(program.EntryPoints, "entry point")
	appendGroup(program.Functions, "function")

	sort.Slice(symbols, func(i, j int) bool {
		a, b := symbols[i].Range.Start, symbols[j].Range.Start
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Character < b.Character
	})

	return symbols
}

func makeFunctionSymbol(def *ast.FunctionDefinition, detail string) protocol.DocumentSymbol {
	return protocol.DocumentSymbol{
		Name:           def.Name.Value,
		Detail:         ptrString(detail),
		Kind:           protocol.SymbolKindFunction,
		Range:          makeRange(def.Pos, def.EndPos),
		SelectionRange: makeRange(def.Name.Pos, def.Name.EndPos),
	}
}

func makeRange(pos, end ast.Position) protocol.Range {
	return protocol.Range{
		Start: makePosition(pos),
		End:   makePosition(end),
	}
}

func makePosition(pos ast.Position) protocol.Position {
	var line, column uint32
	if pos.Line > 0 {
		line = uint32(pos.Line - 1)
	}
	if pos.Column > 0 {
		column = uint32(pos.Column - 1)
	}
	return protocol.Position{Line: line, Character: column}
}
