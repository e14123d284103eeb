package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"mcc/internal/diag"
)

// ConvertFaults transforms front end faults into LSP diagnostics for IDE
// display. Fault positions are 1-based while the protocol counts from
// zero; source load faults carry no cursor at all and are pinned to the
// start of the file.
func ConvertFaults(faults []diag.Fault) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, fault := range faults {
		var line, column uint32
		if fault.Line > 0 {
			line = uint32(fault.Line - 1)
		}
		if fault.Column > 0 {
			column = uint32(fault.Column - 1)
		}

		length := uint32(1)
		if fault.Length > 0 {
			length = uint32(fault.Length)
		}

		severity := protocol.DiagnosticSeverityError
		if fault.Severity == diag.Warning {
			severity = protocol.DiagnosticSeverityWarning
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: column},
				End:   protocol.Position{Line: line, Character: column + length},
			},
			Severity: ptrSeverity(severity),
			Source:   ptrString("mcc-" + fault.Class.String()),
			Message:  fault.Message,
		})
	}

	return diagnostics
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
