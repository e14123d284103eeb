package diag

import "fmt"

// Class identifies the compilation phase a fault was raised in
type Class int

const (
	SourceLoad Class = iota
	Lex
	Parse
)

var classNames = [...]string{
	SourceLoad: "source",
	Lex:        "lex",
	Parse:      "parse",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "unknown"
	}
	return classNames[c]
}

// Severity represents how serious a fault is
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Fault is a position-annotated diagnostic. Faults with severity Error
// abort the phase that raised them; warnings flow through a Reporter
// and never interrupt a run.
type Fault struct {
	Class    Class
	Severity Severity
	Path     string
	Line     int // 1-based; 0 when no source cursor exists
	Column   int // 1-based; 0 when no source cursor exists
	Length   int // source bytes covered by the fault
	Message  string
}

// Error renders the single-line form written to the error stream:
// <line>:<column>:<path>: <message>
func (f Fault) Error() string {
	return fmt.Sprintf("%d:%d:%s: %s", f.Line, f.Column, f.Path, f.Message)
}

// Reporter receives faults that do not abort a run, such as warnings.
// Scanner and parser depend on this capability, not on a concrete sink.
type Reporter interface {
	Report(Fault)
}

// Collector is a Reporter that retains every fault it is handed,
// in order. Useful for tests and for the language server, which
// forwards collected faults as diagnostics instead of printing them.
type Collector struct {
	Faults []Fault
}

func (c *Collector) Report(f Fault) {
	c.Faults = append(c.Faults, f)
}

// Discard is a Reporter that drops everything.
type Discard struct{}

func (Discard) Report(Fault) {}
