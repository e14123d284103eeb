package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Frame formats faults with surrounding source context in the style
// popularized by rustc. The plain single-line form (Fault.Error) stays
// the default; frames are opt-in for terminals.
type Frame struct {
	path  string
	lines []string
}

// NewFrame creates a frame renderer for a source file
func NewFrame(path, source string) *Frame {
	return &Frame{
		path:  path,
		lines: strings.Split(source, "\n"),
	}
}

// Format renders a fault with its source line, a caret marker, and one
// line of context on each side
func (fr *Frame) Format(f Fault) string {
	var result strings.Builder

	levelColor := severityColor(f.Severity)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	// Header: error: message
	result.WriteString(fmt.Sprintf("%s: %s\n", levelColor(f.Severity.String()), f.Message))

	// Location line: --> filename:line:column
	lineNumberWidth := lineNumberWidth(f.Line)
	indent := strings.Repeat(" ", lineNumberWidth)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), fr.path, f.Line, f.Column))

	// Faults without a cursor (load failures) have no line to show
	if f.Line <= 0 || f.Line > len(fr.lines) {
		return result.String()
	}

	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	if f.Line > 1 {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", lineNumberWidth, f.Line-1)),
			dim("│"),
			fr.lines[f.Line-2]))
	}

	result.WriteString(fmt.Sprintf("%s %s %s\n",
		bold(fmt.Sprintf("%*d", lineNumberWidth, f.Line)),
		dim("│"),
		fr.lines[f.Line-1]))

	marker := makeMarker(f.Column, f.Length, f.Severity)
	result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), marker))

	if f.Line < len(fr.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", lineNumberWidth, f.Line+1)),
			dim("│"),
			fr.lines[f.Line]))
	}

	return result.String()
}

func severityColor(s Severity) func(...interface{}) string {
	if s == Warning {
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	}
	return color.New(color.FgRed, color.Bold).SprintFunc()
}

// makeMarker creates the caret underline for the offending region
func makeMarker(column, length int, s Severity) string {
	if length <= 0 {
		length = 1
	}
	if column < 1 {
		column = 1
	}

	spaces := strings.Repeat(" ", column-1)
	marker := strings.Repeat("^", length)
	return spaces + severityColor(s)(marker)
}

func lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}
