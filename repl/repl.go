// SPDX-License-Identifier: Apache-2.0

// Package repl parses source snippets interactively and echoes their
// syntax trees.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"mcc/internal/diag"
	"mcc/internal/parser"
)

const PROMPT = ">> "

// Start reads lines from in until an empty line flushes the accumulated
// snippet through the front end. The syntax tree, or the fault that
// stopped the parse, is written to out. End of input flushes whatever
// is pending and returns.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	var pending []string

	for {
		fmt.Fprint(out, PROMPT)

		if !scanner.Scan() {
			if len(pending) > 0 {
				evaluate(out, strings.Join(pending, "\n"))
			}
			return
		}

		line := scanner.Text()
		if strings.TrimSpace(line) != "" {
			pending = append(pending, line)
			continue
		}

		if len(pending) == 0 {
			continue
		}

		evaluate(out, strings.Join(pending, "\n"))
		pending = pending[:0]
	}
}

func evaluate(out io.Writer, text string) {
	warnings := &diag.Collector{}
	program, err := parser.ParseSource("repl", text, warnings)

	for _, fault := range warnings.Faults {
		fmt.Fprintln(out, fault.Error())
	}

	if err != nil {
		fmt.Fprintln(out, err.Error())
		return
	}

	fmt.Fprintf(out, "AST:\n%s\n", program.String())
}
