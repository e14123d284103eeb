package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mcc/internal/diag"
	"mcc/internal/source"
)

var pretty bool

// errReported marks failures whose diagnostics were already written to
// stderr; Execute only carries the exit code for them.
var errReported = errors.New("diagnostics reported")

var rootCmd = &cobra.Command{
	Use:   "mcc",
	Short: "Compiler front end for mcc source files",
	Long: `mcc drives the compiler front end: it scans and parses .mcs source
files, reports faults with precise source positions, and prints token
streams or syntax trees for inspection.

Commands:
  lex      - print the token stream of a file
  par      - parse a file and print its syntax tree
  com      - run the front end and resolve the compilation target
  repl     - parse source snippets interactively
  version  - print version information`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "render faults as annotated source frames")
}

// reportFault writes one fault to stderr: a single line by default, an
// annotated source frame under --pretty.
func reportFault(text string, fault diag.Fault) {
	if pretty {
		fmt.Fprint(os.Stderr, diag.NewFrame(fault.Path, text).Format(fault))
		return
	}
	fmt.Fprintln(os.Stderr, fault.Error())
}

// reportError renders the fault wrapped in err and degrades to returning
// err untouched when it is not a fault.
func reportError(text string, err error) error {
	var fault diag.Fault
	if errors.As(err, &fault) {
		reportFault(text, fault)
		return errReported
	}
	return err
}

func reportWarnings(text string, warnings []diag.Fault) {
	for _, fault := range warnings {
		reportFault(text, fault)
	}
}

// loadSource reads a file through the front end's loader so that load
// failures surface as faults like everything else.
func loadSource(path string) (*source.Buffer, error) {
	buf, err := source.Load(path)
	if err != nil {
		return nil, reportError("", err)
	}
	return buf, nil
}
