package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mcc/internal/diag"
	"mcc/internal/parser"
)

var parCmd = &cobra.Command{
	Use:   "par <file>",
	Short: "Parse a source file and print its syntax tree",
	Long: `par runs the full front end and prints the parsed program in its
canonical source form.

Example:
  mcc par examples/test.mcs`,
	Args: cobra.ExactArgs(1),
	RunE: runPar,
}

func init() {
	rootCmd.AddCommand(parCmd)
}

func runPar(cmd *cobra.Command, args []string) error {
	startTime := time.Now()
	path := args[0]

	buf, err := loadSource(path)
	if err != nil {
		return err
	}

	warnings := &diag.Collector{}
	program, err := parser.ParseBuffer(buf, warnings)
	reportWarnings(buf.Text(), warnings.Faults)

	if err != nil {
		reported := reportError(buf.Text(), err)
		color.Red("Compilation failed after %s", formatDuration(time.Since(startTime)))
		return reported
	}

	fmt.Println(program.String())
	color.Green("Successfully processed %s in %s", path, formatDuration(time.Since(startTime)))

	return nil
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
