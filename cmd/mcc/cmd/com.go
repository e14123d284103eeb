package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mcc/internal/config"
	"mcc/internal/diag"
	"mcc/internal/parser"
)

var targetPath string

var comCmd = &cobra.Command{
	Use:   "com <file>",
	Short: "Compile a source file",
	Long: `com runs the front end over a source file and resolves the
compilation target. Code generation is not wired up yet, so the command
stops after the front end and reports what it would have built.

Example:
  mcc com examples/test.mcs
  mcc com --target release.toml examples/test.mcs`,
	Args: cobra.ExactArgs(1),
	RunE: runCom,
}

func init() {
	rootCmd.AddCommand(comCmd)
	comCmd.Flags().StringVarP(&targetPath, "target", "t", "", "target description file (default: mcc.toml when present)")
}

func runCom(cmd *cobra.Command, args []string) error {
	path := args[0]

	target, err := resolveTarget()
	if err != nil {
		return err
	}

	buf, err := loadSource(path)
	if err != nil {
		return err
	}

	warnings := &diag.Collector{}
	program, err := parser.ParseBuffer(buf, warnings)
	reportWarnings(buf.Text(), warnings.Faults)
	if err != nil {
		return reportError(buf.Text(), err)
	}

	if len(program.EntryPoints) == 0 {
		return fmt.Errorf("no '@entry' function in %s, nothing to build an executable around", path)
	}

	return fmt.Errorf("front end passed for %s; code generation for %s is not implemented yet", path, target)
}

// resolveTarget loads the target description: the --target file when
// given, otherwise mcc.toml from the working directory when present,
// otherwise the built-in default.
func resolveTarget() (config.Target, error) {
	if targetPath != "" {
		return config.Load(targetPath)
	}
	if _, err := os.Stat(config.DefaultPath); err == nil {
		return config.Load(config.DefaultPath)
	}
	return config.Default(), nil
}
