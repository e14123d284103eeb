package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"mcc/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse source snippets interactively",
	Long: `repl reads source from standard input and echoes the syntax tree of
every snippet. Lines accumulate until an empty line flushes them, so
multi-line functions can be entered naturally.`,
	Run: func(cmd *cobra.Command, args []string) {
		repl.Start(os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
