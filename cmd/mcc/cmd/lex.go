package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mcc/internal/parser"
	"mcc/internal/source"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a source file and print the token stream",
	Long: `lex runs only the scanner and prints one token per line with its
position window, kind, and lexeme.

Example:
  mcc lex examples/test.mcs`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	buf, err := loadSource(args[0])
	if err != nil {
		return err
	}

	tokens, err := parser.NewScanner(buf).Tokenize()
	if err != nil {
		return reportError(buf.Text(), err)
	}

	for _, tok := range tokens {
		fmt.Println(formatToken(buf, tok))
	}

	return nil
}

// formatToken renders one token: line, column window, kind, and the
// lexeme for the kinds whose text the kind name does not imply.
func formatToken(buf *source.Buffer, tok parser.Token) string {
	begin := tok.Column()
	end := begin + (tok.End - tok.Begin)

	s := fmt.Sprintf("%d:%d-%d: %s", tok.Line, begin, end, tok.Kind)

	switch tok.Kind {
	case parser.IDENTIFIER, parser.INTEGER, parser.STRING:
		s += fmt.Sprintf(" `%s`", buf.Slice(tok.Begin, tok.End))
	}

	return s
}
