package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mjstrand/refsm"
	"github.com/mjstrand/refsm/internal/cli/output"
)

var parseRPN bool

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <pattern>",
	Short: "Parse a regex into its AST and dump it back to text",
	Long: `Parse validates pattern against the supported grammar (literals, 1
for epsilon, |, concatenation, and the *, ?, + quantifiers) and prints the
fully-parenthesized text form of the parsed tree.`,
	Example: `  # Parse an infix pattern
  refsm parse "(a|b)*ab"

  # Parse a postfix (RPN) pattern
  refsm parse --rpn "ab.c+"`,
	Args: cobra.ExactArgs(1),
	Run:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseRPN, "rpn", false, "parse pattern as reverse Polish notation instead of infix")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) {
	pattern := args[0]
	formatter := output.NewFormatter(outputFormat, noColor)

	var (
		r   refsm.Regex
		err error
	)
	if parseRPN {
		r, err = refsm.ParseRPN(pattern)
	} else {
		r, err = refsm.ParseInfix(pattern)
	}
	if err != nil {
		formatter.PrintError("failed to parse pattern: %v", err)
		os.Exit(1)
	}

	result := &output.ParseResult{
		Pattern: pattern,
		Tree:    r.Dump(),
	}
	if err := formatter.FormatParseResult(result); err != nil {
		formatter.PrintError("failed to format output: %v", err)
		os.Exit(1)
	}
}
