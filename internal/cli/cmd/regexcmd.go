package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mjstrand/refsm"
	"github.com/mjstrand/refsm/internal/cli/output"
)

// regexCmd represents the regex command: automaton -> regex via state
// elimination. Since the CLI's only automaton source is a compiled
// pattern, this doubles as a round-trip check: compile pattern, then
// synthesize a regex for the resulting automaton.
var regexCmd = &cobra.Command{
	Use:   "regex <pattern>",
	Short: "Compile a regex and synthesize an equivalent regex via state elimination",
	Long: `Regex compiles pattern to a minimal total DFA and runs state
elimination (Kleene's algorithm) to synthesize a new regex for the same
language. The result is correct but not minimized or canonicalized.`,
	Example: `  refsm regex "(a|b)*ab"`,
	Args:    cobra.ExactArgs(1),
	Run:     runRegex,
}

func init() {
	rootCmd.AddCommand(regexCmd)
}

func runRegex(cmd *cobra.Command, args []string) {
	pattern := args[0]
	formatter := output.NewFormatter(outputFormat, noColor)

	d, err := refsm.Compile(pattern)
	if err != nil {
		formatter.PrintError("failed to compile pattern: %v", err)
		os.Exit(1)
	}

	r2 := d.ToRegex()
	result := &output.RegexResult{
		Pattern: pattern,
		Regex:   r2.Dump(),
	}
	if err := formatter.FormatRegexResult(result); err != nil {
		formatter.PrintError("failed to format output: %v", err)
		os.Exit(1)
	}
}
