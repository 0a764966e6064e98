package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mjstrand/refsm"
	"github.com/mjstrand/refsm/internal/cli/output"
)

// compileCmd represents the compile command
var compileCmd = &cobra.Command{
	Use:   "compile <pattern>",
	Short: "Compile a regex to a minimal total DFA",
	Long: `Compile runs the full pipeline: Thompson construction, epsilon
elimination, subset construction, completion, and minimization, reporting
the resulting automaton's state count and alphabet.`,
	Example: `  refsm compile "(a|b)*ab"
  refsm compile "(a|b)*ab" --output=json`,
	Args: cobra.ExactArgs(1),
	Run:  runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) {
	pattern := args[0]
	formatter := output.NewFormatter(outputFormat, noColor)

	d, err := refsm.Compile(pattern)
	if err != nil {
		formatter.PrintError("failed to compile pattern: %v", err)
		os.Exit(1)
	}

	result := &output.CompileResult{
		Pattern:  pattern,
		States:   d.StateCount(),
		Alphabet: alphabetString(d.Alphabet()),
		Stages:   []string{"thompson", "eliminate-epsilon", "subset", "make-total", "minimize"},
	}
	if err := formatter.FormatCompileResult(result); err != nil {
		formatter.PrintError("failed to format output: %v", err)
		os.Exit(1)
	}
}

func alphabetString(alphabet []rune) string {
	if len(alphabet) == 0 {
		return "{}"
	}
	symbols := make([]string, len(alphabet))
	for i, r := range alphabet {
		symbols[i] = string(r)
	}
	return "{" + strings.Join(symbols, ", ") + "}"
}
