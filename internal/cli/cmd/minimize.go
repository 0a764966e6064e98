package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mjstrand/refsm"
	"github.com/mjstrand/refsm/internal/cli/output"
)

// minimizeCmd represents the minimize command
var minimizeCmd = &cobra.Command{
	Use:   "minimize <pattern>",
	Short: "Compile a regex to a total DFA and minimize it, reporting the state count",
	Long: `Minimize builds a total DFA from pattern (without the final
minimization step) and a minimal total DFA, so the reported state counts
show how much minimization collapsed.`,
	Example: `  refsm minimize "a|a"`,
	Args:    cobra.ExactArgs(1),
	Run:     runMinimize,
}

func init() {
	rootCmd.AddCommand(minimizeCmd)
}

func runMinimize(cmd *cobra.Command, args []string) {
	pattern := args[0]
	formatter := output.NewFormatter(outputFormat, noColor)

	r, err := refsm.ParseInfix(pattern)
	if err != nil {
		formatter.PrintError("failed to parse pattern: %v", err)
		os.Exit(1)
	}

	n := refsm.FromRegex(r)
	n.EliminateEpsilon()
	d := n.ToDFA()
	d.MakeTotal()
	beforeStates := d.StateCount()

	d.Minimize()

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
	formatter.PrintInfo("total DFA had %d states before minimization, %d after", beforeStates, d.StateCount())
}
