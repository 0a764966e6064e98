package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mjstrand/refsm"
	"github.com/mjstrand/refsm/internal/cli/output"
)

// complementCmd represents the complement command
var complementCmd = &cobra.Command{
	Use:   "complement <pattern>",
	Short: "Compile a regex, then complement its minimal total DFA, and test a word against it",
	Long: `Complement compiles pattern to a minimal total DFA, flips its
accept set, and reports whether word is accepted by the complemented
automaton (i.e. whether word is NOT in L(pattern)).`,
	Example: `  refsm complement "ab" --word ba`,
	Args:    cobra.ExactArgs(1),
	Run:     runComplement,
}

var complementWord string

func init() {
	complementCmd.Flags().StringVar(&complementWord, "word", "", "word to test against the complemented automaton")
	rootCmd.AddCommand(complementCmd)
}

func runComplement(cmd *cobra.Command, args []string) {
	pattern := args[0]
	formatter := output.NewFormatter(outputFormat, noColor)

	d, err := refsm.Compile(pattern)
	if err != nil {
		formatter.PrintError("failed to compile pattern: %v", err)
		os.Exit(1)
	}
	d.Complement()

	if complementWord == "" {
		result := &output.CompileResult{
			Pattern:  pattern,
			States:   d.StateCount(),
			Alphabet: alphabetString(d.Alphabet()),
			Stages:   []string{"thompson", "eliminate-epsilon", "subset", "make-total", "minimize", "complement"},
		}
		if err := formatter.FormatCompileResult(result); err != nil {
			formatter.PrintError("failed to format output: %v", err)
			os.Exit(1)
		}
		return
	}

	result := &output.QueryResult{
		Pattern: pattern,
		Word:    complementWord,
		Accepts: d.Accepts(complementWord),
	}
	if err := formatter.FormatQueryResult(result); err != nil {
		formatter.PrintError("failed to format output: %v", err)
		os.Exit(1)
	}
}
