package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mjstrand/refsm"
	"github.com/mjstrand/refsm/internal/cli/output"
)

var (
	queryWord   string
	querySymbol string
	queryCount  int
)

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query <pattern>",
	Short: "Test membership or find the shortest word with an exact symbol count",
	Long: `Query compiles pattern to a minimal total DFA and answers one of
two questions against it:

  --word <w>                tests whether w is accepted
  --symbol <x> --count <k>   finds the length of the shortest accepted
                             word containing exactly k occurrences of x

Exactly one of --word or --symbol must be given.`,
	Example: `  refsm query "(a|b)*ab" --word aab
  refsm query "a+b" --symbol a --count 3`,
	Args: cobra.ExactArgs(1),
	Run:  runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&queryWord, "word", "", "word to test for membership")
	queryCmd.Flags().StringVar(&querySymbol, "symbol", "", "symbol to count occurrences of")
	queryCmd.Flags().IntVar(&queryCount, "count", 0, "exact occurrence count to search for")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) {
	pattern := args[0]
	formatter := output.NewFormatter(outputFormat, noColor)

	if queryWord == "" && querySymbol == "" {
		formatter.PrintError("one of --word or --symbol must be given")
		os.Exit(1)
	}
	if queryWord != "" && querySymbol != "" {
		formatter.PrintError("only one of --word or --symbol may be given")
		os.Exit(1)
	}

	d, err := refsm.Compile(pattern)
	if err != nil {
		formatter.PrintError("failed to compile pattern: %v", err)
		os.Exit(1)
	}

	if queryWord != "" {
		result := &output.QueryResult{
			Pattern: pattern,
			Word:    queryWord,
			Accepts: d.Accepts(queryWord),
		}
		if err := formatter.FormatQueryResult(result); err != nil {
			formatter.PrintError("failed to format output: %v", err)
			os.Exit(1)
		}
		return
	}

	symbols := []rune(querySymbol)
	if len(symbols) != 1 {
		formatter.PrintError("--symbol must be exactly one code point, got %q", querySymbol)
		os.Exit(1)
	}

	found, length := d.MinWordLenWithExactCount(symbols[0], queryCount)
	result := &output.QueryResult{
		Pattern: pattern,
		Symbol:  symbols[0],
		Count:   queryCount,
		Found:   found,
		Length:  length,
		IsQuery: true,
	}
	if err := formatter.FormatQueryResult(result); err != nil {
		formatter.PrintError("failed to format output: %v", err)
		os.Exit(1)
	}
}
