package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mjstrand/refsm"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display version information for the refsm CLI tool.`,
	Run:   runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("refsm version %s\n", refsm.FullVersion())
	fmt.Printf("Regex <-> finite automaton toolkit\n")
	fmt.Printf("\nOperations:\n")
	fmt.Printf("  • parse       regex -> AST\n")
	fmt.Printf("  • compile     regex -> minimal total DFA\n")
	fmt.Printf("  • minimize    DFA -> minimal DFA\n")
	fmt.Printf("  • complement  DFA -> complement DFA\n")
	fmt.Printf("  • regex       automaton -> regex (state elimination)\n")
	fmt.Printf("  • query       membership and shortest-word queries\n")
	fmt.Printf("  • dot         Graphviz diagram output\n")
}
