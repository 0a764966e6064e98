package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mjstrand/refsm/internal/cliconfig"
)

var (
	// Global flags
	outputFormat string
	noColor      bool
	configFile   string

	// cfg holds the loaded (or default) persistent configuration, set up in
	// initConfig and consulted by subcommands that need a default value
	// (e.g. the dot binary to shell out to) not overridden by a flag.
	cfg = cliconfig.DefaultConfig()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "refsm",
	Short: "Regex <-> finite automaton toolkit",
	Long: `refsm parses regular expressions into an AST, builds automata from
them (Thompson construction, epsilon-elimination, subset construction,
completion, minimization, complement) and converts automata back to
regexes via state elimination. It also answers membership and
shortest-word queries against a compiled automaton.`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text|json|table)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable color output")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file path")
}

func initConfig() {
	if noColor {
		os.Setenv("NO_COLOR", "1")
	}

	path := configFile
	if path == "" {
		path = cliconfig.DefaultConfigFilePath
	}
	if loaded, err := cliconfig.NewConfig(path); err == nil {
		cfg = loaded
	}

	if !rootCmd.PersistentFlags().Changed("output") && cfg.OutputFormat != "" {
		outputFormat = cfg.OutputFormat
	}
	if !rootCmd.PersistentFlags().Changed("no-color") && cfg.NoColor {
		noColor = true
	}
}

// exitWithError prints error and exits with code 1
func exitWithError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
