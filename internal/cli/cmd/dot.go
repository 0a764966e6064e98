package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mjstrand/refsm"
	"github.com/mjstrand/refsm/internal/cli/output"
)

var (
	dotOutputPath string
	dotRenderPNG  bool
)

// dotCmd represents the dot command
var dotCmd = &cobra.Command{
	Use:   "dot <pattern>",
	Short: "Compile a regex and emit its automaton as a Graphviz digraph",
	Long: `Dot compiles pattern to a minimal total DFA and writes its
Graphviz DOT source to stdout (or --out). With --render, it instead
shells out to the dot binary to produce a PNG at --out. If --out is
empty, the file is written to the config file's output_dir (graph.dot or
graph.png) when set, or to stdout (DOT source) / the working directory
(PNG) otherwise.`,
	Example: `  refsm dot "(a|b)*ab"
  refsm dot "(a|b)*ab" --out graph.dot
  refsm dot "(a|b)*ab" --render --out graph.png`,
	Args: cobra.ExactArgs(1),
	Run:  runDot,
}

func init() {
	dotCmd.Flags().StringVar(&dotOutputPath, "out", "", "output file path (defaults to stdout, or graph.png with --render)")
	dotCmd.Flags().BoolVar(&dotRenderPNG, "render", false, "render to PNG via the Graphviz dot binary instead of writing DOT source")
	rootCmd.AddCommand(dotCmd)
}

func runDot(cmd *cobra.Command, args []string) {
	pattern := args[0]
	formatter := output.NewFormatter(outputFormat, noColor)

	d, err := refsm.Compile(pattern)
	if err != nil {
		formatter.PrintError("failed to compile pattern: %v", err)
		os.Exit(1)
	}

	if dotRenderPNG {
		png, err := d.RenderPNGWith(cfg.DotBinary)
		if err != nil {
			formatter.PrintError("failed to render PNG (is graphviz's dot installed?): %v", err)
			os.Exit(1)
		}
		path := dotOutputPath
		if path == "" {
			path = defaultOutputPath("graph.png")
		}
		if err := os.WriteFile(path, png, 0644); err != nil {
			formatter.PrintError("failed to write %s: %v", path, err)
			os.Exit(1)
		}
		formatter.PrintSuccess("wrote %s", path)
		return
	}

	source := d.Dot()
	path := dotOutputPath
	if path == "" && cfg.OutputDir != "" {
		path = defaultOutputPath("graph.dot")
	}
	if path == "" {
		os.Stdout.WriteString(source)
		return
	}
	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		formatter.PrintError("failed to write %s: %v", path, err)
		os.Exit(1)
	}
	formatter.PrintSuccess("wrote %s", path)
}

// defaultOutputPath builds the path a dot artifact is written to when --out
// is unset: name under the config's output_dir if one is configured,
// otherwise name in the working directory.
func defaultOutputPath(name string) string {
	if cfg.OutputDir == "" {
		return name
	}
	return filepath.Join(cfg.OutputDir, name)
}
