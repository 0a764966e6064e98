package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Formatter handles output formatting
type Formatter struct {
	writer  io.Writer
	format  string
	noColor bool
}

// NewFormatter creates a new formatter
func NewFormatter(format string, noColor bool) *Formatter {
	if noColor {
		color.NoColor = true
	}

	return &Formatter{
		writer:  os.Stdout,
		format:  format,
		noColor: noColor,
	}
}

// ParseResult represents the result of a parse command
type ParseResult struct {
	Pattern string
	Tree    string
}

// CompileResult represents the result of compiling a pattern to an
// automaton (compile/minimize/complement commands)
type CompileResult struct {
	Pattern    string
	States     int
	Alphabet   string
	Stages     []string // pipeline stages applied, in order
}

// QueryResult represents the result of a membership or shortest-word query
type QueryResult struct {
	Pattern string
	Word    string  // set for membership queries
	Accepts bool    // set for membership queries
	Symbol  rune    // set for shortest-word queries
	Count   int     // set for shortest-word queries
	Found   bool    // set for shortest-word queries
	Length  int     // set for shortest-word queries
	IsQuery bool    // true for shortest-word queries, false for membership
}

// RegexResult represents the result of synthesizing a regex from an automaton
type RegexResult struct {
	Pattern string // original source pattern, if any
	Regex   string
}

// FormatParseResult formats a parse command result
func (f *Formatter) FormatParseResult(result *ParseResult) error {
	switch f.format {
	case "json":
		return f.encode(result)
	default:
		fmt.Fprintf(f.writer, "%s %s\n", f.colorize("Pattern:", color.FgCyan), result.Pattern)
		fmt.Fprintln(f.writer, result.Tree)
		return nil
	}
}

// FormatCompileResult formats a compile/minimize/complement command result
func (f *Formatter) FormatCompileResult(result *CompileResult) error {
	switch f.format {
	case "json":
		return f.encode(result)
	case "table":
		fmt.Fprintln(f.writer, "┌────────────────┬─────────────────────────┐")
		fmt.Fprintln(f.writer, "│ Field          │ Value                   │")
		fmt.Fprintln(f.writer, "├────────────────┼─────────────────────────┤")
		fmt.Fprintf(f.writer, "│ %-14s │ %-23d │\n", "States", result.States)
		fmt.Fprintf(f.writer, "│ %-14s │ %-23s │\n", "Alphabet", result.Alphabet)
		fmt.Fprintln(f.writer, "└────────────────┴─────────────────────────┘")
		return nil
	default:
		fmt.Fprintf(f.writer, "%s %s\n", f.colorize("Pattern:", color.FgCyan), result.Pattern)
		fmt.Fprintf(f.writer, "Pipeline: %v\n", result.Stages)
		fmt.Fprintf(f.writer, "States: %d\n", result.States)
		fmt.Fprintf(f.writer, "Alphabet: %s\n", result.Alphabet)
		return nil
	}
}

// FormatQueryResult formats a membership or shortest-word query result
func (f *Formatter) FormatQueryResult(result *QueryResult) error {
	switch f.format {
	case "json":
		return f.encode(result)
	default:
		if result.IsQuery {
			if result.Found {
				fmt.Fprintf(f.writer, "%s shortest word with exactly %d occurrences of %q has length %d\n",
					f.colorize("✓", color.FgGreen), result.Count, result.Symbol, result.Length)
			} else {
				fmt.Fprintf(f.writer, "%s no word with exactly %d occurrences of %q is accepted\n",
					f.colorize("✗", color.FgRed), result.Count, result.Symbol)
			}
			return nil
		}
		if result.Accepts {
			fmt.Fprintf(f.writer, "%s %q is accepted\n", f.colorize("✓", color.FgGreen), result.Word)
		} else {
			fmt.Fprintf(f.writer, "%s %q is rejected\n", f.colorize("✗", color.FgRed), result.Word)
		}
		return nil
	}
}

// FormatRegexResult formats a regex-synthesis command result
func (f *Formatter) FormatRegexResult(result *RegexResult) error {
	switch f.format {
	case "json":
		return f.encode(result)
	default:
		fmt.Fprintln(f.writer, result.Regex)
		return nil
	}
}

func (f *Formatter) encode(v interface{}) error {
	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Helper functions

func (f *Formatter) colorize(text string, attr color.Attribute) string {
	if f.noColor {
		return text
	}
	return color.New(attr).Sprint(text)
}

// PrintError prints an error message
func (f *Formatter) PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "%s %s\n", f.colorize("Error:", color.FgRed), msg)
}

// PrintWarning prints a warning message
func (f *Formatter) PrintWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(f.writer, "%s %s\n", f.colorize("Warning:", color.FgYellow), msg)
}

// PrintInfo prints an info message
func (f *Formatter) PrintInfo(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(f.writer, "%s %s\n", f.colorize("Info:", color.FgCyan), msg)
}

// PrintSuccess prints a success message
func (f *Formatter) PrintSuccess(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(f.writer, "%s %s\n", f.colorize("✓", color.FgGreen), msg)
}
