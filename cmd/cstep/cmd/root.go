// Package cmd implements the cstep command tree: run, step, version.
// Grounded on cmd/dwscript/cmd/root.go's cobra layout (persistent
// --verbose flag, versioned root command, subcommands returning error
// from RunE).
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "cstep",
	Short: "A reifiable small-step interpreter for a C-subset AST",
	Long: `cstep drives a C-subset program one elementary computation at a time.

It has no parser: programs are hand-built node trees, selected by name
from a small built-in demo set (see "cstep run --list"). The point of
the exercise is the stepper itself — a pure transition function that a
driver repeatedly invokes, applying the effects it returns, to produce
a resumable interpreter suitable for step/step-over/step-out/rewind
debugging UIs.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("config", "", "path to a YAML config file (default: ~/.cstep.yaml)")
}
