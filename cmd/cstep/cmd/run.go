package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-cstep/internal/demo"
	"github.com/cwbudde/go-cstep/internal/driver"
	"github.com/cwbudde/go-cstep/internal/istate"
	"github.com/cwbudde/go-cstep/internal/tracejson"
)

var (
	runList  bool
	runTrace bool
)

var runCmd = &cobra.Command{
	Use:   "run [program]",
	Short: "Drive a built-in demo program to completion",
	Long: `Run a built-in demo program to completion and print main's result.

Examples:
  # List the available demo programs
  cstep run --list

  # Run one to completion
  cstep run call

  # Run it and print the full step trace as JSON
  cstep run call --trace`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runList, "list", false, "list available demo programs and exit")
	runCmd.Flags().BoolVar(&runTrace, "trace", false, "print the full step trace as JSON after running")
}

func runDemo(cmd *cobra.Command, args []string) error {
	if runList {
		for _, p := range demo.Programs {
			fmt.Printf("%-16s %s\n", p.Name, p.Description)
		}
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one program name; see --list")
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if runTrace {
		cfg.TraceByDefault = true
	}

	prog := demo.Find(args[0])
	if prog == nil {
		return fmt.Errorf("unknown demo program %q; see --list", args[0])
	}

	globals, entry, err := prog.Globals(os.Stdout)
	if err != nil {
		return err
	}
	for name, ref := range globals {
		if _, isBuiltin := ref.Value.(istate.BuiltinCallee); isBuiltin && !cfg.allows(name) {
			delete(globals, name)
		}
	}

	d := driver.New(prog.MemCapacity, globals, entry)
	for !d.Done {
		if cfg.MaxSteps > 0 && len(d.Trace) >= cfg.MaxSteps {
			return fmt.Errorf("%s: step limit of %d reached", prog.Name, cfg.MaxSteps)
		}
		if err := d.StepOnce(); err != nil {
			return fmt.Errorf("%s: %w", prog.Name, err)
		}
	}
	result := d.Result()

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Fprintf(os.Stderr, "%s: %d elementary steps\n", prog.Name, len(d.Trace))
	}

	fmt.Printf("%s => %s (want %s)\n", prog.Name, result.String(), prog.Want)

	if cfg.TraceByDefault {
		doc, err := tracejson.Build(d.Trace)
		if err != nil {
			return fmt.Errorf("building trace: %w", err)
		}
		fmt.Println(doc)
	}
	return nil
}
