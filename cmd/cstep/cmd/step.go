package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/cwbudde/go-cstep/internal/demo"
	"github.com/cwbudde/go-cstep/internal/driver"
	"github.com/cwbudde/go-cstep/internal/scope"
)

var (
	stepCount       int
	stepDumpControl bool
	stepDumpScope   bool
)

var stepCmd = &cobra.Command{
	Use:   "step [program]",
	Short: "Single-step a built-in demo program interactively",
	Long: `Step through a built-in demo program one elementary computation at a
time, printing what each step did.

With --steps N, advances N steps non-interactively and exits. Without
it, reads one-letter commands from stdin:
  n  step once
  o  step over (skip any call the current statement makes)
  u  step out (run until the current call returns)
  d  dump the current control descriptor chain
  s  dump the current scope
  q  quit`,
	Args: cobra.ExactArgs(1),
	RunE: stepDemo,
}

func init() {
	rootCmd.AddCommand(stepCmd)

	stepCmd.Flags().IntVar(&stepCount, "steps", 0, "advance this many steps non-interactively, then exit")
	stepCmd.Flags().BoolVar(&stepDumpControl, "dump-control", false, "pretty-print the control descriptor after every step")
	stepCmd.Flags().BoolVar(&stepDumpScope, "dump-scope", false, "list in-scope bindings after every step")
}

func stepDemo(cmd *cobra.Command, args []string) error {
	prog := demo.Find(args[0])
	if prog == nil {
		return fmt.Errorf("unknown demo program %q; see 'cstep run --list'", args[0])
	}

	globals, entry, err := prog.Globals(os.Stdout)
	if err != nil {
		return err
	}
	d := driver.New(prog.MemCapacity, globals, entry)

	if stepCount > 0 {
		for i := 0; i < stepCount && !d.Done; i++ {
			if err := d.StepOnce(); err != nil {
				return err
			}
			describeStep(d)
		}
		return nil
	}

	return interactiveLoop(d)
}

func describeStep(d *driver.Driver) {
	entry := d.Trace[len(d.Trace)-1]
	node := "<nil>"
	if entry.Node != nil {
		node = string(entry.Node.Kind)
	}
	fmt.Printf("#%-4d %-28s step=%-3d effects=%d\n", entry.Index, node, entry.Step, len(entry.Effects))
	if stepDumpControl {
		if c := d.Control(); c != nil {
			fmt.Printf("%# v\n", pretty.Formatter(c))
		}
	}
	if stepDumpScope {
		for _, e := range scope.Dump(d.Scope()) {
			fmt.Printf("  %s = %v\n", e.Name, e.Ref)
		}
	}
	if d.Done {
		fmt.Printf("done: %s\n", d.Result().String())
	}
}

func interactiveLoop(d *driver.Driver) error {
	scanner := bufio.NewScanner(os.Stdin)
	for !d.Done {
		fmt.Print("(cstep) ")
		if !scanner.Scan() {
			return nil
		}
		var stepErr error
		switch scanner.Text() {
		case "n", "":
			stepErr = d.StepOnce()
		case "o":
			stepErr = d.StepOver()
		case "u":
			stepErr = d.StepOut()
		case "d":
			if c := d.Control(); c != nil {
				fmt.Printf("%# v\n", pretty.Formatter(c))
			}
			continue
		case "s":
			for _, e := range scope.Dump(d.Scope()) {
				fmt.Printf("  %s = %v\n", e.Name, e.Ref)
			}
			continue
		case "q":
			return nil
		default:
			fmt.Println("commands: n, o, u, d, s, q")
			continue
		}
		if stepErr != nil {
			return stepErr
		}
		if len(d.Trace) > 0 {
			describeStep(d)
		}
	}
	return nil
}
