// Package builtins implements the small set of opaque builtin functions
// a program can call through the ('builtin', fn) callee protocol
// (spec.md §4.4): print_int and print_char. Each is registered as an
// istate.BuiltinCallee closing over the driver-provided output sink, so
// the stepper itself never touches I/O — it only ever dispatches to one
// of these and forwards its Transition unchanged.
package builtins

import (
	"fmt"
	"io"

	"github.com/cwbudde/go-cstep/internal/control"
	"github.com/cwbudde/go-cstep/internal/interperr"
	"github.com/cwbudde/go-cstep/internal/istate"
	"github.com/cwbudde/go-cstep/internal/value"
)

// Register builds the name -> callee table installed into a driver's
// global scope map, with every builtin's output routed to w.
func Register(w io.Writer) map[string]istate.BuiltinCallee {
	return map[string]istate.BuiltinCallee{
		"print_int":  {Name: "print_int", Fn: printInt(w)},
		"print_char": {Name: "print_char", Fn: printChar(w)},
	}
}

func printInt(w io.Writer) istate.BuiltinFunc {
	return func(st *istate.State, cont control.Cont, args []value.Value) istate.Transition {
		if len(args) != 1 {
			return istate.Transition{Err: interperr.NewSemanticErrorf(nil, "print_int: expected 1 argument, got %d", len(args))}
		}
		n, ok := args[0].(*value.IntegralValue)
		if !ok {
			return istate.Transition{Err: interperr.NewSemanticErrorf(nil, "print_int: argument is not an integral value")}
		}
		fmt.Fprintf(w, "%d\n", n.Int)
		return istate.Transition{Next: cont}
	}
}

func printChar(w io.Writer) istate.BuiltinFunc {
	return func(st *istate.State, cont control.Cont, args []value.Value) istate.Transition {
		if len(args) != 1 {
			return istate.Transition{Err: interperr.NewSemanticErrorf(nil, "print_char: expected 1 argument, got %d", len(args))}
		}
		n, ok := args[0].(*value.IntegralValue)
		if !ok {
			return istate.Transition{Err: interperr.NewSemanticErrorf(nil, "print_char: argument is not an integral value")}
		}
		fmt.Fprintf(w, "%c", byte(n.Int))
		return istate.Transition{Next: cont}
	}
}
