package demo

import (
	"fmt"
	"io"

	"github.com/cwbudde/go-cstep/internal/ast"
	"github.com/cwbudde/go-cstep/internal/builtins"
	"github.com/cwbudde/go-cstep/internal/istate"
	"github.com/cwbudde/go-cstep/internal/scope"
)

// Globals builds the global binding map a driver needs: every builtin
// (print_int, print_char, writing to w) plus every function this program
// defines, and returns main's body node as the entry point.
func (p Program) Globals(w io.Writer) (map[string]scope.Ref, *ast.Node, error) {
	globals := make(map[string]scope.Ref)
	for name, callee := range builtins.Register(w) {
		globals[name] = scope.Ref{Value: callee}
	}
	for _, fn := range p.Functions {
		globals[fn.Name] = scope.Ref{Value: istate.FunctionCallee{
			Name:  fn.Name,
			Proto: fn.Proto,
			Body:  fn.Body,
		}}
	}
	entry, ok := globals["main"]
	if !ok {
		return nil, nil, fmt.Errorf("demo %q defines no main function", p.Name)
	}
	callee, ok := entry.Value.(istate.FunctionCallee)
	if !ok {
		return nil, nil, fmt.Errorf("demo %q: main is not a function", p.Name)
	}
	return globals, callee.Body, nil
}
