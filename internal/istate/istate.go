// Package istate defines the stepper's view of driver-owned state and the
// Transition it hands back, plus the callee tags (function/builtin) a
// DeclRefExpr can resolve to. It sits below the stepper package so that
// both internal/stepper and internal/builtins can depend on the same
// State/Transition/BuiltinFunc shapes without stepper and builtins
// importing one another.
package istate

import (
	"github.com/cwbudde/go-cstep/internal/ast"
	"github.com/cwbudde/go-cstep/internal/control"
	"github.com/cwbudde/go-cstep/internal/effect"
	"github.com/cwbudde/go-cstep/internal/memory"
	"github.com/cwbudde/go-cstep/internal/scope"
	"github.com/cwbudde/go-cstep/internal/types"
	"github.com/cwbudde/go-cstep/internal/value"
)

// State is the read-only-to-the-stepper state described in spec §3: the
// most recently produced result, the memory store, the scope chain and
// the global map. The stepper never mutates these fields directly.
//
// Result is `any`, not value.Value: most steps produce a runtime value,
// but the declaration/type steppers (BuiltinType, PointerType, ...) thread
// a *types.Type through the same slot, and ParmVarDecl threads a
// control.FuncParam. One untyped slot mirrors the source's single
// dynamically-typed result field; callers narrow with a type assertion.
type State struct {
	Result    any
	Memory    *memory.Memory
	Scope     *scope.Scope
	GlobalMap map[string]scope.Ref
}

// Transition is everything one Step call returns: the control to resume
// with next (a child/parent frame, or the Return sentinel), an optional
// result for state.Result, the ordered effects to apply before the next
// step, and an optional terminal error.
type Transition struct {
	Next    control.Cont
	Result  any
	Effects []effect.Effect
	Err     error
}

// BuiltinFunc is an opaque builtin implementation: given the current
// state, the continuation to resume after the call completes, and the
// evaluated arguments, it returns a transition directly, taking over
// responsibility for any further sub-steps and effects (spec §4.4).
type BuiltinFunc func(st *State, cont control.Cont, args []value.Value) Transition

// FunctionCallee is what a DeclRefExpr naming a user function resolves
// to: enough to build parameter types from Proto and step into Body. It
// also satisfies value.Value so a callee can flow through state.Result
// and scope.Ref.Value like any other DeclRefExpr result (spec §4.4: "the
// callee value's tag").
type FunctionCallee struct {
	Name  string
	Proto *ast.Node // FunctionProtoType | FunctionNoProtoType
	Body  *ast.Node // CompoundStmt
}

func (FunctionCallee) isCallee()         {}
func (FunctionCallee) Type() *types.Type { return nil }
func (FunctionCallee) ToBool() bool      { return true }
func (f FunctionCallee) String() string  { return "function " + f.Name }

// BuiltinCallee is what a DeclRefExpr naming a builtin resolves to.
type BuiltinCallee struct {
	Name string
	Fn   BuiltinFunc
}

func (BuiltinCallee) isCallee()         {}
func (BuiltinCallee) Type() *types.Type { return nil }
func (BuiltinCallee) ToBool() bool      { return true }
func (b BuiltinCallee) String() string  { return "builtin " + b.Name }

// Callee is the marker interface for the two callable value tags the
// call protocol dispatches on.
type Callee interface {
	isCallee()
}
