// Package control defines the control descriptor the stepper advances one
// node at a time, and the Cont continuation it carries back to its parent
// (spec §3). The descriptor is the source's open-ended record rendered as
// a plain struct with optional fields, rather than a tagged variant per
// kind: simpler to work with for a dispatch-by-switch stepper of this
// size, at the cost of exhaustiveness checking the design notes call out
// as the tradeoff (see DESIGN.md).
package control

import (
	"github.com/cwbudde/go-cstep/internal/ast"
	"github.com/cwbudde/go-cstep/internal/types"
	"github.com/cwbudde/go-cstep/internal/value"
)

// Mode selects whether an expression is evaluated for its address
// (LValue) or its value (Value).
type Mode int

const (
	ValueMode Mode = iota
	LValueMode
)

// Seq marks a sequence-point boundary a driver may want to observe.
type Seq int

const (
	NoSeq Seq = iota
	ExprSeq
	StmtSeq
)

// Step tags used by the call protocol in place of small re-entry
// integers, since CallExpr's two special re-entry points don't fit the
// numeric step sequence of argument collection.
const (
	CallDispatch  = -1 // 'F': arguments collected, ready to dispatch on callee
	CallReturn    = -2 // 'R': callee has returned, forward its value
	CallProtoDone = -3 // function callee's prototype type has been evaluated
)

// FuncParam pairs a formal parameter's name with its declared type, as
// produced by stepping a ParmVarDecl.
type FuncParam struct {
	Name string
	Type *types.Type
}

// Cont is the reified "rest of the computation": either a parent Control
// frame, or the Return sentinel signalling "unwind one function frame".
type Cont struct {
	Frame  *Control
	Return bool
}

// Of wraps a parent frame as a continuation.
func Of(c *Control) Cont { return Cont{Frame: c} }

// ReturnCont is the sentinel continuation that unwinds a function frame.
var ReturnCont = Cont{Return: true}

// Control is the descriptor for one in-progress AST node: which node,
// which sub-step within it, and the continuation to resume when it
// completes. Scratch fields below are populated by only the handful of
// node kinds that need them; see spec §3 for the full inventory.
type Control struct {
	Node *Node
	Step int
	Cont Cont
	Mode Mode
	Seq  Seq

	// Loop frames set HasBreak; BreakStep is where a break resumes,
	// ContinueStep is where a continue resumes (spec §9's open question:
	// do-while's continue target is the condition, not the body, so it
	// gets its own field rather than reusing Step).
	HasBreak     bool
	BreakStep    int
	ContinueStep int

	// CallExpr argument accumulator: Values[0] is the callee, Values[i+1]
	// is argument i.
	Values []value.Value

	Lvalue *value.PointerValue
	Lhs    value.Value

	Type     *types.Type
	ElemType *types.Type
	Value    value.Value

	Array bool

	Params []FuncParam
}

// Node is an alias so this package need not re-import ast under a
// different name at every call site.
type Node = ast.Node

// New builds a descriptor for node, continuing to cont on completion.
func New(node *Node, cont Cont) *Control {
	return &Control{Node: node, Cont: cont}
}

// Child builds a fresh descriptor for one of node's children, inheriting
// no state from its parent beyond the continuation.
func Child(node *Node, cont Cont, mode Mode, seq Seq) *Control {
	return &Control{Node: node, Cont: cont, Mode: mode, Seq: seq}
}
