// Package effect defines the declarative requests a step hands back to
// the driver for application against state (spec §6): enter/leave a block
// scope, declare a variable, load, store, and open a call frame.
package effect

import (
	"github.com/cwbudde/go-cstep/internal/ast"
	"github.com/cwbudde/go-cstep/internal/control"
	"github.com/cwbudde/go-cstep/internal/types"
	"github.com/cwbudde/go-cstep/internal/value"
)

// Kind tags which effect a record carries.
type Kind int

const (
	Enter Kind = iota
	Leave
	VarDecl
	Load
	Store
	Call
)

// Effect is the sum type `Enter | Leave | VarDecl | Load | Store | Call`
// rendered as one struct with kind-specific fields, mirroring the
// descriptor's own open-ended-record style for consistency.
type Effect struct {
	Kind Kind

	// Enter / Leave
	Node *ast.Node

	// VarDecl
	Name    string
	Type    *types.Type
	Init    value.Value
	HasInit bool

	// Load / Store
	Ptr   *value.PointerValue
	Value value.Value

	// Call
	ReturnCont control.Cont
	Values     []value.Value
}

func NewEnter(node *ast.Node) Effect { return Effect{Kind: Enter, Node: node} }
func NewLeave(node *ast.Node) Effect { return Effect{Kind: Leave, Node: node} }

func NewVarDecl(name string, t *types.Type, init value.Value) Effect {
	return Effect{Kind: VarDecl, Name: name, Type: t, Init: init, HasInit: init != nil}
}

func NewLoad(ptr *value.PointerValue) Effect { return Effect{Kind: Load, Ptr: ptr} }

func NewStore(ptr *value.PointerValue, v value.Value) Effect {
	return Effect{Kind: Store, Ptr: ptr, Value: v}
}

func NewCall(returnCont control.Cont, values []value.Value) Effect {
	return Effect{Kind: Call, ReturnCont: returnCont, Values: values}
}

func (k Kind) String() string {
	switch k {
	case Enter:
		return "enter"
	case Leave:
		return "leave"
	case VarDecl:
		return "vardecl"
	case Load:
		return "load"
	case Store:
		return "store"
	case Call:
		return "call"
	default:
		return "?"
	}
}
