package stepper

import (
	"github.com/cwbudde/go-cstep/internal/control"
	"github.com/cwbudde/go-cstep/internal/effect"
	"github.com/cwbudde/go-cstep/internal/interperr"
	"github.com/cwbudde/go-cstep/internal/scope"
	"github.com/cwbudde/go-cstep/internal/types"
	"github.com/cwbudde/go-cstep/internal/value"
)

// stepParenExpr is transparent: it forwards its own mode into its single
// child and passes the child's result straight through.
func stepParenExpr(st *State, c *control.Control) Transition {
	node := c.Node
	if c.Step == 0 {
		c.Step = 1
		return toChild(enter(node.Child(0), c, c.Mode, control.NoSeq))
	}
	return toParent(c, st.Result)
}

// stepDeclRefExpr resolves an identifier via the scope chain. An
// addressable binding yields its pointer in lvalue mode; in value mode it
// decays a constant-array binding to a pointer to its first element
// without a load, or emits/performs a load otherwise. A non-addressable
// binding (a plain value, or a function/builtin callee) cannot be
// addressed and is returned as-is in value mode.
func stepDeclRefExpr(st *State, c *control.Control) Transition {
	node := c.Node
	ref, ok := scope.FindDeclaration(st.Scope, st.GlobalMap, node.Identifier)
	if !ok {
		return fail(interperr.NewSemanticErrorf(node, "undefined identifier %q", node.Identifier))
	}
	if !ref.Addressable() {
		if c.Mode == control.LValueMode {
			return fail(interperr.NewSemanticErrorf(node, "cannot take the address of %q", node.Identifier))
		}
		return toParent(c, ref.Value)
	}
	ptr := ref.Pointer
	if c.Mode == control.LValueMode {
		return toParent(c, ptr)
	}
	if ptr.Typ.Pointee().Kind() == types.ConstantArray {
		elem := ptr.Typ.Pointee().Pointee()
		return toParent(c, value.NewPointer(types.NewPointer(elem), ptr.Address))
	}
	v, err := st.Memory.ReadValue(ptr)
	if err != nil {
		return fail(interperr.NewDelegatedError(node, err))
	}
	return toParent(c, v, effect.NewLoad(ptr))
}
