package stepper

import (
	"github.com/cwbudde/go-cstep/internal/control"
	"github.com/cwbudde/go-cstep/internal/interperr"
	"github.com/cwbudde/go-cstep/internal/value"
)

// stepImplicitCastExpr evaluates the operand (forwarding this node's own
// mode, so an lvalue-mode cast such as array-to-pointer decay still
// produces an address) then the target type, and converts.
//
// XXX: forwarding c.Mode into the value child means a lvalue-mode
// ImplicitCastExpr wrapping something that isn't addressable will fail
// in the operand's own stepper rather than here; kept to match the
// source's mode-propagation rule rather than special-casing it away.
func stepImplicitCastExpr(st *State, c *control.Control) Transition {
	node := c.Node // operand, type
	switch c.Step {
	case 0:
		c.Step = 1
		return toChild(enter(node.Child(0), c, c.Mode, control.NoSeq))
	case 1:
		c.Value, _ = asValue(st.Result)
		c.Step = 2
		return toChild(enter(node.Child(1), c, control.ValueMode, control.NoSeq))
	default:
		target, ok := asType(st.Result)
		if !ok {
			return fail(interperr.NewStructuralErrorf(node, "cast target child did not produce a type"))
		}
		result, err := value.EvalCast(target, c.Value)
		if err != nil {
			return fail(interperr.NewDelegatedError(node, err))
		}
		return toParent(c, result)
	}
}

// stepCStyleCastExpr evaluates the target type first (it appears first
// in source order, "(type)expr"), then the operand as a value, and
// converts.
func stepCStyleCastExpr(st *State, c *control.Control) Transition {
	node := c.Node // type, operand
	switch c.Step {
	case 0:
		c.Step = 1
		return toChild(enter(node.Child(0), c, control.ValueMode, control.NoSeq))
	case 1:
		target, ok := asType(st.Result)
		if !ok {
			return fail(interperr.NewStructuralErrorf(node, "cast target child did not produce a type"))
		}
		c.Type = target
		c.Step = 2
		return toChild(enter(node.Child(1), c, control.ValueMode, control.NoSeq))
	default:
		operand, _ := asValue(st.Result)
		result, err := value.EvalCast(c.Type, operand)
		if err != nil {
			return fail(interperr.NewDelegatedError(node, err))
		}
		return toParent(c, result)
	}
}
