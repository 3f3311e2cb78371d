package stepper

import (
	"github.com/cwbudde/go-cstep/internal/control"
	"github.com/cwbudde/go-cstep/internal/effect"
	"github.com/cwbudde/go-cstep/internal/interperr"
	"github.com/cwbudde/go-cstep/internal/value"
)

var unaryValueOps = map[string]string{
	"Plus":  "+",
	"Minus": "-",
	"LNot":  "!",
	"Not":   "~",
}

// stepUnaryOperator dispatches on the node's opcode into one of four
// protocols: the plain value operators (+, -, !, ~), the four increment
// and decrement forms, address-of, and dereference (spec §4.3).
func stepUnaryOperator(st *State, c *control.Control) Transition {
	node := c.Node
	switch node.Opcode {
	case "Plus", "Minus", "LNot", "Not":
		return stepUnaryValueOp(st, c)
	case "PreInc", "PreDec", "PostInc", "PostDec":
		return stepIncDecOp(st, c)
	case "AddrOf":
		return stepAddrOf(st, c)
	case "Deref":
		return stepDerefOp(st, c)
	default:
		return fail(interperr.NewStructuralErrorf(node, "unknown unary opcode %q", node.Opcode))
	}
}

func stepUnaryValueOp(st *State, c *control.Control) Transition {
	node := c.Node
	if c.Step == 0 {
		c.Step = 1
		return toChild(enter(node.Child(0), c, control.ValueMode, control.NoSeq))
	}
	operand, _ := asValue(st.Result)
	result, err := value.EvalUnaryOperation(unaryValueOps[node.Opcode], operand)
	if err != nil {
		return fail(interperr.NewDelegatedError(node, err))
	}
	return toParent(c, result)
}

// stepIncDecOp implements ++x, --x, x++, x--: evaluate the operand as an
// lvalue, load its current value, compute old±1, store the new value,
// and yield the new value for pre-forms or the old value for post-forms.
func stepIncDecOp(st *State, c *control.Control) Transition {
	node := c.Node
	if c.Step == 0 {
		c.Step = 1
		return toChild(enter(node.Child(0), c, control.LValueMode, control.NoSeq))
	}
	lvalue, ok := st.Result.(*value.PointerValue)
	if !ok {
		return fail(interperr.NewSemanticErrorf(node, "operand is not an lvalue"))
	}
	old, err := st.Memory.ReadValue(lvalue)
	if err != nil {
		return fail(interperr.NewDelegatedError(node, err))
	}
	op := "+"
	if node.Opcode == "PreDec" || node.Opcode == "PostDec" {
		op = "-"
	}
	one := value.NewIntegral(intType(), 1)
	newVal, err := value.EvalBinaryOperation(op, old, one)
	if err != nil {
		return fail(interperr.NewDelegatedError(node, err))
	}
	result := newVal
	if node.Opcode == "PostInc" || node.Opcode == "PostDec" {
		result = old
	}
	return toParent(c, result, effect.NewLoad(lvalue), effect.NewStore(lvalue, newVal))
}

// stepAddrOf evaluates its operand as an lvalue and returns the pointer
// directly; the operand already produced the address we want.
func stepAddrOf(st *State, c *control.Control) Transition {
	node := c.Node
	if c.Step == 0 {
		c.Step = 1
		return toChild(enter(node.Child(0), c, control.LValueMode, control.NoSeq))
	}
	return toParent(c, st.Result)
}

// stepDerefOp evaluates its operand as a value (a pointer), then either
// returns that pointer in lvalue mode or loads through it in value mode.
func stepDerefOp(st *State, c *control.Control) Transition {
	node := c.Node
	if c.Step == 0 {
		c.Step = 1
		return toChild(enter(node.Child(0), c, control.ValueMode, control.NoSeq))
	}
	ptr, ok := st.Result.(*value.PointerValue)
	if !ok {
		return fail(interperr.NewSemanticErrorf(node, "cannot dereference a non-pointer value"))
	}
	if c.Mode == control.LValueMode {
		return toParent(c, ptr)
	}
	v, err := st.Memory.ReadValue(ptr)
	if err != nil {
		return fail(interperr.NewDelegatedError(node, err))
	}
	return toParent(c, v, effect.NewLoad(ptr))
}
