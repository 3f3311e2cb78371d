package stepper

import (
	"strings"

	"github.com/cwbudde/go-cstep/internal/control"
	"github.com/cwbudde/go-cstep/internal/effect"
	"github.com/cwbudde/go-cstep/internal/interperr"
	"github.com/cwbudde/go-cstep/internal/value"
)

// stepBinaryOperator evaluates the left operand, short-circuits LAnd/LOr
// against its truthiness, then evaluates the right operand and combines
// both through the value algebra. Comma and the short-circuit forms
// yield whichever operand decided the result rather than going through
// evalBinaryOperation. Assignment ("=") is not evalBinaryOperation-
// compatible and is handled by its own protocol below.
func stepBinaryOperator(st *State, c *control.Control) Transition {
	node := c.Node
	if node.Opcode == "=" {
		return stepAssignment(st, c)
	}
	switch c.Step {
	case 0:
		c.Step = 1
		return toChild(enter(node.Child(0), c, control.ValueMode, control.NoSeq))
	case 1:
		if node.Opcode == "LAnd" && !truthy(st.Result) {
			return toParent(c, st.Result)
		}
		if node.Opcode == "LOr" && truthy(st.Result) {
			return toParent(c, st.Result)
		}
		lhs, _ := asValue(st.Result)
		c.Lhs = lhs
		c.Step = 2
		return toChild(enter(node.Child(1), c, control.ValueMode, control.NoSeq))
	default:
		switch node.Opcode {
		case "Comma", "LAnd", "LOr":
			return toParent(c, st.Result)
		default:
			rhs, _ := asValue(st.Result)
			result, err := value.EvalBinaryOperation(node.Opcode, c.Lhs, rhs)
			if err != nil {
				return fail(interperr.NewDelegatedError(node, err))
			}
			return toParent(c, result)
		}
	}
}

// stepAssignment evaluates the left-hand side as an lvalue, then the
// right-hand side as a value, stores it, and yields the stored value.
func stepAssignment(st *State, c *control.Control) Transition {
	node := c.Node
	switch c.Step {
	case 0:
		c.Step = 1
		return toChild(enter(node.Child(0), c, control.LValueMode, control.NoSeq))
	case 1:
		lv, ok := st.Result.(*value.PointerValue)
		if !ok {
			return fail(interperr.NewSemanticErrorf(node, "left-hand side of assignment is not an lvalue"))
		}
		c.Lvalue = lv
		c.Step = 2
		return toChild(enter(node.Child(1), c, control.ValueMode, control.NoSeq))
	default:
		rhs, _ := asValue(st.Result)
		return toParent(c, rhs, effect.NewStore(c.Lvalue, rhs))
	}
}

// stepCompoundAssignOperator evaluates the left-hand side as an lvalue,
// loads its current value, evaluates the right-hand side, combines the
// two with the base operator (the opcode stripped of its trailing "="),
// stores the result and yields it.
func stepCompoundAssignOperator(st *State, c *control.Control) Transition {
	node := c.Node
	baseOp := strings.TrimSuffix(node.Opcode, "=")
	switch c.Step {
	case 0:
		c.Step = 1
		return toChild(enter(node.Child(0), c, control.LValueMode, control.NoSeq))
	case 1:
		lv, ok := st.Result.(*value.PointerValue)
		if !ok {
			return fail(interperr.NewSemanticErrorf(node, "left-hand side of %q is not an lvalue", node.Opcode))
		}
		c.Lvalue = lv
		old, err := st.Memory.ReadValue(lv)
		if err != nil {
			return fail(interperr.NewDelegatedError(node, err))
		}
		c.Lhs = old
		c.Step = 2
		return toChild(enter(node.Child(1), c, control.ValueMode, control.NoSeq), effect.NewLoad(lv))
	default:
		rhs, _ := asValue(st.Result)
		newVal, err := value.EvalBinaryOperation(baseOp, c.Lhs, rhs)
		if err != nil {
			return fail(interperr.NewDelegatedError(node, err))
		}
		return toParent(c, newVal, effect.NewStore(c.Lvalue, newVal))
	}
}
