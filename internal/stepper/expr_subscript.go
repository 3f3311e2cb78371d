package stepper

import (
	"github.com/cwbudde/go-cstep/internal/control"
	"github.com/cwbudde/go-cstep/internal/effect"
	"github.com/cwbudde/go-cstep/internal/interperr"
	"github.com/cwbudde/go-cstep/internal/value"
)

// stepArraySubscriptExpr evaluates the array expression (which decays to
// a pointer to its first element) and the index, combines them with
// pointer arithmetic, and either yields the element pointer (lvalue mode)
// or loads through it (value mode).
func stepArraySubscriptExpr(st *State, c *control.Control) Transition {
	node := c.Node // array, index
	switch c.Step {
	case 0:
		c.Step = 1
		return toChild(enter(node.Child(0), c, control.ValueMode, control.NoSeq))
	case 1:
		base, ok := st.Result.(*value.PointerValue)
		if !ok {
			return fail(interperr.NewSemanticErrorf(node, "subscript target is not a pointer"))
		}
		c.Lvalue = base
		c.Step = 2
		return toChild(enter(node.Child(1), c, control.ValueMode, control.NoSeq))
	default:
		index, _ := asValue(st.Result)
		elemPtr, err := value.EvalPointerAdd(c.Lvalue, index)
		if err != nil {
			return fail(interperr.NewDelegatedError(node, err))
		}
		if c.Mode == control.LValueMode {
			return toParent(c, elemPtr)
		}
		v, err := st.Memory.ReadValue(elemPtr)
		if err != nil {
			return fail(interperr.NewDelegatedError(node, err))
		}
		return toParent(c, v, effect.NewLoad(elemPtr))
	}
}
