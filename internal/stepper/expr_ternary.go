package stepper

import "github.com/cwbudde/go-cstep/internal/control"

// stepConditionalOperator evaluates the condition, then descends into
// whichever branch it selects, forwarding this node's own mode so a
// ternary used as an lvalue (e.g. `(cond ? a : b) = 1`) still works.
func stepConditionalOperator(st *State, c *control.Control) Transition {
	node := c.Node // cond, then, else
	switch c.Step {
	case 0:
		c.Step = 1
		return toChild(enter(node.Child(0), c, control.ValueMode, control.NoSeq))
	case 1:
		c.Step = 2
		if truthy(st.Result) {
			return toChild(enter(node.Child(1), c, c.Mode, control.StmtSeq))
		}
		return toChild(enter(node.Child(2), c, c.Mode, control.StmtSeq))
	default:
		return toParent(c, st.Result)
	}
}
