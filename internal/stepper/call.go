package stepper

import (
	"github.com/cwbudde/go-cstep/internal/control"
	"github.com/cwbudde/go-cstep/internal/effect"
	"github.com/cwbudde/go-cstep/internal/interperr"
	"github.com/cwbudde/go-cstep/internal/istate"
)

// stepCallExpr implements the call protocol (spec §4.4). Steps 0..n-1
// numerically accumulate the callee (child 0) and each argument (child
// i) into c.Values, appending the previous child's result before
// descending into the next one. Once every child is consumed, control
// moves to the call-dispatch step, which switches on the callee's tag.
func stepCallExpr(st *State, c *control.Control) Transition {
	node := c.Node
	n := len(node.Children)
	switch {
	case c.Step >= 0 && c.Step < n:
		if c.Step > 0 {
			v, _ := asValue(st.Result)
			c.Values = append(c.Values, v)
		}
		idx := c.Step
		c.Step++
		return toChild(enter(node.Child(idx), c, control.ValueMode, control.NoSeq))
	case c.Step == n:
		v, _ := asValue(st.Result)
		c.Values = append(c.Values, v)
		c.Step = control.CallDispatch
		return dispatchCall(st, c)
	case c.Step == control.CallProtoDone:
		return finishFunctionCall(st, c)
	case c.Step == control.CallReturn:
		v, _ := asValue(st.Result)
		return toParent(c, v)
	default:
		return fail(interperr.NewStructuralErrorf(node, "invalid call step %d", c.Step))
	}
}

// dispatchCall switches on the callee value's tag: a builtin is invoked
// directly and its transition used as-is; a user function needs its
// prototype's type evaluated first, so control descends into it before
// the call can actually open a frame.
func dispatchCall(st *State, c *control.Control) Transition {
	node := c.Node
	switch callee := c.Values[0].(type) {
	case istate.BuiltinCallee:
		return callee.Fn(st, c.Cont, c.Values[1:])
	case istate.FunctionCallee:
		c.Step = control.CallProtoDone
		return toChild(enter(callee.Proto, c, control.ValueMode, control.NoSeq))
	default:
		return fail(interperr.NewSemanticErrorf(node, "called value is not callable"))
	}
}

// finishFunctionCall runs once the callee's prototype has produced a
// function type. It emits a 'call' effect opening a frame with a return
// continuation pointed at this same descriptor (re-entering it at the
// call-return step once the callee unwinds), one 'vardecl' effect per
// formal parameter pairing its name (read off the prototype AST, since
// the function type itself carries only types) with the matching
// argument, and descends into the function body with the Return
// sentinel as its continuation, so a fall-off end behaves like an
// implicit return.
func finishFunctionCall(st *State, c *control.Control) Transition {
	node := c.Node
	fnType, ok := asType(st.Result)
	if !ok {
		return fail(interperr.NewStructuralErrorf(node, "function prototype did not produce a type"))
	}
	callee, ok := c.Values[0].(istate.FunctionCallee)
	if !ok {
		return fail(interperr.NewStructuralErrorf(node, "callee is no longer a function"))
	}
	args := c.Values[1:]
	paramTypes := fnType.Params()
	if len(paramTypes) != len(args) {
		return fail(interperr.NewSemanticErrorf(node, "%s: expected %d argument(s), got %d", callee.Name, len(paramTypes), len(args)))
	}

	c.Step = control.CallReturn
	returnCont := control.Of(c)

	effects := make([]effect.Effect, 0, len(paramTypes)+1)
	effects = append(effects, effect.NewCall(returnCont, c.Values))
	for i, t := range paramTypes {
		name := paramName(callee.Proto, i)
		effects = append(effects, effect.NewVarDecl(name, t, args[i]))
	}

	body := control.Child(callee.Body, control.ReturnCont, control.ValueMode, control.StmtSeq)
	return toChild(body, effects...)
}

func paramName(proto *control.Node, i int) string {
	if p := proto.Child(1 + i); p != nil {
		return p.Name
	}
	return ""
}
