package stepper

import (
	"github.com/cwbudde/go-cstep/internal/ast"
	"github.com/cwbudde/go-cstep/internal/control"
	"github.com/cwbudde/go-cstep/internal/effect"
	"github.com/cwbudde/go-cstep/internal/interperr"
)

// stepCompoundStmt steps a `{ ... }` block: step 0 opens a block scope
// and descends into the first child; each subsequent step descends into
// the next child as a statement; once exhausted, the scope is closed and
// control returns to the parent with a null result (spec §4.2).
func stepCompoundStmt(st *State, c *control.Control) Transition {
	node := c.Node
	n := len(node.Children)
	if n == 0 {
		return toParent(c, nil, effect.NewEnter(node), effect.NewLeave(node))
	}
	if c.Step >= n {
		return toParent(c, nil, effect.NewLeave(node))
	}
	child := enter(node.Child(c.Step), c, control.ValueMode, control.StmtSeq)
	var effects []effect.Effect
	if c.Step == 0 {
		effects = append(effects, effect.NewEnter(node))
	}
	c.Step++
	return toChild(child, effects...)
}

// stepDeclStmt sequentially enters each VarDecl child, returning void
// when done. Children are entered without an explicit sequence tag;
// their own initializers carry expression sequencing.
func stepDeclStmt(st *State, c *control.Control) Transition {
	node := c.Node
	n := len(node.Children)
	if c.Step >= n {
		return toParent(c, nil)
	}
	child := enter(node.Child(c.Step), c, control.ValueMode, control.NoSeq)
	c.Step++
	return toChild(child)
}

// stepIfStmt evaluates the condition, then enters the then- or
// else-branch based on its truthiness, and returns void once that branch
// has finished.
func stepIfStmt(st *State, c *control.Control) Transition {
	node := c.Node // cond, then, [else]
	switch c.Step {
	case 0:
		c.Step = 1
		return toChild(enter(node.Child(0), c, control.ValueMode, control.ExprSeq))
	case 1:
		if truthy(st.Result) {
			c.Step = 2
			return toChild(enter(node.Child(1), c, control.ValueMode, control.StmtSeq))
		}
		if len(node.Children) > 2 {
			c.Step = 2
			return toChild(enter(node.Child(2), c, control.ValueMode, control.StmtSeq))
		}
		return toParent(c, nil)
	default: // 2: the chosen branch has finished
		return toParent(c, nil)
	}
}

// stepForStmt implements the four-child for-loop protocol: init (step 0),
// cond (step 1, re-entered at 1), body (entered when cond is true, loop
// frame break target 4, continue target 2), update (step 2).
func stepForStmt(st *State, c *control.Control) Transition {
	node := c.Node // init, cond, update, body
	switch c.Step {
	case 0:
		c.HasBreak, c.BreakStep, c.ContinueStep = true, 4, 2
		c.Step = 1
		return toChild(enter(node.Child(0), c, control.ValueMode, control.StmtSeq))
	case 1:
		c.Step = 3
		return toChild(enter(node.Child(1), c, control.ValueMode, control.StmtSeq))
	case 3:
		if truthy(st.Result) {
			c.Step = 2
			return toChild(enter(node.Child(3), c, control.ValueMode, control.StmtSeq))
		}
		return toParent(c, nil)
	case 2:
		c.Step = 1
		return toChild(enter(node.Child(2), c, control.ValueMode, control.ExprSeq))
	default: // 4: break target
		return toParent(c, nil)
	}
}

// stepWhileStmt: cond at step 0, body at step 1 with break target 2 and
// continue target 0.
func stepWhileStmt(st *State, c *control.Control) Transition {
	node := c.Node // cond, body
	switch c.Step {
	case 0:
		c.HasBreak, c.BreakStep, c.ContinueStep = true, 2, 0
		c.Step = 1
		return toChild(enter(node.Child(0), c, control.ValueMode, control.StmtSeq))
	case 1:
		if truthy(st.Result) {
			c.Step = 0
			return toChild(enter(node.Child(1), c, control.ValueMode, control.StmtSeq))
		}
		return toParent(c, nil)
	default: // 2: break target
		return toParent(c, nil)
	}
}

// stepDoStmt: body at step 0, cond at step 1, loop re-entry at step 2
// with break target 3. Continue resumes at step 1 (the condition), not
// step 0 (the body) — the fix for the do/while continue bug flagged in
// spec §9's open questions: reusing the body's re-entry step for
// continue would skip straight back into the body without re-testing the
// condition, turning `continue` into an unconditional repeat.
func stepDoStmt(st *State, c *control.Control) Transition {
	node := c.Node // body, cond
	switch c.Step {
	case 0:
		c.HasBreak, c.BreakStep, c.ContinueStep = true, 3, 1
		c.Step = 1
		return toChild(enter(node.Child(0), c, control.ValueMode, control.StmtSeq))
	case 1:
		c.Step = 2
		return toChild(enter(node.Child(1), c, control.ValueMode, control.StmtSeq))
	case 2:
		if truthy(st.Result) {
			c.Step = 1
			return toChild(enter(node.Child(0), c, control.ValueMode, control.StmtSeq))
		}
		return toParent(c, nil)
	default: // 3: break target
		return toParent(c, nil)
	}
}

// stepBreakStmt walks cont ancestors until one carries a loop frame, then
// transitions into it at its break step.
func stepBreakStmt(st *State, c *control.Control) Transition {
	frame, err := findLoopFrame(c)
	if err != nil {
		return fail(err)
	}
	frame.Step = frame.BreakStep
	frame.Seq = control.StmtSeq
	return Transition{Next: control.Of(frame)}
}

// stepContinueStmt walks cont ancestors until one carries a loop frame,
// then transitions into it at its continue step.
func stepContinueStmt(st *State, c *control.Control) Transition {
	frame, err := findLoopFrame(c)
	if err != nil {
		return fail(err)
	}
	frame.Step = frame.ContinueStep
	frame.Seq = control.StmtSeq
	return Transition{Next: control.Of(frame)}
}

func findLoopFrame(c *control.Control) (*control.Control, error) {
	cont := c.Cont
	for cont.Frame != nil && !cont.Frame.HasBreak {
		cont = cont.Frame.Cont
	}
	if cont.Frame == nil {
		return nil, interperr.NewSemanticErrorf(c.Node, "break/continue outside of a loop")
	}
	return cont.Frame, nil
}

// stepReturnStmt evaluates its expression (if any), then unwinds the
// current function frame via the Return sentinel, emitting a 'leave' for
// every block the return exits (innermost first).
func stepReturnStmt(st *State, c *control.Control) Transition {
	node := c.Node
	if len(node.Children) > 0 && c.Step == 0 {
		c.Step = 1
		return toChild(enter(node.Child(0), c, control.ValueMode, control.ExprSeq))
	}
	var result any
	if len(node.Children) > 0 {
		result = st.Result
	}
	var leaves []effect.Effect
	for cont := c.Cont; cont.Frame != nil; cont = cont.Frame.Cont {
		if f := cont.Frame; f.Node.Kind == ast.CompoundStmt && f.Step > 0 {
			leaves = append(leaves, effect.NewLeave(f.Node))
		}
	}
	return toReturn(result, leaves...)
}
