// Package driver implements the effect-applying reentrant loop described
// in spec.md §5: it owns state.memory, state.scope and state.globalMap,
// repeatedly calls stepper.Step, applies the effects a step hands back,
// and records a trace of (node, step, effects) entries. It supports
// step-over, step-out, and deterministic rewind: stepper.Step never
// changes the state it reads, and its outcome depends only on that state
// and the descriptor it is given, so replaying the same prefix of steps
// from the same initial inputs always reaches the same point. Step does
// advance the descriptor it is handed in place, so a descriptor is never
// stepped twice; rewind rebuilds every descriptor from scratch.
package driver

import (
	"fmt"

	"github.com/cwbudde/go-cstep/internal/control"
	"github.com/cwbudde/go-cstep/internal/effect"
	"github.com/cwbudde/go-cstep/internal/istate"
	"github.com/cwbudde/go-cstep/internal/memory"
	"github.com/cwbudde/go-cstep/internal/scope"
	"github.com/cwbudde/go-cstep/internal/stepper"
	"github.com/cwbudde/go-cstep/internal/value"
)

// TraceEntry records one elementary step for later inspection or replay:
// which node advanced, at which of its own sub-steps, and the effects
// that step produced.
type TraceEntry struct {
	Index   int
	Node    *control.Node
	Step    int
	Effects []effect.Effect
}

// callFrame is the driver's explicit call stack, pushed by a 'call'
// effect and popped when the stepper hands back the Return sentinel
// (spec.md §6's "the driver clears the top function frame and resumes
// the caller's stored continuation").
type callFrame struct {
	returnCont control.Cont
	savedScope *scope.Scope
}

// blockFrame is the driver's explicit block-scope stack, pushed by
// 'enter' and popped by 'leave'.
type blockFrame struct {
	node       *control.Node
	savedScope *scope.Scope
}

// Driver threads a program to completion (or one elementary step at a
// time) against a fixed memory capacity and global scope.
type Driver struct {
	state *istate.State

	memCapacity int
	globals     map[string]scope.Ref
	entry       *control.Node

	control *control.Control
	callers []callFrame
	blocks  []blockFrame

	Trace []TraceEntry
	Done  bool
	Err   error

	stepCount int
}

// New builds a driver ready to run entry (normally a function body) to
// completion, with the given global bindings (builtins and top-level
// function declarations) and a flat memory of the given byte capacity.
func New(memCapacity int, globals map[string]scope.Ref, entry *control.Node) *Driver {
	d := &Driver{
		memCapacity: memCapacity,
		globals:     globals,
		entry:       entry,
	}
	d.reset()
	return d
}

func (d *Driver) reset() {
	d.state = &istate.State{
		Memory:    memory.New(d.memCapacity),
		GlobalMap: d.globals,
	}
	d.control = control.Child(d.entry, control.ReturnCont, control.ValueMode, control.StmtSeq)
	d.callers = nil
	d.blocks = nil
	d.Trace = nil
	d.Done = false
	d.Err = nil
	d.stepCount = 0
}

// Result is the value the entry body returned, valid once Done is true.
func (d *Driver) Result() value.Value {
	v, _ := d.state.Result.(value.Value)
	return v
}

// Depth reports function-call nesting, used by StepOver/StepOut to tell
// whether the most recent step descended into a call.
func (d *Driver) Depth() int { return len(d.callers) }

// Control returns the descriptor the driver will resume next, for
// debugging UIs that want to inspect or pretty-print it (e.g.
// cstep step --dump-control).
func (d *Driver) Control() *control.Control { return d.control }

// Scope returns the current scope chain head, for debugging UIs that
// want to list in-scope bindings (e.g. cstep step --dump-scope).
func (d *Driver) Scope() *scope.Scope { return d.state.Scope }

// StepOnce advances exactly one elementary computation: one call to
// stepper.Step, with its effects applied in order.
func (d *Driver) StepOnce() error {
	if d.Done || d.Err != nil {
		return d.Err
	}
	node, step := d.control.Node, d.control.Step
	tr := stepper.Step(d.state, d.control)
	if tr.Err != nil {
		d.Err = tr.Err
		return d.Err
	}

	d.Trace = append(d.Trace, TraceEntry{
		Index:   d.stepCount,
		Node:    node,
		Step:    step,
		Effects: tr.Effects,
	})
	d.stepCount++

	for _, e := range tr.Effects {
		d.applyEffect(e)
	}
	if tr.Result != nil {
		d.state.Result = tr.Result
	}

	if tr.Next.Return {
		if len(d.callers) == 0 {
			d.Done = true
			return nil
		}
		top := d.callers[len(d.callers)-1]
		d.callers = d.callers[:len(d.callers)-1]
		d.state.Scope = top.savedScope
		d.control = top.returnCont.Frame
		return nil
	}
	d.control = tr.Next.Frame
	return nil
}

func (d *Driver) applyEffect(e effect.Effect) {
	switch e.Kind {
	case effect.Enter:
		d.blocks = append(d.blocks, blockFrame{node: e.Node, savedScope: d.state.Scope})
	case effect.Leave:
		if n := len(d.blocks); n > 0 {
			d.state.Scope = d.blocks[n-1].savedScope
			d.blocks = d.blocks[:n-1]
		}
	case effect.VarDecl:
		ptr, err := d.state.Memory.Alloc(e.Type)
		if err != nil {
			d.Err = fmt.Errorf("vardecl %s: %w", e.Name, err)
			return
		}
		if e.HasInit {
			if err := d.state.Memory.WriteValue(ptr, e.Init); err != nil {
				d.Err = fmt.Errorf("vardecl %s: %w", e.Name, err)
				return
			}
		}
		d.state.Scope = scope.Push(d.state.Scope, e.Name, scope.Ref{Pointer: ptr})
	case effect.Load:
		// observability only; the stepper has already read the value.
	case effect.Store:
		if err := d.state.Memory.WriteValue(e.Ptr, e.Value); err != nil {
			d.Err = fmt.Errorf("store: %w", err)
		}
	case effect.Call:
		d.callers = append(d.callers, callFrame{returnCont: e.ReturnCont, savedScope: d.state.Scope})
		d.state.Scope = scope.PushBarrier(d.state.Scope)
	}
}

// Run drives the stepper to completion and returns the entry body's
// result.
func (d *Driver) Run() (value.Value, error) {
	for !d.Done {
		if err := d.StepOnce(); err != nil {
			return nil, err
		}
	}
	return d.Result(), nil
}

// StepOver advances one elementary step without pausing inside a call
// that step opens: it steps once, then keeps stepping while call
// nesting is deeper than when it started.
func (d *Driver) StepOver() error {
	depth0 := d.Depth()
	if err := d.StepOnce(); err != nil {
		return err
	}
	for !d.Done && d.Depth() > depth0 {
		if err := d.StepOnce(); err != nil {
			return err
		}
	}
	return nil
}

// StepOut runs until the current function call returns (call nesting
// drops below its depth when StepOut was invoked), or the program ends.
func (d *Driver) StepOut() error {
	if d.Depth() == 0 {
		return d.StepOnce()
	}
	depth0 := d.Depth()
	for !d.Done && d.Depth() >= depth0 {
		if err := d.StepOnce(); err != nil {
			return err
		}
	}
	return nil
}

// Rewind replays this driver's own initial inputs from scratch for
// exactly n elementary steps, returning a fresh driver positioned there.
// This works because stepper.Step's outcome depends only on the state
// and descriptor it is given: the same prefix of steps from the same
// initial inputs always reaches the same point.
func (d *Driver) Rewind(n int) (*Driver, error) {
	fresh := New(d.memCapacity, d.globals, d.entry)
	for i := 0; i < n && !fresh.Done; i++ {
		if err := fresh.StepOnce(); err != nil {
			return fresh, err
		}
	}
	return fresh, nil
}
