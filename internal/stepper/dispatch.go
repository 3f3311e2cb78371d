// Package stepper implements the core transition function named in the
// specification: Step(state, control) -> control', effects, result?,
// error?. Each AST node kind gets a dedicated per-step continuation
// protocol; this file holds the dispatch table and the small helpers
// every per-kind stepper builds its Transition from.
package stepper

import (
	"github.com/cwbudde/go-cstep/internal/ast"
	"github.com/cwbudde/go-cstep/internal/control"
	"github.com/cwbudde/go-cstep/internal/effect"
	"github.com/cwbudde/go-cstep/internal/interperr"
	"github.com/cwbudde/go-cstep/internal/istate"
)

// State and Transition are re-exported from istate so callers can spell
// stepper.State / stepper.Transition, matching the core function's
// signature as named in the specification.
type State = istate.State
type Transition = istate.Transition

// Step advances control by exactly one elementary computation. Unknown
// node kinds yield a structural error rather than panicking, so the
// driver can surface the failure as a diagnostic (spec §4.1, §7).
func Step(st *State, c *control.Control) Transition {
	switch c.Node.Kind {
	case ast.CompoundStmt:
		return stepCompoundStmt(st, c)
	case ast.DeclStmt:
		return stepDeclStmt(st, c)
	case ast.IfStmt:
		return stepIfStmt(st, c)
	case ast.ForStmt:
		return stepForStmt(st, c)
	case ast.WhileStmt:
		return stepWhileStmt(st, c)
	case ast.DoStmt:
		return stepDoStmt(st, c)
	case ast.BreakStmt:
		return stepBreakStmt(st, c)
	case ast.ContinueStmt:
		return stepContinueStmt(st, c)
	case ast.ReturnStmt:
		return stepReturnStmt(st, c)

	case ast.IntegerLiteral:
		return stepIntegerLiteral(st, c)
	case ast.CharacterLiteral:
		return stepCharacterLiteral(st, c)
	case ast.FloatingLiteral:
		return stepFloatingLiteral(st, c)
	case ast.StringLiteral:
		return stepStringLiteral(st, c)

	case ast.ParenExpr:
		return stepParenExpr(st, c)
	case ast.DeclRefExpr:
		return stepDeclRefExpr(st, c)
	case ast.UnaryOperator:
		return stepUnaryOperator(st, c)
	case ast.UnaryExprOrTypeTraitExpr:
		return stepSizeofExpr(st, c)
	case ast.BinaryOperator:
		return stepBinaryOperator(st, c)
	case ast.CompoundAssignOperator:
		return stepCompoundAssignOperator(st, c)
	case ast.ArraySubscriptExpr:
		return stepArraySubscriptExpr(st, c)
	case ast.ConditionalOperator:
		return stepConditionalOperator(st, c)
	case ast.ImplicitCastExpr:
		return stepImplicitCastExpr(st, c)
	case ast.CStyleCastExpr:
		return stepCStyleCastExpr(st, c)
	case ast.CallExpr:
		return stepCallExpr(st, c)

	case ast.VarDecl:
		return stepVarDecl(st, c)
	case ast.ParmVarDecl:
		return stepParmVarDecl(st, c)
	case ast.BuiltinType:
		return stepBuiltinType(st, c)
	case ast.PointerType:
		return stepPointerType(st, c)
	case ast.ConstantArrayType:
		return stepConstantArrayType(st, c)
	case ast.FunctionProtoType, ast.FunctionNoProtoType:
		return stepFunctionProtoType(st, c)

	default:
		return fail(interperr.NewStructuralErrorf(c.Node, "unknown node kind %q", c.Node.Kind))
	}
}

// toParent returns control to the current descriptor's continuation,
// carrying result and the effects of this step. result is usually a
// value.Value, but the declaration/type steppers pass a *types.Type or a
// control.FuncParam through this same untyped slot (see state.Result).
func toParent(c *control.Control, result any, effects ...effect.Effect) Transition {
	return Transition{Next: c.Cont, Result: result, Effects: effects}
}

// toChild descends into a freshly built child descriptor.
func toChild(child *control.Control, effects ...effect.Effect) Transition {
	return Transition{Next: control.Of(child), Effects: effects}
}

// toReturn unwinds the current function frame, handing result to the
// caller's stored continuation.
func toReturn(result any, effects ...effect.Effect) Transition {
	return Transition{Next: control.ReturnCont, Result: result, Effects: effects}
}

func fail(err error) Transition {
	return Transition{Err: err}
}

// reenter advances c's own step and returns control to c itself (used by
// statement sequencers re-entering their parent compound/decl/for node).
func reenter(c *control.Control, step int, effects ...effect.Effect) Transition {
	c.Step = step
	return Transition{Next: control.Of(c), Effects: effects}
}

// enter builds a child descriptor for node, evaluated in the given mode
// and carrying the given sequence-point tag, continuing back to c.
func enter(node *ast.Node, c *control.Control, mode control.Mode, seq control.Seq) *control.Control {
	return control.Child(node, control.Of(c), mode, seq)
}
