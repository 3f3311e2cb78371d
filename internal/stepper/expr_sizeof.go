package stepper

import (
	"github.com/cwbudde/go-cstep/internal/ast"
	"github.com/cwbudde/go-cstep/internal/control"
	"github.com/cwbudde/go-cstep/internal/interperr"
	"github.com/cwbudde/go-cstep/internal/scope"
	"github.com/cwbudde/go-cstep/internal/value"
)

// stepSizeofExpr walks the operand AST without evaluating it: a
// parenthesized operand recurses into its inner expression, a bare
// identifier resolves to the size of its declared type, and any other
// shape is an unimplemented operand. Sizeof never steps its operand as a
// sub-control, so the whole computation happens in a single step.
func stepSizeofExpr(st *State, c *control.Control) Transition {
	node := c.Node
	size, err := sizeofOperand(st, node.Child(0))
	if err != nil {
		return fail(err)
	}
	return toParent(c, value.NewIntegral(intType(), int64(size)))
}

func sizeofOperand(st *State, operand *ast.Node) (int, error) {
	switch operand.Kind {
	case ast.ParenExpr:
		return sizeofOperand(st, operand.Child(0))
	case ast.DeclRefExpr:
		ref, ok := scope.FindDeclaration(st.Scope, st.GlobalMap, operand.Identifier)
		if !ok {
			return 0, interperr.NewSemanticErrorf(operand, "undefined identifier %q", operand.Identifier)
		}
		if !ref.Addressable() {
			// XXX: a non-addressable binding has no storage to size, so
			// this reports 0 rather than consulting a declared type that
			// the binding doesn't carry; known discrepancy, see DESIGN.md.
			return 0, nil
		}
		return ref.Pointer.Typ.Pointee().Size(), nil
	default:
		return 0, interperr.NewSemanticErrorf(operand, "sizeof operand shape %q not implemented", operand.Kind)
	}
}
