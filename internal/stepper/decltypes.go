package stepper

import (
	"github.com/cwbudde/go-cstep/internal/control"
	"github.com/cwbudde/go-cstep/internal/effect"
	"github.com/cwbudde/go-cstep/internal/interperr"
	"github.com/cwbudde/go-cstep/internal/types"
	"github.com/cwbudde/go-cstep/internal/value"
)

// stepVarDecl evaluates the declared type, then (if present) the
// initializer as a value expression, and emits a 'vardecl' effect
// pairing the declaration's name and type with the initializer, or no
// initializer at all. Yields void.
func stepVarDecl(st *State, c *control.Control) Transition {
	node := c.Node // type, [init]
	switch c.Step {
	case 0:
		c.Step = 1
		return toChild(enter(node.Child(0), c, control.ValueMode, control.NoSeq))
	case 1:
		t, ok := asType(st.Result)
		if !ok {
			return fail(interperr.NewStructuralErrorf(node, "declaration type child did not produce a type"))
		}
		c.Type = t
		if len(node.Children) <= 1 {
			return toParent(c, nil, effect.NewVarDecl(node.Name, c.Type, nil))
		}
		c.Step = 2
		return toChild(enter(node.Child(1), c, control.ValueMode, control.ExprSeq))
	default:
		init, _ := asValue(st.Result)
		return toParent(c, nil, effect.NewVarDecl(node.Name, c.Type, init))
	}
}

// stepParmVarDecl evaluates a formal parameter's type and yields a
// control.FuncParam pairing it with the parameter's name, consumed by
// the enclosing FunctionProtoType.
func stepParmVarDecl(st *State, c *control.Control) Transition {
	node := c.Node
	if c.Step == 0 {
		c.Step = 1
		return toChild(enter(node.Child(0), c, control.ValueMode, control.NoSeq))
	}
	t, ok := asType(st.Result)
	if !ok {
		return fail(interperr.NewStructuralErrorf(node, "parameter type child did not produce a type"))
	}
	return toParent(c, control.FuncParam{Name: node.Name, Type: t})
}

// stepBuiltinType resolves a named scalar type from the process-wide
// registry; it has no children.
func stepBuiltinType(st *State, c *control.Control) Transition {
	t, ok := types.LookupScalar(c.Node.Name)
	if !ok {
		return fail(interperr.NewSemanticErrorf(c.Node, "unknown scalar type %q", c.Node.Name))
	}
	return toParent(c, t)
}

// stepPointerType evaluates its pointee type and wraps it.
func stepPointerType(st *State, c *control.Control) Transition {
	node := c.Node
	if c.Step == 0 {
		c.Step = 1
		return toChild(enter(node.Child(0), c, control.ValueMode, control.NoSeq))
	}
	pointee, ok := asType(st.Result)
	if !ok {
		return fail(interperr.NewStructuralErrorf(node, "pointer type child did not produce a type"))
	}
	return toParent(c, types.NewPointer(pointee))
}

// stepConstantArrayType evaluates the element type, then the element
// count (a constant integer expression), and builds the array type.
func stepConstantArrayType(st *State, c *control.Control) Transition {
	node := c.Node // elemType, count
	switch c.Step {
	case 0:
		c.Step = 1
		return toChild(enter(node.Child(0), c, control.ValueMode, control.NoSeq))
	case 1:
		elem, ok := asType(st.Result)
		if !ok {
			return fail(interperr.NewStructuralErrorf(node, "array element type child did not produce a type"))
		}
		c.ElemType = elem
		c.Step = 2
		return toChild(enter(node.Child(1), c, control.ValueMode, control.NoSeq))
	default:
		countVal, ok := asValue(st.Result)
		if !ok {
			return fail(interperr.NewSemanticErrorf(node, "array count did not produce a value"))
		}
		count, ok := countVal.(*value.IntegralValue)
		if !ok {
			return fail(interperr.NewSemanticErrorf(node, "array count must be an integer constant"))
		}
		return toParent(c, types.NewConstantArray(c.ElemType, int(count.Int)))
	}
}

// stepFunctionProtoType evaluates the result type, then each parameter
// declaration in turn (for a no-argument prototype there are none), and
// builds the function's type. FunctionNoProtoType reuses this stepper:
// the shapes coincide once a no-argument prototype is just a
// FunctionProtoType with a single child.
func stepFunctionProtoType(st *State, c *control.Control) Transition {
	node := c.Node // result, param...
	n := len(node.Children)
	switch c.Step {
	case 0:
		c.Step = 1
		return toChild(enter(node.Child(0), c, control.ValueMode, control.NoSeq))
	case 1:
		resultType, ok := asType(st.Result)
		if !ok {
			return fail(interperr.NewStructuralErrorf(node, "function result child did not produce a type"))
		}
		c.Type = resultType
		if n <= 1 {
			return toParent(c, types.NewFunction(c.Type, nil))
		}
		c.Step = 2
		return toChild(enter(node.Child(1), c, control.ValueMode, control.NoSeq))
	default:
		param, ok := st.Result.(control.FuncParam)
		if !ok {
			return fail(interperr.NewStructuralErrorf(node, "parameter child did not produce a parameter"))
		}
		c.Params = append(c.Params, param)
		if c.Step < n {
			idx := c.Step
			c.Step++
			return toChild(enter(node.Child(idx), c, control.ValueMode, control.NoSeq))
		}
		paramTypes := make([]*types.Type, len(c.Params))
		for i, p := range c.Params {
			paramTypes[i] = p.Type
		}
		return toParent(c, types.NewFunction(c.Type, paramTypes))
	}
}
