package stepper

import (
	"github.com/cwbudde/go-cstep/internal/types"
	"github.com/cwbudde/go-cstep/internal/value"
)

// state.Result carries whatever the last step produced: a runtime value
// for most nodes, a *types.Type for the declaration/type steppers, a
// control.FuncParam for ParmVarDecl. These helpers narrow it back.

func asValue(r any) (value.Value, bool) {
	v, ok := r.(value.Value)
	return v, ok
}

func asType(r any) (*types.Type, bool) {
	t, ok := r.(*types.Type)
	return t, ok
}

// truthy reports whether the last result, expected to be a value, is
// non-zero; used by every condition-testing statement stepper.
func truthy(r any) bool {
	v, ok := asValue(r)
	return ok && v.ToBool()
}

func intType() *types.Type {
	t, _ := types.LookupScalar("int")
	return t
}
