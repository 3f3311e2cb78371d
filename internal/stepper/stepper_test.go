package stepper_test

import (
	"testing"

	"github.com/cwbudde/go-cstep/internal/astbuild"
	"github.com/cwbudde/go-cstep/internal/control"
	"github.com/cwbudde/go-cstep/internal/istate"
	"github.com/cwbudde/go-cstep/internal/memory"
	"github.com/cwbudde/go-cstep/internal/scope"
	"github.com/cwbudde/go-cstep/internal/stepper"
	"github.com/cwbudde/go-cstep/internal/types"
	"github.com/cwbudde/go-cstep/internal/value"
)

func freshState() *istate.State {
	return &istate.State{Memory: memory.New(64)}
}

// driveToReturn repeatedly calls stepper.Step starting from c (whose Cont
// is expected to be control.ReturnCont) until a step hands back the
// Return sentinel, returning the final state.Result.
func driveToReturn(t *testing.T, st *istate.State, c *control.Control) any {
	t.Helper()
	for i := 0; i < 1000; i++ {
		tr := stepper.Step(st, c)
		if tr.Err != nil {
			t.Fatalf("step %d: %v", i, tr.Err)
		}
		if tr.Result != nil {
			st.Result = tr.Result
		}
		if tr.Next.Return {
			return st.Result
		}
		c = tr.Next.Frame
	}
	t.Fatal("did not reach the Return sentinel within 1000 steps")
	return nil
}

// TestPurity_SameInputsProduceSameTransition exercises spec §8's purity
// invariant on a node with no internal scratch state to mutate: two
// independently-built (state, control) pairs describing the same literal
// must step to structurally equal results.
func TestPurity_SameInputsProduceSameTransition(t *testing.T) {
	build := func() (*istate.State, *control.Control) {
		node := astbuild.IntLit("7")
		c := control.Child(node, control.ReturnCont, control.ValueMode, control.ExprSeq)
		return freshState(), c
	}

	st1, c1 := build()
	st2, c2 := build()

	tr1 := stepper.Step(st1, c1)
	tr2 := stepper.Step(st2, c2)

	if tr1.Err != nil || tr2.Err != nil {
		t.Fatalf("unexpected errors: %v, %v", tr1.Err, tr2.Err)
	}
	v1 := tr1.Result.(value.Value)
	v2 := tr2.Result.(value.Value)
	if v1.String() != v2.String() {
		t.Errorf("got %v and %v, want equal results", v1, v2)
	}
	if len(tr1.Effects) != len(tr2.Effects) {
		t.Errorf("got %d and %d effects, want equal", len(tr1.Effects), len(tr2.Effects))
	}
	if tr1.Next.Return != tr2.Next.Return {
		t.Errorf("got differing Next.Return: %v vs %v", tr1.Next.Return, tr2.Next.Return)
	}
}

// TestShortCircuit_LAndSkipsRHSWhenLHSIsFalsy checks that a falsy LHS of
// && never causes the RHS to be entered: the RHS names an undefined
// identifier, so if it were ever evaluated, driveToReturn would fail with
// a semantic error instead of returning the LHS's value.
func TestShortCircuit_LAndSkipsRHSWhenLHSIsFalsy(t *testing.T) {
	node := astbuild.Binary("LAnd", astbuild.IntLit("0"), astbuild.Ref("never_evaluated"))
	st := freshState()
	c := control.Child(node, control.ReturnCont, control.ValueMode, control.ExprSeq)

	result := driveToReturn(t, st, c).(value.Value)
	if result.String() != "0" {
		t.Errorf("got %v, want 0 (the LHS, unevaluated RHS)", result)
	}
}

// TestShortCircuit_LOrSkipsRHSWhenLHSIsTruthy mirrors the LAnd case for ||.
func TestShortCircuit_LOrSkipsRHSWhenLHSIsTruthy(t *testing.T) {
	node := astbuild.Binary("LOr", astbuild.IntLit("1"), astbuild.Ref("never_evaluated"))
	st := freshState()
	c := control.Child(node, control.ReturnCont, control.ValueMode, control.ExprSeq)

	result := driveToReturn(t, st, c).(value.Value)
	if result.String() != "1" {
		t.Errorf("got %v, want 1 (the LHS, unevaluated RHS)", result)
	}
}

// TestArrayDecay_ValueModeYieldsPointerWithoutLoad checks spec §8's array
// decay property: in value mode, a DeclRefExpr naming a constant-array
// variable decays to a pointer to its first element and emits no load
// effect.
func TestArrayDecay_ValueModeYieldsPointerWithoutLoad(t *testing.T) {
	intT, _ := types.LookupScalar("int")
	arrT := types.NewConstantArray(intT, 3)

	mem := memory.New(64)
	ptr, err := mem.Alloc(arrT)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}

	st := &istate.State{
		Memory:    mem,
		GlobalMap: map[string]scope.Ref{"a": {Pointer: ptr}},
	}
	node := astbuild.Ref("a")
	c := control.Child(node, control.ReturnCont, control.ValueMode, control.NoSeq)

	tr := stepper.Step(st, c)
	if tr.Err != nil {
		t.Fatalf("unexpected error: %v", tr.Err)
	}
	if len(tr.Effects) != 0 {
		t.Errorf("expected no load effect on array decay, got %d effects", len(tr.Effects))
	}
	pv, ok := tr.Result.(*value.PointerValue)
	if !ok {
		t.Fatalf("expected a decayed *PointerValue, got %T", tr.Result)
	}
	if pv.Type().Kind() != types.Pointer || pv.Type().Pointee() != intT {
		t.Errorf("expected pointer(int), got %v", pv.Type())
	}
	if pv.Address != ptr.Address {
		t.Errorf("expected the decayed pointer to address the array's first element")
	}
}

// TestSizeof_NonAddressableBindingReturnsZero preserves the documented
// discrepancy from spec §9's open questions: sizeof a binding that isn't
// addressable (here, a plain non-pointer Ref.Value) yields 0 rather than
// failing.
func TestSizeof_NonAddressableBindingReturnsZero(t *testing.T) {
	intT, _ := types.LookupScalar("int")
	st := &istate.State{
		Memory:    memory.New(8),
		GlobalMap: map[string]scope.Ref{"k": {Value: value.NewIntegral(intT, 5)}},
	}
	node := astbuild.Sizeof(astbuild.Ref("k"))
	c := control.Child(node, control.ReturnCont, control.ValueMode, control.ExprSeq)

	tr := stepper.Step(st, c)
	if tr.Err != nil {
		t.Fatalf("unexpected error: %v", tr.Err)
	}
	iv, ok := tr.Result.(*value.IntegralValue)
	if !ok {
		t.Fatalf("expected an *IntegralValue, got %T", tr.Result)
	}
	if iv.Int != 0 {
		t.Errorf("got %d, want 0", iv.Int)
	}
}

// TestSizeof_AddressableBindingReturnsPointeeSize checks the normal case:
// sizeof an addressable int yields 4.
func TestSizeof_AddressableBindingReturnsPointeeSize(t *testing.T) {
	intT, _ := types.LookupScalar("int")
	mem := memory.New(8)
	ptr, err := mem.Alloc(intT)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	st := &istate.State{
		Memory:    mem,
		GlobalMap: map[string]scope.Ref{"x": {Pointer: ptr}},
	}
	node := astbuild.Sizeof(astbuild.Ref("x"))
	c := control.Child(node, control.ReturnCont, control.ValueMode, control.ExprSeq)

	tr := stepper.Step(st, c)
	if tr.Err != nil {
		t.Fatalf("unexpected error: %v", tr.Err)
	}
	iv := tr.Result.(*value.IntegralValue)
	if iv.Int != int64(intT.Size()) {
		t.Errorf("got %d, want %d", iv.Int, intT.Size())
	}
}
