package value

import (
	"testing"

	"github.com/cwbudde/go-cstep/internal/types"
)

func intT(t *testing.T) *types.Type {
	t.Helper()
	typ, ok := types.LookupScalar("int")
	if !ok {
		t.Fatal("int scalar type not registered")
	}
	return typ
}

func TestEvalBinaryOperation_IntegerArithmetic(t *testing.T) {
	it := intT(t)
	lhs := NewIntegral(it, 7)
	rhs := NewIntegral(it, 3)

	cases := []struct {
		op   string
		want int64
	}{
		{"+", 10}, {"-", 4}, {"*", 21}, {"/", 2}, {"%", 1},
	}
	for _, c := range cases {
		result, err := EvalBinaryOperation(c.op, lhs, rhs)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.op, err)
		}
		got := result.(*IntegralValue).Int
		if got != c.want {
			t.Errorf("%s: got %d, want %d", c.op, got, c.want)
		}
	}
}

func TestEvalBinaryOperation_DivisionByZero(t *testing.T) {
	it := intT(t)
	_, err := EvalBinaryOperation("/", NewIntegral(it, 1), NewIntegral(it, 0))
	if err == nil {
		t.Fatal("expected an error for division by zero")
	}
}

func TestEvalBinaryOperation_FloatPromotion(t *testing.T) {
	it := intT(t)
	ft, _ := types.LookupScalar("double")
	result, err := EvalBinaryOperation("+", NewIntegral(it, 1), NewFloating(ft, 0.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fv, ok := result.(*FloatingValue)
	if !ok {
		t.Fatalf("expected a FloatingValue, got %T", result)
	}
	if fv.Float != 1.5 {
		t.Errorf("got %v, want 1.5", fv.Float)
	}
}

func TestEvalPointerAdd_StridesByPointeeSize(t *testing.T) {
	it := intT(t)
	ptrT := types.NewPointer(it)
	base := NewPointer(ptrT, 100)

	elem, err := EvalPointerAdd(base, NewIntegral(it, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := uint64(100 + 3*int64(it.Size()))
	if elem.Address != want {
		t.Errorf("got address 0x%x, want 0x%x", elem.Address, want)
	}
}

func TestEvalBinaryOperation_PointerDifference(t *testing.T) {
	it := intT(t)
	ptrT := types.NewPointer(it)
	lhs := NewPointer(ptrT, 100+uint64(2*it.Size()))
	rhs := NewPointer(ptrT, 100)

	result, err := EvalBinaryOperation("-", lhs, rhs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := result.(*IntegralValue).Int
	if got != 2 {
		t.Errorf("got %d elements apart, want 2", got)
	}
}

func TestEvalBinaryOperation_PointerPlusInteger(t *testing.T) {
	it := intT(t)
	ptrT := types.NewPointer(it)
	base := NewPointer(ptrT, 40)

	result, err := EvalBinaryOperation("+", NewIntegral(it, 2), base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pv, ok := result.(*PointerValue)
	if !ok {
		t.Fatalf("expected a PointerValue, got %T", result)
	}
	want := uint64(40 + 2*int64(it.Size()))
	if pv.Address != want {
		t.Errorf("got address 0x%x, want 0x%x", pv.Address, want)
	}
}

func TestEvalCast_IntToDouble(t *testing.T) {
	it := intT(t)
	dt, _ := types.LookupScalar("double")
	result, err := EvalCast(dt, NewIntegral(it, 4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.(*FloatingValue).Float != 4 {
		t.Errorf("got %v, want 4", result.(*FloatingValue).Float)
	}
}

func TestEvalUnaryOperation_LogicalNot(t *testing.T) {
	it := intT(t)
	result, err := EvalUnaryOperation("!", NewIntegral(it, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.(*IntegralValue).Int != 1 {
		t.Errorf("!0 should be 1, got %d", result.(*IntegralValue).Int)
	}
}
