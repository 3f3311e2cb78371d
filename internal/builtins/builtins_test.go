package builtins

import (
	"bytes"
	"testing"

	"github.com/cwbudde/go-cstep/internal/control"
	"github.com/cwbudde/go-cstep/internal/istate"
	"github.com/cwbudde/go-cstep/internal/types"
	"github.com/cwbudde/go-cstep/internal/value"
)

func TestRegister_ContainsBothBuiltins(t *testing.T) {
	var out bytes.Buffer
	table := Register(&out)
	for _, name := range []string{"print_int", "print_char"} {
		if _, ok := table[name]; !ok {
			t.Errorf("expected Register to bind %q", name)
		}
	}
}

func TestPrintInt_WritesDecimalWithNewline(t *testing.T) {
	var out bytes.Buffer
	table := Register(&out)
	intT, _ := types.LookupScalar("int")

	tr := table["print_int"].Fn(&istate.State{}, control.ReturnCont, []value.Value{value.NewIntegral(intT, 42)})
	if tr.Err != nil {
		t.Fatalf("unexpected error: %v", tr.Err)
	}
	if out.String() != "42\n" {
		t.Errorf("got %q, want %q", out.String(), "42\n")
	}
}

func TestPrintChar_WritesRawByte(t *testing.T) {
	var out bytes.Buffer
	table := Register(&out)
	charT, _ := types.LookupScalar("char")

	tr := table["print_char"].Fn(&istate.State{}, control.ReturnCont, []value.Value{value.NewIntegral(charT, int64('A'))})
	if tr.Err != nil {
		t.Fatalf("unexpected error: %v", tr.Err)
	}
	if out.String() != "A" {
		t.Errorf("got %q, want %q", out.String(), "A")
	}
}

func TestPrintInt_WrongArgCountFails(t *testing.T) {
	var out bytes.Buffer
	table := Register(&out)
	tr := table["print_int"].Fn(&istate.State{}, control.ReturnCont, nil)
	if tr.Err == nil {
		t.Error("expected calling print_int with no arguments to fail")
	}
}

func TestPrintInt_NonIntegralArgFails(t *testing.T) {
	var out bytes.Buffer
	table := Register(&out)
	floatT, _ := types.LookupScalar("double")
	tr := table["print_int"].Fn(&istate.State{}, control.ReturnCont, []value.Value{value.NewFloating(floatT, 1.5)})
	if tr.Err == nil {
		t.Error("expected calling print_int with a non-integral argument to fail")
	}
}
