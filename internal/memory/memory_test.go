package memory

import (
	"testing"

	"github.com/cwbudde/go-cstep/internal/types"
	"github.com/cwbudde/go-cstep/internal/value"
)

func TestAllocAndWriteValue_IntRoundTrips(t *testing.T) {
	m := New(64)
	intT, _ := types.LookupScalar("int")

	ptr, err := m.Alloc(intT)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if err := m.WriteValue(ptr, value.NewIntegral(intT, 42)); err != nil {
		t.Fatalf("WriteValue: %v", err)
	}
	got, err := m.ReadValue(ptr)
	if err != nil {
		t.Fatalf("ReadValue: %v", err)
	}
	if got.(*value.IntegralValue).Int != 42 {
		t.Errorf("got %v, want 42", got)
	}
}

func TestAllocAndWriteValue_CharIsOneByte(t *testing.T) {
	m := New(8)
	charT, _ := types.LookupScalar("char")
	intT, _ := types.LookupScalar("int")

	p1, _ := m.Alloc(charT)
	p2, _ := m.Alloc(intT)
	if p2.Address != p1.Address+1 {
		t.Errorf("expected the int to be allocated right after the 1-byte char, got offsets %d, %d", p1.Address, p2.Address)
	}
}

func TestWriteValue_PointerRoundTrips(t *testing.T) {
	m := New(64)
	intT, _ := types.LookupScalar("int")
	ptrToInt := types.NewPointer(intT)
	ptrToPtr := types.NewPointer(ptrToInt)

	target, _ := m.Alloc(intT)
	slot, err := m.Alloc(ptrToInt)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	slot = value.NewPointer(ptrToPtr, slot.Address)
	if err := m.WriteValue(slot, target); err != nil {
		t.Fatalf("WriteValue: %v", err)
	}
	got, err := m.ReadValue(slot)
	if err != nil {
		t.Fatalf("ReadValue: %v", err)
	}
	if got.(*value.PointerValue).Address != target.Address {
		t.Errorf("got %v, want pointer to 0x%x", got, target.Address)
	}
}

func TestAlloc_OutOfMemory(t *testing.T) {
	m := New(2)
	intT, _ := types.LookupScalar("int")
	if _, err := m.Alloc(intT); err == nil {
		t.Error("expected allocation beyond capacity to fail")
	}
}

func TestReadValue_ArrayIsNotDirectlyReadable(t *testing.T) {
	m := New(64)
	intT, _ := types.LookupScalar("int")
	arrT := types.NewConstantArray(intT, 3)
	ptr, err := m.Alloc(arrT)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	arrPtr := value.NewPointer(types.NewPointer(arrT), ptr.Address)
	if _, err := m.ReadValue(arrPtr); err == nil {
		t.Error("expected reading an array value directly to fail; callers must decay to a pointer first")
	}
}
