// Package memory implements the byte-addressable store the stepper reads
// and writes through the narrow ReadValue/WriteValue API named in the
// specification's external interfaces (§6). The stepper never imports
// this package directly for mutation — it only ever requests a Load/Store
// effect; the driver is the one holding a *Memory and applying effects
// against it.
package memory

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cwbudde/go-cstep/internal/types"
	"github.com/cwbudde/go-cstep/internal/value"
)

// Memory is a flat byte-addressable store with a bump allocator.
type Memory struct {
	bytes []byte
	next  uint64
}

// New creates a memory store with the given byte capacity.
func New(capacity int) *Memory {
	return &Memory{bytes: make([]byte, capacity)}
}

// Alloc reserves storage for a value of type t and returns a pointer to
// it. Used by the driver to satisfy 'vardecl' effects.
func (m *Memory) Alloc(t *types.Type) (*value.PointerValue, error) {
	size := t.Size()
	if size == 0 {
		size = 1
	}
	addr := m.next
	if int(addr)+size > len(m.bytes) {
		return nil, fmt.Errorf("out of memory: need %d bytes at offset %d, capacity %d", size, addr, len(m.bytes))
	}
	m.next += uint64(size)
	return value.NewPointer(types.NewPointer(t), addr), nil
}

// ReadValue reads a typed value from the pointer's address, per the
// pointer's pointee type.
func (m *Memory) ReadValue(ptr *value.PointerValue) (value.Value, error) {
	pointee := ptr.Typ.Pointee()
	addr := ptr.Address
	switch pointee.Kind() {
	case types.Pointer:
		raw, err := m.read(addr, 8)
		if err != nil {
			return nil, err
		}
		return value.NewPointer(pointee, binary.LittleEndian.Uint64(raw)), nil
	case types.Scalar:
		return m.readScalar(pointee, addr)
	case types.ConstantArray:
		return nil, fmt.Errorf("cannot read an array value directly at 0x%x; use array decay", addr)
	default:
		return nil, fmt.Errorf("cannot read value of kind %v", pointee.Kind())
	}
}

func (m *Memory) readScalar(t *types.Type, addr uint64) (value.Value, error) {
	switch t.Name() {
	case "float":
		raw, err := m.read(addr, 4)
		if err != nil {
			return nil, err
		}
		bits := binary.LittleEndian.Uint32(raw)
		return value.NewFloating(t, float64(math.Float32frombits(bits))), nil
	case "double":
		raw, err := m.read(addr, 8)
		if err != nil {
			return nil, err
		}
		bits := binary.LittleEndian.Uint64(raw)
		return value.NewFloating(t, math.Float64frombits(bits)), nil
	case "char":
		raw, err := m.read(addr, 1)
		if err != nil {
			return nil, err
		}
		return value.NewIntegral(t, int64(int8(raw[0]))), nil
	default: // int and other 4-byte integrals
		raw, err := m.read(addr, 4)
		if err != nil {
			return nil, err
		}
		return value.NewIntegral(t, int64(int32(binary.LittleEndian.Uint32(raw)))), nil
	}
}

// WriteValue writes v through ptr, sized per the pointer's pointee type.
func (m *Memory) WriteValue(ptr *value.PointerValue, v value.Value) error {
	pointee := ptr.Typ.Pointee()
	addr := ptr.Address
	switch pointee.Kind() {
	case types.Pointer:
		pv, ok := v.(*value.PointerValue)
		if !ok {
			return fmt.Errorf("cannot store %T through pointer-to-pointer", v)
		}
		buf := make([]byte, 8)
		binary.LittleEndian.PutUint64(buf, pv.Address)
		return m.write(addr, buf)
	case types.Scalar:
		return m.writeScalar(pointee, addr, v)
	default:
		return fmt.Errorf("cannot store value of kind %v", pointee.Kind())
	}
}

func (m *Memory) writeScalar(t *types.Type, addr uint64, v value.Value) error {
	switch t.Name() {
	case "float":
		fv, ok := v.(*value.FloatingValue)
		if !ok {
			return fmt.Errorf("cannot store %T as float", v)
		}
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, math.Float32bits(float32(fv.Float)))
		return m.write(addr, buf)
	case "double":
		fv, ok := v.(*value.FloatingValue)
		if !ok {
			return fmt.Errorf("cannot store %T as double", v)
		}
		buf := make([]byte, 8)
		binary.LittleEndian.PutUint64(buf, math.Float64bits(fv.Float))
		return m.write(addr, buf)
	case "char":
		iv, ok := v.(*value.IntegralValue)
		if !ok {
			return fmt.Errorf("cannot store %T as char", v)
		}
		return m.write(addr, []byte{byte(iv.Int)})
	default:
		iv, ok := v.(*value.IntegralValue)
		if !ok {
			return fmt.Errorf("cannot store %T as int", v)
		}
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(int32(iv.Int)))
		return m.write(addr, buf)
	}
}

func (m *Memory) read(addr uint64, size int) ([]byte, error) {
	if int(addr)+size > len(m.bytes) {
		return nil, fmt.Errorf("read out of bounds at 0x%x (size %d, capacity %d)", addr, size, len(m.bytes))
	}
	return m.bytes[addr : addr+uint64(size)], nil
}

func (m *Memory) write(addr uint64, buf []byte) error {
	if int(addr)+len(buf) > len(m.bytes) {
		return fmt.Errorf("write out of bounds at 0x%x (size %d, capacity %d)", addr, len(buf), len(m.bytes))
	}
	copy(m.bytes[addr:], buf)
	return nil
}
