// Package scope implements the scope chain and global map the stepper's
// findDeclaration walks (spec §4.6). The chain is a linked list of
// single-declaration records — one link per bound name — rather than a
// stack of block-scoped maps; block entry/exit is modeled by the driver
// saving and restoring the chain head around an 'enter'/'leave' pair, and
// a function call pushes a Barrier link that local lookup does not cross.
package scope

import "github.com/cwbudde/go-cstep/internal/value"

// Ref is what a lookup resolves to: an addressable pointer (Pointer
// non-nil) or a non-addressable binding (Value set — a plain
// value.Value, or an istate.Callee tagging a function/builtin, which
// also implements value.Value so it fits this same field without this
// package needing to depend on istate, defined one layer up).
type Ref struct {
	Pointer *value.PointerValue
	Value   value.Value
}

// Addressable reports whether the reference names storage.
func (r Ref) Addressable() bool { return r.Pointer != nil }

// Scope is one link in the chain: either a named declaration, or an
// unnamed function-call barrier.
type Scope struct {
	Decl    string
	Ref     Ref
	Barrier bool
	Parent  *Scope
}

// Push binds name to ref in a new link ahead of s.
func Push(s *Scope, name string, ref Ref) *Scope {
	return &Scope{Decl: name, Ref: ref, Parent: s}
}

// PushBarrier opens a new function-call frame ahead of s.
func PushBarrier(s *Scope) *Scope {
	return &Scope{Barrier: true, Parent: s}
}

// FindDeclaration walks s toward the root looking for name, stopping
// after the first barrier link (inclusive) so that a function body
// cannot see its caller's locals. Falls back to globalMap on failure.
func FindDeclaration(s *Scope, globalMap map[string]Ref, name string) (Ref, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if cur.Decl == name {
			return cur.Ref, true
		}
		if cur.Barrier {
			break
		}
	}
	ref, ok := globalMap[name]
	return ref, ok
}
