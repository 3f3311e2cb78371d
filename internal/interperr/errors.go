// Package interperr implements the stepper's three error classes
// (spec §7): Structural (unknown node kind, unknown opcode), Semantic
// (undefined name, non-addressable address-of, unsupported sizeof
// operand) and Delegated (passed through from the value/type algebra).
// Grounded on the teacher's internal/interp/errors package: a single
// category-tagged error type with one constructor per category.
package interperr

import (
	"fmt"

	"github.com/cwbudde/go-cstep/internal/ast"
)

// Category names one of the stepper's three error classes.
type Category string

const (
	CategoryStructural Category = "Structural"
	CategorySemantic   Category = "Semantic"
	CategoryDelegated  Category = "Delegated"
)

// InterpreterError is the error type every stepper function returns.
type InterpreterError struct {
	Category Category
	Message  string
	Node     *ast.Node
	Err      error
}

func (e *InterpreterError) Error() string {
	if e.Node != nil {
		return fmt.Sprintf("%s error in %s: %s", e.Category, e.Node, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Category, e.Message)
}

func (e *InterpreterError) Unwrap() error { return e.Err }

// NewStructuralErrorf creates a structural error (spec §7.1): unknown
// node kind or opcode, something the stepper itself cannot make sense of.
func NewStructuralErrorf(node *ast.Node, format string, args ...any) *InterpreterError {
	return &InterpreterError{Category: CategoryStructural, Node: node, Message: fmt.Sprintf(format, args...)}
}

// NewSemanticErrorf creates a semantic error (spec §7.2): undefined name,
// address-of a non-addressable binding, an unsupported sizeof operand.
func NewSemanticErrorf(node *ast.Node, format string, args ...any) *InterpreterError {
	return &InterpreterError{Category: CategorySemantic, Node: node, Message: fmt.Sprintf(format, args...)}
}

// NewDelegatedError wraps an error surfaced by the value/type algebra
// (arithmetic, cast, pointer-arithmetic failures) without editorializing
// on it (spec §7.3).
func NewDelegatedError(node *ast.Node, err error) *InterpreterError {
	return &InterpreterError{Category: CategoryDelegated, Node: node, Message: err.Error(), Err: err}
}
