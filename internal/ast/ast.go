// Package ast defines the uniform AST node representation the stepper
// dispatches on: a (kind, attrs, children) tuple. A parser producing these
// trees from C source is an external collaborator — out of scope here;
// see internal/astbuild for the hand-built trees used by tests and the
// CLI's demo programs.
package ast

import "github.com/cwbudde/go-cstep/internal/value"

// Kind tags the AST node and drives stepper dispatch.
type Kind string

const (
	CompoundStmt             Kind = "CompoundStmt"
	DeclStmt                 Kind = "DeclStmt"
	ForStmt                  Kind = "ForStmt"
	WhileStmt                Kind = "WhileStmt"
	DoStmt                   Kind = "DoStmt"
	BreakStmt                Kind = "BreakStmt"
	ContinueStmt             Kind = "ContinueStmt"
	IfStmt                   Kind = "IfStmt"
	ReturnStmt               Kind = "ReturnStmt"
	VarDecl                  Kind = "VarDecl"
	ParenExpr                Kind = "ParenExpr"
	CallExpr                 Kind = "CallExpr"
	ImplicitCastExpr         Kind = "ImplicitCastExpr"
	CStyleCastExpr           Kind = "CStyleCastExpr"
	DeclRefExpr              Kind = "DeclRefExpr"
	IntegerLiteral           Kind = "IntegerLiteral"
	CharacterLiteral         Kind = "CharacterLiteral"
	FloatingLiteral          Kind = "FloatingLiteral"
	StringLiteral            Kind = "StringLiteral"
	UnaryOperator            Kind = "UnaryOperator"
	UnaryExprOrTypeTraitExpr Kind = "UnaryExprOrTypeTraitExpr" // sizeof
	BinaryOperator           Kind = "BinaryOperator"
	CompoundAssignOperator   Kind = "CompoundAssignOperator"
	ArraySubscriptExpr       Kind = "ArraySubscriptExpr"
	ConditionalOperator      Kind = "ConditionalOperator"
	BuiltinType              Kind = "BuiltinType"
	PointerType              Kind = "PointerType"
	ConstantArrayType        Kind = "ConstantArrayType"
	FunctionProtoType        Kind = "FunctionProtoType"
	FunctionNoProtoType      Kind = "FunctionNoProtoType"
	ParmVarDecl              Kind = "ParmVarDecl"
)

// Node is the uniform (kind, attrs, children) tuple every stepper
// dispatches on. Attrs fields are kind-specific scratch carried alongside
// the node rather than in a separate record, matching the source's
// open-ended attrs bag.
type Node struct {
	Kind Kind

	// Opcode carries a unary/binary operator spelling ("+", "!=", "++", ...).
	Opcode string
	// Name carries a declaration or type name.
	Name string
	// Literal carries an unparsed literal lexeme (e.g. "42", "3.5f", "'a'").
	Literal string
	// Identifier carries a DeclRefExpr's referenced name.
	Identifier string
	// Ref carries a StringLiteral's pre-materialized pointer into memory.
	Ref *value.PointerValue

	Children []*Node
}

// Child returns the i-th child, or nil if out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch {
	case n.Identifier != "":
		return string(n.Kind) + "(" + n.Identifier + ")"
	case n.Name != "":
		return string(n.Kind) + "(" + n.Name + ")"
	case n.Opcode != "":
		return string(n.Kind) + "(" + n.Opcode + ")"
	default:
		return string(n.Kind)
	}
}
