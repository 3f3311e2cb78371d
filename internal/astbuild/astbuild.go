// Package astbuild provides a small fluent API for hand-constructing the
// node trees the stepper dispatches on. AST production (parsing C source)
// is explicitly out of scope (spec.md §1's Non-goals); every test, demo
// program and CLI built-in in this repository builds its tree directly
// with these constructors instead.
package astbuild

import (
	"github.com/cwbudde/go-cstep/internal/ast"
	"github.com/cwbudde/go-cstep/internal/value"
)

func node(kind ast.Kind, children ...*ast.Node) *ast.Node {
	return &ast.Node{Kind: kind, Children: children}
}

// Statements

func Compound(stmts ...*ast.Node) *ast.Node { return node(ast.CompoundStmt, stmts...) }
func DeclStmt(decls ...*ast.Node) *ast.Node { return node(ast.DeclStmt, decls...) }

func If(cond, then *ast.Node) *ast.Node { return node(ast.IfStmt, cond, then) }
func IfElse(cond, then, els *ast.Node) *ast.Node {
	return node(ast.IfStmt, cond, then, els)
}

func For(init, cond, update, body *ast.Node) *ast.Node {
	return node(ast.ForStmt, init, cond, update, body)
}
func While(cond, body *ast.Node) *ast.Node { return node(ast.WhileStmt, cond, body) }
func Do(body, cond *ast.Node) *ast.Node    { return node(ast.DoStmt, body, cond) }

func Break() *ast.Node    { return node(ast.BreakStmt) }
func Continue() *ast.Node { return node(ast.ContinueStmt) }

func Return(expr *ast.Node) *ast.Node {
	if expr == nil {
		return node(ast.ReturnStmt)
	}
	return node(ast.ReturnStmt, expr)
}

// ExprStmt wraps a bare expression as a statement by giving it nowhere
// else to go; the stepper treats any node as a statement when entered
// with stmt sequencing, so no distinct ExprStmt kind is needed.
func ExprStmt(expr *ast.Node) *ast.Node { return expr }

// Declarations

// Var declares name with the given type and no initializer.
func Var(name string, typ *ast.Node) *ast.Node {
	n := node(ast.VarDecl, typ)
	n.Name = name
	return n
}

// VarInit declares name with the given type and initializer.
func VarInit(name string, typ, init *ast.Node) *ast.Node {
	n := node(ast.VarDecl, typ, init)
	n.Name = name
	return n
}

// Param declares one formal parameter for a FunctionProtoType.
func Param(name string, typ *ast.Node) *ast.Node {
	n := node(ast.ParmVarDecl, typ)
	n.Name = name
	return n
}

// Types

// Builtin names a scalar type (int, char, float, double, void).
func Builtin(name string) *ast.Node {
	n := node(ast.BuiltinType)
	n.Name = name
	return n
}

func PointerTo(pointee *ast.Node) *ast.Node { return node(ast.PointerType, pointee) }

func ArrayOf(elem *ast.Node, count *ast.Node) *ast.Node {
	return node(ast.ConstantArrayType, elem, count)
}

// FunctionProto builds a function's type: a result type followed by zero
// or more parameters.
func FunctionProto(result *ast.Node, params ...*ast.Node) *ast.Node {
	children := append([]*ast.Node{result}, params...)
	return node(ast.FunctionProtoType, children...)
}

// Expressions

func Paren(inner *ast.Node) *ast.Node { return node(ast.ParenExpr, inner) }

// Ref names a DeclRefExpr referencing identifier.
func Ref(identifier string) *ast.Node {
	n := node(ast.DeclRefExpr)
	n.Identifier = identifier
	return n
}

func IntLit(literal string) *ast.Node {
	n := node(ast.IntegerLiteral)
	n.Literal = literal
	return n
}

func CharLit(literal string) *ast.Node {
	n := node(ast.CharacterLiteral)
	n.Literal = literal
	return n
}

func FloatLit(literal string) *ast.Node {
	n := node(ast.FloatingLiteral)
	n.Literal = literal
	return n
}

// StrLit builds a string literal whose storage the caller has already
// materialized at ptr; neither this builder nor the stepper allocates
// string storage.
func StrLit(ptr *value.PointerValue) *ast.Node {
	n := node(ast.StringLiteral)
	n.Ref = ptr
	return n
}

func Unary(opcode string, operand *ast.Node) *ast.Node {
	n := node(ast.UnaryOperator, operand)
	n.Opcode = opcode
	return n
}

func Sizeof(operand *ast.Node) *ast.Node { return node(ast.UnaryExprOrTypeTraitExpr, operand) }

func Binary(opcode string, lhs, rhs *ast.Node) *ast.Node {
	n := node(ast.BinaryOperator, lhs, rhs)
	n.Opcode = opcode
	return n
}

// Assign builds the "=" flavor of BinaryOperator.
func Assign(lhs, rhs *ast.Node) *ast.Node { return Binary("=", lhs, rhs) }

func CompoundAssign(opcode string, lhs, rhs *ast.Node) *ast.Node {
	n := node(ast.CompoundAssignOperator, lhs, rhs)
	n.Opcode = opcode
	return n
}

func Subscript(array, index *ast.Node) *ast.Node {
	return node(ast.ArraySubscriptExpr, array, index)
}

func Conditional(cond, then, els *ast.Node) *ast.Node {
	return node(ast.ConditionalOperator, cond, then, els)
}

// ImplicitCast wraps operand, producing a value of typ via implicit
// conversion (e.g. array-to-pointer decay, integral promotion).
func ImplicitCast(operand, typ *ast.Node) *ast.Node {
	return node(ast.ImplicitCastExpr, operand, typ)
}

// CStyleCast builds "(typ)operand".
func CStyleCast(typ, operand *ast.Node) *ast.Node {
	return node(ast.CStyleCastExpr, typ, operand)
}

// Call builds a call expression: callee followed by its arguments.
func Call(callee *ast.Node, args ...*ast.Node) *ast.Node {
	children := append([]*ast.Node{callee}, args...)
	return node(ast.CallExpr, children...)
}

// Function builds a top-level function definition as a (proto, body)
// pair; FuncDef is not a stepper-dispatched kind, it's a plain Go struct
// the driver/CLI use to register FunctionCallees.
type Function struct {
	Name  string
	Proto *ast.Node
	Body  *ast.Node
}

func FuncDef(name string, proto, body *ast.Node) Function {
	return Function{Name: name, Proto: proto, Body: body}
}
