// Package demo hand-builds the six end-to-end programs used throughout
// this repository's tests and the cstep CLI's "run"/"step" subcommands,
// via internal/astbuild, since no parser exists to read them from C
// source. Grounded on the teacher's practice of constructing AST
// fixtures directly in Go test files (pkg/ast/*_test.go).
package demo

import (
	"github.com/cwbudde/go-cstep/internal/ast"
	"github.com/cwbudde/go-cstep/internal/astbuild"
)

// Program is one selectable demo: its defined functions (main plus any
// helpers) and the byte capacity its memory store needs.
type Program struct {
	Name        string
	Description string
	Want        string
	MemCapacity int
	Functions   []astbuild.Function
}

func intT() *ast.Node    { return astbuild.Builtin("int") }
func charT() *ast.Node   { return astbuild.Builtin("char") }
func ptrToInt() *ast.Node { return astbuild.PointerTo(intT()) }

func mainProto() *ast.Node { return astbuild.FunctionProto(intT()) }

// Programs lists all six scenarios from the specification's end-to-end
// section, in order.
var Programs = []Program{program1, program2, program3, program4, program5, program6}

// program1: int main() { return 1 + 2 * 3; }
var program1 = Program{
	Name:        "arith",
	Description: "int main() { return 1 + 2 * 3; }",
	Want:        "7",
	MemCapacity: 64,
	Functions: []astbuild.Function{
		astbuild.FuncDef("main", mainProto(), astbuild.Compound(
			astbuild.Return(astbuild.Binary("+",
				astbuild.IntLit("1"),
				astbuild.Binary("*", astbuild.IntLit("2"), astbuild.IntLit("3")),
			)),
		)),
	},
}

// program2: int main() { int x = 0; for (int i = 0; i < 4; ++i) x += i; return x; }
var program2 = Program{
	Name:        "for-loop",
	Description: "int main() { int x = 0; for (int i = 0; i < 4; ++i) x += i; return x; }",
	Want:        "6",
	MemCapacity: 64,
	Functions: []astbuild.Function{
		astbuild.FuncDef("main", mainProto(), astbuild.Compound(
			astbuild.DeclStmt(astbuild.VarInit("x", intT(), astbuild.IntLit("0"))),
			astbuild.For(
				astbuild.DeclStmt(astbuild.VarInit("i", intT(), astbuild.IntLit("0"))),
				astbuild.Binary("<", astbuild.Ref("i"), astbuild.IntLit("4")),
				astbuild.Unary("PreInc", astbuild.Ref("i")),
				astbuild.Compound(
					astbuild.ExprStmt(astbuild.CompoundAssign("+=", astbuild.Ref("x"), astbuild.Ref("i"))),
				),
			),
			astbuild.Return(astbuild.Ref("x")),
		)),
	},
}

// program3: int main() { int a[3] = {10,20,30}; return a[2]; }
//
// No aggregate-initializer syntax exists in astbuild (the parser that
// would lower `{10,20,30}` is out of scope), so this scenario is built
// as the specification's documented fallback: sequential element stores
// through subscript assignment, followed by reading a[2] — the same
// observable effect trace as scenario 3's "otherwise reads *(a+2)" note.
var program3 = Program{
	Name:        "array",
	Description: "int main() { int a[3]; a[0]=10; a[1]=20; a[2]=30; return a[2]; }",
	Want:        "30",
	MemCapacity: 64,
	Functions: []astbuild.Function{
		astbuild.FuncDef("main", mainProto(), astbuild.Compound(
			astbuild.DeclStmt(astbuild.Var("a", astbuild.ArrayOf(intT(), astbuild.IntLit("3")))),
			astbuild.ExprStmt(astbuild.Assign(astbuild.Subscript(astbuild.Ref("a"), astbuild.IntLit("0")), astbuild.IntLit("10"))),
			astbuild.ExprStmt(astbuild.Assign(astbuild.Subscript(astbuild.Ref("a"), astbuild.IntLit("1")), astbuild.IntLit("20"))),
			astbuild.ExprStmt(astbuild.Assign(astbuild.Subscript(astbuild.Ref("a"), astbuild.IntLit("2")), astbuild.IntLit("30"))),
			astbuild.Return(astbuild.Subscript(astbuild.Ref("a"), astbuild.IntLit("2"))),
		)),
	},
}

// program4: int main() { int x = 5; int *p = &x; *p = 9; return x; }
var program4 = Program{
	Name:        "pointer",
	Description: "int main() { int x = 5; int *p = &x; *p = 9; return x; }",
	Want:        "9",
	MemCapacity: 64,
	Functions: []astbuild.Function{
		astbuild.FuncDef("main", mainProto(), astbuild.Compound(
			astbuild.DeclStmt(astbuild.VarInit("x", intT(), astbuild.IntLit("5"))),
			astbuild.DeclStmt(astbuild.VarInit("p", ptrToInt(), astbuild.Unary("AddrOf", astbuild.Ref("x")))),
			astbuild.ExprStmt(astbuild.Assign(astbuild.Unary("Deref", astbuild.Ref("p")), astbuild.IntLit("9"))),
			astbuild.Return(astbuild.Ref("x")),
		)),
	},
}

// program5: int main() { int i = 0, n = 0; while (i < 3) { if (i == 1) { ++i; continue; } n += i; ++i; } return n; }
var program5 = Program{
	Name:        "while-continue",
	Description: "int main() { int i=0, n=0; while (i<3) { if (i==1) { ++i; continue; } n += i; ++i; } return n; }",
	Want:        "2",
	MemCapacity: 64,
	Functions: []astbuild.Function{
		astbuild.FuncDef("main", mainProto(), astbuild.Compound(
			astbuild.DeclStmt(astbuild.VarInit("i", intT(), astbuild.IntLit("0"))),
			astbuild.DeclStmt(astbuild.VarInit("n", intT(), astbuild.IntLit("0"))),
			astbuild.While(
				astbuild.Binary("<", astbuild.Ref("i"), astbuild.IntLit("3")),
				astbuild.Compound(
					astbuild.If(
						astbuild.Binary("==", astbuild.Ref("i"), astbuild.IntLit("1")),
						astbuild.Compound(
							astbuild.ExprStmt(astbuild.Unary("PreInc", astbuild.Ref("i"))),
							astbuild.Continue(),
						),
					),
					astbuild.ExprStmt(astbuild.CompoundAssign("+=", astbuild.Ref("n"), astbuild.Ref("i"))),
					astbuild.ExprStmt(astbuild.Unary("PreInc", astbuild.Ref("i"))),
				),
			),
			astbuild.Return(astbuild.Ref("n")),
		)),
	},
}

// program6: int f(int x){ return x+1; } int main(){ return f(f(1)); }
var program6 = Program{
	Name:        "call",
	Description: "int f(int x){ return x+1; } int main(){ return f(f(1)); }",
	Want:        "3",
	MemCapacity: 64,
	Functions: []astbuild.Function{
		astbuild.FuncDef("f",
			astbuild.FunctionProto(intT(), astbuild.Param("x", intT())),
			astbuild.Compound(
				astbuild.Return(astbuild.Binary("+", astbuild.Ref("x"), astbuild.IntLit("1"))),
			),
		),
		astbuild.FuncDef("main", mainProto(), astbuild.Compound(
			astbuild.Return(astbuild.Call(astbuild.Ref("f"), astbuild.Call(astbuild.Ref("f"), astbuild.IntLit("1")))),
		)),
	},
}

// Find returns the program with the given name, or nil.
func Find(name string) *Program {
	for i := range Programs {
		if Programs[i].Name == name {
			return &Programs[i]
		}
	}
	return nil
}
