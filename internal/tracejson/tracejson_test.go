package tracejson

import (
	"testing"

	"github.com/cwbudde/go-cstep/internal/ast"
	"github.com/cwbudde/go-cstep/internal/driver"
	"github.com/cwbudde/go-cstep/internal/effect"
)

func TestBuildAndParse_RoundTrips(t *testing.T) {
	trace := []driver.TraceEntry{
		{
			Index: 0,
			Node:  &ast.Node{Kind: ast.CompoundStmt},
			Step:  0,
			Effects: []effect.Effect{
				effect.NewEnter(nil),
			},
		},
		{
			Index: 1,
			Node:  &ast.Node{Kind: ast.VarDecl, Name: "x"},
			Step:  1,
			Effects: []effect.Effect{
				effect.NewVarDecl("x", nil, nil),
			},
		},
	}

	doc, err := Build(trace)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	steps := Parse(doc)
	if len(steps) != 2 {
		t.Fatalf("got %d steps, want 2", len(steps))
	}
	if steps[0].Node != "CompoundStmt" || steps[0].Effects[0] != "enter" {
		t.Errorf("step 0: got %+v", steps[0])
	}
	if steps[1].Node != "VarDecl" || steps[1].Effects[0] != "vardecl" {
		t.Errorf("step 1: got %+v", steps[1])
	}
}

func TestBuild_EmptyTraceProducesEmptyArray(t *testing.T) {
	doc, err := Build(nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(Parse(doc)) != 0 {
		t.Errorf("expected no steps from an empty trace, got %q", doc)
	}
}
