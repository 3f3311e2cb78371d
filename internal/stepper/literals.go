package stepper

import (
	"strconv"
	"strings"

	"github.com/cwbudde/go-cstep/internal/control"
	"github.com/cwbudde/go-cstep/internal/interperr"
	"github.com/cwbudde/go-cstep/internal/types"
	"github.com/cwbudde/go-cstep/internal/value"
)

// stepIntegerLiteral produces a typed int value immediately. Suffixes
// (u, l, ll and their combinations) are stripped and ignored: every
// integer literal is typed int.
func stepIntegerLiteral(st *State, c *control.Control) Transition {
	n, err := strconv.ParseInt(strings.TrimRight(c.Node.Literal, "uUlL"), 0, 64)
	if err != nil {
		return fail(interperr.NewStructuralErrorf(c.Node, "malformed integer literal %q: %v", c.Node.Literal, err))
	}
	t, _ := types.LookupScalar("int")
	return toParent(c, value.NewIntegral(t, n))
}

// stepCharacterLiteral produces a typed char value. A quoted lexeme such
// as 'a' is unquoted first (escapes follow Go's rune-literal rules); the
// value is the first byte of the result.
func stepCharacterLiteral(st *State, c *control.Control) Transition {
	lit := c.Node.Literal
	if len(lit) >= 2 && lit[0] == '\'' {
		s, err := strconv.Unquote(lit)
		if err != nil {
			return fail(interperr.NewStructuralErrorf(c.Node, "malformed character literal %q: %v", lit, err))
		}
		lit = s
	}
	if lit == "" {
		return fail(interperr.NewStructuralErrorf(c.Node, "empty character literal"))
	}
	t, _ := types.LookupScalar("char")
	return toParent(c, value.NewIntegral(t, int64(lit[0])))
}

// stepFloatingLiteral picks float if the lexeme ends in f/F, else double.
func stepFloatingLiteral(st *State, c *control.Control) Transition {
	lit := c.Node.Literal
	typeName := "double"
	trimmed := lit
	if strings.HasSuffix(lit, "f") || strings.HasSuffix(lit, "F") {
		typeName = "float"
		trimmed = lit[:len(lit)-1]
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return fail(interperr.NewStructuralErrorf(c.Node, "malformed floating literal %q: %v", lit, err))
	}
	t, _ := types.LookupScalar(typeName)
	return toParent(c, value.NewFloating(t, f))
}

// stepStringLiteral returns the pre-allocated pointer embedded in the
// node's attrs; string storage is materialized by whoever builds the
// AST (and hands the pointer to astbuild.StrLit), not by the stepper.
func stepStringLiteral(st *State, c *control.Control) Transition {
	if c.Node.Ref == nil {
		return fail(interperr.NewStructuralErrorf(c.Node, "string literal has no materialized pointer"))
	}
	return toParent(c, c.Node.Ref)
}
