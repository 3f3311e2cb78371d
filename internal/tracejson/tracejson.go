// Package tracejson renders a driver.Trace as JSON and reads it back.
// The CLI's `cstep run --trace` prints Build's output; no CLI command
// reads a trace back with Parse. It
// builds the document incrementally with sjson.Set rather than
// marshaling a Go struct tree, and reads it back with gjson, matching
// the teacher pack's preference for these two libraries over
// encoding/json for ad-hoc document shapes.
package tracejson

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/go-cstep/internal/driver"
	"github.com/cwbudde/go-cstep/internal/effect"
)

// Build serializes trace into a JSON array, one object per step:
// {"step": <sub-step index>, "node": "<AST kind>", "effects": [{"kind": "..."}]}.
func Build(trace []driver.TraceEntry) (string, error) {
	doc := "[]"
	for i, entry := range trace {
		prefix := strconv.Itoa(i)
		var err error
		if doc, err = sjson.Set(doc, prefix+".step", entry.Step); err != nil {
			return "", err
		}
		node := "<nil>"
		if entry.Node != nil {
			node = string(entry.Node.Kind)
		}
		if doc, err = sjson.Set(doc, prefix+".node", node); err != nil {
			return "", err
		}
		for j, e := range entry.Effects {
			effPrefix := prefix + ".effects." + strconv.Itoa(j)
			if doc, err = sjson.Set(doc, effPrefix+".kind", e.Kind.String()); err != nil {
				return "", err
			}
			if doc, err = annotateEffect(doc, effPrefix, e); err != nil {
				return "", err
			}
		}
	}
	return doc, nil
}

func annotateEffect(doc, prefix string, e effect.Effect) (string, error) {
	var err error
	switch e.Kind {
	case effect.VarDecl:
		doc, err = sjson.Set(doc, prefix+".name", e.Name)
	case effect.Store:
		if e.Ptr != nil {
			doc, err = sjson.Set(doc, prefix+".address", e.Ptr.Address)
		}
	case effect.Load:
		if e.Ptr != nil {
			doc, err = sjson.Set(doc, prefix+".address", e.Ptr.Address)
		}
	}
	return doc, err
}

// Step is one parsed trace entry, stripped down to the sub-step, node
// kind and effect kinds of a recorded run.
type Step struct {
	SubStep int
	Node    string
	Effects []string
}

// Parse reads a JSON document produced by Build back into a step list.
func Parse(doc string) []Step {
	var steps []Step
	gjson.Parse(doc).ForEach(func(_, entry gjson.Result) bool {
		s := Step{
			SubStep: int(entry.Get("step").Int()),
			Node:    entry.Get("node").String(),
		}
		entry.Get("effects").ForEach(func(_, eff gjson.Result) bool {
			s.Effects = append(s.Effects, eff.Get("kind").String())
			return true
		})
		steps = append(steps, s)
		return true
	})
	return steps
}
