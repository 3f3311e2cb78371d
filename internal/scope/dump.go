package scope

import "github.com/maruel/natural"

// Entry is one binding visible from a scope chain head, as reported by
// Dump.
type Entry struct {
	Name string
	Ref  Ref
}

// Dump collects every name bound in s's chain, up to and including the
// first barrier, naturally sorted (so "x2" sorts before "x10", unlike
// plain lexicographic order) for stable,
// human-ordered display in the step command's --dump-scope flag.
func Dump(s *Scope) []Entry {
	var entries []Entry
	seen := make(map[string]bool)
	for cur := s; cur != nil; cur = cur.Parent {
		if cur.Barrier {
			break
		}
		if !seen[cur.Decl] {
			seen[cur.Decl] = true
			entries = append(entries, Entry{Name: cur.Decl, Ref: cur.Ref})
		}
	}
	sortEntries(entries)
	return entries
}

func sortEntries(entries []Entry) {
	less := natural.Less
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && less(entries[j].Name, entries[j-1].Name); j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
}
