package parser

import (
	"strings"
	"testing"

	"filegen/internal/domain"
)

// fenced turns ''' markers into code fences so fixtures can live in raw strings
func fenced(s string) string {
	return strings.ReplaceAll(s, "'''", "```")
}

func paths(entries []domain.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Path)
	}
	return out
}

func find(t *testing.T, entries []domain.Entry, path string) domain.Entry {
	t.Helper()
	for _, e := range entries {
		if e.Path == path {
			return e
		}
	}
	t.Fatalf("entry %q not found in %v", path, paths(entries))
	return domain.Entry{}
}

// assertStructure checks the invariants every parser result must hold:
// unique paths and ancestors recorded as directories before their children
func assertStructure(t *testing.T, entries []domain.Entry) {
	t.Helper()
	seen := make(map[string]domain.Kind, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.Path]; dup {
			t.Errorf("duplicate path %q", e.Path)
		}
		for _, anc := range domain.Ancestors(e.Path) {
			kind, ok := seen[anc]
			if !ok {
				t.Errorf("ancestor %q of %q not emitted before it", anc, e.Path)
			} else if kind != domain.KindDirectory {
				t.Errorf("ancestor %q of %q is not a directory", anc, e.Path)
			}
		}
		seen[e.Path] = e.Kind
	}
}
