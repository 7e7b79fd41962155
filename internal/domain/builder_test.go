package domain

import "testing"

func TestBuilder_SynthesizesAncestors(t *testing.T) {
	b := NewBuilder()
	if !b.AddFile("a/b/c.txt", "hello") {
		t.Fatal("AddFile returned false")
	}

	entries := b.Entries()
	want := []struct {
		path string
		kind Kind
	}{
		{"a", KindDirectory},
		{"a/b", KindDirectory},
		{"a/b/c.txt", KindFile},
	}

	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, w := range want {
		if entries[i].Path != w.path || entries[i].Kind != w.kind {
			t.Errorf("entry %d = %s %s, want %s %s", i, entries[i].Kind, entries[i].Path, w.kind, w.path)
		}
	}
	if entries[2].Content != "hello" {
		t.Errorf("expected content hello, got %q", entries[2].Content)
	}
}

func TestBuilder_FirstOccurrenceWins(t *testing.T) {
	b := NewBuilder()
	b.AddFile("x.txt", "first")

	if b.AddFile("x.txt", "second") {
		t.Error("expected duplicate file to be rejected")
	}
	if b.AddDirectory("x.txt") {
		t.Error("expected directory with a file's path to be rejected")
	}

	e, ok := b.Lookup("x.txt")
	if !ok {
		t.Fatal("expected x.txt to be recorded")
	}
	if e.Content != "first" {
		t.Errorf("expected first content to win, got %q", e.Content)
	}
}

func TestBuilder_RejectsFileAncestor(t *testing.T) {
	b := NewBuilder()
	b.AddFile("notes", "")

	if b.AddFile("notes/today.md", "") {
		t.Error("expected path under a file to be rejected")
	}
	if b.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", b.Len())
	}
}

func TestBuilder_LookupUpdatesContent(t *testing.T) {
	b := NewBuilder()
	b.AddFile("src/main.go", "")

	e, _ := b.Lookup("src/main.go")
	e.Content = "package main"

	entries := b.Entries()
	if entries[1].Content != "package main" {
		t.Errorf("expected content to be updated through Lookup, got %q", entries[1].Content)
	}
}

func TestBuildTree(t *testing.T) {
	b := NewBuilder()
	b.AddFile("README.md", "")
	b.AddFile("src/main.go", "")
	b.AddDirectory("src/internal")
	b.AddDirectory("docs")

	roots := BuildTree(b.Entries())
	if len(roots) != 3 {
		t.Fatalf("expected 3 roots, got %d", len(roots))
	}

	// Directories first, insertion order within each kind
	if roots[0].Entry.Path != "src" || roots[1].Entry.Path != "docs" || roots[2].Entry.Path != "README.md" {
		t.Errorf("unexpected root order: %s, %s, %s", roots[0].Entry.Path, roots[1].Entry.Path, roots[2].Entry.Path)
	}

	src := roots[0]
	if len(src.Children) != 2 {
		t.Fatalf("expected 2 children under src, got %d", len(src.Children))
	}
	if src.Children[0].Entry.Path != "src/internal" {
		t.Errorf("expected directory child first, got %s", src.Children[0].Entry.Path)
	}
}
