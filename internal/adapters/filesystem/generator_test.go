package filesystem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"filegen/internal/application"
	"filegen/internal/domain"
	"filegen/internal/ports"
)

func testEntries() []domain.Entry {
	return []domain.Entry{
		domain.NewDirectory("src"),
		domain.NewFile("src/main.go", "package main\n"),
		domain.NewDirectory("scripts"),
		domain.NewFile("scripts/build.sh", "#!/bin/sh\n"),
		domain.NewFile("README.md", "# Demo"),
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestGenerator_Write(t *testing.T) {
	root := filepath.Join(t.TempDir(), "out")

	stats, err := NewGenerator().Write(context.Background(), testEntries(), ports.WriteOptions{OutputDir: root})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if stats.DirectoriesCreated != 2 || stats.FilesCreated != 3 || stats.FilesSkipped != 0 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if len(stats.Errors) != 0 {
		t.Errorf("unexpected errors: %v", stats.Errors)
	}
	if got := readFile(t, filepath.Join(root, "src", "main.go")); got != "package main\n" {
		t.Errorf("main.go content = %q", got)
	}
	if got := readFile(t, filepath.Join(root, "README.md")); got != "# Demo" {
		t.Errorf("README.md content = %q", got)
	}
	want := []string{"src/main.go", "scripts/build.sh", "README.md"}
	if strings.Join(stats.Written, ",") != strings.Join(want, ",") {
		t.Errorf("Written = %v, want %v", stats.Written, want)
	}
}

func TestGenerator_SkipAndForce(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "src"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	existing := filepath.Join(root, "src", "main.go")
	if err := os.WriteFile(existing, []byte("old"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	t.Run("skip existing", func(t *testing.T) {
		stats, err := NewGenerator().Write(context.Background(), testEntries(), ports.WriteOptions{OutputDir: root})
		if err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if stats.FilesSkipped != 1 || stats.FilesCreated != 2 {
			t.Errorf("unexpected stats: %+v", stats)
		}
		if got := readFile(t, existing); got != "old" {
			t.Errorf("existing file was overwritten: %q", got)
		}
	})

	t.Run("force overwrites", func(t *testing.T) {
		stats, err := NewGenerator().Write(context.Background(), testEntries(), ports.WriteOptions{OutputDir: root, Force: true})
		if err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if stats.FilesSkipped != 0 || stats.FilesCreated != 3 {
			t.Errorf("unexpected stats: %+v", stats)
		}
		if got := readFile(t, existing); got != "package main\n" {
			t.Errorf("existing file was not overwritten: %q", got)
		}
	})
}

func TestGenerator_DryRun(t *testing.T) {
	root := filepath.Join(t.TempDir(), "out")

	stats, err := NewGenerator().Write(context.Background(), testEntries(), ports.WriteOptions{OutputDir: root, DryRun: true})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if stats.DirectoriesCreated != 2 || stats.FilesCreated != 3 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if _, err := os.Stat(root); !os.IsNotExist(err) {
		t.Error("dry run must not create the output directory")
	}
}

func TestGenerator_ExecGlobs(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}
	root := t.TempDir()

	_, err := NewGenerator(WithExecGlobs("*.sh")).Write(context.Background(), testEntries(), ports.WriteOptions{OutputDir: root})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	info, err := os.Stat(filepath.Join(root, "scripts", "build.sh"))
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Mode().Perm()&0100 == 0 {
		t.Errorf("expected build.sh to be executable, got %v", info.Mode().Perm())
	}

	info, err = os.Stat(filepath.Join(root, "README.md"))
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Mode().Perm()&0100 != 0 {
		t.Errorf("expected README.md not to be executable, got %v", info.Mode().Perm())
	}
}

func TestGenerator_CollectsEntryErrors(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "src"), []byte("not a dir"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	entries := []domain.Entry{
		domain.NewDirectory("src"),
		domain.NewFile("../escape.txt", "x"),
		domain.NewFile("ok.txt", "fine"),
	}
	stats, err := NewGenerator().Write(context.Background(), entries, ports.WriteOptions{OutputDir: root})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if len(stats.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %v", stats.Errors)
	}
	if stats.FilesCreated != 1 {
		t.Errorf("expected ok.txt to be written, stats %+v", stats)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(root), "escape.txt")); !os.IsNotExist(err) {
		t.Error("a path outside the output directory was written")
	}
}

func TestGenerator_OutputRootFailure(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := NewGenerator().Write(context.Background(), testEntries(), ports.WriteOptions{OutputDir: filepath.Join(blocker, "out")})

	var genErr *application.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}

func TestGenerator_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenerator().Write(ctx, testEntries(), ports.WriteOptions{OutputDir: t.TempDir()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSafeJoin(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		rel     string
		wantErr bool
	}{
		{"src/main.go", false},
		{"a/b/../c", false},
		{"../outside", true},
		{"a/../../outside", true},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			_, err := SafeJoin(root, tt.rel)
			if (err != nil) != tt.wantErr {
				t.Errorf("SafeJoin(%q) error = %v, wantErr %v", tt.rel, err, tt.wantErr)
			}
		})
	}
}
