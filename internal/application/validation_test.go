package application

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"filegen/internal/domain"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "content",
			value:     "# Folder",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "outputDir",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "content",
			value:     "  \n ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Errorf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
			}
		})
	}
}

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"main.go", true},
		{".gitignore", true},
		{"Dockerfile", true},
		{"", false},
		{"   ", false},
		{"bad:name", false},
		{"what?.txt", false},
		{"NUL", false},
		{"aux.c", false},
		{"trailing.", false},
		{"trailing ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidName(tt.name); got != tt.want {
				t.Errorf("IsValidName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestIsValidPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"src/main.go", true},
		{"a/b/c", true},
		{"/etc/passwd", false},
		{`\windows`, false},
		{"src/../secret", false},
		{"a//b", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsValidPath(tt.path); got != tt.want {
				t.Errorf("IsValidPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestStructureValidator_Valid(t *testing.T) {
	entries := []domain.Entry{
		domain.NewDirectory("src"),
		domain.NewFile("src/main.go", "package main"),
	}

	result := NewStructureValidator().Validate(entries, t.TempDir())
	if !result.OK {
		t.Fatalf("expected OK, got errors %v", result.Errors)
	}
	if len(result.Warnings) != 0 || len(result.Conflicts) != 0 {
		t.Errorf("expected no warnings or conflicts, got %v / %v", result.Warnings, result.Conflicts)
	}
}

func TestStructureValidator_DuplicatePath(t *testing.T) {
	entries := []domain.Entry{
		domain.NewDirectory("src"),
		domain.NewFile("src", ""),
	}

	result := NewStructureValidator().Validate(entries, t.TempDir())
	if result.OK {
		t.Fatal("expected duplicate path to fail validation")
	}
	if !strings.Contains(result.Errors[0], "Duplicate path: src") {
		t.Errorf("unexpected error: %s", result.Errors[0])
	}
}

func TestStructureValidator_InvalidNamesAndPaths(t *testing.T) {
	entries := []domain.Entry{
		domain.NewDirectory("CON"),
		domain.NewFile("../escape.txt", ""),
		domain.NewFile("/abs.txt", ""),
	}

	result := NewStructureValidator().Validate(entries, t.TempDir())
	if result.OK {
		t.Fatal("expected validation to fail")
	}

	joined := strings.Join(result.Errors, "\n")
	for _, want := range []string{"Invalid name: \"CON\"", "Invalid path: ../escape.txt", "Invalid path: /abs.txt"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected error containing %q, got:\n%s", want, joined)
		}
	}
}

func TestStructureValidator_DangerousExtensionWarning(t *testing.T) {
	entries := []domain.Entry{
		domain.NewDirectory("scripts"),
		domain.NewFile("scripts/run.sh", "#!/bin/sh"),
	}

	result := NewStructureValidator().Validate(entries, t.TempDir())
	if !result.OK {
		t.Fatalf("expected OK, got errors %v", result.Errors)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", result.Warnings)
	}
	if !strings.Contains(result.Warnings[0], "sh") || !strings.Contains(result.Warnings[0], "scripts/run.sh") {
		t.Errorf("unexpected warning: %s", result.Warnings[0])
	}

	quiet := NewStructureValidator(WithDangerousExtensionWarnings(false)).Validate(entries, t.TempDir())
	if len(quiet.Warnings) != 0 {
		t.Errorf("expected no warnings when disabled, got %v", quiet.Warnings)
	}
}

func TestStructureValidator_Conflicts(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "src"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "src", "main.go"), []byte("old"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	entries := []domain.Entry{
		domain.NewDirectory("src"),
		domain.NewFile("src/main.go", "new"),
		domain.NewFile("src/util.go", ""),
	}

	result := NewStructureValidator().Validate(entries, root)
	if !result.OK {
		t.Fatalf("conflicts must not fail validation, got errors %v", result.Errors)
	}
	if len(result.Conflicts) != 1 || result.Conflicts[0] != "src/main.go" {
		t.Errorf("expected conflict on src/main.go, got %v", result.Conflicts)
	}

	// Validation never touches the filesystem
	content, _ := os.ReadFile(filepath.Join(root, "src", "main.go"))
	if string(content) != "old" {
		t.Errorf("existing file was modified: %q", content)
	}
	if _, err := os.Stat(filepath.Join(root, "src", "util.go")); !os.IsNotExist(err) {
		t.Error("validation must not create files")
	}
}

func TestStructureValidator_DirectoryOverFile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "build"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	result := NewStructureValidator().Validate([]domain.Entry{domain.NewDirectory("build")}, root)
	if result.OK {
		t.Fatal("expected directory over existing file to fail validation")
	}
}

func TestStructureValidator_LongPathWarning(t *testing.T) {
	long := strings.Repeat("d", 120) + "/" + strings.Repeat("f", 140) + ".txt"
	entries := []domain.Entry{
		domain.NewDirectory(strings.Repeat("d", 120)),
		domain.NewFile(long, ""),
	}

	result := NewStructureValidator().Validate(entries, t.TempDir())
	if !result.OK {
		t.Fatalf("long paths must not fail validation, got %v", result.Errors)
	}

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "Very long path") && strings.Contains(w, long) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected long path warning, got %v", result.Warnings)
	}
}

func TestParsingError(t *testing.T) {
	err := &ParsingError{Parser: "markdown", Line: 3, Reason: ErrOrphanFile, Detail: `"notes.txt"`}

	if !errors.Is(err, ErrOrphanFile) {
		t.Error("expected ParsingError to unwrap to ErrOrphanFile")
	}
	want := `markdown: file declared before any directory: "notes.txt" (line 3)`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestStructureError_Is(t *testing.T) {
	err := &StructureError{Errors: []string{"Duplicate path: a"}}
	if !errors.Is(err, ErrInvalidStructure) {
		t.Error("expected StructureError to match ErrInvalidStructure")
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    domain.Format
	}{
		{
			name:    "markdown outline",
			content: "# src\n## main.go\n```go\npackage main\n```\n",
			want:    domain.FormatMarkdown,
		},
		{
			name:    "chat response",
			content: "Here is your project:\n\n📄 main.py\n```python\nprint('hi')\n```\n",
			want:    domain.FormatChat,
		},
		{
			name:    "chat response with tree",
			content: "# Setup\n```\napp/\n├── main.py\n```\n## main.py\n```python\nx = 1\n```\n",
			want:    domain.FormatChat,
		},
		{
			name:    "raw tree",
			content: "project/\n├── src/\n│   └── main.py\n└── README.md\n",
			want:    domain.FormatTree,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFormat(tt.content); got != tt.want {
				t.Errorf("DetectFormat() = %s, want %s", got, tt.want)
			}
		})
	}
}
