package application

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~/out", filepath.Join(home, "out")},
		{"~", home},
		{"/tmp/out", "/tmp/out"},
		{"~user/out", "~user/out"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ExpandHome(tt.in); got != tt.want {
				t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveOutputDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"home relative", "~/proj", filepath.Join(home, "proj")},
		{"absolute", home, home},
		{"relative", "out", filepath.Join(wd, "out")},
		{"current directory", ".", wd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveOutputDir(tt.in)
			if err != nil {
				t.Fatalf("ResolveOutputDir(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ResolveOutputDir(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveOutputDir_Empty(t *testing.T) {
	_, err := ResolveOutputDir("  ")
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) || validationErr.Field != "outputDir" {
		t.Fatalf("expected an outputDir ValidationError, got %v", err)
	}
}
