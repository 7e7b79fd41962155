package domain

import (
	"reflect"
	"testing"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		name string
		file string
		want string
	}{
		{name: "regular file", file: "main.go", want: "go"},
		{name: "multiple dots", file: "archive.tar.gz", want: "gz"},
		{name: "dotfile", file: ".gitignore", want: "gitignore"},
		{name: "dotfile with suffix", file: ".env.local", want: "local"},
		{name: "extensionless", file: "Dockerfile", want: ""},
		{name: "trailing dot", file: "weird.", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extension(tt.file); got != tt.want {
				t.Errorf("Extension(%q) = %q, want %q", tt.file, got, tt.want)
			}
		})
	}
}

func TestNewFile(t *testing.T) {
	root := NewFile("README.md", "# hi")
	if root.Directory != "." {
		t.Errorf("expected root-level directory \".\", got %q", root.Directory)
	}
	if root.Name != "README.md" || root.Extension != "md" {
		t.Errorf("unexpected name/extension: %q/%q", root.Name, root.Extension)
	}

	nested := NewFile("src/app/main.py", "")
	if nested.Directory != "src/app" {
		t.Errorf("expected directory src/app, got %q", nested.Directory)
	}
	if nested.Kind != KindFile {
		t.Errorf("expected file kind, got %s", nested.Kind)
	}
}

func TestAncestors(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{path: "a", want: nil},
		{path: "a/b", want: []string{"a"}},
		{path: "a/b/c.txt", want: []string{"a", "a/b"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Ancestors(tt.path); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Ancestors(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsReservedDeviceName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"CON", true},
		{"con.txt", true},
		{"LPT9", true},
		{"COM0", false},
		{"console.log", false},
		{"main.go", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsReservedDeviceName(tt.name); got != tt.want {
				t.Errorf("IsReservedDeviceName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestIsExtensionlessFile(t *testing.T) {
	for _, name := range []string{"Dockerfile", "dockerfile", "LICENSE", "makefile"} {
		if !IsExtensionlessFile(name) {
			t.Errorf("expected %q to be a known extensionless file", name)
		}
	}
	if IsExtensionlessFile("src") {
		t.Error("expected src not to be a known extensionless file")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"md", FormatMarkdown, false},
		{"ChatGPT", FormatChat, false},
		{"raw", FormatTree, false},
		{"yaml", FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}
