package domain

import "strings"

// Kind distinguishes directory entries from file entries
type Kind int

const (
	KindDirectory Kind = iota
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Entry is one recovered directory or file record
type Entry struct {
	Kind      Kind
	Path      string // Forward-slash relative path, e.g. "src/main.go"
	Name      string // Final path segment
	Directory string // Parent path for files, "." for root-level files
	Content   string // Raw file payload, empty when unknown
	Extension string // Derived from Name, empty for directories
}

// IsDir reports whether the entry is a directory
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// NewDirectory creates a directory entry for path
func NewDirectory(path string) Entry {
	return Entry{
		Kind: KindDirectory,
		Path: path,
		Name: BaseName(path),
	}
}

// NewFile creates a file entry for path with the given content
func NewFile(path, content string) Entry {
	name := BaseName(path)
	return Entry{
		Kind:      KindFile,
		Path:      path,
		Name:      name,
		Directory: ParentPath(path),
		Content:   content,
		Extension: Extension(name),
	}
}

// BaseName returns the last segment of a slash-separated path
func BaseName(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}

// ParentPath returns the containing directory of a slash-separated path,
// or "." for root-level paths
func ParentPath(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[:i]
	}
	return "."
}

// Extension derives the extension tag of a file name.
// Dotfiles with a single dot use the name without the dot (".gitignore" -> "gitignore").
func Extension(name string) string {
	if strings.HasPrefix(name, ".") && strings.Count(name, ".") == 1 {
		return name[1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return ""
}

// Ancestors returns every proper ancestor of path, shallowest first
// ("a/b/c" -> ["a", "a/b"])
func Ancestors(path string) []string {
	parts := strings.Split(path, "/")
	if len(parts) < 2 {
		return nil
	}
	ancestors := make([]string, 0, len(parts)-1)
	for i := 1; i < len(parts); i++ {
		ancestors = append(ancestors, strings.Join(parts[:i], "/"))
	}
	return ancestors
}

// CountKinds returns the number of directory and file entries
func CountKinds(entries []Entry) (dirs, files int) {
	for _, e := range entries {
		if e.IsDir() {
			dirs++
		} else {
			files++
		}
	}
	return dirs, files
}
