package domain

// Builder accumulates entries for a single parse call.
// Ancestor directories are synthesized shallowest first and each path is kept once.
type Builder struct {
	entries []Entry
	index   map[string]int
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{index: make(map[string]int)}
}

// AddDirectory records path as a directory. It returns false when the path
// already exists or one of its ancestors is a file.
func (b *Builder) AddDirectory(path string) bool {
	if path == "" || b.Has(path) || !b.addAncestors(path) {
		return false
	}
	b.append(NewDirectory(path))
	return true
}

// AddFile records path as a file with content. It returns false when the
// path already exists or one of its ancestors is a file.
func (b *Builder) AddFile(path, content string) bool {
	if path == "" || b.Has(path) || !b.addAncestors(path) {
		return false
	}
	b.append(NewFile(path, content))
	return true
}

// Has reports whether path was already recorded
func (b *Builder) Has(path string) bool {
	_, ok := b.index[path]
	return ok
}

// Lookup returns the recorded entry for path so callers can update its content
func (b *Builder) Lookup(path string) (*Entry, bool) {
	i, ok := b.index[path]
	if !ok {
		return nil, false
	}
	return &b.entries[i], true
}

// Len returns the number of recorded entries
func (b *Builder) Len() int {
	return len(b.entries)
}

// Entries returns the recorded entries in insertion order
func (b *Builder) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

func (b *Builder) addAncestors(path string) bool {
	ancestors := Ancestors(path)
	for _, dir := range ancestors {
		if i, ok := b.index[dir]; ok && !b.entries[i].IsDir() {
			return false
		}
	}
	for _, dir := range ancestors {
		if !b.Has(dir) {
			b.append(NewDirectory(dir))
		}
	}
	return true
}

func (b *Builder) append(e Entry) {
	b.index[e.Path] = len(b.entries)
	b.entries = append(b.entries, e)
}
