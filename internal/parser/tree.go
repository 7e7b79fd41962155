package parser

import (
	"fmt"
	"strings"

	"filegen/internal/application"
	"filegen/internal/domain"
)

// Limits applied by the raw tree parser unless overridden
const (
	DefaultMaxDepth          = 32
	DefaultMaxPathLength     = 1024
	DefaultMaxFilenameLength = 255
	DefaultTabWidth          = 4
)

// TreeParser decodes tree drawings (tree output, hand-drawn ASCII or
// Unicode diagrams, plain indented lists) into structure entries.
// A TreeParser is not safe for concurrent use; Warnings belong to the last Parse call.
type TreeParser struct {
	maxDepth          int
	maxPathLength     int
	maxFilenameLength int
	tabWidth          int
	warnings          []string
}

// TreeOption configures a TreeParser
type TreeOption func(*TreeParser)

// WithMaxDepth sets the deepest nesting level accepted. Negative depths are ignored.
func WithMaxDepth(depth int) TreeOption {
	return func(p *TreeParser) {
		if depth >= 0 {
			p.maxDepth = depth
		}
	}
}

// WithMaxPathLength sets the longest relative path accepted
func WithMaxPathLength(n int) TreeOption {
	return func(p *TreeParser) {
		if n > 0 {
			p.maxPathLength = n
		}
	}
}

// WithMaxFilenameLength sets the longest single name accepted
func WithMaxFilenameLength(n int) TreeOption {
	return func(p *TreeParser) {
		if n > 0 {
			p.maxFilenameLength = n
		}
	}
}

// WithTabWidth sets how many spaces a tab expands to. Widths below 1 are ignored.
func WithTabWidth(n int) TreeOption {
	return func(p *TreeParser) {
		if n >= 1 {
			p.tabWidth = n
		}
	}
}

// NewTreeParser creates a TreeParser with the default limits
func NewTreeParser(opts ...TreeOption) *TreeParser {
	p := &TreeParser{
		maxDepth:          DefaultMaxDepth,
		maxPathLength:     DefaultMaxPathLength,
		maxFilenameLength: DefaultMaxFilenameLength,
		tabWidth:          DefaultTabWidth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse recovers entries from content. Lines that break a limit are skipped
// and reported through Warnings; Parse fails only when nothing usable remains.
func (p *TreeParser) Parse(content string) ([]domain.Entry, error) {
	p.warnings = nil

	if strings.TrimSpace(content) == "" {
		return nil, application.NewParsingError("tree", application.ErrEmptyInput, "")
	}

	records := p.extract(content)
	if len(records) == 0 {
		return nil, application.NewParsingError("tree", application.ErrNoStructure, "no tree lines recognized")
	}

	entries := p.merge(records)
	if len(entries) == 0 {
		return nil, application.NewParsingError("tree", application.ErrNoStructure, "no usable paths")
	}
	return entries, nil
}

// Warnings returns the non-fatal problems found by the last Parse call
func (p *TreeParser) Warnings() []string {
	out := make([]string, len(p.warnings))
	copy(out, p.warnings)
	return out
}

func (p *TreeParser) warn(format string, args ...any) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}

func (p *TreeParser) extract(content string) []treeRecord {
	w := &treeWalker{}

	for i, raw := range strings.Split(content, "\n") {
		lineNum := i + 1
		line := normalizeLine(raw, p.tabWidth)
		if isNoiseLine(line) {
			continue
		}

		node, ok := decomposeTreeLine(line)
		if !ok {
			continue
		}

		// A flush-left plain line opens a new, independent tree
		if node.depth == 0 && !node.drawing && w.open() {
			w.reset()
		}

		if node.depth > p.maxDepth {
			p.warn("line %d: depth %d exceeds maximum %d, skipped %q", lineNum, node.depth, p.maxDepth, node.name)
			continue
		}
		if len(node.name) > p.maxFilenameLength {
			p.warn("line %d: name longer than %d characters, skipped", lineNum, p.maxFilenameLength)
			continue
		}

		w.unwind(node.depth)
		if path := w.pathFor(node.name); len(path) > p.maxPathLength {
			p.warn("line %d: path longer than %d characters, skipped %q", lineNum, p.maxPathLength, node.name)
			continue
		}

		w.push(node, node.dir || !looksLikeFile(node.name))
	}

	return w.records
}

// merge emits each path once with its first-seen kind, ancestors first
func (p *TreeParser) merge(records []treeRecord) []domain.Entry {
	b := domain.NewBuilder()
	for _, r := range records {
		if b.Has(r.path) {
			continue
		}
		var added bool
		if r.dir {
			added = b.AddDirectory(r.path)
		} else {
			added = b.AddFile(r.path, "")
		}
		if !added {
			p.warn("skipped %s: a parent is already a file", r.path)
		}
	}
	return b.Entries()
}
