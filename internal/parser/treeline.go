package parser

import (
	"regexp"
	"strings"
	"unicode"

	"filegen/internal/domain"
)

var (
	sgrSequence     = regexp.MustCompile(`\x1b\[[0-9;]*m`)
	escapeSequence  = regexp.MustCompile(`\x1b(?:\[[0-9;?]*[ -/]*[@-~]|[@-Z\\-_])`)
	shellNamePrefix = regexp.MustCompile(`^\s*(?:bash|zsh|sh|fish|ksh|dash|cmd|powershell|pwsh)(?:\.exe)?\s*:`)
	promptLine      = regexp.MustCompile(`^\s*(?:\$|%|>)\s+\S|^\s*[\w.-]+@[\w.-]+(?::[^\s]*)?\s*[$#%]`)
	treeSummary     = regexp.MustCompile(`(?i)^\s*\d+\s+director(?:y|ies)(?:\s*,\s*\d+\s+files?)?\s*$`)
	fileExtension   = regexp.MustCompile(`\.[A-Za-z0-9]{1,5}$`)
)

var shellErrors = []string{
	"command not found",
	"No such file",
	"Permission denied",
}

// treeLine is a single decomposed line of a tree drawing
type treeLine struct {
	depth   int
	name    string
	dir     bool // Name carried a trailing slash
	drawing bool // Prefix contained tree-drawing characters
}

func isTreeChar(r rune) bool {
	switch r {
	case '│', '├', '└', '─', '┬', '┴', '┼', '┤', '┌', '┐', '┘',
		'╭', '╮', '╰', '╯', '┃', '┣', '┗', '━', '┠', '┖', '╠', '╚', '║', '═',
		'|', '+', '`', '-', '\\':
		return true
	}
	return false
}

func isVertical(r rune) bool {
	return r == '│' || r == '┃' || r == '|' || r == '║'
}

func isHorizontal(r rune) bool {
	return r == '─' || r == '━' || r == '-' || r == '═'
}

// normalizeLine expands tabs, replaces no-break spaces and strips color codes
func normalizeLine(line string, tabWidth int) string {
	line = strings.TrimRight(line, "\r")
	line = sgrSequence.ReplaceAllString(line, "")
	line = strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))
	return strings.ReplaceAll(line, "\u00a0", " ")
}

// isNoiseLine reports lines that belong to the shell session around a
// tree drawing rather than to the drawing itself
func isNoiseLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}
	if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
		return true
	}
	for _, sig := range shellErrors {
		if strings.Contains(line, sig) {
			return true
		}
	}
	if escapeSequence.MatchString(line) || hasControlChars(line) {
		return true
	}
	if treeSummary.MatchString(trimmed) || promptLine.MatchString(line) {
		return true
	}

	rest := strings.TrimLeftFunc(line, func(r rune) bool {
		return isTreeChar(r) || unicode.IsSpace(r)
	})
	if shellNamePrefix.MatchString(rest) {
		return true
	}
	// Stray prompt fragments such as "│   :"
	return strings.TrimSpace(rest) == ":" || strings.HasPrefix(strings.TrimSpace(rest), ": ")
}

func hasControlChars(s string) bool {
	for _, r := range s {
		if (r < 0x20 && r != '\t') || r == 0x7f {
			return true
		}
	}
	return false
}

// splitPrefix separates the leading run of drawing characters and whitespace
// from the rest of the line
func splitPrefix(line string) (prefix, rest string) {
	prev := ' '
	for i, r := range line {
		if !isTreeChar(r) && r != ' ' {
			return line[:i], line[i:]
		}
		// "+page.svelte" or "-config": a lone marker glued to a name belongs to it
		if prev == ' ' && (r == '+' || r == '-') && startsName(line[i+1:]) {
			return line[:i], line[i:]
		}
		prev = r
	}
	return line, ""
}

func startsName(s string) bool {
	for _, r := range s {
		return r == '_' || r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return false
}

// prefixDepth infers nesting depth from a line prefix. Every vertical bar
// counts one level and absorbs up to three following spaces, every further
// four columns of blank indentation count one level, and a branch connector
// adds the final level.
func prefixDepth(prefix string) (depth int, drawing bool) {
	runes := []rune(prefix)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == ' ':
			n := 0
			for i < len(runes) && runes[i] == ' ' {
				n++
				i++
			}
			depth += n / 4
		case isVertical(r) && (i+1 >= len(runes) || !isHorizontal(runes[i+1])):
			drawing = true
			depth++
			i++
			for n := 0; n < 3 && i < len(runes) && runes[i] == ' '; n++ {
				i++
			}
		default:
			return depth + 1, true
		}
	}
	return depth, drawing
}

// cleanName strips decorations around a node name: inline comments,
// icons and Markdown emphasis
func cleanName(rest string) string {
	name := strings.TrimSpace(rest)
	for _, marker := range []string{" #", " //", " <-", " ←"} {
		if i := strings.Index(name, marker); i >= 0 {
			name = name[:i]
		}
	}
	name = strings.TrimLeftFunc(name, func(r rune) bool {
		return unicode.Is(unicode.So, r) || r == '\uFE0F' || r == '\u200D' || unicode.IsSpace(r)
	})
	name = strings.Trim(strings.TrimSpace(name), "*`")
	return strings.TrimSpace(name)
}

// isAcceptableNodeName applies the tree parser's name rejection rules
func isAcceptableNodeName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if domain.HasIllegalChars(name) || domain.IsReservedDeviceName(name) {
		return false
	}
	if strings.Count(name, " ") > 5 {
		return false
	}
	for _, r := range name {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// looksLikeFile decides the kind of a node without a trailing slash.
// Bare words without an extension are treated as directories.
func looksLikeFile(name string) bool {
	return fileExtension.MatchString(name) ||
		domain.IsExtensionlessFile(name) ||
		domain.IsDotfile(name)
}

// decomposeTreeLine splits a normalized line into depth and node name.
// It returns false for lines that carry no usable node.
func decomposeTreeLine(line string) (treeLine, bool) {
	prefix, rest := splitPrefix(line)
	depth, drawing := prefixDepth(prefix)

	trimmed := strings.TrimSpace(rest)
	if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//") {
		return treeLine{}, false
	}

	name := cleanName(rest)
	dir := strings.HasSuffix(name, "/")
	name = strings.TrimSpace(strings.TrimRight(name, "/"))
	if !isAcceptableNodeName(name) {
		return treeLine{}, false
	}

	return treeLine{depth: depth, name: name, dir: dir, drawing: drawing}, true
}

// treeRecord is one extracted path with its kind
type treeRecord struct {
	path string
	dir  bool
}

type stackFrame struct {
	depth  int
	name   string
	record int // Index into treeWalker.records
}

// treeWalker rebuilds paths from decomposed lines with a depth-keyed stack
type treeWalker struct {
	stack   []stackFrame
	records []treeRecord
}

// reset starts a new independent tree
func (w *treeWalker) reset() {
	w.stack = w.stack[:0]
}

func (w *treeWalker) open() bool {
	return len(w.stack) > 0
}

// unwind pops every frame that is not shallower than depth
func (w *treeWalker) unwind(depth int) {
	for len(w.stack) > 0 && w.stack[len(w.stack)-1].depth >= depth {
		w.stack = w.stack[:len(w.stack)-1]
	}
}

// pathFor returns the path name would get under the current stack
func (w *treeWalker) pathFor(name string) string {
	if len(w.stack) == 0 {
		return name
	}
	parts := make([]string, 0, len(w.stack)+1)
	for _, f := range w.stack {
		parts = append(parts, f.name)
	}
	return strings.Join(append(parts, name), "/")
}

// push records a node under the current stack. A parent that was recorded
// as a file is promoted to a directory since it has children.
func (w *treeWalker) push(l treeLine, isDir bool) string {
	path := w.pathFor(l.name)
	if n := len(w.stack); n > 0 {
		w.records[w.stack[n-1].record].dir = true
	}
	w.records = append(w.records, treeRecord{path: path, dir: isDir})
	w.stack = append(w.stack, stackFrame{depth: l.depth, name: l.name, record: len(w.records) - 1})
	return path
}
