package parser

import (
	"regexp"
	"strings"

	"filegen/internal/application"
	"filegen/internal/domain"
)

// contextWindow is how far before a code block the parser looks for its file name
const contextWindow = 500

var (
	codeBlockPattern = regexp.MustCompile("(?ms)^[ \\t]*```([\\w+#.\\-]*)[^\\n]*\\n(.*?)^[ \\t]*```[ \\t]*$")
	projectRootLine  = regexp.MustCompile(`(?m)^([a-zA-Z0-9_\-]+)/\s*$`)
	fencedRootLine   = regexp.MustCompile("```[^\\n]*\\n\\s*([a-zA-Z0-9_\\-]+)/\\s*\\n")
	treeConnector    = regexp.MustCompile("[├└│┣┗┃]|\\|--|\\+--|`--|\\\\---")
)

// Language tags of code blocks that usually hold a dotfile or an extensionless file
var specialLanguages = map[string]bool{
	"env": true, "dotenv": true, "gitignore": true, "dockerignore": true,
	"dockerfile": true, "docker": true, "makefile": true, "make": true,
	"procfile": true, "editorconfig": true, "npmrc": true, "gemfile": true,
}

type codeBlock struct {
	lang    string
	body    string
	start   int
	end     int
	tree    bool
	claimed bool
}

// ChatParser recovers files from a chat assistant reply: an optional tree
// drawing plus code blocks whose file names are found in the text around them.
type ChatParser struct {
	tree *TreeParser
}

// NewChatParser creates a ChatParser
func NewChatParser() *ChatParser {
	return &ChatParser{tree: NewTreeParser()}
}

// chatParse is the state of a single Parse call
type chatParse struct {
	content string
	root    string
	blocks  []*codeBlock
	builder *domain.Builder
	leaves  map[string][]string // Basename -> tree leaf paths

	treeEnd int // End offset of an unfenced tree, zero when fenced or absent
}

// Parse extracts entries from a chat reply. Entries described by the tree
// come first, then files found only through code blocks.
func (p *ChatParser) Parse(content string) ([]domain.Entry, error) {
	if strings.TrimSpace(content) == "" {
		return nil, application.NewParsingError("chat", application.ErrEmptyInput, "")
	}
	p.tree.warnings = nil

	st := &chatParse{
		content: content,
		root:    detectProjectRoot(content),
		blocks:  extractCodeBlocks(content),
		builder: domain.NewBuilder(),
		leaves:  make(map[string][]string),
	}

	if tree := st.treeText(); tree != "" {
		st.applyTree(p.tree.extract(tree))
	}
	st.applyCodeBlocks()

	if st.builder.Len() == 0 {
		return nil, application.NewParsingError("chat", application.ErrNoStructure, "no file names found near code blocks")
	}
	return st.builder.Entries(), nil
}

// Warnings returns the tree problems found by the last Parse call
func (p *ChatParser) Warnings() []string {
	return p.tree.Warnings()
}

func detectProjectRoot(content string) string {
	for _, re := range []*regexp.Regexp{projectRootLine, fencedRootLine} {
		if m := re.FindStringSubmatch(content); m != nil {
			return m[1]
		}
	}
	return ""
}

func extractCodeBlocks(content string) []*codeBlock {
	var blocks []*codeBlock
	for _, m := range codeBlockPattern.FindAllStringSubmatchIndex(content, -1) {
		body := strings.TrimSpace(content[m[4]:m[5]])
		blocks = append(blocks, &codeBlock{
			lang:  strings.ToLower(content[m[2]:m[3]]),
			body:  body,
			start: m[0],
			end:   m[1],
			tree:  looksLikeTree(body),
		})
	}
	return blocks
}

// looksLikeTree reports whether most lines of body are tree drawing lines
func looksLikeTree(body string) bool {
	total, drawn, connectors := 0, 0, 0
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		total++
		switch {
		case treeConnector.MatchString(line):
			connectors++
			drawn++
		case projectRootLine.MatchString(trimmed):
			drawn++
		}
	}
	return connectors > 0 && drawn >= 2 && drawn*5 >= total*3
}

// treeText returns the first fenced tree, or an unfenced run of drawing
// lines together with the root line just above it. The end of an unfenced
// run is remembered so that block windows can leave it out.
func (st *chatParse) treeText() string {
	for _, b := range st.blocks {
		if b.tree {
			return b.body
		}
	}

	lines := strings.Split(st.content, "\n")
	offset, end := 0, 0
	var run []string
	for i, line := range lines {
		inside := st.insideBlock(offset)
		offset += len(line) + 1

		if !inside && treeConnector.MatchString(line) {
			if len(run) == 0 && i > 0 && projectRootLine.MatchString(strings.TrimSpace(lines[i-1])) {
				run = append(run, lines[i-1])
			}
			run = append(run, line)
			end = min(offset, len(st.content))
			continue
		}
		if len(run) > 0 {
			break
		}
	}
	if len(run) < 2 {
		return ""
	}
	st.treeEnd = end
	return strings.Join(run, "\n")
}

func (st *chatParse) insideBlock(offset int) bool {
	for _, b := range st.blocks {
		if offset >= b.start && offset < b.end {
			return true
		}
	}
	return false
}

func (st *chatParse) stripRoot(path string) string {
	path = cleanPath(path)
	if st.root == "" {
		return path
	}
	if path == st.root {
		return ""
	}
	return strings.TrimPrefix(path, st.root+"/")
}

func (st *chatParse) applyTree(records []treeRecord) {
	for _, r := range records {
		path := st.stripRoot(r.path)
		if path == "" {
			continue
		}
		if r.dir {
			st.builder.AddDirectory(path)
			continue
		}
		if st.builder.AddFile(path, st.claimContent(path)) {
			base := domain.BaseName(path)
			st.leaves[base] = append(st.leaves[base], path)
		}
	}
}

// claimContent hands the first unclaimed block that mentions path (or,
// failing that, its base name) to that tree leaf. A block whose only label
// is the unfenced tree drawing itself is claimed last, and only when no
// name sits between the tree and the block.
func (st *chatParse) claimContent(path string) string {
	needles := []string{path, domain.BaseName(path)}
	for _, needle := range needles {
		for i, b := range st.blocks {
			if b.tree || b.claimed {
				continue
			}
			if mentions(st.window(i), needle) {
				b.claimed = true
				return b.body
			}
		}
	}

	if st.treeEnd == 0 {
		return ""
	}
	for _, needle := range needles {
		for i, b := range st.blocks {
			if b.tree || b.claimed || st.nameFor(b, st.window(i)) != "" {
				continue
			}
			if mentions(st.fullWindow(i), needle) {
				b.claimed = true
				return b.body
			}
		}
	}
	return ""
}

// window is the text preceding block i, clipped at the end of the block
// before it and at the end of an unfenced tree drawing
func (st *chatParse) window(i int) string {
	start := st.windowStart(i)
	if st.treeEnd > start && st.treeEnd <= st.blocks[i].start {
		start = st.treeEnd
	}
	return st.content[start:st.blocks[i].start]
}

// fullWindow is window without the unfenced tree clipping
func (st *chatParse) fullWindow(i int) string {
	return st.content[st.windowStart(i):st.blocks[i].start]
}

func (st *chatParse) windowStart(i int) int {
	start := st.blocks[i].start - contextWindow
	if i > 0 && st.blocks[i-1].end > start {
		start = st.blocks[i-1].end
	}
	return max(start, 0)
}

func (st *chatParse) applyCodeBlocks() {
	for i, b := range st.blocks {
		if b.tree || b.claimed {
			continue
		}

		name := st.nameFor(b, st.window(i))
		if name == "" && st.treeEnd > 0 {
			name = st.nameFor(b, st.fullWindow(i))
		}
		if name == "" {
			continue
		}
		path := st.resolve(name)
		if path == "" {
			continue
		}

		b.claimed = true
		if existing, ok := st.builder.Lookup(path); ok {
			if !existing.IsDir() && (existing.Content == "" || len(b.body) > len(existing.Content)) {
				existing.Content = b.body
			}
			continue
		}
		st.builder.AddFile(path, b.body)
	}
}

func (st *chatParse) nameFor(b *codeBlock, window string) string {
	if specialLanguages[b.lang] || looksLikeEnv(b.body) {
		if name := findSpecialFilename(window); name != "" {
			return name
		}
		if looksLikeEnv(b.body) {
			return ".env"
		}
	}
	return findFilename(window)
}

// resolve maps a name found near a block to a path, preferring the tree
// leaf with the same base name when the name carries no directory
func (st *chatParse) resolve(name string) string {
	path := st.stripRoot(name)
	if path == "" || strings.Contains(path, "/") {
		return path
	}
	if candidates := st.leaves[path]; len(candidates) == 1 {
		return candidates[0]
	}
	return path
}

// mentions reports whether text contains name as a whole word
func mentions(text, name string) bool {
	for from := 0; ; {
		i := strings.Index(text[from:], name)
		if i < 0 {
			return false
		}
		i += from
		end := i + len(name)
		if (i == 0 || !isNameByte(text[i-1])) && (end == len(text) || !isNameByte(text[end])) {
			return true
		}
		from = i + 1
	}
}

func isNameByte(c byte) bool {
	return c == '_' || c == '-' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
