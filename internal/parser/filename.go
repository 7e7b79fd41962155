package parser

import (
	"regexp"
	"strings"
	"unicode"

	"filegen/internal/domain"
)

// fileToken matches a relative file path ending in an extension
const fileToken = `((?:[\w\-.]+/)*[\w\-.]*\.[A-Za-z0-9_]+)`

var (
	emojiName     = regexp.MustCompile(`(?:📄|📁|📝|🗎|🗂)\x{FE0F}?\s*[*` + "`" + `]*` + fileToken)
	headingName   = regexp.MustCompile(`^\s*#{1,6}\s+.*?[*` + "`" + `"']?` + fileToken)
	quotedName    = regexp.MustCompile("[`\"']" + fileToken + "[`\"']")
	bareName      = regexp.MustCompile(fileToken)
	treeLineStart = regexp.MustCompile("^\\s*[├└│┣┗┃|+`]")
	dotfileName   = regexp.MustCompile(`(?:^|[^\w.])((?:[\w\-]+/)*\.[A-Za-z0-9][\w.\-]*)`)
	nameToken     = regexp.MustCompile(`[\w\-./]+`)
	envAssignment = regexp.MustCompile(`^\s*(?:export\s+)?[A-Za-z_][A-Za-z0-9_]*\s*=`)
	urlLike       = regexp.MustCompile(`(?i)^(?:[a-z][a-z0-9+.\-]*://|www\.)`)
	sentenceEnd   = regexp.MustCompile(`[.!?:;]$`)
)

// IsValidFilename reports whether a candidate pulled from prose plausibly
// names a file: dotfiles, known extensionless files and names with a dot pass,
// URLs, sentences and names with illegal characters do not.
func IsValidFilename(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." || len(name) > 100 {
		return false
	}
	if strings.Count(name, " ") > 1 || domain.HasIllegalChars(name) {
		return false
	}
	if urlLike.MatchString(name) || strings.Contains(name, "://") {
		return false
	}
	if isProse(name) {
		return false
	}

	if strings.HasPrefix(name, ".") && len(name) > 1 {
		return true
	}
	if domain.IsExtensionlessFile(domain.BaseName(name)) {
		return true
	}
	return strings.Contains(name, ".")
}

func isProse(text string) bool {
	words := strings.Fields(text)
	if len(words) > 3 && sentenceEnd.MatchString(text) {
		return true
	}
	lower := 0
	for _, w := range words {
		if len(w) > 2 && strings.ToLower(w) == w && strings.IndexFunc(w, unicode.IsLetter) >= 0 {
			lower++
		}
	}
	return lower >= 3
}

// filenameMatcher inspects one line of the text preceding a code block
type filenameMatcher struct {
	span  int // Trailing lines of the window to inspect
	match func(line string) string
}

// filenameMatchers run in priority order; the first hit wins
var filenameMatchers = []filenameMatcher{
	{span: 5, match: submatch(emojiName)},
	{span: 5, match: submatch(headingName)},
	{span: 5, match: submatch(quotedName)},
	{span: 5, match: matchCleanLine},
	{span: 20, match: matchTreeLine},
}

func submatch(re *regexp.Regexp) func(string) string {
	return func(line string) string {
		if m := re.FindStringSubmatch(line); m != nil {
			return m[1]
		}
		return ""
	}
}

// matchCleanLine accepts short lines such as "**src/app.py**:" that carry a dotted name
func matchCleanLine(line string) string {
	clean := strings.TrimSpace(strings.NewReplacer("*", "", "`", "").Replace(line))
	if !strings.Contains(clean, ".") || len(clean) >= 100 {
		return ""
	}
	for _, candidate := range bareName.FindAllString(clean, -1) {
		if strings.HasPrefix(candidate, "http") || strings.Contains(clean, "://"+candidate) {
			continue
		}
		// "1.2" is a version, not a file
		if ext := domain.Extension(domain.BaseName(candidate)); strings.IndexFunc(ext, unicode.IsLetter) >= 0 {
			return candidate
		}
	}
	return ""
}

func matchTreeLine(line string) string {
	if !treeLineStart.MatchString(line) {
		return ""
	}
	return bareName.FindString(line)
}

// findFilename searches the text before a code block for the name of the
// file the block holds
func findFilename(window string) string {
	lines := strings.Split(window, "\n")
	for _, m := range filenameMatchers {
		for _, line := range lastLines(lines, m.span) {
			if name := strings.TrimRight(m.match(line), "."); name != "" && IsValidFilename(name) {
				return name
			}
		}
	}
	return ""
}

// findSpecialFilename looks for a dotfile or a known extensionless name
func findSpecialFilename(window string) string {
	for _, line := range lastLines(strings.Split(window, "\n"), 5) {
		if m := dotfileName.FindStringSubmatch(line); m != nil {
			if name := strings.TrimRight(m[1], ".-"); IsValidFilename(name) {
				return name
			}
		}
		for _, token := range nameToken.FindAllString(line, -1) {
			if domain.IsExtensionlessFile(domain.BaseName(token)) {
				return token
			}
		}
	}
	return ""
}

// lastLines returns up to n trailing lines, nearest first
func lastLines(lines []string, n int) []string {
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	out := make([]string, 0, len(lines))
	for i := len(lines) - 1; i >= 0; i-- {
		out = append(out, lines[i])
	}
	return out
}

// looksLikeEnv reports whether most non-comment lines are KEY=value assignments
func looksLikeEnv(body string) bool {
	total, assignments := 0, 0
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		total++
		if envAssignment.MatchString(trimmed) {
			assignments++
		}
	}
	return total > 0 && assignments*2 > total
}

// cleanPath normalizes a relative path: "./" and leading slashes are
// dropped, empty segments collapse, and any ".." makes it unusable ("").
func cleanPath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "`")
	p = strings.ReplaceAll(p, `\`, "/")
	parts := strings.Split(p, "/")
	kept := parts[:0]
	for _, part := range parts {
		part = strings.TrimSpace(part)
		switch part {
		case "", ".":
			continue
		case "..":
			return ""
		}
		kept = append(kept, part)
	}
	return strings.Join(kept, "/")
}
