package parser

import (
	"regexp"
	"strconv"
	"strings"

	"filegen/internal/application"
	"filegen/internal/domain"
)

var headingPattern = regexp.MustCompile(`^ {0,3}(#{1,6})[ \t]+(.+?)(?:[ \t]+#+)?[ \t]*$`)

// MarkdownParser reads heading outlines: "# dir" declares a directory,
// "## file" declares a file whose body (fenced or not) becomes its content.
type MarkdownParser struct{}

// NewMarkdownParser creates a MarkdownParser
func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{}
}

type pendingFile struct {
	path  string
	lines []string
}

// Parse converts a Markdown outline into entries
func (p *MarkdownParser) Parse(content string) ([]domain.Entry, error) {
	if strings.TrimSpace(content) == "" {
		return nil, application.NewParsingError("markdown", application.ErrEmptyInput, "")
	}

	b := domain.NewBuilder()
	currentDir := ""
	inFence := false
	var file *pendingFile

	flush := func() {
		if file != nil {
			b.AddFile(file.path, trimBlankLines(file.lines))
			file = nil
		}
	}

	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")

		if isFenceLine(line) {
			inFence = !inFence
			continue
		}

		if !inFence {
			if m := headingPattern.FindStringSubmatch(line); m != nil {
				title := strings.Trim(strings.TrimSpace(m[2]), "`*")

				switch len(m[1]) {
				case 1:
					flush()
					currentDir = cleanPath(title)
					if currentDir != "" {
						b.AddDirectory(currentDir)
					}
					continue
				case 2:
					flush()
					if currentDir == "" {
						return nil, &application.ParsingError{
							Parser: "markdown",
							Line:   i + 1,
							Reason: application.ErrOrphanFile,
							Detail: strconv.Quote(title),
						}
					}
					if name := cleanPath(title); name != "" {
						file = &pendingFile{path: currentDir + "/" + name}
					}
					continue
				}
			}
		}

		if file != nil {
			file.lines = append(file.lines, line)
		}
	}
	flush()

	if b.Len() == 0 {
		return nil, application.NewParsingError("markdown", application.ErrNoStructure, "no \"# directory\" heading found")
	}
	return b.Entries(), nil
}

func isFenceLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "```")
}

// trimBlankLines joins lines after dropping blank lines at both ends
func trimBlankLines(lines []string) string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
