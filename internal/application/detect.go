package application

import (
	"regexp"
	"strings"

	"filegen/internal/domain"
)

var (
	levelOneHeading = regexp.MustCompile(`(?m)^ {0,3}#[ \t]+\S`)
	levelTwoHeading = regexp.MustCompile(`(?m)^ {0,3}##[ \t]+\S`)
	treeDrawing     = regexp.MustCompile(`(?m)[├└│┣┗┃]|^[ \t|]*(?:\|--|\+--|` + "`" + `--|\\---)`)
)

// DetectFormat guesses which parser fits content:
// heading outlines are Markdown, fenced replies are chat responses, anything else is a raw tree.
func DetectFormat(content string) domain.Format {
	first1 := levelOneHeading.FindStringIndex(content)
	first2 := levelTwoHeading.FindStringIndex(content)
	hasFence := strings.Contains(content, "```")

	if first1 != nil && first2 != nil && first1[0] < first2[0] && !treeDrawing.MatchString(content) {
		return domain.FormatMarkdown
	}
	if hasFence {
		return domain.FormatChat
	}
	if first1 != nil && first2 != nil {
		return domain.FormatMarkdown
	}
	return domain.FormatTree
}
