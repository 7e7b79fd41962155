package domain

import (
	"fmt"
	"strings"
)

// Format identifies which front-end parser reads an input
type Format int

const (
	FormatAuto Format = iota
	FormatMarkdown
	FormatChat
	FormatTree
)

func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatChat:
		return "chat"
	case FormatTree:
		return "tree"
	default:
		return "auto"
	}
}

// ParseFormat converts a user-supplied format name into a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "chat", "chatgpt", "gpt":
		return FormatChat, nil
	case "tree", "raw":
		return FormatTree, nil
	default:
		return FormatAuto, fmt.Errorf("unknown format: %s (expected auto, markdown, chat or tree)", s)
	}
}
