package parser

import (
	"filegen/internal/domain"
	"filegen/internal/ports"
)

// NewParsers returns a fresh parser for every concrete input format.
// Parsers keep per-call state, so callers running in parallel need their own set.
func NewParsers() map[domain.Format]ports.StructureParser {
	return map[domain.Format]ports.StructureParser{
		domain.FormatMarkdown: NewMarkdownParser(),
		domain.FormatChat:     NewChatParser(),
		domain.FormatTree:     NewTreeParser(),
	}
}
