package application

import "filegen/internal/domain"

// Re-export domain types for use by adapters
type (
	Entry           = domain.Entry
	Kind            = domain.Kind
	Format          = domain.Format
	GenerationStats = domain.GenerationStats
	GenerationRun   = domain.GenerationRun
)

const (
	KindDirectory = domain.KindDirectory
	KindFile      = domain.KindFile

	FormatAuto     = domain.FormatAuto
	FormatMarkdown = domain.FormatMarkdown
	FormatChat     = domain.FormatChat
	FormatTree     = domain.FormatTree
)

// ParseFormat converts a user-supplied format name into a Format
func ParseFormat(s string) (Format, error) {
	return domain.ParseFormat(s)
}
