package ports

import "filegen/internal/domain"

// StructureParser turns a text buffer into structure entries
type StructureParser interface {
	Parse(content string) ([]domain.Entry, error)
}

// WarningReporter is implemented by parsers that record non-fatal problems
type WarningReporter interface {
	Warnings() []string
}
