package ports

import (
	"context"

	"filegen/internal/domain"
)

// WriteOptions controls how a structure is materialized
type WriteOptions struct {
	OutputDir string
	Force     bool // Overwrite files that already exist
	DryRun    bool // Count what would be written without touching disk
}

// StructureWriter materializes parsed entries under an output directory
type StructureWriter interface {
	// Write creates every directory first, then every file.
	// Per-entry failures are collected in the returned stats; the error is
	// reserved for failures that stop the whole run.
	Write(ctx context.Context, entries []domain.Entry, opts WriteOptions) (*domain.GenerationStats, error)
}
