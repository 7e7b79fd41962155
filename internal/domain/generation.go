package domain

import "time"

// GenerationStats holds statistics from writing a structure to disk
type GenerationStats struct {
	DirectoriesCreated int
	FilesCreated       int
	FilesSkipped       int
	Errors             []string
	Written            []string // Relative paths of files written
}

// GenerationRun is one recorded generation in the history store
type GenerationRun struct {
	ID        int64
	Source    string // Input file path, "stdin", "clipboard" or "paste"
	Format    Format
	OutputDir string
	CreatedAt time.Time
	Stats     GenerationStats
}
