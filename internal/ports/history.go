package ports

import "filegen/internal/domain"

// GenerationHistory persists a record of every generation run
type GenerationHistory interface {
	// Lifecycle
	Open(path string) error
	Close() error

	// Record stores run and the files it wrote, returning the new run ID
	Record(run *domain.GenerationRun) (int64, error)

	// List returns the most recent runs first, including the files each one wrote
	List(limit int) ([]domain.GenerationRun, error)
}
