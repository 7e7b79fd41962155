package commands

import (
	"context"
	"fmt"

	"filegen/internal/application"
	"filegen/internal/domain"
	"filegen/internal/ports"
)

// DefaultHistoryLimit is how many runs are listed when no limit is given
const DefaultHistoryLimit = 20

// ListHistoryCommand lists recent generation runs
type ListHistoryCommand struct {
	history ports.GenerationHistory
	Limit   int
}

// NewListHistoryCommand creates a new ListHistoryCommand
func NewListHistoryCommand(history ports.GenerationHistory, limit int) *ListHistoryCommand {
	return &ListHistoryCommand{
		history: history,
		Limit:   limit,
	}
}

// Validate checks the command arguments
func (c *ListHistoryCommand) Validate() error {
	if c.Limit < 0 {
		return &application.ValidationError{
			Field:   "limit",
			Message: "limit must not be negative",
		}
	}
	return nil
}

// Execute runs the list history command
func (c *ListHistoryCommand) Execute(ctx context.Context) ([]domain.GenerationRun, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	limit := c.Limit
	if limit == 0 {
		limit = DefaultHistoryLimit
	}

	runs, err := c.history.List(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return runs, nil
}
