package commands

import (
	"context"

	"filegen/internal/application"
	"filegen/internal/domain"
)

// ValidateCommand checks a parsed structure against an output directory
type ValidateCommand struct {
	validator *application.StructureValidator
	Entries   []domain.Entry
	OutputDir string
}

// NewValidateCommand creates a new ValidateCommand
func NewValidateCommand(validator *application.StructureValidator, entries []domain.Entry, outputDir string) *ValidateCommand {
	return &ValidateCommand{
		validator: validator,
		Entries:   entries,
		OutputDir: outputDir,
	}
}

// Validate checks the command arguments
func (c *ValidateCommand) Validate() error {
	if err := application.ValidateRequired("outputDir", c.OutputDir); err != nil {
		return err
	}
	if len(c.Entries) == 0 {
		return &application.ValidationError{
			Field:   "entries",
			Message: "structure is required",
		}
	}
	return nil
}

// Execute runs the validation against the resolved output directory.
// It never modifies the filesystem.
func (c *ValidateCommand) Execute(ctx context.Context) (*application.ValidationResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	root, err := application.ResolveOutputDir(c.OutputDir)
	if err != nil {
		return nil, err
	}
	return c.validator.Validate(c.Entries, root), nil
}
