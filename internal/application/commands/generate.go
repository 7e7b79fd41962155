package commands

import (
	"context"
	"fmt"
	"time"

	"filegen/internal/application"
	"filegen/internal/domain"
	"filegen/internal/ports"
)

// GenerateResult contains the result of a generation run
type GenerateResult struct {
	OutputDir  string // Resolved absolute output directory
	Validation *application.ValidationResult
	Stats      *domain.GenerationStats
	RunID      int64 // Zero when history is disabled or the run was a dry run
	HistoryErr error // Recording failures do not fail the generation
	Message    string
}

// GenerateCommand validates a structure and writes it to disk
type GenerateCommand struct {
	writer    ports.StructureWriter
	validator *application.StructureValidator
	confirmer ports.Confirmer
	history   ports.GenerationHistory

	Entries   []domain.Entry
	OutputDir string
	Force     bool
	DryRun    bool
	Source    string
	Format    domain.Format
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(
	writer ports.StructureWriter,
	validator *application.StructureValidator,
	entries []domain.Entry,
	outputDir string,
) *GenerateCommand {
	return &GenerateCommand{
		writer:    writer,
		validator: validator,
		Entries:   entries,
		OutputDir: outputDir,
	}
}

// WithConfirmer sets who is asked before existing files are overwritten.
// Without one, existing files are skipped unless Force is set.
func (c *GenerateCommand) WithConfirmer(confirmer ports.Confirmer) *GenerateCommand {
	c.confirmer = confirmer
	return c
}

// WithHistory records successful runs in history
func (c *GenerateCommand) WithHistory(history ports.GenerationHistory) *GenerateCommand {
	c.history = history
	return c
}

// Validate checks the command arguments
func (c *GenerateCommand) Validate() error {
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

// Execute runs the generate command. It returns *application.StructureError
// when validation fails and application.ErrCancelled when the user declines
// to overwrite existing files.
func (c *GenerateCommand) Execute(ctx context.Context) (*GenerateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	root, err := application.ResolveOutputDir(c.OutputDir)
	if err != nil {
		return nil, err
	}

	validation := c.validator.Validate(c.Entries, root)
	result := &GenerateResult{OutputDir: root, Validation: validation}
	if !validation.OK {
		return result, &application.StructureError{Errors: validation.Errors}
	}

	force := c.Force
	if len(validation.Conflicts) > 0 && !force && !c.DryRun && c.confirmer != nil {
		ok, err := c.confirmer.ConfirmOverwrite(validation.Conflicts)
		if err != nil {
			return result, fmt.Errorf("failed to confirm overwrite: %w", err)
		}
		if !ok {
			return result, application.ErrCancelled
		}
		force = true
	}

	stats, err := c.writer.Write(ctx, c.Entries, ports.WriteOptions{
		OutputDir: root,
		Force:     force,
		DryRun:    c.DryRun,
	})
	if err != nil {
		return result, fmt.Errorf("failed to generate structure: %w", err)
	}
	result.Stats = stats

	if c.history != nil && !c.DryRun {
		result.RunID, result.HistoryErr = c.history.Record(&domain.GenerationRun{
			Source:    c.Source,
			Format:    c.Format,
			OutputDir: root,
			CreatedAt: time.Now(),
			Stats:     *stats,
		})
	}

	verb := "Created"
	if c.DryRun {
		verb = "Would create"
	}
	result.Message = fmt.Sprintf("%s %d directories and %d files in %s", verb, stats.DirectoriesCreated, stats.FilesCreated, root)
	if stats.FilesSkipped > 0 {
		result.Message += fmt.Sprintf(" (%d existing files skipped)", stats.FilesSkipped)
	}
	return result, nil
}
