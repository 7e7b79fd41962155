package commands

import (
	"context"
	"fmt"

	"filegen/internal/application"
	"filegen/internal/domain"
	"filegen/internal/ports"
)

// Parsers holds one parser per input format
type Parsers map[domain.Format]ports.StructureParser

// ParseResult contains the result of parsing an input
type ParseResult struct {
	Entries  []domain.Entry
	Warnings []string
	Format   domain.Format // Resolved format, never FormatAuto
	Message  string
}

// ParseCommand turns a text buffer into structure entries
type ParseCommand struct {
	parsers Parsers
	Content string
	Format  domain.Format
}

// NewParseCommand creates a new ParseCommand
func NewParseCommand(parsers Parsers, content string, format domain.Format) *ParseCommand {
	return &ParseCommand{
		parsers: parsers,
		Content: content,
		Format:  format,
	}
}

// Validate checks that a parser exists for the requested format
func (c *ParseCommand) Validate() error {
	if c.Format == domain.FormatAuto {
		return nil
	}
	if _, ok := c.parsers[c.Format]; !ok {
		return &application.ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("no parser registered for %s input", c.Format),
		}
	}
	return nil
}

// Execute runs the parse command. Parse failures are returned as
// *application.ParsingError.
func (c *ParseCommand) Execute(ctx context.Context) (*ParseResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	format := c.Format
	if format == domain.FormatAuto {
		format = application.DetectFormat(c.Content)
	}
	p, ok := c.parsers[format]
	if !ok {
		return nil, &application.ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("no parser registered for %s input", format),
		}
	}

	entries, err := p.Parse(c.Content)
	if err != nil {
		return nil, err
	}

	var warnings []string
	if wr, ok := p.(ports.WarningReporter); ok {
		warnings = wr.Warnings()
	}

	dirs, files := domain.CountKinds(entries)
	return &ParseResult{
		Entries:  entries,
		Warnings: warnings,
		Format:   format,
		Message:  fmt.Sprintf("Parsed %d directories and %d files from %s input", dirs, files, format),
	}, nil
}
