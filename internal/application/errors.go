package application

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	ErrEmptyInput       = errors.New("input is empty")
	ErrNoStructure      = errors.New("no structure found")
	ErrOrphanFile       = errors.New("file declared before any directory")
	ErrUnreadable       = errors.New("unable to read source")
	ErrInvalidStructure = errors.New("invalid structure")
	ErrCancelled        = errors.New("cancelled")
)

// ParsingError is a fatal parse failure. Reason is one of the sentinel errors
// above so callers can branch with errors.Is.
type ParsingError struct {
	Parser string // "markdown", "chat" or "tree"
	Line   int    // 1-based line number, 0 when not tied to a line
	Reason error
	Detail string
}

func (e *ParsingError) Error() string {
	var b strings.Builder
	if e.Parser != "" {
		b.WriteString(e.Parser)
		b.WriteString(": ")
	}
	b.WriteString(e.Reason.Error())
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	return b.String()
}

func (e *ParsingError) Unwrap() error {
	return e.Reason
}

// NewParsingError creates a ParsingError not tied to a line
func NewParsingError(parser string, reason error, detail string) *ParsingError {
	return &ParsingError{Parser: parser, Reason: reason, Detail: detail}
}

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// StructureError is returned when generation is refused because the
// structure failed validation
type StructureError struct {
	Errors []string
}

func (e *StructureError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("invalid structure: %s", e.Errors[0])
	}
	return fmt.Sprintf("invalid structure: %d errors, first: %s", len(e.Errors), e.Errors[0])
}

func (e *StructureError) Is(target error) bool {
	return target == ErrInvalidStructure
}

// GenerationError represents a fatal failure while writing to disk
type GenerationError struct {
	Path string
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("cannot generate %s: %v", e.Path, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
