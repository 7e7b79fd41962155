package application

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"filegen/internal/domain"
)

// MaxResolvedPathLength is the resolved path length above which a warning is recorded
const MaxResolvedPathLength = 255

// DangerousExtensions lists extensions that trigger a warning when generated
var DangerousExtensions = map[string]bool{
	"exe": true, "bat": true, "cmd": true, "com": true, "pif": true,
	"scr": true, "vbs": true, "ps1": true, "sh": true,
}

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "outputDir" -> "output directory")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"outputDir": "output directory",
		"content":   "content",
		"format":    "format",
		"entries":   "structure",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidationResult collects the outcome of validating a structure
type ValidationResult struct {
	OK        bool
	Errors    []string // Blocking problems
	Warnings  []string // Non-blocking notes
	Conflicts []string // Relative paths of files that already exist
}

func (r *ValidationResult) addError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.OK = false
}

func (r *ValidationResult) addWarning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// StructureValidator checks a parsed structure before generation
type StructureValidator struct {
	warnDangerous bool
}

// ValidatorOption configures the StructureValidator
type ValidatorOption func(*StructureValidator)

// WithDangerousExtensionWarnings toggles warnings for executable extensions
func WithDangerousExtensionWarnings(enabled bool) ValidatorOption {
	return func(v *StructureValidator) {
		v.warnDangerous = enabled
	}
}

// NewStructureValidator creates a validator; dangerous extension warnings are on by default
func NewStructureValidator(opts ...ValidatorOption) *StructureValidator {
	v := &StructureValidator{warnDangerous: true}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks entries against name and path rules and against the
// contents of outputRoot. It only reads the filesystem.
func (v *StructureValidator) Validate(entries []domain.Entry, outputRoot string) *ValidationResult {
	result := &ValidationResult{OK: true}
	seen := make(map[string]bool, len(entries))

	for _, e := range entries {
		if seen[e.Path] {
			result.addError("Duplicate path: %s", e.Path)
		}
		seen[e.Path] = true

		if !IsValidName(e.Name) {
			result.addError("Invalid name: %q (forbidden characters, reserved name or trailing dot/space)", e.Name)
		}
		if !IsValidPath(e.Path) {
			result.addError("Invalid path: %s", e.Path)
		}

		target := filepath.Join(outputRoot, filepath.FromSlash(e.Path))
		info, statErr := os.Stat(target)

		if e.IsDir() {
			if statErr == nil && !info.IsDir() {
				result.addError("Cannot create directory %s: a file already exists there", e.Path)
			}
		} else {
			if statErr == nil {
				result.Conflicts = append(result.Conflicts, e.Path)
			}
			ext := strings.ToLower(e.Extension)
			if v.warnDangerous && DangerousExtensions[ext] {
				result.addWarning("Potentially dangerous extension: %s (.%s)", e.Path, ext)
			}
		}

		if resolved := resolvedLength(target); resolved > MaxResolvedPathLength {
			result.addWarning("Very long path (%d characters, may cause issues on Windows): %s", resolved, e.Path)
		}
	}

	return result
}

// IsValidName reports whether name is usable as a single path segment
func IsValidName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	if domain.HasIllegalChars(name) || domain.IsReservedDeviceName(name) {
		return false
	}
	if strings.HasSuffix(name, ".") || strings.HasSuffix(name, " ") {
		return false
	}
	return true
}

// IsValidPath reports whether path is a relative forward-slash path made of valid names
func IsValidPath(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	if strings.HasPrefix(path, "/") || strings.HasPrefix(path, `\`) || filepath.IsAbs(path) {
		return false
	}
	for _, part := range strings.Split(path, "/") {
		if part == ".." || !IsValidName(part) {
			return false
		}
	}
	return true
}

func resolvedLength(target string) int {
	if abs, err := filepath.Abs(target); err == nil {
		return len(abs)
	}
	return len(target)
}
