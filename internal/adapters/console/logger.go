package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"filegen/internal/adapters/tui/styles"
	"filegen/internal/ports"
)

// Logger writes styled progress messages, one per line
type Logger struct {
	out     io.Writer
	verbose bool
}

// Ensure Logger implements ports.Logger
var _ ports.Logger = (*Logger)(nil)

// NewLogger creates a logger writing to out. Debug messages are shown only when verbose.
func NewLogger(out io.Writer, verbose bool) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{out: out, verbose: verbose}
}

// Info logs a plain progress message
func (l *Logger) Info(format string, args ...any) {
	l.print(styles.InfoMsg, "", format, args...)
}

// Success logs a completed step
func (l *Logger) Success(format string, args ...any) {
	l.print(styles.Success, "✓ ", format, args...)
}

// Warn logs a non-fatal problem
func (l *Logger) Warn(format string, args ...any) {
	l.print(styles.WarningMsg, "! ", format, args...)
}

// Error logs a failure
func (l *Logger) Error(format string, args ...any) {
	l.print(styles.ErrorMsg, "✗ ", format, args...)
}

// Debug logs detail shown only in verbose mode
func (l *Logger) Debug(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.print(styles.MutedText, "  ", format, args...)
}

func (l *Logger) print(style lipgloss.Style, marker, format string, args ...any) {
	fmt.Fprintln(l.out, style.Render(marker+fmt.Sprintf(format, args...)))
}
