package clipboard

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"filegen/internal/application"
)

// Source is the name recorded in history for clipboard input
const Source = "clipboard"

// Reader reads input from the system clipboard
type Reader struct {
	supported bool
	read      func() (string, error)
}

// NewReader creates a reader backed by the system clipboard
func NewReader() *Reader {
	return &Reader{
		supported: !clipboard.Unsupported,
		read:      clipboard.ReadAll,
	}
}

// Read returns the clipboard text with any byte order mark removed
func (r *Reader) Read() (string, error) {
	if !r.supported {
		return "", application.NewParsingError(Source, application.ErrUnreadable, "no clipboard utility available")
	}

	text, err := r.read()
	if err != nil {
		return "", application.NewParsingError(Source, application.ErrUnreadable, fmt.Sprintf("reading clipboard: %v", err))
	}
	text = strings.TrimPrefix(text, "\ufeff")
	if strings.TrimSpace(text) == "" {
		return "", application.NewParsingError(Source, application.ErrEmptyInput, "clipboard is empty")
	}
	return text, nil
}
