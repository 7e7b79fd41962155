package filesystem

import (
	"fmt"
	"io"
	"os"
	"strings"

	"filegen/internal/application"
)

// StdinSource is the path that selects standard input
const StdinSource = "-"

// ReadSource reads an input file fully, or standard input for "-".
// Failures are reported as *application.ParsingError with ErrUnreadable.
func ReadSource(path string) (string, error) {
	if path == StdinSource {
		return ReadAll(os.Stdin, "stdin")
	}

	f, err := os.Open(application.ExpandHome(path))
	if err != nil {
		return "", application.NewParsingError("", application.ErrUnreadable, err.Error())
	}
	defer f.Close()

	return ReadAll(f, path)
}

// ReadAll reads r to the end, reporting failures as unreadable source
func ReadAll(r io.Reader, name string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", application.NewParsingError("", application.ErrUnreadable, fmt.Sprintf("%s: %v", name, err))
	}
	return strings.TrimPrefix(string(data), "\ufeff"), nil
}
