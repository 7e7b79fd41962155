package tui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"filegen/internal/adapters/tui/views"
	"filegen/internal/application"
	"filegen/internal/ports"
)

// App runs the interactive screens of the CLI
type App struct {
	input  io.Reader
	output io.Writer
}

// Ensure App implements Confirmer
var _ ports.Confirmer = (*App)(nil)

// NewApp creates a TUI application reading keys from stdin and drawing on stderr,
// leaving stdout free for results
func NewApp() *App {
	return &App{input: os.Stdin, output: os.Stderr}
}

// RunPaste shows a text area and returns the pasted text.
// It returns application.ErrCancelled when the user leaves without submitting.
func (a *App) RunPaste(title string) (string, error) {
	model := views.NewPasteModel(title)
	if _, err := a.run(model, tea.WithAltScreen()); err != nil {
		return "", err
	}
	if !model.Submitted() {
		return "", application.ErrCancelled
	}
	return model.Value(), nil
}

// ConfirmOverwrite lists conflicts and asks whether they may be overwritten
func (a *App) ConfirmOverwrite(conflicts []string) (bool, error) {
	model := views.NewConfirmationModel(conflicts)
	if _, err := a.run(model); err != nil {
		return false, err
	}
	return model.Confirmed(), nil
}

func (a *App) run(model tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	opts = append(opts, tea.WithInput(a.input), tea.WithOutput(a.output))
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run interactive view: %w", err)
	}
	return final, nil
}
