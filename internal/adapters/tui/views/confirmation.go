package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"filegen/internal/adapters/tui/styles"
)

// maxListedConflicts caps how many existing files the prompt names
const maxListedConflicts = 10

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "overwrite"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "N", "esc", "q", "ctrl+c"),
		key.WithHelp("n/esc", "cancel"),
	),
}

type confirmedMsg struct{}
type cancelledMsg struct{}

// ConfirmationModel asks whether existing files may be overwritten
type ConfirmationModel struct {
	ViewState
	Conflicts []string
	Keys      ConfirmKeyMap

	confirmed bool
	done      bool
}

// NewConfirmationModel creates a confirmation model for conflicts
func NewConfirmationModel(conflicts []string) *ConfirmationModel {
	return &ConfirmationModel{
		Conflicts: conflicts,
		Keys:      DefaultConfirmKeys,
	}
}

// Confirmed reports whether the user accepted the overwrite
func (m *ConfirmationModel) Confirmed() bool {
	return m.confirmed
}

// Init implements tea.Model
func (m *ConfirmationModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *ConfirmationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if _, cmd := m.HandleKeyMsg(msg,
			func() tea.Msg { return confirmedMsg{} },
			func() tea.Msg { return cancelledMsg{} },
		); cmd != nil {
			return m, cmd
		}
	case confirmedMsg:
		m.confirmed, m.done = true, true
		return m, tea.Quit
	case cancelledMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// HandleKeyMsg processes key messages for confirmation views.
// Returns (handled, cmd) where handled is true if the key was processed.
func (m *ConfirmationModel) HandleKeyMsg(msg tea.KeyMsg, onConfirm, onCancel func() tea.Msg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		return true, func() tea.Msg { return onCancel() }
	case key.Matches(msg, m.Keys.Confirm):
		return true, func() tea.Msg { return onConfirm() }
	}
	return false, nil
}

// View implements tea.Model
func (m *ConfirmationModel) View() string {
	if m.done {
		return ""
	}

	v := NewViewBuilder().
		Title("Existing files").
		Raw(RenderConflictList(m.Conflicts)).
		BlankLine()
	return v.Line(RenderConfirmPrompt(fmt.Sprintf("Overwrite %d existing files?", len(m.Conflicts)))).String()
}

// RenderConflictList names up to maxListedConflicts files
func RenderConflictList(conflicts []string) string {
	var b strings.Builder
	for i, path := range conflicts {
		if i == maxListedConflicts {
			b.WriteString(RenderMuted(fmt.Sprintf("  ... and %d more", len(conflicts)-maxListedConflicts)))
			b.WriteString("\n")
			break
		}
		b.WriteString("  ")
		b.WriteString(styles.NodeConflict.Render(path))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}
