package views

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"filegen/internal/adapters/tui/styles"
)

// PasteKeyMap defines key bindings for the paste view
type PasteKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

// DefaultPasteKeys returns the default paste key bindings
var DefaultPasteKeys = PasteKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "parse"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
}

type pasteSubmittedMsg struct{}
type pasteCancelledMsg struct{}

// PasteModel collects a pasted chat response or tree drawing
type PasteModel struct {
	ViewState
	Title string
	Keys  PasteKeyMap

	input     textarea.Model
	submitted bool
	cancelled bool
}

// NewPasteModel creates a paste view with the given title
func NewPasteModel(title string) *PasteModel {
	ta := textarea.New()
	ta.Placeholder = "Paste the response here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Focus()

	return &PasteModel{
		Title: title,
		Keys:  DefaultPasteKeys,
		input: ta,
	}
}

// Value returns the text entered so far
func (m *PasteModel) Value() string {
	return m.input.Value()
}

// Submitted reports whether the user finished pasting
func (m *PasteModel) Submitted() bool {
	return m.submitted
}

// Cancelled reports whether the user left without submitting
func (m *PasteModel) Cancelled() bool {
	return m.cancelled
}

// SetSize updates the view dimensions and resizes the text area
func (m *PasteModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	if width > 8 {
		m.input.SetWidth(width - 8)
	}
	if height > 10 {
		m.input.SetHeight(height - 10)
	}
}

// Init implements tea.Model
func (m *PasteModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model
func (m *PasteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Submit):
			if m.input.Value() == "" {
				m.SetMessage("Nothing to parse yet", true)
				return m, nil
			}
			return m, func() tea.Msg { return pasteSubmittedMsg{} }
		case key.Matches(msg, m.Keys.Cancel):
			return m, func() tea.Msg { return pasteCancelledMsg{} }
		}
		m.ClearMessage()

	case pasteSubmittedMsg:
		m.submitted = true
		return m, tea.Quit

	case pasteCancelledMsg:
		m.cancelled = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m *PasteModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	return NewViewBuilder().
		Title(m.Title).
		Line(styles.InputFocused.Render(m.input.View())).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Help(m.Keys.Submit, m.Keys.Cancel).
		String()
}
