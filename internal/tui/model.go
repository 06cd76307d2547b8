package tui

import (
	"strings"

	"github.com/MikeBiancalana/datefield/internal/datefield"
	"github.com/MikeBiancalana/datefield/internal/locale"
	"github.com/MikeBiancalana/datefield/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Italic(true)
)

// Model hosts a single date field until the user submits or cancels.
type Model struct {
	title    string
	field    *components.DateTextField
	loc      *locale.Locale
	required bool

	width            int
	height           int
	terminalTooSmall bool

	status    string
	result    *datefield.Date
	done      bool
	cancelled bool
}

// NewModel creates the picker program model around field.
func NewModel(title string, field *components.DateTextField, loc *locale.Locale, required bool) *Model {
	return &Model{
		title:    title,
		field:    field,
		loc:      loc,
		required: required,
	}
}

// Init focuses the field
func (m *Model) Init() tea.Cmd {
	return m.field.Focus()
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case components.DateSubmittedMsg:
		return m.handleSubmitted(msg)

	case components.DateChangedMsg:
		return m.handleChanged(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	default:
		var cmd tea.Cmd
		m.field, cmd = m.field.Update(msg)
		return m, cmd
	}
}

// View renders the TUI
func (m *Model) View() string {
	if m.done {
		return ""
	}

	if m.terminalTooSmall {
		return m.terminalTooSmallView()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.field.View())
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("✗ " + m.status))
	}

	return centerView(m.width, m.height, b.String())
}

// Result returns the submitted date. ok is false when the user cancelled or
// submitted an empty field.
func (m *Model) Result() (datefield.Date, bool) {
	if m.result == nil {
		return datefield.Date{}, false
	}
	return *m.result, true
}

// Cancelled reports whether the user left without submitting.
func (m *Model) Cancelled() bool {
	return m.cancelled
}
