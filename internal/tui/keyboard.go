package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyPress is the main keyboard input dispatcher. Keys the program
// does not own are forwarded to the date field.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.cancel()

	case "esc":
		// ESC closes the calendar first; only a second ESC leaves
		if !m.field.CalendarOpen() {
			return m.cancel()
		}
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m *Model) cancel() (tea.Model, tea.Cmd) {
	m.cancelled = true
	m.done = true
	return m, tea.Quit
}
