package tui

import (
	"github.com/MikeBiancalana/datefield/internal/logger"
	"github.com/MikeBiancalana/datefield/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowSize records the terminal size and resizes the field
func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.terminalTooSmall = msg.Width < MinTerminalWidth || msg.Height < MinTerminalHeight

	if !m.terminalTooSmall {
		m.field.SetWidth(fieldWidth(msg.Width))
	}

	return m, nil
}

// handleChanged clears a stale status once the field holds a date again
func (m *Model) handleChanged(msg components.DateChangedMsg) (tea.Model, tea.Cmd) {
	logger.Debug("date field changed", "valid", msg.Valid, "text", msg.Text, "source", msg.Source)
	if msg.Valid {
		m.status = ""
	}
	return m, nil
}

// handleSubmitted ends the program unless a required date is missing
func (m *Model) handleSubmitted(msg components.DateSubmittedMsg) (tea.Model, tea.Cmd) {
	if !msg.Valid {
		if m.required {
			m.status = m.loc.Msg("field.required")
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	}

	value := msg.Value
	m.result = &value
	m.done = true
	logger.Info("date submitted", "date", value.ISO())
	return m, tea.Quit
}
