package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	// MinTerminalWidth fits the calendar box plus the help line
	MinTerminalWidth = 36
	// MinTerminalHeight fits label, input, preview and a six-week calendar
	MinTerminalHeight = 16
)

// fieldWidth leaves a margin around the field, capped so help text wraps
// at a readable width on wide terminals.
func fieldWidth(termWidth int) int {
	w := termWidth - 4
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// centerView places a view within given dimensions (left-aligned, top-aligned)
func centerView(width, height int, view string) string {
	if width == 0 || height == 0 {
		return view
	}
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, view)
}

// terminalTooSmallView renders the message when terminal is too small
func (m *Model) terminalTooSmallView() string {
	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1)

	return style.Render(m.loc.MsgWith("terminal.too_small", map[string]any{
		"Width":     m.width,
		"Height":    m.height,
		"MinWidth":  MinTerminalWidth,
		"MinHeight": MinTerminalHeight,
	}))
}
