package components

import (
	"strings"

	"github.com/MikeBiancalana/datefield/internal/datefield"
	"github.com/MikeBiancalana/datefield/internal/locale"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	fieldLabelFocusedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true)

	fieldPreviewStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("40")).
				Italic(true)

	fieldRangeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	fieldHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// ChangeSource says which interaction produced a DateChangedMsg.
type ChangeSource int

const (
	SourceTyped ChangeSource = iota
	SourcePicker
	SourceClear
)

func (s ChangeSource) String() string {
	switch s {
	case SourceTyped:
		return "typed"
	case SourcePicker:
		return "picker"
	case SourceClear:
		return "clear"
	default:
		return "unknown"
	}
}

// DateChangedMsg is sent after every synchronisation of the field.
type DateChangedMsg struct {
	Value  datefield.Date
	Valid  bool
	Text   string
	Source ChangeSource
}

// DateSubmittedMsg is sent when the user commits with ENTER.
type DateSubmittedMsg struct {
	Value datefield.Date
	Valid bool
}

// textInputSurface lets datefield.Field write into a bubbles text input.
type textInputSurface struct {
	input *textinput.Model
}

func (s textInputSurface) SetValue(v string) {
	s.input.SetValue(v)
	s.input.CursorEnd()
}

func (s textInputSurface) Value() string { return s.input.Value() }

// DateTextField is a text input with a pop-up calendar that keeps a
// DD.MM.YYYY text and a date value in sync.
type DateTextField struct {
	label    string
	input    textinput.Model
	calendar *Calendar
	field    *datefield.Field
	loc      *locale.Locale
	focused  bool
	preview  string
	width    int
}

// NewDateTextField creates a date field. Options configure range and
// initial value; see datefield.New.
func NewDateTextField(label string, loc *locale.Locale, opts ...datefield.Option) (*DateTextField, error) {
	ti := textinput.New()
	ti.Placeholder = loc.Msg("field.placeholder")
	ti.CharLimit = 10
	ti.Width = 12

	f := &DateTextField{
		label:    label,
		input:    ti,
		calendar: NewCalendar(loc),
		loc:      loc,
		width:    40,
	}

	field, err := datefield.New(textInputSurface{input: &f.input}, f.calendar, opts...)
	if err != nil {
		return nil, err
	}
	f.field = field

	return f, nil
}

// Field exposes the underlying model.
func (f *DateTextField) Field() *datefield.Field {
	return f.field
}

// Value returns the committed date and whether one is set.
func (f *DateTextField) Value() (datefield.Date, bool) {
	return f.field.Value()
}

// Text returns the committed display text.
func (f *DateTextField) Text() string {
	return f.field.Text()
}

// InputValue returns what is currently typed, which may not be committed yet.
func (f *DateTextField) InputValue() string {
	return f.input.Value()
}

func (f *DateTextField) IsFocused() bool {
	return f.focused
}

func (f *DateTextField) CalendarOpen() bool {
	return f.calendar.IsOpen()
}

// SetWidth sets the width of the field
func (f *DateTextField) SetWidth(width int) {
	f.width = width
}

// Focus focuses the text input
func (f *DateTextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

// Blur commits the typed text, which is the field's "done editing" signal.
func (f *DateTextField) Blur() tea.Cmd {
	f.focused = false
	f.input.Blur()
	f.calendar.Close()
	f.field.Commit()
	f.preview = ""
	return f.changed(SourceTyped)
}

// Update handles Bubble Tea messages
func (f *DateTextField) Update(msg tea.Msg) (*DateTextField, tea.Cmd) {
	switch msg := msg.(type) {
	case DateChosenMsg:
		f.field.SelectFromPicker(msg.Date)
		f.preview = ""
		return f, f.changed(SourcePicker)

	case CalendarClosedMsg:
		return f, nil

	case tea.KeyMsg:
		if !f.focused {
			return f, nil
		}

		switch msg.String() {
		case "ctrl+o", "alt+down":
			f.field.TogglePicker()
			return f, nil
		}

		if f.calendar.IsOpen() {
			var cmd tea.Cmd
			f.calendar, cmd = f.calendar.Update(msg)
			return f, cmd
		}

		switch msg.String() {
		case "enter":
			f.field.Commit()
			f.preview = ""
			value, ok := f.field.Value()
			return f, tea.Batch(f.changed(SourceTyped), func() tea.Msg {
				return DateSubmittedMsg{Value: value, Valid: ok}
			})
		case "tab":
			f.field.Commit()
			f.preview = ""
			return f, f.changed(SourceTyped)
		case "ctrl+x":
			f.field.Clear()
			f.preview = ""
			return f, f.changed(SourceClear)
		}
	}

	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	f.updatePreview()

	return f, cmd
}

// updatePreview spells out the typed date while it parses and is in range.
func (f *DateTextField) updatePreview() {
	f.preview = ""

	d, err := datefield.Validate(f.input.Value(), f.field.Range())
	if err != nil {
		return
	}
	f.preview = f.loc.LongDate(d)
}

func (f *DateTextField) changed(source ChangeSource) tea.Cmd {
	value, ok := f.field.Value()
	text := f.field.Text()
	return func() tea.Msg {
		return DateChangedMsg{Value: value, Valid: ok, Text: text, Source: source}
	}
}

// View renders the field
func (f *DateTextField) View() string {
	var content strings.Builder

	labelStyle := fieldLabelStyle
	if f.focused {
		labelStyle = fieldLabelFocusedStyle
	}
	content.WriteString(labelStyle.Render(f.label))
	if r := f.field.Range(); r.IsSet() {
		content.WriteString(" ")
		content.WriteString(fieldRangeStyle.Render("(" + r.String() + ")"))
	}
	content.WriteString("\n")

	content.WriteString(f.input.View())
	content.WriteString("\n")

	if f.preview != "" {
		content.WriteString(fieldPreviewStyle.Render("→ " + f.preview))
		content.WriteString("\n")
	}

	if f.calendar.IsOpen() {
		content.WriteString(f.calendar.View())
		content.WriteString("\n")
	}

	if f.focused {
		content.WriteString(fieldHelpStyle.Width(f.width).Render(f.loc.Msg("field.help")))
	}

	return content.String()
}
