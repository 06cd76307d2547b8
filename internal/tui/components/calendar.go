package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/MikeBiancalana/datefield/internal/datefield"
	"github.com/MikeBiancalana/datefield/internal/locale"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	calendarBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("39")).
				Padding(0, 1)

	calendarTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	calendarWeekdayStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	calendarDayStyle = lipgloss.NewStyle()

	calendarCursorStyle = lipgloss.NewStyle().
				Reverse(true).
				Bold(true)

	calendarDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("238"))

	calendarHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))
)

// DateChosenMsg is sent when a day is picked in the calendar.
type DateChosenMsg struct {
	Date datefield.Date
}

// CalendarClosedMsg is sent when the calendar is dismissed without a choice.
type CalendarClosedMsg struct{}

// Calendar is a month grid popover. It satisfies datefield.PickerSurface.
type Calendar struct {
	cursor datefield.Date
	bounds datefield.Range
	open   bool
	loc    *locale.Locale
}

var _ datefield.PickerSurface = (*Calendar)(nil)

// NewCalendar creates a closed calendar positioned on today.
func NewCalendar(loc *locale.Locale) *Calendar {
	return &Calendar{
		cursor: datefield.Today(),
		loc:    loc,
	}
}

// SetRange constrains navigation to r.
func (c *Calendar) SetRange(r datefield.Range) {
	c.bounds = r
	c.cursor = r.Clamp(c.cursor)
}

// SetDate moves the cursor to d, clamped into range.
func (c *Calendar) SetDate(d datefield.Date) {
	c.cursor = c.bounds.Clamp(d)
}

func (c *Calendar) Open()        { c.open = true }
func (c *Calendar) Close()       { c.open = false }
func (c *Calendar) IsOpen() bool { return c.open }

// Cursor returns the highlighted day.
func (c *Calendar) Cursor() datefield.Date {
	return c.cursor
}

// Update handles Bubble Tea messages
func (c *Calendar) Update(msg tea.Msg) (*Calendar, tea.Cmd) {
	if !c.open {
		return c, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch keyMsg.String() {
	case "left", "h":
		c.move(c.cursor.AddDays(-1))
	case "right", "l":
		c.move(c.cursor.AddDays(1))
	case "up", "k":
		c.move(c.cursor.AddDays(-7))
	case "down", "j":
		c.move(c.cursor.AddDays(7))
	case "pgup":
		c.move(c.cursor.AddMonths(-1))
	case "pgdown":
		c.move(c.cursor.AddMonths(1))
	case "home":
		c.move(datefield.NewDate(c.cursor.Year, c.cursor.Month, 1))
	case "end":
		c.move(datefield.NewDate(c.cursor.Year, c.cursor.Month, datefield.DaysIn(c.cursor.Year, c.cursor.Month)))
	case "enter", " ":
		if !c.bounds.Contains(c.cursor) {
			return c, nil
		}
		chosen := c.cursor
		return c, func() tea.Msg {
			return DateChosenMsg{Date: chosen}
		}
	case "esc":
		c.Close()
		return c, func() tea.Msg {
			return CalendarClosedMsg{}
		}
	}

	return c, nil
}

// move never lets the cursor leave the range.
func (c *Calendar) move(d datefield.Date) {
	c.cursor = c.bounds.Clamp(d)
}

// View renders the calendar
func (c *Calendar) View() string {
	if !c.open {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("%s %d", c.loc.MonthName(c.cursor.Month), c.cursor.Year)
	b.WriteString(calendarTitleStyle.Render(centerText(title, 20)))
	b.WriteString("\n")

	first := c.loc.FirstWeekday()
	headers := make([]string, 7)
	for i := range headers {
		wd := time.Weekday((int(first) + i) % 7)
		headers[i] = calendarWeekdayStyle.Render(fmt.Sprintf("%-2s", c.loc.WeekdayShort(wd)))
	}
	b.WriteString(strings.Join(headers, " "))
	b.WriteString("\n")

	for _, week := range c.weeks() {
		cells := make([]string, len(week))
		for i, day := range week {
			cells[i] = c.renderDay(day)
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}

	b.WriteString(calendarHelpStyle.Render(c.loc.Msg("calendar.help")))

	return calendarBoxStyle.Render(b.String())
}

func (c *Calendar) renderDay(day int) string {
	if day == 0 {
		return "  "
	}
	label := fmt.Sprintf("%2d", day)
	d := datefield.NewDate(c.cursor.Year, c.cursor.Month, day)
	switch {
	case d.Equal(c.cursor):
		return calendarCursorStyle.Render(label)
	case !c.bounds.Contains(d):
		return calendarDisabledStyle.Render(label)
	default:
		return calendarDayStyle.Render(label)
	}
}

// weeks lays out the cursor's month as rows of seven day numbers, with
// zero for the padding cells before the 1st and after the last day.
func (c *Calendar) weeks() [][]int {
	year, month := c.cursor.Year, c.cursor.Month
	firstDay := datefield.NewDate(year, month, 1).Time().Weekday()
	offset := (int(firstDay) - int(c.loc.FirstWeekday()) + 7) % 7

	var rows [][]int
	row := make([]int, 7)
	col := offset
	for day := 1; day <= datefield.DaysIn(year, month); day++ {
		row[col] = day
		col++
		if col == 7 {
			rows = append(rows, row)
			row = make([]int, 7)
			col = 0
		}
	}
	if col > 0 {
		rows = append(rows, row)
	}
	return rows
}

func centerText(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s
}
