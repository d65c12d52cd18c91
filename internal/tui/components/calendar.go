package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/MikeBiancalana/datespan/internal/dates"
	"github.com/MikeBiancalana/datespan/internal/geom"
	"github.com/charmbracelet/lipgloss"
)

// Calendar grid geometry, in cells
const (
	DayCellWidth        = 4
	MonthWidth          = 7 * DayCellWidth
	MonthGap            = 2
	CalendarHeaderLines = 2
	WeekRows            = 6
)

var (
	calendarTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	calendarNavStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	calendarWeekdayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	dayStyle             = lipgloss.NewStyle()
	dayBlockedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	dayHighlightedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	dayInRangeStyle      = lipgloss.NewStyle().Background(lipgloss.Color("24"))
	daySelectedStyle     = lipgloss.NewStyle().Background(lipgloss.Color("39")).Foreground(lipgloss.Color("0")).Bold(true)
	dayTodayStyle        = lipgloss.NewStyle().Bold(true)
)

// DayState answers the per-day questions the grid renders
type DayState interface {
	IsDayBlocked(day dates.Value) bool
	IsOutsideRange(day dates.Value) bool
	IsDayHighlighted(day dates.Value) bool
}

// Calendar is a month grid with a keyboard cursor. Days are produced at noon.
type Calendar struct {
	first  time.Time
	months int
	cursor dates.Value
	today  dates.Value
}

// NewCalendar shows months side by side starting at around's month
func NewCalendar(months int, around dates.Value) *Calendar {
	if months < 1 {
		months = 1
	}
	if around.IsZero() {
		around = dates.TodayAtNoon()
	}
	c := &Calendar{months: months, today: dates.TodayAtNoon()}
	c.first = monthOf(around.Time())
	c.cursor = around
	return c
}

func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 12, 0, 0, 0, t.Location())
}

// Months returns the number of months shown
func (c *Calendar) Months() int { return c.months }

// FirstMonth returns the first day of the leftmost month
func (c *Calendar) FirstMonth() time.Time { return c.first }

// Cursor returns the keyboard cursor day
func (c *Calendar) Cursor() dates.Value { return c.cursor }

// SetCursor moves the cursor to day, scrolling the months to keep it visible
func (c *Calendar) SetCursor(day dates.Value) {
	if day.IsZero() {
		return
	}
	c.cursor = dates.Noon(day.Time().Year(), day.Time().Month(), day.Time().Day(), day.Time().Location())
	m := monthOf(c.cursor.Time())
	last := c.first.AddDate(0, c.months-1, 0)
	switch {
	case m.Before(c.first):
		c.first = m
	case m.After(last):
		c.first = m.AddDate(0, -(c.months - 1), 0)
	}
}

// MoveCursor moves the cursor by days
func (c *Calendar) MoveCursor(days int) {
	c.SetCursor(c.cursor.AddDays(days))
}

// MoveMonths shifts the visible months and the cursor by n months
func (c *Calendar) MoveMonths(n int) {
	c.first = c.first.AddDate(0, n, 0)
	t := c.cursor.Time()
	// Clamp to the last day of the target month
	target := time.Date(t.Year(), t.Month()+time.Month(n), 1, 12, 0, 0, 0, t.Location())
	day := min(t.Day(), daysIn(target))
	c.cursor = dates.Noon(target.Year(), target.Month(), day, t.Location())
}

// WeekStart moves the cursor to the start of its week
func (c *Calendar) WeekStart() {
	c.MoveCursor(-int(c.cursor.Time().Weekday()))
}

// WeekEnd moves the cursor to the end of its week
func (c *Calendar) WeekEnd() {
	c.MoveCursor(int(time.Saturday - c.cursor.Time().Weekday()))
}

func daysIn(month time.Time) int {
	return time.Date(month.Year(), month.Month()+1, 0, 12, 0, 0, 0, month.Location()).Day()
}

// Size returns the rendered size of the grid
func (c *Calendar) Size() geom.Size {
	return geom.Size{
		Width:  c.months*MonthWidth + (c.months-1)*MonthGap,
		Height: CalendarHeaderLines + WeekRows,
	}
}

// gridStart returns the Sunday on or before the first of month i
func (c *Calendar) gridStart(i int) time.Time {
	m := c.first.AddDate(0, i, 0)
	return m.AddDate(0, 0, -int(m.Weekday()))
}

// DayAt hit-tests a point relative to the grid origin
func (c *Calendar) DayAt(p geom.Point) (dates.Value, bool) {
	row := p.Y - CalendarHeaderLines
	if row < 0 || row >= WeekRows || p.X < 0 {
		return dates.Value{}, false
	}
	block := p.X / (MonthWidth + MonthGap)
	within := p.X % (MonthWidth + MonthGap)
	if block >= c.months || within >= MonthWidth {
		return dates.Value{}, false
	}

	t := c.gridStart(block).AddDate(0, 0, row*7+within/DayCellWidth)
	if t.Month() != c.first.AddDate(0, block, 0).Month() {
		return dates.Value{}, false
	}
	return dates.Noon(t.Year(), t.Month(), t.Day(), t.Location()), true
}

// NavAt reports -1 or 1 when p hits the previous or next month arrow
func (c *Calendar) NavAt(p geom.Point) int {
	if p.Y != 0 {
		return 0
	}
	switch p.X {
	case 0:
		return -1
	case c.Size().Width - 1:
		return 1
	}
	return 0
}

// View renders the grid. The cursor is only drawn when focused.
func (c *Calendar) View(st DayState, selected dates.Range, focused bool) string {
	lines := make([]string, CalendarHeaderLines+WeekRows)
	gap := strings.Repeat(" ", MonthGap)

	for i := 0; i < c.months; i++ {
		if i > 0 {
			for l := range lines {
				lines[l] += gap
			}
		}
		lines[0] += c.titleBlock(i)
		lines[1] += c.weekdayBlock()

		start := c.gridStart(i)
		month := c.first.AddDate(0, i, 0).Month()
		for row := 0; row < WeekRows; row++ {
			var b strings.Builder
			for col := 0; col < 7; col++ {
				t := start.AddDate(0, 0, row*7+col)
				if t.Month() != month {
					b.WriteString(strings.Repeat(" ", DayCellWidth))
					continue
				}
				day := dates.Noon(t.Year(), t.Month(), t.Day(), t.Location())
				b.WriteString(c.cell(day, st, selected, focused))
			}
			lines[CalendarHeaderLines+row] += b.String()
		}
	}
	return strings.Join(lines, "\n")
}

func (c *Calendar) titleBlock(i int) string {
	title := c.first.AddDate(0, i, 0).Format("January 2006")
	pad := (MonthWidth - len(title)) / 2
	left := strings.Repeat(" ", pad)
	right := strings.Repeat(" ", MonthWidth-pad-len(title))
	if i == 0 {
		left = calendarNavStyle.Render("‹") + left[1:]
	}
	if i == c.months-1 {
		right = right[1:] + calendarNavStyle.Render("›")
	}
	return left + calendarTitleStyle.Render(title) + right
}

func (c *Calendar) weekdayBlock() string {
	var b strings.Builder
	for _, name := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		b.WriteString(fmt.Sprintf(" %2s ", name))
	}
	return calendarWeekdayStyle.Render(b.String())
}

func (c *Calendar) cell(day dates.Value, st DayState, selected dates.Range, focused bool) string {
	text := fmt.Sprintf(" %2d ", day.Time().Day())

	style := dayStyle
	switch {
	case day.SameDay(selected.Start) || day.SameDay(selected.End):
		style = daySelectedStyle
	case selected.Contains(day):
		style = dayInRangeStyle
	case st != nil && (st.IsDayBlocked(day) || st.IsOutsideRange(day)):
		style = dayBlockedStyle
	case st != nil && st.IsDayHighlighted(day):
		style = dayHighlightedStyle
	}
	if day.SameDay(c.today) {
		style = style.Inherit(dayTodayStyle)
	}
	if focused && day.SameDay(c.cursor) {
		style = style.Reverse(true)
	}
	return style.Render(text)
}
