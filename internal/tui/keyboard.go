package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/MikeBiancalana/datespan/internal/dates"
	"github.com/MikeBiancalana/datespan/internal/focus"
	"github.com/MikeBiancalana/datespan/internal/geom"
	"github.com/MikeBiancalana/datespan/internal/logger"
	"github.com/MikeBiancalana/datespan/internal/picker"
	"github.com/MikeBiancalana/datespan/internal/timeedit"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Keyboard Handlers
//
// These methods handle keyboard input organized by focus state. The main
// handleKeyPress dispatcher routes on the picker's focus state and, inside
// the popover, on the pane that owns the keys.

// handleKeyPress is the main keyboard input dispatcher
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.finish()
	}

	switch m.engine.Focus().State().Kind() {
	case focus.InputFocused:
		return m.handleInputKeys(msg)
	case focus.CalendarFocused:
		if m.pane == paneCalendar {
			return m.handleCalendarKeys(msg)
		}
		return m.handleTimeKeys(msg)
	case focus.ShowingShortcuts:
		return m.handleShortcutsKeys(msg)
	default:
		return m.handleClosedKeys(msg)
	}
}

// handleClosedKeys handles keys while the popover is closed
func (m *Model) handleClosedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.finish()

	case m.doneFocused && key.Matches(msg, m.keys.Done):
		return m.finish()

	case key.Matches(msg, m.keys.Open):
		m.engine.FocusInput(focus.Start)

	case key.Matches(msg, m.keys.OpenEnd) && m.engine.Mode() == picker.ModeRange:
		m.engine.FocusInput(focus.End)

	case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Prev):
		if m.doneFocused {
			m.doneFocused = false
			m.engine.FocusInput(focus.Start)
		} else {
			m.doneFocused = true
		}

	default:
		return m, m.scrollPage(msg)
	}
	return m, nil
}

// handleInputKeys handles keys while a date input owns focus
func (m *Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	side, _ := m.engine.Focus().State().Side()

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.engine.Cancel()

	case key.Matches(msg, m.keys.Commit):
		m.commitInput(side)

	case key.Matches(msg, m.keys.ToCalendar):
		m.commitInput(side)
		m.engine.Focus().FocusCalendar()

	case key.Matches(msg, m.keys.Next):
		m.commitInput(side)
		if m.engine.Mode() == picker.ModeRange && side == focus.Start {
			m.engine.FocusInput(focus.End)
			return m, nil
		}
		m.hub.FocusLost(nil)
		m.doneFocused = true

	case key.Matches(msg, m.keys.Prev):
		m.commitInput(side)
		if side == focus.End {
			m.engine.FocusInput(focus.Start)
			return m, nil
		}
		m.leaveTo(0, m.screen.TitleY)

	default:
		return m, m.inputs.Update(msg)
	}
	return m, nil
}

// leaveTo reports focus moving out of the picker to the element at x, y
func (m *Model) leaveTo(x, y int) {
	m.hub.FocusLost(&geom.Point{X: x, Y: y})
}

// commitInput parses the typed text of side into the working range.
// Unchanged text is left alone and an empty input clears the side.
func (m *Model) commitInput(side focus.Side) {
	raw := strings.TrimSpace(m.inputs.Value(side))
	r := m.engine.Working()
	current := r.Start
	if side == focus.End {
		current = r.End
	}
	if raw == current.Format(m.opts.DisplayLayout) {
		return
	}

	if raw == "" {
		if side == focus.Start {
			m.engine.OnDatesChange(dates.Value{}, r.End)
		} else {
			m.engine.OnDatesChange(r.Start, dates.Value{})
		}
		return
	}

	day, err := dates.Parse(raw, m.opts.DisplayLayout)
	if err != nil {
		logger.Debug("tui: rejected typed date", "input", raw, "error", err)
		m.status.SetError(fmt.Errorf("%q: %w", raw, err))
		m.inputs.SetRange(r)
		return
	}

	m.engine.Focus().SelectSide(side)
	m.calendar.SetCursor(day)
	m.pickDay(day)
}

// pickDay selects day, reporting days the picker refuses
func (m *Model) pickDay(day dates.Value) {
	if !m.engine.PickDay(day) {
		m.status.SetError(errors.New(dates.Describe(day) + " is not available"))
	}
}

// handleCalendarKeys handles keys while the calendar grid owns focus
func (m *Model) handleCalendarKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.engine.Cancel()
	case key.Matches(msg, m.keys.Shortcuts):
		m.engine.Focus().RequestShortcuts()
	case key.Matches(msg, m.keys.Apply):
		m.engine.Apply()
	case key.Matches(msg, m.keys.Prev):
		m.engine.Focus().BlurCalendar()
	case key.Matches(msg, m.keys.Next):
		if !m.engine.Options().HideTime {
			m.pane = paneStartTime
			m.field = timeedit.Hour
		}
	case key.Matches(msg, m.keys.Left):
		m.calendar.MoveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.calendar.MoveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.calendar.MoveCursor(-7)
	case key.Matches(msg, m.keys.Down):
		m.calendar.MoveCursor(7)
	case key.Matches(msg, m.keys.PrevMonth):
		m.calendar.MoveMonths(-1)
	case key.Matches(msg, m.keys.NextMonth):
		m.calendar.MoveMonths(1)
	case key.Matches(msg, m.keys.WeekStart):
		m.calendar.WeekStart()
	case key.Matches(msg, m.keys.WeekEnd):
		m.calendar.WeekEnd()
	case key.Matches(msg, m.keys.Pick):
		m.pickDay(m.calendar.Cursor())
	}
	return m, nil
}

// handleShortcutsKeys handles keys while the shortcuts panel is shown
func (m *Model) handleShortcutsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Shortcuts) || key.Matches(msg, m.keys.Cancel) {
		m.engine.Focus().FocusCalendar()
	}
	return m, nil
}

// handleTimeKeys handles keys while a time editor owns focus
func (m *Model) handleTimeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	side := focus.Start
	if m.pane == paneEndTime {
		side = focus.End
	}
	ed := m.engine.TimeEditor(side)
	if ed == nil {
		m.pane = paneCalendar
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.commitField(ed)
		m.engine.Cancel()

	case key.Matches(msg, m.keys.Apply):
		m.commitField(ed)
		m.engine.Apply()

	case key.Matches(msg, m.keys.Next):
		m.commitField(ed)
		if m.pane == paneStartTime && m.engine.Mode() == picker.ModeRange {
			m.pane = paneEndTime
		} else {
			m.pane = paneCalendar
		}
		m.field = timeedit.Hour

	case key.Matches(msg, m.keys.Prev):
		m.commitField(ed)
		if m.pane == paneEndTime {
			m.pane = paneStartTime
		} else {
			m.pane = paneCalendar
		}
		m.field = timeedit.Hour

	case key.Matches(msg, m.keys.Commit):
		m.commitField(ed)

	case key.Matches(msg, m.keys.Increment):
		m.commitField(ed)
		m.stepField(ed, 1)

	case key.Matches(msg, m.keys.Decrement):
		m.commitField(ed)
		m.stepField(ed, -1)

	case key.Matches(msg, m.keys.PrevField):
		m.moveField(ed, -1)

	case key.Matches(msg, m.keys.NextField):
		m.moveField(ed, 1)

	case key.Matches(msg, m.keys.Meridiem):
		if !ed.Is24Hour() {
			m.commitField(ed)
			ed.ToggleMeridiem()
		}

	case key.Matches(msg, m.keys.Clear):
		m.typed = ""
		ed.SetField(m.field, "")

	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && unicode.IsDigit(msg.Runes[0]):
		m.typeDigit(ed, string(msg.Runes))
	}
	return m, nil
}

// editableFields lists the fields of ed in visual order
func editableFields(ed *timeedit.Editor) []timeedit.FieldType {
	fields := []timeedit.FieldType{timeedit.Hour}
	if !ed.MinutesDisabled() {
		fields = append(fields, timeedit.Minute)
	}
	if !ed.Is24Hour() {
		fields = append(fields, timeedit.Meridiem)
	}
	return fields
}

// selectField moves the field cursor, committing the field being left
func (m *Model) selectField(ed *timeedit.Editor, ft timeedit.FieldType) {
	if ft != m.field {
		m.commitField(ed)
	}
	m.field = ft
}

func (m *Model) moveField(ed *timeedit.Editor, delta int) {
	fields := editableFields(ed)
	idx := 0
	for i, ft := range fields {
		if ft == m.field {
			idx = i
		}
	}
	idx = min(max(idx+delta, 0), len(fields)-1)
	m.selectField(ed, fields[idx])
}

func (m *Model) stepField(ed *timeedit.Editor, delta int) {
	switch {
	case m.field == timeedit.Meridiem:
		ed.ToggleMeridiem()
	case delta > 0:
		ed.Increment(m.field)
	default:
		ed.Decrement(m.field)
	}
}

// typeDigit appends a digit to the field being typed. A value that falls
// out of bounds restarts the field from the new digit.
func (m *Model) typeDigit(ed *timeedit.Editor, digit string) {
	if m.field == timeedit.Meridiem {
		return
	}
	next := m.typed + digit
	if len(next) > 2 || !ed.SetField(m.field, next) {
		next = digit
		if !ed.SetField(m.field, next) {
			return
		}
	}
	m.typed = next
}

// commitField pushes the field being edited through the editor
func (m *Model) commitField(ed *timeedit.Editor) {
	if m.field == timeedit.Meridiem {
		m.typed = ""
		return
	}
	ed.CommitField(m.field)
	m.typed = ""
}

// finish tears the picker down and quits
func (m *Model) finish() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.recorder.LogStats(slog.LevelDebug)
	if m.watcher != nil {
		m.watcher.Stop()
	}
	m.engine.Unmount()
	return m, tea.Quit
}
