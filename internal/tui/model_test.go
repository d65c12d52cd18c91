package tui

import (
	"testing"

	"github.com/MikeBiancalana/datespan/internal/dates"
	"github.com/MikeBiancalana/datespan/internal/focus"
	"github.com/MikeBiancalana/datespan/internal/geom"
	"github.com/MikeBiancalana/datespan/internal/picker"
	"github.com/MikeBiancalana/datespan/internal/sync"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, opts picker.Options) *Model {
	t.Helper()
	m := NewModel(Options{Picker: opts})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"backspace": tea.KeyBackspace,
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		if kt, ok := namedKeys[k]; ok {
			m.Update(tea.KeyMsg{Type: kt})
			continue
		}
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	}
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func click(m *Model, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func today(offset int) dates.Value {
	return dates.TodayAtNoon().AddDays(offset)
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t, picker.Options{})

	assert.False(t, m.engine.IsOpen())
	assert.Equal(t, "Select dates", m.opts.Title)
	assert.Equal(t, dates.DefaultDisplayLayout, m.opts.DisplayLayout)

	_, applied := m.Result()
	assert.False(t, applied)
	assert.Contains(t, m.View(), "Select dates")
}

func TestNewModel_SingleTitle(t *testing.T) {
	m := newTestModel(t, picker.Options{Mode: picker.ModeSingle})
	assert.Equal(t, "Select a date", m.opts.Title)
}

func TestNewModel_AutoFocus(t *testing.T) {
	m := newTestModel(t, picker.Options{AutoFocus: true})

	require.True(t, m.engine.IsOpen())
	side, ok := m.inputs.Focused()
	assert.True(t, ok)
	assert.Equal(t, focus.Start, side)
}

func TestOpenAndCancel(t *testing.T) {
	m := newTestModel(t, picker.Options{})

	press(m, "enter")
	require.Equal(t, focus.TargetStartInput, m.engine.Focus().Target())
	assert.Contains(t, m.View(), applyLabel)

	press(m, "esc")
	assert.False(t, m.engine.IsOpen())
	assert.Contains(t, m.status.Message(), "Cancelled")
	assert.NotContains(t, m.View(), applyLabel)
}

func TestTypedDates(t *testing.T) {
	m := newTestModel(t, picker.Options{})

	press(m, "enter")
	typeText(m, "+3d")
	press(m, "enter")

	r := m.engine.Working()
	assert.True(t, r.Start.SameDay(today(3)))
	assert.Equal(t, focus.TargetEndInput, m.engine.Focus().Target())
	assert.Equal(t, today(3).Format(dates.DefaultDisplayLayout), m.inputs.Value(focus.Start))

	typeText(m, "+5d")
	press(m, "enter")

	assert.False(t, m.engine.IsOpen(), "a completed range applies and closes")
	got, applied := m.Result()
	assert.True(t, applied)
	assert.True(t, got.Start.SameDay(today(3)))
	assert.True(t, got.End.SameDay(today(5)))
	assert.Contains(t, m.status.Message(), "Applied")
}

func TestTypedDates_Invalid(t *testing.T) {
	m := newTestModel(t, picker.Options{})

	press(m, "enter")
	typeText(m, "zz")
	press(m, "enter")

	assert.Error(t, m.status.Err())
	assert.True(t, m.engine.Working().Empty())
	assert.Equal(t, focus.TargetStartInput, m.engine.Focus().Target())
}

func TestTypedDates_ClearSide(t *testing.T) {
	m := newTestModel(t, picker.Options{Start: today(2), End: today(4)})

	press(m, "enter")
	for i := 0; i < len(dates.DefaultDisplayLayout); i++ {
		press(m, "backspace")
	}
	press(m, "enter")

	r := m.engine.Working()
	assert.True(t, r.Start.IsZero())
	assert.True(t, r.End.SameDay(today(4)))
}

func TestTabOutOfInputs(t *testing.T) {
	m := newTestModel(t, picker.Options{})

	press(m, "enter", "tab")
	require.Equal(t, focus.TargetEndInput, m.engine.Focus().Target())

	press(m, "tab")
	assert.False(t, m.engine.IsOpen())
	assert.True(t, m.doneFocused)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
}

func TestShiftTabFromStartCloses(t *testing.T) {
	m := newTestModel(t, picker.Options{})

	press(m, "enter", "shift+tab")
	assert.False(t, m.engine.IsOpen())
}

func TestCalendarKeys(t *testing.T) {
	m := newTestModel(t, picker.Options{})

	press(m, "enter", "down")
	require.Equal(t, focus.TargetCalendar, m.engine.Focus().Target())
	assert.True(t, m.calendar.Cursor().SameDay(today(0)))

	press(m, "right", "right", "enter")
	assert.True(t, m.engine.Working().Start.SameDay(today(2)))
	assert.Equal(t, focus.End, m.engine.Focus().ActiveSide())

	press(m, "down", "enter")
	assert.False(t, m.engine.IsOpen())
	got, applied := m.Result()
	assert.True(t, applied)
	assert.True(t, got.End.SameDay(today(9)))
}

func TestCalendarKeys_BlockedDay(t *testing.T) {
	m := newTestModel(t, picker.Options{})

	press(m, "enter", "down", "left", "enter")

	assert.Error(t, m.status.Err())
	assert.True(t, m.engine.Working().Start.IsZero())
}

func TestCalendarKeys_ApplyAndShortcuts(t *testing.T) {
	m := newTestModel(t, picker.Options{Start: today(1), End: today(3), KeepOpenOnDateSelect: true})

	press(m, "enter", "down", "?")
	assert.Equal(t, focus.ShowingShortcuts, m.engine.Focus().State().Kind())
	press(m, "?")
	assert.Equal(t, focus.CalendarFocused, m.engine.Focus().State().Kind())

	press(m, "right", "enter")
	assert.True(t, m.engine.Working().Start.SameDay(today(2)))
	assert.True(t, m.engine.IsOpen())

	press(m, "a")
	assert.False(t, m.engine.IsOpen())
	got, applied := m.Result()
	assert.True(t, applied)
	assert.True(t, got.Start.SameDay(today(2)))
	assert.True(t, got.End.SameDay(today(3)))
}

func TestTimeKeys(t *testing.T) {
	m := newTestModel(t, picker.Options{Start: today(1), End: today(3), KeepOpenOnDateSelect: true})

	press(m, "enter", "down", "tab")
	require.Equal(t, paneStartTime, m.pane)

	press(m, "+")
	assert.Equal(t, 13, m.engine.Working().Start.Time().Hour())

	press(m, "tab")
	assert.Equal(t, paneEndTime, m.pane)
	press(m, "-")
	assert.Equal(t, 23, m.engine.Working().End.Time().Hour(), "12 pm steps down to 11 pm")

	press(m, "tab")
	assert.Equal(t, paneCalendar, m.pane)
}

func TestTimeKeys_TypedDigits(t *testing.T) {
	m := newTestModel(t, picker.Options{Start: today(1), End: today(3), Is24Hour: true, KeepOpenOnDateSelect: true})

	press(m, "enter", "down", "tab")
	typeText(m, "09")
	press(m, "right")
	typeText(m, "45")
	press(m, "enter")

	start := m.engine.Working().Start.Time()
	assert.Equal(t, 9, start.Hour())
	assert.Equal(t, 45, start.Minute())
}

func TestTimeKeys_Meridiem(t *testing.T) {
	m := newTestModel(t, picker.Options{Mode: picker.ModeSingle, Start: today(1), KeepOpenOnDateSelect: true})

	press(m, "enter", "down", "tab", "m")
	assert.Equal(t, 0, m.engine.Working().Start.Time().Hour())
}

func TestMouse_OutsideClickCloses(t *testing.T) {
	m := newTestModel(t, picker.Options{})

	press(m, "enter")
	require.True(t, m.engine.IsOpen())
	require.False(t, m.engine.Placement().Contains(geom.Point{X: 99, Y: 39}))

	click(m, 99, 39)
	assert.False(t, m.engine.IsOpen())
}

func TestMouse_ClickInputOpens(t *testing.T) {
	m := newTestModel(t, picker.Options{})
	r := m.inputsRect()

	click(m, r.X+1, r.Y+1)
	assert.Equal(t, focus.TargetStartInput, m.engine.Focus().Target())
}

func TestMouse_PortalBackdrop(t *testing.T) {
	m := newTestModel(t, picker.Options{WithPortal: true})

	press(m, "enter")
	require.Equal(t, focus.TargetCalendar, m.engine.Focus().Target())

	r := m.inputsRect()
	require.False(t, m.engine.Placement().Contains(geom.Point{X: r.X, Y: r.Y}))
	click(m, r.X, r.Y)
	assert.False(t, m.engine.IsOpen())
}

func TestMouse_ApplyButton(t *testing.T) {
	m := newTestModel(t, picker.Options{Start: today(1), End: today(3), KeepOpenOnDateSelect: true})
	press(m, "enter")

	clickRegion(t, m, regionApply)

	assert.False(t, m.engine.IsOpen())
	_, applied := m.Result()
	assert.True(t, applied)
}

func TestMouse_ApplyCommitsTypedTime(t *testing.T) {
	m := newTestModel(t, picker.Options{Start: today(1), End: today(3), Is24Hour: true, KeepOpenOnDateSelect: true})

	press(m, "enter", "down", "tab")
	typeText(m, "09")
	require.Equal(t, "09:00", m.engine.TimeEditor(focus.Start).String())

	clickRegion(t, m, regionApply)

	r, applied := m.Result()
	require.True(t, applied)
	assert.Equal(t, 9, r.Start.Time().Hour())
	assert.Equal(t, "09:00", m.engine.TimeEditor(focus.Start).String())
}

func TestMouse_CancelDropsTypedTime(t *testing.T) {
	m := newTestModel(t, picker.Options{Start: today(1), End: today(3), Is24Hour: true, KeepOpenOnDateSelect: true})

	press(m, "enter", "down", "tab")
	typeText(m, "09")

	clickRegion(t, m, regionCancel)

	assert.False(t, m.engine.IsOpen())
	assert.Equal(t, 12, m.engine.Working().Start.Time().Hour())
	assert.Equal(t, "12:00", m.engine.TimeEditor(focus.Start).String())
}

// clickRegion clicks the top-left cell of the first popover region of kind
func clickRegion(t *testing.T, m *Model, kind regionKind) {
	t.Helper()
	for _, r := range m.frame.regions {
		if r.kind == kind {
			p := m.engine.Placement()
			click(m, p.X+r.rect.X, p.Y+r.rect.Y)
			return
		}
	}
	t.Fatalf("no %v region in the popover", kind)
}

func TestMouse_FullScreenClose(t *testing.T) {
	m := newTestModel(t, picker.Options{WithFullScreenPortal: true})
	press(m, "enter")
	require.Equal(t, geom.Rect{Width: 100, Height: 40}, m.engine.Placement())

	click(m, 98, 0)
	assert.False(t, m.engine.IsOpen())
}

func TestTerminalBlurCloses(t *testing.T) {
	m := newTestModel(t, picker.Options{})

	press(m, "enter")
	m.Update(tea.BlurMsg{})
	assert.False(t, m.engine.IsOpen())
}

func TestTerminalBlurResetsTypedTime(t *testing.T) {
	m := newTestModel(t, picker.Options{Start: today(1), End: today(3), Is24Hour: true, KeepOpenOnDateSelect: true})

	press(m, "enter", "down", "tab")
	typeText(m, "09")
	m.Update(tea.BlurMsg{})

	assert.False(t, m.engine.IsOpen())
	assert.Equal(t, "12:00", m.engine.TimeEditor(focus.Start).String())
	assert.Equal(t, paneCalendar, m.pane)
}

func TestScrollLock(t *testing.T) {
	m := newTestModel(t, picker.Options{DisableScroll: true})

	press(m, "enter")
	assert.True(t, m.pageLocked)

	press(m, "esc")
	assert.False(t, m.pageLocked)
}

func TestHandleWindowSize(t *testing.T) {
	m := NewModel(Options{})

	updated, _ := m.handleWindowSize(tea.WindowSizeMsg{Width: 120, Height: 30})
	model := updated.(*Model)

	assert.Equal(t, 120, model.screen.Width)
	assert.Equal(t, 28, model.page.Height)
	assert.Equal(t, 29, model.screen.StatusY)
}

func TestHandleSeedChanged(t *testing.T) {
	m := newTestModel(t, picker.Options{})
	r := dates.NewRange(today(4), today(6))

	m.Update(seedChangedMsg{change: sync.SeedChange{Path: "seed.yaml", Range: r}})

	assert.True(t, m.engine.Snapshot().SameDays(r))
	assert.True(t, m.engine.Working().SameDays(r))
	assert.Equal(t, today(4).Format(dates.DefaultDisplayLayout), m.inputs.Value(focus.Start))
	assert.True(t, m.calendar.Cursor().SameDay(today(4)))
}

func TestHandleSeedChanged_Error(t *testing.T) {
	m := newTestModel(t, picker.Options{})

	m.Update(seedChangedMsg{change: sync.SeedChange{Path: "seed.yaml", Err: assert.AnError}})

	assert.ErrorIs(t, m.status.Err(), assert.AnError)
	assert.True(t, m.engine.Working().Empty())
}
