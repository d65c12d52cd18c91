package picker

import (
	"testing"
	"time"

	"github.com/MikeBiancalana/datespan/internal/dates"
	"github.com/MikeBiancalana/datespan/internal/events"
	"github.com/MikeBiancalana/datespan/internal/focus"
	"github.com/MikeBiancalana/datespan/internal/geom"
	"github.com/MikeBiancalana/datespan/internal/selection"
	"github.com/MikeBiancalana/datespan/internal/timeedit"
	"github.com/MikeBiancalana/datespan/internal/viewport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jan(d int) dates.Value {
	return dates.Noon(2024, 1, d, time.UTC)
}

type recorder struct {
	changes []dates.Range
	targets []focus.Target
	applies [][2]dates.Range
	cancels []dates.Range
	closes  []dates.Range
	times   []time.Time
}

func (r *recorder) hooks() Hooks {
	return Hooks{
		OnDatesChange: func(d dates.Range) { r.changes = append(r.changes, d) },
		OnFocusChange: func(t focus.Target) { r.targets = append(r.targets, t) },
		OnApply:       func(old, next dates.Range) { r.applies = append(r.applies, [2]dates.Range{old, next}) },
		OnCancel:      func(d dates.Range) { r.cancels = append(r.cancels, d) },
		OnClose:       func(d dates.Range) { r.closes = append(r.closes, d) },
		OnTimeChange:  func(_ focus.Side, t time.Time) { r.times = append(r.times, t) },
	}
}

func rangeOpts(start, end dates.Value) Options {
	return Options{
		Start:                start,
		End:                  end,
		KeepOpenOnDateSelect: true,
		Selection: selection.Options{
			IsDayBlocked:   dates.Never,
			IsOutsideRange: dates.Never,
			MinimumNights:  1,
		},
	}
}

type box struct{ rect geom.Rect }

func (b *box) Bounds() geom.Rect { return b.rect }

type pane struct{ locked bool }

func (p *pane) SetScrollLocked(locked bool) { p.locked = locked }

func TestCancelRestoresSnapshot(t *testing.T) {
	rec := &recorder{}
	e := New(rangeOpts(jan(10), jan(15)), rec.hooks())
	e.FocusInput(focus.Start)

	e.OnDatesChange(jan(12), jan(20))
	assert.Equal(t, dates.NewRange(jan(12), jan(20)), e.Working())

	e.Cancel()

	assert.Equal(t, dates.NewRange(jan(10), jan(15)), e.Working())
	assert.False(t, e.IsOpen())
	require.Len(t, rec.cancels, 1)
	assert.Equal(t, dates.NewRange(jan(10), jan(15)), rec.cancels[0])
	assert.Equal(t, focus.TargetNone, rec.targets[len(rec.targets)-1])
}

func TestApplyCommitsAndReportsOldSnapshot(t *testing.T) {
	rec := &recorder{}
	e := New(rangeOpts(jan(10), jan(15)), rec.hooks())
	e.FocusInput(focus.Start)
	e.OnDatesChange(jan(12), jan(20))

	e.Apply()

	assert.False(t, e.IsOpen())
	assert.Equal(t, dates.NewRange(jan(12), jan(20)), e.Snapshot())
	assert.Equal(t, dates.NewRange(jan(12), jan(20)), e.Working())
	require.Len(t, rec.applies, 1)
	assert.Equal(t, dates.NewRange(jan(10), jan(15)), rec.applies[0][0])
	assert.Equal(t, dates.NewRange(jan(12), jan(20)), rec.applies[0][1])
}

func TestOutsideClickClosesWithWorkingRange(t *testing.T) {
	rec := &recorder{}
	e := New(rangeOpts(jan(10), jan(15)), rec.hooks())
	e.FocusInput(focus.Start)
	e.OnDatesChange(jan(12), jan(20))

	closed := e.OutsideInteraction(geom.Point{X: 70, Y: 20})

	assert.True(t, closed)
	assert.False(t, e.IsOpen())
	require.Len(t, rec.closes, 1)
	assert.Equal(t, dates.NewRange(jan(12), jan(20)), rec.closes[0])
	// The unapplied range collapses back afterwards
	assert.Equal(t, dates.NewRange(jan(10), jan(15)), e.Working())
	assert.Equal(t, dates.NewRange(jan(10), jan(15)), rec.changes[len(rec.changes)-1])
}

func TestOpenCollapsesHostEditsAndNotifies(t *testing.T) {
	rec := &recorder{}
	e := New(rangeOpts(jan(10), jan(15)), rec.hooks())
	e.OnDatesChange(jan(12), jan(20))
	require.False(t, e.IsOpen())

	e.FocusInput(focus.Start)

	assert.Equal(t, dates.NewRange(jan(10), jan(15)), e.Working())
	require.Len(t, rec.changes, 2)
	assert.Equal(t, dates.NewRange(jan(10), jan(15)), rec.changes[1])
}

func TestCloseDiscardsUnpublishedTimeEdits(t *testing.T) {
	e := New(rangeOpts(jan(10), jan(15)), Hooks{})
	e.FocusInput(focus.Start)
	ed := e.TimeEditor(focus.Start)
	require.NotNil(t, ed)

	require.True(t, ed.SetField(timeedit.Hour, "7"))
	assert.Equal(t, "07:00 pm", ed.String())

	e.OutsideInteraction(geom.Point{X: 70, Y: 20})

	assert.Equal(t, "12:00 pm", ed.String())
	assert.Equal(t, 12, e.Working().Start.Time().Hour())
}

func TestOutsideClickWhileClosedIsIgnored(t *testing.T) {
	rec := &recorder{}
	e := New(rangeOpts(jan(10), jan(15)), rec.hooks())

	assert.False(t, e.OutsideInteraction(geom.Point{}))
	assert.Empty(t, rec.closes)
}

func TestPickDayRange(t *testing.T) {
	e := New(rangeOpts(dates.Value{}, dates.Value{}), Hooks{})
	e.FocusInput(focus.Start)

	require.True(t, e.PickDay(jan(10)))
	assert.Equal(t, focus.End, e.Focus().ActiveSide())
	assert.True(t, e.Working().Start.SameDay(jan(10)))
	assert.True(t, e.Working().End.IsZero())

	// Too close for one night restarts the range
	require.True(t, e.PickDay(jan(10)))
	assert.True(t, e.Working().Start.SameDay(jan(10)))
	assert.True(t, e.Working().End.IsZero())

	require.True(t, e.PickDay(jan(14)))
	assert.True(t, e.Working().End.SameDay(jan(14)))
	assert.True(t, e.IsOpen(), "stays open while keep-open is set")

	// Picking a start that leaves the end too close clears the end
	e.Focus().SelectSide(focus.Start)
	require.True(t, e.PickDay(jan(14)))
	assert.True(t, e.Working().Start.SameDay(jan(14)))
	assert.True(t, e.Working().End.IsZero())
}

func TestPickDayEndWithoutStart(t *testing.T) {
	e := New(rangeOpts(dates.Value{}, dates.Value{}), Hooks{})
	e.FocusInput(focus.End)

	require.True(t, e.PickDay(jan(14)))
	assert.True(t, e.Working().Start.IsZero())
	assert.True(t, e.Working().End.SameDay(jan(14)))
	assert.Equal(t, focus.Start, e.Focus().ActiveSide())
}

func TestPickDayRefusesBlocked(t *testing.T) {
	opts := rangeOpts(dates.Value{}, dates.Value{})
	opts.Selection.IsDayBlocked = dates.BlockedBefore(jan(10))
	rec := &recorder{}
	e := New(opts, rec.hooks())
	e.FocusInput(focus.Start)

	assert.False(t, e.PickDay(jan(9)))
	assert.Empty(t, rec.changes)
	assert.True(t, e.PickDay(jan(10)))
}

func TestPickDayAppliesWhenNotKeptOpen(t *testing.T) {
	opts := rangeOpts(jan(1), jan(3))
	opts.KeepOpenOnDateSelect = false
	rec := &recorder{}
	e := New(opts, rec.hooks())
	e.FocusInput(focus.Start)

	e.PickDay(jan(10))
	require.True(t, e.IsOpen())
	e.PickDay(jan(12))

	assert.False(t, e.IsOpen())
	require.Len(t, rec.applies, 1)
	assert.True(t, e.Snapshot().Start.SameDay(jan(10)))
	assert.True(t, e.Snapshot().End.SameDay(jan(12)))
}

func TestSingleMode(t *testing.T) {
	opts := rangeOpts(jan(5), dates.Value{})
	opts.Mode = ModeSingle
	opts.KeepOpenOnDateSelect = false
	e := New(opts, Hooks{})

	assert.True(t, e.Snapshot().End.SameDay(jan(5)))
	e.FocusInput(focus.End)
	assert.Equal(t, focus.InputState(focus.Start), e.Focus().State())

	e.PickDay(jan(8))

	assert.False(t, e.IsOpen())
	assert.True(t, e.Snapshot().Start.SameDay(jan(8)))
	assert.True(t, e.Snapshot().End.SameDay(jan(8)))
	assert.Same(t, e.TimeEditor(focus.Start), e.TimeEditor(focus.End))
}

func TestTimeChangeUpdatesWorkingRange(t *testing.T) {
	rec := &recorder{}
	e := New(rangeOpts(jan(10), jan(15)), rec.hooks())
	e.FocusInput(focus.Start)

	ed := e.TimeEditor(focus.End)
	require.NotNil(t, ed)
	ed.Increment(timeedit.Hour)

	require.Len(t, rec.times, 1)
	assert.Equal(t, 13, rec.times[0].Hour())
	assert.Equal(t, 13, e.Working().End.Time().Hour())
	assert.Equal(t, 12, e.Working().Start.Time().Hour())
	assert.True(t, e.Working().End.SameDay(jan(15)))
}

func TestPickedDayKeepsEditedClock(t *testing.T) {
	e := New(rangeOpts(jan(10), jan(15)), Hooks{})
	e.FocusInput(focus.Start)
	e.TimeEditor(focus.Start).ToggleMeridiem()

	e.PickDay(jan(11))

	assert.Equal(t, 0, e.Working().Start.Time().Hour())
	assert.True(t, e.Working().Start.SameDay(jan(11)))
}

func TestHideTime(t *testing.T) {
	opts := rangeOpts(jan(10), jan(15))
	opts.HideTime = true
	e := New(opts, Hooks{})

	assert.Nil(t, e.TimeEditor(focus.Start))
	assert.Nil(t, e.TimeEditor(focus.End))
}

func TestSetIs24HourResyncsEditors(t *testing.T) {
	e := New(rangeOpts(jan(10), jan(15)), Hooks{})
	require.False(t, e.TimeEditor(focus.Start).Is24Hour())

	e.SetIs24Hour(true)

	assert.True(t, e.TimeEditor(focus.Start).Is24Hour())
	assert.Equal(t, "12:00", e.TimeEditor(focus.Start).String())
}

func TestSyncReplacesBothRanges(t *testing.T) {
	rec := &recorder{}
	e := New(rangeOpts(jan(10), jan(15)), rec.hooks())
	e.FocusInput(focus.Start)
	e.OnDatesChange(jan(11), jan(12))

	assert.False(t, e.Sync(jan(10), jan(15)), "same days do not re-seed")
	assert.True(t, e.Sync(jan(20), jan(25)))

	assert.Equal(t, dates.NewRange(jan(20), jan(25)), e.Snapshot())
	assert.Equal(t, dates.NewRange(jan(20), jan(25)), e.Working())
	assert.True(t, e.IsOpen())
}

func TestOpenPositionsAndLocksScroll(t *testing.T) {
	opts := rangeOpts(jan(10), jan(15))
	opts.Anchor = viewport.AnchorLeft
	opts.DisableScroll = true
	e := New(opts, Hooks{})

	outer := &pane{}
	e.SetScrollers(func() []viewport.Scroller { return []viewport.Scroller{outer} })
	e.SetMeasurer(viewport.MeasurerFunc(func() viewport.Geometry {
		return viewport.Geometry{
			Popover:   geom.Size{Width: 40, Height: 10},
			Container: geom.Rect{X: 10, Width: 30, Height: 1},
			Window:    geom.Size{Width: 45, Height: 30},
		}
	}))

	e.FocusInput(focus.Start)
	assert.True(t, outer.locked)
	assert.Equal(t, -5, e.Viewport().Styles().Offset)
	assert.Equal(t, 45, e.Placement().Right())

	e.Close()
	assert.False(t, outer.locked)
	assert.True(t, e.Viewport().Styles().Neutral())
	assert.True(t, e.Placement().Empty())
}

func TestFocusLossClosesAndStaleHandleIgnored(t *testing.T) {
	hub := events.NewHub()
	rec := &recorder{}
	e := New(rangeOpts(jan(10), jan(15)), rec.hooks())

	first := &box{rect: geom.Rect{Width: 30, Height: 12}}
	e.Mount(first, hub)
	second := &box{rect: geom.Rect{Width: 30, Height: 12}}
	e.Mount(second, hub)

	fl, rs := hub.Listeners()
	assert.Equal(t, 1, fl)
	assert.Equal(t, 1, rs)

	e.FocusInput(focus.Start)
	hub.FocusLost(&geom.Point{X: 2, Y: 2})
	assert.True(t, e.IsOpen(), "focus moved inside the container")

	hub.FocusLost(nil)
	assert.False(t, e.IsOpen())
	require.Len(t, rec.closes, 1)

	e.Unmount()
	fl, rs = hub.Listeners()
	assert.Equal(t, 0, fl)
	assert.Equal(t, 0, rs)
}

func TestResizeRepositionsWhileOpen(t *testing.T) {
	hub := events.NewHub()
	opts := rangeOpts(jan(10), jan(15))
	opts.Anchor = viewport.AnchorLeft
	e := New(opts, Hooks{})

	width := 80
	e.SetMeasurer(viewport.MeasurerFunc(func() viewport.Geometry {
		return viewport.Geometry{
			Popover:   geom.Size{Width: 40, Height: 10},
			Container: geom.Rect{X: 10, Width: 30, Height: 1},
			Window:    geom.Size{Width: width, Height: 30},
		}
	}))
	e.Mount(&box{rect: geom.Rect{Width: 80, Height: 12}}, hub)
	e.FocusInput(focus.Start)
	require.Equal(t, 0, e.Viewport().Styles().Offset)

	width = 45
	hub.Resized(geom.Size{Width: 45, Height: 30})
	assert.Equal(t, -5, e.Viewport().Styles().Offset)
}

func TestAutoFocusOpensOnMount(t *testing.T) {
	opts := rangeOpts(jan(10), jan(15))
	opts.AutoFocus = true
	opts.DisableScroll = true
	e := New(opts, Hooks{})
	outer := &pane{}
	e.SetScrollers(func() []viewport.Scroller { return []viewport.Scroller{outer} })

	e.Mount(&box{rect: geom.Rect{Width: 10, Height: 1}}, events.NewHub())

	assert.True(t, e.IsOpen())
	assert.True(t, outer.locked)
}
