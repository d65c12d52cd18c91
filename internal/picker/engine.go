package picker

import (
	"time"

	"github.com/MikeBiancalana/datespan/internal/dates"
	"github.com/MikeBiancalana/datespan/internal/events"
	"github.com/MikeBiancalana/datespan/internal/focus"
	"github.com/MikeBiancalana/datespan/internal/geom"
	"github.com/MikeBiancalana/datespan/internal/logger"
	"github.com/MikeBiancalana/datespan/internal/selection"
	"github.com/MikeBiancalana/datespan/internal/timeedit"
	"github.com/MikeBiancalana/datespan/internal/viewport"
)

// Engine is one picker instance. All methods must be called from the
// host's update loop.
type Engine struct {
	opts  Options
	hooks Hooks

	focus *focus.Machine
	sel   *selection.Controller
	vp    *viewport.Engine
	lock  viewport.ScrollLock

	measurer  viewport.Measurer
	scrollers func() []viewport.Scroller
	placement geom.Rect

	times    map[focus.Side]*timeedit.Editor
	is24Hour bool
}

// New builds an engine from opts
func New(opts Options, hooks Hooks) *Engine {
	e := &Engine{
		opts:     opts,
		hooks:    hooks,
		focus:    focus.NewMachine(opts.focusOptions()),
		sel:      selection.NewController(opts.initialRange(), opts.Selection),
		vp:       viewport.NewEngine(opts.viewportConfig()),
		times:    make(map[focus.Side]*timeedit.Editor),
		is24Hour: opts.Is24Hour,
	}

	if !opts.HideTime {
		e.times[focus.Start] = e.newEditor(focus.Start)
		if opts.Mode == ModeRange {
			e.times[focus.End] = e.newEditor(focus.End)
		}
	}

	e.focus.Observe(e.onTransition)
	e.focus.OnResize(func(geom.Size) { e.Reposition() })
	return e
}

func (e *Engine) newEditor(side focus.Side) *timeedit.Editor {
	return timeedit.New(e.clockFor(side), timeedit.Options{
		Is24Hour:       e.is24Hour,
		DisableMinutes: e.opts.DisableMinutes,
		OnChange:       func(t time.Time) { e.onTimeChange(side, t) },
	})
}

// clockFor returns the time an editor binds to; a null side binds to today at noon
func (e *Engine) clockFor(side focus.Side) time.Time {
	v := e.sideValue(side)
	if v.IsZero() {
		return dates.TodayAtNoon().Time()
	}
	return v.Time()
}

func (e *Engine) sideValue(side focus.Side) dates.Value {
	r := e.sel.Working()
	if side == focus.End {
		return r.End
	}
	return r.Start
}

// Mode returns the picker mode
func (e *Engine) Mode() Mode { return e.opts.Mode }

// Options returns the options the engine was built with
func (e *Engine) Options() Options { return e.opts }

// Focus exposes the focus machine for event routing
func (e *Engine) Focus() *focus.Machine { return e.focus }

// Selection exposes the range controller for day rendering
func (e *Engine) Selection() *selection.Controller { return e.sel }

// Viewport exposes the positioning engine
func (e *Engine) Viewport() *viewport.Engine { return e.vp }

// Working returns the live range
func (e *Engine) Working() dates.Range { return e.sel.Working() }

// Snapshot returns the committed range
func (e *Engine) Snapshot() dates.Range { return e.sel.Snapshot() }

// IsOpen reports whether the popover is visible
func (e *Engine) IsOpen() bool { return e.focus.IsOpen() }

// TimeEditor returns the editor for side, or nil when time is hidden
func (e *Engine) TimeEditor(side focus.Side) *timeedit.Editor {
	if e.opts.Mode == ModeSingle {
		side = focus.Start
	}
	return e.times[side]
}

// Is24Hour reports the current hour mode
func (e *Engine) Is24Hour() bool { return e.is24Hour }

// SetIs24Hour switches the hour mode; editors are fully recomputed
func (e *Engine) SetIs24Hour(on bool) {
	if on == e.is24Hour {
		return
	}
	e.is24Hour = on
	for side, ed := range e.times {
		ed.Sync(e.clockFor(side), on)
	}
}

// SetMeasurer supplies popover and container geometry
func (e *Engine) SetMeasurer(m viewport.Measurer) {
	e.measurer = m
}

// SetScrollers supplies the ancestor scroll containers to lock while open
func (e *Engine) SetScrollers(fn func() []viewport.Scroller) {
	e.scrollers = fn
}

// Mount attaches the engine to its container. A picker that starts open
// gets its open side effects here.
func (e *Engine) Mount(el focus.Element, src events.Source) *focus.Handle {
	h := e.focus.Mount(el, src)
	if e.focus.IsOpen() {
		e.opened()
	}
	return h
}

// Unmount releases the container and any scroll lock
func (e *Engine) Unmount() {
	e.focus.Unmount()
	e.lock.Release()
}

// Placement returns the popover rect computed by the last Reposition
func (e *Engine) Placement() geom.Rect {
	return e.placement
}

// Reposition recomputes the popover styles from current geometry and
// records where the popover is drawn
func (e *Engine) Reposition() geom.Rect {
	if e.measurer == nil {
		return e.placement
	}
	g := e.measurer.Measure()
	e.vp.Recompute(viewport.MeasurerFunc(func() viewport.Geometry { return g }))
	e.placement = e.vp.Place(g)
	e.focus.SetEscapedRegion(e.placement)
	return e.placement
}

func (e *Engine) onTransition(t focus.Transition) {
	if t.Closed() {
		e.closed(t)
	}
	if t.Opened() {
		e.opened()
	}
	e.hooks.focusChanged(t.To.Target())
}

func (e *Engine) opened() {
	if e.sel.Collapse() {
		e.resyncEditors()
		e.hooks.datesChanged(e.sel.Working())
	}
	e.Reposition()
	if e.vp.WantsScrollLock() && e.scrollers != nil {
		e.lock.Engage(e.scrollers())
	}
}

func (e *Engine) closed(t focus.Transition) {
	working := e.sel.Working()
	logger.Debug("picker: closed", "reason", t.Reason.String(), "working", working.String())
	e.hooks.closed(working)

	if e.sel.Collapse() {
		e.resyncEditors()
		e.hooks.datesChanged(e.sel.Working())
	}
	for _, ed := range e.times {
		ed.Discard()
	}
	e.lock.Release()
	e.vp.Reset()
	e.placement = geom.Rect{}
	e.focus.SetEscapedRegion(geom.Rect{})
}

// resyncEditors rebinds every editor to the working range
func (e *Engine) resyncEditors() {
	for side, ed := range e.times {
		if v := e.sideValue(side); !v.IsZero() {
			ed.Sync(v.Time(), e.is24Hour)
		}
	}
}

// setWorking stores a new working range and notifies the host
func (e *Engine) setWorking(start, end dates.Value) dates.Range {
	r := e.sel.OnDatesChange(start, end)
	e.resyncEditors()
	e.hooks.datesChanged(r)
	return r
}

// OnDatesChange replaces the working range, as a calendar would
func (e *Engine) OnDatesChange(start, end dates.Value) dates.Range {
	if e.opts.Mode == ModeSingle {
		end = start
	}
	return e.setWorking(start, end)
}

func (e *Engine) onTimeChange(side focus.Side, t time.Time) {
	e.hooks.timeChanged(side, t)

	r := e.sel.Working()
	switch {
	case e.opts.Mode == ModeSingle:
		if r.Start.IsZero() {
			return
		}
		v := r.Start.WithClock(t)
		e.setWorking(v, v)
	case side == focus.End:
		if r.End.IsZero() {
			return
		}
		e.setWorking(r.Start, r.End.WithClock(t))
	default:
		if r.Start.IsZero() {
			return
		}
		e.setWorking(r.Start.WithClock(t), r.End)
	}
}

// withClock carries the side's edited time onto a picked day
func (e *Engine) withClock(side focus.Side, day dates.Value) dates.Value {
	ed := e.TimeEditor(side)
	if ed == nil {
		return day
	}
	return day.WithClock(ed.Bound())
}

// PickDay handles a day chosen in the calendar. Returns false when the day
// was refused by the eligibility predicates.
func (e *Engine) PickDay(day dates.Value) bool {
	if !e.sel.IsSelectable(day) {
		logger.Debug("picker: refused day", "day", day.String())
		return false
	}

	if e.opts.Mode == ModeSingle {
		v := e.withClock(focus.Start, day)
		e.setWorking(v, v)
		if !e.opts.KeepOpenOnDateSelect {
			e.Apply()
		}
		return true
	}

	r := e.sel.Working()
	side := e.focus.ActiveSide()

	if side == focus.Start {
		start := e.withClock(focus.Start, day)
		end := r.End
		if !end.IsZero() && !e.sel.AllowsEnd(start, end) {
			end = dates.Value{}
		}
		e.setWorking(start, end)
		e.focus.SelectSide(focus.End)
		return true
	}

	switch {
	case r.Start.IsZero():
		e.setWorking(r.Start, e.withClock(focus.End, day))
		e.focus.SelectSide(focus.Start)
	case e.sel.AllowsEnd(r.Start, day):
		e.setWorking(r.Start, e.withClock(focus.End, day))
		if !e.opts.KeepOpenOnDateSelect {
			e.Apply()
		}
	default:
		e.setWorking(e.withClock(focus.Start, day), dates.Value{})
	}
	return true
}

// Apply commits the working range and closes the popover
func (e *Engine) Apply() {
	e.ApplyRange(e.sel.Working())
}

// ApplyRange commits r and closes the popover
func (e *Engine) ApplyRange(r dates.Range) {
	old := e.sel.Apply(r)
	e.resyncEditors()
	e.hooks.applied(old, r)
	e.focus.Close(focus.ReasonApply)
}

// Cancel restores the working range to the snapshot and closes the popover
func (e *Engine) Cancel() {
	restored := e.sel.Cancel()
	e.resyncEditors()
	e.hooks.cancelled(restored)
	e.focus.Close(focus.ReasonCancel)
}

// Close hides the popover without committing
func (e *Engine) Close() {
	e.focus.Close(focus.ReasonExplicit)
}

// Sync re-seeds the engine from externally supplied dates
func (e *Engine) Sync(start, end dates.Value) bool {
	if e.opts.Mode == ModeSingle {
		end = start
	}
	if !e.sel.Sync(start, end) {
		return false
	}
	e.resyncEditors()
	return true
}

// FocusInput focuses one of the inputs
func (e *Engine) FocusInput(side focus.Side) {
	if e.opts.Mode == ModeSingle {
		side = focus.Start
	}
	e.focus.FocusInput(side)
}

// OutsideInteraction handles a pointer event outside the widget
func (e *Engine) OutsideInteraction(p geom.Point) bool {
	return e.focus.OutsideInteraction(p)
}
