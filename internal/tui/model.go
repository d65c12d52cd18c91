package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MikeBiancalana/datespan/internal/dates"
	"github.com/MikeBiancalana/datespan/internal/events"
	"github.com/MikeBiancalana/datespan/internal/focus"
	"github.com/MikeBiancalana/datespan/internal/geom"
	"github.com/MikeBiancalana/datespan/internal/logger"
	"github.com/MikeBiancalana/datespan/internal/perf"
	"github.com/MikeBiancalana/datespan/internal/picker"
	"github.com/MikeBiancalana/datespan/internal/sync"
	"github.com/MikeBiancalana/datespan/internal/timeedit"
	"github.com/MikeBiancalana/datespan/internal/tui/components"
	"github.com/MikeBiancalana/datespan/internal/viewport"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	bubbleviewport "github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const doneLabel = "[ Done ]"

var (
	titleBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Bold(true).
			Padding(0, 1)

	headingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	doneStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	doneFocusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("39"))
	summaryStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	hintStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Options configures the terminal host
type Options struct {
	Picker        picker.Options
	DisplayLayout string
	Months        int
	Title         string
	Watcher       *sync.Watcher
}

// Model hosts one picker engine in a Bubble Tea program.
//
// The page below the title bar is a scrollable viewport; it is the ancestor
// scroll container the picker locks while open. The input row is the
// picker's container element and the popover is drawn over the page.
type Model struct {
	opts   Options
	engine *picker.Engine
	hub    *events.Hub
	el     *container

	screen     Screen
	page       bubbleviewport.Model
	pageLocked bool

	inputs   *components.DateInputs
	calendar *components.Calendar
	status   *components.StatusBar
	keys     keyMap

	target      focus.Target
	pane        pane
	field       timeedit.FieldType
	typed       string
	doneFocused bool

	frame    frame
	watcher  *sync.Watcher
	recorder *perf.Recorder
	pending  []tea.Cmd
	applied  bool
	quitting bool
}

// container is the picker's mounted element; its bounds follow the page
type container struct {
	m *Model
}

func (c *container) Bounds() geom.Rect {
	return c.m.containerRect()
}

// pageScroller lets the scroll lock freeze the page viewport
type pageScroller struct {
	m *Model
}

func (p pageScroller) SetScrollLocked(locked bool) {
	p.m.pageLocked = locked
}

// NewModel creates the host and mounts the picker
func NewModel(opts Options) *Model {
	if opts.DisplayLayout == "" {
		opts.DisplayLayout = dates.DefaultDisplayLayout
	}
	if opts.Title == "" {
		opts.Title = "Select dates"
		if opts.Picker.Mode == picker.ModeSingle {
			opts.Title = "Select a date"
		}
	}

	m := &Model{
		opts:     opts,
		hub:      events.NewHub(),
		page:     bubbleviewport.New(0, 0),
		inputs:   components.NewDateInputs(opts.Picker.Mode == picker.ModeSingle, opts.DisplayLayout),
		status:   components.NewStatusBar(),
		keys:     defaultKeyMap(),
		field:    timeedit.Hour,
		watcher:  opts.Watcher,
		recorder: perf.NewRecorder("tui.update", logger.GetLogger(), perf.DefaultSlowThreshold),
	}
	m.el = &container{m: m}

	m.engine = picker.New(opts.Picker, picker.Hooks{
		OnDatesChange: m.onDatesChange,
		OnFocusChange: m.onFocusChange,
		OnApply:       m.onApply,
		OnCancel:      m.onCancel,
		OnClose:       m.onClose,
		OnTimeChange: func(side focus.Side, t time.Time) {
			logger.Debug("tui: time changed", "side", side.String(), "time", t.Format("15:04"))
		},
	})
	m.inputs.SetRange(m.engine.Working())
	m.calendar = components.NewCalendar(opts.Months, m.engine.Working().Start)

	m.engine.SetMeasurer(viewport.MeasurerFunc(m.measure))
	m.engine.SetScrollers(func() []viewport.Scroller {
		return []viewport.Scroller{pageScroller{m: m}}
	})
	m.engine.Mount(m.el, m.hub)
	if m.engine.IsOpen() {
		m.onFocusChange(m.engine.Focus().Target())
	}

	m.refresh()
	return m
}

// Engine exposes the hosted picker
func (m *Model) Engine() *picker.Engine {
	return m.engine
}

// Result returns the committed range and whether anything was applied
func (m *Model) Result() (dates.Range, bool) {
	return m.engine.Snapshot(), m.applied
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if cmd := m.drainPending(); cmd != nil {
		cmds = append(cmds, cmd)
	}

	if m.watcher != nil {
		if err := m.watcher.Start(); err != nil {
			logger.Error("tui: failed to start seed watcher", "error", err)
			m.status.SetError(fmt.Errorf("watch: %w", err))
		} else {
			cmds = append(cmds, waitForSeedChange(m.watcher))
		}
	}

	return tea.Batch(cmds...)
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer m.recorder.Start(fmt.Sprintf("%T", msg)).Stop()

	model, cmd := m.update(msg)
	m.refresh()

	return model, tea.Batch(cmd, m.drainPending())
}

func (m *Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.BlurMsg:
		return m.handleTerminalBlur()

	case seedChangedMsg:
		return m.handleSeedChanged(msg)
	}

	return m, m.inputs.Update(msg)
}

func (m *Model) drainPending() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

// View renders the title bar, the page, the status bar and the popover
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	title := titleBarStyle.Width(m.screen.Width).MaxHeight(1).Render("datespan · " + m.engine.Mode().String())
	page := fitLines(m.page.View(), m.screen.Page.Height)
	screen := title + "\n" + page + "\n" + m.status.View(m.currentHelp())

	if m.engine.IsOpen() {
		p := m.engine.Placement()
		screen = Overlay(screen, m.frame.view, p.X, p.Y)
	}
	return screen
}

// refresh rebuilds everything View draws from the current state
func (m *Model) refresh() {
	m.page.SetContent(m.pageContent())
	if m.engine.IsOpen() {
		m.frame = m.buildFrame()
	} else {
		m.frame = frame{}
	}
}

func (m *Model) measure() viewport.Geometry {
	return viewport.Geometry{
		Popover:   m.buildFrame().size,
		Container: m.inputsRect(),
		Window:    geom.Size{Width: m.screen.Width, Height: m.screen.Height},
	}
}

// inputsRect is the input row on screen
func (m *Model) inputsRect() geom.Rect {
	size := m.inputs.Size()
	return geom.Rect{
		X:      pageIndent,
		Y:      m.screen.PageToScreen(pageInputLine, m.page.YOffset),
		Width:  size.Width,
		Height: size.Height,
	}
}

// containerRect is the picker's element: the inputs plus an inline popover
func (m *Model) containerRect() geom.Rect {
	r := m.inputsRect()
	o := m.engine.Options()
	if m.engine.IsOpen() && !o.WithPortal && !o.WithFullScreenPortal && !o.AppendToBody {
		r = r.Union(m.engine.Placement())
	}
	return r
}

func (m *Model) doneLine() int {
	return pageInputLine + m.inputs.Size().Height + 1
}

// doneRect is the page button focus moves to when tabbing out of the picker
func (m *Model) doneRect() geom.Rect {
	return geom.Rect{
		X:      pageIndent,
		Y:      m.screen.PageToScreen(m.doneLine(), m.page.YOffset),
		Width:  lipgloss.Width(doneLabel),
		Height: 1,
	}
}

func (m *Model) pageContent() string {
	indent := strings.Repeat(" ", pageIndent)
	lines := []string{indent + headingStyle.Render(m.opts.Title), ""}

	for _, l := range strings.Split(m.inputs.View(m.engine.Focus().Target(), m.engine.Focus().ActiveSide()), "\n") {
		lines = append(lines, indent+l)
	}

	done := doneStyle.Render(doneLabel)
	if m.doneFocused {
		done = doneFocusedStyle.Render(doneLabel)
	}
	lines = append(lines, "", indent+done, "")
	lines = append(lines, indent+"Selected: "+summaryStyle.Render(m.formatRange(m.engine.Snapshot())))
	lines = append(lines, "")

	for _, h := range []string{
		"Type a date and press enter, or pick one in the calendar.",
		"Typed dates: " + m.opts.DisplayLayout + ", 2006-01-02, t, tm, mon..sun, +3d, +2w",
		"Press ↓ in an input to move into the calendar, ? for shortcuts.",
		"Tab out of the inputs or click elsewhere to close without applying.",
	} {
		lines = append(lines, indent+hintStyle.Render(h))
	}
	return strings.Join(lines, "\n")
}

// formatRange renders r with times when time editing is shown
func (m *Model) formatRange(r dates.Range) string {
	layout := m.opts.DisplayLayout
	if !m.engine.Options().HideTime {
		if m.engine.Is24Hour() {
			layout += " 15:04"
		} else {
			layout += " 03:04 pm"
		}
	}

	start := r.Start.Format(layout)
	if start == "" {
		start = "…"
	}
	if m.engine.Mode() == picker.ModeSingle {
		return start
	}
	end := r.End.Format(layout)
	if end == "" {
		end = "…"
	}
	return start + " → " + end
}

// currentHelp picks the key hints for the focused part of the picker
func (m *Model) currentHelp() help.KeyMap {
	st := m.engine.Focus().State()
	switch st.Kind() {
	case focus.InputFocused:
		return m.keys.inputHelp()
	case focus.CalendarFocused:
		if m.pane != paneCalendar {
			return m.keys.timeHelp()
		}
		return m.keys.calendarHelp()
	case focus.ShowingShortcuts:
		return contextKeys{short: []key.Binding{m.keys.Shortcuts, m.keys.Cancel}}
	default:
		return m.keys.closedHelp()
	}
}

func (m *Model) onDatesChange(r dates.Range) {
	m.inputs.SetRange(r)
}

func (m *Model) onFocusChange(t focus.Target) {
	prev := m.target
	m.target = t

	switch t {
	case focus.TargetStartInput, focus.TargetEndInput:
		side := focus.Start
		if t == focus.TargetEndInput {
			side = focus.End
		}
		m.doneFocused = false
		m.pending = append(m.pending, m.inputs.Focus(side))

	case focus.TargetCalendar:
		m.inputs.Blur()
		m.doneFocused = false
		if prev != focus.TargetCalendar {
			m.pane = paneCalendar
			m.calendar.SetCursor(m.cursorStart())
		}

	default:
		m.inputs.Blur()
		m.pane = paneCalendar
		m.typed = ""
	}
}

// cursorStart is where the calendar cursor lands when the body gains focus
func (m *Model) cursorStart() dates.Value {
	r := m.engine.Working()
	if m.engine.Focus().ActiveSide() == focus.End && !r.End.IsZero() {
		return r.End
	}
	if !r.Start.IsZero() {
		return r.Start
	}
	return dates.TodayAtNoon()
}

func (m *Model) onApply(_, next dates.Range) {
	m.applied = true
	m.status.SetMessage("Applied " + m.formatRange(next))
}

func (m *Model) onCancel(restored dates.Range) {
	m.status.SetMessage("Cancelled, kept " + m.formatRange(restored))
}

func (m *Model) onClose(working dates.Range) {
	logger.Debug("tui: picker closed", "working", working.String())
}
