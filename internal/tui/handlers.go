package tui

import (
	"github.com/MikeBiancalana/datespan/internal/focus"
	"github.com/MikeBiancalana/datespan/internal/geom"
	"github.com/MikeBiancalana/datespan/internal/logger"
	"github.com/MikeBiancalana/datespan/internal/timeedit"
	"github.com/MikeBiancalana/datespan/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
)

// Message Handlers
//
// These methods handle specific message types, keeping the main Update()
// function clean and focused. Each handler follows the pattern:
//
//   func (m *Model) handle<MessageType>(msg <MessageType>) (tea.Model, tea.Cmd)

// handleWindowSize handles terminal resize events
func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen = CalculateScreen(msg.Width, msg.Height)
	m.page.Width = m.screen.Page.Width
	m.page.Height = m.screen.Page.Height
	m.status.SetWidth(msg.Width)

	logger.Debug("tui: window resized", "width", msg.Width, "height", msg.Height)
	m.hub.Resized(geom.Size{Width: msg.Width, Height: msg.Height})
	return m, nil
}

// handleTerminalBlur treats the terminal losing focus as the picker losing it
func (m *Model) handleTerminalBlur() (tea.Model, tea.Cmd) {
	m.commitPane()
	m.hub.FocusLost(nil)
	return m, nil
}

// handleSeedChanged syncs the picker with an edited seed file
func (m *Model) handleSeedChanged(msg seedChangedMsg) (tea.Model, tea.Cmd) {
	next := waitForSeedChange(m.watcher)

	if msg.change.Err != nil {
		logger.Error("tui: failed to reload seed", "path", msg.change.Path, "error", msg.change.Err)
		m.status.SetError(msg.change.Err)
		return m, next
	}

	r := msg.change.Range
	if m.engine.Sync(r.Start, r.End) {
		m.inputs.SetRange(m.engine.Working())
		if !r.Start.IsZero() {
			m.calendar.SetCursor(r.Start)
		}
		m.status.SetMessage("Reloaded " + msg.change.Path)
	}
	return m, next
}

// handleMouse routes wheel and left-button presses
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	p := geom.Point{X: msg.X, Y: msg.Y}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		return m, m.handleWheel(msg, p)
	case tea.MouseButtonLeft:
		return m.handleClick(p)
	}
	return m, nil
}

// handleClick handles a left press at screen point p
func (m *Model) handleClick(p geom.Point) (tea.Model, tea.Cmd) {
	if m.engine.IsOpen() {
		placement := m.engine.Placement()
		if placement.Contains(p) {
			m.clickPopover(geom.Point{X: p.X - placement.X, Y: p.Y - placement.Y})
			return m, nil
		}
		if !m.portal() {
			if side, ok := m.inputSideAt(p); ok {
				m.commitPane()
				m.engine.FocusInput(side)
				return m, nil
			}
		}
		m.commitPane()
		m.engine.OutsideInteraction(p)
		return m, nil
	}

	if side, ok := m.inputSideAt(p); ok {
		m.doneFocused = false
		m.engine.FocusInput(side)
		return m, nil
	}
	if m.doneRect().Contains(p) {
		return m.finish()
	}
	m.doneFocused = false
	return m, nil
}

// clickPopover handles a press at rel, relative to the popover origin
func (m *Model) clickPopover(rel geom.Point) {
	r, ok := m.frame.regionAt(rel)
	if !ok {
		return
	}
	local := geom.Point{X: rel.X - r.rect.X, Y: rel.Y - r.rect.Y}

	switch r.kind {
	case regionCalendar:
		if d := m.calendar.NavAt(local); d != 0 {
			m.calendar.MoveMonths(d)
			return
		}
		day, ok := m.calendar.DayAt(local)
		if !ok {
			return
		}
		m.focusBody(paneCalendar)
		m.calendar.SetCursor(day)
		m.pickDay(day)

	case regionTime:
		m.focusBody(paneFor(r.side))
		ed := m.engine.TimeEditor(r.side)
		ft, ok := components.TimeFieldAt(local.X, m.engine.Is24Hour())
		if ed == nil || !ok {
			return
		}
		m.selectField(ed, ft)
		if ft == timeedit.Meridiem {
			ed.ToggleMeridiem()
		}

	case regionApply:
		m.commitPane()
		m.engine.Apply()
	case regionCancel:
		m.commitPane()
		m.engine.Cancel()
	case regionClose:
		m.commitPane()
		m.engine.Close()
	}
}

// focusBody moves focus into the popover body on pane p
func (m *Model) focusBody(p pane) {
	if m.pane != p {
		m.commitPane()
		m.field = timeedit.Hour
	}
	m.engine.Focus().FocusCalendar()
	m.pane = p
}

// commitPane commits the field being edited in the current time pane
func (m *Model) commitPane() {
	if ed := m.paneEditor(); ed != nil {
		m.commitField(ed)
	}
}

// paneEditor returns the time editor owning the current pane
func (m *Model) paneEditor() *timeedit.Editor {
	switch m.pane {
	case paneStartTime:
		return m.engine.TimeEditor(focus.Start)
	case paneEndTime:
		return m.engine.TimeEditor(focus.End)
	}
	return nil
}

// handleWheel steps a time field or month under the pointer, or scrolls the page
func (m *Model) handleWheel(msg tea.MouseMsg, p geom.Point) tea.Cmd {
	delta := 1
	if msg.Button == tea.MouseButtonWheelDown {
		delta = -1
	}

	if m.engine.IsOpen() {
		placement := m.engine.Placement()
		if placement.Contains(p) {
			rel := geom.Point{X: p.X - placement.X, Y: p.Y - placement.Y}
			r, ok := m.frame.regionAt(rel)
			if !ok {
				return nil
			}
			switch r.kind {
			case regionCalendar:
				m.calendar.MoveMonths(-delta)
			case regionTime:
				ed := m.engine.TimeEditor(r.side)
				ft, ok := components.TimeFieldAt(rel.X-r.rect.X, m.engine.Is24Hour())
				if ed == nil || !ok {
					return nil
				}
				m.focusBody(paneFor(r.side))
				m.selectField(ed, ft)
				m.stepField(ed, delta)
			}
			return nil
		}
		if m.portal() {
			return nil
		}
	}

	return m.scrollPage(msg)
}

// scrollPage forwards msg to the page viewport unless scrolling is locked
func (m *Model) scrollPage(msg tea.Msg) tea.Cmd {
	if m.pageLocked {
		return nil
	}
	before := m.page.YOffset
	var cmd tea.Cmd
	m.page, cmd = m.page.Update(msg)
	if m.page.YOffset != before && m.engine.IsOpen() {
		m.engine.Reposition()
	}
	return cmd
}

// portal reports whether the popover is drawn detached over a backdrop
func (m *Model) portal() bool {
	o := m.engine.Options()
	return o.WithPortal || o.WithFullScreenPortal
}

// inputSideAt returns the date input under screen point p
func (m *Model) inputSideAt(p geom.Point) (side focus.Side, ok bool) {
	r := m.inputsRect()
	if !r.Contains(p) {
		return side, false
	}
	return m.inputs.SideAt(geom.Point{X: p.X - r.X, Y: p.Y - r.Y})
}
