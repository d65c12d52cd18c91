package tui

import (
	"strings"

	"github.com/MikeBiancalana/datespan/internal/focus"
	"github.com/MikeBiancalana/datespan/internal/geom"
	"github.com/MikeBiancalana/datespan/internal/picker"
	"github.com/MikeBiancalana/datespan/internal/tui/components"
	"github.com/charmbracelet/lipgloss"
)

// pane is the part of the popover body that receives keys
type pane int

const (
	paneCalendar pane = iota
	paneStartTime
	paneEndTime
)

type regionKind int

const (
	regionCalendar regionKind = iota
	regionTime
	regionApply
	regionCancel
	regionClose
)

// region is a clickable area of the popover, relative to the frame origin
type region struct {
	kind regionKind
	rect geom.Rect
	side focus.Side
}

// frame is a rendered popover plus its hit map
type frame struct {
	view    string
	size    geom.Size
	regions []region
}

const (
	applyLabel  = "[ Apply ]"
	cancelLabel = "[ Cancel ]"
	closeLabel  = "✕"
	buttonGap   = "  "
)

var (
	popoverStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)

	buttonStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	buttonMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	closeButtonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// popoverOrigin is where content starts inside the bordered box
func popoverOrigin() geom.Point {
	return geom.Point{
		X: popoverStyle.GetBorderLeftSize() + popoverStyle.GetPaddingLeft(),
		Y: popoverStyle.GetBorderTopSize() + popoverStyle.GetPaddingTop(),
	}
}

// buildFrame renders the popover body for the current state
func (m *Model) buildFrame() frame {
	var lines []string
	var regions []region
	origin := popoverOrigin()

	calSize := m.calendar.Size()
	st := m.engine.Focus().State()
	calendarFocused := st.Kind() == focus.CalendarFocused

	if st.ShortcutsVisible() {
		lines = append(lines, strings.Split(components.ShortcutsPanel(m.keys.calendarHelp(), calSize.Width, calSize.Height), "\n")...)
	} else {
		grid := m.calendar.View(m.engine.Selection(), m.engine.Working(), calendarFocused && m.pane == paneCalendar)
		lines = append(lines, strings.Split(grid, "\n")...)
		regions = append(regions, region{
			kind: regionCalendar,
			rect: geom.Rect{X: origin.X, Y: origin.Y, Width: calSize.Width, Height: calSize.Height},
		})
	}

	if !m.engine.Options().HideTime {
		lines = append(lines, "")
		row, timeRegions := m.timeRow(origin.X, origin.Y+len(lines), calendarFocused)
		lines = append(lines, row)
		regions = append(regions, timeRegions...)
	}

	lines = append(lines, "")
	buttonY := origin.Y + len(lines)
	lines = append(lines, buttonStyle.Render(applyLabel)+buttonGap+buttonMutedStyle.Render(cancelLabel))
	regions = append(regions,
		region{kind: regionApply, rect: geom.Rect{X: origin.X, Y: buttonY, Width: lipgloss.Width(applyLabel), Height: 1}},
		region{kind: regionCancel, rect: geom.Rect{X: origin.X + lipgloss.Width(applyLabel+buttonGap), Y: buttonY, Width: lipgloss.Width(cancelLabel), Height: 1}},
	)

	box := popoverStyle.Render(strings.Join(lines, "\n"))
	f := frame{
		view:    box,
		size:    geom.Size{Width: lipgloss.Width(box), Height: lipgloss.Height(box)},
		regions: regions,
	}

	if m.engine.Options().WithFullScreenPortal {
		return m.fullScreen(f)
	}
	return f
}

// timeRow renders the time editors and their hit regions
func (m *Model) timeRow(x, y int, calendarFocused bool) (string, []region) {
	var b strings.Builder
	var regions []region
	is24 := m.engine.Is24Hour()

	sides := []focus.Side{focus.Start, focus.End}
	labels := []string{"Start ", "End "}
	if m.engine.Mode() == picker.ModeSingle {
		sides = sides[:1]
		labels = []string{"Time "}
	}

	col := x
	for i, side := range sides {
		if i > 0 {
			b.WriteString("    ")
			col += 4
		}
		label := components.TimeLabel(labels[i])
		b.WriteString(label)
		col += lipgloss.Width(label)

		ed := m.engine.TimeEditor(side)
		focused := calendarFocused && m.pane == paneFor(side)
		b.WriteString(components.TimeView(ed, focused, m.field))
		regions = append(regions, region{
			kind: regionTime,
			side: side,
			rect: geom.Rect{X: col, Y: y, Width: components.TimeViewWidth(is24), Height: 1},
		})
		col += components.TimeViewWidth(is24)
	}
	return b.String(), regions
}

func paneFor(side focus.Side) pane {
	if side == focus.End {
		return paneEndTime
	}
	return paneStartTime
}

// fullScreen centres f in a window sized frame with a close button
func (m *Model) fullScreen(f frame) frame {
	w, h := m.screen.Width, m.screen.Height
	left := max((w-f.size.Width)/2, 0)
	top := max((h-f.size.Height)/2, 0)

	lines := make([]string, h)
	pad := strings.Repeat(" ", left)
	for i, line := range strings.Split(f.view, "\n") {
		if top+i < h {
			lines[top+i] = pad + line
		}
	}
	for i := range lines {
		if gap := w - lipgloss.Width(lines[i]); gap > 0 {
			lines[i] += strings.Repeat(" ", gap)
		}
	}
	view := Overlay(strings.Join(lines, "\n"), closeButtonStyle.Render(closeLabel), max(w-2, 0), 0)

	regions := make([]region, 0, len(f.regions)+1)
	for _, r := range f.regions {
		r.rect = r.rect.Translate(left, top)
		regions = append(regions, r)
	}
	regions = append(regions, region{kind: regionClose, rect: geom.Rect{X: max(w-2, 0), Y: 0, Width: 1, Height: 1}})

	return frame{view: view, size: geom.Size{Width: w, Height: h}, regions: regions}
}

// regionAt returns the region under p, relative to the frame origin
func (f frame) regionAt(p geom.Point) (region, bool) {
	for _, r := range f.regions {
		if r.rect.Contains(p) {
			return r, true
		}
	}
	return region{}, false
}
