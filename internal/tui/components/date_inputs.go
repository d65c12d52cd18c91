package components

import (
	"github.com/MikeBiancalana/datespan/internal/dates"
	"github.com/MikeBiancalana/datespan/internal/focus"
	"github.com/MikeBiancalana/datespan/internal/geom"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InputArrow separates the start and end inputs
const InputArrow = " → "

var (
	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	inputBoxFocusedStyle = inputBoxStyle.BorderForeground(lipgloss.Color("39"))

	inputBoxCalendarStyle = inputBoxStyle.BorderForeground(lipgloss.Color("205"))
)

// DateInputs is the start/end text input pair. In single mode only the
// start input is shown.
type DateInputs struct {
	start  textinput.Model
	end    textinput.Model
	single bool
	layout string
	width  int
}

// NewDateInputs creates the inputs for the given display layout
func NewDateInputs(single bool, displayLayout string) *DateInputs {
	if displayLayout == "" {
		displayLayout = dates.DefaultDisplayLayout
	}
	width := max(len(displayLayout), 10)

	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholder
		ti.CharLimit = 32
		ti.Width = width
		return ti
	}

	placeholder := "Start date"
	if single {
		placeholder = "Date"
	}
	return &DateInputs{
		start:  newInput(placeholder),
		end:    newInput("End date"),
		single: single,
		layout: displayLayout,
		width:  width,
	}
}

// BoxWidth returns the outer width of one input box
func (d *DateInputs) BoxWidth() int {
	return d.width + 1 + inputBoxStyle.GetHorizontalFrameSize()
}

// BoxHeight returns the outer height of the input row
func (d *DateInputs) BoxHeight() int {
	return 1 + inputBoxStyle.GetVerticalFrameSize()
}

// Size returns the outer size of the whole row
func (d *DateInputs) Size() geom.Size {
	w := d.BoxWidth()
	if !d.single {
		w = 2*w + lipgloss.Width(InputArrow)
	}
	return geom.Size{Width: w, Height: d.BoxHeight()}
}

// SideAt hit-tests a point relative to the row origin
func (d *DateInputs) SideAt(p geom.Point) (focus.Side, bool) {
	if p.Y < 0 || p.Y >= d.BoxHeight() || p.X < 0 {
		return focus.Start, false
	}
	w := d.BoxWidth()
	if p.X < w {
		return focus.Start, true
	}
	if d.single {
		return focus.Start, false
	}
	endX := w + lipgloss.Width(InputArrow)
	if p.X >= endX && p.X < endX+w {
		return focus.End, true
	}
	return focus.Start, false
}

func (d *DateInputs) input(side focus.Side) *textinput.Model {
	if side == focus.End && !d.single {
		return &d.end
	}
	return &d.start
}

// Focus focuses the input for side
func (d *DateInputs) Focus(side focus.Side) tea.Cmd {
	d.Blur()
	return d.input(side).Focus()
}

// Blur removes focus from both inputs
func (d *DateInputs) Blur() {
	d.start.Blur()
	d.end.Blur()
}

// Focused returns the focused side, if any
func (d *DateInputs) Focused() (focus.Side, bool) {
	switch {
	case d.start.Focused():
		return focus.Start, true
	case d.end.Focused():
		return focus.End, true
	}
	return focus.Start, false
}

// Value returns the raw text of side
func (d *DateInputs) Value(side focus.Side) string {
	return d.input(side).Value()
}

// SetRange shows r in the inputs using the display layout
func (d *DateInputs) SetRange(r dates.Range) {
	d.start.SetValue(r.Start.Format(d.layout))
	d.end.SetValue(r.End.Format(d.layout))
}

// Update forwards a message to the focused input
func (d *DateInputs) Update(msg tea.Msg) tea.Cmd {
	side, ok := d.Focused()
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	in := d.input(side)
	*in, cmd = in.Update(msg)
	return cmd
}

// View renders the row, styling the box that owns focus
func (d *DateInputs) View(target focus.Target, active focus.Side) string {
	box := func(side focus.Side, in textinput.Model) string {
		style := inputBoxStyle
		switch {
		case (target == focus.TargetStartInput && side == focus.Start) ||
			(target == focus.TargetEndInput && side == focus.End):
			style = inputBoxFocusedStyle
		case target == focus.TargetCalendar && side == active:
			style = inputBoxCalendarStyle
		}
		return style.Width(d.width + 1 + style.GetHorizontalPadding()).Render(in.View())
	}

	if d.single {
		return box(focus.Start, d.start)
	}
	arrow := lipgloss.NewStyle().
		Height(d.BoxHeight()).
		AlignVertical(lipgloss.Center).
		Render(InputArrow)
	return lipgloss.JoinHorizontal(lipgloss.Top, box(focus.Start, d.start), arrow, box(focus.End, d.end))
}
