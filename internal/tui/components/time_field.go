package components

import (
	"fmt"

	"github.com/MikeBiancalana/datespan/internal/timeedit"
	"github.com/charmbracelet/lipgloss"
)

var (
	timeFieldStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	timeFieldActiveStyle = lipgloss.NewStyle().Background(lipgloss.Color("39")).Foreground(lipgloss.Color("0"))
	timeFieldLockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	timeLabelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// TimeViewWidth returns the cell width of a rendered time value
func TimeViewWidth(is24Hour bool) int {
	if is24Hour {
		return 5
	}
	return 8
}

// TimeFieldAt maps an x offset within a time view to its field
func TimeFieldAt(x int, is24Hour bool) (timeedit.FieldType, bool) {
	switch {
	case x == 0 || x == 1:
		return timeedit.Hour, true
	case x == 3 || x == 4:
		return timeedit.Minute, true
	case !is24Hour && (x == 6 || x == 7):
		return timeedit.Meridiem, true
	}
	return "", false
}

// TimeView renders an editor as "hh:mm am". The active field is
// highlighted when focused.
func TimeView(ed *timeedit.Editor, focused bool, active timeedit.FieldType) string {
	render := func(ft timeedit.FieldType, value string) string {
		style := timeFieldStyle
		if ft == timeedit.Minute && ed.MinutesDisabled() {
			style = timeFieldLockedStyle
		}
		if focused && ft == active {
			style = timeFieldActiveStyle
		}
		return style.Render(fmt.Sprintf("%2s", value))
	}

	s := render(timeedit.Hour, ed.Field(timeedit.Hour).Value) + ":" +
		render(timeedit.Minute, ed.Field(timeedit.Minute).Value)
	if !ed.Is24Hour() {
		s += " " + render(timeedit.Meridiem, ed.MeridiemValue())
	}
	return s
}

// TimeLabel renders the label in front of a time view
func TimeLabel(label string) string {
	return timeLabelStyle.Render(label)
}
