package tui

import (
	"strings"

	"github.com/MikeBiancalana/datespan/internal/geom"
	"github.com/charmbracelet/x/ansi"
)

// Page rows, relative to the top of the page content
const (
	pageIndent    = 2
	pageInputLine = 2
)

// Screen holds the fixed screen regions for a terminal size
type Screen struct {
	Width  int
	Height int

	TitleY  int
	Page    geom.Rect
	StatusY int
}

// CalculateScreen splits the terminal into title, page and status rows
func CalculateScreen(width, height int) Screen {
	s := Screen{Width: width, Height: height, TitleY: 0}
	s.Page = geom.Rect{X: 0, Y: 1, Width: width, Height: max(height-2, 0)}
	s.StatusY = max(height-1, 0)
	return s
}

// PageToScreen maps a page content line to a screen row given the page scroll
func (s Screen) PageToScreen(line, yOffset int) int {
	return s.Page.Y + line - yOffset
}

// Overlay draws fg on top of bg with its top-left corner at x, y.
// Lines of fg that fall outside bg are dropped.
func Overlay(bg, fg string, x, y int) string {
	x = max(x, 0)
	bgLines := strings.Split(bg, "\n")
	for i, line := range strings.Split(fg, "\n") {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}

		b := bgLines[row]
		if w := ansi.StringWidth(b); w < x {
			b += strings.Repeat(" ", x-w)
		}
		left := ansi.Truncate(b, x, "")
		right := ansi.TruncateLeft(b, x+ansi.StringWidth(line), "")
		bgLines[row] = left + line + right
	}
	return strings.Join(bgLines, "\n")
}

// fitLines pads or trims s to exactly n lines
func fitLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
