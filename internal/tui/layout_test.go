package tui

import (
	"strings"
	"testing"

	"github.com/MikeBiancalana/datespan/internal/geom"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestCalculateScreen(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantPage      geom.Rect
		wantStatusY   int
	}{
		{"standard 80x24", 80, 24, geom.Rect{Y: 1, Width: 80, Height: 22}, 23},
		{"tall 100x50", 100, 50, geom.Rect{Y: 1, Width: 100, Height: 48}, 49},
		{"tiny", 10, 1, geom.Rect{Y: 1, Width: 10, Height: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := CalculateScreen(tt.width, tt.height)
			assert.Equal(t, tt.wantPage, s.Page)
			assert.Equal(t, tt.wantStatusY, s.StatusY)
		})
	}
}

func TestPageToScreen(t *testing.T) {
	s := CalculateScreen(80, 24)
	assert.Equal(t, 3, s.PageToScreen(2, 0))
	assert.Equal(t, 1, s.PageToScreen(2, 2))
	assert.Equal(t, -1, s.PageToScreen(2, 4))
}

func TestOverlay(t *testing.T) {
	bg := "..........\n..........\n.........."

	got := Overlay(bg, "ab\ncd", 3, 1)

	assert.Equal(t, "..........\n...ab.....\n...cd.....", got)
}

func TestOverlayPadsShortLines(t *testing.T) {
	got := Overlay("..\n..", "xy", 4, 0)
	assert.Equal(t, "..  xy\n..", got)
}

func TestOverlayClipsRows(t *testing.T) {
	got := Overlay("....\n....", "a\nb\nc", 0, 1)
	assert.Equal(t, "....\na...", got)
}

func TestOverlayKeepsStyledBackground(t *testing.T) {
	bg := "\x1b[1mbold text\x1b[0m"
	got := Overlay(bg, "XX", 2, 0)
	assert.Equal(t, "boXX text", ansi.Strip(got))
	assert.True(t, strings.HasPrefix(got, "\x1b[1m"))
}

func TestFitLines(t *testing.T) {
	assert.Equal(t, "a\nb\n", fitLines("a\nb", 3))
	assert.Equal(t, "a", fitLines("a\nb\nc", 1))
}
