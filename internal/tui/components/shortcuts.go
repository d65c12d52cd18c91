package components

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

var shortcutsTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

// ShortcutsPanel renders the full key help in a fixed size area
func ShortcutsPanel(keys help.KeyMap, width, height int) string {
	h := help.New()
	h.ShowAll = true
	h.Width = width

	body := shortcutsTitleStyle.Render("Keyboard shortcuts") + "\n\n" + h.View(keys)
	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(body)
}
