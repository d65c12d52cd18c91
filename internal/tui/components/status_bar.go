package components

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	statusMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("40")).
				Background(lipgloss.Color("236"))

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Background(lipgloss.Color("236"))
)

// StatusBar shows context key hints and the latest message
type StatusBar struct {
	help    help.Model
	width   int
	message string
	err     error
}

// NewStatusBar creates a new status bar
func NewStatusBar() *StatusBar {
	return &StatusBar{help: help.New()}
}

// SetWidth sets the width of the status bar
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
	sb.help.Width = max(width-2, 0)
}

// SetMessage shows an informational message, clearing any error
func (sb *StatusBar) SetMessage(msg string) {
	sb.message = msg
	sb.err = nil
}

// SetError shows an error, clearing any message
func (sb *StatusBar) SetError(err error) {
	sb.err = err
	sb.message = ""
}

// Message returns the informational message
func (sb *StatusBar) Message() string {
	return sb.message
}

// Err returns the shown error
func (sb *StatusBar) Err() error {
	return sb.err
}

// View renders the status bar with hints for keys
func (sb *StatusBar) View(keys help.KeyMap) string {
	content := sb.help.ShortHelpView(keys.ShortHelp())
	switch {
	case sb.err != nil:
		content = statusErrorStyle.Render("✗ "+sb.err.Error()) + "  " + content
	case sb.message != "":
		content = statusMessageStyle.Render(sb.message) + "  " + content
	}
	return statusBarStyle.Width(sb.width).MaxHeight(1).Render(content)
}
