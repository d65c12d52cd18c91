package tui

import (
	"github.com/MikeBiancalana/datespan/internal/sync"
	tea "github.com/charmbracelet/bubbletea"
)

// Command Builders
//
// These functions create tea.Cmd values for async work. Values the closure
// needs are captured before it is returned.

// seedChangedMsg carries one reload of the watched seed file
type seedChangedMsg struct {
	change sync.SeedChange
}

// waitForSeedChange blocks on the watcher's next change
func waitForSeedChange(w *sync.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	changes := w.Changes()
	return func() tea.Msg {
		change, ok := <-changes
		if !ok {
			return nil
		}
		return seedChangedMsg{change: change}
	}
}
