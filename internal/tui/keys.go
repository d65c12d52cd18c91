package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds every binding the picker responds to
type keyMap struct {
	Quit       key.Binding
	Open       key.Binding
	OpenEnd    key.Binding
	Done       key.Binding
	Next       key.Binding
	Prev       key.Binding
	Cancel     key.Binding
	Commit     key.Binding
	ToCalendar key.Binding

	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	WeekStart key.Binding
	WeekEnd   key.Binding
	Pick      key.Binding
	Apply     key.Binding
	Shortcuts key.Binding

	Increment key.Binding
	Decrement key.Binding
	PrevField key.Binding
	NextField key.Binding
	Meridiem  key.Binding
	Clear     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Open:       key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter", "open")),
		OpenEnd:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "end date")),
		Done:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		Next:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:       key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "back")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Commit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "set date")),
		ToCalendar: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "calendar")),

		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous day")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous week")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		PrevMonth: key.NewBinding(key.WithKeys("pgup", "["), key.WithHelp("pgup/[", "previous month")),
		NextMonth: key.NewBinding(key.WithKeys("pgdown", "]"), key.WithHelp("pgdn/]", "next month")),
		WeekStart: key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "start of week")),
		WeekEnd:   key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "end of week")),
		Pick:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "select day")),
		Apply:     key.NewBinding(key.WithKeys("a", "ctrl+s"), key.WithHelp("a", "apply")),
		Shortcuts: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "shortcuts")),

		Increment: key.NewBinding(key.WithKeys("up", "k", "+"), key.WithHelp("↑/+", "increase")),
		Decrement: key.NewBinding(key.WithKeys("down", "j", "-"), key.WithHelp("↓/-", "decrease")),
		PrevField: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "previous field")),
		NextField: key.NewBinding(key.WithKeys("right", "l", ":"), key.WithHelp("→", "next field")),
		Meridiem:  key.NewBinding(key.WithKeys(" ", "m"), key.WithHelp("space/m", "am/pm")),
		Clear:     key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("⌫", "clear")),
	}
}

// contextKeys is the help.KeyMap for one focus context
type contextKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

func (c contextKeys) ShortHelp() []key.Binding  { return c.short }
func (c contextKeys) FullHelp() [][]key.Binding { return c.full }

func (k keyMap) closedHelp() contextKeys {
	return contextKeys{short: []key.Binding{k.Open, k.OpenEnd, k.Next, k.Quit}}
}

func (k keyMap) inputHelp() contextKeys {
	return contextKeys{short: []key.Binding{k.Commit, k.ToCalendar, k.Next, k.Cancel}}
}

func (k keyMap) calendarHelp() contextKeys {
	return contextKeys{
		short: []key.Binding{k.Pick, k.Apply, k.Next, k.Shortcuts, k.Cancel},
		full: [][]key.Binding{
			{k.Left, k.Right, k.Up, k.Down},
			{k.PrevMonth, k.NextMonth, k.WeekStart, k.WeekEnd},
			{k.Pick, k.Apply, k.Next, k.Prev, k.Cancel, k.Shortcuts},
		},
	}
}

func (k keyMap) timeHelp() contextKeys {
	return contextKeys{short: []key.Binding{k.Increment, k.Decrement, k.NextField, k.Meridiem, k.Apply, k.Next}}
}
