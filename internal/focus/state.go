package focus

import "fmt"

// Kind is the variant tag of a State
type Kind int

const (
	Closed Kind = iota
	InputFocused
	CalendarFocused
	ShowingShortcuts
)

// Side names one of the two date inputs
type Side int

const (
	Start Side = iota
	End
)

func (s Side) String() string {
	if s == End {
		return "end"
	}
	return "start"
}

// Target is the externally visible focus owner
type Target int

const (
	TargetNone Target = iota
	TargetStartInput
	TargetEndInput
	TargetCalendar
)

func (t Target) String() string {
	switch t {
	case TargetStartInput:
		return "start-input"
	case TargetEndInput:
		return "end-input"
	case TargetCalendar:
		return "calendar"
	default:
		return "none"
	}
}

// State is the focus/visibility state of a picker.
// The side is only carried by InputFocused, so combinations such as
// "shortcuts shown while closed" cannot be expressed.
type State struct {
	kind Kind
	side Side
}

// ClosedState is the zero State
func ClosedState() State { return State{} }

// InputState focuses one of the text inputs
func InputState(side Side) State { return State{kind: InputFocused, side: side} }

// CalendarState focuses the popover body
func CalendarState() State { return State{kind: CalendarFocused} }

// ShortcutsState focuses the popover body with the shortcuts panel shown
func ShortcutsState() State { return State{kind: ShowingShortcuts} }

// Kind returns the variant tag
func (s State) Kind() Kind { return s.kind }

// Side returns the focused input, if an input is focused
func (s State) Side() (Side, bool) {
	return s.side, s.kind == InputFocused
}

// Open reports whether the popover is visible
func (s State) Open() bool { return s.kind != Closed }

// ShortcutsVisible reports whether the shortcuts panel is shown
func (s State) ShortcutsVisible() bool { return s.kind == ShowingShortcuts }

// Target maps the state onto the externally visible focus owner
func (s State) Target() Target {
	switch s.kind {
	case InputFocused:
		if s.side == End {
			return TargetEndInput
		}
		return TargetStartInput
	case CalendarFocused, ShowingShortcuts:
		return TargetCalendar
	default:
		return TargetNone
	}
}

func (s State) String() string {
	switch s.kind {
	case InputFocused:
		return fmt.Sprintf("input(%s)", s.side)
	case CalendarFocused:
		return "calendar"
	case ShowingShortcuts:
		return "calendar+shortcuts"
	default:
		return "closed"
	}
}

// Reason records why a transition happened
type Reason int

const (
	ReasonFocus Reason = iota
	ReasonOutside
	ReasonFocusLost
	ReasonApply
	ReasonCancel
	ReasonExplicit
)

func (r Reason) String() string {
	switch r {
	case ReasonOutside:
		return "outside"
	case ReasonFocusLost:
		return "focus-lost"
	case ReasonApply:
		return "apply"
	case ReasonCancel:
		return "cancel"
	case ReasonExplicit:
		return "explicit"
	default:
		return "focus"
	}
}

// Transition is delivered to observers after every state change
type Transition struct {
	From   State
	To     State
	Reason Reason
}

// Opened reports whether the popover became visible
func (t Transition) Opened() bool { return !t.From.Open() && t.To.Open() }

// Closed reports whether the popover was hidden
func (t Transition) Closed() bool { return t.From.Open() && !t.To.Open() }
