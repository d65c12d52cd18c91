package focus

import (
	"github.com/MikeBiancalana/datespan/internal/events"
	"github.com/MikeBiancalana/datespan/internal/geom"
	"github.com/MikeBiancalana/datespan/internal/logger"
)

// Policy decides where focus goes when an input is focused
type Policy struct {
	WithPortal           bool
	WithFullScreenPortal bool
	ReadOnly             bool
	KeepFocusOnInput     bool
	// AppendToBody renders the popover detached from the container.
	// Pointer events inside it are not outside interactions.
	AppendToBody bool
}

// Options configures a Machine
type Options struct {
	Policy
	AutoFocus        bool
	AutoFocusEndDate bool
	// IsTouchDevice is queried once, when the machine is built
	IsTouchDevice func() bool
}

// Machine is the focus/visibility state machine for one picker.
// It owns the container handle and the low-level listeners attached to it.
type Machine struct {
	state  State
	side   Side
	policy Policy
	touch  bool

	observers []func(Transition)
	onResize  func(geom.Size)

	handle  *Handle
	escaped geom.Rect
}

// NewMachine creates a machine in its initial state
func NewMachine(opts Options) *Machine {
	m := &Machine{policy: opts.Policy}
	if opts.IsTouchDevice != nil {
		m.touch = opts.IsTouchDevice()
	}

	switch {
	case opts.AutoFocus:
		m.state = InputState(Start)
	case opts.AutoFocusEndDate:
		m.state = InputState(End)
		m.side = End
	}
	return m
}

// State returns the current state
func (m *Machine) State() State { return m.state }

// Target returns the current focus owner
func (m *Machine) Target() Target { return m.state.Target() }

// IsOpen reports whether the popover is visible
func (m *Machine) IsOpen() bool { return m.state.Open() }

// IsTouch reports the touch capability captured at construction
func (m *Machine) IsTouch() bool { return m.touch }

// ActiveSide returns the input the calendar is picking for
func (m *Machine) ActiveSide() Side { return m.side }

// Observe registers fn for every transition
func (m *Machine) Observe(fn func(Transition)) {
	m.observers = append(m.observers, fn)
}

// OnResize registers the handler for resize signals of the live container
func (m *Machine) OnResize(fn func(geom.Size)) {
	m.onResize = fn
}

// SetEscapedRegion records where a detached popover is drawn
func (m *Machine) SetEscapedRegion(r geom.Rect) {
	m.escaped = r
}

func (m *Machine) transition(to State, reason Reason) bool {
	from := m.state
	if from == to {
		return false
	}
	m.state = to
	if side, ok := to.Side(); ok {
		m.side = side
	}

	logger.Debug("focus: transition", "from", from.String(), "to", to.String(), "reason", reason.String())

	t := Transition{From: from, To: to, Reason: reason}
	for _, fn := range m.observers {
		fn(t)
	}
	return true
}

// moveFocusToCalendar reports whether focusing an input should land on the calendar
func (m *Machine) moveFocusToCalendar() bool {
	p := m.policy
	return p.WithPortal || p.WithFullScreenPortal ||
		(p.ReadOnly && !p.KeepFocusOnInput) ||
		(m.touch && !p.KeepFocusOnInput)
}

// FocusInput focuses one of the inputs, or the calendar when the policy
// requires control to move there
func (m *Machine) FocusInput(side Side) {
	m.side = side
	if m.moveFocusToCalendar() {
		m.transition(CalendarState(), ReasonFocus)
		return
	}
	m.transition(InputState(side), ReasonFocus)
}

// FocusCalendar moves focus into the popover body and hides shortcuts
func (m *Machine) FocusCalendar() {
	m.transition(CalendarState(), ReasonFocus)
}

// BlurCalendar hands focus back to the active input
func (m *Machine) BlurCalendar() {
	if m.state.kind != CalendarFocused && m.state.kind != ShowingShortcuts {
		return
	}
	m.transition(InputState(m.side), ReasonFocus)
}

// RequestShortcuts shows the keyboard shortcuts panel
func (m *Machine) RequestShortcuts() {
	m.transition(ShortcutsState(), ReasonFocus)
}

// SelectSide changes which input the calendar picks for.
// A focused input follows; calendar focus is kept.
func (m *Machine) SelectSide(side Side) {
	m.side = side
	if m.state.kind == InputFocused {
		m.transition(InputState(side), ReasonFocus)
	}
}

// Close hides the popover
func (m *Machine) Close(reason Reason) bool {
	return m.transition(ClosedState(), reason)
}

// OutsideInteraction handles a pointer event outside the widget.
// Returns whether the popover was closed.
func (m *Machine) OutsideInteraction(p geom.Point) bool {
	if !m.state.Open() {
		return false
	}
	if m.policy.AppendToBody && m.escaped.Contains(p) {
		return false
	}
	return m.Close(ReasonOutside)
}

// Mount attaches the machine to a container. Mounting the live container
// again is a no-op; a new container releases the old handle first.
func (m *Machine) Mount(el Element, src events.Source) *Handle {
	if m.handle != nil && !m.handle.released && m.handle.el == el {
		return m.handle
	}
	m.Unmount()
	if el == nil {
		return nil
	}

	h := newHandle(el)
	h.own(src.OnFocusLoss(func(related *geom.Point) {
		m.LostContainerFocus(h, related)
	}))
	h.own(src.OnResize(func(size geom.Size) {
		m.resized(h, size)
	}))
	m.handle = h

	logger.Debug("focus: mounted container", "handle", h.ID())
	return h
}

// Unmount releases the live container handle, if any
func (m *Machine) Unmount() {
	if m.handle == nil {
		return
	}
	logger.Debug("focus: releasing container", "handle", m.handle.ID())
	m.handle.Release()
	m.handle = nil
}

// Handle returns the live container handle
func (m *Machine) Handle() *Handle {
	return m.handle
}

func (m *Machine) live(h *Handle) bool {
	return h != nil && h == m.handle && !h.released
}

// LostContainerFocus closes the popover unless focus moved to somewhere
// inside the container. Signals from a replaced handle are ignored.
func (m *Machine) LostContainerFocus(h *Handle, related *geom.Point) bool {
	if !m.live(h) {
		logger.Debug("focus: ignoring focus loss from stale container")
		return false
	}
	if !m.state.Open() {
		return false
	}
	if related != nil && (h.Contains(*related) || (m.policy.AppendToBody && m.escaped.Contains(*related))) {
		return false
	}
	return m.Close(ReasonFocusLost)
}

func (m *Machine) resized(h *Handle, size geom.Size) {
	if !m.live(h) {
		return
	}
	if m.onResize != nil && m.state.Open() {
		m.onResize(size)
	}
}
