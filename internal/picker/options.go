// Package picker composes the focus machine, range selection, time editors
// and viewport engine into one date/time picker.
package picker

import (
	"github.com/MikeBiancalana/datespan/internal/dates"
	"github.com/MikeBiancalana/datespan/internal/focus"
	"github.com/MikeBiancalana/datespan/internal/selection"
	"github.com/MikeBiancalana/datespan/internal/viewport"
)

// Mode selects between a date range and a single date
type Mode int

const (
	ModeRange Mode = iota
	ModeSingle
)

func (m Mode) String() string {
	if m == ModeSingle {
		return "single"
	}
	return "range"
}

// Options configures an Engine. The zero value is a range picker with
// time editing, a 12-hour clock and the default day predicates.
type Options struct {
	Mode  Mode
	Start dates.Value
	End   dates.Value

	HideTime       bool
	Is24Hour       bool
	DisableMinutes bool
	// KeepOpenOnDateSelect leaves the popover open after a completing pick.
	// When false the completed range is applied and the popover closes.
	KeepOpenOnDateSelect bool

	AutoFocus        bool
	AutoFocusEndDate bool
	ReadOnly         bool
	KeepFocusOnInput bool
	IsTouchDevice    func() bool

	Anchor               viewport.Anchor
	OpenDirection        viewport.OpenDirection
	HorizontalMargin     int
	VerticalSpacing      int
	WithPortal           bool
	WithFullScreenPortal bool
	AppendToBody         bool
	DisableScroll        bool

	Selection selection.Options
}

func (o Options) focusOptions() focus.Options {
	return focus.Options{
		Policy: focus.Policy{
			WithPortal:           o.WithPortal,
			WithFullScreenPortal: o.WithFullScreenPortal,
			ReadOnly:             o.ReadOnly,
			KeepFocusOnInput:     o.KeepFocusOnInput,
			AppendToBody:         o.AppendToBody,
		},
		AutoFocus:        o.AutoFocus,
		AutoFocusEndDate: o.AutoFocusEndDate && o.Mode == ModeRange,
		IsTouchDevice:    o.IsTouchDevice,
	}
}

func (o Options) viewportConfig() viewport.Config {
	return viewport.Config{
		Anchor:               o.Anchor,
		OpenDirection:        o.OpenDirection,
		HorizontalMargin:     o.HorizontalMargin,
		VerticalSpacing:      o.VerticalSpacing,
		WithPortal:           o.WithPortal,
		WithFullScreenPortal: o.WithFullScreenPortal,
		AppendToBody:         o.AppendToBody,
		DisableScroll:        o.DisableScroll,
	}
}

// initialRange returns the seed range; single mode mirrors Start into End
func (o Options) initialRange() dates.Range {
	if o.Mode == ModeSingle {
		return dates.NewRange(o.Start, o.Start)
	}
	return dates.NewRange(o.Start, o.End)
}
