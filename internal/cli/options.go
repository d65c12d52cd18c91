package cli

import (
	"github.com/MikeBiancalana/datespan/internal/config"
	"github.com/MikeBiancalana/datespan/internal/dates"
	"github.com/MikeBiancalana/datespan/internal/picker"
	"github.com/MikeBiancalana/datespan/internal/selection"
	"github.com/MikeBiancalana/datespan/internal/viewport"
)

// pickerOptions maps persisted settings onto engine options
func pickerOptions(s config.Settings, mode picker.Mode) picker.Options {
	opts := picker.Options{
		Mode:                 mode,
		HideTime:             s.HideTime,
		Is24Hour:             s.Is24Hour,
		DisableMinutes:       s.DisableMinutes,
		KeepOpenOnDateSelect: s.KeepOpenOnDateSelect,
		ReadOnly:             s.ReadOnly,
		KeepFocusOnInput:     s.KeepFocusOnInput,
		Anchor:               viewport.ParseAnchor(s.Anchor),
		OpenDirection:        viewport.ParseOpenDirection(s.OpenDirection),
		HorizontalMargin:     s.HorizontalMargin,
		VerticalSpacing:      s.VerticalSpacing,
		WithPortal:           s.Portal == config.PortalCentered,
		WithFullScreenPortal: s.Portal == config.PortalFullScreen,
		AppendToBody:         s.AppendToBody,
		DisableScroll:        s.DisableScroll,
		Selection: selection.Options{
			MinimumNights: s.MinimumNights,
		},
	}

	touch := s.IsTouchDevice()
	opts.IsTouchDevice = func() bool { return touch }

	if s.AllowPast {
		opts.Selection.IsDayBlocked = dates.Never
		opts.Selection.IsOutsideRange = dates.Never
	}
	return opts
}
