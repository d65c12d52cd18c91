// Package viewport keeps the popover anchored to its inputs and on screen.
package viewport

import (
	"github.com/MikeBiancalana/datespan/internal/geom"
)

// Anchor is the horizontal side of the inputs the popover aligns to
type Anchor int

const (
	AnchorLeft Anchor = iota
	AnchorRight
)

func (a Anchor) String() string {
	if a == AnchorRight {
		return "right"
	}
	return "left"
}

// ParseAnchor maps "left"/"right" to an Anchor, defaulting to right
func ParseAnchor(s string) Anchor {
	if s == "left" {
		return AnchorLeft
	}
	return AnchorRight
}

// OpenDirection is the vertical side the popover opens towards
type OpenDirection int

const (
	OpenDown OpenDirection = iota
	OpenUp
)

func (d OpenDirection) String() string {
	if d == OpenUp {
		return "up"
	}
	return "down"
}

// ParseOpenDirection maps "up"/"down" to an OpenDirection, defaulting to down
func ParseOpenDirection(s string) OpenDirection {
	if s == "up" {
		return OpenUp
	}
	return OpenDown
}

// Config is the positioning configuration of one picker
type Config struct {
	Anchor               Anchor
	OpenDirection        OpenDirection
	HorizontalMargin     int
	VerticalSpacing      int
	WithPortal           bool
	WithFullScreenPortal bool
	AppendToBody         bool
	DisableScroll        bool
}

// Portal reports whether any overlay portal is used
func (c Config) Portal() bool {
	return c.WithPortal || c.WithFullScreenPortal
}

// Geometry is what the host measured for one recompute
type Geometry struct {
	Popover   geom.Size
	Container geom.Rect
	Window    geom.Size
}

// Measurer supplies the current geometry
type Measurer interface {
	Measure() Geometry
}

// MeasurerFunc adapts a func to Measurer
type MeasurerFunc func() Geometry

func (f MeasurerFunc) Measure() Geometry { return f() }

// Detached is the translation applied to a popover rendered outside the flow
type Detached struct {
	OffsetX int
	OffsetY int
}

// Styles is the computed offset keyed by anchor side. The zero Offset is
// neutral; negative values pull the popover back inside the window.
type Styles struct {
	Anchor   Anchor
	Offset   int
	Detached *Detached
}

// Neutral reports whether the styles carry no adjustment
func (s Styles) Neutral() bool {
	return s.Offset == 0 && s.Detached == nil
}

// ResponsiveOffset computes the anchor-side offset that keeps the popover's
// far edge within the window, biased by margin. Never positive.
func ResponsiveOffset(anchor Anchor, currentOffset, containerEdge, windowWidth, margin int) int {
	calculated := containerEdge
	if anchor == AnchorLeft {
		calculated = windowWidth - containerEdge
	}
	return min(currentOffset+calculated-margin, 0)
}

// DetachedOffsets computes the translation for a detached popover from the
// reference container's rect
func DetachedOffsets(dir OpenDirection, anchor Anchor, ref geom.Rect, window geom.Size) Detached {
	d := Detached{OffsetX: ref.Left(), OffsetY: ref.Top()}
	if dir == OpenUp {
		d.OffsetY = -(window.Height - ref.Bottom())
	}
	if anchor == AnchorRight {
		d.OffsetX = -(window.Width - ref.Right())
	}
	return d
}

// Placement maps styles onto an absolute rect for a popover of the given size
func Placement(cfg Config, s Styles, g Geometry) geom.Rect {
	pop := g.Popover
	r := geom.Rect{Width: pop.Width, Height: pop.Height}

	switch {
	case cfg.WithFullScreenPortal:
		r.Width, r.Height = g.Window.Width, g.Window.Height
		return r
	case cfg.WithPortal:
		r.X = max((g.Window.Width-pop.Width)/2, 0)
		r.Y = max((g.Window.Height-pop.Height)/2, 0)
		return r
	}

	ref := g.Container
	if s.Detached != nil {
		// Undo the translation to land back on the reference edges
		left := s.Detached.OffsetX
		right := g.Window.Width + s.Detached.OffsetX
		top := s.Detached.OffsetY
		bottom := g.Window.Height + s.Detached.OffsetY
		if cfg.Anchor == AnchorRight {
			ref.X = right - ref.Width
		} else {
			ref.X = left
		}
		if cfg.OpenDirection == OpenUp {
			ref.Y = bottom - ref.Height
		} else {
			ref.Y = top
		}
	}

	if cfg.Anchor == AnchorRight {
		r.X = ref.Right() - pop.Width - s.Offset
	} else {
		r.X = ref.Left() + s.Offset
	}
	if cfg.OpenDirection == OpenUp {
		r.Y = ref.Top() - cfg.VerticalSpacing - pop.Height
	} else {
		r.Y = ref.Bottom() + cfg.VerticalSpacing
	}
	return r
}
