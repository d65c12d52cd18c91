// Package selection holds the committed and working date ranges of a picker.
package selection

import (
	"github.com/MikeBiancalana/datespan/internal/dates"
	"github.com/MikeBiancalana/datespan/internal/logger"
)

// DefaultMinimumNights matches the picker's out-of-the-box behaviour
const DefaultMinimumNights = 1

// Options injects the eligibility strategies. Nil fields take the defaults.
type Options struct {
	Transform        dates.Transform
	IsDayBlocked     dates.DayPredicate
	IsOutsideRange   dates.DayPredicate
	IsDayHighlighted dates.DayPredicate
	MinimumNights    int
}

func (o Options) withDefaults() Options {
	if o.Transform == nil {
		o.Transform = dates.Identity
	}
	if o.IsDayBlocked == nil {
		o.IsDayBlocked = dates.DefaultIsDayBlocked
	}
	if o.IsOutsideRange == nil {
		o.IsOutsideRange = dates.DefaultIsOutsideRange
	}
	if o.IsDayHighlighted == nil {
		o.IsDayHighlighted = dates.Never
	}
	if o.MinimumNights < 0 {
		o.MinimumNights = 0
	}
	return o
}

// Controller owns the snapshot (last committed range) and the working range.
// Every mutation replaces both sides of a range at once.
type Controller struct {
	opts     Options
	snapshot dates.Range
	working  dates.Range
}

// NewController seeds both ranges from initial. The range is stored as given.
func NewController(initial dates.Range, opts Options) *Controller {
	return &Controller{
		opts:     opts.withDefaults(),
		snapshot: initial,
		working:  initial,
	}
}

// Snapshot returns the last committed range
func (c *Controller) Snapshot() dates.Range {
	return c.snapshot
}

// Working returns the live range shown in the inputs
func (c *Controller) Working() dates.Range {
	return c.working
}

// MinimumNights returns the smallest allowed number of nights
func (c *Controller) MinimumNights() int {
	return c.opts.MinimumNights
}

// IsDayBlocked reports whether day cannot be picked
func (c *Controller) IsDayBlocked(day dates.Value) bool {
	return c.opts.IsDayBlocked(day)
}

// IsOutsideRange reports whether day lies outside the selectable window
func (c *Controller) IsOutsideRange(day dates.Value) bool {
	return c.opts.IsOutsideRange(day)
}

// IsDayHighlighted reports whether day should be called out
func (c *Controller) IsDayHighlighted(day dates.Value) bool {
	return c.opts.IsDayHighlighted(day)
}

// IsSelectable reports whether day passes both eligibility predicates
func (c *Controller) IsSelectable(day dates.Value) bool {
	return !day.IsZero() && !c.IsDayBlocked(day) && !c.IsOutsideRange(day)
}

// FirstAllowedEnd returns the earliest end day for start under MinimumNights
func (c *Controller) FirstAllowedEnd(start dates.Value) dates.Value {
	return start.AddDays(c.opts.MinimumNights)
}

// AllowsEnd reports whether end is far enough from start
func (c *Controller) AllowsEnd(start, end dates.Value) bool {
	if start.IsZero() {
		return true
	}
	return dates.IsInclusivelyAfterDay(end, c.FirstAllowedEnd(start))
}

func (c *Controller) wrap(v dates.Value) dates.Value {
	if v.IsZero() {
		return v
	}
	return c.opts.Transform(v)
}

// OnDatesChange stores a new working range after the value transform.
// The snapshot is untouched.
func (c *Controller) OnDatesChange(start, end dates.Value) dates.Range {
	c.working = dates.NewRange(c.wrap(start), c.wrap(end))
	return c.working
}

// Apply commits next as the snapshot and returns the previous snapshot
func (c *Controller) Apply(next dates.Range) dates.Range {
	old := c.snapshot
	c.snapshot = next
	c.working = next
	logger.Debug("selection: applied", "old", old.String(), "new", next.String())
	return old
}

// Cancel discards the working range and returns the restored snapshot
func (c *Controller) Cancel() dates.Range {
	c.working = c.snapshot
	return c.working
}

// Collapse re-derives the working range from the snapshot, passing both
// sides through the transform. Returns whether the working range changed.
func (c *Controller) Collapse() bool {
	restored := dates.NewRange(c.wrap(c.snapshot.Start), c.wrap(c.snapshot.End))
	changed := !restored.Start.Equal(c.working.Start) || !restored.End.Equal(c.working.End)
	c.working = restored
	return changed
}

// Sync re-seeds the controller from externally supplied dates. Both ranges
// are replaced when either side differs from the snapshot by calendar day.
func (c *Controller) Sync(start, end dates.Value) bool {
	next := dates.NewRange(start, end)
	if next.SameDays(c.snapshot) {
		return false
	}
	if !next.Ordered() {
		logger.Warn("selection: host supplied an out-of-order range", "range", next.String())
	}
	c.snapshot = next
	c.working = next
	return true
}
