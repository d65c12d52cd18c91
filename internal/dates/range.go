package dates

// Range is a possibly incomplete date range. Either side may be null.
//
// When both sides are set callers are expected to keep Start <= End.
// Range does not reorder its sides; see Ordered.
type Range struct {
	Start Value
	End   Value
}

// NewRange builds a Range from two values
func NewRange(start, end Value) Range {
	return Range{Start: start, End: end}
}

// Complete reports whether both sides are set
func (r Range) Complete() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}

// Empty reports whether neither side is set
func (r Range) Empty() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Ordered reports whether the range honours Start <= End.
// Incomplete ranges are trivially ordered.
func (r Range) Ordered() bool {
	if !r.Complete() {
		return true
	}
	return !r.End.Before(r.Start)
}

// Nights returns the number of nights between Start and End, or 0 if incomplete
func (r Range) Nights() int {
	if !r.Complete() {
		return 0
	}
	return r.Start.DaysUntil(r.End)
}

// SameDays reports whether both sides of r and o fall on the same days
func (r Range) SameDays(o Range) bool {
	return r.Start.SameDay(o.Start) && r.End.SameDay(o.End)
}

// Contains reports whether day lies on or between Start and End
func (r Range) Contains(day Value) bool {
	if !r.Complete() || day.IsZero() {
		return false
	}
	return IsInclusivelyAfterDay(day, r.Start) && IsInclusivelyAfterDay(r.End, day)
}

// String renders the range as "start → end" with blanks for null sides
func (r Range) String() string {
	start := r.Start.String()
	if start == "" {
		start = "…"
	}
	end := r.End.String()
	if end == "" {
		end = "…"
	}
	return start + " → " + end
}
