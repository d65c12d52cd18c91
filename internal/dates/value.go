package dates

import "time"

// Value is an immutable calendar date and time.
// The zero Value is "no date" and compares before every set value.
type Value struct {
	t time.Time
}

// New wraps t. A zero time yields the null Value.
func New(t time.Time) Value {
	return Value{t: t}
}

// Date builds a Value at midnight of the given day in loc
func Date(year int, month time.Month, day int, loc *time.Location) Value {
	if loc == nil {
		loc = time.Local
	}
	return Value{t: time.Date(year, month, day, 0, 0, 0, 0, loc)}
}

// IsZero reports whether v is the null Value
func (v Value) IsZero() bool {
	return v.t.IsZero()
}

// Time returns the underlying time
func (v Value) Time() time.Time {
	return v.t
}

// Before reports whether v is strictly before o
func (v Value) Before(o Value) bool {
	return v.t.Before(o.t)
}

// After reports whether v is strictly after o
func (v Value) After(o Value) bool {
	return v.t.After(o.t)
}

// Equal reports whether v and o are the same instant, or both null
func (v Value) Equal(o Value) bool {
	return v.t.Equal(o.t)
}

// SameDay reports whether v and o fall on the same calendar day.
// Two null values are the same day; a null and a set value are not.
func (v Value) SameDay(o Value) bool {
	if v.IsZero() || o.IsZero() {
		return v.IsZero() == o.IsZero()
	}
	y1, m1, d1 := v.t.Date()
	y2, m2, d2 := o.t.In(v.t.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// AddDays moves v by n calendar days, keeping the clock time
func (v Value) AddDays(n int) Value {
	if v.IsZero() {
		return v
	}
	return Value{t: v.t.AddDate(0, 0, n)}
}

// StartOfDay returns midnight of v's day
func (v Value) StartOfDay() Value {
	if v.IsZero() {
		return v
	}
	y, m, d := v.t.Date()
	return Value{t: time.Date(y, m, d, 0, 0, 0, 0, v.t.Location())}
}

// WithClock returns v's day at the hour and minute of clock
func (v Value) WithClock(clock time.Time) Value {
	if v.IsZero() {
		return v
	}
	y, m, d := v.t.Date()
	return Value{t: time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, v.t.Location())}
}

// DaysUntil returns the number of calendar days from v to o
func (v Value) DaysUntil(o Value) int {
	a := v.StartOfDay().t
	b := o.StartOfDay().t
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	// Compare in UTC so DST shifts do not shave an hour off a day.
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// Format formats v with a Go layout; the null Value formats as ""
func (v Value) Format(layout string) string {
	if v.IsZero() {
		return ""
	}
	return v.t.Format(layout)
}

// String formats v as YYYY-MM-DD
func (v Value) String() string {
	return v.Format(ISOLayout)
}

// IsInclusivelyAfterDay reports whether a falls on or after b's day
func IsInclusivelyAfterDay(a, b Value) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return !a.StartOfDay().Before(b.StartOfDay())
}

// Noon builds a Value at 12:00 of the given day in loc.
// Calendar days are produced at noon so day predicates compare stably.
func Noon(year int, month time.Month, day int, loc *time.Location) Value {
	if loc == nil {
		loc = time.Local
	}
	return Value{t: time.Date(year, month, day, 12, 0, 0, 0, loc)}
}
