package dates

import (
	"sync"
	"time"
)

// DayPredicate answers an eligibility question about a calendar day
type DayPredicate func(day Value) bool

// Transform maps every interactively produced date before it is stored
type Transform func(Value) Value

var (
	referenceOnce sync.Once
	referenceNoon Value
)

// TodayAtNoon returns today's date at 12:00, fixed the first time it is called.
// Later calls return the same instant for the rest of the process.
func TodayAtNoon() Value {
	referenceOnce.Do(func() {
		referenceNoon = atNoon(time.Now())
	})
	return referenceNoon
}

func atNoon(now time.Time) Value {
	y, m, d := now.Date()
	return Value{t: time.Date(y, m, d, 12, 0, 0, 0, now.Location())}
}

// Identity is the default Transform
func Identity(v Value) Value {
	return v
}

// Never is a DayPredicate that is always false
func Never(Value) bool {
	return false
}

// BlockedBefore returns a predicate blocking every day strictly before ref
func BlockedBefore(ref Value) DayPredicate {
	return func(day Value) bool {
		return day.Before(ref)
	}
}

// OutsideBefore returns a predicate that rejects days not on or after now()
func OutsideBefore(now func() time.Time) DayPredicate {
	return func(day Value) bool {
		return !IsInclusivelyAfterDay(day, New(now()))
	}
}

// DefaultIsDayBlocked blocks every day before today at noon
func DefaultIsDayBlocked(day Value) bool {
	return BlockedBefore(TodayAtNoon())(day)
}

// DefaultIsOutsideRange rejects days before the current date
func DefaultIsOutsideRange(day Value) bool {
	return OutsideBefore(time.Now)(day)
}
