// Package timeedit holds the hour/minute/meridiem state behind a time input.
//
// The three fields are scratch state. The authoritative value is always the
// recomposition of the fields, which is pushed out through the change hook.
package timeedit

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MikeBiancalana/datespan/internal/logger"
)

// FieldType identifies one of the editable fields
type FieldType string

const (
	Hour     FieldType = "hour"
	Minute   FieldType = "minute"
	Meridiem FieldType = "meridiem"
)

// Format tags used when composing the time value
const (
	Format24Hour = "HH"
	Format12Hour = "hh"
	FormatMinute = "mm"
	FormatAMPM   = "a"
)

const (
	AM = "am"
	PM = "pm"
)

// layouts maps a format tag to its Go layout fragment
var layouts = map[string]string{
	Format24Hour: "15",
	Format12Hour: "03",
	FormatMinute: "04",
	FormatAMPM:   "pm",
}

// Field is a bounded numeric field. Value is zero-padded to two digits,
// or blank while the user is typing.
type Field struct {
	Min    int
	Max    int
	Format string
	Value  string
}

// inBounds reports whether n is an acceptable value for f
func (f Field) inBounds(n int) bool {
	return n >= f.Min && n <= f.Max
}

// Options configures an Editor
type Options struct {
	Is24Hour       bool
	DisableMinutes bool
	// OnChange receives every recomposed time value
	OnChange func(time.Time)
}

// Editor owns the field state for one time value
type Editor struct {
	hour     Field
	minute   Field
	meridiem string

	is24Hour       bool
	disableMinutes bool
	bound          time.Time
	onChange       func(time.Time)
}

// New creates an editor bound to t
func New(t time.Time, opts Options) *Editor {
	e := &Editor{
		disableMinutes: opts.DisableMinutes,
		onChange:       opts.OnChange,
	}
	e.reset(t, opts.Is24Hour)
	return e
}

// reset recomputes every field from t, discarding local edits
func (e *Editor) reset(t time.Time, is24Hour bool) {
	e.bound = t
	e.is24Hour = is24Hour

	hourFormat := Format12Hour
	minHour, maxHour := 1, 12
	if is24Hour {
		hourFormat = Format24Hour
		minHour, maxHour = 0, 23
	}

	e.hour = Field{Min: minHour, Max: maxHour, Format: hourFormat, Value: t.Format(layouts[hourFormat])}
	e.minute = Field{Min: 0, Max: 59, Format: FormatMinute, Value: t.Format(layouts[FormatMinute])}
	e.meridiem = t.Format(layouts[FormatAMPM])
}

// Sync rebinds the editor to an externally supplied time or hour mode.
// It is a no-op when neither changed.
func (e *Editor) Sync(t time.Time, is24Hour bool) {
	if t.Equal(e.bound) && is24Hour == e.is24Hour {
		return
	}
	e.reset(t, is24Hour)
}

// Discard drops unpublished field edits
func (e *Editor) Discard() {
	e.reset(e.bound, e.is24Hour)
}

// Bound returns the authoritative time value
func (e *Editor) Bound() time.Time {
	return e.bound
}

// Is24Hour reports the hour mode
func (e *Editor) Is24Hour() bool {
	return e.is24Hour
}

// MinutesDisabled reports whether the minute field is read-only
func (e *Editor) MinutesDisabled() bool {
	return e.disableMinutes
}

// Field returns a copy of the hour or minute field
func (e *Editor) Field(ft FieldType) Field {
	if f := e.field(ft); f != nil {
		return *f
	}
	return Field{}
}

// MeridiemValue returns "am" or "pm"
func (e *Editor) MeridiemValue() string {
	return e.meridiem
}

func (e *Editor) field(ft FieldType) *Field {
	switch ft {
	case Hour:
		return &e.hour
	case Minute:
		return &e.minute
	}
	return nil
}

func (e *Editor) editable(ft FieldType) *Field {
	if ft == Minute && e.disableMinutes {
		return nil
	}
	return e.field(ft)
}

// SetField applies raw typed input to a field.
// Blank input is held without notifying. Numeric input inside the bounds is
// stored zero-padded. Anything else leaves the field unchanged.
// Returns whether the input was accepted.
func (e *Editor) SetField(ft FieldType, raw string) bool {
	f := e.editable(ft)
	if f == nil {
		return false
	}

	if strings.TrimSpace(raw) == "" {
		f.Value = ""
		return true
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || !f.inBounds(n) {
		logger.Debug("timeedit: rejected field input", "field", ft, "input", raw)
		return false
	}
	f.Value = pad(n)
	return true
}

// CommitField finishes editing a field. Blank fields are restored from the
// bound time, then the time value is recomposed and published.
func (e *Editor) CommitField(ft FieldType) {
	e.publish()
}

// Increment steps a field up, wrapping from Max to Min
func (e *Editor) Increment(ft FieldType) {
	e.step(ft, 1)
}

// Decrement steps a field down, wrapping from Min to Max
func (e *Editor) Decrement(ft FieldType) {
	e.step(ft, -1)
}

func (e *Editor) step(ft FieldType, delta int) {
	f := e.editable(ft)
	if f == nil {
		return
	}

	n, err := strconv.Atoi(f.Value)
	if err != nil {
		// A blank field steps from the bound value
		n, _ = strconv.Atoi(e.bound.Format(layouts[f.Format]))
	}

	n += delta
	if n > f.Max {
		n = f.Min
	} else if n < f.Min {
		n = f.Max
	}
	f.Value = pad(n)
	e.publish()
}

// ToggleMeridiem flips between am and pm
func (e *Editor) ToggleMeridiem() {
	switch e.meridiem {
	case AM:
		e.meridiem = PM
	case PM:
		e.meridiem = AM
	default:
		return
	}
	e.publish()
}

// Time recomposes the fields into a time on the bound value's date
func (e *Editor) Time() (time.Time, error) {
	value := e.hour.Value + ":" + e.minute.Value
	layout := layouts[e.hour.Format] + ":" + layouts[e.minute.Format]
	if !e.is24Hour {
		value += " " + e.meridiem
		layout += " " + layouts[FormatAMPM]
	}

	clock, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to compose time %q: %w", value, err)
	}

	y, m, d := e.bound.Date()
	return time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, e.bound.Location()), nil
}

// restoreBlank refills blank fields from the bound time
func (e *Editor) restoreBlank() {
	for _, f := range []*Field{&e.hour, &e.minute} {
		if strings.TrimSpace(f.Value) == "" {
			f.Value = e.bound.Format(layouts[f.Format])
		}
	}
}

// publish restores blank fields, recomposes the value, rebinds to it and
// notifies the listener
func (e *Editor) publish() {
	e.restoreBlank()
	t, err := e.Time()
	if err != nil {
		logger.Debug("timeedit: skipping publish", "error", err)
		return
	}
	e.bound = t
	if e.onChange != nil {
		e.onChange(t)
	}
}

// String renders the fields as the user sees them, e.g. "09:30 pm"
func (e *Editor) String() string {
	s := e.hour.Value + ":" + e.minute.Value
	if !e.is24Hour {
		s += " " + e.meridiem
	}
	return s
}

func pad(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
