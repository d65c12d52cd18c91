package dates

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// ISOLayout is the canonical date layout
	ISOLayout = "2006-01-02"
	// DefaultDisplayLayout mirrors the short US locale date format
	DefaultDisplayLayout = "01/02/2006"
)

var (
	ErrEmptyInput    = errors.New("empty input")
	ErrInvalidFormat = errors.New("invalid date format")
)

// Parse resolves a typed date expression relative to the current time.
// Supports:
// - "t" or "today" - today
// - "tm" or "tomorrow" - tomorrow
// - "mon", "tue", "wed", "thu", "fri", "sat", "sun" - next occurrence of weekday
// - "+3d" - 3 days from now
// - "+2w" - 2 weeks from now
// - "YYYY-MM-DD" or the display layout - absolute date
func Parse(input, displayLayout string) (Value, error) {
	return ParseWithNow(input, displayLayout, time.Now())
}

// ParseWithNow is Parse with an explicit "now", results are at noon
func ParseWithNow(input, displayLayout string, now time.Time) (Value, error) {
	input = strings.TrimSpace(strings.ToLower(input))

	if input == "" {
		return Value{}, ErrEmptyInput
	}

	for _, layout := range []string{ISOLayout, displayLayout} {
		if layout == "" || len(input) != len(layout) {
			continue
		}
		parsed, err := time.ParseInLocation(layout, input, now.Location())
		if err != nil {
			continue
		}
		// time.Parse rejects 2025-02-30 already; the day check guards layouts
		// that are looser about field widths.
		result := Noon(parsed.Year(), parsed.Month(), parsed.Day(), now.Location())
		if result.t.Day() != parsed.Day() {
			return Value{}, fmt.Errorf("%w: %s", ErrInvalidFormat, input)
		}
		return result, nil
	}

	today := Noon(now.Year(), now.Month(), now.Day(), now.Location())

	// Handle "today" or "t"
	if input == "t" || input == "today" {
		return today, nil
	}

	// Handle "tomorrow" or "tm"
	if input == "tm" || input == "tomorrow" {
		return today.AddDays(1), nil
	}

	// Handle "+Nd" and "+Nw"
	if strings.HasPrefix(input, "+") && len(input) > 2 {
		unit := input[len(input)-1]
		count, err := strconv.Atoi(input[1 : len(input)-1])
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s", ErrInvalidFormat, input)
		}
		if count <= 0 {
			return Value{}, fmt.Errorf("offset must be positive: %s", input)
		}
		switch unit {
		case 'd':
			return today.AddDays(count), nil
		case 'w':
			return today.AddDays(count * 7), nil
		}
		return Value{}, fmt.Errorf("%w: %s", ErrInvalidFormat, input)
	}

	if wd, ok := weekdayMap[input]; ok {
		daysUntil := int(wd - now.Weekday())
		// If target is today or earlier this week, go to next week
		if daysUntil <= 0 {
			daysUntil += 7
		}
		return today.AddDays(daysUntil), nil
	}

	return Value{}, fmt.Errorf("%w: %s", ErrInvalidFormat, input)
}

var weekdayMap = map[string]time.Weekday{
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
	"sun": time.Sunday,
}

// Describe returns a human-readable description of day relative to now
// (e.g., "today", "tomorrow", "in 3 days", "Monday")
func Describe(day Value) string {
	return DescribeWithNow(day, time.Now())
}

// DescribeWithNow is Describe with an explicit "now"
func DescribeWithNow(day Value, now time.Time) string {
	if day.IsZero() {
		return ""
	}
	diff := New(now).DaysUntil(day)

	switch {
	case diff == 0:
		return "today"
	case diff == 1:
		return "tomorrow"
	case diff == -1:
		return "yesterday"
	case diff > 1 && diff < 7:
		return day.t.Weekday().String()
	case diff >= 7 && diff < 28:
		weeks := diff / 7
		if weeks == 1 {
			return "in 1 week"
		}
		return fmt.Sprintf("in %d weeks", weeks)
	case diff < -1 && diff > -7:
		return fmt.Sprintf("%d days ago", -diff)
	}
	return day.t.Format("Jan 2, 2006")
}
