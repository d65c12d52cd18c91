package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTodayAtNoonIsFixed(t *testing.T) {
	first := TodayAtNoon()
	second := TodayAtNoon()

	assert.True(t, first.Equal(second))
	assert.Equal(t, 12, first.Time().Hour())
	assert.Equal(t, 0, first.Time().Minute())
}

func TestBlockedBefore(t *testing.T) {
	ref := Noon(2024, 1, 10, time.UTC)
	blocked := BlockedBefore(ref)

	assert.True(t, blocked(Noon(2024, 1, 9, time.UTC)))
	assert.False(t, blocked(Noon(2024, 1, 10, time.UTC)), "a calendar day at noon is not before noon")
	assert.True(t, blocked(Date(2024, 1, 10, time.UTC)), "midnight is before noon")
	assert.False(t, blocked(Noon(2024, 1, 11, time.UTC)))
}

func TestOutsideBefore(t *testing.T) {
	now := func() time.Time { return time.Date(2024, 1, 10, 23, 0, 0, 0, time.UTC) }
	outside := OutsideBefore(now)

	assert.True(t, outside(Noon(2024, 1, 9, time.UTC)))
	assert.False(t, outside(Date(2024, 1, 10, time.UTC)))
	assert.False(t, outside(Noon(2024, 2, 1, time.UTC)))
}

func TestDefaults(t *testing.T) {
	today := TodayAtNoon()

	assert.False(t, DefaultIsDayBlocked(today))
	assert.True(t, DefaultIsDayBlocked(today.AddDays(-1)))
	assert.False(t, DefaultIsOutsideRange(today.AddDays(3)))
	assert.True(t, DefaultIsOutsideRange(today.AddDays(-3)))
	assert.False(t, Never(today))
	assert.True(t, Identity(today).Equal(today))
}
