package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) Value {
	return Noon(2024, 1, d, time.UTC)
}

func TestRangeCompleteness(t *testing.T) {
	assert.True(t, Range{}.Empty())
	assert.False(t, Range{Start: day(1)}.Complete())
	assert.True(t, NewRange(day(1), day(2)).Complete())
}

func TestRangeOrdered(t *testing.T) {
	assert.True(t, NewRange(day(10), day(15)).Ordered())
	assert.True(t, NewRange(day(10), day(10)).Ordered())
	assert.False(t, NewRange(day(15), day(10)).Ordered())
	assert.True(t, Range{Start: day(15)}.Ordered(), "incomplete ranges are ordered")
}

func TestRangeNights(t *testing.T) {
	assert.Equal(t, 5, NewRange(day(10), day(15)).Nights())
	assert.Equal(t, 0, Range{Start: day(10)}.Nights())
}

func TestRangeContains(t *testing.T) {
	r := NewRange(day(10), day(15))

	assert.True(t, r.Contains(day(10)))
	assert.True(t, r.Contains(day(12)))
	assert.True(t, r.Contains(day(15)))
	assert.False(t, r.Contains(day(16)))
	assert.False(t, Range{Start: day(10)}.Contains(day(10)))
}

func TestRangeSameDays(t *testing.T) {
	a := NewRange(day(10), day(15))
	b := NewRange(day(10).WithClock(time.Date(1, 1, 1, 9, 0, 0, 0, time.UTC)), day(15))

	assert.True(t, a.SameDays(b))
	assert.False(t, a.SameDays(NewRange(day(10), day(16))))
	assert.False(t, a.SameDays(Range{Start: day(10)}))
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "2024-01-10 → 2024-01-15", NewRange(day(10), day(15)).String())
	assert.Equal(t, "2024-01-10 → …", Range{Start: day(10)}.String())
}
