package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pane struct {
	locked bool
	calls  int
}

func (p *pane) SetScrollLocked(locked bool) {
	p.locked = locked
	p.calls++
}

func TestScrollLock_EngageRelease(t *testing.T) {
	a, b := &pane{}, &pane{}
	var l ScrollLock

	assert.True(t, l.Engage([]Scroller{a, nil, b}))
	assert.True(t, l.Engaged())
	assert.True(t, a.locked)
	assert.True(t, b.locked)

	assert.True(t, l.Release())
	assert.False(t, l.Engaged())
	assert.False(t, a.locked)
	assert.False(t, b.locked)
}

func TestScrollLock_Idempotent(t *testing.T) {
	a := &pane{}
	var l ScrollLock

	l.Engage([]Scroller{a})
	assert.False(t, l.Engage([]Scroller{a}))
	assert.Equal(t, 1, a.calls)

	l.Release()
	assert.False(t, l.Release())
	assert.Equal(t, 2, a.calls)
}

func TestScrollLock_ReleaseWithoutEngage(t *testing.T) {
	var l ScrollLock
	assert.False(t, l.Release())
}
