package viewport

import "github.com/MikeBiancalana/datespan/internal/logger"

// Scroller is an ancestor scroll container the host can freeze
type Scroller interface {
	SetScrollLocked(locked bool)
}

// ScrollLock freezes a set of ancestor scrollers while a popover is open.
// Engage and Release are idempotent; each engaged lock is released once.
type ScrollLock struct {
	locked []Scroller
}

// Engaged reports whether the lock is held
func (l *ScrollLock) Engaged() bool {
	return l.locked != nil
}

// Engage locks ancestors. It is a no-op while already engaged.
func (l *ScrollLock) Engage(ancestors []Scroller) bool {
	if l.Engaged() {
		return false
	}
	l.locked = make([]Scroller, 0, len(ancestors))
	for _, s := range ancestors {
		if s == nil {
			continue
		}
		s.SetScrollLocked(true)
		l.locked = append(l.locked, s)
	}
	logger.Debug("viewport: scroll locked", "ancestors", len(l.locked))
	return true
}

// Release unlocks what Engage locked. It is a no-op when not engaged.
func (l *ScrollLock) Release() bool {
	if !l.Engaged() {
		return false
	}
	for _, s := range l.locked {
		s.SetScrollLocked(false)
	}
	l.locked = nil
	logger.Debug("viewport: scroll released")
	return true
}
