package picker

import (
	"time"

	"github.com/MikeBiancalana/datespan/internal/dates"
	"github.com/MikeBiancalana/datespan/internal/focus"
)

// Hooks are the notifications an Engine emits. Nil hooks are skipped.
type Hooks struct {
	// OnDatesChange receives the working range after every change
	OnDatesChange func(dates.Range)
	// OnFocusChange receives the focus owner after every transition
	OnFocusChange func(focus.Target)
	// OnApply receives the previous and the new snapshot
	OnApply func(old, new dates.Range)
	// OnCancel receives the restored snapshot
	OnCancel func(dates.Range)
	// OnClose receives the working range as it was when the popover closed
	OnClose func(dates.Range)
	// OnTimeChange receives every recomposed time value
	OnTimeChange func(side focus.Side, t time.Time)
}

func (h Hooks) datesChanged(r dates.Range) {
	if h.OnDatesChange != nil {
		h.OnDatesChange(r)
	}
}

func (h Hooks) focusChanged(t focus.Target) {
	if h.OnFocusChange != nil {
		h.OnFocusChange(t)
	}
}

func (h Hooks) applied(old, next dates.Range) {
	if h.OnApply != nil {
		h.OnApply(old, next)
	}
}

func (h Hooks) cancelled(r dates.Range) {
	if h.OnCancel != nil {
		h.OnCancel(r)
	}
}

func (h Hooks) closed(r dates.Range) {
	if h.OnClose != nil {
		h.OnClose(r)
	}
}

func (h Hooks) timeChanged(side focus.Side, t time.Time) {
	if h.OnTimeChange != nil {
		h.OnTimeChange(side, t)
	}
}
