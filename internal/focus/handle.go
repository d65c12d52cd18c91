package focus

import (
	"github.com/MikeBiancalana/datespan/internal/geom"
	"github.com/rs/xid"
)

// Element is a host-owned screen region the picker is mounted in.
// Implementations are compared by identity, so use pointer types.
type Element interface {
	Bounds() geom.Rect
}

// Handle owns the listener subscriptions for one mounted container.
// Releasing it unsubscribes everything exactly once.
type Handle struct {
	id       xid.ID
	el       Element
	release  []func()
	released bool
}

func newHandle(el Element) *Handle {
	return &Handle{id: xid.New(), el: el}
}

// ID identifies the handle in logs
func (h *Handle) ID() string {
	return h.id.String()
}

// Contains reports whether p is inside the container's current bounds
func (h *Handle) Contains(p geom.Point) bool {
	return h.el.Bounds().Contains(p)
}

// Released reports whether the subscriptions are gone
func (h *Handle) Released() bool {
	return h.released
}

func (h *Handle) own(unsubscribe func()) {
	h.release = append(h.release, unsubscribe)
}

// Release unsubscribes every listener the handle owns
func (h *Handle) Release() {
	if h.released {
		return
	}
	h.released = true
	for _, fn := range h.release {
		fn()
	}
	h.release = nil
}
