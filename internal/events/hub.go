// Package events fans low-level terminal signals out to subscribers.
//
// The host publishes focus-loss and resize signals; widgets subscribe and
// receive an unsubscribe func that is safe to call more than once.
package events

import (
	"slices"
	"sync"

	"github.com/MikeBiancalana/datespan/internal/geom"
)

// FocusLossFunc receives the position of the element that took focus,
// or nil when focus left the terminal entirely
type FocusLossFunc func(related *geom.Point)

// ResizeFunc receives the new window size
type ResizeFunc func(size geom.Size)

// Source is the subscription side of a Hub
type Source interface {
	OnFocusLoss(fn FocusLossFunc) (unsubscribe func())
	OnResize(fn ResizeFunc) (unsubscribe func())
}

// Hub is an in-process event source
type Hub struct {
	mu        sync.Mutex
	nextID    int
	focusLoss map[int]FocusLossFunc
	resize    map[int]ResizeFunc
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		focusLoss: make(map[int]FocusLossFunc),
		resize:    make(map[int]ResizeFunc),
	}
}

// OnFocusLoss subscribes fn to focus-loss signals
func (h *Hub) OnFocusLoss(fn FocusLossFunc) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	h.focusLoss[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.focusLoss, id)
			h.mu.Unlock()
		})
	}
}

// OnResize subscribes fn to resize signals
func (h *Hub) OnResize(fn ResizeFunc) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	h.resize[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.resize, id)
			h.mu.Unlock()
		})
	}
}

// FocusLost publishes a focus-loss signal in subscription order
func (h *Hub) FocusLost(related *geom.Point) {
	for _, fn := range h.focusLossSnapshot() {
		fn(related)
	}
}

// Resized publishes a resize signal in subscription order
func (h *Hub) Resized(size geom.Size) {
	for _, fn := range h.resizeSnapshot() {
		fn(size)
	}
}

// Listeners returns the number of live focus-loss and resize subscriptions
func (h *Hub) Listeners() (focusLoss, resize int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.focusLoss), len(h.resize)
}

// Handlers are copied out so a callback may unsubscribe without deadlocking.
func (h *Hub) focusLossSnapshot() []FocusLossFunc {
	h.mu.Lock()
	defer h.mu.Unlock()
	fns := make([]FocusLossFunc, 0, len(h.focusLoss))
	for _, id := range sortedKeys(h.focusLoss) {
		fns = append(fns, h.focusLoss[id])
	}
	return fns
}

func (h *Hub) resizeSnapshot() []ResizeFunc {
	h.mu.Lock()
	defer h.mu.Unlock()
	fns := make([]ResizeFunc, 0, len(h.resize))
	for _, id := range sortedKeys(h.resize) {
		fns = append(fns, h.resize[id])
	}
	return fns
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
