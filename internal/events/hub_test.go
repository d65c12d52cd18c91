package events

import (
	"testing"

	"github.com/MikeBiancalana/datespan/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubDeliversInSubscriptionOrder(t *testing.T) {
	h := NewHub()
	var order []string

	h.OnResize(func(geom.Size) { order = append(order, "first") })
	h.OnResize(func(geom.Size) { order = append(order, "second") })

	h.Resized(geom.Size{Width: 80, Height: 24})
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestHubFocusLossCarriesRelatedTarget(t *testing.T) {
	h := NewHub()
	var got []*geom.Point

	h.OnFocusLoss(func(related *geom.Point) { got = append(got, related) })

	h.FocusLost(&geom.Point{X: 3, Y: 4})
	h.FocusLost(nil)

	require.Len(t, got, 2)
	assert.Equal(t, geom.Point{X: 3, Y: 4}, *got[0])
	assert.Nil(t, got[1])
}

func TestHubUnsubscribeIsIdempotent(t *testing.T) {
	h := NewHub()
	calls := 0

	unsubscribe := h.OnFocusLoss(func(*geom.Point) { calls++ })
	other := h.OnFocusLoss(func(*geom.Point) {})

	unsubscribe()
	unsubscribe()

	focusLoss, resize := h.Listeners()
	assert.Equal(t, 1, focusLoss)
	assert.Equal(t, 0, resize)

	h.FocusLost(nil)
	assert.Equal(t, 0, calls)

	other()
	focusLoss, _ = h.Listeners()
	assert.Equal(t, 0, focusLoss)
}

func TestHubCallbackMayUnsubscribe(t *testing.T) {
	h := NewHub()
	calls := 0

	var unsubscribe func()
	unsubscribe = h.OnResize(func(geom.Size) {
		calls++
		unsubscribe()
	})

	h.Resized(geom.Size{})
	h.Resized(geom.Size{})
	assert.Equal(t, 1, calls)
}
