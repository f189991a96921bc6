package feedback

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/beacon/internal/core/host"
	"github.com/colonyops/beacon/internal/core/host/hosttest"
)

func newTestReveal(threshold float64) (*RevealAnimator, *hosttest.Viewport, *hosttest.Screen) {
	vp := hosttest.NewViewport()
	screen := hosttest.NewScreen()
	return NewRevealAnimator(vp, screen, threshold, zerolog.Nop()), vp, screen
}

func TestRevealAnimator_Watch_observesWithThreshold(t *testing.T) {
	r, vp, _ := newTestReveal(0)

	r.Watch("resources/campus-police", "courses/self-defense")

	th, ok := vp.Threshold("resources/campus-police")
	assert.True(t, ok)
	assert.Equal(t, DefaultRevealThreshold, th)
	assert.True(t, vp.Observed("courses/self-defense"))
	assert.Equal(t, 2, r.PendingCount())
}

func TestRevealAnimator_RevealsOnce(t *testing.T) {
	r, vp, screen := newTestReveal(0.1)
	el := host.ElementID("emergency/campus-security")
	r.Watch(el)

	vp.Emit(el, 0.5)
	assert.False(t, vp.Emit(el, 0.8), "no callback after reveal")
	assert.False(t, vp.Emit(el, 1.0))

	assert.Equal(t, 1, screen.RevealCount(el))
	assert.True(t, r.Revealed(el))
	assert.False(t, r.Pending(el))
	assert.Equal(t, []host.ElementID{el}, vp.Unobserved())
}

func TestRevealAnimator_IgnoresBelowThreshold(t *testing.T) {
	r, vp, screen := newTestReveal(0.1)
	el := host.ElementID("courses/first-aid")
	r.Watch(el)

	vp.Emit(el, 0.05)
	vp.Emit(el, 0)

	assert.Equal(t, 0, screen.RevealCount(el))
	assert.True(t, r.Pending(el))
	assert.True(t, vp.Observed(el))

	vp.Emit(el, 0.1)
	assert.Equal(t, 1, screen.RevealCount(el))
}

func TestRevealAnimator_DuplicateEventAfterReveal(t *testing.T) {
	r, _, screen := newTestReveal(0.1)
	el := host.ElementID("resources/counseling")
	r.Watch(el)

	// Deliver directly to simulate an event already queued before unobserve.
	r.handle(host.Intersection{Element: el, Intersecting: true, Ratio: 1})
	r.handle(host.Intersection{Element: el, Intersecting: true, Ratio: 1})

	assert.Equal(t, 1, screen.RevealCount(el))
}

func TestRevealAnimator_Watch_skipsRevealedAndPending(t *testing.T) {
	r, vp, screen := newTestReveal(0.1)
	el := host.ElementID("resources/escort")
	r.Watch(el)
	r.Watch(el)
	assert.Equal(t, 1, r.PendingCount())

	vp.Emit(el, 1)
	r.Watch(el)

	assert.False(t, vp.Observed(el), "revealed element is not re-observed")
	assert.Equal(t, 1, screen.RevealCount(el))
}

func TestRevealAnimator_EachElementIndependent(t *testing.T) {
	r, vp, screen := newTestReveal(0.1)
	els := []host.ElementID{"a", "b", "c"}
	r.Watch(els...)

	for range 3 {
		for _, el := range els {
			vp.Emit(el, 1)
		}
	}

	for _, el := range els {
		assert.Equal(t, 1, screen.RevealCount(el), string(el))
	}
	assert.Equal(t, 0, r.PendingCount())
	assert.Equal(t, 3, vp.Delivered())
}
