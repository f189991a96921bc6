package hosttest

import (
	"github.com/colonyops/beacon/internal/core/host"
)

type observation struct {
	threshold float64
	fn        func(host.Intersection)
}

// Viewport is a scripted host.VisibilityDetector. Tests deliver
// intersections with Emit; only observed elements receive them.
type Viewport struct {
	observed   map[host.ElementID]observation
	unobserved []host.ElementID
	delivered  int
}

var _ host.VisibilityDetector = (*Viewport)(nil)

func NewViewport() *Viewport {
	return &Viewport{observed: make(map[host.ElementID]observation)}
}

func (v *Viewport) Observe(el host.ElementID, threshold float64, fn func(host.Intersection)) {
	v.observed[el] = observation{threshold: threshold, fn: fn}
}

func (v *Viewport) Unobserve(el host.ElementID) {
	if _, ok := v.observed[el]; ok {
		v.unobserved = append(v.unobserved, el)
	}
	delete(v.observed, el)
}

// Emit delivers an intersection for el with the given ratio. The entry is
// intersecting when ratio meets the registered threshold. It returns false
// when el is not observed and nothing was delivered.
func (v *Viewport) Emit(el host.ElementID, ratio float64) bool {
	obs, ok := v.observed[el]
	if !ok {
		return false
	}

	v.delivered++
	obs.fn(host.Intersection{
		Element:      el,
		Intersecting: ratio > 0 && ratio >= obs.threshold,
		Ratio:        ratio,
	})
	return true
}

// Observed reports whether el is currently watched.
func (v *Viewport) Observed(el host.ElementID) bool {
	_, ok := v.observed[el]
	return ok
}

// Threshold returns the threshold el was observed with.
func (v *Viewport) Threshold(el host.ElementID) (float64, bool) {
	obs, ok := v.observed[el]
	return obs.threshold, ok
}

// Unobserved returns elements in the order they were unobserved.
func (v *Viewport) Unobserved() []host.ElementID {
	return v.unobserved
}

// Delivered returns how many intersections reached a callback.
func (v *Viewport) Delivered() int {
	return v.delivered
}
