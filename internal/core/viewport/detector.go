// Package viewport implements a host.VisibilityDetector over a line-based
// layout, such as a scrolling terminal pane.
package viewport

import (
	"sort"

	"github.com/colonyops/beacon/internal/core/host"
)

// Span is the vertical extent of an element in content lines.
type Span struct {
	Top    int
	Height int
}

type observer struct {
	threshold    float64
	fn           func(host.Intersection)
	known        bool
	intersecting bool
}

// Detector tracks which observed elements intersect a scrolling window.
// Intersections are delivered when an element's state is first known and
// whenever it crosses its threshold, from SetLayout, Scroll or Refresh.
type Detector struct {
	observers map[host.ElementID]*observer
	layout    map[host.ElementID]Span
	top       int
	height    int
}

var _ host.VisibilityDetector = (*Detector)(nil)

func New() *Detector {
	return &Detector{
		observers: make(map[host.ElementID]*observer),
		layout:    make(map[host.ElementID]Span),
	}
}

func (d *Detector) Observe(el host.ElementID, threshold float64, fn func(host.Intersection)) {
	d.observers[el] = &observer{threshold: threshold, fn: fn}
}

func (d *Detector) Unobserve(el host.ElementID) {
	delete(d.observers, el)
}

// Observing reports whether el is still observed.
func (d *Detector) Observing(el host.ElementID) bool {
	_, ok := d.observers[el]
	return ok
}

// SetLayout replaces the element layout and re-evaluates intersections.
func (d *Detector) SetLayout(spans map[host.ElementID]Span) {
	d.layout = make(map[host.ElementID]Span, len(spans))
	for el, s := range spans {
		d.layout[el] = s
	}
	d.Refresh()
}

// Scroll moves the visible window and re-evaluates intersections.
func (d *Detector) Scroll(top, height int) {
	d.top = top
	d.height = height
	d.Refresh()
}

// Refresh delivers pending intersection changes, in element order.
func (d *Detector) Refresh() {
	if d.height <= 0 {
		return
	}

	els := make([]host.ElementID, 0, len(d.observers))
	for el := range d.observers {
		els = append(els, el)
	}
	sort.Slice(els, func(i, j int) bool { return els[i] < els[j] })

	for _, el := range els {
		obs, ok := d.observers[el]
		if !ok {
			continue // unobserved by an earlier callback
		}
		span, ok := d.layout[el]
		if !ok || span.Height <= 0 {
			continue
		}

		ratio := d.Ratio(span)
		intersecting := ratio > 0 && ratio >= obs.threshold
		if obs.known && obs.intersecting == intersecting {
			continue
		}

		obs.known = true
		obs.intersecting = intersecting
		obs.fn(host.Intersection{Element: el, Intersecting: intersecting, Ratio: ratio})
	}
}

// Ratio returns the visible fraction of span in the current window.
func (d *Detector) Ratio(span Span) float64 {
	if span.Height <= 0 || d.height <= 0 {
		return 0
	}

	lo := max(d.top, span.Top)
	hi := min(d.top+d.height, span.Top+span.Height)
	if hi <= lo {
		return 0
	}
	return float64(hi-lo) / float64(span.Height)
}
