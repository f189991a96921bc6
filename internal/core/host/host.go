// Package host declares the primitives the feedback engine consumes from its
// environment: timers, viewport visibility and a presentation surface.
//
// Implementations are expected to invoke every callback on a single event
// loop goroutine. The engine holds no locks and relies on that guarantee.
package host

import (
	"time"

	"github.com/colonyops/beacon/internal/core/notify"
)

// TimerHandle identifies a scheduled timer. The zero value never refers to a
// live timer.
type TimerHandle uint64

// Scheduler arms one-shot and repeating timers.
type Scheduler interface {
	// After runs fn once, d after the call.
	After(d time.Duration, fn func()) TimerHandle
	// Every runs fn every d until cancelled.
	Every(d time.Duration, fn func()) TimerHandle
	// Cancel stops a timer. Cancelling an unknown or finished handle is a no-op.
	Cancel(h TimerHandle)
}

// ElementID is an opaque reference to a renderable unit on the page.
type ElementID string

// Intersection is a single visibility observation for a watched element.
type Intersection struct {
	Element      ElementID
	Intersecting bool
	Ratio        float64
}

// VisibilityDetector reports when watched elements enter or leave the
// viewport.
type VisibilityDetector interface {
	// Observe starts reporting intersections for el. An element counts as
	// intersecting once at least threshold (0..1) of it is visible.
	Observe(el ElementID, threshold float64, fn func(Intersection))
	// Unobserve stops reporting for el.
	Unobserve(el ElementID)
}

// Handle identifies an attached notification on the presentation surface.
type Handle uint64

// Presentation is the rendering surface the engine writes to.
type Presentation interface {
	AttachNotification(kind notify.Kind, message string) Handle
	SetOpacity(h Handle, opacity float64)
	// SetTransform shifts an attached notification horizontally by a
	// fraction of its own width.
	SetTransform(h Handle, offsetX float64)
	Detach(h Handle)
	WriteText(el ElementID, value string)
	ApplyRevealStyle(el ElementID)
}
