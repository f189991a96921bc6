// Package feedback implements the short-lived visual feedback engine:
// stacked notifications with timed expiry, count-up counters and one-shot
// reveal animations.
//
// The engine is not safe for concurrent use. All calls, and every callback
// delivered by the host primitives, must happen on one event loop.
package feedback

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/beacon/internal/core/host"
	"github.com/colonyops/beacon/internal/core/logging"
	"github.com/colonyops/beacon/internal/core/notify"
)

// Options wires the engine to its host.
type Options struct {
	Scheduler     host.Scheduler
	Detector      host.VisibilityDetector
	Presentation  host.Presentation
	Notifications NotificationOptions
	// RevealThreshold is the visible fraction that triggers a reveal.
	RevealThreshold float64
	Logger          zerolog.Logger
}

// Counter is a request to animate the number shown in Element.
type Counter struct {
	Element   host.ElementID
	Target    int
	Interval  time.Duration
	Increment int
}

// Engine is the single entry point page logic uses for transient feedback.
type Engine struct {
	notifications *NotificationManager
	counters      *CounterAnimator
	reveals       *RevealAnimator
	screen        host.Presentation
}

func New(opts Options) *Engine {
	return &Engine{
		notifications: NewNotificationManager(
			opts.Scheduler,
			opts.Presentation,
			opts.Notifications,
			logging.With(opts.Logger, "notifications"),
		),
		counters: NewCounterAnimator(
			opts.Scheduler,
			logging.With(opts.Logger, "counters"),
		),
		reveals: NewRevealAnimator(
			opts.Detector,
			opts.Presentation,
			opts.RevealThreshold,
			logging.With(opts.Logger, "reveal"),
		),
		screen: opts.Presentation,
	}
}

// Notify shows a notification and returns its id.
func (e *Engine) Notify(message string, kind notify.Kind) notify.ID {
	return e.notifications.Push(message, kind)
}

// DismissNotification starts fading id. Unknown or already fading ids are
// ignored.
func (e *Engine) DismissNotification(id notify.ID) {
	e.notifications.Dismiss(id)
}

// AnimateCounters starts one counter per request. The batch is validated as a
// whole; on error nothing is started.
func (e *Engine) AnimateCounters(counters ...Counter) ([]CounterID, error) {
	specs := make([]CounterSpec, len(counters))
	for i, c := range counters {
		el := c.Element
		specs[i] = CounterSpec{
			Target:    c.Target,
			Interval:  c.Interval,
			Increment: c.Increment,
			Sink: func(v int) {
				e.screen.WriteText(el, strconv.Itoa(v))
			},
		}
		if err := specs[i].Validate(); err != nil {
			return nil, fmt.Errorf("counter %q: %w", el, err)
		}
	}

	ids := make([]CounterID, 0, len(specs))
	for _, spec := range specs {
		id, err := e.counters.Animate(spec)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// WatchForReveal registers elements for a one-shot reveal.
func (e *Engine) WatchForReveal(elements ...host.ElementID) {
	e.reveals.Watch(elements...)
}

// Infof shows an info notification.
func (e *Engine) Infof(format string, args ...any) notify.ID {
	return e.Notify(fmt.Sprintf(format, args...), notify.KindInfo)
}

// Successf shows a success notification.
func (e *Engine) Successf(format string, args ...any) notify.ID {
	return e.Notify(fmt.Sprintf(format, args...), notify.KindSuccess)
}

// Warnf shows a warning notification.
func (e *Engine) Warnf(format string, args ...any) notify.ID {
	return e.Notify(fmt.Sprintf(format, args...), notify.KindWarning)
}

// Errorf shows an error notification.
func (e *Engine) Errorf(format string, args ...any) notify.ID {
	return e.Notify(fmt.Sprintf(format, args...), notify.KindError)
}

// Notifications exposes the notification manager for dismissal shortcuts
// and inspection.
func (e *Engine) Notifications() *NotificationManager {
	return e.notifications
}

// Counters exposes the counter animator for inspection.
func (e *Engine) Counters() *CounterAnimator {
	return e.counters
}

// Reveals exposes the reveal animator for inspection.
func (e *Engine) Reveals() *RevealAnimator {
	return e.reveals
}
