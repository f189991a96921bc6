// Package hosttest provides deterministic fakes for the host primitives.
// Tests drive time and visibility explicitly; nothing sleeps.
package hosttest

import (
	"sort"
	"time"

	"github.com/colonyops/beacon/internal/core/host"
)

type clockTimer struct {
	handle   host.TimerHandle
	due      time.Duration
	interval time.Duration // zero for one-shot timers
	seq      uint64
	fn       func()
}

// Clock is a virtual-time host.Scheduler. Timers only fire from Advance.
type Clock struct {
	now    time.Duration
	next   host.TimerHandle
	seq    uint64
	timers map[host.TimerHandle]*clockTimer
	fired  int
}

var _ host.Scheduler = (*Clock)(nil)

// NewClock returns a clock positioned at t=0.
func NewClock() *Clock {
	return &Clock{timers: make(map[host.TimerHandle]*clockTimer)}
}

// Now returns the elapsed virtual time.
func (c *Clock) Now() time.Duration {
	return c.now
}

func (c *Clock) After(d time.Duration, fn func()) host.TimerHandle {
	return c.schedule(d, 0, fn)
}

func (c *Clock) Every(d time.Duration, fn func()) host.TimerHandle {
	return c.schedule(d, d, fn)
}

func (c *Clock) Cancel(h host.TimerHandle) {
	delete(c.timers, h)
}

func (c *Clock) schedule(d, interval time.Duration, fn func()) host.TimerHandle {
	c.next++
	c.seq++
	c.timers[c.next] = &clockTimer{
		handle:   c.next,
		due:      c.now + d,
		interval: interval,
		seq:      c.seq,
		fn:       fn,
	}
	return c.next
}

// Advance moves virtual time forward by d, firing due timers in due-time
// order. Timers armed by callbacks fire within the same call when they fall
// inside the window.
func (c *Clock) Advance(d time.Duration) {
	target := c.now + d
	for {
		t := c.earliest()
		if t == nil || t.due > target {
			break
		}

		c.now = t.due
		if t.interval > 0 {
			c.seq++
			t.due += t.interval
			t.seq = c.seq
		} else {
			delete(c.timers, t.handle)
		}

		c.fired++
		t.fn()
	}
	c.now = target
}

// Pending returns the number of live timers.
func (c *Clock) Pending() int {
	return len(c.timers)
}

// Fired returns how many timer callbacks have run.
func (c *Clock) Fired() int {
	return c.fired
}

// Active reports whether h still refers to a live timer.
func (c *Clock) Active(h host.TimerHandle) bool {
	_, ok := c.timers[h]
	return ok
}

func (c *Clock) earliest() *clockTimer {
	if len(c.timers) == 0 {
		return nil
	}

	all := make([]*clockTimer, 0, len(c.timers))
	for _, t := range c.timers {
		all = append(all, t)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].due != all[j].due {
			return all[i].due < all[j].due
		}
		return all[i].seq < all[j].seq
	})
	return all[0]
}
