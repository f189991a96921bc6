// Package eventloop runs host callbacks on a single goroutine.
//
// Timers armed through the Loop fire on runtime timers, but their callbacks
// are queued and only executed by whichever goroutine drains the loop: Run
// for headless use, or the bubbletea Update loop after a Signal.
package eventloop

import (
	"context"
	"sync"
	"time"

	"github.com/colonyops/beacon/internal/core/host"
)

type loopTimer struct {
	timer    *time.Timer
	interval time.Duration
	fn       func()
}

// Loop is a host.Scheduler backed by real time.
type Loop struct {
	mu     sync.Mutex
	queue  []func()
	signal chan struct{}

	timersMu sync.Mutex
	timers   map[host.TimerHandle]*loopTimer
	next     host.TimerHandle
}

var _ host.Scheduler = (*Loop)(nil)

func New() *Loop {
	return &Loop{
		signal: make(chan struct{}, 1),
		timers: make(map[host.TimerHandle]*loopTimer),
	}
}

// Post queues fn for execution on the loop goroutine. Safe from any goroutine.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.signal <- struct{}{}:
	default:
	}
}

// Signal returns a channel that receives a value when work is queued. A
// single signal may cover several queued callbacks.
func (l *Loop) Signal() <-chan struct{} {
	return l.signal
}

// Drain runs every queued callback, including callbacks queued while
// draining, and returns how many ran. It must only be called from the loop
// goroutine.
func (l *Loop) Drain() int {
	ran := 0
	for {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return ran
		}
		batch := l.queue
		l.queue = nil
		l.mu.Unlock()

		for _, fn := range batch {
			fn()
			ran++
		}
	}
}

// Run drains the loop until ctx is cancelled. Pending timers are stopped on
// return.
func (l *Loop) Run(ctx context.Context) error {
	defer l.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.signal:
			l.Drain()
		}
	}
}

func (l *Loop) After(d time.Duration, fn func()) host.TimerHandle {
	return l.arm(d, 0, fn)
}

func (l *Loop) Every(d time.Duration, fn func()) host.TimerHandle {
	return l.arm(d, d, fn)
}

func (l *Loop) Cancel(h host.TimerHandle) {
	l.timersMu.Lock()
	defer l.timersMu.Unlock()

	if t, ok := l.timers[h]; ok {
		t.timer.Stop()
		delete(l.timers, h)
	}
}

// Pending returns the number of live timers.
func (l *Loop) Pending() int {
	l.timersMu.Lock()
	defer l.timersMu.Unlock()
	return len(l.timers)
}

// Close stops every live timer. Queued callbacks are discarded.
func (l *Loop) Close() {
	l.timersMu.Lock()
	for h, t := range l.timers {
		t.timer.Stop()
		delete(l.timers, h)
	}
	l.timersMu.Unlock()

	l.mu.Lock()
	l.queue = nil
	l.mu.Unlock()
}

func (l *Loop) arm(d, interval time.Duration, fn func()) host.TimerHandle {
	l.timersMu.Lock()
	defer l.timersMu.Unlock()

	l.next++
	h := l.next
	t := &loopTimer{interval: interval, fn: fn}
	t.timer = time.AfterFunc(d, func() {
		l.Post(func() { l.fire(h) })
	})
	l.timers[h] = t
	return h
}

// fire runs on the loop goroutine. A timer cancelled after its runtime timer
// expired but before the queued callback ran is dropped here.
func (l *Loop) fire(h host.TimerHandle) {
	l.timersMu.Lock()
	t, ok := l.timers[h]
	if !ok {
		l.timersMu.Unlock()
		return
	}
	if t.interval > 0 {
		t.timer.Reset(t.interval)
	} else {
		delete(l.timers, h)
	}
	l.timersMu.Unlock()

	t.fn()
}
