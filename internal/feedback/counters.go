package feedback

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/beacon/internal/core/host"
)

// CounterID identifies a registered counter animation.
type CounterID uint64

// CounterState is the lifecycle position of a counter animation.
type CounterState int

const (
	CounterRunning CounterState = iota
	CounterDone
)

func (s CounterState) String() string {
	if s == CounterDone {
		return "done"
	}
	return "running"
}

// CounterSpec describes a count-up animation from zero to Target.
type CounterSpec struct {
	Target    int
	Interval  time.Duration
	Increment int
	// Sink receives the displayed value after every tick.
	Sink func(current int)
}

// Validate rejects specs that would never terminate or never move.
func (s CounterSpec) Validate() error {
	switch {
	case s.Target <= 0:
		return invalid("target", s.Target, "must be positive")
	case s.Increment <= 0:
		return invalid("increment", s.Increment, "must be positive")
	case s.Interval <= 0:
		return invalid("interval", s.Interval, "must be positive")
	case s.Sink == nil:
		return invalid("sink", nil, "is required")
	}
	return nil
}

type counter struct {
	spec    CounterSpec
	current int
	state   CounterState
	timer   host.TimerHandle
}

// CounterAnimator runs independent count-up animations, each on its own
// repeating timer. A finished counter's timer is cancelled on the tick that
// reaches its target; its entry is kept so Current and State keep answering
// for it, and any late tick is ignored.
type CounterAnimator struct {
	sched    host.Scheduler
	logger   zerolog.Logger
	lastID   CounterID
	counters map[CounterID]*counter
}

func NewCounterAnimator(sched host.Scheduler, logger zerolog.Logger) *CounterAnimator {
	return &CounterAnimator{
		sched:    sched,
		logger:   logger,
		counters: make(map[CounterID]*counter),
	}
}

// Animate validates spec and starts counting from zero. Invalid specs are
// rejected with ErrInvalidArgument before any tick is scheduled.
func (a *CounterAnimator) Animate(spec CounterSpec) (CounterID, error) {
	if err := spec.Validate(); err != nil {
		return 0, err
	}

	a.lastID++
	id := a.lastID
	c := &counter{spec: spec, state: CounterRunning}
	c.timer = a.sched.Every(spec.Interval, func() { a.tick(id) })
	a.counters[id] = c

	a.logger.Debug().
		Uint64("id", uint64(id)).
		Int("target", spec.Target).
		Dur("interval", spec.Interval).
		Msg("counter started")
	return id, nil
}

// Current returns the value last written for id.
func (a *CounterAnimator) Current(id CounterID) (int, bool) {
	c, ok := a.counters[id]
	if !ok {
		return 0, false
	}
	return c.current, true
}

// State returns the lifecycle state of id.
func (a *CounterAnimator) State(id CounterID) (CounterState, bool) {
	c, ok := a.counters[id]
	if !ok {
		return CounterDone, false
	}
	return c.state, true
}

// Running returns the number of counters still ticking.
func (a *CounterAnimator) Running() int {
	n := 0
	for _, c := range a.counters {
		if c.state == CounterRunning {
			n++
		}
	}
	return n
}

func (a *CounterAnimator) tick(id CounterID) {
	c, ok := a.counters[id]
	if !ok || c.state == CounterDone {
		a.logger.Trace().Uint64("id", uint64(id)).Msg("stale counter tick ignored")
		return
	}

	// compare the remaining distance so large increments cannot overflow
	if c.spec.Target-c.current <= c.spec.Increment {
		c.current = c.spec.Target
		c.state = CounterDone
		a.sched.Cancel(c.timer)
		c.timer = 0
		c.spec.Sink(c.current)
		a.logger.Debug().Uint64("id", uint64(id)).Int("value", c.current).Msg("counter done")
		return
	}

	c.current += c.spec.Increment
	c.spec.Sink(c.current)
}
