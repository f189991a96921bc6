package eventloop

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/colonyops/beacon/internal/core/host"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func startLoop(t *testing.T) *Loop {
	t.Helper()

	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = l.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return l
}

func TestLoop_PostDrain_order(t *testing.T) {
	l := New()
	var got []int
	l.Post(func() { got = append(got, 1) })
	l.Post(func() {
		got = append(got, 2)
		l.Post(func() { got = append(got, 3) })
	})

	assert.Equal(t, 3, l.Drain())
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, 0, l.Drain())
}

func TestLoop_Signal_coalesces(t *testing.T) {
	l := New()
	l.Post(func() {})
	l.Post(func() {})

	select {
	case <-l.Signal():
	default:
		t.Fatal("expected a queued signal")
	}
	assert.Equal(t, 2, l.Drain())

	select {
	case <-l.Signal():
		t.Fatal("signal should be consumed")
	default:
	}
}

func TestLoop_After_firesOnLoop(t *testing.T) {
	l := startLoop(t)
	fired := make(chan struct{})

	l.Post(func() {
		l.After(5*time.Millisecond, func() { close(fired) })
	})

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
	require.Eventually(t, func() bool { return l.Pending() == 0 }, time.Second, time.Millisecond)
}

func TestLoop_Cancel_beforeExpiry(t *testing.T) {
	l := New()
	var calls atomic.Int32
	h := l.After(10*time.Millisecond, func() { calls.Add(1) })
	l.Cancel(h)

	time.Sleep(30 * time.Millisecond)
	l.Drain()

	assert.Equal(t, int32(0), calls.Load())
	assert.Equal(t, 0, l.Pending())
}

func TestLoop_Cancel_afterExpiryBeforeDrain(t *testing.T) {
	l := New()
	var calls atomic.Int32
	h := l.After(time.Millisecond, func() { calls.Add(1) })

	<-l.Signal()
	l.Cancel(h)
	l.Drain()

	assert.Equal(t, int32(0), calls.Load(), "stale fire dropped")
}

func TestLoop_Every_untilCancelled(t *testing.T) {
	l := startLoop(t)
	var calls atomic.Int32
	done := make(chan struct{})

	l.Post(func() {
		var h host.TimerHandle
		h = l.Every(2*time.Millisecond, func() {
			if calls.Add(1) == 3 {
				l.Cancel(h)
				close(done)
			}
		})
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ticker did not reach three calls")
	}

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, 0, l.Pending())
}

func TestLoop_Close_stopsTimers(t *testing.T) {
	l := New()
	l.After(time.Hour, func() {})
	l.Every(time.Hour, func() {})
	require.Equal(t, 2, l.Pending())

	l.Close()
	assert.Equal(t, 0, l.Pending())
}
