package feedback

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/beacon/internal/core/host/hosttest"
	"github.com/colonyops/beacon/internal/core/notify"
)

func newTestManager(opts NotificationOptions) (*NotificationManager, *hosttest.Clock, *hosttest.Screen) {
	clock := hosttest.NewClock()
	screen := hosttest.NewScreen()
	return NewNotificationManager(clock, screen, opts, zerolog.Nop()), clock, screen
}

func TestNotificationManager_Push_distinctIDs(t *testing.T) {
	m, _, _ := newTestManager(NotificationOptions{})

	seen := map[notify.ID]bool{}
	for range 20 {
		id := m.Push("hello", notify.KindInfo)
		assert.False(t, seen[id], "id %d reused", id)
		seen[id] = true
	}
	assert.Equal(t, 20, m.Len())
}

func TestNotificationManager_Push_rendersVisible(t *testing.T) {
	m, clock, screen := newTestManager(NotificationOptions{})

	id := m.Push("Report submitted", notify.KindSuccess)

	state, ok := m.State(id)
	require.True(t, ok)
	assert.Equal(t, notify.StateVisible, state)

	attached := screen.Attached()
	require.Len(t, attached, 1)
	assert.Equal(t, notify.KindSuccess, attached[0].Kind)
	assert.Equal(t, "Report submitted", attached[0].Message)
	assert.Equal(t, 1.0, attached[0].Opacity)
	assert.Equal(t, 1, clock.Pending(), "exactly one expiry timer")
}

func TestNotificationManager_Push_unknownKindDefaultsToInfo(t *testing.T) {
	m, _, screen := newTestManager(NotificationOptions{})

	m.Push("odd", notify.Kind("critical"))

	require.Len(t, screen.Attached(), 1)
	assert.Equal(t, notify.KindInfo, screen.Attached()[0].Kind)
	assert.Equal(t, notify.KindInfo, m.Active()[0].Kind)
}

func TestNotificationManager_Expiry_lifecycle(t *testing.T) {
	m, clock, screen := newTestManager(NotificationOptions{})
	id := m.Push("expires", notify.KindInfo)

	clock.Advance(DefaultNotificationTTL - time.Millisecond)
	state, _ := m.State(id)
	assert.Equal(t, notify.StateVisible, state)

	clock.Advance(time.Millisecond)
	state, _ = m.State(id)
	assert.Equal(t, notify.StateFading, state)
	assert.Equal(t, 1, clock.Pending(), "expiry replaced by removal timer")

	toast := screen.Attached()[0]
	assert.Equal(t, 0.0, toast.Opacity)
	assert.Equal(t, 1.0, toast.OffsetX)

	clock.Advance(DefaultNotificationFade)
	_, ok := m.State(id)
	assert.False(t, ok)
	assert.Empty(t, screen.Attached())
	assert.Equal(t, 0, clock.Pending())
}

func TestNotificationManager_Dismiss_shortCircuitsExpiry(t *testing.T) {
	m, clock, screen := newTestManager(NotificationOptions{})
	id := m.Push("Report submitted", notify.KindSuccess)

	m.Dismiss(id)

	state, ok := m.State(id)
	require.True(t, ok)
	assert.Equal(t, notify.StateFading, state)
	assert.Equal(t, 1, clock.Pending())

	clock.Advance(DefaultNotificationFade)
	_, ok = m.State(id)
	assert.False(t, ok, "removed at t=fade")
	assert.Empty(t, screen.Attached())

	fired := clock.Fired()
	clock.Advance(DefaultNotificationTTL)
	assert.Equal(t, fired, clock.Fired(), "expiry timer never fires")
}

func TestNotificationManager_Dismiss_noops(t *testing.T) {
	t.Run("already fading", func(t *testing.T) {
		m, clock, _ := newTestManager(NotificationOptions{})
		id := m.Push("twice", notify.KindInfo)

		m.Dismiss(id)
		m.Dismiss(id)

		assert.Equal(t, 1, clock.Pending(), "no duplicate removal timer")
		state, _ := m.State(id)
		assert.Equal(t, notify.StateFading, state)

		clock.Advance(DefaultNotificationFade)
		assert.Equal(t, 0, m.Len())
	})

	t.Run("unknown id", func(t *testing.T) {
		m, clock, screen := newTestManager(NotificationOptions{})
		m.Push("keep", notify.KindInfo)

		m.Dismiss(notify.ID(999))

		assert.Equal(t, 1, clock.Pending())
		assert.Len(t, screen.Attached(), 1)
		state, _ := m.State(1)
		assert.Equal(t, notify.StateVisible, state)
	})

	t.Run("removed id", func(t *testing.T) {
		m, clock, _ := newTestManager(NotificationOptions{})
		id := m.Push("gone", notify.KindInfo)
		clock.Advance(DefaultNotificationTTL + DefaultNotificationFade)

		m.Dismiss(id)
		assert.Equal(t, 0, clock.Pending())
	})
}

func TestNotificationManager_Render_idempotent(t *testing.T) {
	m, _, screen := newTestManager(NotificationOptions{})
	m.Push("one", notify.KindInfo)
	m.Push("two", notify.KindWarning)

	m.Render()
	m.Render()

	assert.Equal(t, 2, screen.AttachCount())
}

func TestNotificationManager_CountInvariant(t *testing.T) {
	m, clock, _ := newTestManager(NotificationOptions{})

	var ids []notify.ID
	for i := range 12 {
		ids = append(ids, m.Push("n", notify.KindInfo))
		if i%3 == 0 {
			m.Dismiss(ids[i])
		}
		clock.Advance(time.Second)

		removed := 0
		for _, id := range ids {
			if _, ok := m.State(id); !ok {
				removed++
			}
		}
		assert.Equal(t, len(ids)-removed, m.Len())

		for _, n := range m.Active() {
			assert.Contains(t, []notify.State{notify.StateVisible, notify.StateFading}, n.State)
		}
	}

	clock.Advance(DefaultNotificationTTL + DefaultNotificationFade)
	assert.Equal(t, 0, m.Len())
}

func TestNotificationManager_MaxVisible_dismissesOldest(t *testing.T) {
	m, _, _ := newTestManager(NotificationOptions{MaxVisible: 2})

	first := m.Push("first", notify.KindInfo)
	second := m.Push("second", notify.KindInfo)
	third := m.Push("third", notify.KindInfo)

	s1, _ := m.State(first)
	s2, _ := m.State(second)
	s3, _ := m.State(third)
	assert.Equal(t, notify.StateFading, s1)
	assert.Equal(t, notify.StateVisible, s2)
	assert.Equal(t, notify.StateVisible, s3)
}

func TestNotificationManager_DismissNewest(t *testing.T) {
	m, _, _ := newTestManager(NotificationOptions{})

	assert.False(t, m.DismissNewest())

	older := m.Push("older", notify.KindInfo)
	newer := m.Push("newer", notify.KindInfo)

	assert.True(t, m.DismissNewest())
	s, _ := m.State(newer)
	assert.Equal(t, notify.StateFading, s)
	s, _ = m.State(older)
	assert.Equal(t, notify.StateVisible, s)

	assert.True(t, m.DismissNewest())
	assert.False(t, m.DismissNewest())
}

func TestNotificationManager_DismissAll(t *testing.T) {
	m, clock, screen := newTestManager(NotificationOptions{})
	m.Push("a", notify.KindInfo)
	m.Push("b", notify.KindError)

	m.DismissAll()
	clock.Advance(DefaultNotificationFade)

	assert.Equal(t, 0, m.Len())
	assert.Empty(t, screen.Attached())
}

func TestNotificationManager_CustomTiming(t *testing.T) {
	m, clock, _ := newTestManager(NotificationOptions{TTL: time.Second, Fade: 100 * time.Millisecond})
	id := m.Push("quick", notify.KindInfo)

	clock.Advance(time.Second)
	s, _ := m.State(id)
	assert.Equal(t, notify.StateFading, s)

	clock.Advance(100 * time.Millisecond)
	_, ok := m.State(id)
	assert.False(t, ok)
}
