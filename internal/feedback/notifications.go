package feedback

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/beacon/internal/core/host"
	"github.com/colonyops/beacon/internal/core/notify"
)

const (
	DefaultNotificationTTL  = 5 * time.Second
	DefaultNotificationFade = 300 * time.Millisecond
	DefaultMaxVisible       = 5
)

// NotificationOptions tunes notification timing.
type NotificationOptions struct {
	TTL  time.Duration // time spent Visible before fading
	Fade time.Duration // time spent Fading before removal
	// MaxVisible caps simultaneously Visible notifications; the oldest is
	// dismissed when a push exceeds it. Zero means unlimited.
	MaxVisible int
}

func (o NotificationOptions) withDefaults() NotificationOptions {
	if o.TTL <= 0 {
		o.TTL = DefaultNotificationTTL
	}
	if o.Fade <= 0 {
		o.Fade = DefaultNotificationFade
	}
	if o.MaxVisible < 0 {
		o.MaxVisible = 0
	}
	return o
}

type notification struct {
	id       notify.ID
	kind     notify.Kind
	message  string
	state    notify.State
	timer    host.TimerHandle
	handle   host.Handle
	attached bool
	faded    bool
}

// NotificationManager owns the active notifications, their timers and their
// presence on the presentation surface. Each entry holds exactly one armed
// timer: the expiry timer while Visible, the removal timer while Fading.
type NotificationManager struct {
	sched   host.Scheduler
	screen  host.Presentation
	opts    NotificationOptions
	logger  zerolog.Logger
	lastID  notify.ID
	entries []*notification
}

func NewNotificationManager(sched host.Scheduler, screen host.Presentation, opts NotificationOptions, logger zerolog.Logger) *NotificationManager {
	return &NotificationManager{
		sched:  sched,
		screen: screen,
		opts:   opts.withDefaults(),
		logger: logger,
	}
}

// Push adds a Visible notification, arms its expiry timer and renders it.
// Unknown kinds are shown as info.
func (m *NotificationManager) Push(message string, kind notify.Kind) notify.ID {
	m.lastID++
	n := &notification{
		id:      m.lastID,
		kind:    kind.OrDefault(),
		message: message,
		state:   notify.StateVisible,
	}
	n.timer = m.sched.After(m.opts.TTL, func() { m.expire(n.id) })
	m.entries = append(m.entries, n)

	m.logger.Debug().
		Uint64("id", uint64(n.id)).
		Str("kind", string(n.kind)).
		Str("message", message).
		Msg("notification pushed")

	m.evictOverflow()
	m.Render()
	return n.id
}

// Dismiss starts the fade of a Visible notification immediately. Fading and
// unknown ids are ignored.
func (m *NotificationManager) Dismiss(id notify.ID) {
	n := m.find(id)
	if n == nil || n.state != notify.StateVisible {
		return
	}

	m.sched.Cancel(n.timer)
	m.beginFade(n)
}

// DismissNewest dismisses the most recently pushed Visible notification. It
// reports whether one was found.
func (m *NotificationManager) DismissNewest() bool {
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].state == notify.StateVisible {
			m.Dismiss(m.entries[i].id)
			return true
		}
	}
	return false
}

// DismissAll dismisses every Visible notification.
func (m *NotificationManager) DismissAll() {
	for _, n := range m.visible() {
		m.Dismiss(n.id)
	}
}

// Render attaches entries not yet on the presentation surface and applies the
// fade to Fading entries that have not received it. Calling it again without
// intervening changes has no effect.
func (m *NotificationManager) Render() {
	for _, n := range m.entries {
		if !n.attached {
			n.handle = m.screen.AttachNotification(n.kind, n.message)
			n.attached = true
		}
		if n.state == notify.StateFading && !n.faded {
			m.screen.SetOpacity(n.handle, 0)
			m.screen.SetTransform(n.handle, 1)
			n.faded = true
		}
	}
}

// State returns the lifecycle state of id. Removed notifications are no
// longer tracked and report StateRemoved with ok=false.
func (m *NotificationManager) State(id notify.ID) (state notify.State, ok bool) {
	n := m.find(id)
	if n == nil {
		return notify.StateRemoved, false
	}
	return n.state, true
}

// Active returns snapshots of every tracked notification in display order.
func (m *NotificationManager) Active() []notify.Notification {
	out := make([]notify.Notification, 0, len(m.entries))
	for _, n := range m.entries {
		out = append(out, notify.Notification{
			ID:      n.id,
			Kind:    n.kind,
			Message: n.message,
			State:   n.state,
		})
	}
	return out
}

// Len returns the number of Visible and Fading notifications.
func (m *NotificationManager) Len() int {
	return len(m.entries)
}

func (m *NotificationManager) expire(id notify.ID) {
	n := m.find(id)
	if n == nil || n.state != notify.StateVisible {
		m.logger.Trace().Uint64("id", uint64(id)).Msg("stale expiry ignored")
		return
	}
	m.beginFade(n)
}

func (m *NotificationManager) beginFade(n *notification) {
	n.state = notify.StateFading
	n.timer = m.sched.After(m.opts.Fade, func() { m.remove(n.id) })
	m.logger.Debug().Uint64("id", uint64(n.id)).Msg("notification fading")
	m.Render()
}

func (m *NotificationManager) remove(id notify.ID) {
	idx := m.index(id)
	if idx < 0 {
		m.logger.Trace().Uint64("id", uint64(id)).Msg("stale removal ignored")
		return
	}

	n := m.entries[idx]
	m.entries = append(m.entries[:idx], m.entries[idx+1:]...)
	n.state = notify.StateRemoved
	n.timer = 0
	if n.attached {
		m.screen.Detach(n.handle)
	}
	m.logger.Debug().Uint64("id", uint64(id)).Msg("notification removed")
}

func (m *NotificationManager) evictOverflow() {
	if m.opts.MaxVisible == 0 {
		return
	}

	visible := m.visible()
	for i := 0; i < len(visible)-m.opts.MaxVisible; i++ {
		m.Dismiss(visible[i].id)
	}
}

func (m *NotificationManager) visible() []*notification {
	var out []*notification
	for _, n := range m.entries {
		if n.state == notify.StateVisible {
			out = append(out, n)
		}
	}
	return out
}

func (m *NotificationManager) find(id notify.ID) *notification {
	if idx := m.index(id); idx >= 0 {
		return m.entries[idx]
	}
	return nil
}

func (m *NotificationManager) index(id notify.ID) int {
	for i, n := range m.entries {
		if n.id == id {
			return i
		}
	}
	return -1
}
