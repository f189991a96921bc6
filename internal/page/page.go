// Package page holds the campus safety page logic. It owns no timers of its
// own beyond the map loader and reports every outcome to the user through
// the feedback engine.
package page

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/beacon/internal/core/config"
	"github.com/colonyops/beacon/internal/core/host"
	"github.com/colonyops/beacon/internal/core/logging"
	"github.com/colonyops/beacon/internal/core/notify"
	"github.com/colonyops/beacon/internal/feedback"
)

// Notifier shows a transient notification.
type Notifier interface {
	Notify(message string, kind notify.Kind) notify.ID
}

// Feedback is the part of the feedback engine the page drives.
type Feedback interface {
	Notifier
	AnimateCounters(counters ...feedback.Counter) ([]feedback.CounterID, error)
	WatchForReveal(elements ...host.ElementID)
}

// Options configures a Page.
type Options struct {
	Feedback  Feedback
	Scheduler host.Scheduler
	Stats     []config.StatConfig
	// RevealPatterns selects the cards that animate in on first view.
	RevealPatterns []string
	MapLoadDelay   time.Duration
	Logger         zerolog.Logger
}

// Page is one session of the campus safety page.
type Page struct {
	fb      Feedback
	logger  zerolog.Logger
	session string

	stats    []config.StatConfig
	patterns []string
	started  bool

	Tabs      *Tabs
	Map       *CampusMap
	Emergency *EmergencyDialog
}

func New(opts Options) *Page {
	return &Page{
		fb:        opts.Feedback,
		logger:    opts.Logger,
		session:   uuid.NewString(),
		stats:     opts.Stats,
		patterns:  opts.RevealPatterns,
		Tabs:      NewTabs(),
		Map:       NewCampusMap(opts.Scheduler, opts.Feedback, opts.MapLoadDelay, logging.With(opts.Logger, "map")),
		Emergency: NewEmergencyDialog(opts.Feedback),
	}
}

// Session returns the id of this page session.
func (p *Page) Session() string {
	return p.session
}

// Context tags ctx with the page session for logging.
func (p *Page) Context(ctx context.Context) context.Context {
	return logging.WithPageSession(ctx, p.session)
}

// Stats returns the configured statistics.
func (p *Page) Stats() []config.StatConfig {
	return p.stats
}

// Start animates the statistics and registers the matching cards for reveal.
// Calling Start more than once has no effect.
func (p *Page) Start(ctx context.Context) error {
	if p.started {
		return nil
	}

	counters := make([]feedback.Counter, len(p.stats))
	for i, s := range p.stats {
		counters[i] = feedback.Counter{
			Element:   StatID(s.ID),
			Target:    s.Target,
			Interval:  s.Interval,
			Increment: s.Increment,
		}
	}
	if _, err := p.fb.AnimateCounters(counters...); err != nil {
		return fmt.Errorf("animate stats: %w", err)
	}

	cards, err := SelectElements(CardElements(), p.patterns)
	if err != nil {
		return fmt.Errorf("select reveal cards: %w", err)
	}
	p.fb.WatchForReveal(cards...)
	p.started = true

	p.logger.Info().Ctx(p.Context(ctx)).
		Int("stats", len(counters)).
		Int("reveal_cards", len(cards)).
		Msg("page started")
	return nil
}

// SubmitIncident validates and records an incident report. Missing required
// fields produce an error notification and ErrMissingFields. Only the report
// type and anonymity are logged; the location, date and description are not.
func (p *Page) SubmitIncident(ctx context.Context, r IncidentReport) error {
	ctx = logging.WithForm(p.Context(ctx), "incident_report")
	if missing := r.Missing(); len(missing) > 0 {
		p.fb.Notify(msgMissingFields, notify.KindError)
		p.logger.Debug().Ctx(ctx).Strs("missing", missing).Msg("form rejected")
		return fmt.Errorf("incident report: %w: %v", ErrMissingFields, missing)
	}

	p.logger.Info().Ctx(ctx).
		Str("type", r.Type).
		Bool("anonymous", r.Anonymous).
		Msg("incident report submitted")
	p.fb.Notify(msgReportSubmitted, notify.KindSuccess)
	return nil
}

// SendMessage validates and records a contact form message. The sender's
// name, email and message body are never logged.
func (p *Page) SendMessage(ctx context.Context, m ContactMessage) error {
	ctx = logging.WithForm(p.Context(ctx), "contact")
	if missing := m.Missing(); len(missing) > 0 {
		p.fb.Notify(msgMissingFields, notify.KindError)
		p.logger.Debug().Ctx(ctx).Strs("missing", missing).Msg("form rejected")
		return fmt.Errorf("contact message: %w: %v", ErrMissingFields, missing)
	}

	p.logger.Info().Ctx(ctx).
		Str("subject", m.Subject).
		Bool("newsletter", m.Newsletter).
		Msg("contact message sent")
	p.fb.Notify(msgMessageSent, notify.KindSuccess)
	return nil
}

// QuickCall simulates calling the contact shown on an emergency card.
func (p *Page) QuickCall(c EmergencyContact) notify.ID {
	return Call(p.fb, c)
}

// Enroll registers for a course.
func (p *Page) Enroll(c Course) notify.ID {
	return p.fb.Notify(fmt.Sprintf("You've registered for %s", c.Title), notify.KindSuccess)
}
