package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/beacon/internal/core/config"
	"github.com/colonyops/beacon/internal/core/eventloop"
	"github.com/colonyops/beacon/internal/core/host"
	"github.com/colonyops/beacon/internal/core/logging"
	vis "github.com/colonyops/beacon/internal/core/viewport"
	"github.com/colonyops/beacon/internal/feedback"
	"github.com/colonyops/beacon/internal/page"
	"github.com/colonyops/beacon/internal/printer"
)

const (
	demoCardHeight = 4
	demoCardGap    = 1
	demoWindow     = 10
)

type DemoCmd struct {
	flags    *Flags
	showText bool
}

// NewDemoCmd creates a new demo command.
func NewDemoCmd(flags *Flags) *DemoCmd {
	return &DemoCmd{flags: flags}
}

// Register adds the demo command to the application.
func (cmd *DemoCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "demo",
		Usage:     "Play a scripted page session without a terminal UI",
		UsageText: "beacon demo [options]",
		Description: `Runs the feedback engine on a real event loop and prints every notification,
reveal and counter result as it happens. Useful for checking timing settings.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "show-text",
				Usage:       "print every counter update",
				Destination: &cmd.showText,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *DemoCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	if err := cfg.ValidateDeep(cmd.flags.ConfigPath); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	loop := eventloop.New()
	presenter := printer.NewPresenter(c.Root().Writer)
	presenter.ShowText = cmd.showText

	d := newDemo(ctx, cfg, loop, presenter, log.Logger)
	end := d.schedule(loop, demoScript(cfg))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	loop.After(end, cancel)

	if err := loop.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	presenter.Summary()
	return nil
}

// demo drives one page session through a fixed script.
type demo struct {
	ctx      context.Context
	page     *page.Page
	engine   *feedback.Engine
	detector *vis.Detector
	logger   zerolog.Logger
	lifetime time.Duration
	content  int
	top      int
}

func newDemo(ctx context.Context, cfg *config.Config, sched host.Scheduler, screen host.Presentation, logger zerolog.Logger) *demo {
	detector := vis.New()
	engine := feedback.New(feedback.Options{
		Scheduler:    sched,
		Detector:     detector,
		Presentation: screen,
		Notifications: feedback.NotificationOptions{
			TTL:        cfg.Notifications.TTL,
			Fade:       cfg.Notifications.Fade,
			MaxVisible: cfg.Notifications.MaxVisible,
		},
		RevealThreshold: cfg.Reveal.Threshold,
		Logger:          logger,
	})

	pg := page.New(page.Options{
		Feedback:       engine,
		Scheduler:      sched,
		Stats:          cfg.Stats,
		RevealPatterns: cfg.Reveal.Patterns,
		MapLoadDelay:   cfg.Map.LoadDelay,
		Logger:         logging.With(logger, "page"),
	})

	d := &demo{
		ctx:      ctx,
		page:     pg,
		engine:   engine,
		detector: detector,
		logger:   logging.With(logger, "demo"),
		lifetime: cfg.Notifications.TTL + cfg.Notifications.Fade,
	}
	for _, s := range cfg.Stats {
		steps := (s.Target + max(s.Increment, 1) - 1) / max(s.Increment, 1)
		d.lifetime = max(d.lifetime, time.Duration(steps)*s.Interval)
	}

	spans := make(map[host.ElementID]vis.Span)
	for i, el := range page.CardElements() {
		spans[el] = vis.Span{Top: i * (demoCardHeight + demoCardGap), Height: demoCardHeight}
		d.content = spans[el].Top + demoCardHeight
	}
	detector.SetLayout(spans)

	return d
}

type demoStep struct {
	at   time.Duration
	name string
	run  func(d *demo)
}

// demoScript returns the steps in the order they fire.
func demoScript(cfg *config.Config) []demoStep {
	mapReady := 1500*time.Millisecond + cfg.Map.LoadDelay

	steps := []demoStep{
		{at: 0, name: "start", run: func(d *demo) {
			if err := d.page.Start(d.ctx); err != nil {
				d.logger.Error().Err(err).Msg("page start failed")
				d.engine.Errorf("Page failed to start: %v", err)
			}
			d.detector.Scroll(0, demoWindow)
		}},
		{at: 300 * time.Millisecond, name: "incomplete report", run: func(d *demo) {
			_ = d.page.SubmitIncident(d.ctx, page.IncidentReport{Type: "theft", Location: "Library"})
		}},
		{at: 900 * time.Millisecond, name: "complete report", run: func(d *demo) {
			_ = d.page.SubmitIncident(d.ctx, page.IncidentReport{
				Type:        "theft",
				Location:    "Library",
				Date:        time.Now().Format(time.DateOnly),
				Description: "Bike taken from the east rack",
			})
		}},
		{at: 1500 * time.Millisecond, name: "load map", run: func(d *demo) {
			d.page.Map.Load()
		}},
		{at: mapReady + 200*time.Millisecond, name: "click map", run: func(d *demo) {
			d.page.Map.Click("emergency-phone")
		}},
		{at: mapReady + 900*time.Millisecond, name: "quick call", run: func(d *demo) {
			d.page.QuickCall(page.EmergencyContacts()[1])
		}},
		{at: mapReady + 1500*time.Millisecond, name: "enroll", run: func(d *demo) {
			d.page.Enroll(page.Courses()[0])
		}},
		{at: mapReady + 2100*time.Millisecond, name: "contact", run: func(d *demo) {
			_ = d.page.SendMessage(d.ctx, page.ContactMessage{
				Name:    "Demo Student",
				Email:   "student@example.edu",
				Subject: "Lighting",
				Message: "The path by the gym is dark after 9pm.",
			})
		}},
		{at: mapReady + 2300*time.Millisecond, name: "dismiss newest", run: func(d *demo) {
			d.engine.Notifications().DismissNewest()
		}},
	}

	for i := 1; i*demoWindow < contentHeight(); i++ {
		steps = append(steps, demoStep{
			at:   time.Duration(i) * 700 * time.Millisecond,
			name: "scroll",
			run: func(d *demo) {
				d.top = min(d.top+demoWindow, d.content-demoWindow)
				d.detector.Scroll(d.top, demoWindow)
			},
		})
	}

	return steps
}

func contentHeight() int {
	return len(page.CardElements()) * (demoCardHeight + demoCardGap)
}

// schedule arms every step on sched and returns when the session is over:
// the last step plus the longest notification or counter lifetime.
func (d *demo) schedule(sched host.Scheduler, steps []demoStep) time.Duration {
	var last time.Duration
	for _, s := range steps {
		sched.After(s.at, func() {
			d.logger.Debug().Str("step", s.name).Msg("demo step")
			s.run(d)
		})
		last = max(last, s.at)
	}
	return last + d.lifetime + 200*time.Millisecond
}
