package commands

import (
	"bytes"
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/beacon/internal/core/config"
	"github.com/colonyops/beacon/internal/core/host/hosttest"
	"github.com/colonyops/beacon/internal/page"
	"github.com/colonyops/beacon/internal/printer"
)

func runDemo(t *testing.T, cfg config.Config) (*printer.Presenter, *demo, string) {
	t.Helper()

	var buf bytes.Buffer
	clock := hosttest.NewClock()
	presenter := printer.NewPresenter(&buf)

	d := newDemo(context.Background(), &cfg, clock, presenter, zerolog.Nop())
	end := d.schedule(clock, demoScript(&cfg))
	clock.Advance(end)

	return presenter, d, ansi.Strip(buf.String())
}

func TestDemo_playsWholeScript(t *testing.T) {
	presenter, _, out := runDemo(t, config.DefaultConfig())

	for _, want := range []string{
		"Please fill in all required fields",
		"Your incident report has been submitted",
		"Campus safety map loaded successfully",
		"You clicked on a emergency phone",
		"Simulating call to Campus Police (555-0100)",
		"You've registered for Self-Defense Basics",
	} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 0, presenter.Attached(), "every notification should be gone by the end")
}

func TestDemo_revealsEveryCard(t *testing.T) {
	_, d, out := runDemo(t, config.DefaultConfig())

	for _, el := range page.CardElements() {
		assert.Contains(t, out, "revealed "+string(el))
	}
	assert.Equal(t, 0, d.engine.Reveals().PendingCount())
}

func TestDemo_summaryShowsFinalCounts(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig()
	clock := hosttest.NewClock()
	presenter := printer.NewPresenter(&buf)

	d := newDemo(context.Background(), &cfg, clock, presenter, zerolog.Nop())
	clock.Advance(d.schedule(clock, demoScript(&cfg)))

	buf.Reset()
	presenter.Summary()
	out := ansi.Strip(buf.String())

	for _, s := range cfg.Stats {
		assert.Regexp(t, page.StatID(s.ID)+`: +`+strconv.Itoa(s.Target), out)
	}
}

func TestDemo_scheduleCoversLongestLifetime(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Notifications.TTL = time.Second
	cfg.Notifications.Fade = 100 * time.Millisecond
	cfg.Stats = []config.StatConfig{
		{ID: "slow", Label: "Slow", Target: 10, Interval: time.Second, Increment: 3},
	}

	clock := hosttest.NewClock()
	d := newDemo(context.Background(), &cfg, clock, printer.NewPresenter(&bytes.Buffer{}), zerolog.Nop())

	steps := demoScript(&cfg)
	var last time.Duration
	for _, s := range steps {
		last = max(last, s.at)
	}

	// ceil(10/3) ticks of one second each
	require.Equal(t, last+4*time.Second+200*time.Millisecond, d.schedule(clock, steps))
}

func TestDemo_invalidStatsReportedAsNotification(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Stats = []config.StatConfig{{ID: "broken", Label: "Broken", Target: 0, Interval: time.Millisecond, Increment: 1}}

	_, _, out := runDemo(t, cfg)

	assert.Contains(t, out, "Page failed to start")
}
