package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/beacon/internal/core/eventloop"
	"github.com/colonyops/beacon/internal/core/host"
	"github.com/colonyops/beacon/internal/core/notify"
	vis "github.com/colonyops/beacon/internal/core/viewport"
	"github.com/colonyops/beacon/internal/feedback"
	"github.com/colonyops/beacon/internal/page"
	"github.com/colonyops/beacon/internal/printer"
	"github.com/colonyops/beacon/pkg/iojson"
)

// noteInput is one notification read from the command line or a JSON file.
type noteInput struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

type NotifyCmd struct {
	flags *Flags

	kind   string
	every  time.Duration
	reader iojson.FileReader[[]noteInput]
}

// NewNotifyCmd creates a new notify command.
func NewNotifyCmd(flags *Flags) *NotifyCmd {
	return &NotifyCmd{flags: flags}
}

// Register adds the notify command to the application.
func (cmd *NotifyCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "notify",
		Usage:     "Show notifications through their full lifecycle",
		UsageText: "beacon notify [--kind <kind>] [message...]",
		Description: `Pushes notifications through the feedback engine and prints each one as it is
shown, starts fading and is removed. Timing comes from the notifications
section of the config file.

Messages can be provided as:
- Command-line arguments, one notification each
- A JSON array of {"message", "kind"} objects with -f/--file
- The same JSON array on stdin if no argument is provided

Examples:
  beacon notify "Door 4 is locked"
  beacon notify --kind error "Could not reach campus police"
  echo '[{"message":"Saved","kind":"success"}]' | beacon notify`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "kind",
				Aliases:     []string{"k"},
				Usage:       "kind for command-line messages (info, success, warning, error)",
				Value:       string(notify.KindInfo),
				Destination: &cmd.kind,
			},
			&cli.DurationFlag{
				Name:        "every",
				Usage:       "delay between consecutive notifications",
				Value:       500 * time.Millisecond,
				Destination: &cmd.every,
			},
			cmd.reader.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *NotifyCmd) run(ctx context.Context, c *cli.Command) error {
	notes, err := cmd.inputs(c.Args().Slice())
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		return fmt.Errorf("no messages provided")
	}

	cfg := cmd.flags.Config
	loop := eventloop.New()
	presenter := printer.NewPresenter(c.Root().Writer)

	engine := feedback.New(feedback.Options{
		Scheduler:    loop,
		Detector:     vis.New(),
		Presentation: presenter,
		Notifications: feedback.NotificationOptions{
			TTL:        cfg.Notifications.TTL,
			Fade:       cfg.Notifications.Fade,
			MaxVisible: cfg.Notifications.MaxVisible,
		},
		RevealThreshold: cfg.Reveal.Threshold,
		Logger:          log.Logger,
	})

	end := scheduleNotes(loop, engine, notes, cmd.every, cfg.Notifications.TTL+cfg.Notifications.Fade)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	loop.After(end, cancel)

	if err := loop.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return ctx.Err()
}

// inputs returns the notifications named by args, or the ones read from the
// file flag or stdin when no args are given.
func (cmd *NotifyCmd) inputs(args []string) ([]noteInput, error) {
	if len(args) > 0 && cmd.reader.Path() != "" {
		return nil, fmt.Errorf("pass messages as arguments or with --file, not both")
	}

	if len(args) == 0 {
		notes, err := cmd.reader.Read()
		if err != nil {
			return nil, fmt.Errorf("read notifications: %w", err)
		}
		return notes, nil
	}

	notes := make([]noteInput, len(args))
	for i, a := range args {
		notes[i] = noteInput{Message: a, Kind: cmd.kind}
	}
	return notes, nil
}

// scheduleNotes pushes one note every interval and returns when the last one
// has been removed.
func scheduleNotes(sched host.Scheduler, n page.Notifier, notes []noteInput, every, lifetime time.Duration) time.Duration {
	var at time.Duration
	for i, note := range notes {
		at = time.Duration(i) * every
		msg := strings.TrimSpace(note.Message)
		kind := notify.ParseKind(note.Kind)
		sched.After(at, func() {
			n.Notify(msg, kind)
		})
	}
	return at + lifetime + 100*time.Millisecond
}
