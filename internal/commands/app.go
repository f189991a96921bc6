package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

const (
	AppName      = "beacon"
	AppUsage     = "Campus safety page in your terminal"
	AppUsageText = "beacon [global options] command [command options]"

	AppDescription = `Beacon renders the campus safety page as a terminal UI: animated statistics,
cards that reveal as you scroll, forms and a campus map, with every outcome
reported through short-lived notifications.

Run 'beacon' with no arguments to open the interactive page.
Run 'beacon demo' to play a scripted session without a terminal UI.`
)

// GlobalFlags returns the root flags, bound to flags.
func GlobalFlags(flags *Flags) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error, fatal, panic)",
			Sources:     cli.EnvVars("BEACON_LOG_LEVEL"),
			Value:       "info",
			Destination: &flags.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "path to log file (defaults to <data-dir>/beacon.log)",
			Sources:     cli.EnvVars("BEACON_LOG_FILE"),
			Destination: &flags.LogFile,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to config file",
			Sources:     cli.EnvVars("BEACON_CONFIG"),
			Value:       DefaultConfigPath(),
			Destination: &flags.ConfigPath,
		},
		&cli.StringFlag{
			Name:        "data-dir",
			Usage:       "path to data directory",
			Sources:     cli.EnvVars("BEACON_DATA_DIR"),
			Value:       DefaultDataDir(),
			Destination: &flags.DataDir,
		},
	}
}

// RegisterAll adds every subcommand to app and makes the TUI its default
// action.
func RegisterAll(app *cli.Command, flags *Flags) *cli.Command {
	tuiCmd := NewTuiCmd(flags)

	app = NewDemoCmd(flags).Register(app)
	app = NewNotifyCmd(flags).Register(app)
	app = NewThemeCmd(flags).Register(app)
	app = NewConfigValidateCmd(flags).Register(app)

	// TUI flags live on the root command
	app.Flags = append(app.Flags, tuiCmd.Flags()...)

	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'beacon --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	return app
}
