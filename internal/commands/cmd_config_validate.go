package commands

import (
	"context"
	"errors"
	"os"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/beacon/internal/printer"
	"github.com/colonyops/beacon/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "beacon config validate [options]",
				Description: "Validates the configuration file, checking reveal patterns, statistics, timings and file paths.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// validationError is one failed field in the JSON report.
type validationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type validationReport struct {
	Valid  bool              `json:"valid"`
	Path   string            `json:"path"`
	Errors []validationError `json:"errors,omitempty"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	report := cmd.validate()

	var err error
	if cmd.format == "json" {
		err = iojson.WriteWith(c.Root().Writer, os.Stderr, report)
	} else {
		cmd.outputText(printer.Ctx(ctx), report)
	}
	if err != nil {
		return err
	}

	if !report.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *ConfigValidateCmd) validate() validationReport {
	report := validationReport{Valid: true, Path: cmd.flags.ConfigPath}

	err := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath)
	if err == nil {
		return report
	}
	report.Valid = false

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		report.Errors = []validationError{{Message: err.Error()}}
		return report
	}
	for _, fe := range fieldErrs {
		report.Errors = append(report.Errors, validationError{Field: fe.Field, Message: fe.Err.Error()})
	}
	return report
}

func (cmd *ConfigValidateCmd) outputText(p *printer.Printer, report validationReport) {
	for _, e := range report.Errors {
		if e.Field == "" {
			p.Errorf("%s", e.Message)
			continue
		}
		p.Errorf("%s: %s", e.Field, e.Message)
	}

	if report.Valid {
		p.Successf("Configuration is valid")
		return
	}
	p.Printf("")
	p.Errorf("%d error(s) found", len(report.Errors))
}
