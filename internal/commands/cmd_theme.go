package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/beacon/internal/core/prefs"
	"github.com/colonyops/beacon/internal/core/styles"
	"github.com/colonyops/beacon/internal/printer"
)

type ThemeCmd struct {
	flags *Flags
}

// NewThemeCmd creates a new theme command.
func NewThemeCmd(flags *Flags) *ThemeCmd {
	return &ThemeCmd{flags: flags}
}

// Register adds the theme command to the application.
func (cmd *ThemeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "theme",
		Usage: "Show or change the saved color theme",
		Description: `The theme is saved in <data-dir>/prefs.yaml and overrides the theme set in
the config file. The TUI toggles the same preference with 't'.`,
		Action: cmd.runGet,
		Commands: []*cli.Command{
			{
				Name:      "set",
				Usage:     "Save a theme",
				UsageText: "beacon theme set <name>",
				Action:    cmd.runSet,
			},
			{
				Name:   "toggle",
				Usage:  "Switch between the light and dark themes",
				Action: cmd.runToggle,
			},
			{
				Name:   "list",
				Usage:  "List available themes",
				Action: cmd.runList,
			},
		},
	})

	return app
}

func (cmd *ThemeCmd) store() *prefs.Store {
	return prefs.NewStore(cmd.flags.DataDir, cmd.flags.Config.Theme)
}

func (cmd *ThemeCmd) runGet(ctx context.Context, _ *cli.Command) error {
	theme, err := cmd.store().Theme()
	if err != nil {
		return err
	}
	printer.Ctx(ctx).Printf("%s", theme)
	return nil
}

func (cmd *ThemeCmd) runSet(ctx context.Context, c *cli.Command) error {
	name := c.Args().First()
	if name == "" {
		return fmt.Errorf("theme name required (available: %v)", styles.ThemeNames())
	}

	if err := cmd.store().SetTheme(name); err != nil {
		return fmt.Errorf("%w (available: %v)", err, styles.ThemeNames())
	}
	printer.Ctx(ctx).Successf("Theme set to %s", name)
	return nil
}

func (cmd *ThemeCmd) runToggle(ctx context.Context, _ *cli.Command) error {
	name, err := cmd.store().Toggle()
	if err != nil {
		return err
	}
	printer.Ctx(ctx).Successf("Theme set to %s", name)
	return nil
}

func (cmd *ThemeCmd) runList(ctx context.Context, _ *cli.Command) error {
	current, err := cmd.store().Theme()
	if err != nil {
		return err
	}

	p := printer.Ctx(ctx)
	for _, name := range styles.ThemeNames() {
		marker := " "
		if name == current {
			marker = "*"
		}
		p.Printf("%s %s", marker, name)
	}
	return nil
}
