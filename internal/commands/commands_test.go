package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/beacon/internal/core/config"
	"github.com/colonyops/beacon/internal/printer"
)

// testApp builds a root command around flags with output captured in the
// returned buffer. Exit codes are reported as errors instead of exiting.
func testApp(t *testing.T, cfg *config.Config) (*cli.Command, *Flags, *bytes.Buffer) {
	t.Helper()

	if cfg == nil {
		c := config.DefaultConfig()
		cfg = &c
	}
	dir := t.TempDir()
	cfg.DataDir = dir

	flags := &Flags{DataDir: dir, Config: cfg}
	var buf bytes.Buffer

	app := &cli.Command{
		Name:           "beacon",
		Writer:         &buf,
		ErrWriter:      &buf,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	app = RegisterAll(app, flags)

	return app, flags, &buf
}

func run(t *testing.T, app *cli.Command, out *bytes.Buffer, args ...string) error {
	t.Helper()
	ctx := printer.NewContext(context.Background(), printer.New(out))
	return app.Run(ctx, append([]string{"beacon"}, args...))
}

func TestRegisterAll_commands(t *testing.T) {
	app, _, _ := testApp(t, nil)

	names := make([]string, len(app.Commands))
	for i, c := range app.Commands {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"demo", "notify", "theme", "config"}, names)

	var profiler bool
	for _, f := range app.Flags {
		for _, n := range f.Names() {
			profiler = profiler || n == "profiler-port"
		}
	}
	assert.True(t, profiler, "tui flags should be registered on the root command")
}

func TestRegisterAll_rejectsUnknownCommand(t *testing.T) {
	app, _, buf := testApp(t, nil)

	err := run(t, app, buf, "nonsense")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "nonsense"`)
}

func TestGlobalFlags_bindToFlags(t *testing.T) {
	flags := &Flags{}
	app := &cli.Command{
		Name:   AppName,
		Flags:  GlobalFlags(flags),
		Action: func(context.Context, *cli.Command) error { return nil },
	}

	require.NoError(t, app.Run(context.Background(), []string{
		AppName, "--log-level", "debug", "--config", "/tmp/c.yaml", "--data-dir", "/tmp/d",
	}))

	assert.Equal(t, "debug", flags.LogLevel)
	assert.Equal(t, "/tmp/c.yaml", flags.ConfigPath)
	assert.Equal(t, "/tmp/d", flags.DataDir)
}
