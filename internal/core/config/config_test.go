package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dataDir := t.TempDir()

	cfg, err := Load(filepath.Join(dataDir, "nope.yaml"), dataDir)
	require.NoError(t, err)

	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Equal(t, 5*time.Second, cfg.Notifications.TTL)
	assert.Equal(t, 300*time.Millisecond, cfg.Notifications.Fade)
	assert.Equal(t, 5, cfg.Notifications.MaxVisible)
	assert.Equal(t, 0.1, cfg.Reveal.Threshold)
	assert.Equal(t, 1500*time.Millisecond, cfg.Map.LoadDelay)
	assert.Len(t, cfg.Stats, 3)
	assert.Equal(t, "light", cfg.Theme)
}

func TestLoad_ParsesDurationsAndStats(t *testing.T) {
	path := writeConfig(t, `
notifications:
  ttl: 2s
  fade: 150ms
  max_visible: 3
reveal:
  threshold: 0.25
  patterns: ["cards/**"]
map:
  load_delay: 500ms
stats:
  - id: drills
    label: Fire Drills
    target: 12
    interval: 40ms
theme: dark
`)

	cfg, err := Load(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Notifications.TTL)
	assert.Equal(t, 150*time.Millisecond, cfg.Notifications.Fade)
	assert.Equal(t, 3, cfg.Notifications.MaxVisible)
	assert.Equal(t, 0.25, cfg.Reveal.Threshold)
	assert.Equal(t, []string{"cards/**"}, cfg.Reveal.Patterns)
	assert.Equal(t, 500*time.Millisecond, cfg.Map.LoadDelay)
	require.Len(t, cfg.Stats, 1)
	assert.Equal(t, StatConfig{ID: "drills", Label: "Fire Drills", Target: 12, Interval: 40 * time.Millisecond, Increment: 1}, cfg.Stats[0])
	assert.Equal(t, "dark", cfg.Theme)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad yaml", "notifications: [", "parse config file"},
		{"unknown theme", "theme: neon", "unknown theme"},
		{"negative max", "notifications:\n  max_visible: -1", "max_visible"},
		{"duplicate stat", "stats:\n  - {id: a, target: 1, interval: 1ms}\n  - {id: a, target: 2, interval: 1ms}", "duplicate id"},
		{"missing stat id", "stats:\n  - {target: 1, interval: 1ms}", "id is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body), t.TempDir())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_RequiresDataDir(t *testing.T) {
	_, err := Load("", "")
	assert.ErrorContains(t, err, "data directory")
}

func TestValidateDeep_ValidDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()

	assert.NoError(t, cfg.ValidateDeep(""))
}

func TestValidateDeep_FieldErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Reveal.Patterns = []string{"resources/*", "broken/[a"}
	cfg.Stats = []StatConfig{{ID: "x", Target: 0, Interval: time.Millisecond, Increment: 1}}

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 2)
	assert.Equal(t, "reveal.patterns[1]", fieldErrs[0].Field)
	assert.Equal(t, "stats[0].target", fieldErrs[1].Field)
}

func TestValidateDeep_Threshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Reveal.Threshold = 1.5

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "reveal.threshold", fieldErrs[0].Field)
}

func TestValidateDeep_ConfigPathIsDirectory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()

	err := cfg.ValidateDeep(t.TempDir())
	assert.ErrorContains(t, err, "is a directory")
}
