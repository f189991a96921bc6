// Package config handles configuration loading and validation for beacon.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/beacon/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	Notifications NotificationsConfig `yaml:"notifications"`
	Reveal        RevealConfig        `yaml:"reveal"`
	Map           MapConfig           `yaml:"map"`
	Stats         []StatConfig        `yaml:"stats"`
	Theme         string              `yaml:"theme"`
	DataDir       string              `yaml:"-"` // set by caller, not from config file
}

// NotificationsConfig tunes the notification lifecycle.
type NotificationsConfig struct {
	TTL        time.Duration `yaml:"ttl"`
	Fade       time.Duration `yaml:"fade"`
	MaxVisible int           `yaml:"max_visible"`
}

// RevealConfig selects which page elements animate in when scrolled into view.
type RevealConfig struct {
	Threshold float64  `yaml:"threshold"`
	Patterns  []string `yaml:"patterns"` // doublestar patterns over element ids
}

// MapConfig controls the simulated campus map loader.
type MapConfig struct {
	LoadDelay time.Duration `yaml:"load_delay"`
}

// StatConfig defines one animated statistic on the overview tab.
type StatConfig struct {
	ID        string        `yaml:"id"`
	Label     string        `yaml:"label"`
	Target    int           `yaml:"target"`
	Interval  time.Duration `yaml:"interval"`
	Increment int           `yaml:"increment"`
}

// DefaultStats returns the statistics shown when the config file defines none.
func DefaultStats() []StatConfig {
	return []StatConfig{
		{ID: "campus-safety-score", Label: "Campus Safety Score", Target: 95, Interval: 50 * time.Millisecond, Increment: 1},
		{ID: "incidents-resolved", Label: "Incidents Resolved", Target: 124, Interval: 20 * time.Millisecond, Increment: 1},
		{ID: "safety-workshops", Label: "Safety Workshops", Target: 36, Interval: 70 * time.Millisecond, Increment: 1},
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Notifications: NotificationsConfig{
			TTL:        5 * time.Second,
			Fade:       300 * time.Millisecond,
			MaxVisible: 5,
		},
		Reveal: RevealConfig{
			Threshold: 0.1,
			Patterns:  []string{"resources/*", "emergency/*", "courses/*"},
		},
		Map: MapConfig{
			LoadDelay: 1500 * time.Millisecond,
		},
		Stats: DefaultStats(),
		Theme: styles.DefaultTheme,
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.DataDir = dataDir
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Notifications.TTL == 0 {
		c.Notifications.TTL = defaults.Notifications.TTL
	}
	if c.Notifications.Fade == 0 {
		c.Notifications.Fade = defaults.Notifications.Fade
	}
	if c.Reveal.Threshold == 0 {
		c.Reveal.Threshold = defaults.Reveal.Threshold
	}
	if c.Reveal.Patterns == nil {
		c.Reveal.Patterns = defaults.Reveal.Patterns
	}
	if c.Map.LoadDelay == 0 {
		c.Map.LoadDelay = defaults.Map.LoadDelay
	}
	if c.Stats == nil {
		c.Stats = defaults.Stats
	}
	for i := range c.Stats {
		if c.Stats[i].Increment == 0 {
			c.Stats[i].Increment = 1
		}
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if c.Notifications.TTL < 0 || c.Notifications.Fade < 0 {
		return fmt.Errorf("notifications.ttl and notifications.fade cannot be negative")
	}

	if c.Notifications.MaxVisible < 0 {
		return fmt.Errorf("notifications.max_visible cannot be negative")
	}

	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", c.Theme, styles.ThemeNames())
	}

	seen := make(map[string]bool, len(c.Stats))
	for i, s := range c.Stats {
		if s.ID == "" {
			return fmt.Errorf("stats[%d]: id is required", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("stats[%d]: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = true
	}

	return nil
}
