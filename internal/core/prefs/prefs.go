// Package prefs persists the user's theme preference, the only state beacon
// keeps between runs.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/beacon/internal/core/styles"
)

// Prefs is the on-disk preference document.
type Prefs struct {
	Theme string `yaml:"theme"`
}

// Store reads and writes Prefs at a fixed path.
type Store struct {
	path     string
	fallback string
}

// NewStore returns a store for <dataDir>/prefs.yaml. fallback is the theme
// reported when nothing has been saved yet.
func NewStore(dataDir, fallback string) *Store {
	if _, ok := styles.GetPalette(fallback); !ok {
		fallback = styles.DefaultTheme
	}
	return &Store{
		path:     filepath.Join(dataDir, "prefs.yaml"),
		fallback: fallback,
	}
}

// Path returns the preference file location.
func (s *Store) Path() string {
	return s.path
}

// Theme returns the saved theme, or the fallback when none is saved or the
// saved value is not a known theme.
func (s *Store) Theme() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return s.fallback, nil
	}
	if err != nil {
		return s.fallback, fmt.Errorf("read prefs: %w", err)
	}

	var p Prefs
	if err := yaml.Unmarshal(data, &p); err != nil {
		return s.fallback, fmt.Errorf("parse prefs: %w", err)
	}
	if _, ok := styles.GetPalette(p.Theme); !ok {
		return s.fallback, nil
	}
	return p.Theme, nil
}

// SetTheme saves theme. Unknown theme names are rejected.
func (s *Store) SetTheme(theme string) error {
	if _, ok := styles.GetPalette(theme); !ok {
		return fmt.Errorf("unknown theme %q", theme)
	}

	data, err := yaml.Marshal(Prefs{Theme: theme})
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// Toggle flips between the light and dark themes, saves the result and
// returns it.
func (s *Store) Toggle() (string, error) {
	current, err := s.Theme()
	if err != nil {
		return current, err
	}

	next := styles.ThemeDark
	if current == styles.ThemeDark {
		next = styles.ThemeLight
	}
	return next, s.SetTheme(next)
}
