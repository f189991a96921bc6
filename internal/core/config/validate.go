package config

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
)

// ValidateDeep performs field-level validation of the configuration on top of
// Validate: reveal patterns, thresholds, stat values and the config file
// location. The configPath argument may be empty to skip the file check.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		criterio.Run("reveal.threshold", c.Reveal.Threshold, isFraction),
		c.validatePatterns(),
		c.validateStats(),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

func isFraction(v float64) error {
	if v <= 0 || v > 1 {
		return fmt.Errorf("must be in (0, 1], got %v", v)
	}
	return nil
}

func (c *Config) validatePatterns() error {
	var errs criterio.FieldErrorsBuilder
	for i, p := range c.Reveal.Patterns {
		if !doublestar.ValidatePattern(p) {
			errs = errs.Append(fmt.Sprintf("reveal.patterns[%d]", i), fmt.Errorf("invalid pattern %q", p))
		}
	}
	return errs.ToError()
}

func (c *Config) validateStats() error {
	var errs criterio.FieldErrorsBuilder
	for i, s := range c.Stats {
		prefix := fmt.Sprintf("stats[%d]", i)
		if s.Target <= 0 {
			errs = errs.Append(prefix+".target", fmt.Errorf("must be positive, got %d", s.Target))
		}
		if s.Interval <= 0 {
			errs = errs.Append(prefix+".interval", fmt.Errorf("must be positive, got %s", s.Interval))
		}
		if s.Increment <= 0 {
			errs = errs.Append(prefix+".increment", fmt.Errorf("must be positive, got %d", s.Increment))
		}
	}
	return errs.ToError()
}
