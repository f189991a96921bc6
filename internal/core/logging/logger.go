package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a logger for a named component from the global logger.
func Component(name string) zerolog.Logger {
	return With(log.Logger, name)
}

// With derives a component logger from base. Uses the "cmp" key so every
// beacon component is filterable the same way.
func With(base zerolog.Logger, name string) zerolog.Logger {
	return base.With().Str("cmp", name).Logger()
}
