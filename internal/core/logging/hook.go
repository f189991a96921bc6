package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts page_session and form from context and adds them to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if id := GetPageSession(ctx); id != "" {
		e.Str("page_session", id)
	}

	if form := GetForm(ctx); form != "" {
		e.Str("form", form)
	}
}
