package logging

import "context"

type contextKey string

const (
	pageSessionKey contextKey = "page_session"
	formKey        contextKey = "form"
)

// WithPageSession adds the page session ID to the context.
func WithPageSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, pageSessionKey, sessionID)
}

// WithForm adds the name of the form being handled to the context.
func WithForm(ctx context.Context, form string) context.Context {
	return context.WithValue(ctx, formKey, form)
}

// GetPageSession retrieves the page session ID from the context.
// Returns empty string if not present.
func GetPageSession(ctx context.Context) string {
	if id, ok := ctx.Value(pageSessionKey).(string); ok {
		return id
	}
	return ""
}

// GetForm retrieves the form name from the context.
// Returns empty string if not present.
func GetForm(ctx context.Context) string {
	if name, ok := ctx.Value(formKey).(string); ok {
		return name
	}
	return ""
}
