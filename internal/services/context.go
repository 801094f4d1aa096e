package services

import "context"

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	profileKey   contextKey = "profile"
)

// WithRequestID annotates context with a correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithProfile annotates context with the conversion profile ID.
func WithProfile(ctx context.Context, profile string) context.Context {
	if profile == "" {
		return ctx
	}
	return context.WithValue(ctx, profileKey, profile)
}

// ProfileFromContext returns the profile ID if present.
func ProfileFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(profileKey)
	if str, ok := v.(string); ok && str != "" {
		return str, true
	}
	return "", false
}
