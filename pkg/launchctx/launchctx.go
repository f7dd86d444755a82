// Package launchctx carries per-launch tracing data on a context
package launchctx

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Unexported struct pointers prevent key collisions.
var (
	launchIDKey  = &struct{}{}
	startTimeKey = &struct{}{}
)

// WithLaunchID adds a launch ID to the context, generating one when empty
func WithLaunchID(parent context.Context, launchID string) context.Context {
	if launchID == "" {
		launchID = GenerateLaunchID()
	}
	return context.WithValue(parent, launchIDKey, launchID)
}

// GetLaunchID retrieves the launch ID, or "" when none is set
func GetLaunchID(ctx context.Context) string {
	if id, ok := ctx.Value(launchIDKey).(string); ok {
		return id
	}
	return ""
}

// WithStartTime records when the launch began
func WithStartTime(parent context.Context, startTime time.Time) context.Context {
	return context.WithValue(parent, startTimeKey, startTime)
}

// GetStartTime retrieves the launch start time
func GetStartTime(ctx context.Context) (time.Time, bool) {
	t, ok := ctx.Value(startTimeKey).(time.Time)
	return t, ok
}

// Elapsed returns the time since the recorded start, or zero when none was recorded
func Elapsed(ctx context.Context) time.Duration {
	start, ok := GetStartTime(ctx)
	if !ok {
		return 0
	}
	return time.Since(start)
}

// GenerateLaunchID creates a new unique launch ID
func GenerateLaunchID() string {
	return "launch_" + uuid.New().String()
}

// Enrich adds a launch ID and start time unless already present
func Enrich(parent context.Context) context.Context {
	ctx := parent
	if GetLaunchID(ctx) == "" {
		ctx = WithLaunchID(ctx, "")
	}
	if _, ok := GetStartTime(ctx); !ok {
		ctx = WithStartTime(ctx, time.Now())
	}
	return ctx
}
