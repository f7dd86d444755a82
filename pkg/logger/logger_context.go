package logger

import (
	"context"

	"github.com/arch-ops/omega-launcher/pkg/launchctx"
)

// contextLogger adds launch tracing fields to every entry
type contextLogger struct {
	ctx  context.Context
	base Logger
}

// WithContext returns a logger that includes launch_id and elapsed_ms from ctx
func WithContext(ctx context.Context, base Logger) Logger {
	if ctx == nil {
		return base
	}
	return &contextLogger{ctx: ctx, base: base}
}

func (c *contextLogger) fields(extra []Field) []Field {
	var fields []Field
	if id := launchctx.GetLaunchID(c.ctx); id != "" {
		fields = append(fields, WithField("launch_id", id))
	}
	if _, ok := launchctx.GetStartTime(c.ctx); ok {
		fields = append(fields, WithField("elapsed_ms", launchctx.Elapsed(c.ctx).Milliseconds()))
	}
	return append(fields, extra...)
}

func (c *contextLogger) Info(message string, fields ...Field) {
	c.base.Info(message, c.fields(fields)...)
}

func (c *contextLogger) Error(message string, fields ...Field) {
	c.base.Error(message, c.fields(fields)...)
}

func (c *contextLogger) Warn(message string, fields ...Field) {
	c.base.Warn(message, c.fields(fields)...)
}

func (c *contextLogger) Debug(message string, fields ...Field) {
	c.base.Debug(message, c.fields(fields)...)
}

func (c *contextLogger) WithComponent(component string) Logger {
	return &contextLogger{ctx: c.ctx, base: c.base.WithComponent(component)}
}
