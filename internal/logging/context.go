// Package logging wires zerolog loggers through context.Context.
package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx. Without one, zerolog
// hands back its disabled logger, so callers never nil-check.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// Enrich attaches a child of the ctx logger whose fields are added by fn.
func Enrich(ctx context.Context, fn func(zerolog.Context) zerolog.Context) context.Context {
	return WithContext(ctx, fn(FromContext(ctx).With()).Logger())
}

// WithComponent tags every event with component.
func WithComponent(ctx context.Context, component string) context.Context {
	return Enrich(ctx, func(c zerolog.Context) zerolog.Context { return c.Str("component", component) })
}

// WithSetup tags every event with the layout setup name.
func WithSetup(ctx context.Context, setup string) context.Context {
	return Enrich(ctx, func(c zerolog.Context) zerolog.Context { return c.Str("setup", setup) })
}
