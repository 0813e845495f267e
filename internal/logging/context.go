package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags subsequent log lines with the subsystem that emits them.
func WithComponent(ctx context.Context, component string) context.Context {
	return withField(ctx, "component", component)
}

// WithViewportID tags log lines with the viewport whose events are processed.
func WithViewportID(ctx context.Context, viewportID string) context.Context {
	return withField(ctx, "viewport_id", viewportID)
}

// WithProfile tags log lines with the zoom profile in use.
func WithProfile(ctx context.Context, profile string) context.Context {
	return withField(ctx, "profile", profile)
}

func withField(ctx context.Context, key, value string) context.Context {
	return FromContext(ctx).With().Str(key, value).Logger().WithContext(ctx)
}
