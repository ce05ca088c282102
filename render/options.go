package render

import (
	"io"
	"log/slog"
)

type options struct {
	logger *slog.Logger
	onClip func(Request)
	strict bool
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures a Display or Canvas
type Option func(*options)

// WithLogger sets the logger for present statistics and strict-mode warnings
// The default logger discards everything
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClipHandler reports every request dropped for lying outside the grid
// Without a handler clipping is silent
func WithClipHandler(fn func(Request)) Option {
	return func(o *options) { o.onClip = fn }
}

// WithStrict enables warnings for degenerate triangles and non-convex quads
// Rendering is unchanged
func WithStrict(strict bool) Option {
	return func(o *options) { o.strict = strict }
}
