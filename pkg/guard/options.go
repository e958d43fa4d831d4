package guard

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/guards/pkg/logger"
)

// Position tells whether a guard validates an argument or the result.
type Position string

const (
	PositionArgument Position = "argument"
	PositionResult   Position = "result"
)

// Option configures Compose.
type Option func(*options)

// WithLogger records guard violations at debug level.
// A nil logger disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithName labels the wrapped function in log records.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithContext sets the context passed to the logger, so context extractors
// configured on it can tag violation records. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

type options struct {
	logger *slog.Logger
	name   string
	ctx    context.Context
}

func newOptions(opts []Option) options {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o options) logViolation(pos Position, index int, err error) {
	if o.logger == nil {
		return
	}
	o.logger.DebugContext(o.ctx, "guard violation",
		logger.Component("guard"),
		logger.Function(o.name),
		logger.GuardPosition(string(pos), index),
		logger.Error(err),
	)
}
