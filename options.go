package argsext

import (
	"io"
	"log/slog"
)

type options struct {
	logger *slog.Logger
}

// Option configures Drive and the functions built on top of it
type Option func(*options)

// WithLogger sets the logger receiving debug records about processed tokens.
// By default, nothing is logged
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
