package argsext

import (
	"log/slog"

	"github.com/cardinalby/go-args-ext/cmdargs"
)

// Func is called by Drive for each token.
// `cur` is positioned right after `token`, so Func can consume the following tokens as values.
// A non-nil error stops the iteration.
type Func[T any] func(cur *cmdargs.Cursor, state *T, token cmdargs.Token) error

// Drive calls fn for every token not consumed by previous fn calls.
// It returns nil when tokens are exhausted, or the first error returned by fn.
func Drive[T any](tokens []cmdargs.Token, state *T, fn Func[T], opts ...Option) error {
	o := newOptions(opts)
	cur := cmdargs.NewCursor(tokens)
	processed := 0
	for {
		token, ok := cur.Next()
		if !ok {
			break
		}
		o.logger.Debug("token",
			slog.String("kind", token.Kind().String()),
			slog.String("qualifier", token.Qualifier()),
			slog.Int("position", token.Position()),
		)
		if err := fn(cur, state, token); err != nil {
			o.logger.Debug("callback failed",
				slog.String("token", token.String()),
				slog.Any("error", err),
			)
			return err
		}
		processed++
	}
	o.logger.Debug("drive finished", slog.Int("processed", processed), slog.Int("total", len(tokens)))
	return nil
}

// WithArgs tokenizes args provided by src and drives fn over them. See Drive
func WithArgs[T any](src cmdargs.Source, state *T, fn Func[T], opts ...Option) error {
	return Drive(cmdargs.TokenizeSource(src), state, fn, opts...)
}
