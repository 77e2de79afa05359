package busan

import "context"

// Option configures the executors provided by this package.
type Option func(*config)

type config struct {
	baseCtx      context.Context
	panicToError bool
}

func defaultConfig() config {
	return config{
		baseCtx:      context.Background(),
		panicToError: true,
	}
}

// WithContext sets the base context task contexts derive from.
// Ending it cancels every task the executor starts afterwards.
// Defaults to context.Background().
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("busan: base context cannot be nil")
	}

	return func(c *config) {
		c.baseCtx = ctx
	}
}

// WithPanicToError converts task panics to errors. Enabled by default.
func WithPanicToError(enabled bool) Option {
	return func(c *config) {
		c.panicToError = enabled
	}
}
