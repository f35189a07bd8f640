package builder

import (
	"io"
	"log/slog"
	"time"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Option customises a Builder.
type Option func(*Builder)

// WithConfig seeds the builder with an existing configuration.
func WithConfig(cfg model.FormConfig) Option {
	return func(b *Builder) {
		b.cfg = cfg
		b.seeded = true
	}
}

// WithKeyGenerator overrides how candidate field keys are produced. Bulk
// callers should prefer model.UUIDKeys over the timestamp default.
func WithKeyGenerator(fn model.KeyFunc) Option {
	return func(b *Builder) {
		if fn != nil {
			b.keys = fn
		}
	}
}

// WithClock overrides the time source used for generated ids.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithOnChange registers a callback invoked with every new configuration.
func WithOnChange(fn func(model.FormConfig)) Option {
	return func(b *Builder) {
		b.onChange = fn
	}
}

// WithLogger attaches a structured logger. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
