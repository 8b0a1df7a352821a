package datefmt

import (
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/datefmt/pkg/locale"
)

// Option is a function that configures a Formatter instance.
type Option func(*Formatter)

// WithResolver sets the collaborator SetLocale uses to load locale data.
// Defaults to locale.Builtin().
func WithResolver(r locale.Resolver) Option {
	return func(f *Formatter) {
		if r != nil {
			f.resolver = r
		}
	}
}

// WithLocation pins every instant to loc. Without it time.Time values keep their own
// location and timestamps or offset-less strings use time.Local.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		if loc != nil {
			f.location = loc
		}
	}
}

// WithClock replaces time.Now as the source of the current instant.
func WithClock(now func() time.Time) Option {
	return func(f *Formatter) {
		if now != nil {
			f.now = now
		}
	}
}

// WithLogger provides a customizable logger for the formatter.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Formatter) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithNoLogging is a convenience option that disables all logging.
func WithNoLogging() Option {
	return func(f *Formatter) {
		f.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

// WithTemplateCache controls memoization of compiled templates. Enabled by default.
func WithTemplateCache(enabled bool) Option {
	return func(f *Formatter) {
		f.cacheEnabled = enabled
	}
}

// WithoutBuiltins skips registration of the ISO named formatters.
func WithoutBuiltins() Option {
	return func(f *Formatter) {
		f.builtins = false
	}
}
