package datefmt

import (
	"context"
	"sync"

	"github.com/dmitrymomot/datefmt/pkg/locale"
)

var (
	defaultMu        sync.RWMutex
	defaultFormatter = New()
)

// Default returns the Formatter behind the package-level functions.
func Default() *Formatter {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultFormatter
}

// SetDefault replaces the Formatter behind the package-level functions and returns the
// previous one. Nil is ignored.
func SetDefault(f *Formatter) *Formatter {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	previous := defaultFormatter
	if f != nil {
		defaultFormatter = f
	}
	return previous
}

// Format calls Format on the default Formatter.
func Format(format string, date ...any) (string, error) {
	return Default().Format(format, date...)
}

// FormatAny calls FormatAny on the default Formatter.
func FormatAny(format any, date ...any) (string, error) {
	return Default().FormatAny(format, date...)
}

// Token calls Token on the default Formatter.
func Token(name string, date ...any) (Value, error) {
	return Default().Token(name, date...)
}

// SetLocale calls SetLocale on the default Formatter.
func SetLocale(ctx context.Context, code string) string {
	return Default().SetLocale(ctx, code)
}

// SetLocaleData calls SetLocaleData on the default Formatter.
func SetLocaleData(code string, data locale.Data) string {
	return Default().SetLocaleData(code, data)
}

// Locale returns the active locale code of the default Formatter.
func Locale() string {
	return Default().Locale()
}

// Register calls Register on the default Formatter.
func Register(name string, fn NamedFunc) error {
	return Default().Register(name, fn)
}

// Names calls Names on the default Formatter.
func Names() []string {
	return Default().Names()
}

// CreateFormatter calls CreateFormatter on the default Formatter.
func CreateFormatter(templates Templates) LayoutFunc {
	return Default().CreateFormatter(templates)
}
