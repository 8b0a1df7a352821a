package datefmt

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/datefmt/pkg/locale"
)

// DefaultLocale is the locale every Formatter starts with.
const DefaultLocale = "en"

// Formatter renders dates from token templates. It owns the active locale, the named
// formatter registry and the compiled template cache, and is safe for concurrent use.
type Formatter struct {
	mu   sync.RWMutex
	code string
	data locale.Data

	resolver     locale.Resolver
	location     *time.Location
	now          func() time.Time
	logger       *slog.Logger
	cacheEnabled bool
	builtins     bool

	cache *templateCache
	named *registry
}

// New creates a Formatter with English data active and the ISO named formatters registered.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		code:         DefaultLocale,
		data:         locale.English.Clone(),
		resolver:     locale.Builtin(),
		now:          time.Now,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
		cacheEnabled: true,
		builtins:     true,
		named:        newRegistry(),
	}

	for _, opt := range opts {
		opt(f)
	}

	f.cache = newTemplateCache(f.cacheEnabled)
	if f.builtins {
		f.registerBuiltins()
	}

	return f
}

// Format renders date with format. If format is the name of a registered formatter,
// that formatter's output is returned as is; otherwise format is read as a token template.
// The date is normalized first (see Normalize) and defaults to now.
func (f *Formatter) Format(format string, date ...any) (string, error) {
	t, err := f.Normalize(date...)
	if err != nil {
		return "", err
	}

	if fn, ok := f.named.lookup(format); ok {
		return fn(t), nil
	}

	return f.render(format, t), nil
}

// FormatAny is Format for dynamically typed input such as decoded JSON.
// A non-string format fails with ErrInvalidArgumentType before the date is looked at.
func (f *Formatter) FormatAny(format any, date ...any) (string, error) {
	s, ok := format.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s, got %T", ErrInvalidArgumentType, msgFormatNotString, format)
	}
	return f.Format(s, date...)
}

// MustFormat is like Format but panics on error.
func (f *Formatter) MustFormat(format string, date ...any) string {
	s, err := f.Format(format, date...)
	if err != nil {
		panic(err)
	}
	return s
}

// Token evaluates a single token against date and the active locale.
// Numeric tokens return a number Value, padded and named tokens return text.
func (f *Formatter) Token(name string, date ...any) (Value, error) {
	fn, ok := LookupToken(name)
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrUnknownToken, name)
	}

	t, err := f.Normalize(date...)
	if err != nil {
		return Value{}, err
	}

	return fn(t, f.localeData()), nil
}

// Compile returns the segments template is split into.
func (f *Formatter) Compile(template string) []Segment {
	return slices.Clone(f.cache.get(template))
}

func (f *Formatter) render(template string, t time.Time) string {
	return render(f.cache.get(template), t, f.localeData())
}

// Register adds a named formatter. Formatting with exactly name calls fn with the
// normalized instant and returns its result without any token interpretation.
// Registering an existing name replaces its function.
func (f *Formatter) Register(name string, fn NamedFunc) error {
	return f.named.add(name, fn)
}

// Names lists registered formatter names in registration order.
func (f *Formatter) Names() []string {
	return f.named.list()
}

// Locale returns the active locale code.
func (f *Formatter) Locale() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.code
}

// LocaleData returns a copy of the active locale tables.
func (f *Formatter) LocaleData() locale.Data {
	return f.localeData().Clone()
}

// localeData returns the active tables without copying. Installed tables are never
// modified in place, so the result is safe to read after the lock is released.
func (f *Formatter) localeData() locale.Data {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.data
}

// SetLocale switches to the locale data the resolver returns for code and reports the
// active code afterwards. When resolution fails for any reason nothing changes and
// the previously active code is returned.
func (f *Formatter) SetLocale(ctx context.Context, code string) string {
	code = strings.TrimSpace(code)

	data, err := f.resolve(ctx, code)
	if err != nil {
		current := f.Locale()
		f.logger.WarnContext(ctx, "Locale resolution failed, keeping current locale",
			"locale", code,
			"current", current,
			"error", err,
		)
		return current
	}

	return f.install(ctx, code, data)
}

// SetLocaleData installs data for code directly, without asking the resolver.
// Tables that fail validation are rejected and the active locale is kept.
func (f *Formatter) SetLocaleData(code string, data locale.Data) string {
	code = strings.TrimSpace(code)
	ctx := context.Background()

	if code == "" {
		f.logger.Warn("Locale data rejected: empty code")
		return f.Locale()
	}
	if err := data.Validate(); err != nil {
		f.logger.Warn("Locale data rejected, keeping current locale", "locale", code, "error", err)
		return f.Locale()
	}

	return f.install(ctx, code, data.Clone())
}

// resolve asks the collaborator for code. The error never leaves the locale store.
func (f *Formatter) resolve(ctx context.Context, code string) (locale.Data, error) {
	if f.resolver == nil {
		return locale.Data{}, fmt.Errorf("%w: no resolver configured", locale.ErrLocaleNotFound)
	}

	data, err := f.resolver.Resolve(ctx, code)
	if err != nil {
		return locale.Data{}, err
	}

	if err := data.Validate(); err != nil {
		return locale.Data{}, err
	}

	return data.Clone(), nil
}

func (f *Formatter) install(ctx context.Context, code string, data locale.Data) string {
	f.mu.Lock()
	previous := f.code
	f.code = code
	f.data = data
	f.mu.Unlock()

	f.logger.DebugContext(ctx, "Locale switched", "locale", code, "previous", previous)
	return code
}
