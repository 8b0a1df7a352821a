package datefmt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/datefmt/pkg/locale"
)

// Log output formats accepted by Config.LogFormat.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds the environment driven settings of a Formatter.
type Config struct {
	Locale        string `env:"DATEFMT_LOCALE" envDefault:"en"`
	LocalesDir    string `env:"DATEFMT_LOCALES_DIR"`
	Timezone      string `env:"DATEFMT_TIMEZONE"`
	TemplateCache bool   `env:"DATEFMT_TEMPLATE_CACHE" envDefault:"true"`
	LogLevel      string `env:"DATEFMT_LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"DATEFMT_LOG_FORMAT" envDefault:"text"`
}

// LoadConfig loads the given .env files (or ./.env when none are given, ignoring its
// absence) and parses the environment into a Config.
// Variables already present in the environment take precedence over file values.
func LoadConfig(files ...string) (Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Config{}, errors.Join(ErrLoadingEnvFile, err)
		}
	} else {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// Resolver builds the locale collaborator: LocalesDir first when set, then the built-in tables.
func (c Config) Resolver() locale.Resolver {
	if c.LocalesDir == "" {
		return locale.Builtin()
	}
	return locale.ChainResolver{locale.NewDirectoryResolver(c.LocalesDir), locale.Builtin()}
}

// Logger creates a slog.Logger writing to w in the configured level and format.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, errors.Join(ErrInvalidLogLevel, err)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch c.LogFormat {
	case LogFormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case LogFormatText, "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w %q: must be %q or %q", ErrInvalidLogFormat, c.LogFormat, LogFormatText, LogFormatJSON)
	}
}

// NewFromConfig creates a Formatter from cfg. Options in opts are applied after the
// configured ones. Unlike SetLocale, an unavailable configured locale is an error here.
func NewFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Formatter, error) {
	base := []Option{
		WithResolver(cfg.Resolver()),
		WithTemplateCache(cfg.TemplateCache),
	}

	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, errors.Join(ErrInvalidTimezone, err)
		}
		base = append(base, WithLocation(loc))
	}

	f := New(append(base, opts...)...)

	// the configured locale is always resolved, so LocalesDir can override the default tables
	code := strings.TrimSpace(cfg.Locale)
	if code == "" {
		return f, nil
	}

	data, err := f.resolve(ctx, code)
	if err != nil {
		return nil, errors.Join(ErrLocaleUnavailable, err)
	}
	f.install(ctx, code, data)

	return f, nil
}
