package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/datefmt/pkg/datefmt"
	"github.com/dmitrymomot/datefmt/pkg/locale"
)

const name = "datefmt"

// overridden during build with ldflags
var version = "dev"

type app struct {
	formatter *datefmt.Formatter
	resolver  locale.Resolver
	logger    *slog.Logger
}

func newApp() *app {
	return &app{}
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Format dates with locale-aware token templates",
		Version: version,
		Description: `Renders dates from templates such as "DDD, MMMM d, YYYY".

Settings are read from DATEFMT_* environment variables (and .env files);
flags take precedence over the environment.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "load environment from `FILE` (repeatable, default ./.env when present)",
			},
			&cli.StringFlag{
				Name:    "locale",
				Aliases: []string{"l"},
				Usage:   "locale `CODE` used for month and weekday names",
			},
			&cli.StringFlag{
				Name:  "timezone",
				Usage: "IANA `ZONE` every date is rendered in",
			},
			&cli.StringFlag{
				Name:  "locales-dir",
				Usage: "`DIR` with extra <code>.yaml/.json locale files",
			},
		},
		Before: a.before,
		Commands: []*cli.Command{
			a.formatCmd(),
			a.tokensCmd(),
			a.namesCmd(),
			a.localesCmd(),
		},
	}
}

// before loads configuration and builds the formatter shared by all subcommands.
func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := datefmt.LoadConfig(cmd.StringSlice("env-file")...)
	if err != nil {
		return ctx, err
	}

	if v := cmd.String("locale"); v != "" {
		cfg.Locale = v
	}
	if v := cmd.String("timezone"); v != "" {
		cfg.Timezone = v
	}
	if v := cmd.String("locales-dir"); v != "" {
		cfg.LocalesDir = v
	}

	a.logger, err = cfg.Logger(errWriter(cmd))
	if err != nil {
		return ctx, err
	}

	a.resolver = cfg.Resolver()
	a.formatter, err = datefmt.NewFromConfig(ctx, cfg, datefmt.WithLogger(a.logger))
	if err != nil {
		return ctx, err
	}

	a.logger.DebugContext(ctx, "formatter ready",
		"locale", a.formatter.Locale(),
		"timezone", cfg.Timezone,
		"locales_dir", cfg.LocalesDir,
	)
	return ctx, nil
}

func (a *app) formatCmd() *cli.Command {
	return &cli.Command{
		Name:      "format",
		Usage:     "Render a template or named formatter",
		ArgsUsage: "TEMPLATE [DATE]",
		Description: `DATE is an ISO 8601 string or a Unix timestamp in milliseconds.
Four digits are read as an ISO year; any other all-digit DATE is a timestamp.
The current time is used when it is omitted.

Examples:
  datefmt format "YYYY-MM-dd HH:mm"
  datefmt -l pl format "DDD, d MMMM YYYY" 2024-07-23T14:35:45
  datefmt format ISODateTimeTZ 1721738145123`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() == 0 {
				return fmt.Errorf("missing TEMPLATE argument")
			}

			dates, err := dateArgs(cmd.Args().Slice()[1:])
			if err != nil {
				return err
			}

			out, err := a.formatter.Format(cmd.Args().First(), dates...)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(writer(cmd), out)
			return err
		},
	}
}

func (a *app) tokensCmd() *cli.Command {
	return &cli.Command{
		Name:      "tokens",
		Usage:     "Show every token's reading for a date",
		ArgsUsage: "[DATE]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dates, err := dateArgs(cmd.Args().Slice())
			if err != nil {
				return err
			}

			// one instant shared by every token
			t, err := a.formatter.Normalize(dates...)
			if err != nil {
				return err
			}

			w := writer(cmd)
			for _, tok := range datefmt.TokenNames() {
				v, err := a.formatter.Token(tok, t)
				if err != nil {
					return err
				}
				kind := "text"
				if v.IsNumber() {
					kind = "number"
				}
				if _, err := fmt.Fprintf(w, "%-4s  %-6s  %s\n", tok, kind, v); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) namesCmd() *cli.Command {
	return &cli.Command{
		Name:  "names",
		Usage: "List named formatters",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintln(writer(cmd), strings.Join(a.formatter.Names(), "\n"))
			return err
		},
	}
}

func (a *app) localesCmd() *cli.Command {
	return &cli.Command{
		Name:  "locales",
		Usage: "List locale codes available to --locale",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			lister, ok := a.resolver.(locale.Lister)
			if !ok {
				return fmt.Errorf("locale source cannot list its codes")
			}

			codes, err := lister.Codes(ctx)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(writer(cmd), strings.Join(codes, "\n"))
			return err
		},
	}
}

// dateArgs turns an optional DATE argument into Normalize input:
// four-digit values are ISO years, other integers are timestamps, anything else an ISO string.
func dateArgs(args []string) ([]any, error) {
	switch len(args) {
	case 0:
		return nil, nil
	case 1:
		if isYear(args[0]) {
			return []any{args[0]}, nil
		}
		if ms, err := strconv.ParseInt(args[0], 10, 64); err == nil {
			return []any{ms}, nil
		}
		return []any{args[0]}, nil
	default:
		return nil, fmt.Errorf("expected at most one DATE argument, got %d", len(args))
	}
}

func isYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
