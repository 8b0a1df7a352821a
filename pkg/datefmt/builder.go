package datefmt

import (
	"fmt"
	"maps"
	"time"
)

// DefaultTemplate is the Templates key used when the active locale has no entry.
const DefaultTemplate = "default"

// Templates maps locale codes to templates, with an optional DefaultTemplate entry.
type Templates map[string]string

// pick returns the template for code, falling back to the default entry.
func (ts Templates) pick(code string) (string, bool) {
	if tpl, ok := ts[code]; ok {
		return tpl, true
	}
	tpl, ok := ts[DefaultTemplate]
	return tpl, ok
}

// LayoutFunc formats a date argument (current time when omitted).
type LayoutFunc func(date ...any) (string, error)

// CreateFormatter returns a reusable function that, on every call, picks the template for
// the formatter's active locale (or the default one) and renders the date with it.
// It fails with ErrMissingTemplate when neither template exists.
//
//	short := f.CreateFormatter(datefmt.Templates{
//		"en":                   "MMMM d, YYYY",
//		"pl":                   "d MMMM YYYY",
//		datefmt.DefaultTemplate: "YYYY-MM-dd",
//	})
//	s, err := short(time.Now())
func (f *Formatter) CreateFormatter(templates Templates) LayoutFunc {
	ts := maps.Clone(templates)
	return func(date ...any) (string, error) {
		code := f.Locale()
		tpl, ok := ts.pick(code)
		if !ok {
			return "", fmt.Errorf("%w: locale %q", ErrMissingTemplate, code)
		}

		t, err := f.Normalize(date...)
		if err != nil {
			return "", err
		}

		return f.render(tpl, t), nil
	}
}

// RegisterTemplates registers name as a locale-aware named formatter backed by templates.
// A DefaultTemplate entry is required so the registered formatter can never fail.
func (f *Formatter) RegisterTemplates(name string, templates Templates) error {
	if _, ok := templates[DefaultTemplate]; !ok {
		return fmt.Errorf("%w: %q has no %q entry", ErrMissingTemplate, name, DefaultTemplate)
	}

	ts := maps.Clone(templates)
	return f.Register(name, func(t time.Time) string {
		tpl, _ := ts.pick(f.Locale())
		return f.render(tpl, t)
	})
}
