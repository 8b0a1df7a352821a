package datefmt_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datefmt/pkg/datefmt"
)

// useDefault installs f as the package-level formatter for the duration of the test.
// Tests using it must not run in parallel.
func useDefault(t *testing.T, f *datefmt.Formatter) {
	t.Helper()
	previous := datefmt.SetDefault(f)
	t.Cleanup(func() { datefmt.SetDefault(previous) })
}

func TestDefault_StartsInEnglish(t *testing.T) {
	useDefault(t, datefmt.New())

	assert.Equal(t, "en", datefmt.Locale())
	assert.Equal(t, []string{"ISODate", "ISOTime", "ISODateTime", "ISODateTimeTZ"}, datefmt.Names())
}

func TestDefault_PackageFunctions(t *testing.T) {
	useDefault(t, datefmt.New(datefmt.WithClock(func() time.Time { return testDate })))

	got, err := datefmt.Format("YYYY-MMMM-DDD-HH-mm-ss", testDate)
	require.NoError(t, err)
	assert.Equal(t, "2024-July-Tuesday-14-35-45", got)

	_, err = datefmt.FormatAny(123, testDate)
	assert.ErrorIs(t, err, datefmt.ErrInvalidArgumentType)

	v, err := datefmt.Token("ZZ", testDate)
	require.NoError(t, err)
	assert.Equal(t, "+0200", v.String())

	require.NoError(t, datefmt.Register("customFormat", func(time.Time) string { return "formattedDate" }))
	got, err = datefmt.Format("customFormat")
	require.NoError(t, err)
	assert.Equal(t, "formattedDate", got)
	assert.Contains(t, datefmt.Names(), "customFormat")

	assert.Equal(t, "pl", datefmt.SetLocaleData("pl", polish))
	assert.Equal(t, "pl", datefmt.Locale())
	assert.Equal(t, "pl", datefmt.SetLocale(context.Background(), "unknown-locale-code"))

	short := datefmt.CreateFormatter(datefmt.Templates{"pl": "d MMMM", datefmt.DefaultTemplate: "MMMM d"})
	got, err = short()
	require.NoError(t, err)
	assert.Equal(t, "23 lipiec", got)

	assert.Equal(t, "uk", datefmt.SetLocale(context.Background(), "uk"))
	got, err = datefmt.Format("DDD", testDate)
	require.NoError(t, err)
	assert.Equal(t, "вівторок", got)
}

func TestSetDefault_IgnoresNil(t *testing.T) {
	f := datefmt.New()
	useDefault(t, f)

	previous := datefmt.SetDefault(nil)
	assert.Same(t, f, previous)
	assert.Same(t, f, datefmt.Default())
}
