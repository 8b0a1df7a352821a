package locale_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datefmt/pkg/locale"
)

func writeLocaleFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestMapResolver(t *testing.T) {
	t.Parallel()

	r := &locale.MapResolver{Data: map[string]locale.Data{
		"en":    locale.English,
		"en_GB": locale.English,
		"it":    {Name: "Broken"},
	}}

	t.Run("exact match", func(t *testing.T) {
		t.Parallel()
		d, err := r.Resolve(context.Background(), "en")
		require.NoError(t, err)
		assert.Equal(t, "English", d.Name)
	})

	t.Run("key with underscore matches canonical code", func(t *testing.T) {
		t.Parallel()
		d, err := r.Resolve(context.Background(), "en-GB")
		require.NoError(t, err)
		assert.Equal(t, "English", d.Name)
	})

	t.Run("region falls back to base language", func(t *testing.T) {
		t.Parallel()
		d, err := r.Resolve(context.Background(), "en-AU")
		require.NoError(t, err)
		assert.Equal(t, "English", d.Name)
	})

	t.Run("returns a copy", func(t *testing.T) {
		t.Parallel()
		d, err := r.Resolve(context.Background(), "en")
		require.NoError(t, err)
		d.Months[0] = "Changed"
		assert.Equal(t, "January", locale.English.Months[0])
	})

	t.Run("unknown code", func(t *testing.T) {
		t.Parallel()
		_, err := r.Resolve(context.Background(), "ja")
		assert.ErrorIs(t, err, locale.ErrLocaleNotFound)
	})

	t.Run("invalid tables", func(t *testing.T) {
		t.Parallel()
		_, err := r.Resolve(context.Background(), "it")
		assert.ErrorIs(t, err, locale.ErrInvalidData)
	})

	t.Run("nil map", func(t *testing.T) {
		t.Parallel()
		_, err := (&locale.MapResolver{}).Resolve(context.Background(), "en")
		assert.ErrorIs(t, err, locale.ErrLocaleNotFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := r.Resolve(ctx, "en")
		assert.ErrorIs(t, err, locale.ErrResolveCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("codes", func(t *testing.T) {
		t.Parallel()
		codes, err := r.Codes(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"en", "en_GB", "it"}, codes)
	})
}

func TestDirectoryResolver(t *testing.T) {
	t.Parallel()

	t.Run("loads yaml by code", func(t *testing.T) {
		t.Parallel()
		r := locale.NewDirectoryResolver("testdata")
		require.NotNil(t, r)

		d, err := r.Resolve(context.Background(), "es")
		require.NoError(t, err)
		assert.Equal(t, "Español", d.Name)
		assert.Equal(t, "martes", d.Weekdays[2])
	})

	t.Run("loads json by region code", func(t *testing.T) {
		t.Parallel()
		r := locale.NewDirectoryResolver("testdata")

		d, err := r.Resolve(context.Background(), "pt_BR")
		require.NoError(t, err)
		assert.Equal(t, "julho", d.Months[6])
	})

	t.Run("region falls back to base file", func(t *testing.T) {
		t.Parallel()
		r := locale.NewDirectoryResolver("testdata")

		d, err := r.Resolve(context.Background(), "es-MX")
		require.NoError(t, err)
		assert.Equal(t, "Español", d.Name)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		r := locale.NewDirectoryResolver("testdata")

		_, err := r.Resolve(context.Background(), "ja")
		assert.ErrorIs(t, err, locale.ErrLocaleNotFound)
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, locale.NewDirectoryResolver(""))
	})

	t.Run("malformed file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeLocaleFile(t, dir, "nl.yaml", "nl:\n  months: [januari, februari\n  : :")

		_, err := locale.NewDirectoryResolver(dir).Resolve(context.Background(), "nl")
		require.Error(t, err)
		assert.ErrorIs(t, err, locale.ErrFailedToParseYAML)
		assert.NotErrorIs(t, err, locale.ErrLocaleNotFound)
	})

	t.Run("incomplete tables", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeLocaleFile(t, dir, "sv.yaml", "sv:\n  name: Svenska\n  months: [januari]\n")

		_, err := locale.NewDirectoryResolver(dir).Resolve(context.Background(), "sv")
		assert.ErrorIs(t, err, locale.ErrInvalidData)
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeLocaleFile(t, dir, "da.json", "")

		_, err := locale.NewDirectoryResolver(dir).Resolve(context.Background(), "da")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is empty")
	})

	t.Run("file without entry for code", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		content, err := os.ReadFile(filepath.Join("testdata", "es.yaml"))
		require.NoError(t, err)
		writeLocaleFile(t, dir, "it.yaml", string(content))

		_, err = locale.NewDirectoryResolver(dir).Resolve(context.Background(), "it")
		assert.ErrorIs(t, err, locale.ErrLocaleNotFound)
	})

	t.Run("codes", func(t *testing.T) {
		t.Parallel()
		codes, err := locale.NewDirectoryResolver("testdata").Codes(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"es", "pt-BR"}, codes)
	})
}

func TestEmbeddedFsResolver(t *testing.T) {
	t.Parallel()

	content, err := os.ReadFile(filepath.Join("testdata", "es.yaml"))
	require.NoError(t, err)

	fsys := fstest.MapFS{
		"i18n/es.yml":     {Data: content},
		"i18n/notes.txt":  {Data: []byte("ignored")},
		"i18n/nested/x.y": {Data: []byte("ignored")},
	}

	r := locale.NewEmbeddedFsResolver(fsys, "i18n")
	require.NotNil(t, r)

	d, err := r.Resolve(context.Background(), "es")
	require.NoError(t, err)
	assert.Equal(t, "diciembre", d.Months[11])

	codes, err := r.Codes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"es"}, codes)

	assert.Nil(t, locale.NewEmbeddedFsResolver(nil, "i18n"))
	assert.Nil(t, locale.NewEmbeddedFsResolver(fsys, ""))
}

func TestBuiltin(t *testing.T) {
	t.Parallel()

	r := locale.Builtin()

	codes, err := r.Codes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "en", "fr", "pl", "uk"}, codes)

	for _, code := range codes {
		d, err := r.Resolve(context.Background(), code)
		require.NoError(t, err, code)
		assert.NoError(t, d.Validate(), code)
	}

	t.Run("embedded english matches the in-code table", func(t *testing.T) {
		t.Parallel()
		d, err := r.Resolve(context.Background(), "en")
		require.NoError(t, err)
		assert.Equal(t, locale.English, d)
	})

	t.Run("polish names", func(t *testing.T) {
		t.Parallel()
		d, err := r.Resolve(context.Background(), "pl-PL")
		require.NoError(t, err)
		assert.Equal(t, "lipiec", d.Months[6])
		assert.Equal(t, "wtorek", d.Weekdays[2])
	})
}

func TestChainResolver(t *testing.T) {
	t.Parallel()

	custom := &locale.MapResolver{Data: map[string]locale.Data{"en": {
		Name:          "Custom English",
		Months:        locale.English.Months,
		MonthsShort:   locale.English.MonthsShort,
		Weekdays:      locale.English.Weekdays,
		WeekdaysShort: locale.English.WeekdaysShort,
		WeekdaysMin:   locale.English.WeekdaysMin,
		Meridiem:      locale.English.Meridiem,
	}}}

	var nilDir *locale.FSResolver
	chain := locale.ChainResolver{nil, nilDir, custom, locale.Builtin()}

	t.Run("first match wins", func(t *testing.T) {
		t.Parallel()
		d, err := chain.Resolve(context.Background(), "en")
		require.NoError(t, err)
		assert.Equal(t, "Custom English", d.Name)
	})

	t.Run("falls through on not found", func(t *testing.T) {
		t.Parallel()
		d, err := chain.Resolve(context.Background(), "pl")
		require.NoError(t, err)
		assert.Equal(t, "Polski", d.Name)
	})

	t.Run("not found anywhere", func(t *testing.T) {
		t.Parallel()
		_, err := chain.Resolve(context.Background(), "ja")
		assert.ErrorIs(t, err, locale.ErrLocaleNotFound)
	})

	t.Run("other errors stop the chain", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		failing := locale.ResolverFunc(func(context.Context, string) (locale.Data, error) {
			return locale.Data{}, boom
		})

		_, err := locale.ChainResolver{failing, locale.Builtin()}.Resolve(context.Background(), "pl")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("codes are merged", func(t *testing.T) {
		t.Parallel()
		codes, err := chain.Codes(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"de", "en", "fr", "pl", "uk"}, codes)
	})
}
