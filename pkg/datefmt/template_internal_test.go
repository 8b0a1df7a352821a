package datefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTemplateCache(t *testing.T) {
	t.Parallel()

	t.Run("compiles each template once", func(t *testing.T) {
		t.Parallel()
		c := newTemplateCache(true)

		first := c.get("YYYY-MM-dd")
		second := c.get("YYYY-MM-dd")
		c.get("HH:mm")

		assert.Equal(t, 2, c.size())
		assert.Same(t, &first[0], &second[0])
	})

	t.Run("disabled cache keeps nothing", func(t *testing.T) {
		t.Parallel()
		c := newTemplateCache(false)

		c.get("YYYY-MM-dd")
		c.get("YYYY-MM-dd")

		assert.Equal(t, 0, c.size())
	})

	t.Run("formatter option", func(t *testing.T) {
		t.Parallel()
		date := time.Date(2024, time.July, 23, 0, 0, 0, 0, time.UTC)

		cached := New()
		_, _ = cached.Format("YYYY", date)
		_, _ = cached.Format(ISODate, date)
		assert.Equal(t, 2, cached.cache.size(), "named formatter renders its own template through the cache")

		uncached := New(WithTemplateCache(false))
		_, _ = uncached.Format("YYYY", date)
		assert.Equal(t, 0, uncached.cache.size())
	})
}
