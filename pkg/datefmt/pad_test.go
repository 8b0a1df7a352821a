package datefmt_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datefmt/pkg/datefmt"
)

func TestPad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value, width int
		want         string
	}{
		{5, 3, "005"},
		{123, 5, "00123"},
		{123, 2, "123"},
		{0, 2, "00"},
		{7, 1, "7"},
		{7, 0, "7"},
		{42, 2, "42"},
		{-5, 3, "-05"},
		{-123, 2, "-123"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, datefmt.Pad(tt.value, tt.width))
		})
	}

	t.Run("default width", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "07", datefmt.PadDefault(7))
		assert.Equal(t, "23", datefmt.PadDefault(23))
		assert.Equal(t, "123", datefmt.PadDefault(123))
	})
}

func TestPad_LengthAndValue(t *testing.T) {
	t.Parallel()

	for _, v := range []int{0, 1, 9, 10, 99, 100, 999, 1000, 65535, 1 << 30} {
		for w := 0; w <= 12; w++ {
			got := datefmt.Pad(v, w)
			assert.Len(t, got, max(w, len(strconv.Itoa(v))), "Pad(%d, %d)", v, w)

			n, err := strconv.Atoi(got)
			require.NoError(t, err)
			assert.Equal(t, v, n, "Pad(%d, %d)", v, w)
		}
	}
}
