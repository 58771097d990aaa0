package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeID(t *testing.T) {
	t.Run("extracts numeric prefix", func(t *testing.T) {
		id, ok := DecodeID("42-wireless-mouse")
		assert.True(t, ok)
		assert.Equal(t, int64(42), id)
	})

	t.Run("no digit prefix fails", func(t *testing.T) {
		_, ok := DecodeID("no-digits-here")
		assert.False(t, ok)
	})

	t.Run("digits without hyphen fail", func(t *testing.T) {
		_, ok := DecodeID("12345")
		assert.False(t, ok)
	})

	t.Run("empty string fails", func(t *testing.T) {
		_, ok := DecodeID("")
		assert.False(t, ok)
	})

	t.Run("trailing hyphen still decodes", func(t *testing.T) {
		id, ok := DecodeID("42-")
		assert.True(t, ok)
		assert.Equal(t, int64(42), id)
	})

	t.Run("digit run past int64 range fails", func(t *testing.T) {
		_, ok := DecodeID("99999999999999999999-thing")
		assert.False(t, ok)
	})
}

func TestSlugPortion(t *testing.T) {
	t.Run("strips numeric prefix", func(t *testing.T) {
		assert.Equal(t, "wireless-mouse", SlugPortion("42-wireless-mouse"))
	})

	t.Run("unmatched input returned verbatim", func(t *testing.T) {
		assert.Equal(t, "no-digits-here", SlugPortion("no-digits-here"))
	})

	t.Run("empty remainder returned verbatim", func(t *testing.T) {
		assert.Equal(t, "42-", SlugPortion("42-"))
	})
}
