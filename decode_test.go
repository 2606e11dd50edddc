package uri

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeElement(t *testing.T) {
	t.Parallel()

	t.Run("copies allowed bytes verbatim", func(t *testing.T) {
		t.Parallel()

		out, err := decodeElement("foo-bar_baz", unreservedSet, ErrInvalidPath)
		require.NoError(t, err)
		require.Equal(t, "foo-bar_baz", out)
	})

	t.Run("decodes percent-escapes", func(t *testing.T) {
		t.Parallel()

		out, err := decodeElement("foo%20bar", pcharNotPctEncodedSet, ErrInvalidPath)
		require.NoError(t, err)
		require.Equal(t, "foo bar", out)
	})

	t.Run("decodes multi-byte UTF-8 escape sequences", func(t *testing.T) {
		t.Parallel()

		out, err := decodeElement("%E1%88%B4", regNameNotPctEncodedSet, ErrInvalidHost)
		require.NoError(t, err)
		require.Equal(t, "ሴ", out)
	})

	t.Run("fails on illegal character", func(t *testing.T) {
		t.Parallel()

		_, err := decodeElement("foo bar", pcharNotPctEncodedSet, ErrInvalidPath)
		require.ErrorIs(t, err, ErrInvalidPath)
	})

	t.Run("fails on truncated escape", func(t *testing.T) {
		t.Parallel()

		_, err := decodeElement("foo%2", pcharNotPctEncodedSet, ErrInvalidPath)
		require.ErrorIs(t, err, ErrInvalidPercent)
	})

	t.Run("fails on non-hex digit in escape", func(t *testing.T) {
		t.Parallel()

		_, err := decodeElement("foo%zz", pcharNotPctEncodedSet, ErrInvalidPath)
		require.ErrorIs(t, err, ErrInvalidPercent)
	})
}
