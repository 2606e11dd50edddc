package uri

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCharacterSet(t *testing.T) {
	t.Parallel()

	t.Run("single byte and range", func(t *testing.T) {
		t.Parallel()

		s := charSetOf('x').union(charSetRange('0', '9'))
		require.True(t, s.contains('x'))
		require.True(t, s.contains('5'))
		require.False(t, s.contains('y'))
	})

	t.Run("range endpoints reorderable", func(t *testing.T) {
		t.Parallel()

		s := charSetRange('9', '0')
		require.True(t, s.contains('0'))
		require.True(t, s.contains('9'))
		require.False(t, s.contains('a'))
	})

	t.Run("standard alphabets", func(t *testing.T) {
		t.Parallel()

		require.True(t, alphaSet.contains('A'))
		require.True(t, alphaSet.contains('z'))
		require.False(t, alphaSet.contains('0'))

		require.True(t, hexDigSet.contains('a'))
		require.True(t, hexDigSet.contains('F'))
		require.False(t, hexDigSet.contains('g'))

		require.True(t, unreservedSet.contains('-'))
		require.True(t, unreservedSet.contains('~'))
		require.False(t, unreservedSet.contains('%'))

		require.True(t, subDelimsSet.contains('+'))
		require.True(t, pcharNotPctEncodedSet.contains(':'))
		require.True(t, pcharNotPctEncodedSet.contains('@'))
		require.True(t, queryOrFragmentNotPctEncodedSet.contains('/'))
		require.True(t, queryOrFragmentNotPctEncodedSet.contains('?'))
	})
}
