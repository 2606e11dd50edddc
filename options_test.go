package uri

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	t.Parallel()

	t.Run("default options are lax", func(t *testing.T) {
		t.Parallel()

		o, redeem := borrowOptions(nil)
		defer redeem()
		require.False(t, o.strictIPv6)
	})

	t.Run("WithStrictIPv6 sets the flag", func(t *testing.T) {
		t.Parallel()

		o, redeem := borrowOptions([]Option{WithStrictIPv6(true)})
		defer redeem()
		require.True(t, o.strictIPv6)
	})

	t.Run("pooled options are reset between borrows", func(t *testing.T) {
		t.Parallel()

		o1, redeem1 := borrowOptions([]Option{WithStrictIPv6(true)})
		redeem1()

		o2, redeem2 := borrowOptions(nil)
		defer redeem2()
		require.False(t, o2.strictIPv6)
		_ = o1
	})
}
