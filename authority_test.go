package uri

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunHostStateMachine(t *testing.T) {
	t.Parallel()

	t.Run("reg-name with port", func(t *testing.T) {
		t.Parallel()

		host, port, isRegName, isIPv6, err := runHostStateMachine("example.com:8080")
		require.NoError(t, err)
		require.Equal(t, "example.com", host)
		require.Equal(t, "8080", port)
		require.True(t, isRegName)
		require.False(t, isIPv6)
	})

	t.Run("percent-encoded reg-name", func(t *testing.T) {
		t.Parallel()

		host, _, isRegName, _, err := runHostStateMachine("ex%61mple.com")
		require.NoError(t, err)
		require.Equal(t, "example.com", host)
		require.True(t, isRegName)
	})

	t.Run("bracketed IPv6 literal strips brackets", func(t *testing.T) {
		t.Parallel()

		host, port, isRegName, isIPv6, err := runHostStateMachine("[2001:db8::1]:80")
		require.NoError(t, err)
		require.Equal(t, "2001:db8::1", host)
		require.Equal(t, "80", port)
		require.False(t, isRegName)
		require.True(t, isIPv6)
	})

	t.Run("IPvFuture literal", func(t *testing.T) {
		t.Parallel()

		host, _, _, isIPv6, err := runHostStateMachine("[v1.fe80::a+en1]")
		require.NoError(t, err)
		require.Equal(t, "v1.fe80::a+en1", host)
		require.False(t, isIPv6, "IPvFuture is not eligible for strict net/netip IPv6 validation")
	})

	t.Run("unterminated IP-literal fails", func(t *testing.T) {
		t.Parallel()

		_, _, _, _, err := runHostStateMachine("[2001:db8::1")
		require.ErrorIs(t, err, ErrInvalidHost)
	})

	t.Run("illegal character after IP-literal fails", func(t *testing.T) {
		t.Parallel()

		_, _, _, _, err := runHostStateMachine("[2001:db8::1]x")
		require.ErrorIs(t, err, ErrInvalidHost)
	})

	t.Run("illegal reg-name character fails", func(t *testing.T) {
		t.Parallel()

		_, _, _, _, err := runHostStateMachine("exa mple.com")
		require.ErrorIs(t, err, ErrInvalidHost)
	})
}

func TestParseAuthority_UserInfo(t *testing.T) {
	t.Parallel()

	u := New()
	require.True(t, u.Parse("http://user:pw@example.com/"))
	userinfo, has := u.UserInfo()
	require.True(t, has)
	require.Equal(t, "user:pw", userinfo)
}

func TestParsePort(t *testing.T) {
	t.Parallel()

	t.Run("accepts 0..65535", func(t *testing.T) {
		t.Parallel()

		p, err := parsePort("0")
		require.NoError(t, err)
		require.Equal(t, uint16(0), p)

		p, err = parsePort("65535")
		require.NoError(t, err)
		require.Equal(t, uint16(65535), p)
	})

	t.Run("rejects overflow", func(t *testing.T) {
		t.Parallel()

		_, err := parsePort("65536")
		require.ErrorIs(t, err, ErrInvalidPort)
	})

	t.Run("rejects non-digit", func(t *testing.T) {
		t.Parallel()

		_, err := parsePort("8a")
		require.ErrorIs(t, err, ErrInvalidPort)
	})
}
