package uri

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilder_IncrementalConstruction(t *testing.T) {
	t.Parallel()

	u := New()
	u.SetScheme("FTP")
	require.Equal(t, "ftp", u.Scheme())

	u.SetHost("files.example.com")
	host, has := u.Host()
	require.True(t, has)
	require.Equal(t, "files.example.com", host)

	u.SetUserInfo("")
	userinfo, has := u.UserInfo()
	require.True(t, has)
	require.Equal(t, "", userinfo)

	u.SetPort(21)
	require.True(t, u.HasPort())
	require.Equal(t, uint16(21), u.Port())

	u.ClearPort()
	require.False(t, u.HasPort())

	u.SetQuery("")
	require.True(t, u.HasQuery())
	u.ClearQuery()
	require.False(t, u.HasQuery())

	u.SetFragment("top")
	fragment, has := u.Fragment()
	require.True(t, has)
	require.Equal(t, "top", fragment)
	u.ClearFragment()
	require.False(t, u.HasFragment())

	u.ClearHost()
	_, has = u.Host()
	require.False(t, has)
	_, has = u.UserInfo()
	require.False(t, has)
	require.False(t, u.HasPort())
}

func TestBuilder_SetPathReplacesWholesale(t *testing.T) {
	t.Parallel()

	u := New()
	u.SetPath([]string{"", "a", "b"})
	require.Equal(t, []string{"", "a", "b"}, u.Path())

	u.SetPath([]string{"c"})
	require.Equal(t, []string{"c"}, u.Path())
}
