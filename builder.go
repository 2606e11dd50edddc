package uri

// SetScheme sets the scheme. An empty string clears it (making the URI a
// relative reference), matching the invariant that a zero-length scheme is
// equivalent to absent.
func (u *URI) SetScheme(scheme string) {
	u.scheme = toLowerASCII(scheme)
}

// SetUserInfo sets a present (possibly empty) userinfo.
func (u *URI) SetUserInfo(userinfo string) {
	u.hasUserInfo = true
	u.userinfo = userinfo
}

// ClearUserInfo removes the userinfo component.
func (u *URI) ClearUserInfo() {
	u.hasUserInfo = false
	u.userinfo = ""
}

// SetHost sets a present (possibly empty) host, establishing an authority.
func (u *URI) SetHost(host string) {
	u.hasHost = true
	u.host = host
}

// ClearHost removes the authority entirely: host, userinfo, and port.
func (u *URI) ClearHost() {
	u.hasHost = false
	u.host = ""
	u.ClearUserInfo()
	u.ClearPort()
}

// SetPort sets a present port. A zero port is valid and distinct from "no
// port".
func (u *URI) SetPort(port uint16) {
	u.hasPort = true
	u.port = port
}

// ClearPort removes the port.
func (u *URI) ClearPort() {
	u.hasPort = false
	u.port = 0
}

// SetPath replaces the path's segment list wholesale.
func (u *URI) SetPath(segments []string) {
	u.path = segments
}

// SetQuery sets a present (possibly empty) query.
func (u *URI) SetQuery(query string) {
	u.hasQuery = true
	u.query = query
}

// ClearQuery removes the query component.
func (u *URI) ClearQuery() {
	u.hasQuery = false
	u.query = ""
}

// SetFragment sets a present (possibly empty) fragment.
func (u *URI) SetFragment(fragment string) {
	u.hasFragment = true
	u.fragment = fragment
}

// ClearFragment removes the fragment component.
func (u *URI) ClearFragment() {
	u.hasFragment = false
	u.fragment = ""
}
