// Package uri implements RFC 3986 URIs: a parser that builds a URI value
// from its string rendering, a serializer that renders it back, a
// remove_dot_segments path normalizer, and a reference resolver.
package uri

import (
	"strconv"
	"strings"
)

// URI is the in-memory representation of an RFC 3986 URI or URI reference.
// The zero value is an empty relative reference (empty path, no scheme, no
// authority, no query, no fragment).
type URI struct {
	err error

	scheme string // "" means absent

	hasUserInfo bool
	userinfo    string

	hasHost bool
	host    string

	hasPort bool
	port    uint16

	path []string

	hasQuery bool
	query    string

	hasFragment bool
	fragment    string
}

// New returns an empty URI, ready for incremental construction via the
// setters.
func New() *URI {
	return &URI{}
}

// Parse populates u from raw and reports whether it succeeded. On failure,
// u's contents are unspecified; u.Err() carries the diagnostic.
func (u *URI) Parse(raw string) bool {
	return u.ParseOption(raw)
}

// ParseOption is like Parse but accepts Options, e.g. WithStrictIPv6.
func (u *URI) ParseOption(raw string, opts ...Option) bool {
	o, redeem := borrowOptions(opts)
	defer redeem()

	*u = URI{}
	if err := u.parse(raw, o); err != nil {
		u.err = wrapf(ErrInvalidURI, "%w", err)
		return false
	}
	return true
}

// Err returns the diagnostic from the most recent failed Parse, or nil.
func (u *URI) Err() error {
	return u.err
}

// parse implements the top-level splitter: scheme cut, ?/# location,
// authority split, path parse, fragment split, query assignment.
func (u *URI) parse(raw string, o *parseOptions) error {
	rest := raw

	// 1. Scheme cut: confine the colon search to the prefix before the
	// first '/'.
	searchWindow := rest
	if slash := strings.IndexByte(rest, '/'); slash >= 0 {
		searchWindow = rest[:slash]
	}
	if colon := strings.IndexByte(searchWindow, ':'); colon >= 0 {
		schemeCandidate := rest[:colon]
		if err := validateScheme(schemeCandidate); err != nil {
			return err
		}
		u.scheme = toLowerASCII(schemeCandidate)
		rest = rest[colon+1:]
	}

	// 2. Locate '?' and '#': the earliest of the two ends the
	// authority+path region.
	authorityAndPath := rest
	queryAndFragment := ""
	qIdx := strings.IndexByte(rest, '?')
	hIdx := strings.IndexByte(rest, '#')
	switch {
	case qIdx >= 0 && (hIdx < 0 || qIdx < hIdx):
		authorityAndPath = rest[:qIdx]
		queryAndFragment = rest[qIdx:]
	case hIdx >= 0:
		authorityAndPath = rest[:hIdx]
		queryAndFragment = rest[hIdx:]
	}

	// 3. Authority split.
	var pathStr string
	hasAuthority := strings.HasPrefix(authorityAndPath, "//")
	if hasAuthority {
		authorityAndPath = authorityAndPath[2:]
		end := strings.IndexByte(authorityAndPath, '/')
		var authorityStr string
		if end < 0 {
			authorityStr = authorityAndPath
			pathStr = ""
		} else {
			authorityStr = authorityAndPath[:end]
			pathStr = authorityAndPath[end:]
		}
		if err := u.parseAuthority(authorityStr, o); err != nil {
			return err
		}
	} else {
		pathStr = authorityAndPath
		u.hasUserInfo = false
		u.userinfo = ""
		u.hasHost = false
		u.host = ""
		u.hasPort = false
		u.port = 0
	}

	// 4. Path parse.
	segments, err := parsePath(pathStr)
	if err != nil {
		return err
	}
	u.path = segments

	// 3's corollary invariant: no scheme, no host, non-empty path must not
	// start with a colon-bearing first segment (path-noscheme).
	if u.scheme == "" && !u.hasHost && len(u.path) > 0 && strings.ContainsRune(u.path[0], ':') {
		return wrapf(ErrInvalidPath, "path-noscheme segment %q contains a colon", u.path[0])
	}

	// 5. Authority-with-empty-path rule.
	if u.hasHost && len(u.path) == 0 {
		u.path = []string{""}
	}

	// 6. Fragment split.
	querySrc := queryAndFragment
	if fIdx := strings.IndexByte(queryAndFragment, '#'); fIdx >= 0 {
		querySrc = queryAndFragment[:fIdx]
		fragRaw := queryAndFragment[fIdx+1:]
		decoded, err := decodeElement(fragRaw, queryOrFragmentNotPctEncodedSet, ErrInvalidFragment)
		if err != nil {
			return err
		}
		u.hasFragment = true
		u.fragment = decoded
	}

	// 7. Query.
	if querySrc != "" {
		decoded, err := decodeElement(querySrc[1:], queryOrFragmentNotPctEncodedSet, ErrInvalidQuery)
		if err != nil {
			return err
		}
		u.hasQuery = true
		u.query = decoded
	}

	return nil
}

func validateScheme(s string) error {
	if s == "" {
		return wrapf(ErrInvalidScheme, "empty scheme")
	}
	if !alphaSet.contains(s[0]) {
		return wrapf(ErrInvalidScheme, "scheme %q must start with a letter", s)
	}
	for i := 1; i < len(s); i++ {
		if !schemeNotFirstSet.contains(s[i]) {
			return wrapf(ErrInvalidScheme, "illegal character %q in scheme %q", s[i], s)
		}
	}
	return nil
}

// Scheme returns the URI's scheme, or "" if absent.
func (u *URI) Scheme() string { return u.scheme }

// UserInfo returns the decoded userinfo and whether it is present.
func (u *URI) UserInfo() (string, bool) { return u.userinfo, u.hasUserInfo }

// Host returns the decoded host and whether an authority is present.
func (u *URI) Host() (string, bool) { return u.host, u.hasHost }

// HasPort reports whether a port was present.
func (u *URI) HasPort() bool { return u.hasPort }

// Port returns the port value; meaningless unless HasPort is true.
func (u *URI) Port() uint16 { return u.port }

// Path returns the path as an ordered list of decoded segments.
func (u *URI) Path() []string { return u.path }

// Query returns the decoded query and whether it is present.
func (u *URI) Query() (string, bool) { return u.query, u.hasQuery }

// Fragment returns the decoded fragment and whether it is present.
func (u *URI) Fragment() (string, bool) { return u.fragment, u.hasFragment }

// HasQuery reports whether a query component is present (possibly empty).
func (u *URI) HasQuery() bool { return u.hasQuery }

// HasFragment reports whether a fragment component is present (possibly
// empty).
func (u *URI) HasFragment() bool { return u.hasFragment }

// IsRelativeReference reports whether the scheme is absent.
func (u *URI) IsRelativeReference() bool { return u.scheme == "" }

// ContainsRelativePath reports whether the path is non-empty and does not
// begin with an empty (absolute-marking) segment.
func (u *URI) ContainsRelativePath() bool {
	return len(u.path) > 0 && u.path[0] != ""
}

// Equal reports field-wise equality: the port value is compared only when
// both sides carry a port.
func (u *URI) Equal(other *URI) bool {
	if other == nil {
		return false
	}
	if u.scheme != other.scheme ||
		u.hasUserInfo != other.hasUserInfo ||
		u.hasHost != other.hasHost ||
		u.host != other.host ||
		u.hasPort != other.hasPort ||
		u.hasQuery != other.hasQuery ||
		u.hasFragment != other.hasFragment {
		return false
	}
	if u.hasUserInfo && u.userinfo != other.userinfo {
		return false
	}
	if u.hasPort && u.port != other.port {
		return false
	}
	if u.hasQuery && u.query != other.query {
		return false
	}
	if u.hasFragment && u.fragment != other.fragment {
		return false
	}
	if len(u.path) != len(other.path) {
		return false
	}
	for i, seg := range u.path {
		if seg != other.path[i] {
			return false
		}
	}
	return true
}

func formatPort(p uint16) string {
	return strconv.FormatUint(uint64(p), 10)
}
