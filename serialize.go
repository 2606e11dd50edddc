package uri

import "strings"

const upperHex = "0123456789ABCDEF"

// percentEncode renders s, escaping any byte not in allowed as %HH (upper
// case hex). alwaysEscape additionally forces escaping of the bytes it
// contains even when they are members of allowed (used for '+' in the
// query); pass the empty set noExtraEscapes when there are none.
func percentEncode(s string, allowed characterSet, alwaysEscape characterSet) string {
	needsEscape := false
	for i := 0; i < len(s); i++ {
		b := s[i]
		if !allowed.contains(b) || alwaysEscape.contains(b) {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return s
	}

	var out strings.Builder
	out.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		b := s[i]
		if allowed.contains(b) && !alwaysEscape.contains(b) {
			out.WriteByte(b)
			continue
		}
		out.WriteByte('%')
		out.WriteByte(upperHex[b>>4])
		out.WriteByte(upperHex[b&0xf])
	}
	return out.String()
}

var noExtraEscapes = newCharacterSet()
var queryPlusEscape = charSetOf('+')

// String renders u in its canonical RFC 3986 form. It never fails; a URI
// whose invariants were broken by direct field mutation renders whatever
// its current field values imply.
func (u *URI) String() string {
	var out strings.Builder

	if u.scheme != "" {
		out.WriteString(u.scheme)
		out.WriteByte(':')
	}

	if u.hasHost {
		out.WriteString("//")
		if u.hasUserInfo {
			out.WriteString(percentEncode(u.userinfo, userInfoNotPctEncodedSet, noExtraEscapes))
			out.WriteByte('@')
		}
		if strings.ContainsRune(u.host, ':') {
			out.WriteByte('[')
			out.WriteString(u.host)
			out.WriteByte(']')
		} else {
			out.WriteString(percentEncode(u.host, regNameNotPctEncodedSet, noExtraEscapes))
		}
		if u.hasPort {
			out.WriteByte(':')
			out.WriteString(formatPort(u.port))
		}
	}

	writePath(&out, u.path, u.scheme != "", u.hasHost)

	if u.hasQuery {
		out.WriteByte('?')
		out.WriteString(percentEncode(u.query, queryOrFragmentNotPctEncodedSet, queryPlusEscape))
	}

	if u.hasFragment {
		out.WriteByte('#')
		out.WriteString(percentEncode(u.fragment, queryOrFragmentNotPctEncodedSet, noExtraEscapes))
	}

	return out.String()
}

// writePath renders the path's segments, joined by '/'. Two ambiguous
// shapes are disambiguated with a lossy-but-unambiguous dot-segment prefix:
// a host-less path that would otherwise start with "//" (misreadable as an
// authority marker), and a scheme-less, host-less path whose first segment
// contains a colon (misreadable as a scheme).
func writePath(out *strings.Builder, path []string, hasScheme, hasHost bool) {
	if len(path) == 0 {
		return
	}

	if len(path) == 1 && path[0] == "" {
		out.WriteByte('/')
		return
	}

	switch {
	case !hasHost && len(path) >= 2 && path[0] == "" && path[1] == "":
		// Without this, the rendered path would begin with "//" and be
		// misread as an authority marker.
		out.WriteString("/.")
	case !hasScheme && !hasHost && strings.ContainsRune(path[0], ':'):
		// A relative-path reference whose first segment contains a colon
		// would otherwise be misread as a scheme.
		out.WriteString("./")
	}

	for i, seg := range path {
		if i > 0 {
			out.WriteByte('/')
		}
		out.WriteString(percentEncode(seg, pcharNotPctEncodedSet, noExtraEscapes))
	}
}
