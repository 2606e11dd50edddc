package uri

// Resolve combines u, used as the base URI (must not be a relative
// reference), with reference to yield a target URI per RFC 3986 §5.2.2.
// The result is a fresh value; neither u nor reference is mutated.
func (u *URI) Resolve(reference *URI) *URI {
	target := &URI{}

	switch {
	case reference.scheme != "":
		target.scheme = reference.scheme
		copyAuthority(target, reference)
		target.path = removeDotSegments(reference.path)
		target.hasQuery, target.query = reference.hasQuery, reference.query

	case reference.hasHost:
		copyAuthority(target, reference)
		target.path = removeDotSegments(reference.path)
		target.hasQuery, target.query = reference.hasQuery, reference.query
		target.scheme = u.scheme

	default:
		switch {
		case len(reference.path) == 0:
			target.path = append([]string(nil), u.path...)
			if reference.hasQuery {
				target.hasQuery, target.query = true, reference.query
			} else {
				target.hasQuery, target.query = u.hasQuery, u.query
			}

		case reference.path[0] == "":
			target.path = removeDotSegments(reference.path)
			target.hasQuery, target.query = reference.hasQuery, reference.query

		default:
			target.path = removeDotSegments(mergePath(u.path, reference.path))
			target.hasQuery, target.query = reference.hasQuery, reference.query
		}
		copyAuthority(target, u)
		target.scheme = u.scheme
	}

	target.hasFragment, target.fragment = reference.hasFragment, reference.fragment

	return target
}

func copyAuthority(dst, src *URI) {
	dst.hasUserInfo, dst.userinfo = src.hasUserInfo, src.userinfo
	dst.hasHost, dst.host = src.hasHost, src.host
	dst.hasPort, dst.port = src.hasPort, src.port
}
