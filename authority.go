package uri

import (
	"net/netip"
	"strings"
)

// hostState is the host parser's explicit tagged state, mirroring the
// design note that the host FSM should be enumerated rather than encoded
// as integers.
type hostState int

const (
	stateFirstCharacter hostState = iota
	stateNotIPLiteral
	statePercentEncoded
	stateIPLiteral
	stateIPv6Address
	stateIPvFutureNumber
	stateIPvFutureBody
	stateGarbageCheck
	statePort
)

// parseAuthority splits an authority substring (no leading "//") into
// userinfo / host / port and populates u accordingly.
func (u *URI) parseAuthority(authority string, o *parseOptions) error {
	hostAndPort := authority
	if at := strings.LastIndexByte(authority, '@'); at >= 0 {
		userinfoRaw := authority[:at]
		decoded, err := decodeElement(userinfoRaw, userInfoNotPctEncodedSet, ErrInvalidUserInfo)
		if err != nil {
			return err
		}
		u.hasUserInfo = true
		u.userinfo = decoded
		hostAndPort = authority[at+1:]
	} else {
		u.hasUserInfo = false
		u.userinfo = ""
	}

	host, portStr, isRegName, isIPv6, err := runHostStateMachine(hostAndPort)
	if err != nil {
		return err
	}

	if isRegName {
		host = toLowerASCII(host)
	}
	if isIPv6 && o.strictIPv6 {
		if _, perr := netip.ParseAddr(host); perr != nil {
			return wrapf(ErrInvalidHost, "strict IPv6 validation rejected %q: %v", host, perr)
		}
	}

	u.hasHost = true
	u.host = host

	if portStr == "" {
		u.hasPort = false
		u.port = 0
		return nil
	}

	port, err := parsePort(portStr)
	if err != nil {
		return err
	}
	u.hasPort = true
	u.port = port
	return nil
}

// runHostStateMachine parses a host into reg-name, IPv4address (which falls
// out of reg-name's alphabet, per the RFC grammar's reg-name/IPv4 ambiguity
// that the RFC itself leaves to the caller), bracketed IPv6address, or
// IPvFuture, each with a distinct terminator, plus an optional trailing
// port.
func runHostStateMachine(raw string) (host, portStr string, isRegName, isIPv6 bool, err error) {
	var hostBuf, portBuf strings.Builder
	var dec percentDecoder
	isIPvFuture := false

	state := stateFirstCharacter
	i := 0
	for i < len(raw) {
		b := raw[i]

		switch state {
		case stateFirstCharacter:
			if b == '[' {
				hostBuf.WriteByte(b)
				state = stateIPLiteral
				i++
				continue
			}
			isRegName = true
			state = stateNotIPLiteral
			continue // re-dispatch the same byte, cursor not advanced

		case stateNotIPLiteral:
			switch {
			case b == '%':
				dec.reset()
				state = statePercentEncoded
				i++
				continue
			case b == ':':
				state = statePort
				i++
				continue
			case regNameNotPctEncodedSet.contains(b):
				hostBuf.WriteByte(b)
				i++
				continue
			default:
				return "", "", false, false, wrapf(ErrInvalidHost, "illegal character %q in host", b)
			}

		case statePercentEncoded:
			if ferr := dec.feed(b); ferr != nil {
				return "", "", false, false, ferr
			}
			i++
			if dec.done() {
				hostBuf.WriteByte(dec.decoded())
				state = stateNotIPLiteral
			}
			continue

		case stateIPLiteral:
			if b == 'v' || b == 'V' {
				hostBuf.WriteByte(b)
				isIPvFuture = true
				state = stateIPvFutureNumber
				i++
				continue
			}
			isIPv6 = true
			state = stateIPv6Address
			continue // re-dispatch

		case stateIPv6Address:
			hostBuf.WriteByte(b)
			i++
			if b == ']' {
				state = stateGarbageCheck
			}
			continue

		case stateIPvFutureNumber:
			if b == '.' {
				hostBuf.WriteByte(b)
				state = stateIPvFutureBody
				i++
				continue
			}
			if !hexDigSet.contains(b) {
				return "", "", false, false, wrapf(ErrInvalidHost, "illegal character %q in IPvFuture version", b)
			}
			hostBuf.WriteByte(b)
			i++
			continue

		case stateIPvFutureBody:
			hostBuf.WriteByte(b)
			i++
			if b == ']' {
				state = stateGarbageCheck
				continue
			}
			if !ipvFutureLastPartSet.contains(b) {
				return "", "", false, false, wrapf(ErrInvalidHost, "illegal character %q in IPvFuture", b)
			}
			continue

		case stateGarbageCheck:
			if b != ':' {
				return "", "", false, false, wrapf(ErrInvalidHost, "unexpected byte %q after IP-literal", b)
			}
			state = statePort
			i++
			continue

		case statePort:
			portBuf.WriteByte(b)
			i++
			continue
		}
	}

	switch state {
	case statePercentEncoded:
		return "", "", false, false, wrapf(ErrInvalidPercent, "truncated percent-escape in host")
	case stateIPLiteral, stateIPv6Address, stateIPvFutureNumber, stateIPvFutureBody:
		return "", "", false, false, wrapf(ErrInvalidHost, "unterminated IP-literal")
	}

	host = hostBuf.String()
	if len(host) > 0 && host[0] == '[' {
		host = strings.TrimPrefix(host, "[")
		host = strings.TrimSuffix(host, "]")
	}
	// isIPv6 reports strict-mode eligibility: a bracketed literal that is
	// not an IPvFuture. net/netip has no notion of IPvFuture syntax, so an
	// IPvFuture literal must never be routed to it.
	isIPv6 = isIPv6 && !isIPvFuture

	return host, portBuf.String(), isRegName, isIPv6, nil
}

func parsePort(s string) (uint16, error) {
	if s == "" {
		return 0, nil
	}
	var v uint32
	for i := 0; i < len(s); i++ {
		b := s[i]
		if !digitSet.contains(b) {
			return 0, wrapf(ErrInvalidPort, "non-digit %q in port %q", b, s)
		}
		v = v*10 + uint32(b-'0')
		if v > 65535 {
			return 0, wrapf(ErrInvalidPort, "port %q overflows 16 bits", s)
		}
	}
	return uint16(v), nil
}
