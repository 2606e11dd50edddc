// Package fixtures supplies representative URI strings for the profiling
// harness: enough variety across scheme, authority, path, query, and
// fragment shapes to exercise every branch of the parser's hot path.
package fixtures

import "github.com/fredbi/uri3986"

type (
	// URITest is one profiling fixture. IsReference marks a relative
	// reference (no scheme); Err non-nil marks a case the parser must
	// reject.
	URITest struct {
		URIRaw      string
		Err         error
		Comment     string
		IsReference bool
	}

	testGenerator func() []URITest
)

var AllGenerators = []testGenerator{
	rawParsePassTests,
	rawParseFailTests,
	rawParseReferenceTests,
	rawParseSchemeTests,
	rawParseHostTests,
	rawParseIPHostTests,
	rawParsePathTests,
	rawParseQueryAndFragmentTests,
}

func rawParsePassTests() []URITest {
	return []URITest{
		{Comment: "plain http URL", URIRaw: "http://www.example.com/foo/bar"},
		{Comment: "urn with colon-bearing opaque path", URIRaw: "urn:book:fantasy:Hobbit"},
		{Comment: "userinfo and port", URIRaw: "http://user:pw@example.com:8080/a/b"},
		{Comment: "empty userinfo round-trips", URIRaw: "http://@example.com/"},
		{Comment: "query and fragment", URIRaw: "http://example.com/a?x=1&y=2#frag"},
		{Comment: "trailing slash", URIRaw: "http://example.com/a/b/"},
		{Comment: "percent-encoded path segment", URIRaw: "http://example.com/a%20b"},
		{Comment: "mailto opaque path", URIRaw: "mailto:user@domain.com"},
	}
}

func rawParseFailTests() []URITest {
	return []URITest{
		{Comment: "empty scheme before colon", URIRaw: ":foo", Err: uri.ErrInvalidScheme},
		{Comment: "scheme starting with a digit", URIRaw: "0://example.com", Err: uri.ErrInvalidScheme},
		{Comment: "scheme starting with a dot", URIRaw: ".://example.com", Err: uri.ErrInvalidScheme},
		{Comment: "truncated percent-escape in path", URIRaw: "http://example.com/a%2", Err: uri.ErrInvalidPercent},
		{Comment: "illegal character in query", URIRaw: "http://example.com/?a b", Err: uri.ErrInvalidQuery},
		{Comment: "port overflowing 16 bits", URIRaw: "http://example.com:65536/", Err: uri.ErrInvalidPort},
		{Comment: "unterminated IPv6 literal", URIRaw: "http://[2001:db8::1/", Err: uri.ErrInvalidHost},
	}
}

func rawParseReferenceTests() []URITest {
	return []URITest{
		{Comment: "authority-only reference", URIRaw: "//host.domain.com/a/b", IsReference: true},
		{Comment: "root path reference", URIRaw: "/", IsReference: true},
		{Comment: "relative file reference", URIRaw: "foo.html", IsReference: true},
		{Comment: "dot-dot relative reference", URIRaw: "../dir/", IsReference: true},
		{Comment: "empty string reference", URIRaw: "", IsReference: true},
		{Comment: "fragment-only reference", URIRaw: "#frag", IsReference: true},
	}
}

func rawParseSchemeTests() []URITest {
	return []URITest{
		{Comment: "scheme with digits and plus/minus/dot", URIRaw: "a1+b-c.d://example.com/"},
		{Comment: "scheme is case-folded", URIRaw: "HTTP://example.com/"},
	}
}

func rawParseHostTests() []URITest {
	return []URITest{
		{Comment: "reg-name is case-folded", URIRaw: "http://WWW.Example.COM/"},
		{Comment: "percent-encoded reg-name", URIRaw: "http://ex%61mple.com/"},
	}
}

func rawParseIPHostTests() []URITest {
	return []URITest{
		{Comment: "full IPv6 literal", URIRaw: "http://[2001:db8:85a3:8d3:1319:8a2e:370:7348]/"},
		{Comment: "IPv4 literal parses via the reg-name alphabet", URIRaw: "http://192.168.0.1/"},
		{Comment: "IPvFuture literal", URIRaw: "http://[v1.fe80::a]/"},
	}
}

func rawParsePathTests() []URITest {
	return []URITest{
		{Comment: "empty path", URIRaw: "http://example.com"},
		{Comment: "root path", URIRaw: "http://example.com/"},
		{Comment: "deep path with dot segments", URIRaw: "http://example.com/a/./b/../c"},
	}
}

func rawParseQueryAndFragmentTests() []URITest {
	return []URITest{
		{Comment: "query containing a literal plus", URIRaw: "http://example.com/?a=1+2"},
		{Comment: "empty-but-present fragment", URIRaw: "http://example.com#"},
		{Comment: "empty-but-present query", URIRaw: "http://example.com?"},
	}
}
