package uri

import "sync"

// parseOptions carries the one degree of freedom this package exposes over
// the base grammar: a stricter IPv6 literal check than the host state
// machine's deliberately lax IPv6 branch (see the IPv6 validation design
// note).
type parseOptions struct {
	strictIPv6 bool
}

// Option configures a single call to ParseOption.
type Option func(*parseOptions)

// WithStrictIPv6 re-validates a lexically-accepted IPv6 literal with
// net/netip, rejecting addresses the base host state machine would
// otherwise admit structurally (it only checks for a balanced closing
// bracket). Off by default, so the base seed scenarios keep their
// documented laxness.
func WithStrictIPv6(strict bool) Option {
	return func(o *parseOptions) {
		o.strictIPv6 = strict
	}
}

var optionsPool = sync.Pool{
	New: func() interface{} {
		return new(parseOptions)
	},
}

// borrowOptions returns a pooled, zeroed parseOptions with opts applied,
// plus a redeem func to return it to the pool once the parse is done.
func borrowOptions(opts []Option) (*parseOptions, func()) {
	o := optionsPool.Get().(*parseOptions)
	*o = parseOptions{}
	for _, apply := range opts {
		apply(o)
	}
	return o, func() { optionsPool.Put(o) }
}
