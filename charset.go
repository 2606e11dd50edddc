package uri

import "github.com/bits-and-blooms/bitset"

// characterSet is a closed-set byte-membership test backed by a 256-bit
// bitmap, so contains is a single word lookup rather than a scan over a
// slice of ranges.
type characterSet struct {
	bits *bitset.BitSet
}

func newCharacterSet() characterSet {
	return characterSet{bits: bitset.New(256)}
}

// clone returns a characterSet with its own independent backing BitSet, so
// that extending it never mutates a set it was derived from.
func (c characterSet) clone() characterSet {
	return characterSet{bits: c.bits.Clone()}
}

// withByte returns a set extended with a single byte. The receiver is not
// mutated; callers build sets once, at init time, via chained combinators.
func (c characterSet) withByte(b byte) characterSet {
	c = c.clone()
	c.bits.Set(uint(b))
	return c
}

// withRange returns a set extended with an inclusive byte range. Endpoints
// may be given in either order.
func (c characterSet) withRange(lo, hi byte) characterSet {
	if lo > hi {
		lo, hi = hi, lo
	}
	c = c.clone()
	for b := int(lo); b <= int(hi); b++ {
		c.bits.Set(uint(b))
	}
	return c
}

// union returns a set containing every byte in c or other. Neither operand
// is mutated.
func (c characterSet) union(other characterSet) characterSet {
	c = c.clone()
	for i, e := other.bits.NextSet(0); e; i, e = other.bits.NextSet(i + 1) {
		c.bits.Set(i)
	}
	return c
}

// contains reports whether b belongs to the set. O(1).
func (c characterSet) contains(b byte) bool {
	return c.bits.Test(uint(b))
}

func charSetOf(bytes ...byte) characterSet {
	s := newCharacterSet()
	for _, b := range bytes {
		s = s.withByte(b)
	}
	return s
}

func charSetRange(lo, hi byte) characterSet {
	return newCharacterSet().withRange(lo, hi)
}

// The RFC 3986 standard alphabets, built once from the combinators above and
// shared process-wide. They are read-only after init and safe for
// concurrent use.
var (
	alphaSet = charSetRange('a', 'z').union(charSetRange('A', 'Z'))
	digitSet = charSetRange('0', '9')
	hexDigSet = digitSet.
			union(charSetRange('a', 'f')).
			union(charSetRange('A', 'F'))

	unreservedSet = alphaSet.
			union(digitSet).
			union(charSetOf('-', '.', '_', '~'))
	subDelimsSet = charSetOf('!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=')

	schemeNotFirstSet = alphaSet.union(digitSet).union(charSetOf('+', '-', '.'))

	unreservedAndSubDelimsSet = unreservedSet.union(subDelimsSet)

	pcharNotPctEncodedSet = unreservedAndSubDelimsSet.union(charSetOf(':', '@'))

	queryOrFragmentNotPctEncodedSet = pcharNotPctEncodedSet.union(charSetOf('/', '?'))

	userInfoNotPctEncodedSet = unreservedAndSubDelimsSet.union(charSetOf(':'))

	regNameNotPctEncodedSet = unreservedAndSubDelimsSet.clone()

	ipvFutureLastPartSet = unreservedAndSubDelimsSet.union(charSetOf(':'))
)
