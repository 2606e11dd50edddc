package uri

import "strings"

// decodeElement decodes raw against allowed, the CharacterSet of bytes that
// may appear verbatim. A '%' begins a two-digit percent-escape; any other
// byte must belong to allowed. Any failure inside an escape, or any byte
// outside allowed, fails the whole decode.
func decodeElement(raw string, allowed characterSet, sentinel error) (string, error) {
	if !strings.ContainsRune(raw, '%') {
		for i := 0; i < len(raw); i++ {
			if !allowed.contains(raw[i]) {
				return "", wrapf(sentinel, "illegal character %q at offset %d", raw[i], i)
			}
		}
		return raw, nil
	}

	var out strings.Builder
	out.Grow(len(raw))

	var dec percentDecoder
	i := 0
	for i < len(raw) {
		b := raw[i]
		if b == '%' {
			dec.reset()
			j := i + 1
			for !dec.done() {
				if j >= len(raw) {
					return "", wrapf(ErrInvalidPercent, "truncated percent-escape at offset %d", i)
				}
				if err := dec.feed(raw[j]); err != nil {
					return "", err
				}
				j++
			}
			out.WriteByte(dec.decoded())
			i = j
			continue
		}

		if !allowed.contains(b) {
			return "", wrapf(sentinel, "illegal character %q at offset %d", b, i)
		}
		out.WriteByte(b)
		i++
	}

	return out.String(), nil
}
