package uri

// decoderState is the percent-decoder's explicit tagged state, per the
// design note calling for enumerations instead of integer codes.
type decoderState int

const (
	decoderStart decoderState = iota
	decoderFirstHex
	decoderDone
)

// percentDecoder consumes one byte at a time and, after two hex digits,
// yields a single decoded byte. It may be reset and reused.
type percentDecoder struct {
	state decoderState
	hi    byte
	value byte
}

func (d *percentDecoder) reset() {
	d.state = decoderStart
	d.hi = 0
	d.value = 0
}

func hexNibble(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}

// feed advances the state machine by one byte. It returns an error if b is
// not a valid hex digit in a position where one is expected.
func (d *percentDecoder) feed(b byte) error {
	switch d.state {
	case decoderStart:
		nibble, ok := hexNibble(b)
		if !ok {
			return wrapf(ErrInvalidPercent, "invalid hex digit %q", b)
		}
		d.hi = nibble
		d.state = decoderFirstHex
		return nil
	case decoderFirstHex:
		nibble, ok := hexNibble(b)
		if !ok {
			return wrapf(ErrInvalidPercent, "invalid hex digit %q", b)
		}
		d.value = d.hi<<4 | nibble
		d.state = decoderDone
		return nil
	default:
		return wrapf(ErrInvalidPercent, "percent-decoder fed past completion")
	}
}

func (d *percentDecoder) done() bool {
	return d.state == decoderDone
}

func (d *percentDecoder) decoded() byte {
	return d.value
}
