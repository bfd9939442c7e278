package rqr

import (
	"fmt"
	"strings"
)

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// segment is a single mode-tagged chunk of a message's bit stream,
// before the mode indicator, char-count field, terminator, and padding
// are appended around it.
type segment struct {
	mode     Mode
	numChars int
	data     bitBuffer
}

// encodeNumeric packs a digit string into a Numeric segment: groups of
// three digits become 10 bits, two leftover digits become 7 bits, one
// leftover digit becomes 4 bits.
func encodeNumeric(digits string) (*segment, error) {
	for _, c := range digits {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: %q is not numeric", ErrInvalidMode, digits)
		}
	}

	bb := make(bitBuffer, 0, len(digits)*3+(len(digits)+2)/3)
	for i := 0; i < len(digits); {
		n := min(len(digits)-i, 3)
		var d int
		for _, c := range digits[i : i+n] {
			d = d*10 + int(c-'0')
		}
		bb.appendBits(d, int8(n*3+1))
		i += n
	}

	return &segment{mode: Numeric, numChars: len(digits), data: bb}, nil
}

// encodeAlphanumeric packs text into an Alphanumeric segment: pairs of
// characters become 11 bits (45*first+second), a trailing single
// character becomes 6 bits.
func encodeAlphanumeric(text string) (*segment, error) {
	bb := make(bitBuffer, 0, len(text)*6)
	var i int
	for i = 0; i+1 < len(text); i += 2 {
		a := strings.IndexByte(alphanumericCharset, text[i])
		b := strings.IndexByte(alphanumericCharset, text[i+1])
		if a < 0 || b < 0 {
			return nil, fmt.Errorf("%w: %q is not alphanumeric", ErrInvalidMode, text)
		}
		bb.appendBits(a*45+b, 11)
	}

	if i < len(text) {
		a := strings.IndexByte(alphanumericCharset, text[i])
		if a < 0 {
			return nil, fmt.Errorf("%w: %q is not alphanumeric", ErrInvalidMode, text)
		}
		bb.appendBits(a, 6)
	}

	return &segment{mode: Alphanumeric, numChars: len(text), data: bb}, nil
}

// encodeByte packs a byte slice into a Byte segment unchanged.
func encodeByte(data []byte) *segment {
	bb := make(bitBuffer, 0, len(data)*8)
	for _, b := range data {
		bb.appendBits(int(b), 8)
	}

	return &segment{mode: Byte, numChars: len(data), data: bb}
}

// makeSegment builds a segment for text under the given mode,
// failing with ErrInvalidMode if the mode cannot represent text.
func makeSegment(text string, mode Mode) (*segment, error) {
	switch mode {
	case Numeric:
		return encodeNumeric(text)
	case Alphanumeric:
		return encodeAlphanumeric(text)
	case Byte:
		return encodeByte([]byte(text)), nil
	default:
		return nil, fmt.Errorf("%w: unknown mode", ErrInvalidMode)
	}
}

// totalBits returns the number of bits a segment occupies once its
// mode indicator and char-count field are included, at the given
// version.
func (s *segment) totalBits(version Version) int {
	return 4 + int(s.mode.numCharCountBits(version)) + len(s.data)
}

// buildBitStream concatenates a segment's mode indicator, char-count
// field, and data, then appends the terminator, byte-alignment, and
// 0xEC/0x11 padding up to the full data-codeword capacity of the given
// version and error correction level.
func buildBitStream(seg *segment, version Version, ecl ECLevel) ([]byte, error) {
	dataCapacityBits := numDataCodewords[ecl][version] * 8

	bb := make(bitBuffer, 0, dataCapacityBits)
	bb.appendBits(int(seg.mode.modeBits), 4)
	bb.appendBits(seg.numChars, seg.mode.numCharCountBits(version))
	bb = append(bb, seg.data...)

	if len(bb) > dataCapacityBits {
		return nil, fmt.Errorf("%w: %d bits needed, %d available", ErrCapacityExceeded, len(bb), dataCapacityBits)
	}

	// Terminator: up to 4 zero bits, fewer if capacity is nearly exhausted.
	bb.appendBits(0, int8(min(4, dataCapacityBits-len(bb))))

	// Align to a byte boundary.
	bb.appendBits(0, int8((8-len(bb)%8)%8))
	if len(bb)%8 != 0 {
		panic("bit stream is not byte-aligned after padding")
	}

	// Pad with alternating bytes until capacity is reached.
	for padByte := 0xec; len(bb) < dataCapacityBits; padByte ^= 0xec ^ 0x11 {
		bb.appendBits(padByte, 8)
	}

	return bb.toBytes(), nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
