package ais

import "strings"

// decodeSixBitText decodes nChars fixed-length 6-bit packed ASCII
// characters starting at offset, per ITU-R M.1371-5 Table 47. It returns
// both the raw decode (only trailing '@' padding stripped) and the trimmed
// variant (trailing '@' then trailing space also stripped) — the spec
// leaves ambiguous whether callers want embedded '@' preserved, so both
// are exposed rather than picking one silently.
func decodeSixBitText(b *BitBuffer, offset, nChars int) (raw string, trimmed string, err error) {
	var sb strings.Builder
	sb.Grow(nChars)
	for i := 0; i < nChars; i++ {
		v, rerr := b.U(offset+i*6, 6)
		if rerr != nil {
			return "", "", rerr
		}
		sb.WriteByte(sixBitToASCII(byte(v)))
	}
	raw = strings.TrimRight(sb.String(), "@")
	trimmed = strings.TrimRight(raw, " ")
	return raw, trimmed, nil
}

// sixBitToASCII maps a single 6-bit code (0..63) to its ITU Table 47 character.
func sixBitToASCII(v byte) byte {
	switch {
	case v == 0:
		return '@'
	case v >= 1 && v <= 31:
		return v + 64 // A-Z, [ \ ] ^ _
	default: // 32..63
		return v // space .. ?
	}
}

// asciiToSixBit is the inverse of sixBitToASCII, used by tests to verify
// the round-trip invariant over the 6-bit-safe character set.
func asciiToSixBit(c byte) (byte, bool) {
	switch {
	case c == '@':
		return 0, true
	case c >= 'A' && c <= '_':
		return c - 64, true
	case c >= ' ' && c <= '?':
		return c, true
	default:
		return 0, false
	}
}
