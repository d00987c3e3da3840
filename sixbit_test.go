package ais

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSixBitToASCII_RoundTrip(t *testing.T) {
	for v := byte(0); v < 64; v++ {
		c := sixBitToASCII(v)
		got, ok := asciiToSixBit(c)
		assert.True(t, ok, "char %q (from %d) should round trip", c, v)
		assert.Equal(t, v, got, "char %q should map back to %d", c, v)
	}
}

func TestDecodeSixBitText(t *testing.T) {
	var testCases = []struct {
		name        string
		given       string // bit string, one char per bit
		whenChars   int
		expectRaw   string
		expectTrim  string
	}{
		{
			name:       "trailing @ stripped from both raw and trimmed",
			given:      sixBitBits("AB") + sixBitBits("@@"),
			whenChars:  4,
			expectRaw:  "AB",
			expectTrim: "AB",
		},
		{
			name:       "trailing space kept in raw but stripped from trimmed",
			given:      sixBitBits("AB") + sixBitBits("  "),
			whenChars:  4,
			expectRaw:  "AB  ",
			expectTrim: "AB",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBitBuffer(bitsFromString(tc.given))
			raw, trimmed, err := decodeSixBitText(b, 0, tc.whenChars)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectRaw, raw)
			assert.Equal(t, tc.expectTrim, trimmed)
		})
	}
}

// sixBitBits renders each character of s as its 6-bit code, MSB-first, as a
// '0'/'1' string consumable by bitsFromString.
func sixBitBits(s string) string {
	out := make([]byte, 0, len(s)*6)
	for i := 0; i < len(s); i++ {
		v, ok := asciiToSixBit(s[i])
		if !ok {
			panic("sixBitBits: character not encodable: " + string(s[i]))
		}
		for shift := 5; shift >= 0; shift-- {
			if (v>>uint(shift))&1 == 1 {
				out = append(out, '1')
			} else {
				out = append(out, '0')
			}
		}
	}
	return string(out)
}
