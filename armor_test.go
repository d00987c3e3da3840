package ais

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArmorToBits(t *testing.T) {
	var testCases = []struct {
		name        string
		given       string
		whenFill    int
		whenStrict  bool
		expectLen   int
		expectFirst uint32 // value of first 6 bits, when expectLen > 0
		expectError string
	}{
		{
			name:        "two characters no fill",
			given:       "15",
			whenFill:    0,
			whenStrict:  true,
			expectLen:   12,
			expectFirst: 1,
		},
		{
			name:      "fill bits trim trailing bits",
			given:     "1",
			whenFill:  2,
			expectLen: 4,
		},
		{
			name:        "strict mode rejects out of range char",
			given:       "1!",
			whenStrict:  true,
			expectError: ErrBadArmor.Error(),
		},
		{
			name:      "lenient mode substitutes zero bits for bad char",
			given:     "1!",
			expectLen: 12,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := armorToBits(tc.given, tc.whenFill, tc.whenStrict)
			if tc.expectError != "" {
				assert.EqualError(t, err, tc.expectError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectLen, b.Len())
			if tc.expectFirst != 0 {
				width := 6
				if tc.expectLen < width {
					width = tc.expectLen
				}
				v, err := b.U(0, width)
				assert.NoError(t, err)
				assert.Equal(t, tc.expectFirst>>(6-width), v)
			}
		})
	}
}
