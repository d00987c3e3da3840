package ais

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func u32Bits(v uint32, width int) string {
	out := make([]byte, width)
	for i := 0; i < width; i++ {
		shift := width - 1 - i
		if (v>>uint(shift))&1 == 1 {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}

func i32Bits(v int32, width int) string {
	return u32Bits(uint32(v)&((1<<uint(width))-1), width)
}

func TestDecodeTimestampSecond(t *testing.T) {
	var testCases = []struct {
		name          string
		given         uint32
		expectSpecial string
		expectValid   bool
	}{
		{name: "literal second 30", given: 30, expectValid: true},
		{name: "60 means unavailable", given: 60, expectSpecial: "unavailable"},
		{name: "61 means manual", given: 61, expectSpecial: "manual"},
		{name: "62 means dead reckoning", given: 62, expectSpecial: "dead-reckoning"},
		{name: "63 means positioning inoperative", given: 63, expectSpecial: "positioning-inoperative"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBitBuffer(bitsFromString(u32Bits(tc.given, 6)))
			got, err := decodeTimestampSecond(b, 0)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectSpecial, got.Special)
			assert.Equal(t, tc.expectValid, got.Second.IsValid())
		})
	}
}

func TestDecodeRateOfTurn(t *testing.T) {
	var testCases = []struct {
		name          string
		given         int32
		expectValid   bool
		expectSteady  bool
		expectHard    bool
	}{
		{name: "-128 is unavailable", given: -128},
		{name: "0 is steady", given: 0, expectValid: true, expectSteady: true},
		{name: "127 is turning hard right", given: 127, expectValid: true, expectHard: true},
		{name: "-127 is turning hard left", given: -127, expectValid: true, expectHard: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBitBuffer(bitsFromString(i32Bits(tc.given, 8)))
			got, err := decodeRateOfTurn(b, 0)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectValid, got.DegPerMin.IsValid())
			assert.Equal(t, tc.expectSteady, got.Steady)
			assert.Equal(t, tc.expectHard, got.TurningHard)
		})
	}
}

func TestDecodeDimensions(t *testing.T) {
	t.Run("all zero means unknown", func(t *testing.T) {
		b := newBitBuffer(bitsFromString(padBits("0", 30)))
		got, err := decodeDimensions(b, 0)
		assert.NoError(t, err)
		assert.True(t, got.Unknown)
	})

	t.Run("reference point unknown when A and C are zero but B and D set", func(t *testing.T) {
		bits := u32Bits(0, 9) + u32Bits(5, 9) + u32Bits(0, 6) + u32Bits(3, 6)
		b := newBitBuffer(bitsFromString(bits))
		got, err := decodeDimensions(b, 0)
		assert.NoError(t, err)
		assert.False(t, got.Unknown)
		assert.True(t, got.ReferencePointUnknown)
		assert.Equal(t, uint16(5), got.LengthM)
		assert.Equal(t, uint16(3), got.WidthM)
	})
}

func TestDecodeCOG10(t *testing.T) {
	var testCases = []struct {
		name         string
		given        uint32
		expectStatus Status
		expectValue  float64
	}{
		{name: "normal value", given: 1800, expectStatus: StatusValid, expectValue: 180.0},
		{name: "3600 unavailable", given: 3600, expectStatus: StatusUnavailable},
		{name: "3601 out of range", given: 3601, expectStatus: StatusOutOfRange},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBitBuffer(bitsFromString(u32Bits(tc.given, 12)))
			got, err := decodeCOG10(b, 0)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectStatus, got.Status)
			if tc.expectStatus == StatusValid {
				assert.InDelta(t, tc.expectValue, got.Value, 0.0001)
			}
		})
	}
}

func TestDecodeTrueHeading(t *testing.T) {
	var testCases = []struct {
		name         string
		given        uint32
		expectStatus Status
		expectValue  uint16
	}{
		{name: "normal value", given: 270, expectStatus: StatusValid, expectValue: 270},
		{name: "511 unavailable", given: 511, expectStatus: StatusUnavailable},
		{name: "360 out of range", given: 360, expectStatus: StatusOutOfRange},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBitBuffer(bitsFromString(u32Bits(tc.given, 9)))
			got, err := decodeTrueHeading(b, 0)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectStatus, got.Status)
			if tc.expectStatus == StatusValid {
				assert.Equal(t, tc.expectValue, got.Value)
			}
		})
	}
}

func TestDecodeDraught(t *testing.T) {
	var testCases = []struct {
		name         string
		given        uint32
		expectStatus Status
		expectValue  float64
	}{
		{name: "normal value", given: 65, expectStatus: StatusValid, expectValue: 6.5},
		{name: "0 unavailable", given: 0, expectStatus: StatusUnavailable},
		{name: "255 out of range floor", given: 255, expectStatus: StatusOutOfRange},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBitBuffer(bitsFromString(u32Bits(tc.given, 8)))
			got, err := decodeDraught(b, 0)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectStatus, got.Status)
			if tc.expectStatus == StatusValid {
				assert.InDelta(t, tc.expectValue, got.Value, 0.0001)
			}
		})
	}
}

func TestDecodeSOG10(t *testing.T) {
	var testCases = []struct {
		name         string
		given        uint32
		expectStatus Status
		expectValue  float64
	}{
		{name: "normal value", given: 105, expectStatus: StatusValid, expectValue: 10.5},
		{name: "1023 unavailable", given: 1023, expectStatus: StatusUnavailable},
		{name: "1022 out of range floor", given: 1022, expectStatus: StatusOutOfRange},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBitBuffer(bitsFromString(u32Bits(tc.given, 10)))
			got, err := decodeSOG10(b, 0)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectStatus, got.Status)
			if tc.expectStatus == StatusValid {
				assert.InDelta(t, tc.expectValue, got.Value, 0.0001)
			}
		})
	}
}
