package ais

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBaseStationReport_ValidDateTime(t *testing.T) {
	bits := bitString(168, map[int]string{
		38: u32Bits(2026, 14),
		52: u32Bits(7, 4),
		56: u32Bits(29, 5),
		61: u32Bits(12, 5),
		66: u32Bits(30, 6),
		72: u32Bits(15, 6),
		78: "1", // accuracy
		138: "1", // long range control
		148: "1", // raim
	})
	b := newBitBuffer(bitsFromString(bits))
	decode := decodeBaseStationReport(4)
	got, err := decode(b)
	require.NoError(t, err)
	msg := got.(*BaseStationReport)

	assert.True(t, msg.UTCYear.IsValid())
	assert.Equal(t, "2026-07-29T12:30:15Z", msg.UTCDateTime)
	assert.True(t, msg.PositionAccuracy)
	assert.True(t, msg.LongRangeControl)
	assert.True(t, msg.RAIM)
}

func TestDecodeBaseStationReport_YearZeroIsUnavailable(t *testing.T) {
	bits := bitString(168, map[int]string{})
	b := newBitBuffer(bitsFromString(bits))
	decode := decodeBaseStationReport(11)
	got, err := decode(b)
	require.NoError(t, err)
	msg := got.(*BaseStationReport)

	assert.False(t, msg.UTCYear.IsValid())
	assert.Empty(t, msg.UTCDateTime)
}
