package ais

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStaticDataReport_PartA(t *testing.T) {
	bits := bitString(160, map[int]string{
		38: u32Bits(0, 2),
		40: sixBitBits("MY VESSEL           "),
	})
	b := newBitBuffer(bitsFromString(bits))
	got, err := decodeStaticDataReport(b)
	require.NoError(t, err)
	msg := got.(*StaticDataReport)

	assert.Equal(t, uint8(0), msg.PartNumber)
	assert.Equal(t, "MY VESSEL", msg.VesselName)
}

func TestDecodeStaticDataReport_PartB(t *testing.T) {
	bits := bitString(166, map[int]string{
		38: u32Bits(1, 2),
		40: u32Bits(80, 8),
		48: sixBitBits("VEND123"),
		90: sixBitBits("CALL123"),
		162: u32Bits(2, 4),
	})
	b := newBitBuffer(bitsFromString(bits))
	got, err := decodeStaticDataReport(b)
	require.NoError(t, err)
	msg := got.(*StaticDataReport)

	assert.Equal(t, uint8(1), msg.PartNumber)
	assert.Equal(t, uint8(80), msg.ShipType)
	assert.Equal(t, "VEND123", msg.VendorID)
	assert.Equal(t, "CALL123", msg.CallSign)
	assert.Equal(t, uint8(2), msg.EPFDType)
}
