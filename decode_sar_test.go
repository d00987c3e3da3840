package ais

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aistest "github.com/vesseltrack/ais/test"
)

func TestDecodeSARAircraftReport(t *testing.T) {
	var testCases = []struct {
		name            string
		givenAlt        uint32
		expectAltStatus Status
		givenSOG        uint32
		expectSOGStatus Status
	}{
		{name: "normal altitude and speed", givenAlt: 1000, expectAltStatus: StatusValid, givenSOG: 200, expectSOGStatus: StatusValid},
		{name: "altitude unavailable sentinel", givenAlt: 4095, expectAltStatus: StatusUnavailable, givenSOG: 1023, expectSOGStatus: StatusUnavailable},
		{name: "altitude out of range sentinel", givenAlt: 4094, expectAltStatus: StatusOutOfRange, givenSOG: 1022, expectSOGStatus: StatusOutOfRange},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bits := bitString(168, map[int]string{
				38:  u32Bits(tc.givenAlt, 12),
				50:  u32Bits(tc.givenSOG, 10),
				60:  "1",
				116: u32Bits(1800, 12), // COG 180.0 deg
				147: "1",               // raim
				148: "1",               // itdma
				149: u32Bits(0, 2) + u32Bits(10, 13) + u32Bits(6, 3) + "1",
			})
			b := newBitBuffer(bitsFromString(bits))
			got, err := decodeSARAircraftReport(b)
			require.NoError(t, err)
			msg := got.(*SARAircraftReport)

			assert.Equal(t, tc.expectAltStatus, msg.Altitude.Status)
			assert.Equal(t, tc.expectSOGStatus, msg.SOG.Status)
			assert.True(t, msg.PositionAccuracy)
			aistest.AssertInDeltaValidity(t, msg.COG.Status.String(), 180.0, msg.COG.Value, msg.COG.IsValid(), 0.0001)
			assert.True(t, msg.RAIM)
			assert.True(t, msg.CommState.ITDMA)
			assert.Equal(t, uint16(10), msg.CommState.SlotIncrement)
			assert.Equal(t, uint8(3), msg.CommState.NumSlots)
			assert.True(t, msg.CommState.HasSlotOffsetITDMA)
			assert.Equal(t, uint16(10+8192), msg.CommState.SlotOffsetITDMA)
		})
	}
}
