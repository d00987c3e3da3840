package ais

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeCommState_SOTDMA(t *testing.T) {
	var testCases = []struct {
		name              string
		givenTimeout      uint32
		givenSub          uint32
		expectKind        string
		expectReceived    uint16
		expectSlotNumber  uint16
		expectUTCHour     uint8
		expectUTCMinute   uint8
		expectSlotOffset  uint16
	}{
		{name: "timeout 3 carries received-stations count", givenTimeout: 3, givenSub: 5, expectKind: "received-stations", expectReceived: 5},
		{name: "timeout 2 carries slot number", givenTimeout: 2, givenSub: 7, expectKind: "slot-number", expectSlotNumber: 7},
		{name: "timeout 1 carries UTC hour/minute", givenTimeout: 1, givenSub: (10 << 9) | (20 << 2), expectKind: "utc", expectUTCHour: 10, expectUTCMinute: 20},
		{name: "timeout 0 carries slot offset", givenTimeout: 0, givenSub: 42, expectKind: "slot-offset", expectSlotOffset: 42},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bits := u32Bits(1, 2) + u32Bits(tc.givenTimeout, 3) + u32Bits(tc.givenSub, 14)
			b := newBitBuffer(bitsFromString(bits))
			cs, err := decodeCommState(b, 0, false)
			assert.NoError(t, err)
			assert.False(t, cs.ITDMA)
			assert.Equal(t, SyncUTCIndirect, cs.Sync)
			assert.Equal(t, tc.expectKind, cs.SubMessageKind)
			assert.Equal(t, tc.expectReceived, cs.ReceivedStations)
			assert.Equal(t, tc.expectSlotNumber, cs.SlotNumber)
			assert.Equal(t, tc.expectUTCHour, cs.UTCHour)
			assert.Equal(t, tc.expectUTCMinute, cs.UTCMinute)
			assert.Equal(t, tc.expectSlotOffset, cs.SlotOffset)
		})
	}
}

func TestDecodeCommState_ITDMA_NumSlots(t *testing.T) {
	var testCases = []struct {
		name               string
		givenCode          uint32
		expectNumSlots     uint8
		expectHasOffset    bool
	}{
		{name: "code 0 means 1 slot", givenCode: 0, expectNumSlots: 1},
		{name: "code 4 means 5 slots", givenCode: 4, expectNumSlots: 5},
		{name: "code 5 means 2 slots plus a slot offset", givenCode: 5, expectNumSlots: 2, expectHasOffset: true},
		{name: "code 7 means 4 slots plus a slot offset", givenCode: 7, expectNumSlots: 4, expectHasOffset: true},
	}
	const slotIncrement = 100
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bits := u32Bits(0, 2) + u32Bits(slotIncrement, 13) + u32Bits(tc.givenCode, 3) + "1"
			b := newBitBuffer(bitsFromString(bits))
			cs, err := decodeCommState(b, 0, true)
			assert.NoError(t, err)
			assert.True(t, cs.ITDMA)
			assert.True(t, cs.KeepFlag)
			assert.Equal(t, uint16(slotIncrement), cs.SlotIncrement)
			assert.Equal(t, tc.expectNumSlots, cs.NumSlots)
			assert.Equal(t, tc.expectHasOffset, cs.HasSlotOffsetITDMA)
			if tc.expectHasOffset {
				assert.Equal(t, uint16(slotIncrement+8192), cs.SlotOffsetITDMA)
			}
		})
	}
}
