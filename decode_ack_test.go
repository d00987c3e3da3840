package ais

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAcknowledge_MultipleEntries(t *testing.T) {
	bits := bitString(72+32, map[int]string{
		40: u32Bits(1, 30) + u32Bits(0, 2),
		72: u32Bits(2, 30) + u32Bits(3, 2),
	})
	b := newBitBuffer(bitsFromString(bits))
	decode := decodeAcknowledge(7)
	got, err := decode(b)
	require.NoError(t, err)
	msg := got.(*Acknowledge)
	require.Len(t, msg.Entries, 2)
	assert.Equal(t, AckEntry{DestMMSI: 1, Sequence: 0}, msg.Entries[0])
	assert.Equal(t, AckEntry{DestMMSI: 2, Sequence: 3}, msg.Entries[1])
}

func TestDecodeAcknowledge_StopsWhenNoMoreEntriesFit(t *testing.T) {
	bits := bitString(72, map[int]string{
		40: u32Bits(9, 30) + u32Bits(1, 2),
	})
	b := newBitBuffer(bitsFromString(bits))
	decode := decodeAcknowledge(13)
	got, err := decode(b)
	require.NoError(t, err)
	msg := got.(*Acknowledge)
	require.Len(t, msg.Entries, 1)
	assert.Equal(t, uint32(9), msg.Entries[0].DestMMSI)
}
