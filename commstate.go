package ais

// SyncState is the 2-bit synchronization state shared by SOTDMA and ITDMA
// communication-state sub-formats.
type SyncState uint8

const (
	SyncUTCDirect SyncState = iota
	SyncUTCIndirect
	SyncBaseStation
	SyncOtherStation
)

func (s SyncState) String() string {
	switch s {
	case SyncUTCDirect:
		return "utc-direct"
	case SyncUTCIndirect:
		return "utc-indirect"
	case SyncBaseStation:
		return "base-station"
	default:
		return "other-station"
	}
}

// CommState is the decoded 19-bit SOTDMA/ITDMA communication-state
// substructure, per spec.md §4.4.
type CommState struct {
	Sync SyncState
	ITDMA bool

	// SOTDMA fields (ITDMA == false)
	SlotTimeout    uint8
	SubMessageKind string // "received-stations", "slot-number", "utc", "slot-offset"
	ReceivedStations uint16
	SlotNumber       uint16
	UTCHour          uint8
	UTCMinute        uint8
	SlotOffset       uint16

	// ITDMA fields (ITDMA == true)
	SlotIncrement     uint16
	NumSlots          uint8 // translated per ITU Table 20: code+1 for 0-4, (code-4)+1 for 5-7
	KeepFlag          bool
	HasSlotOffsetITDMA bool
	SlotOffsetITDMA    uint16 // set only when HasSlotOffsetITDMA; SlotIncrement+8192, per ais_decoder.py
}

// decodeCommState decodes 19 bits starting at offset as either SOTDMA or
// ITDMA, selected by itdma.
func decodeCommState(b *BitBuffer, offset int, itdma bool) (CommState, error) {
	syncRaw, err := b.U(offset, 2)
	if err != nil {
		return CommState{}, err
	}
	cs := CommState{Sync: SyncState(syncRaw), ITDMA: itdma}

	if !itdma {
		timeout, err := b.U(offset+2, 3)
		if err != nil {
			return CommState{}, err
		}
		sub, err := b.U(offset+5, 14)
		if err != nil {
			return CommState{}, err
		}
		cs.SlotTimeout = uint8(timeout)
		switch timeout {
		case 3, 5, 7:
			cs.SubMessageKind = "received-stations"
			cs.ReceivedStations = uint16(sub)
		case 2, 4, 6:
			cs.SubMessageKind = "slot-number"
			cs.SlotNumber = uint16(sub)
		case 1:
			cs.SubMessageKind = "utc"
			cs.UTCHour = uint8((sub >> 9) & 0x1F)
			cs.UTCMinute = uint8((sub >> 2) & 0x7F)
		default: // 0
			cs.SubMessageKind = "slot-offset"
			cs.SlotOffset = uint16(sub)
		}
		return cs, nil
	}

	slotIncrement, err := b.U(offset+2, 13)
	if err != nil {
		return CommState{}, err
	}
	numSlotsCode, err := b.U(offset+15, 3)
	if err != nil {
		return CommState{}, err
	}
	keep, err := b.Bool(offset + 18)
	if err != nil {
		return CommState{}, err
	}

	cs.SlotIncrement = uint16(slotIncrement)
	cs.KeepFlag = keep
	if numSlotsCode >= 5 {
		cs.NumSlots = uint8((numSlotsCode - 4) + 1)
		cs.HasSlotOffsetITDMA = true
		cs.SlotOffsetITDMA = uint16(slotIncrement) + 8192
	} else {
		cs.NumSlots = uint8(numSlotsCode) + 1
	}
	return cs, nil
}
