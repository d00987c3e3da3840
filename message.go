package ais

import "time"

// MessageType is the ITU-R M.1371-5 message type, 1..27.
type MessageType uint8

// Message is spec.md §3's "Decoded record": a tagged variant over message
// type 1-27. Fields holds the type-specific payload struct (see decode_*.go
// for the concrete types); callers type-switch on it.
type Message struct {
	Type       MessageType
	Repeat     uint8
	MMSI       uint32
	RawChannel string
	DecodedAt  time.Time
	Fields     any
}

// header is the common fields present in every message, extracted once by
// the dispatcher before handing the buffer to a type-specific decoder.
type header struct {
	Type   MessageType
	Repeat uint8
	MMSI   uint32
}

func decodeHeader(b *BitBuffer) (header, error) {
	typ, err := b.U(0, 6)
	if err != nil {
		return header{}, err
	}
	repeat, err := b.U(6, 2)
	if err != nil {
		return header{}, err
	}
	mmsi, err := b.U(8, 30)
	if err != nil {
		return header{}, err
	}
	return header{Type: MessageType(typ), Repeat: uint8(repeat), MMSI: mmsi}, nil
}

// typeDecoder decodes the type-specific portion of a message. It must
// check its own minimum length requirement and return newInsufficientLengthError
// rather than relying on BitBuffer reads to fail first, since a short read
// elsewhere in the layout would otherwise surface as a generic truncation.
type typeDecoder func(b *BitBuffer) (any, error)

var dispatchTable = map[MessageType]typeDecoder{
	1: decodePositionReportClassA(1),
	2: decodePositionReportClassA(2),
	3: decodePositionReportClassA(3),
	4: decodeBaseStationReport(4),
	5: decodeStaticVoyageData,
	6: decodeBinaryAddressed,
	7: decodeAcknowledge(7),
	8: decodeBinaryBroadcast,
	9: decodeSARAircraftReport,
	10: decodeUTCInquiry,
	11: decodeBaseStationReport(11),
	12: decodeSafetyMessage(12),
	13: decodeAcknowledge(13),
	14: decodeSafetyMessage(14),
	15: decodeInterrogation,
	16: decodeAssignmentCommand,
	17: decodeDGNSSBroadcast,
	18: decodeClassBPositionReport,
	19: decodeClassBExtendedReport,
	20: decodeDataLinkManagement,
	21: decodeAtoNReport,
	22: decodeChannelManagement,
	23: decodeGroupAssignment,
	24: decodeStaticDataReport,
	25: decodeBinaryAddressedSingleSlot,
	26: decodeBinaryBroadcastSingleSlot,
	27: decodeLongRangePositionReport,
}

// decodeBody dispatches on the message type and enforces minimum length as
// documented per-type in spec.md §4.6.
func decodeBody(b *BitBuffer, h header) (any, error) {
	dec, ok := dispatchTable[h.Type]
	if !ok {
		return nil, newUnknownTypeError(uint8(h.Type))
	}
	return dec(b)
}

func requireLength(b *BitBuffer, msgType uint8, minBits int) error {
	if b.Len() < minBits {
		return newInsufficientLengthError(msgType, b.Len(), minBits)
	}
	return nil
}
