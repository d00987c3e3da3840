package ais

// ApplicationID is the DAC (Designated Area Code) + FI (Function
// Identifier) pair selecting an application-specific binary payload format,
// per spec.md §4.6 and the GLOSSARY.
type ApplicationID struct {
	DAC uint16
	FI  uint8
}

// BinaryApplicationData is the decoded form of a DAC=1 international
// function identifier payload, per spec.md §4.6. Kind selects which fields
// are populated; an unrecognized DAC/FI instead yields OpaqueBinaryData on
// the enclosing message and leaves this nil.
type BinaryApplicationData struct {
	Kind string // "text-telegram" | "interrogation" | "capability-interrogation" | "capability-response" | "application-ack"

	// Kind == "text-telegram" (FI 0)
	TextAck      bool
	TextSequence uint16
	Text         string
	TextRaw      string

	// Kind == "interrogation" (FI 2)
	RequestedDAC uint16
	RequestedFI  uint8

	// Kind == "capability-response" (FI 4): 64 entries, each the raw 2-bit code.
	Capabilities [64]uint8

	// Kind == "application-ack" (FI 5)
	AckDAC uint16
	AckFI  uint8
}

// BinaryMessage is the decoded type 6/8/25/26 message, spec.md §4.6.
type BinaryMessage struct {
	Addressed     bool
	DestMMSI      uint32 // valid only if Addressed
	Retransmit    bool   // type 6 only; zero value for 8/25/26
	AppID         ApplicationID
	HasAppID      bool // false for 25/26 when the binary-data flag is unset
	Application   *BinaryApplicationData
	OpaqueBinaryData []byte // raw bits packed MSB-first, 1 byte per 8 bits, used when AppID is absent or unrecognized
	OpaqueBitLength  int
	CommState     *CommState // type 26 only
}

func decodeBinaryAddressed(b *BitBuffer) (any, error) {
	const msgType = 6
	if err := requireLength(b, msgType, 88); err != nil {
		return nil, err
	}
	dest, err := b.U(40, 30)
	if err != nil {
		return nil, err
	}
	retransmit, err := b.Bool(70)
	if err != nil {
		return nil, err
	}
	dac, err := b.U(72, 10)
	if err != nil {
		return nil, err
	}
	fi, err := b.U(82, 6)
	if err != nil {
		return nil, err
	}
	appID := ApplicationID{DAC: uint16(dac), FI: uint8(fi)}

	msg := &BinaryMessage{
		Addressed:  true,
		DestMMSI:   dest,
		Retransmit: retransmit,
		AppID:      appID,
		HasAppID:   true,
	}
	fillOpaqueOrApplication(b, 88, b.Len(), appID, msg)
	return msg, nil
}

func decodeBinaryBroadcast(b *BitBuffer) (any, error) {
	const msgType = 8
	if err := requireLength(b, msgType, 56); err != nil {
		return nil, err
	}
	dac, err := b.U(40, 10)
	if err != nil {
		return nil, err
	}
	fi, err := b.U(50, 6)
	if err != nil {
		return nil, err
	}
	appID := ApplicationID{DAC: uint16(dac), FI: uint8(fi)}

	msg := &BinaryMessage{AppID: appID, HasAppID: true}
	fillOpaqueOrApplication(b, 56, b.Len(), appID, msg)
	return msg, nil
}

func decodeBinaryAddressedSingleSlot(b *BitBuffer) (any, error) {
	const msgType = 25
	if err := requireLength(b, msgType, 40); err != nil {
		return nil, err
	}
	return decodeType25or26(b, msgType, false)
}

func decodeBinaryBroadcastSingleSlot(b *BitBuffer) (any, error) {
	const msgType = 26
	if err := requireLength(b, msgType, 60); err != nil {
		return nil, err
	}
	return decodeType25or26(b, msgType, true)
}

func decodeType25or26(b *BitBuffer, msgType uint8, hasCommState bool) (any, error) {
	addressed, err := b.Bool(38)
	if err != nil {
		return nil, err
	}
	hasAppID, err := b.Bool(39)
	if err != nil {
		return nil, err
	}

	msg := &BinaryMessage{Addressed: addressed}

	binaryEnd := b.Len()
	if hasCommState {
		binaryEnd -= 20
		if binaryEnd < 40 {
			binaryEnd = 40
		}
	}

	cursor := 40
	if addressed {
		dest, err := b.U(40, 30)
		if err != nil {
			return nil, err
		}
		msg.DestMMSI = dest
		cursor = 70
	}

	var appID ApplicationID
	if hasAppID {
		if !b.Has(cursor, 16) {
			return nil, ErrTruncated
		}
		dac, err := b.U(cursor, 10)
		if err != nil {
			return nil, err
		}
		fi, err := b.U(cursor+10, 6)
		if err != nil {
			return nil, err
		}
		appID = ApplicationID{DAC: uint16(dac), FI: uint8(fi)}
		msg.AppID = appID
		msg.HasAppID = true
		cursor += 16
	}

	fillOpaqueOrApplication(b, cursor, binaryEnd, appID, msg)

	if hasCommState && b.Has(binaryEnd, 20) {
		itdma, err := b.Bool(binaryEnd)
		if err != nil {
			return nil, err
		}
		cs, err := decodeCommState(b, binaryEnd+1, itdma)
		if err != nil {
			return nil, err
		}
		msg.CommState = &cs
	}

	return msg, nil
}

// fillOpaqueOrApplication decodes [from, to) of binary payload. If appID
// names DAC=1 and a recognized FI, it populates msg.Application; otherwise
// it packs the raw bits into msg.OpaqueBinaryData.
func fillOpaqueOrApplication(b *BitBuffer, from, to int, appID ApplicationID, msg *BinaryMessage) {
	if to < from {
		to = from
	}
	if msg.HasAppID && appID.DAC == 1 {
		if app, ok := decodeDAC1(b, from, to, appID.FI); ok {
			msg.Application = app
			return
		}
	}
	msg.OpaqueBinaryData, msg.OpaqueBitLength = packOpaqueBits(b, from, to)
}

func packOpaqueBits(b *BitBuffer, from, to int) ([]byte, int) {
	n := to - from
	if n <= 0 {
		return nil, 0
	}
	out := make([]byte, (n+7)/8)
	for i := 0; i < n; i++ {
		bit, err := b.U(from+i, 1)
		if err != nil {
			break
		}
		if bit != 0 {
			out[i/8] |= 1 << uint(7-(i%8))
		}
	}
	return out, n
}

// decodeDAC1 decodes the standardized DAC=1 international function
// identifiers enumerated in spec.md §4.6.
func decodeDAC1(b *BitBuffer, from, to int, fi uint8) (*BinaryApplicationData, bool) {
	switch fi {
	case 0: // text telegram
		if to-from < 12 {
			return nil, false
		}
		ack, err := b.Bool(from)
		if err != nil {
			return nil, false
		}
		seq, err := b.U(from+1, 11)
		if err != nil {
			return nil, false
		}
		nChars := (to - (from + 12)) / 6
		raw, trimmed, err := decodeSixBitText(b, from+12, nChars)
		if err != nil {
			return nil, false
		}
		return &BinaryApplicationData{
			Kind:         "text-telegram",
			TextAck:      ack,
			TextSequence: uint16(seq),
			Text:         trimmed,
			TextRaw:      raw,
		}, true

	case 2: // interrogation for specific FM
		if to-from < 16 {
			return nil, false
		}
		dac, err := b.U(from, 10)
		if err != nil {
			return nil, false
		}
		reqFI, err := b.U(from+10, 6)
		if err != nil {
			return nil, false
		}
		return &BinaryApplicationData{Kind: "interrogation", RequestedDAC: uint16(dac), RequestedFI: uint8(reqFI)}, true

	case 3: // capability interrogation
		return &BinaryApplicationData{Kind: "capability-interrogation"}, true

	case 4: // capability response
		if to-from < 128 {
			return nil, false
		}
		var caps [64]uint8
		for i := 0; i < 64; i++ {
			v, err := b.U(from+i*2, 2)
			if err != nil {
				return nil, false
			}
			caps[i] = uint8(v)
		}
		return &BinaryApplicationData{Kind: "capability-response", Capabilities: caps}, true

	case 5: // application acknowledgement
		if to-from < 16 {
			return nil, false
		}
		dac, err := b.U(from, 10)
		if err != nil {
			return nil, false
		}
		ackFI, err := b.U(from+10, 6)
		if err != nil {
			return nil, false
		}
		return &BinaryApplicationData{Kind: "application-ack", AckDAC: uint16(dac), AckFI: uint8(ackFI)}, true

	default:
		return nil, false
	}
}
