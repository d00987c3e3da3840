package ais

// UTCInquiry is the decoded type 10 message, spec.md §4.6.
type UTCInquiry struct {
	DestMMSI uint32
}

func decodeUTCInquiry(b *BitBuffer) (any, error) {
	const msgType = 10
	if err := requireLength(b, msgType, 70); err != nil {
		return nil, err
	}
	dest, err := b.U(40, 30)
	if err != nil {
		return nil, err
	}
	return &UTCInquiry{DestMMSI: dest}, nil
}

// specialMessageTexts maps the fixed literal safety-message texts to a tag,
// per spec.md §4.6 types 12/14.
var specialMessageTexts = map[string]string{
	"SART ACTIVE":  "sart-active",
	"SART TEST":    "sart-test",
	"MOB ACTIVE":   "mob-active",
	"MOB TEST":     "mob-test",
	"EPIRB ACTIVE": "epirb-active",
	"EPIRB TEST":   "epirb-test",
}

// SafetyMessage is the decoded type 12/14 message, spec.md §4.6.
type SafetyMessage struct {
	Addressed          bool
	Seq                uint8 // type 12 only
	DestMMSI           uint32
	Retransmit         bool // type 12 only
	Text               string
	TextRaw            string
	SpecialMessageType string // set when Text exactly matches a recognized literal
}

func decodeSafetyMessage(msgType uint8) typeDecoder {
	addressed := msgType == 12
	textStart := 40
	minLen := 40
	if addressed {
		minLen = 72
		textStart = 72
	}
	return func(b *BitBuffer) (any, error) {
		if err := requireLength(b, msgType, minLen); err != nil {
			return nil, err
		}
		msg := &SafetyMessage{Addressed: addressed}
		if addressed {
			seq, err := b.U(38, 2)
			if err != nil {
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
			msg.Seq = uint8(seq)
			msg.DestMMSI = dest
			msg.Retransmit = retransmit
		}
		nChars := (b.Len() - textStart) / 6
		raw, trimmed, err := decodeSixBitText(b, textStart, nChars)
		if err != nil {
			return nil, err
		}
		msg.Text = trimmed
		msg.TextRaw = raw
		if tag, ok := specialMessageTexts[trimmed]; ok {
			msg.SpecialMessageType = tag
		}
		return msg, nil
	}
}

// InterrogationStation is one requested (destination, message-id, offset)
// tuple within a type 15 interrogation.
type InterrogationStation struct {
	DestMMSI uint32
	MsgID1A  uint8
	Offset1A uint16
	HasB     bool
	MsgID1B  uint8
	Offset1B uint16
}

// Interrogation is the decoded type 15 message, spec.md §4.6.
type Interrogation struct {
	First  InterrogationStation
	HasSecond bool
	SecondDestMMSI uint32
	SecondMsgID    uint8
	SecondOffset   uint16
}

func decodeInterrogation(b *BitBuffer) (any, error) {
	const msgType = 15
	if err := requireLength(b, msgType, 88); err != nil {
		return nil, err
	}
	dest1, err := b.U(40, 30)
	if err != nil {
		return nil, err
	}
	msgID1a, err := b.U(70, 6)
	if err != nil {
		return nil, err
	}
	offset1a, err := b.U(76, 12)
	if err != nil {
		return nil, err
	}

	result := &Interrogation{First: InterrogationStation{
		DestMMSI: dest1,
		MsgID1A:  uint8(msgID1a),
		Offset1A: uint16(offset1a),
	}}

	if b.Has(90, 18) {
		msgID1b, err := b.U(90, 6)
		if err == nil {
			offset1b, err2 := b.U(96, 12)
			if err2 == nil {
				result.First.HasB = true
				result.First.MsgID1B = uint8(msgID1b)
				result.First.Offset1B = uint16(offset1b)
			}
		}
	}

	if b.Len() >= 160 {
		dest2, err := b.U(110, 30)
		if err == nil {
			msgID2a, err2 := b.U(140, 6)
			if err2 == nil {
				offset2a, err3 := b.U(146, 12)
				if err3 == nil {
					result.HasSecond = true
					result.SecondDestMMSI = dest2
					result.SecondMsgID = uint8(msgID2a)
					result.SecondOffset = uint16(offset2a)
				}
			}
		}
	}

	return result, nil
}

// AssignedStation is one (destination, offset, increment) assignment within
// a type 16 command.
type AssignedStation struct {
	DestMMSI          uint32
	Offset            uint16
	Increment         uint16
	ReportingIntervalS int // 0 if not applicable (increment-based slot assignment)
}

// AssignmentCommand is the decoded type 16 message, spec.md §4.6.
type AssignmentCommand struct {
	First     AssignedStation
	HasSecond bool
	Second    AssignedStation
}

var type16IncrementTable = [7]uint16{0, 1125, 375, 225, 125, 75, 45}

func decodeAssignmentStation(b *BitBuffer, destOff, offOff, incOff int) AssignedStation {
	dest, _ := b.U(destOff, 30)
	offset, _ := b.U(offOff, 12)
	increment, _ := b.U(incOff, 10)

	st := AssignedStation{DestMMSI: dest, Offset: uint16(offset), Increment: uint16(increment)}
	if increment == 0 {
		reports := offset
		if reports%20 != 0 && reports < 600 {
			reports = ((reports / 20) + 1) * 20
		}
		if reports > 0 {
			st.ReportingIntervalS = int(600 / reports)
		}
	} else if increment >= 1 && increment <= 6 {
		st.Increment = type16IncrementTable[increment]
	}
	return st
}

func decodeAssignmentCommand(b *BitBuffer) (any, error) {
	const msgType = 16
	if err := requireLength(b, msgType, 96); err != nil {
		return nil, err
	}
	result := &AssignmentCommand{First: decodeAssignmentStation(b, 40, 70, 82)}
	if b.Len() >= 144 {
		result.HasSecond = true
		result.Second = decodeAssignmentStation(b, 92, 122, 134)
	}
	return result, nil
}
