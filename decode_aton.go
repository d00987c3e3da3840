package ais

// AtoNReport is the decoded type 21 Aid-to-Navigation message, spec.md §4.6.
type AtoNReport struct {
	AidType          uint8
	Name             string
	NameRaw          string
	NameExtension    string
	PositionAccuracy bool
	Position         Position
	Dimensions       Dimensions
	EPFDType         uint8
	Timestamp        TimestampSecond
	OffPosition      bool
	AtoNStatus       uint8
	RAIM             bool
	Virtual          bool
	Assigned         bool
}

func decodeAtoNReport(b *BitBuffer) (any, error) {
	const msgType = 21
	if err := requireLength(b, msgType, 272); err != nil {
		return nil, err
	}
	aidType, err := b.U(38, 5)
	if err != nil {
		return nil, err
	}
	nameRaw, nameTrim, err := decodeSixBitText(b, 43, 20)
	if err != nil {
		return nil, err
	}
	accuracy, err := b.Bool(163)
	if err != nil {
		return nil, err
	}
	pos, err := decodePosition(b, 164, coordStandard)
	if err != nil {
		return nil, err
	}
	dims, err := decodeDimensions(b, 219)
	if err != nil {
		return nil, err
	}
	epfd, err := b.U(249, 4)
	if err != nil {
		return nil, err
	}
	ts, err := decodeTimestampSecond(b, 253)
	if err != nil {
		return nil, err
	}
	offPos, err := b.Bool(259)
	if err != nil {
		return nil, err
	}
	status, err := b.U(260, 8)
	if err != nil {
		return nil, err
	}
	raim, err := b.Bool(268)
	if err != nil {
		return nil, err
	}
	virtual, err := b.Bool(269)
	if err != nil {
		return nil, err
	}
	assigned, err := b.Bool(270)
	if err != nil {
		return nil, err
	}

	result := &AtoNReport{
		AidType:          uint8(aidType),
		Name:             nameTrim,
		NameRaw:          nameRaw,
		PositionAccuracy: accuracy,
		Position:         pos,
		Dimensions:       dims,
		EPFDType:         uint8(epfd),
		Timestamp:        ts,
		OffPosition:      offPos,
		AtoNStatus:       uint8(status),
		RAIM:             raim,
		Virtual:          virtual,
		Assigned:         assigned,
	}

	if extra := b.Len() - 272; extra > 0 {
		nExtraChars := extra / 6
		if nExtraChars > 0 {
			_, extTrim, err := decodeSixBitText(b, 272, nExtraChars)
			if err == nil {
				result.NameExtension = extTrim
				result.Name = nameTrim + extTrim
			}
		}
	}

	return result, nil
}
