package ais

// SARAircraftReport is the decoded type 9 message, spec.md §4.6.
type SARAircraftReport struct {
	Altitude         Validity[uint16]
	SOG              Validity[uint16]
	PositionAccuracy bool
	Position         Position
	COG              Validity[float64]
	Timestamp        TimestampSecond
	AltitudeSensor   bool
	DTE              bool
	Assigned         bool
	RAIM             bool
	CommState        CommState
}

func decodeSARAircraftReport(b *BitBuffer) (any, error) {
	const msgType = 9
	if err := requireLength(b, msgType, 168); err != nil {
		return nil, err
	}
	altRaw, err := b.U(38, 12)
	if err != nil {
		return nil, err
	}
	sogRaw, err := b.U(50, 10)
	if err != nil {
		return nil, err
	}
	accuracy, err := b.Bool(60)
	if err != nil {
		return nil, err
	}
	pos, err := decodePosition(b, 61, coordStandard)
	if err != nil {
		return nil, err
	}
	cog, err := decodeCOG10(b, 116)
	if err != nil {
		return nil, err
	}
	ts, err := decodeTimestampSecond(b, 128)
	if err != nil {
		return nil, err
	}
	altSensor, err := b.Bool(134)
	if err != nil {
		return nil, err
	}
	dte, err := b.Bool(142)
	if err != nil {
		return nil, err
	}
	assigned, err := b.Bool(146)
	if err != nil {
		return nil, err
	}
	raim, err := b.Bool(147)
	if err != nil {
		return nil, err
	}
	itdma, err := b.Bool(148)
	if err != nil {
		return nil, err
	}
	cs, err := decodeCommState(b, 149, itdma)
	if err != nil {
		return nil, err
	}

	var alt Validity[uint16]
	switch {
	case altRaw == 4095:
		alt = Unavailable[uint16](int64(altRaw))
	case altRaw == 4094:
		alt = OutOfRange[uint16](int64(altRaw))
	default:
		alt = Valid(uint16(altRaw))
	}

	var sog Validity[uint16]
	switch {
	case sogRaw == 1023:
		sog = Unavailable[uint16](int64(sogRaw))
	case sogRaw == 1022:
		sog = OutOfRange[uint16](int64(sogRaw))
	default:
		sog = Valid(uint16(sogRaw))
	}

	return &SARAircraftReport{
		Altitude:         alt,
		SOG:              sog,
		PositionAccuracy: accuracy,
		Position:         pos,
		COG:              cog,
		Timestamp:        ts,
		AltitudeSensor:   altSensor,
		DTE:              dte,
		Assigned:         assigned,
		RAIM:             raim,
		CommState:        cs,
	}, nil
}
