package ais

// ClassBPositionReport is the decoded type 18 message, spec.md §4.6.
type ClassBPositionReport struct {
	SOG              Validity[float64]
	PositionAccuracy bool
	Position         Position
	COG              Validity[float64]
	TrueHeading      Validity[uint16]
	Timestamp        TimestampSecond
	UnitFlag         bool // CS unit: 0 = SOTDMA, 1 = CS (carrier-sense)
	DisplayFlag      bool
	DSCFlag          bool
	BandFlag         bool
	Msg22Flag        bool
	ModeFlag         bool
	RAIM             bool
	CommState        CommState
}

func decodeClassBPositionReport(b *BitBuffer) (any, error) {
	const msgType = 18
	if err := requireLength(b, msgType, 168); err != nil {
		return nil, err
	}
	sog, err := decodeSOG10(b, 46)
	if err != nil {
		return nil, err
	}
	accuracy, err := b.Bool(56)
	if err != nil {
		return nil, err
	}
	pos, err := decodePosition(b, 57, coordStandard)
	if err != nil {
		return nil, err
	}
	cog, err := decodeCOG10(b, 112)
	if err != nil {
		return nil, err
	}
	heading, err := decodeTrueHeading(b, 124)
	if err != nil {
		return nil, err
	}
	ts, err := decodeTimestampSecond(b, 133)
	if err != nil {
		return nil, err
	}
	unit, err := b.Bool(141)
	if err != nil {
		return nil, err
	}
	display, err := b.Bool(142)
	if err != nil {
		return nil, err
	}
	dsc, err := b.Bool(143)
	if err != nil {
		return nil, err
	}
	band, err := b.Bool(144)
	if err != nil {
		return nil, err
	}
	msg22, err := b.Bool(145)
	if err != nil {
		return nil, err
	}
	mode, err := b.Bool(146)
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

	return &ClassBPositionReport{
		SOG:              sog,
		PositionAccuracy: accuracy,
		Position:         pos,
		COG:              cog,
		TrueHeading:      heading,
		Timestamp:        ts,
		UnitFlag:         unit,
		DisplayFlag:      display,
		DSCFlag:          dsc,
		BandFlag:         band,
		Msg22Flag:        msg22,
		ModeFlag:         mode,
		RAIM:             raim,
		CommState:        cs,
	}, nil
}

// ClassBExtendedReport is the decoded type 19 message, spec.md §4.6.
type ClassBExtendedReport struct {
	SOG              Validity[float64]
	PositionAccuracy bool
	Position         Position
	COG              Validity[float64]
	TrueHeading      Validity[uint16]
	Timestamp        TimestampSecond
	VesselName       string
	VesselNameRaw    string
	ShipType         uint8
	Dimensions       Dimensions
	EPFDType         uint8
	RAIM             bool
	DTE              bool
	Assigned         bool
}

func decodeClassBExtendedReport(b *BitBuffer) (any, error) {
	const msgType = 19
	if err := requireLength(b, msgType, 312); err != nil {
		return nil, err
	}
	sog, err := decodeSOG10(b, 46)
	if err != nil {
		return nil, err
	}
	accuracy, err := b.Bool(56)
	if err != nil {
		return nil, err
	}
	pos, err := decodePosition(b, 57, coordStandard)
	if err != nil {
		return nil, err
	}
	cog, err := decodeCOG10(b, 112)
	if err != nil {
		return nil, err
	}
	heading, err := decodeTrueHeading(b, 124)
	if err != nil {
		return nil, err
	}
	ts, err := decodeTimestampSecond(b, 133)
	if err != nil {
		return nil, err
	}
	nameRaw, nameTrim, err := decodeSixBitText(b, 143, 20)
	if err != nil {
		return nil, err
	}
	shipType, err := b.U(263, 8)
	if err != nil {
		return nil, err
	}
	dims, err := decodeDimensions(b, 271)
	if err != nil {
		return nil, err
	}
	epfd, err := b.U(301, 4)
	if err != nil {
		return nil, err
	}
	raim, err := b.Bool(305)
	if err != nil {
		return nil, err
	}
	dte, err := b.Bool(306)
	if err != nil {
		return nil, err
	}
	assigned, err := b.Bool(307)
	if err != nil {
		return nil, err
	}

	return &ClassBExtendedReport{
		SOG:              sog,
		PositionAccuracy: accuracy,
		Position:         pos,
		COG:              cog,
		TrueHeading:      heading,
		Timestamp:        ts,
		VesselName:       nameTrim,
		VesselNameRaw:    nameRaw,
		ShipType:         uint8(shipType),
		Dimensions:       dims,
		EPFDType:         uint8(epfd),
		RAIM:             raim,
		DTE:              dte,
		Assigned:         assigned,
	}, nil
}
