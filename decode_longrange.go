package ais

// LongRangePositionReport is the decoded type 27 message, spec.md §4.6.
type LongRangePositionReport struct {
	PositionAccuracy bool
	RAIM             bool
	NavStatus        NavStatus
	Position         Position
	SOG              Validity[uint16]
	COG              Validity[uint16]
	GNSSLatency      bool
}

func decodeLongRangePositionReport(b *BitBuffer) (any, error) {
	const msgType = 27
	if err := requireLength(b, msgType, 96); err != nil {
		return nil, err
	}
	accuracy, err := b.Bool(38)
	if err != nil {
		return nil, err
	}
	raim, err := b.Bool(39)
	if err != nil {
		return nil, err
	}
	navStatus, err := b.U(40, 4)
	if err != nil {
		return nil, err
	}
	pos, err := decodePosition(b, 44, coordLongRange)
	if err != nil {
		return nil, err
	}
	sogRaw, err := b.U(79, 6)
	if err != nil {
		return nil, err
	}
	cogRaw, err := b.U(85, 9)
	if err != nil {
		return nil, err
	}
	latency, err := b.Bool(94)
	if err != nil {
		return nil, err
	}

	var sog Validity[uint16]
	if sogRaw == 63 {
		sog = Unavailable[uint16](int64(sogRaw))
	} else {
		sog = Valid(uint16(sogRaw))
	}
	var cog Validity[uint16]
	if cogRaw == 511 {
		cog = Unavailable[uint16](int64(cogRaw))
	} else {
		cog = Valid(uint16(cogRaw))
	}

	return &LongRangePositionReport{
		PositionAccuracy: accuracy,
		RAIM:             raim,
		NavStatus:        NavStatus(navStatus),
		Position:         pos,
		SOG:              sog,
		COG:              cog,
		GNSSLatency:      latency,
	}, nil
}
