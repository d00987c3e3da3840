package ais

// ChannelManagement is the decoded type 22 message, spec.md §4.6.
type ChannelManagement struct {
	ChannelA      uint16
	ChannelB      uint16
	TxRxMode      uint8
	Power         bool
	Addressed     bool
	DestMMSI1     uint32 // valid only if Addressed
	DestMMSI2     uint32 // valid only if Addressed
	NE            Position // valid only if !Addressed
	SW            Position // valid only if !Addressed
	ChannelABandwidth bool
	ChannelBBandwidth bool
	TransitionalZoneSize uint8
}

func decodeChannelManagement(b *BitBuffer) (any, error) {
	const msgType = 22
	if err := requireLength(b, msgType, 168); err != nil {
		return nil, err
	}
	chA, err := b.U(40, 12)
	if err != nil {
		return nil, err
	}
	chB, err := b.U(52, 12)
	if err != nil {
		return nil, err
	}
	txRx, err := b.U(64, 4)
	if err != nil {
		return nil, err
	}
	power, err := b.Bool(68)
	if err != nil {
		return nil, err
	}
	addressed, err := b.Bool(139)
	if err != nil {
		return nil, err
	}

	result := &ChannelManagement{
		ChannelA:  uint16(chA),
		ChannelB:  uint16(chB),
		TxRxMode:  uint8(txRx),
		Power:     power,
		Addressed: addressed,
	}

	if addressed {
		msb1, err := b.U(69, 18)
		if err != nil {
			return nil, err
		}
		lsb1, err := b.U(87, 17)
		if err != nil {
			return nil, err
		}
		msb2, err := b.U(104, 18)
		if err != nil {
			return nil, err
		}
		lsb2, err := b.U(122, 17)
		if err != nil {
			return nil, err
		}
		result.DestMMSI1 = (msb1 << 12) | (lsb1 << 5)
		result.DestMMSI2 = (msb2 << 12) | (lsb2 << 5)
	} else {
		neLon, err := b.I64(69, 18)
		if err != nil {
			return nil, err
		}
		neLat, err := b.I64(87, 17)
		if err != nil {
			return nil, err
		}
		swLon, err := b.I64(104, 18)
		if err != nil {
			return nil, err
		}
		swLat, err := b.I64(122, 17)
		if err != nil {
			return nil, err
		}
		spec := coordSpecs[coordAreaTenth]
		result.NE = Position{
			Lon: decodeCoordValue(neLon, spec.lonNA, spec.divisor, 180),
			Lat: decodeCoordValue(neLat, spec.latNA, spec.divisor, 90),
		}
		result.SW = Position{
			Lon: decodeCoordValue(swLon, spec.lonNA, spec.divisor, 180),
			Lat: decodeCoordValue(swLat, spec.latNA, spec.divisor, 90),
		}
	}

	chABW, err := b.Bool(140)
	if err != nil {
		return nil, err
	}
	chBBW, err := b.Bool(141)
	if err != nil {
		return nil, err
	}
	transZone, err := b.U(142, 3)
	if err != nil {
		return nil, err
	}
	result.ChannelABandwidth = chABW
	result.ChannelBBandwidth = chBBW
	result.TransitionalZoneSize = uint8(transZone) + 1

	return result, nil
}

// GroupAssignment is the decoded type 23 message, spec.md §4.6.
type GroupAssignment struct {
	NE              Position
	SW              Position
	StationType     uint8
	ShipType        uint8
	TxRxMode        uint8
	ReportingInterval string
	QuietTimeMinutes  uint8 // 0 means "none specified"
}

var type23ReportingIntervals = [12]string{
	"as given by autonomous mode",
	"10 min",
	"6 min",
	"3 min",
	"1 min",
	"30 s",
	"15 s",
	"10 s",
	"5 s",
	"next shorter reporting interval",
	"next longer reporting interval",
	"reserved",
}

func decodeGroupAssignment(b *BitBuffer) (any, error) {
	const msgType = 23
	if err := requireLength(b, msgType, 160); err != nil {
		return nil, err
	}
	neLon, err := b.I64(40, 18)
	if err != nil {
		return nil, err
	}
	neLat, err := b.I64(58, 17)
	if err != nil {
		return nil, err
	}
	swLon, err := b.I64(75, 18)
	if err != nil {
		return nil, err
	}
	swLat, err := b.I64(93, 17)
	if err != nil {
		return nil, err
	}
	stationType, err := b.U(110, 4)
	if err != nil {
		return nil, err
	}
	shipType, err := b.U(114, 8)
	if err != nil {
		return nil, err
	}
	txRx, err := b.U(144, 2)
	if err != nil {
		return nil, err
	}
	interval, err := b.U(146, 4)
	if err != nil {
		return nil, err
	}
	quiet, err := b.U(150, 4)
	if err != nil {
		return nil, err
	}

	spec := coordSpecs[coordAreaTenth]
	intervalText := "reserved"
	if int(interval) < len(type23ReportingIntervals) {
		intervalText = type23ReportingIntervals[interval]
	}

	return &GroupAssignment{
		NE: Position{
			Lon: decodeCoordValue(neLon, spec.lonNA, spec.divisor, 180),
			Lat: decodeCoordValue(neLat, spec.latNA, spec.divisor, 90),
		},
		SW: Position{
			Lon: decodeCoordValue(swLon, spec.lonNA, spec.divisor, 180),
			Lat: decodeCoordValue(swLat, spec.latNA, spec.divisor, 90),
		},
		StationType:       uint8(stationType),
		ShipType:          uint8(shipType),
		TxRxMode:          uint8(txRx),
		ReportingInterval: intervalText,
		QuietTimeMinutes:  uint8(quiet),
	}, nil
}
