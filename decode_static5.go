package ais

// StaticVoyageData is the decoded type 5 message, spec.md §4.6.
type StaticVoyageData struct {
	AISVersion  uint8
	IMONumber   uint32
	CallSign    string
	CallSignRaw string
	VesselName  string
	VesselNameRaw string
	ShipType    uint8
	Dimensions  Dimensions
	EPFDType    uint8
	ETAMonth    uint8
	ETADay      uint8
	ETAHour     uint8
	ETAMinute   uint8
	Draught     Validity[float64]
	Destination string
	DestinationRaw string
	DTE         bool
}

func decodeStaticVoyageData(b *BitBuffer) (any, error) {
	const msgType = 5
	if err := requireLength(b, msgType, 424); err != nil {
		return nil, err
	}
	version, err := b.U(38, 2)
	if err != nil {
		return nil, err
	}
	imo, err := b.U(40, 30)
	if err != nil {
		return nil, err
	}
	callRaw, callTrim, err := decodeSixBitText(b, 70, 7)
	if err != nil {
		return nil, err
	}
	nameRaw, nameTrim, err := decodeSixBitText(b, 112, 20)
	if err != nil {
		return nil, err
	}
	shipType, err := b.U(232, 8)
	if err != nil {
		return nil, err
	}
	dims, err := decodeDimensions(b, 240)
	if err != nil {
		return nil, err
	}
	epfd, err := b.U(270, 4)
	if err != nil {
		return nil, err
	}
	etaMonth, err := b.U(274, 4)
	if err != nil {
		return nil, err
	}
	etaDay, err := b.U(278, 5)
	if err != nil {
		return nil, err
	}
	etaHour, err := b.U(283, 5)
	if err != nil {
		return nil, err
	}
	etaMinute, err := b.U(288, 6)
	if err != nil {
		return nil, err
	}
	draught, err := decodeDraught(b, 294)
	if err != nil {
		return nil, err
	}
	destRaw, destTrim, err := decodeSixBitText(b, 302, 20)
	if err != nil {
		return nil, err
	}
	dte, err := b.Bool(422)
	if err != nil {
		return nil, err
	}

	return &StaticVoyageData{
		AISVersion:     uint8(version),
		IMONumber:      imo,
		CallSign:       callTrim,
		CallSignRaw:    callRaw,
		VesselName:     nameTrim,
		VesselNameRaw:  nameRaw,
		ShipType:       uint8(shipType),
		Dimensions:     dims,
		EPFDType:       uint8(epfd),
		ETAMonth:       uint8(etaMonth),
		ETADay:         uint8(etaDay),
		ETAHour:        uint8(etaHour),
		ETAMinute:      uint8(etaMinute),
		Draught:        draught,
		Destination:    destTrim,
		DestinationRaw: destRaw,
		DTE:            dte,
	}, nil
}
