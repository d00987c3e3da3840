package ais

// StaticDataReport is the decoded type 24 message, spec.md §4.6. Exactly
// one of PartA/PartB is populated, selected by the 2-bit part number.
type StaticDataReport struct {
	PartNumber uint8

	// Part A
	VesselName    string
	VesselNameRaw string

	// Part B
	ShipType   uint8
	VendorID   string
	VendorIDRaw string
	CallSign   string
	CallSignRaw string
	Dimensions Dimensions
	EPFDType   uint8
}

func decodeStaticDataReport(b *BitBuffer) (any, error) {
	const msgType = 24
	if err := requireLength(b, msgType, 40); err != nil {
		return nil, err
	}
	part, err := b.U(38, 2)
	if err != nil {
		return nil, err
	}
	result := &StaticDataReport{PartNumber: uint8(part)}

	switch part {
	case 0: // Part A
		if err := requireLength(b, msgType, 160); err != nil {
			return nil, err
		}
		raw, trimmed, err := decodeSixBitText(b, 40, 20)
		if err != nil {
			return nil, err
		}
		result.VesselName = trimmed
		result.VesselNameRaw = raw
	case 1: // Part B
		if err := requireLength(b, msgType, 166); err != nil {
			return nil, err
		}
		shipType, err := b.U(40, 8)
		if err != nil {
			return nil, err
		}
		vendorRaw, vendorTrim, err := decodeSixBitText(b, 48, 7)
		if err != nil {
			return nil, err
		}
		callRaw, callTrim, err := decodeSixBitText(b, 90, 7)
		if err != nil {
			return nil, err
		}
		dims, err := decodeDimensions(b, 132)
		if err != nil {
			return nil, err
		}
		epfd, err := b.U(162, 4)
		if err != nil {
			return nil, err
		}
		result.ShipType = uint8(shipType)
		result.VendorID = vendorTrim
		result.VendorIDRaw = vendorRaw
		result.CallSign = callTrim
		result.CallSignRaw = callRaw
		result.Dimensions = dims
		result.EPFDType = uint8(epfd)
	}

	return result, nil
}
