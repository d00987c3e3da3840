package ais

// ReservationBlock is one 30-bit slot reservation within a type 20 message.
type ReservationBlock struct {
	OffsetNumber uint16
	Slots        uint8
	Timeout      uint8
	Increment    uint16
}

// DataLinkManagement is the decoded type 20 message, spec.md §4.6.
type DataLinkManagement struct {
	Blocks []ReservationBlock
}

func decodeDataLinkManagement(b *BitBuffer) (any, error) {
	const msgType = 20
	if err := requireLength(b, msgType, 70); err != nil {
		return nil, err
	}
	var blocks []ReservationBlock
	offset := 40
	for i := 0; i < 4; i++ {
		if !b.Has(offset, 30) {
			break
		}
		offsetNumber, err := b.U(offset, 12)
		if err != nil {
			break
		}
		slots, err := b.U(offset+12, 4)
		if err != nil {
			break
		}
		timeout, err := b.U(offset+16, 3)
		if err != nil {
			break
		}
		increment, err := b.U(offset+19, 11)
		if err != nil {
			break
		}
		if i > 0 && offsetNumber == 0 && slots == 0 && timeout == 0 && increment == 0 {
			break
		}
		blocks = append(blocks, ReservationBlock{
			OffsetNumber: uint16(offsetNumber),
			Slots:        uint8(slots),
			Timeout:      uint8(timeout),
			Increment:    uint16(increment),
		})
		offset += 30
	}
	return &DataLinkManagement{Blocks: blocks}, nil
}
