package ais

// DGNSSDataWord is one 24-bit differential-GNSS correction data word.
type DGNSSDataWord uint32

// DGNSSBroadcast is the decoded type 17 message, spec.md §4.6.
type DGNSSBroadcast struct {
	Position Position

	HasSubmessage bool
	StationMsgType uint8
	StationID      uint16
	ZCount         uint16
	Sequence       uint8
	NWords         uint8
	Health         uint8
	DataWords      []DGNSSDataWord
}

func decodeDGNSSBroadcast(b *BitBuffer) (any, error) {
	const msgType = 17
	if err := requireLength(b, msgType, 80); err != nil {
		return nil, err
	}
	pos, err := decodePosition(b, 40, coordDGNSS)
	if err != nil {
		return nil, err
	}
	result := &DGNSSBroadcast{Position: pos}

	if b.Has(80, 40) {
		stationMsgType, err := b.U(80, 6)
		if err != nil {
			return nil, err
		}
		stationID, err := b.U(86, 10)
		if err != nil {
			return nil, err
		}
		zCount, err := b.U(96, 13)
		if err != nil {
			return nil, err
		}
		seq, err := b.U(109, 3)
		if err != nil {
			return nil, err
		}
		nWords, err := b.U(112, 5)
		if err != nil {
			return nil, err
		}
		health, err := b.U(117, 3)
		if err != nil {
			return nil, err
		}
		result.HasSubmessage = true
		result.StationMsgType = uint8(stationMsgType)
		result.StationID = uint16(stationID)
		result.ZCount = uint16(zCount)
		result.Sequence = uint8(seq)
		result.NWords = uint8(nWords)
		result.Health = uint8(health)

		offset := 120
		for i := 0; i < int(nWords) && b.Has(offset, 24); i++ {
			word, err := b.U(offset, 24)
			if err != nil {
				break
			}
			result.DataWords = append(result.DataWords, DGNSSDataWord(word))
			offset += 24
		}
	}

	return result, nil
}
