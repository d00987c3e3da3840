package ais

// AckEntry is one (destination MMSI, sequence) pair in a type 7/13
// acknowledge message.
type AckEntry struct {
	DestMMSI uint32
	Sequence uint8
}

// Acknowledge is the decoded type 7/13 message, spec.md §4.6: up to four
// destination/sequence pairs, as many as fit within the sentence length.
type Acknowledge struct {
	Entries []AckEntry
}

func decodeAcknowledge(msgType uint8) typeDecoder {
	return func(b *BitBuffer) (any, error) {
		if err := requireLength(b, msgType, 72); err != nil {
			return nil, err
		}
		var entries []AckEntry
		offset := 40
		for i := 0; i < 4; i++ {
			if !b.Has(offset, 32) {
				break
			}
			dest, err := b.U(offset, 30)
			if err != nil {
				break
			}
			seq, err := b.U(offset+30, 2)
			if err != nil {
				break
			}
			entries = append(entries, AckEntry{DestMMSI: dest, Sequence: uint8(seq)})
			offset += 32
		}
		return &Acknowledge{Entries: entries}, nil
	}
}
