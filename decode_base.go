package ais

import "fmt"

// BaseStationReport is the decoded type 4/11 message, spec.md §4.6.
type BaseStationReport struct {
	UTCYear    Validity[uint16]
	UTCMonth   uint8
	UTCDay     uint8
	UTCHour    uint8
	UTCMinute  uint8
	UTCSecond  uint8
	UTCDateTime string // RFC3339-ish, only set if all six components are valid

	PositionAccuracy bool
	Position         Position
	EPFDType         uint8
	LongRangeControl bool
	RAIM             bool
	CommState        CommState
}

func decodeBaseStationReport(msgType uint8) typeDecoder {
	return func(b *BitBuffer) (any, error) {
		if err := requireLength(b, msgType, 168); err != nil {
			return nil, err
		}
		year, err := b.U(38, 14)
		if err != nil {
			return nil, err
		}
		month, err := b.U(52, 4)
		if err != nil {
			return nil, err
		}
		day, err := b.U(56, 5)
		if err != nil {
			return nil, err
		}
		hour, err := b.U(61, 5)
		if err != nil {
			return nil, err
		}
		minute, err := b.U(66, 6)
		if err != nil {
			return nil, err
		}
		second, err := b.U(72, 6)
		if err != nil {
			return nil, err
		}
		accuracy, err := b.Bool(78)
		if err != nil {
			return nil, err
		}
		pos, err := decodePosition(b, 79, coordStandard)
		if err != nil {
			return nil, err
		}
		epfd, err := b.U(134, 4)
		if err != nil {
			return nil, err
		}
		lrc, err := b.Bool(138)
		if err != nil {
			return nil, err
		}
		raim, err := b.Bool(148)
		if err != nil {
			return nil, err
		}
		cs, err := decodeCommState(b, 149, false)
		if err != nil {
			return nil, err
		}

		r := &BaseStationReport{
			UTCMonth:         uint8(month),
			UTCDay:           uint8(day),
			UTCHour:          uint8(hour),
			UTCMinute:        uint8(minute),
			UTCSecond:        uint8(second),
			PositionAccuracy: accuracy,
			Position:         pos,
			EPFDType:         uint8(epfd),
			LongRangeControl: lrc,
			RAIM:             raim,
			CommState:        cs,
		}
		if year == 0 {
			r.UTCYear = Unavailable[uint16](int64(year))
		} else {
			r.UTCYear = Valid(uint16(year))
		}

		if r.UTCYear.IsValid() && month >= 1 && month <= 12 && day >= 1 && day <= 31 &&
			hour <= 23 && minute <= 59 && second <= 59 {
			r.UTCDateTime = fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02dZ", year, month, day, hour, minute, second)
		}
		return r, nil
	}
}
