package ais

// TimestampSecond is the decoded meaning of a 6-bit UTC-second field, per
// spec.md §4.4: 0-59 are a literal second value; 60-63 are special markers.
type TimestampSecond struct {
	Second  Validity[uint8]
	Special string // "", "unavailable", "manual", "dead-reckoning", "positioning-inoperative"
}

func decodeTimestampSecond(b *BitBuffer, offset int) (TimestampSecond, error) {
	v, err := b.U(offset, 6)
	if err != nil {
		return TimestampSecond{}, err
	}
	switch {
	case v <= 59:
		return TimestampSecond{Second: Valid(uint8(v))}, nil
	case v == 60:
		return TimestampSecond{Second: Unavailable[uint8](int64(v)), Special: "unavailable"}, nil
	case v == 61:
		return TimestampSecond{Second: Unavailable[uint8](int64(v)), Special: "manual"}, nil
	case v == 62:
		return TimestampSecond{Second: Unavailable[uint8](int64(v)), Special: "dead-reckoning"}, nil
	default: // 63
		return TimestampSecond{Second: Unavailable[uint8](int64(v)), Special: "positioning-inoperative"}, nil
	}
}

// RateOfTurn is the decoded meaning of the signed 8-bit ROT field, per
// spec.md §4.4.
type RateOfTurn struct {
	DegPerMin     Validity[float64]
	Steady        bool
	TurningHard   bool // raw magnitude 127: turning > 5 deg/30s, direction only
	TurningRight  bool
}

func decodeRateOfTurn(b *BitBuffer, offset int) (RateOfTurn, error) {
	raw, err := b.I(offset, 8)
	if err != nil {
		return RateOfTurn{}, err
	}
	if raw == -128 {
		return RateOfTurn{DegPerMin: Unavailable[float64](int64(raw))}, nil
	}
	if raw == 0 {
		return RateOfTurn{DegPerMin: Valid(0.0), Steady: true}, nil
	}
	sign := 1.0
	mag := float64(raw)
	if raw < 0 {
		sign = -1.0
		mag = -mag
	}
	degPerMin := sign * (mag / 4.733) * (mag / 4.733)
	result := RateOfTurn{
		DegPerMin:    Valid(degPerMin),
		TurningRight: raw > 0,
	}
	if raw == 127 || raw == -127 {
		result.TurningHard = true
	}
	return result, nil
}

// Dimensions is the decoded 30-bit dimensions+reference-point field, per
// spec.md §4.4.
type Dimensions struct {
	Unknown               bool // all four sub-fields zero
	ReferencePointUnknown bool // A=0,C=0,B>0,D>0
	LengthM               uint16
	WidthM                 uint16
	ToBow, ToStern         uint16 // A, B
	ToPort, ToStarboard    uint16 // C, D
}

func decodeDimensions(b *BitBuffer, offset int) (Dimensions, error) {
	a, err := b.U(offset, 9)
	if err != nil {
		return Dimensions{}, err
	}
	bb, err := b.U(offset+9, 9)
	if err != nil {
		return Dimensions{}, err
	}
	c, err := b.U(offset+18, 6)
	if err != nil {
		return Dimensions{}, err
	}
	d, err := b.U(offset+24, 6)
	if err != nil {
		return Dimensions{}, err
	}

	if a == 0 && bb == 0 && c == 0 && d == 0 {
		return Dimensions{Unknown: true}, nil
	}
	dims := Dimensions{
		ToBow:       uint16(a),
		ToStern:     uint16(bb),
		ToPort:      uint16(c),
		ToStarboard: uint16(d),
		LengthM:     uint16(a + bb),
		WidthM:      uint16(c + d),
	}
	if a == 0 && c == 0 && bb > 0 && d > 0 {
		dims.ReferencePointUnknown = true
	}
	return dims, nil
}

// decodeSOG decodes a 10-bit speed-over-ground field in 0.1 kn units, used
// by types 1/2/3 and 18/19: 1023 => unavailable, 1022 => out-of-range floor
// ("at least 102.2 kn"), else value*0.1.
func decodeSOG10(b *BitBuffer, offset int) (Validity[float64], error) {
	v, err := b.U(offset, 10)
	if err != nil {
		return Validity[float64]{}, err
	}
	switch {
	case v == 1023:
		return Unavailable[float64](int64(v)), nil
	case v == 1022:
		return OutOfRange[float64](int64(v)), nil
	default:
		return Valid(float64(v) * 0.1), nil
	}
}

// decodeCOG10 decodes a 12-bit course-over-ground field in 0.1 deg units:
// 3600 => unavailable, >3600 => out-of-range, else value*0.1.
func decodeCOG10(b *BitBuffer, offset int) (Validity[float64], error) {
	v, err := b.U(offset, 12)
	if err != nil {
		return Validity[float64]{}, err
	}
	switch {
	case v == 3600:
		return Unavailable[float64](int64(v)), nil
	case v > 3600:
		return OutOfRange[float64](int64(v)), nil
	default:
		return Valid(float64(v) * 0.1), nil
	}
}

// decodeTrueHeading decodes a 9-bit heading field in whole degrees:
// 511 => unavailable, >359 => out-of-range, else the literal value.
func decodeTrueHeading(b *BitBuffer, offset int) (Validity[uint16], error) {
	v, err := b.U(offset, 9)
	if err != nil {
		return Validity[uint16]{}, err
	}
	switch {
	case v == 511:
		return Unavailable[uint16](int64(v)), nil
	case v > 359:
		return OutOfRange[uint16](int64(v)), nil
	default:
		return Valid(uint16(v)), nil
	}
}

// decodeDraught decodes the 8-bit draught field in 0.1 m units: 0 =>
// unavailable, 255 => out-of-range floor ("at least 25.5 m"), else value*0.1.
func decodeDraught(b *BitBuffer, offset int) (Validity[float64], error) {
	v, err := b.U(offset, 8)
	if err != nil {
		return Validity[float64]{}, err
	}
	switch {
	case v == 0:
		return Unavailable[float64](int64(v)), nil
	case v == 255:
		return OutOfRange[float64](int64(v)), nil
	default:
		return Valid(float64(v) * 0.1), nil
	}
}
