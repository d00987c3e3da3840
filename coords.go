package ais

// coordKind selects one of the four ITU coordinate resolutions defined in
// spec.md §4.4.
type coordKind uint8

const (
	coordStandard  coordKind = iota // types 1-4,9,11,17(no),18,19,21
	coordLongRange                  // type 27
	coordDGNSS                      // type 17
	coordAreaTenth                  // types 22,23
)

type coordSpec struct {
	lonBits, latBits int
	lonNA, latNA     int64
	divisor          float64
}

var coordSpecs = map[coordKind]coordSpec{
	coordStandard:  {28, 27, 108600000, 54600000, 600000},
	coordLongRange: {18, 17, 108600, 54600, 600},
	coordDGNSS:     {18, 17, 18100, 9100, 600},
	coordAreaTenth: {18, 17, 1810, 910, 600},
}

// Position is a decoded longitude/latitude pair, each independently tagged
// for validity per spec.md §4.4.
type Position struct {
	Lon Validity[float64]
	Lat Validity[float64]
}

// decodePosition reads a (lon, lat) pair of the given resolution starting at
// lonOffset, with lat immediately following at lonOffset+lonBits.
func decodePosition(b *BitBuffer, lonOffset int, kind coordKind) (Position, error) {
	spec := coordSpecs[kind]
	latOffset := lonOffset + spec.lonBits

	rawLon, err := b.I64(lonOffset, spec.lonBits)
	if err != nil {
		return Position{}, err
	}
	rawLat, err := b.I64(latOffset, spec.latBits)
	if err != nil {
		return Position{}, err
	}

	return Position{
		Lon: decodeCoordValue(rawLon, spec.lonNA, spec.divisor, 180),
		Lat: decodeCoordValue(rawLat, spec.latNA, spec.divisor, 90),
	}, nil
}

func decodeCoordValue(raw int64, na int64, divisor float64, maxMagnitude float64) Validity[float64] {
	if raw == na {
		return Unavailable[float64](raw)
	}
	deg := float64(raw) / divisor
	mag := deg
	if mag < 0 {
		mag = -mag
	}
	if mag > maxMagnitude {
		return OutOfRange[float64](raw)
	}
	return Valid(deg)
}
