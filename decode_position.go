package ais

// NavStatus is the 4-bit navigational status table used by types 1/2/3.
type NavStatus uint8

const (
	NavUnderwayUsingEngine NavStatus = iota
	NavAtAnchor
	NavNotUnderCommand
	NavRestrictedManoeuvrability
	NavConstrainedByDraught
	NavMoored
	NavAground
	NavEngagedInFishing
	NavUnderwaySailing
	NavReservedHSC
	NavReservedWIG
	NavReserved11
	NavReserved12
	NavReserved13
	NavAISSARTActive
	NavNotDefined
)

var navStatusNames = [16]string{
	"underway using engine", "at anchor", "not under command",
	"restricted manoeuvrability", "constrained by draught", "moored",
	"aground", "engaged in fishing", "underway sailing",
	"reserved (HSC)", "reserved (WIG)", "reserved",
	"reserved", "reserved", "AIS-SART/MOB/EPIRB active", "not defined",
}

func (n NavStatus) String() string {
	if int(n) < len(navStatusNames) {
		return navStatusNames[n]
	}
	return "not defined"
}

// PositionReportClassA is the decoded type 1/2/3 message, spec.md §4.6.
type PositionReportClassA struct {
	NavStatus       NavStatus
	RateOfTurn      RateOfTurn
	SOG             Validity[float64]
	PositionAccuracy bool
	Position        Position
	COG             Validity[float64]
	TrueHeading     Validity[uint16]
	Timestamp       TimestampSecond
	Maneuver        string // "not-available", "no-special-maneuver", "special-maneuver"
	RAIM            bool
	CommState       CommState
}

func decodePositionReportClassA(msgType uint8) typeDecoder {
	return func(b *BitBuffer) (any, error) {
		if err := requireLength(b, msgType, 168); err != nil {
			return nil, err
		}
		navStatus, err := b.U(38, 4)
		if err != nil {
			return nil, err
		}
		rot, err := decodeRateOfTurn(b, 42)
		if err != nil {
			return nil, err
		}
		sog, err := decodeSOG10(b, 50)
		if err != nil {
			return nil, err
		}
		accuracy, err := b.Bool(60)
		if err != nil {
			return nil, err
		}
		pos, err := decodePosition(b, 61, coordStandard)
		if err != nil {
			return nil, err
		}
		cog, err := decodeCOG10(b, 116)
		if err != nil {
			return nil, err
		}
		heading, err := decodeTrueHeading(b, 128)
		if err != nil {
			return nil, err
		}
		ts, err := decodeTimestampSecond(b, 137)
		if err != nil {
			return nil, err
		}
		maneuverRaw, err := b.U(143, 2)
		if err != nil {
			return nil, err
		}
		raim, err := b.Bool(148)
		if err != nil {
			return nil, err
		}
		itdma := msgType == 3
		cs, err := decodeCommState(b, 149, itdma)
		if err != nil {
			return nil, err
		}

		maneuver := "not-available"
		switch maneuverRaw {
		case 1:
			maneuver = "no-special-maneuver"
		case 2:
			maneuver = "special-maneuver"
		}

		return &PositionReportClassA{
			NavStatus:        NavStatus(navStatus),
			RateOfTurn:       rot,
			SOG:              sog,
			PositionAccuracy: accuracy,
			Position:         pos,
			COG:              cog,
			TrueHeading:      heading,
			Timestamp:        ts,
			Maneuver:         maneuver,
			RAIM:             raim,
			CommState:        cs,
		}, nil
	}
}
