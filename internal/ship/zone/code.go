// Package zone defines the damage-zone model for the Shipwright construction
// rules: zone codes, damage zones, hull descriptors, and the validation and
// diagram-statistics passes the design wizard runs on every assignment edit.
package zone

// Code identifies a damage-tracking region of a ship hull.
//
// Codes are opaque tokens; their direction semantics (which codes count as
// forward, flank, or aft) live entirely in lookup tables, never in the token
// itself.
type Code string

// The full set of zone codes used by the construction rules. Single-letter
// codes are the cardinal hull sections; two- and three-letter codes are
// quadrant and sub-quadrant composites; CF/CA/PC/SC are the centerline and
// flank-center sections used by the largest hulls.
const (
	Forward   Code = "F"
	Aft       Code = "A"
	Port      Code = "P"
	Starboard Code = "S"

	ForwardCenter Code = "FC"
	AftCenter     Code = "AC"
	ForwardPort   Code = "FP"
	ForwardStar   Code = "FS"
	AftPort       Code = "AP"
	AftStar       Code = "AS"

	FarForwardPort   Code = "FFP"
	FarForwardCenter Code = "FFC"
	FarForwardStar   Code = "FFS"
	FarAftPort       Code = "AAP"
	FarAftCenter     Code = "AAC"
	FarAftStar       Code = "AAS"

	CenterForward Code = "CF"
	CenterAft     Code = "CA"
	PortCenter    Code = "PC"
	StarCenter    Code = "SC"
)

// AllCodes lists every zone code known to the ruleset, in hull order
// (forward sections first, aft sections last).
var AllCodes = []Code{
	Forward, FarForwardPort, FarForwardCenter, FarForwardStar,
	ForwardCenter, ForwardPort, ForwardStar, CenterForward,
	Port, PortCenter, Starboard, StarCenter,
	CenterAft, AftCenter, AftPort, AftStar,
	FarAftPort, FarAftCenter, FarAftStar, Aft,
}

// IsKnown reports whether c is one of the zone codes defined by the ruleset.
//
// Postcondition: Returns true iff c appears in AllCodes.
func (c Code) IsKnown() bool {
	for _, k := range AllCodes {
		if k == c {
			return true
		}
	}
	return false
}
