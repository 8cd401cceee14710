package zone

import "fmt"

// ShipClass is the closed set of hull size classes the construction rules
// recognize.
type ShipClass int

const (
	ClassUnknown ShipClass = iota // zero value; intentionally invalid
	SmallCraft
	Light
	Medium
	Heavy
	SuperHeavy
)

// String returns the canonical ruleset token for the class.
func (c ShipClass) String() string {
	switch c {
	case SmallCraft:
		return "small-craft"
	case Light:
		return "light"
	case Medium:
		return "medium"
	case Heavy:
		return "heavy"
	case SuperHeavy:
		return "super-heavy"
	default:
		return "unknown"
	}
}

// ParseShipClass converts a ruleset token into a ShipClass.
//
// Precondition: s may be any string.
// Postcondition: Returns a valid class, or ClassUnknown and a non-nil error
// when s is not one of the five recognized tokens.
func ParseShipClass(s string) (ShipClass, error) {
	switch s {
	case "small-craft":
		return SmallCraft, nil
	case "light":
		return Light, nil
	case "medium":
		return Medium, nil
	case "heavy":
		return Heavy, nil
	case "super-heavy":
		return SuperHeavy, nil
	default:
		return ClassUnknown, fmt.Errorf("unknown ship class %q", s)
	}
}

// HullDescriptor identifies a chosen hull: its type ID from the hull catalog,
// its size class, and its total hull points.
type HullDescriptor struct {
	// ID is the hull type identifier, e.g. "light-cruiser".
	ID string
	// Class is the hull's size class.
	Class ShipClass
	// HullPoints is the hull's total structural capacity. For small-craft
	// it selects between the 2-zone and 4-zone tiers.
	HullPoints int
}

// ClassZoneConfig is one row of the per-class zone configuration table: the
// ordered zone list and the hit die used to resolve strikes against this
// configuration.
//
// Invariant: len(Zones) == ZoneCount and every code in Zones is unique.
type ClassZoneConfig struct {
	Class     ShipClass
	ZoneCount int
	Zones     []Code
	HitDie    int
}

// HullLimits is one row of the per-hull-type limits table.
type HullLimits struct {
	// HullPoints is the hull type's total structural capacity.
	HullPoints int
	// ZoneCount is the number of damage zones the hull type carries.
	ZoneCount int
	// ZoneLimit is the maximum hull points a single zone may hold.
	ZoneLimit int
}

// DefaultZoneLimit is the per-zone hull point cap used when a hull type is
// absent from the limits table. Unusual or mod-supplied hulls must stay
// editable, so lookups fall back to this instead of failing.
const DefaultZoneLimit = 100
