// Package hitchart builds and queries directional hit-location charts: the
// per-attack-direction tables that map a hit die roll to the damage zone
// struck.
package hitchart

import "fmt"

// Direction is the compass-relative facing an attack is resolved from.
type Direction int

const (
	DirForward Direction = iota
	DirAft
	DirPort
	DirStarboard
	DirHigh
	DirLow
)

// CardinalDirections are the four facings with direction-specific zone
// ordering. High and low attacks use the unordered zone list instead; the
// rules do not define a dorsal/ventral priority, so none is invented here.
var CardinalDirections = []Direction{DirForward, DirAft, DirPort, DirStarboard}

// AllDirections lists every accepted attack direction.
var AllDirections = []Direction{DirForward, DirAft, DirPort, DirStarboard, DirHigh, DirLow}

// String returns the canonical ruleset token for the direction.
func (d Direction) String() string {
	switch d {
	case DirForward:
		return "forward"
	case DirAft:
		return "aft"
	case DirPort:
		return "port"
	case DirStarboard:
		return "starboard"
	case DirHigh:
		return "high"
	case DirLow:
		return "low"
	default:
		return "unknown"
	}
}

// ParseDirection converts a ruleset token into a Direction.
//
// Precondition: s may be any string.
// Postcondition: Returns a valid direction, or an error for unrecognized
// tokens.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "forward":
		return DirForward, nil
	case "aft":
		return DirAft, nil
	case "port":
		return DirPort, nil
	case "starboard":
		return DirStarboard, nil
	case "high":
		return DirHigh, nil
	case "low":
		return DirLow, nil
	default:
		return DirForward, fmt.Errorf("unknown attack direction %q", s)
	}
}
