package hitchart

import (
	"sort"

	"github.com/cory-johannsen/shipwright/internal/ship/zone"
)

// directionPriority orders every zone code by proximity to the attack axis,
// per cardinal direction: the zone on the axis first, then its quadrant
// composites, then flank and center sections, then the far side last. Zones
// absent from a ship's configuration are simply skipped; codes absent from
// the priority list sort to the end in their original order.
//
// High and low have no entry on purpose: attacks from above or below use
// the configuration's own zone order.
var directionPriority = map[Direction][]zone.Code{
	DirForward: {
		zone.Forward, zone.FarForwardCenter, zone.FarForwardPort, zone.FarForwardStar,
		zone.ForwardCenter, zone.CenterForward, zone.ForwardPort, zone.ForwardStar,
		zone.PortCenter, zone.StarCenter, zone.Port, zone.Starboard,
		zone.CenterAft, zone.AftCenter, zone.AftPort, zone.AftStar,
		zone.FarAftPort, zone.FarAftStar, zone.FarAftCenter, zone.Aft,
	},
	DirAft: {
		zone.Aft, zone.FarAftCenter, zone.FarAftPort, zone.FarAftStar,
		zone.AftCenter, zone.CenterAft, zone.AftPort, zone.AftStar,
		zone.PortCenter, zone.StarCenter, zone.Port, zone.Starboard,
		zone.CenterForward, zone.ForwardCenter, zone.ForwardPort, zone.ForwardStar,
		zone.FarForwardPort, zone.FarForwardStar, zone.FarForwardCenter, zone.Forward,
	},
	DirPort: {
		zone.Port, zone.ForwardPort, zone.AftPort, zone.FarForwardPort, zone.FarAftPort,
		zone.PortCenter, zone.Forward, zone.Aft, zone.CenterForward, zone.CenterAft,
		zone.ForwardCenter, zone.AftCenter, zone.FarForwardCenter, zone.FarAftCenter,
		zone.StarCenter, zone.ForwardStar, zone.AftStar,
		zone.FarForwardStar, zone.FarAftStar, zone.Starboard,
	},
	DirStarboard: {
		zone.Starboard, zone.ForwardStar, zone.AftStar, zone.FarForwardStar, zone.FarAftStar,
		zone.StarCenter, zone.Forward, zone.Aft, zone.CenterForward, zone.CenterAft,
		zone.ForwardCenter, zone.AftCenter, zone.FarForwardCenter, zone.FarAftCenter,
		zone.PortCenter, zone.ForwardPort, zone.AftPort,
		zone.FarForwardPort, zone.FarAftPort, zone.Port,
	},
}

// reorderForDirection returns zones sorted by the direction's priority
// list. The sort is stable, so codes missing from the priority list keep
// their original relative order at the end. Directions without a priority
// list (high, low) return the input order unchanged.
//
// Postcondition: Returns a new slice; the input is not mutated.
func reorderForDirection(zones []zone.Code, d Direction) []zone.Code {
	out := make([]zone.Code, len(zones))
	copy(out, zones)

	priority, ok := directionPriority[d]
	if !ok {
		return out
	}
	rank := make(map[zone.Code]int, len(priority))
	for i, code := range priority {
		rank[code] = i
	}
	unranked := len(priority)
	rankOf := func(code zone.Code) int {
		if r, ok := rank[code]; ok {
			return r
		}
		return unranked
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rankOf(out[i]) < rankOf(out[j])
	})
	return out
}
