package system

import "github.com/cory-johannsen/shipwright/internal/ship/zone"

// zonesByArc maps each firing-arc token to the set of zone codes a weapon
// bearing that arc may legally occupy. The zero-deflection arcs (spinal
// mounts) are restricted to the hull centerline on their side; high and low
// arcs cover the dorsal/ventral center sections.
var zonesByArc = map[string][]zone.Code{
	"forward": {
		zone.Forward, zone.ForwardCenter, zone.ForwardPort, zone.ForwardStar,
		zone.FarForwardPort, zone.FarForwardCenter, zone.FarForwardStar,
		zone.CenterForward,
	},
	"aft": {
		zone.Aft, zone.AftCenter, zone.AftPort, zone.AftStar,
		zone.FarAftPort, zone.FarAftCenter, zone.FarAftStar,
		zone.CenterAft,
	},
	"port": {
		zone.Port, zone.PortCenter, zone.ForwardPort, zone.AftPort,
		zone.FarForwardPort, zone.FarAftPort,
	},
	"starboard": {
		zone.Starboard, zone.StarCenter, zone.ForwardStar, zone.AftStar,
		zone.FarForwardStar, zone.FarAftStar,
	},
	"zero-port": {
		zone.Port, zone.PortCenter,
	},
	"zero-starboard": {
		zone.Starboard, zone.StarCenter,
	},
	"high": {
		zone.ForwardCenter, zone.AftCenter, zone.CenterForward, zone.CenterAft,
		zone.PortCenter, zone.StarCenter, zone.FarForwardCenter, zone.FarAftCenter,
	},
	"low": {
		zone.ForwardCenter, zone.AftCenter, zone.CenterForward, zone.CenterAft,
		zone.PortCenter, zone.StarCenter, zone.FarForwardCenter, zone.FarAftCenter,
	},
}

// CanWeaponBeInZone reports whether a weapon with the given firing arcs may
// be placed in the given zone. Arcs are an OR: one compatible arc is enough,
// because a multi-arc weapon only needs a single legal placement per zone.
//
// Precondition: arcs may be empty; unknown arc tokens permit nothing.
// Postcondition: Returns true iff any arc's permitted set contains code.
func CanWeaponBeInZone(arcs []string, code zone.Code) bool {
	for _, arc := range arcs {
		for _, permitted := range zonesByArc[arc] {
			if permitted == code {
				return true
			}
		}
	}
	return false
}

// ArcKnown reports whether the ruleset defines the given firing-arc token.
func ArcKnown(arc string) bool {
	_, ok := zonesByArc[arc]
	return ok
}
