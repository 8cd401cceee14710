package zone

import "fmt"

// DiagramStats summarizes a damage diagram's occupancy. Derived on demand,
// never persisted.
type DiagramStats struct {
	ZoneCount               int
	ZonesWithSystems        int
	ZonesOverLimit          int
	EmptyZones              int
	TotalSystemsAssigned    int
	TotalHullPointsAssigned int
	// UnassignedSystems is totalShipSystems minus the assigned count. The
	// engine does not guard against a miscounting caller, so this can go
	// negative; the integration boundary is expected to check
	// TotalSystemsAssigned <= totalShipSystems before trusting it.
	UnassignedSystems int
}

// ValidateZone checks a single zone's capacity and occupancy invariants.
// Diagnostics come back as data; the engine never decides whether they
// block progression.
//
// Postcondition: Returns an over-limit error string when
// TotalHullPoints > MaxHullPoints, an empty-zone warning when no systems
// are assigned, and an empty slice when the zone is healthy.
func ValidateZone(z DamageZone) []string {
	var diags []string
	if z.TotalHullPoints > z.MaxHullPoints {
		diags = append(diags, fmt.Sprintf(
			"zone %s is over its hull point limit: %d assigned, %d allowed",
			z.Code, z.TotalHullPoints, z.MaxHullPoints))
	}
	if len(z.Systems) == 0 {
		diags = append(diags, fmt.Sprintf("zone %s has no systems assigned", z.Code))
	}
	return diags
}

// ValidateDamageDiagram validates every zone and appends a summary warning
// counting empty zones.
//
// Postcondition: Returns the concatenation of all per-zone diagnostics,
// plus one summary line when any zone is empty.
func ValidateDamageDiagram(zones []DamageZone) []string {
	var diags []string
	empty := 0
	for _, z := range zones {
		diags = append(diags, ValidateZone(z)...)
		if z.Empty() {
			empty++
		}
	}
	if empty > 0 {
		diags = append(diags, fmt.Sprintf("%d of %d zones have no systems assigned", empty, len(zones)))
	}
	return diags
}

// CalculateDamageDiagramStats computes diagram occupancy in a single pass.
//
// Precondition: totalShipSystems should be >= the number of assigned
// systems; the engine does not verify this (see DiagramStats.UnassignedSystems).
// Postcondition: ZonesWithSystems + EmptyZones == ZoneCount,
// TotalSystemsAssigned == sum of len(zone.Systems), and
// TotalHullPointsAssigned == sum of zone.TotalHullPoints.
func CalculateDamageDiagramStats(zones []DamageZone, totalShipSystems int) DiagramStats {
	stats := DiagramStats{ZoneCount: len(zones)}
	for _, z := range zones {
		if z.Empty() {
			stats.EmptyZones++
		} else {
			stats.ZonesWithSystems++
		}
		if z.OverLimit() {
			stats.ZonesOverLimit++
		}
		stats.TotalSystemsAssigned += len(z.Systems)
		stats.TotalHullPointsAssigned += z.TotalHullPoints
	}
	stats.UnassignedSystems = totalShipSystems - stats.TotalSystemsAssigned
	return stats
}

// IsDamageDiagramComplete is the acceptance predicate the design wizard uses
// to let a ship proceed past the damage-zone step.
//
// Postcondition: Returns true iff unassignedSystems <= 0, no zone is empty,
// and no zone exceeds its hull point limit.
func IsDamageDiagramComplete(zones []DamageZone, unassignedSystems int) bool {
	if unassignedSystems > 0 {
		return false
	}
	for _, z := range zones {
		if z.Empty() || z.OverLimit() {
			return false
		}
	}
	return true
}
