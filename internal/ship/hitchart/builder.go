package hitchart

import (
	"fmt"

	"github.com/cory-johannsen/shipwright/internal/ship/zone"
)

// Table is an authored hit-location table: hand-tuned per-direction entries
// for one (hit die, zone count) configuration. Authored tables encode game
// balance the procedural partition cannot, so they always win when present.
type Table map[Direction][]Entry

// TableKey derives the authored-table lookup key for a configuration. The
// 2-zone d6 case predates the keyed scheme and keeps its bare legacy key.
//
// Postcondition: Returns "6-die" for (6, 2), "{die}-die-{n}zone" otherwise.
func TableKey(hitDie, zoneCount int) string {
	if hitDie == 6 && zoneCount == 2 {
		return "6-die"
	}
	return fmt.Sprintf("%d-die-%dzone", hitDie, zoneCount)
}

// CreateDefault builds the hit-location chart for a ship configuration.
//
// When authored has a table for the configuration's key, its entries are
// wrapped directly. Otherwise a chart is synthesized: each cardinal
// direction reorders the zones axis-first, then [1, hitDie] is split into
// len(zones) contiguous ranges, the first hitDie mod len(zones) zones
// receiving one extra roll. High and low columns use the zone list in its
// configuration order.
//
// Precondition: zones must be non-empty with no duplicates, and
// hitDie >= len(zones) so every zone can receive at least one roll.
// Postcondition: Returns the chart and true when it was synthesized
// procedurally, false when an authored table was used.
func CreateDefault(zones []zone.Code, hitDie int, authored map[string]Table) (Chart, bool) {
	if len(zones) == 0 {
		panic("hitchart: CreateDefault precondition violated: zones must be non-empty")
	}
	if hitDie < len(zones) {
		panic(fmt.Sprintf("hitchart: CreateDefault precondition violated: hit die %d cannot cover %d zones", hitDie, len(zones)))
	}

	if t, ok := authored[TableKey(hitDie, len(zones))]; ok {
		return wrapAuthored(t, hitDie), false
	}

	chart := Chart{HitDie: hitDie}
	for _, d := range CardinalDirections {
		chart.Columns = append(chart.Columns, Column{
			Direction: d,
			Entries:   partition(reorderForDirection(zones, d), hitDie),
		})
	}
	for _, d := range []Direction{DirHigh, DirLow} {
		chart.Columns = append(chart.Columns, Column{
			Direction: d,
			Entries:   partition(zones, hitDie),
		})
	}
	return chart, true
}

// wrapAuthored lifts an authored table into a Chart, keeping the table's
// entries untouched and its columns in canonical direction order.
func wrapAuthored(t Table, hitDie int) Chart {
	chart := Chart{HitDie: hitDie}
	for _, d := range AllDirections {
		if entries, ok := t[d]; ok {
			col := Column{Direction: d, Entries: make([]Entry, len(entries))}
			copy(col.Entries, entries)
			chart.Columns = append(chart.Columns, col)
		}
	}
	return chart
}

// partition splits [1, hitDie] into len(zones) contiguous inclusive ranges
// in zone order. The first hitDie mod len(zones) zones get one extra roll.
//
// Postcondition: The returned entries satisfy ValidateEntries(entries, hitDie).
func partition(zones []zone.Code, hitDie int) []Entry {
	base := hitDie / len(zones)
	extra := hitDie % len(zones)

	entries := make([]Entry, 0, len(zones))
	next := 1
	for i, code := range zones {
		rolls := base
		if i < extra {
			rolls++
		}
		entries = append(entries, Entry{MinRoll: next, MaxRoll: next + rolls - 1, Zone: code})
		next += rolls
	}
	return entries
}
