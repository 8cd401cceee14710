package hitchart

import (
	"fmt"

	"github.com/cory-johannsen/shipwright/internal/ship/zone"
)

// Entry maps a contiguous inclusive roll range to a zone.
type Entry struct {
	MinRoll int
	MaxRoll int
	Zone    zone.Code
}

// Column holds one attack direction's roll-to-zone mapping.
//
// Invariant: Entries are sorted ascending by MinRoll and partition
// [1, chart.HitDie] exactly: no gaps, no overlaps, every integer covered
// once, one entry per zone of the ship's zone set.
type Column struct {
	Direction Direction
	Entries   []Entry
}

// Chart is a full directional hit-location chart for one ship
// configuration.
type Chart struct {
	HitDie  int
	Columns []Column
}

// Column returns the column for the given direction.
//
// Postcondition: Returns the column and true, or a zero Column and false
// when the chart has no column for d.
func (c Chart) Column(d Direction) (Column, bool) {
	for _, col := range c.Columns {
		if col.Direction == d {
			return col, true
		}
	}
	return Column{}, false
}

// Locate resolves a die roll against the chart for an attack from the given
// direction.
//
// Precondition: roll should be in [1, c.HitDie].
// Postcondition: Returns the struck zone and true, or false when the chart
// has no column for d or the roll falls outside every entry.
func (c Chart) Locate(d Direction, roll int) (zone.Code, bool) {
	col, ok := c.Column(d)
	if !ok {
		return "", false
	}
	for _, e := range col.Entries {
		if roll >= e.MinRoll && roll <= e.MaxRoll {
			return e.Zone, true
		}
	}
	return "", false
}

// ValidateEntries checks that entries form an exact partition of
// [1, hitDie]: contiguous, non-overlapping, starting at 1 and ending at
// hitDie, with no zone repeated. Used when authored tables are loaded, so a
// malformed data file is rejected before it can silently skew hit
// distributions.
//
// Postcondition: Returns nil iff the partition invariant holds.
func ValidateEntries(entries []Entry, hitDie int) error {
	if len(entries) == 0 {
		return fmt.Errorf("no entries")
	}
	if entries[0].MinRoll != 1 {
		return fmt.Errorf("first entry starts at %d, want 1", entries[0].MinRoll)
	}
	seen := make(map[zone.Code]bool, len(entries))
	for i, e := range entries {
		if e.MinRoll > e.MaxRoll {
			return fmt.Errorf("entry %d has empty range [%d, %d]", i, e.MinRoll, e.MaxRoll)
		}
		if seen[e.Zone] {
			return fmt.Errorf("zone %s appears more than once", e.Zone)
		}
		seen[e.Zone] = true
		if i > 0 && entries[i-1].MaxRoll+1 != e.MinRoll {
			return fmt.Errorf("gap or overlap between rolls %d and %d", entries[i-1].MaxRoll, e.MinRoll)
		}
	}
	if last := entries[len(entries)-1].MaxRoll; last != hitDie {
		return fmt.Errorf("last entry ends at %d, want %d", last, hitDie)
	}
	return nil
}
