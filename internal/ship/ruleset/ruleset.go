// Package ruleset holds the construction-rules data tables: per-class zone
// configurations, per-hull-type zone limits, and authored hit-location
// tables. A Ruleset starts from the built-in tables and can be extended or
// overridden from YAML data files.
package ruleset

import (
	"github.com/cory-johannsen/shipwright/internal/ship/hitchart"
	"github.com/cory-johannsen/shipwright/internal/ship/zone"
)

// smallCraftTierMaxHull is the hull point threshold separating the
// small-craft 2-zone tier from the 4-zone tier.
const smallCraftTierMaxHull = 20

// Ruleset provides fast lookup of zone configurations, hull limits, and
// authored hit-location tables. All lookups are read-only after
// construction; a Ruleset must not be mutated while in use.
type Ruleset struct {
	// classConfigs holds one row per ship class other than small-craft.
	classConfigs map[zone.ShipClass]zone.ClassZoneConfig
	// smallCraftTwoZone and smallCraftFourZone are the two independent
	// small-craft size-tier rows.
	smallCraftTwoZone  zone.ClassZoneConfig
	smallCraftFourZone zone.ClassZoneConfig
	hullLimits         map[string]zone.HullLimits
	hitTables          map[string]hitchart.Table
}

// New returns an empty Ruleset ready to accept registrations.
//
// Postcondition: Returns a non-nil *Ruleset with no rows; most callers want
// Default instead.
func New() *Ruleset {
	return &Ruleset{
		classConfigs: make(map[zone.ShipClass]zone.ClassZoneConfig),
		hullLimits:   make(map[string]zone.HullLimits),
		hitTables:    make(map[string]hitchart.Table),
	}
}

// RegisterZoneConfig adds a zone configuration row. Small-craft rows land in
// the tier slot matching their zone count (2-zone tier for two zones,
// 4-zone tier otherwise); for every other class the row replaces the class
// entry. If called multiple times for the same slot, the last call wins.
//
// Precondition: len(cfg.Zones) == cfg.ZoneCount and cfg.ZoneCount > 0.
func (r *Ruleset) RegisterZoneConfig(cfg zone.ClassZoneConfig) {
	if cfg.ZoneCount <= 0 || len(cfg.Zones) != cfg.ZoneCount {
		panic("ruleset: RegisterZoneConfig precondition violated: len(Zones) must equal ZoneCount")
	}
	if cfg.Class == zone.SmallCraft {
		if cfg.ZoneCount == 2 {
			r.smallCraftTwoZone = cfg
		} else {
			r.smallCraftFourZone = cfg
		}
		return
	}
	r.classConfigs[cfg.Class] = cfg
}

// RegisterHullLimits adds a per-hull-type limits row. Last call wins.
//
// Precondition: hullTypeID must be non-empty.
func (r *Ruleset) RegisterHullLimits(hullTypeID string, limits zone.HullLimits) {
	if hullTypeID == "" {
		panic("ruleset: RegisterHullLimits precondition violated: hullTypeID must be non-empty")
	}
	r.hullLimits[hullTypeID] = limits
}

// RegisterHitTable adds an authored hit-location table under its lookup
// key. Last call wins.
//
// Precondition: key must be non-empty.
func (r *Ruleset) RegisterHitTable(key string, t hitchart.Table) {
	if key == "" {
		panic("ruleset: RegisterHitTable precondition violated: key must be non-empty")
	}
	r.hitTables[key] = t
}

// ZoneConfigForHull resolves a hull descriptor to its zone configuration.
// Small-craft pick the 2-zone tier when the hull has 20 or fewer hull
// points and the 4-zone tier otherwise; every other class is a fixed row
// lookup. There is no interpolation.
//
// Postcondition: The second result is false when the class has no
// registered row; the 2-zone small-craft tier is returned in that case so
// the hull stays editable.
func (r *Ruleset) ZoneConfigForHull(hull zone.HullDescriptor) (zone.ClassZoneConfig, bool) {
	if hull.Class == zone.SmallCraft {
		if hull.HullPoints <= smallCraftTierMaxHull {
			return r.smallCraftTwoZone, true
		}
		return r.smallCraftFourZone, true
	}
	if cfg, ok := r.classConfigs[hull.Class]; ok {
		return cfg, true
	}
	return r.smallCraftTwoZone, false
}

// ZoneLimitForHull looks up the per-hull-type limits row.
//
// Postcondition: Returns the row and true when the hull type is known;
// otherwise a fallback row with ZoneLimit == zone.DefaultZoneLimit and
// false. Lookups never fail outright: a ship with unusual or mod-supplied
// data must remain editable.
func (r *Ruleset) ZoneLimitForHull(hullTypeID string) (zone.HullLimits, bool) {
	if limits, ok := r.hullLimits[hullTypeID]; ok {
		return limits, true
	}
	return zone.HullLimits{ZoneLimit: zone.DefaultZoneLimit}, false
}

// ZoneCountForHull returns the zone count from the hull type's limits row,
// or 0 when the hull type is unknown.
func (r *Ruleset) ZoneCountForHull(hullTypeID string) int {
	limits, _ := r.ZoneLimitForHull(hullTypeID)
	return limits.ZoneCount
}

// HitTable returns the authored hit-location table for the given key, if
// registered.
func (r *Ruleset) HitTable(key string) (hitchart.Table, bool) {
	t, ok := r.hitTables[key]
	return t, ok
}

// HitTables returns the authored table map for chart building. The caller
// must not mutate it.
func (r *Ruleset) HitTables() map[string]hitchart.Table {
	return r.hitTables
}

// CreateEmptyZones builds the zero-filled damage zone set for a hull: one
// zone per configured code, no systems, and the hull type's per-zone limit
// as capacity. Deterministic and idempotent.
//
// Postcondition: The returned codes equal ZoneConfigForHull(hull).Zones in
// order; every zone has TotalHullPoints == 0 and MaxHullPoints equal to the
// hull's zone limit (or the fallback limit for unknown hull types).
func (r *Ruleset) CreateEmptyZones(hull zone.HullDescriptor) []zone.DamageZone {
	cfg, _ := r.ZoneConfigForHull(hull)
	limits, _ := r.ZoneLimitForHull(hull.ID)

	zones := make([]zone.DamageZone, 0, len(cfg.Zones))
	for _, code := range cfg.Zones {
		zones = append(zones, zone.DamageZone{
			Code:          code,
			Systems:       []zone.SystemRef{},
			MaxHullPoints: limits.ZoneLimit,
		})
	}
	return zones
}

// HitLocationChartForHull resolves a hull's configuration and builds its
// hit-location chart, preferring an authored table when one matches.
//
// Postcondition: The second result is true when the chart was synthesized
// procedurally rather than read from an authored table.
func (r *Ruleset) HitLocationChartForHull(hull zone.HullDescriptor) (hitchart.Chart, bool) {
	cfg, _ := r.ZoneConfigForHull(hull)
	return hitchart.CreateDefault(cfg.Zones, cfg.HitDie, r.hitTables)
}
