// Package design models a ship design file: the hull choice, the component
// list, and the zone assignments the damage-zone engine validates.
package design

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/shipwright/internal/ship/ruleset"
	"github.com/cory-johannsen/shipwright/internal/ship/system"
	"github.com/cory-johannsen/shipwright/internal/ship/zone"
)

// Hull is the design's hull selection.
type Hull struct {
	// Type is the hull type ID from the hull catalog, e.g. "light-cruiser".
	Type string `yaml:"type"`
	// Class is the ship class token, e.g. "light".
	Class string `yaml:"class"`
	// HullPoints is the hull's structural capacity.
	HullPoints int `yaml:"hull_points"`
}

// System is one installed component.
type System struct {
	// ID uniquely identifies the component within the design. Optional in
	// the file; AssignIDs fills missing IDs from an injected generator.
	ID string `yaml:"id"`
	// Type is the component type label, e.g. "beam", "reactor".
	Type string `yaml:"type"`
	// HullPoints is the component's structural size.
	HullPoints int `yaml:"hull_points"`
	// FirepowerClass is the weapon size tier (Gd, S, L, M, H, SH), empty
	// for non-weapons.
	FirepowerClass string `yaml:"firepower_class"`
	// Arcs lists the weapon's firing arcs, empty for non-weapons.
	Arcs []string `yaml:"arcs"`
}

// Assignment places a system in a zone.
type Assignment struct {
	System string `yaml:"system"`
	Zone   string `yaml:"zone"`
}

// Design is a ship design document.
type Design struct {
	Name        string       `yaml:"name"`
	Hull        Hull         `yaml:"hull"`
	Systems     []System     `yaml:"systems"`
	Assignments []Assignment `yaml:"assignments"`
}

// Load reads and parses a design file.
//
// Precondition: path must be a readable YAML file.
// Postcondition: Returns a structurally valid design or a non-nil error.
func Load(path string) (*Design, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var d Design
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing design file %s: %w", path, err)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("design file %s: %w", path, err)
	}
	return &d, nil
}

// Validate checks the design's structural invariants: a parseable hull
// class, non-negative sizes, non-empty system types, and no duplicate
// system IDs. Rules-level problems (over-capacity zones, empty zones) are
// the validator's job, not this one's.
//
// Postcondition: Returns nil iff the design is structurally sound.
func (d *Design) Validate() error {
	if _, err := zone.ParseShipClass(d.Hull.Class); err != nil {
		return err
	}
	if d.Hull.HullPoints < 0 {
		return fmt.Errorf("hull_points must not be negative, got %d", d.Hull.HullPoints)
	}
	seen := make(map[string]bool, len(d.Systems))
	for i, s := range d.Systems {
		if s.Type == "" {
			return fmt.Errorf("system %d is missing a type", i)
		}
		if s.HullPoints < 0 {
			return fmt.Errorf("system %d has negative hull_points", i)
		}
		if s.ID != "" {
			if seen[s.ID] {
				return fmt.Errorf("duplicate system id %q", s.ID)
			}
			seen[s.ID] = true
		}
		for _, arc := range s.Arcs {
			if !system.ArcKnown(arc) {
				return fmt.Errorf("system %d has unknown firing arc %q", i, arc)
			}
		}
	}
	return nil
}

// AssignIDs fills empty system IDs from gen, leaving authored IDs alone.
//
// Precondition: gen must be non-nil.
// Postcondition: Every system has a non-empty ID.
func (d *Design) AssignIDs(gen system.IDGenerator) {
	if gen == nil {
		panic("design: AssignIDs precondition violated: gen must be non-nil")
	}
	for i := range d.Systems {
		if d.Systems[i].ID == "" {
			d.Systems[i].ID = gen.NextID()
		}
	}
}

// HullDescriptor converts the design's hull selection for the resolver.
//
// Precondition: d.Validate() must have passed.
func (d *Design) HullDescriptor() zone.HullDescriptor {
	class, err := zone.ParseShipClass(d.Hull.Class)
	if err != nil {
		panic("design: HullDescriptor precondition violated: " + err.Error())
	}
	return zone.HullDescriptor{
		ID:         d.Hull.Type,
		Class:      class,
		HullPoints: d.Hull.HullPoints,
	}
}

// BuildZones creates the hull's empty zone set and applies the design's
// assignments to it. Problems with individual assignments come back as
// diagnostics, never errors: an unknown system or zone skips that
// assignment, a weapon placed outside its arcs is applied with a warning,
// and a system assigned twice keeps only its first placement. The caller
// decides what blocks progression.
//
// Precondition: d.Validate() must have passed and every system must have an
// ID (see AssignIDs).
// Postcondition: Returns the populated zones and all assignment
// diagnostics.
func (d *Design) BuildZones(rs *ruleset.Ruleset) ([]zone.DamageZone, []string) {
	hull := d.HullDescriptor()
	zones := rs.CreateEmptyZones(hull)

	zoneIdx := make(map[zone.Code]int, len(zones))
	for i, z := range zones {
		zoneIdx[z.Code] = i
	}
	systems := make(map[string]System, len(d.Systems))
	for _, s := range d.Systems {
		systems[s.ID] = s
	}

	var diags []string
	placed := make(map[string]bool, len(d.Assignments))
	for _, a := range d.Assignments {
		s, ok := systems[a.System]
		if !ok {
			diags = append(diags, fmt.Sprintf("assignment names unknown system %q", a.System))
			continue
		}
		idx, ok := zoneIdx[zone.Code(a.Zone)]
		if !ok {
			diags = append(diags, fmt.Sprintf("assignment places %q in zone %q, which this hull does not have", a.System, a.Zone))
			continue
		}
		if placed[a.System] {
			diags = append(diags, fmt.Sprintf("system %q is assigned more than once; keeping its first placement", a.System))
			continue
		}
		placed[a.System] = true

		if len(s.Arcs) > 0 && system.CategoryFor(s.Type) == system.Weapon &&
			!system.CanWeaponBeInZone(s.Arcs, zones[idx].Code) {
			diags = append(diags, fmt.Sprintf("weapon %q has no firing arc covering zone %s", a.System, zones[idx].Code))
		}

		zones[idx].AddSystem(zone.SystemRef{
			ID:             s.ID,
			SystemType:     s.Type,
			HullPoints:     s.HullPoints,
			FirepowerClass: s.FirepowerClass,
		})
	}
	return zones, diags
}
