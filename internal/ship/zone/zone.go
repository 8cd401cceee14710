package zone

// SystemRef is a ship system assigned (or assignable) to a damage zone. The
// hosting layer creates and destroys these; the engine only sorts and
// validates them.
type SystemRef struct {
	// ID uniquely identifies the reference. Assigned by the caller's ID
	// generator, never by this package.
	ID string
	// SystemType is the caller-supplied component label, e.g. "beam",
	// "engine", "cockpit". Classification into damage categories is lossy
	// on purpose: unknown labels degrade to miscellaneous.
	SystemType string
	// HullPoints is the structural size of the system. Never negative.
	HullPoints int
	// FirepowerClass is the weapon size tier token (Gd, S, L, M, H, SH).
	// Empty for non-weapons and for weapons of unknown tier; unknown tiers
	// sort last among weapons.
	FirepowerClass string
}

// DamageZone is one damage-tracking region of a ship and the systems
// assigned to it.
//
// Invariant: TotalHullPoints == sum of Systems[i].HullPoints. The mutation
// helpers below recompute it on every change; it is never stored stale.
type DamageZone struct {
	Code            Code
	Systems         []SystemRef
	TotalHullPoints int
	MaxHullPoints   int
}

// AddSystem appends ref to the zone and recomputes the hull point total.
//
// Precondition: ref.HullPoints >= 0.
// Postcondition: ref is the last element of z.Systems and the total
// invariant holds.
func (z *DamageZone) AddSystem(ref SystemRef) {
	if ref.HullPoints < 0 {
		panic("zone: AddSystem precondition violated: HullPoints must be >= 0")
	}
	z.Systems = append(z.Systems, ref)
	z.Recalculate()
}

// RemoveSystem removes the reference with the given ID, preserving the order
// of the remaining systems, and recomputes the hull point total.
//
// Postcondition: Returns true iff a reference was removed; the total
// invariant holds either way.
func (z *DamageZone) RemoveSystem(id string) bool {
	for i, ref := range z.Systems {
		if ref.ID == id {
			z.Systems = append(z.Systems[:i], z.Systems[i+1:]...)
			z.Recalculate()
			return true
		}
	}
	return false
}

// Recalculate recomputes TotalHullPoints from the assigned systems.
//
// Postcondition: z.TotalHullPoints == sum of z.Systems[i].HullPoints.
func (z *DamageZone) Recalculate() {
	total := 0
	for _, ref := range z.Systems {
		total += ref.HullPoints
	}
	z.TotalHullPoints = total
}

// OverLimit reports whether the zone holds more hull points than its cap.
func (z *DamageZone) OverLimit() bool {
	return z.TotalHullPoints > z.MaxHullPoints
}

// Empty reports whether no systems are assigned to the zone.
func (z *DamageZone) Empty() bool {
	return len(z.Systems) == 0
}
