package system_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/shipwright/internal/ship/system"
	"github.com/cory-johannsen/shipwright/internal/ship/zone"
)

// TestSortByDamagePriority_Categories verifies category order dominates:
// weapons first, command last.
func TestSortByDamagePriority_Categories(t *testing.T) {
	systems := []zone.SystemRef{
		{ID: "1", SystemType: "cockpit", HullPoints: 5},
		{ID: "2", SystemType: "engine", HullPoints: 20},
		{ID: "3", SystemType: "beam", HullPoints: 8, FirepowerClass: "M"},
		{ID: "4", SystemType: "shield", HullPoints: 12},
	}
	sorted := system.SortByDamagePriority(systems)

	require.Len(t, sorted, 4)
	assert.Equal(t, "3", sorted[0].ID, "the weapon is hit first")
	assert.Equal(t, "4", sorted[1].ID)
	assert.Equal(t, "2", sorted[2].ID)
	assert.Equal(t, "1", sorted[3].ID, "the command system is hit last")
}

// TestSortByDamagePriority_WeaponsByFirepower verifies lighter weapons sort
// before heavier ones, and weapons without a tier sort last among weapons.
func TestSortByDamagePriority_WeaponsByFirepower(t *testing.T) {
	systems := []zone.SystemRef{
		{ID: "sh", SystemType: "cannon", HullPoints: 30, FirepowerClass: "SH"},
		{ID: "gd", SystemType: "beam", HullPoints: 2, FirepowerClass: "Gd"},
		{ID: "none", SystemType: "missile", HullPoints: 50},
		{ID: "m", SystemType: "laser", HullPoints: 10, FirepowerClass: "M"},
	}
	sorted := system.SortByDamagePriority(systems)

	ids := []string{sorted[0].ID, sorted[1].ID, sorted[2].ID, sorted[3].ID}
	assert.Equal(t, []string{"gd", "m", "sh", "none"}, ids)
}

// TestSortByDamagePriority_NonWeaponsByHullPoints verifies bigger systems
// sort first within a non-weapon category.
func TestSortByDamagePriority_NonWeaponsByHullPoints(t *testing.T) {
	systems := []zone.SystemRef{
		{ID: "small", SystemType: "engine", HullPoints: 5},
		{ID: "big", SystemType: "thruster", HullPoints: 25},
		{ID: "mid", SystemType: "drive", HullPoints: 10},
	}
	sorted := system.SortByDamagePriority(systems)

	ids := []string{sorted[0].ID, sorted[1].ID, sorted[2].ID}
	assert.Equal(t, []string{"big", "mid", "small"}, ids)
}

// TestSortByDamagePriority_Stable verifies ties keep their original relative
// order at every key level.
func TestSortByDamagePriority_Stable(t *testing.T) {
	systems := []zone.SystemRef{
		{ID: "w1", SystemType: "beam", HullPoints: 9, FirepowerClass: "L"},
		{ID: "w2", SystemType: "laser", HullPoints: 3, FirepowerClass: "L"},
		{ID: "e1", SystemType: "engine", HullPoints: 10},
		{ID: "e2", SystemType: "thruster", HullPoints: 10},
	}
	sorted := system.SortByDamagePriority(systems)

	assert.Equal(t, "w1", sorted[0].ID, "equal-tier weapons keep input order")
	assert.Equal(t, "w2", sorted[1].ID)
	assert.Equal(t, "e1", sorted[2].ID, "equal-size engines keep input order")
	assert.Equal(t, "e2", sorted[3].ID)
}

// TestSortByDamagePriority_DoesNotMutateInput verifies the input slice is
// left untouched.
func TestSortByDamagePriority_DoesNotMutateInput(t *testing.T) {
	systems := []zone.SystemRef{
		{ID: "1", SystemType: "cockpit"},
		{ID: "2", SystemType: "beam", FirepowerClass: "S"},
	}
	_ = system.SortByDamagePriority(systems)
	assert.Equal(t, "1", systems[0].ID)
	assert.Equal(t, "2", systems[1].ID)
}

// TestSortByDamagePriority_Property verifies the adjacent-pair invariants
// for arbitrary system lists: category never decreases; equal-category
// weapon pairs are ordered by firepower; other equal-category pairs are
// ordered by hull points descending.
func TestSortByDamagePriority_Property(t *testing.T) {
	types := []string{"beam", "cannon", "shield", "sensor", "engine", "reactor", "cockpit", "mystery-box"}
	tiers := []string{"", "Gd", "S", "L", "M", "H", "SH"}

	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(0, 30).Draw(rt, "count")
		systems := make([]zone.SystemRef, count)
		for i := range systems {
			systems[i] = zone.SystemRef{
				ID:             string(rune('a' + i)),
				SystemType:     rapid.SampledFrom(types).Draw(rt, "type"),
				HullPoints:     rapid.IntRange(0, 50).Draw(rt, "hp"),
				FirepowerClass: rapid.SampledFrom(tiers).Draw(rt, "tier"),
			}
		}
		sorted := system.SortByDamagePriority(systems)
		require.Len(rt, sorted, count)

		for i := 1; i < len(sorted); i++ {
			a, b := sorted[i-1], sorted[i]
			ca, cb := system.CategoryFor(a.SystemType), system.CategoryFor(b.SystemType)
			assert.LessOrEqual(rt, ca.Order(), cb.Order(),
				"category order must never decrease")
			if ca != cb {
				continue
			}
			if ca == system.Weapon {
				assert.LessOrEqual(rt,
					system.FirepowerOrder(a.FirepowerClass),
					system.FirepowerOrder(b.FirepowerClass),
					"equal-category weapons must be ordered by firepower")
			} else {
				assert.GreaterOrEqual(rt, a.HullPoints, b.HullPoints,
					"equal-category non-weapons must be ordered by hull points descending")
			}
		}
	})
}
