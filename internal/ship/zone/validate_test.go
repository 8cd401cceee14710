package zone_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/shipwright/internal/ship/zone"
)

func overLimitZone() zone.DamageZone {
	return zone.DamageZone{
		Code:            zone.Forward,
		Systems:         []zone.SystemRef{{ID: "x", SystemType: "engine", HullPoints: 45}},
		TotalHullPoints: 45,
		MaxHullPoints:   40,
	}
}

// TestValidateZone_OverLimit verifies an over-capacity zone reports exactly
// the over-limit error and no empty-zone warning.
func TestValidateZone_OverLimit(t *testing.T) {
	diags := zone.ValidateZone(overLimitZone())
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "over its hull point limit")
	assert.Contains(t, diags[0], "45")
	assert.Contains(t, diags[0], "40")
}

// TestValidateZone_Empty verifies an empty zone reports only the empty-zone
// warning.
func TestValidateZone_Empty(t *testing.T) {
	z := zone.DamageZone{Code: zone.Aft, MaxHullPoints: 40}
	diags := zone.ValidateZone(z)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "no systems assigned")
}

// TestValidateZone_Healthy verifies a populated in-limit zone yields no
// diagnostics.
func TestValidateZone_Healthy(t *testing.T) {
	z := zone.DamageZone{
		Code:            zone.Forward,
		Systems:         []zone.SystemRef{{ID: "x", SystemType: "beam", HullPoints: 10}},
		TotalHullPoints: 10,
		MaxHullPoints:   40,
	}
	assert.Empty(t, zone.ValidateZone(z))
}

// TestValidateDamageDiagram verifies per-zone diagnostics are concatenated
// and a summary line counts the empty zones.
func TestValidateDamageDiagram(t *testing.T) {
	zones := []zone.DamageZone{
		overLimitZone(),
		{Code: zone.Aft, MaxHullPoints: 40},
		{Code: zone.Port, MaxHullPoints: 40},
	}
	diags := zone.ValidateDamageDiagram(zones)

	joined := strings.Join(diags, "\n")
	assert.Contains(t, joined, "over its hull point limit")
	assert.Contains(t, joined, "2 of 3 zones have no systems assigned")
}

// TestCalculateDamageDiagramStats verifies the single-pass stats identities.
func TestCalculateDamageDiagramStats(t *testing.T) {
	zones := []zone.DamageZone{
		{
			Code: zone.Forward,
			Systems: []zone.SystemRef{
				{ID: "a", SystemType: "beam", HullPoints: 10},
				{ID: "b", SystemType: "sensor", HullPoints: 4},
			},
			TotalHullPoints: 14,
			MaxHullPoints:   40,
		},
		overLimitZone(),
		{Code: zone.Aft, MaxHullPoints: 40},
	}
	stats := zone.CalculateDamageDiagramStats(zones, 5)

	assert.Equal(t, 3, stats.ZoneCount)
	assert.Equal(t, 2, stats.ZonesWithSystems)
	assert.Equal(t, 1, stats.EmptyZones)
	assert.Equal(t, 1, stats.ZonesOverLimit)
	assert.Equal(t, 3, stats.TotalSystemsAssigned)
	assert.Equal(t, 59, stats.TotalHullPointsAssigned)
	assert.Equal(t, 2, stats.UnassignedSystems)
}

// TestCalculateDamageDiagramStats_Property verifies the stats identities for
// arbitrary zone sets: occupancy split partitions the zone count and the
// assigned sums match the zones.
func TestCalculateDamageDiagramStats_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		zoneCount := rapid.IntRange(1, 12).Draw(rt, "zone_count")
		zones := make([]zone.DamageZone, zoneCount)
		for i := range zones {
			zones[i] = zone.DamageZone{Code: zone.AllCodes[i], MaxHullPoints: 40}
			systems := rapid.IntRange(0, 4).Draw(rt, "systems")
			for s := 0; s < systems; s++ {
				zones[i].AddSystem(zone.SystemRef{
					ID:         string(rune('a'+i)) + string(rune('0'+s)),
					SystemType: "beam",
					HullPoints: rapid.IntRange(0, 25).Draw(rt, "hp"),
				})
			}
		}
		total := rapid.IntRange(0, 60).Draw(rt, "total_systems")
		stats := zone.CalculateDamageDiagramStats(zones, total)

		assert.Equal(rt, stats.ZoneCount, stats.ZonesWithSystems+stats.EmptyZones,
			"occupancy split must partition the zone count")
		wantSystems, wantHull := 0, 0
		for _, z := range zones {
			wantSystems += len(z.Systems)
			wantHull += z.TotalHullPoints
		}
		assert.Equal(rt, wantSystems, stats.TotalSystemsAssigned)
		assert.Equal(rt, wantHull, stats.TotalHullPointsAssigned)
		assert.Equal(rt, total-wantSystems, stats.UnassignedSystems)
	})
}

// TestIsDamageDiagramComplete exercises each of the three failure legs and
// the passing case.
func TestIsDamageDiagramComplete(t *testing.T) {
	healthy := func() []zone.DamageZone {
		zones := []zone.DamageZone{
			{Code: zone.Forward, MaxHullPoints: 40},
			{Code: zone.Aft, MaxHullPoints: 40},
		}
		zones[0].AddSystem(zone.SystemRef{ID: "a", SystemType: "beam", HullPoints: 10})
		zones[1].AddSystem(zone.SystemRef{ID: "b", SystemType: "engine", HullPoints: 20})
		return zones
	}

	assert.True(t, zone.IsDamageDiagramComplete(healthy(), 0))
	assert.True(t, zone.IsDamageDiagramComplete(healthy(), -1), "a negative unassigned count still passes")

	assert.False(t, zone.IsDamageDiagramComplete(healthy(), 1), "unassigned systems must block completion")

	empty := healthy()
	empty[1].Systems = nil
	empty[1].Recalculate()
	assert.False(t, zone.IsDamageDiagramComplete(empty, 0), "an empty zone must block completion")

	over := healthy()
	over[0].AddSystem(zone.SystemRef{ID: "c", SystemType: "reactor", HullPoints: 35})
	assert.False(t, zone.IsDamageDiagramComplete(over, 0), "an over-limit zone must block completion")
}
