package hitchart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/shipwright/internal/ship/hitchart"
	"github.com/cory-johannsen/shipwright/internal/ship/zone"
)

// TestTableKey verifies the legacy bare key for the 2-zone d6 case and the
// keyed scheme for everything else.
func TestTableKey(t *testing.T) {
	assert.Equal(t, "6-die", hitchart.TableKey(6, 2))
	assert.Equal(t, "8-die-4zone", hitchart.TableKey(8, 4))
	assert.Equal(t, "12-die-8zone", hitchart.TableKey(12, 8))
	assert.Equal(t, "20-die-12zone", hitchart.TableKey(20, 12))
	assert.Equal(t, "6-die-4zone", hitchart.TableKey(6, 4), "only the 2-zone d6 case uses the bare key")
}

// TestCreateDefault_ProceduralForward verifies the d8/4-zone procedural
// split for an attack from forward: two rolls per zone, axis-first order.
func TestCreateDefault_ProceduralForward(t *testing.T) {
	zones := []zone.Code{zone.Forward, zone.ForwardCenter, zone.AftCenter, zone.Aft}
	chart, procedural := hitchart.CreateDefault(zones, 8, nil)

	assert.True(t, procedural, "no authored table was supplied")
	assert.Equal(t, 8, chart.HitDie)

	col, ok := chart.Column(hitchart.DirForward)
	require.True(t, ok)
	want := []hitchart.Entry{
		{MinRoll: 1, MaxRoll: 2, Zone: zone.Forward},
		{MinRoll: 3, MaxRoll: 4, Zone: zone.ForwardCenter},
		{MinRoll: 5, MaxRoll: 6, Zone: zone.AftCenter},
		{MinRoll: 7, MaxRoll: 8, Zone: zone.Aft},
	}
	assert.Equal(t, want, col.Entries)
}

// TestCreateDefault_ProceduralAftReorders verifies the aft column puts the
// aft zone on the low rolls.
func TestCreateDefault_ProceduralAftReorders(t *testing.T) {
	zones := []zone.Code{zone.Forward, zone.ForwardCenter, zone.AftCenter, zone.Aft}
	chart, _ := hitchart.CreateDefault(zones, 8, nil)

	col, ok := chart.Column(hitchart.DirAft)
	require.True(t, ok)
	assert.Equal(t, zone.Aft, col.Entries[0].Zone, "the aft zone is closest to an aft attack")
	assert.Equal(t, zone.Forward, col.Entries[len(col.Entries)-1].Zone)
}

// TestCreateDefault_ExtraRollsGoFirst verifies that when the die does not
// divide evenly, the zones nearest the attack axis receive the extra rolls.
func TestCreateDefault_ExtraRollsGoFirst(t *testing.T) {
	zones := []zone.Code{
		zone.Forward, zone.ForwardPort, zone.ForwardStar,
		zone.AftPort, zone.AftStar, zone.Aft,
	}
	chart, _ := hitchart.CreateDefault(zones, 8, nil)

	col, ok := chart.Column(hitchart.DirForward)
	require.True(t, ok)
	// 8 rolls over 6 zones: the first two zones get 2 rolls, the rest 1.
	assert.Equal(t, hitchart.Entry{MinRoll: 1, MaxRoll: 2, Zone: zone.Forward}, col.Entries[0])
	assert.Equal(t, 2, col.Entries[1].MaxRoll-col.Entries[1].MinRoll+1)
	assert.Equal(t, 1, col.Entries[2].MaxRoll-col.Entries[2].MinRoll+1)
	assert.Equal(t, 8, col.Entries[5].MaxRoll)
}

// TestCreateDefault_HighLowUseConfigurationOrder verifies the dorsal and
// ventral columns keep the zone list unreordered.
func TestCreateDefault_HighLowUseConfigurationOrder(t *testing.T) {
	// Deliberately aft-first, so a reorder would be visible.
	zones := []zone.Code{zone.Aft, zone.AftCenter, zone.ForwardCenter, zone.Forward}
	chart, _ := hitchart.CreateDefault(zones, 8, nil)

	for _, d := range []hitchart.Direction{hitchart.DirHigh, hitchart.DirLow} {
		col, ok := chart.Column(d)
		require.True(t, ok, "direction %s", d)
		assert.Equal(t, zone.Aft, col.Entries[0].Zone, "direction %s must keep configuration order", d)
		assert.Equal(t, zone.Forward, col.Entries[3].Zone)
	}

	fwd, _ := chart.Column(hitchart.DirForward)
	assert.Equal(t, zone.Forward, fwd.Entries[0].Zone, "cardinal columns still reorder")
}

// TestCreateDefault_AuthoredWins verifies an authored table takes priority
// over the procedural split.
func TestCreateDefault_AuthoredWins(t *testing.T) {
	zones := []zone.Code{zone.Forward, zone.Aft}
	authored := map[string]hitchart.Table{
		"6-die": {
			hitchart.DirForward: {
				{MinRoll: 1, MaxRoll: 4, Zone: zone.Forward},
				{MinRoll: 5, MaxRoll: 6, Zone: zone.Aft},
			},
		},
	}
	chart, procedural := hitchart.CreateDefault(zones, 6, authored)

	assert.False(t, procedural)
	col, ok := chart.Column(hitchart.DirForward)
	require.True(t, ok)
	assert.Equal(t, 4, col.Entries[0].MaxRoll, "the authored front-loaded split must survive")

	_, ok = chart.Column(hitchart.DirAft)
	assert.False(t, ok, "authored charts carry only the directions the table defines")
}

// TestCreateDefault_AuthoredKeyMismatchFallsBack verifies a non-matching
// authored key still produces a procedural chart.
func TestCreateDefault_AuthoredKeyMismatchFallsBack(t *testing.T) {
	zones := []zone.Code{zone.Forward, zone.Aft}
	authored := map[string]hitchart.Table{"8-die-4zone": {}}

	chart, procedural := hitchart.CreateDefault(zones, 6, authored)
	assert.True(t, procedural)
	assert.Len(t, chart.Columns, 6)
}

// TestCreateDefault_Preconditions verifies the documented panics.
func TestCreateDefault_Preconditions(t *testing.T) {
	assert.Panics(t, func() { hitchart.CreateDefault(nil, 6, nil) })
	assert.Panics(t, func() {
		zones := []zone.Code{zone.Forward, zone.ForwardCenter, zone.AftCenter, zone.Aft}
		hitchart.CreateDefault(zones, 2, nil)
	})
}

// TestCreateDefault_PartitionProperty verifies the chart invariant for
// arbitrary configurations: every column partitions [1, hitDie] exactly and
// covers the zone set exactly once.
func TestCreateDefault_PartitionProperty(t *testing.T) {
	dice := []int{6, 8, 12, 20}

	rapid.Check(t, func(rt *rapid.T) {
		die := rapid.SampledFrom(dice).Draw(rt, "die")
		count := rapid.IntRange(1, die).Draw(rt, "count")

		// Pick `count` distinct codes.
		idxs := rapid.SliceOfNDistinct(
			rapid.IntRange(0, len(zone.AllCodes)-1), count, count, rapid.ID[int],
		).Draw(rt, "idxs")
		zones := make([]zone.Code, count)
		for i, idx := range idxs {
			zones[i] = zone.AllCodes[idx]
		}

		chart, procedural := hitchart.CreateDefault(zones, die, nil)
		assert.True(rt, procedural)
		require.Len(rt, chart.Columns, 6)

		for _, col := range chart.Columns {
			require.NoError(rt, hitchart.ValidateEntries(col.Entries, die),
				"direction %s must partition [1, %d]", col.Direction, die)
			require.Len(rt, col.Entries, count)

			covered := make(map[zone.Code]bool, count)
			for _, e := range col.Entries {
				covered[e.Zone] = true
			}
			for _, code := range zones {
				assert.True(rt, covered[code], "direction %s must cover zone %s", col.Direction, code)
			}
		}
	})
}
