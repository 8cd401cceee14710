package ruleset

import (
	"github.com/cory-johannsen/shipwright/internal/ship/hitchart"
	"github.com/cory-johannsen/shipwright/internal/ship/zone"
)

// defaultZoneConfigs is the stock per-class zone configuration table. The
// two small-craft rows are the independent size tiers.
var defaultZoneConfigs = []zone.ClassZoneConfig{
	{
		Class:     zone.SmallCraft,
		ZoneCount: 2,
		Zones:     []zone.Code{zone.Forward, zone.Aft},
		HitDie:    6,
	},
	{
		Class:     zone.SmallCraft,
		ZoneCount: 4,
		Zones:     []zone.Code{zone.Forward, zone.ForwardCenter, zone.AftCenter, zone.Aft},
		HitDie:    8,
	},
	{
		Class:     zone.Light,
		ZoneCount: 6,
		Zones: []zone.Code{
			zone.Forward, zone.ForwardPort, zone.ForwardStar,
			zone.AftPort, zone.AftStar, zone.Aft,
		},
		HitDie: 8,
	},
	{
		Class:     zone.Medium,
		ZoneCount: 8,
		Zones: []zone.Code{
			zone.Forward, zone.ForwardPort, zone.ForwardCenter, zone.ForwardStar,
			zone.AftPort, zone.AftCenter, zone.AftStar, zone.Aft,
		},
		HitDie: 12,
	},
	{
		Class:     zone.Heavy,
		ZoneCount: 8,
		Zones: []zone.Code{
			zone.Forward, zone.ForwardPort, zone.ForwardCenter, zone.ForwardStar,
			zone.AftPort, zone.AftCenter, zone.AftStar, zone.Aft,
		},
		HitDie: 20,
	},
	{
		Class:     zone.SuperHeavy,
		ZoneCount: 12,
		Zones: []zone.Code{
			zone.Forward, zone.FarForwardPort, zone.FarForwardCenter, zone.FarForwardStar,
			zone.ForwardPort, zone.ForwardStar, zone.AftPort, zone.AftStar,
			zone.FarAftPort, zone.FarAftCenter, zone.FarAftStar, zone.Aft,
		},
		HitDie: 20,
	},
}

// defaultHullLimits is the stock hull catalog's limits table.
var defaultHullLimits = map[string]zone.HullLimits{
	"shuttle":       {HullPoints: 12, ZoneCount: 2, ZoneLimit: 10},
	"gunboat":       {HullPoints: 18, ZoneCount: 2, ZoneLimit: 12},
	"cutter":        {HullPoints: 45, ZoneCount: 4, ZoneLimit: 20},
	"corvette":      {HullPoints: 60, ZoneCount: 4, ZoneLimit: 25},
	"frigate":       {HullPoints: 90, ZoneCount: 6, ZoneLimit: 30},
	"destroyer":     {HullPoints: 110, ZoneCount: 6, ZoneLimit: 35},
	"light-cruiser": {HullPoints: 140, ZoneCount: 6, ZoneLimit: 40},
	"heavy-cruiser": {HullPoints: 200, ZoneCount: 8, ZoneLimit: 55},
	"carrier":       {HullPoints: 240, ZoneCount: 8, ZoneLimit: 65},
	"battlecruiser": {HullPoints: 300, ZoneCount: 8, ZoneLimit: 80},
	"battleship":    {HullPoints: 380, ZoneCount: 8, ZoneLimit: 100},
	"dreadnought":   {HullPoints: 520, ZoneCount: 12, ZoneLimit: 120},
	"fortress":      {HullPoints: 700, ZoneCount: 12, ZoneLimit: 150},
}

// defaultHitTables holds the authored hit-location tables shipped with the
// rules. Authored rows are hand-tuned: the forward column of the 2-zone
// table deliberately front-loads two thirds of the die instead of the even
// split the procedural builder would produce.
var defaultHitTables = map[string]hitchart.Table{
	"6-die": {
		hitchart.DirForward: {
			{MinRoll: 1, MaxRoll: 4, Zone: zone.Forward},
			{MinRoll: 5, MaxRoll: 6, Zone: zone.Aft},
		},
		hitchart.DirAft: {
			{MinRoll: 1, MaxRoll: 2, Zone: zone.Forward},
			{MinRoll: 3, MaxRoll: 6, Zone: zone.Aft},
		},
		hitchart.DirPort: {
			{MinRoll: 1, MaxRoll: 3, Zone: zone.Forward},
			{MinRoll: 4, MaxRoll: 6, Zone: zone.Aft},
		},
		hitchart.DirStarboard: {
			{MinRoll: 1, MaxRoll: 3, Zone: zone.Forward},
			{MinRoll: 4, MaxRoll: 6, Zone: zone.Aft},
		},
		hitchart.DirHigh: {
			{MinRoll: 1, MaxRoll: 3, Zone: zone.Forward},
			{MinRoll: 4, MaxRoll: 6, Zone: zone.Aft},
		},
		hitchart.DirLow: {
			{MinRoll: 1, MaxRoll: 3, Zone: zone.Forward},
			{MinRoll: 4, MaxRoll: 6, Zone: zone.Aft},
		},
	},
	"8-die-4zone": {
		hitchart.DirForward: {
			{MinRoll: 1, MaxRoll: 3, Zone: zone.Forward},
			{MinRoll: 4, MaxRoll: 5, Zone: zone.ForwardCenter},
			{MinRoll: 6, MaxRoll: 7, Zone: zone.AftCenter},
			{MinRoll: 8, MaxRoll: 8, Zone: zone.Aft},
		},
		hitchart.DirAft: {
			{MinRoll: 1, MaxRoll: 1, Zone: zone.Forward},
			{MinRoll: 2, MaxRoll: 3, Zone: zone.ForwardCenter},
			{MinRoll: 4, MaxRoll: 5, Zone: zone.AftCenter},
			{MinRoll: 6, MaxRoll: 8, Zone: zone.Aft},
		},
		hitchart.DirPort: {
			{MinRoll: 1, MaxRoll: 2, Zone: zone.Forward},
			{MinRoll: 3, MaxRoll: 4, Zone: zone.ForwardCenter},
			{MinRoll: 5, MaxRoll: 6, Zone: zone.AftCenter},
			{MinRoll: 7, MaxRoll: 8, Zone: zone.Aft},
		},
		hitchart.DirStarboard: {
			{MinRoll: 1, MaxRoll: 2, Zone: zone.Forward},
			{MinRoll: 3, MaxRoll: 4, Zone: zone.ForwardCenter},
			{MinRoll: 5, MaxRoll: 6, Zone: zone.AftCenter},
			{MinRoll: 7, MaxRoll: 8, Zone: zone.Aft},
		},
		hitchart.DirHigh: {
			{MinRoll: 1, MaxRoll: 2, Zone: zone.Forward},
			{MinRoll: 3, MaxRoll: 4, Zone: zone.ForwardCenter},
			{MinRoll: 5, MaxRoll: 6, Zone: zone.AftCenter},
			{MinRoll: 7, MaxRoll: 8, Zone: zone.Aft},
		},
		hitchart.DirLow: {
			{MinRoll: 1, MaxRoll: 2, Zone: zone.Forward},
			{MinRoll: 3, MaxRoll: 4, Zone: zone.ForwardCenter},
			{MinRoll: 5, MaxRoll: 6, Zone: zone.AftCenter},
			{MinRoll: 7, MaxRoll: 8, Zone: zone.Aft},
		},
	},
}

// Default returns a Ruleset populated with the stock tables.
//
// Postcondition: Returns a fresh *Ruleset on every call; mutating one
// default Ruleset never affects another.
func Default() *Ruleset {
	r := New()
	for _, cfg := range defaultZoneConfigs {
		r.RegisterZoneConfig(cfg)
	}
	for id, limits := range defaultHullLimits {
		r.RegisterHullLimits(id, limits)
	}
	for key, t := range defaultHitTables {
		r.RegisterHitTable(key, t)
	}
	return r
}
