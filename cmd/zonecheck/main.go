// Command zonecheck loads a ship design file, derives its damage-zone
// topology and hit-location chart, and reports assignment diagnostics. It
// exits nonzero only on I/O or parse failures; rules diagnostics are
// advisory output.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/cory-johannsen/shipwright/internal/config"
	"github.com/cory-johannsen/shipwright/internal/observability"
	"github.com/cory-johannsen/shipwright/internal/ship/design"
	"github.com/cory-johannsen/shipwright/internal/ship/dice"
	"github.com/cory-johannsen/shipwright/internal/ship/hitchart"
	"github.com/cory-johannsen/shipwright/internal/ship/ruleset"
	"github.com/cory-johannsen/shipwright/internal/ship/system"
	"github.com/cory-johannsen/shipwright/internal/ship/zone"
)

func main() {
	configPath := flag.String("config", "", "optional path to a config file")
	designPath := flag.String("design", "", "path to the ship design YAML file")
	rolls := flag.Int("rolls", -1, "simulate N hit rolls per direction (-1 uses the config value)")
	flag.Parse()

	if *designPath == "" {
		fmt.Fprintln(os.Stderr, "usage: zonecheck -design <file> [-config <file>] [-rolls <n>]")
		os.Exit(1)
	}

	cfg := config.Defaults()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *rolls >= 0 {
		cfg.Simulation.Rolls = *rolls
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, *designPath, logger); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, designPath string, logger *zap.Logger) error {
	rs := ruleset.Default()
	if cfg.Data.Dir != "" {
		if err := rs.LoadDir(cfg.Data.Dir); err != nil {
			return err
		}
		logger.Info("loaded ruleset overrides", zap.String("dir", cfg.Data.Dir))
	}

	d, err := design.Load(designPath)
	if err != nil {
		return err
	}
	d.AssignIDs(system.UUIDGenerator{})

	hull := d.HullDescriptor()
	zoneCfg, found := rs.ZoneConfigForHull(hull)
	if !found {
		logger.Warn("ship class has no zone configuration; using the smallest tier",
			zap.Stringer("class", hull.Class))
	}
	limits, found := rs.ZoneLimitForHull(hull.ID)
	if !found {
		logger.Warn("hull type missing from the limits table; using the default zone limit",
			zap.String("hull", hull.ID),
			zap.Int("zone_limit", limits.ZoneLimit))
	}

	zones, diags := d.BuildZones(rs)
	chart, procedural := rs.HitLocationChartForHull(hull)
	if procedural {
		logger.Info("no authored hit table for this configuration; chart was synthesized")
	}

	fmt.Printf("%s: %s %s, %d hull points\n", d.Name, hull.Class, hull.ID, hull.HullPoints)
	fmt.Printf("zones: %d, hit die: d%d, per-zone limit: %d\n\n", zoneCfg.ZoneCount, zoneCfg.HitDie, limits.ZoneLimit)

	printZones(zones)
	printChart(chart)
	printStats(zones, len(d.Systems), logger)

	for _, diag := range diags {
		fmt.Printf("note: %s\n", diag)
	}
	for _, diag := range zone.ValidateDamageDiagram(zones) {
		fmt.Printf("note: %s\n", diag)
	}

	if cfg.Simulation.Rolls > 0 {
		simulate(chart, cfg.Simulation, logger)
	}
	return nil
}

func printZones(zones []zone.DamageZone) {
	for _, z := range zones {
		fmt.Printf("zone %-4s %3d/%3d hull points\n", z.Code, z.TotalHullPoints, z.MaxHullPoints)
		for _, ref := range system.SortByDamagePriority(z.Systems) {
			line := fmt.Sprintf("  %-14s %3d hp  [%s]", ref.SystemType, ref.HullPoints, system.CategoryFor(ref.SystemType))
			if ref.FirepowerClass != "" {
				line += " " + ref.FirepowerClass
			}
			fmt.Println(line)
		}
	}
	fmt.Println()
}

func printChart(chart hitchart.Chart) {
	fmt.Printf("hit location chart (d%d):\n", chart.HitDie)
	for _, col := range chart.Columns {
		fmt.Printf("  %-9s", col.Direction)
		for _, e := range col.Entries {
			if e.MinRoll == e.MaxRoll {
				fmt.Printf(" %d:%s", e.MinRoll, e.Zone)
			} else {
				fmt.Printf(" %d-%d:%s", e.MinRoll, e.MaxRoll, e.Zone)
			}
		}
		fmt.Println()
	}
	fmt.Println()
}

func printStats(zones []zone.DamageZone, totalSystems int, logger *zap.Logger) {
	stats := zone.CalculateDamageDiagramStats(zones, totalSystems)
	if stats.TotalSystemsAssigned > totalSystems {
		// The engine does not guard this; the boundary does.
		logger.Warn("assigned system count exceeds the design's system total",
			zap.Int("assigned", stats.TotalSystemsAssigned),
			zap.Int("total", totalSystems))
	}

	fmt.Printf("assigned: %d of %d systems, %d hull points\n",
		stats.TotalSystemsAssigned, totalSystems, stats.TotalHullPointsAssigned)
	fmt.Printf("zones occupied: %d, empty: %d, over limit: %d\n",
		stats.ZonesWithSystems, stats.EmptyZones, stats.ZonesOverLimit)
	if zone.IsDamageDiagramComplete(zones, stats.UnassignedSystems) {
		fmt.Println("damage diagram: complete")
	} else {
		fmt.Println("damage diagram: incomplete")
	}
	fmt.Println()
}

func simulate(chart hitchart.Chart, sim config.SimulationConfig, logger *zap.Logger) {
	var src dice.Source
	if sim.Seed != 0 {
		src = dice.NewSeededSource(sim.Seed)
	} else {
		src = dice.NewCryptoSource()
	}
	roller := hitchart.NewRoller(src, logger)

	fmt.Printf("simulated hits (%d rolls per direction):\n", sim.Rolls)
	for _, col := range chart.Columns {
		tally := make(map[zone.Code]int)
		for i := 0; i < sim.Rolls; i++ {
			if hit, ok := roller.Roll(chart, col.Direction); ok {
				tally[hit.Zone]++
			}
		}
		fmt.Printf("  %-9s", col.Direction)
		for _, e := range col.Entries {
			fmt.Printf(" %s:%d", e.Zone, tally[e.Zone])
		}
		fmt.Println()
	}
}
