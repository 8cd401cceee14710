package ruleset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/shipwright/internal/ship/hitchart"
	"github.com/cory-johannsen/shipwright/internal/ship/zone"
)

// dataFile is the YAML document shape for a ruleset data file. A file may
// carry any combination of the three table kinds.
type dataFile struct {
	ZoneConfigs []zoneConfigDoc `yaml:"zone_configs"`
	Hulls       []hullDoc       `yaml:"hulls"`
	HitTables   []hitTableDoc   `yaml:"hit_tables"`
}

type zoneConfigDoc struct {
	Class  string   `yaml:"class"`
	Zones  []string `yaml:"zones"`
	HitDie int      `yaml:"hit_die"`
}

type hullDoc struct {
	ID         string `yaml:"id"`
	HullPoints int    `yaml:"hull_points"`
	ZoneCount  int    `yaml:"zone_count"`
	ZoneLimit  int    `yaml:"zone_limit"`
}

type hitTableDoc struct {
	Key     string         `yaml:"key"`
	HitDie  int            `yaml:"hit_die"`
	Columns []hitColumnDoc `yaml:"columns"`
}

type hitColumnDoc struct {
	Direction string        `yaml:"direction"`
	Entries   []hitEntryDoc `yaml:"entries"`
}

type hitEntryDoc struct {
	// Roll is [low] for a single-roll entry or [low, high] for a range.
	Roll []int  `yaml:"roll"`
	Zone string `yaml:"zone"`
}

// LoadDir reads every .yaml file in dir and registers its rows, overriding
// any previously registered rows with the same key. Files are applied in
// lexical order so overrides are deterministic.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns nil and registers all rows, or a non-nil error
// describing the first malformed file; rows from files before the failing
// one remain registered.
func (r *Ruleset) LoadDir(dir string) error {
	files, err := yamlFiles(dir)
	if err != nil {
		return err
	}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		var doc dataFile
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing ruleset file %s: %w", path, err)
		}
		if err := r.applyFile(doc); err != nil {
			return fmt.Errorf("applying ruleset file %s: %w", path, err)
		}
	}
	return nil
}

func (r *Ruleset) applyFile(doc dataFile) error {
	for _, c := range doc.ZoneConfigs {
		cfg, err := c.toConfig()
		if err != nil {
			return err
		}
		r.RegisterZoneConfig(cfg)
	}
	for _, h := range doc.Hulls {
		if h.ID == "" {
			return fmt.Errorf("hull row is missing an id")
		}
		if h.ZoneCount <= 0 || h.ZoneLimit <= 0 {
			return fmt.Errorf("hull %q must have positive zone_count and zone_limit", h.ID)
		}
		r.RegisterHullLimits(h.ID, zone.HullLimits{
			HullPoints: h.HullPoints,
			ZoneCount:  h.ZoneCount,
			ZoneLimit:  h.ZoneLimit,
		})
	}
	for _, t := range doc.HitTables {
		table, err := t.toTable()
		if err != nil {
			return err
		}
		r.RegisterHitTable(t.Key, table)
	}
	return nil
}

func (c zoneConfigDoc) toConfig() (zone.ClassZoneConfig, error) {
	class, err := zone.ParseShipClass(c.Class)
	if err != nil {
		return zone.ClassZoneConfig{}, err
	}
	if len(c.Zones) == 0 {
		return zone.ClassZoneConfig{}, fmt.Errorf("zone config for %q has no zones", c.Class)
	}
	seen := make(map[zone.Code]bool, len(c.Zones))
	codes := make([]zone.Code, 0, len(c.Zones))
	for _, s := range c.Zones {
		code := zone.Code(s)
		if !code.IsKnown() {
			return zone.ClassZoneConfig{}, fmt.Errorf("zone config for %q names unknown zone code %q", c.Class, s)
		}
		if seen[code] {
			return zone.ClassZoneConfig{}, fmt.Errorf("zone config for %q repeats zone code %q", c.Class, s)
		}
		seen[code] = true
		codes = append(codes, code)
	}
	switch c.HitDie {
	case 6, 8, 12, 20:
	default:
		return zone.ClassZoneConfig{}, fmt.Errorf("zone config for %q has unsupported hit die %d", c.Class, c.HitDie)
	}
	if c.HitDie < len(codes) {
		return zone.ClassZoneConfig{}, fmt.Errorf("zone config for %q: hit die %d cannot cover %d zones", c.Class, c.HitDie, len(codes))
	}
	return zone.ClassZoneConfig{
		Class:     class,
		ZoneCount: len(codes),
		Zones:     codes,
		HitDie:    c.HitDie,
	}, nil
}

func (t hitTableDoc) toTable() (hitchart.Table, error) {
	if t.Key == "" {
		return nil, fmt.Errorf("hit table is missing a key")
	}
	if len(t.Columns) == 0 {
		return nil, fmt.Errorf("hit table %q has no columns", t.Key)
	}
	table := make(hitchart.Table, len(t.Columns))
	for _, col := range t.Columns {
		dir, err := hitchart.ParseDirection(col.Direction)
		if err != nil {
			return nil, fmt.Errorf("hit table %q: %w", t.Key, err)
		}
		if _, dup := table[dir]; dup {
			return nil, fmt.Errorf("hit table %q repeats direction %s", t.Key, dir)
		}
		entries := make([]hitchart.Entry, 0, len(col.Entries))
		for _, e := range col.Entries {
			entry, err := e.toEntry()
			if err != nil {
				return nil, fmt.Errorf("hit table %q, direction %s: %w", t.Key, dir, err)
			}
			entries = append(entries, entry)
		}
		if err := hitchart.ValidateEntries(entries, t.HitDie); err != nil {
			return nil, fmt.Errorf("hit table %q, direction %s: %w", t.Key, dir, err)
		}
		table[dir] = entries
	}
	return table, nil
}

func (e hitEntryDoc) toEntry() (hitchart.Entry, error) {
	code := zone.Code(e.Zone)
	if !code.IsKnown() {
		return hitchart.Entry{}, fmt.Errorf("unknown zone code %q", e.Zone)
	}
	switch len(e.Roll) {
	case 1:
		return hitchart.Entry{MinRoll: e.Roll[0], MaxRoll: e.Roll[0], Zone: code}, nil
	case 2:
		return hitchart.Entry{MinRoll: e.Roll[0], MaxRoll: e.Roll[1], Zone: code}, nil
	default:
		return hitchart.Entry{}, fmt.Errorf("roll must be [low] or [low, high], got %v", e.Roll)
	}
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}
