// Package system classifies ship systems into damage categories, orders them
// by hit priority, and answers weapon arc/zone compatibility queries.
package system

// Category is the closed, totally ordered set of damage categories. The
// declaration order IS the hit order: weapons are struck first, command
// systems last.
type Category int

const (
	Weapon Category = iota
	Defense
	Sensor
	Communication
	Fuel
	Hangar
	Accommodation
	Miscellaneous
	Support
	Engine
	PowerPlant
	FTLDrive
	Command
)

// String returns a human-readable category label.
func (c Category) String() string {
	switch c {
	case Weapon:
		return "weapon"
	case Defense:
		return "defense"
	case Sensor:
		return "sensor"
	case Communication:
		return "communication"
	case Fuel:
		return "fuel"
	case Hangar:
		return "hangar"
	case Accommodation:
		return "accommodation"
	case Miscellaneous:
		return "miscellaneous"
	case Support:
		return "support"
	case Engine:
		return "engine"
	case PowerPlant:
		return "power plant"
	case FTLDrive:
		return "FTL drive"
	case Command:
		return "command"
	default:
		return "miscellaneous"
	}
}

// Order returns the category's hit-priority index: lower values are hit
// first.
//
// Postcondition: Weapon.Order() == 0 and Command.Order() is the maximum.
func (c Category) Order() int {
	return int(c)
}

// categoryByType maps component type labels to damage categories. The map is
// intentionally permissive: labels it does not know degrade to
// Miscellaneous rather than erroring, so future component types stay usable.
var categoryByType = map[string]Category{
	"beam":       Weapon,
	"laser":      Weapon,
	"cannon":     Weapon,
	"projectile": Weapon,
	"missile":    Weapon,
	"torpedo":    Weapon,
	"mine":       Weapon,

	"shield":        Defense,
	"armor-belt":    Defense,
	"point-defense": Defense,
	"ecm":           Defense,

	"sensor":   Sensor,
	"scanner":  Sensor,
	"targeter": Sensor,

	"comm":        Communication,
	"transceiver": Communication,
	"radio":       Communication,

	"fuel":      Fuel,
	"fuel-tank": Fuel,

	"hangar":      Hangar,
	"launch-bay":  Hangar,
	"cargo-hold":  Hangar,
	"docking-rig": Hangar,

	"quarters":      Accommodation,
	"cabin":         Accommodation,
	"accommodation": Accommodation,

	"life-support": Support,
	"recycler":     Support,
	"workshop":     Support,

	"engine":   Engine,
	"thruster": Engine,
	"drive":    Engine,

	"reactor":    PowerPlant,
	"powerplant": PowerPlant,
	"generator":  PowerPlant,
	"battery":    PowerPlant,

	"ftl":        FTLDrive,
	"jump-drive": FTLDrive,
	"hyperdrive": FTLDrive,

	"cockpit": Command,
	"bridge":  Command,
	"cic":     Command,
}

// CategoryFor classifies a component type label.
//
// Precondition: systemType may be any string.
// Postcondition: Returns the mapped category, or Miscellaneous for labels
// the ruleset does not recognize.
func CategoryFor(systemType string) Category {
	if c, ok := categoryByType[systemType]; ok {
		return c
	}
	return Miscellaneous
}
