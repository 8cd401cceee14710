package system

// firepowerRank orders weapon size tiers lightest to heaviest. Lighter
// weapons are struck before heavier ones within the weapon category.
var firepowerRank = map[string]int{
	"Gd": 0, // point-defense gun
	"S":  1,
	"L":  2,
	"M":  3,
	"H":  4,
	"SH": 5, // super-heavy
}

// firepowerUnranked sorts weapons with a missing or unknown tier after
// every known tier.
var firepowerUnranked = len(firepowerRank)

// FirepowerOrder returns the hit-order rank of a weapon size tier.
//
// Precondition: class may be any string, including empty.
// Postcondition: Returns 0 for "Gd" through 5 for "SH"; unknown or empty
// tiers return a rank greater than every known tier.
func FirepowerOrder(class string) int {
	if r, ok := firepowerRank[class]; ok {
		return r
	}
	return firepowerUnranked
}
