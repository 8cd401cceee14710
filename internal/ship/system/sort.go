package system

import (
	"sort"

	"github.com/cory-johannsen/shipwright/internal/ship/zone"
)

// SortByDamagePriority orders systems by what gets hit first within a zone.
// The composite key is:
//
//  1. damage category order, ascending (weapons first, command last),
//  2. among weapon pairs only, firepower rank ascending (lighter first),
//  3. otherwise hull points descending (bigger systems soak hits first).
//
// The sort is stable: ties at every key level keep their original relative
// order, which sort.SliceStable guarantees.
//
// Precondition: systems may be nil or any length.
// Postcondition: Returns a new slice; the input is not mutated.
func SortByDamagePriority(systems []zone.SystemRef) []zone.SystemRef {
	sorted := make([]zone.SystemRef, len(systems))
	copy(sorted, systems)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		ca, cb := CategoryFor(a.SystemType), CategoryFor(b.SystemType)
		if ca != cb {
			return ca.Order() < cb.Order()
		}
		if ca == Weapon {
			fa, fb := FirepowerOrder(a.FirepowerClass), FirepowerOrder(b.FirepowerClass)
			if fa != fb {
				return fa < fb
			}
			return false
		}
		return a.HullPoints > b.HullPoints
	})
	return sorted
}
