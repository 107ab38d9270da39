// Package engine implements the constraint-checking and backtracking search
// that assigns one exercise slot per activity request. It is a pure,
// synchronous, single-threaded core: every invocation owns its own search
// state, so concurrent Solve calls never share mutable data.
package engine

import (
	"sort"

	"github.com/prpo-skupina4/optimizator-ms/internal/models"
)

// overlaps reports whether two slots occupy intersecting half-open intervals
// on the same day. Slots that merely touch at an endpoint do not overlap;
// slots on different days never overlap.
func overlaps(a, b models.Slot) bool {
	if a.Day != b.Day {
		return false
	}
	return a.StartMinutes() < b.EndMinutes() && b.StartMinutes() < a.EndMinutes()
}

// overlapsAny reports whether the slot overlaps any of the placed slots.
func overlapsAny(slot models.Slot, placed []models.Slot) bool {
	for _, other := range placed {
		if overlaps(slot, other) {
			return true
		}
	}
	return false
}

// sortSlots orders slots by (day, start time) ascending, the observable
// output contract for rendered timetables.
func sortSlots(slots []models.Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Day != slots[j].Day {
			return slots[i].Day < slots[j].Day
		}
		return slots[i].StartMinutes() < slots[j].StartMinutes()
	})
}
