package engine

import (
	"sort"

	"github.com/prpo-skupina4/optimizator-ms/internal/models"
)

// TotalGapMinutes sums the idle minutes between consecutive occupied
// intervals across all days. The sweep merges overlapping intervals so the
// result is independent of input order.
func TotalGapMinutes(slots []models.Slot) int {
	byDay := make(map[int][]models.Slot)
	for _, slot := range slots {
		byDay[slot.Day] = append(byDay[slot.Day], slot)
	}

	total := 0
	for _, day := range byDay {
		if len(day) < 2 {
			continue
		}
		sort.SliceStable(day, func(i, j int) bool {
			return day[i].StartMinutes() < day[j].StartMinutes()
		})
		end := day[0].EndMinutes()
		for _, slot := range day[1:] {
			if slot.StartMinutes() > end {
				total += slot.StartMinutes() - end
			}
			if slot.EndMinutes() > end {
				end = slot.EndMinutes()
			}
		}
	}
	return total
}

// nearestGapMinutes returns the minimal same-day distance from the slot to
// the closest placed interval. It is 0 when no slot is placed on that day
// and 0 when the slot overlaps a placed interval; such candidates will be
// rejected later but must not dominate the ordering.
func nearestGapMinutes(slot models.Slot, placed []models.Slot) int {
	const unset = 1 << 30
	nearest := unset
	start := slot.StartMinutes()
	end := slot.EndMinutes()
	for _, other := range placed {
		if other.Day != slot.Day {
			continue
		}
		switch {
		case end <= other.StartMinutes():
			if gap := other.StartMinutes() - end; gap < nearest {
				nearest = gap
			}
		case other.EndMinutes() <= start:
			if gap := start - other.EndMinutes(); gap < nearest {
				nearest = gap
			}
		default:
			nearest = 0
		}
	}
	if nearest == unset {
		return 0
	}
	return nearest
}
