package engine

import "github.com/prpo-skupina4/optimizator-ms/internal/models"

// MeetsRequirements is the feasibility predicate over a slot set: no slot on
// an excluded day, every slot inside the global time window, no slot crossing
// a blocked break. It is deliberately re-evaluated on the full set wherever
// it is needed; the sets involved are a handful of slots at most.
func MeetsRequirements(slots []models.Slot, reqs models.Requirements) bool {
	return clearOfExcludedDays(slots, reqs.ExcludedDays) &&
		withinWindow(slots, reqs.Start, reqs.End) &&
		clearOfBreaks(slots, reqs.Breaks)
}

func clearOfExcludedDays(slots []models.Slot, excluded []int) bool {
	if len(excluded) == 0 {
		return true
	}
	days := daySet(excluded)
	for _, slot := range slots {
		if days[slot.Day] {
			return false
		}
	}
	return true
}

func withinWindow(slots []models.Slot, start, end *models.TimeOfDay) bool {
	if start != nil {
		bound := start.Minutes()
		for _, slot := range slots {
			if slot.StartMinutes() < bound {
				return false
			}
		}
	}
	if end != nil {
		bound := end.Minutes()
		for _, slot := range slots {
			if slot.EndMinutes() > bound {
				return false
			}
		}
	}
	return true
}

// clearOfBreaks checks every break against every same-day slot. Touching a
// break endpoint is allowed, matching the half-open overlap semantics.
func clearOfBreaks(slots []models.Slot, breaks []models.BreakWindow) bool {
	for _, brk := range breaks {
		brkStart := brk.Start.Minutes()
		brkEnd := brk.EndMinutes()
		for _, slot := range slots {
			if slot.Day != brk.Day {
				continue
			}
			if slot.StartMinutes() < brkEnd && brkStart < slot.EndMinutes() {
				return false
			}
		}
	}
	return true
}

func daySet(days []int) map[int]bool {
	set := make(map[int]bool, len(days))
	for _, day := range days {
		set[day] = true
	}
	return set
}
