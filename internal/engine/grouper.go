package engine

import (
	"sort"

	"github.com/prpo-skupina4/optimizator-ms/internal/models"
)

// MandatorySlots returns the fixed commitments from an existing schedule.
// The canonical classification is the broad rule: any slot whose kind is not
// a lab or tutorial exercise is mandatory. Exercise slots in the existing
// schedule are dropped; requests are satisfied from the candidate pool only.
func MandatorySlots(slots []models.Slot) []models.Slot {
	mandatory := make([]models.Slot, 0, len(slots))
	for _, slot := range slots {
		if slot.Mandatory() {
			mandatory = append(mandatory, slot)
		}
	}
	return mandatory
}

// anyOverlap reports whether any two slots in the set overlap pairwise.
func anyOverlap(slots []models.Slot) bool {
	for i := 0; i < len(slots); i++ {
		for j := i + 1; j < len(slots); j++ {
			if overlaps(slots[i], slots[j]) {
				return true
			}
		}
	}
	return false
}

// CompleteRequests returns a copy of reqs whose request list covers every
// distinct subject appearing in the existing schedule exactly once. Requests
// already present keep their sub-window and day; the first occurrence of a
// subject wins. Subjects found only in the schedule get an any-day request
// with no sub-window. The caller's Requirements value is never mutated.
func CompleteRequests(reqs models.Requirements, schedule models.Schedule) models.Requirements {
	seen := make(map[int64]bool, len(reqs.Requests))
	requests := make([]models.ActivityRequest, 0, len(reqs.Requests))
	for _, request := range reqs.Requests {
		if seen[request.Subject.ID] {
			continue
		}
		seen[request.Subject.ID] = true
		requests = append(requests, request)
	}
	for _, slot := range schedule.Slots {
		if slot.Subject == nil || seen[slot.Subject.ID] {
			continue
		}
		seen[slot.Subject.ID] = true
		requests = append(requests, models.ActivityRequest{Subject: *slot.Subject})
	}
	completed := reqs
	completed.Requests = requests
	return completed
}

// BuildGroups filters the candidate pool into one group of eligible slots
// per request. An empty group signals guaranteed infeasibility for that
// request.
func BuildGroups(requests []models.ActivityRequest, pool []models.Slot, reqs models.Requirements) [][]models.Slot {
	excluded := daySet(reqs.ExcludedDays)
	groups := make([][]models.Slot, 0, len(requests))
	for _, request := range requests {
		group := make([]models.Slot, 0)
		for _, candidate := range pool {
			if !candidate.EligibleCandidate() || candidate.Subject.ID != request.Subject.ID {
				continue
			}
			if excluded[candidate.Day] {
				continue
			}
			if !withinWindow([]models.Slot{candidate}, reqs.Start, reqs.End) {
				continue
			}
			if request.Day != nil && candidate.Day != *request.Day {
				continue
			}
			if request.Start != nil && candidate.StartMinutes() < request.Start.Minutes() {
				continue
			}
			if request.End != nil && candidate.EndMinutes() > request.End.Minutes() {
				continue
			}
			group = append(group, candidate)
		}
		groups = append(groups, group)
	}
	return groups
}

// sortGroupsBySize orders groups ascending by candidate count, keeping the
// original order on ties. Smallest-domain-first cuts the branching factor
// early in the search.
func sortGroupsBySize(groups [][]models.Slot) {
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i]) < len(groups[j])
	})
}
