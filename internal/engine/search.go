package engine

import (
	"sort"

	"github.com/prpo-skupina4/optimizator-ms/internal/models"
)

// Options tune the search beyond what the request payload carries.
type Options struct {
	// NodeBudget caps how many candidate placements the search may try
	// before giving up with the best solution found so far. 0 means
	// unlimited.
	NodeBudget int
	// StrictPruning prunes branches whose partial gap total ties the best
	// finished total. The legacy behaviour (false) explores ties, which
	// keeps the original tie-breaking at the cost of extra nodes.
	StrictPruning bool
}

// Stats describes one completed search.
type Stats struct {
	Groups          int  `json:"groups"`
	NodesVisited    int  `json:"nodesVisited"`
	SolutionsFound  int  `json:"solutionsFound"`
	BudgetExhausted bool `json:"budgetExhausted"`
	TotalGapMinutes int  `json:"totalGapMinutes"`
}

// Result is the outcome of one Solve invocation. An infeasible instance is
// not an error: Slots is empty and Feasible is false.
type Result struct {
	Slots    []models.Slot
	Feasible bool
	Stats    Stats
}

// Solve selects one candidate slot per activity request so that the combined
// timetable honours the requirements, minimizing total idle minutes when
// requested. The returned slots are the mandatory commitments plus the
// selected candidates, sorted by (day, start time). Solve is a pure function
// of its inputs and safe for concurrent use.
func Solve(schedule models.Schedule, reqs models.Requirements, pool []models.Slot, opts Options) Result {
	mandatory := MandatorySlots(schedule.Slots)

	if anyOverlap(mandatory) {
		return infeasible(Stats{})
	}
	if !MeetsRequirements(mandatory, reqs) {
		return infeasible(Stats{})
	}

	reqs = CompleteRequests(reqs, schedule)
	groups := BuildGroups(reqs.Requests, pool, reqs)
	stats := Stats{Groups: len(groups)}
	for _, group := range groups {
		if len(group) == 0 {
			return infeasible(stats)
		}
	}
	sortGroupsBySize(groups)

	s := &searcher{
		groups:    groups,
		mandatory: mandatory,
		reqs:      reqs,
		opts:      opts,
	}
	s.descend(0)

	stats.NodesVisited = s.nodes
	stats.SolutionsFound = s.solutions
	stats.BudgetExhausted = s.exhausted
	if !s.found {
		return infeasible(stats)
	}

	combined := make([]models.Slot, 0, len(mandatory)+len(s.best))
	combined = append(combined, mandatory...)
	combined = append(combined, s.best...)
	sortSlots(combined)
	if reqs.MinimizeGaps {
		stats.TotalGapMinutes = TotalGapMinutes(combined)
	}
	return Result{Slots: combined, Feasible: true, Stats: stats}
}

func infeasible(stats Stats) Result {
	return Result{Slots: []models.Slot{}, Stats: stats}
}

// searcher walks the group index space depth-first. It is owned by a single
// Solve invocation and discarded on completion, so the best-so-far state
// never leaks across searches.
type searcher struct {
	groups    [][]models.Slot
	mandatory []models.Slot
	reqs      models.Requirements
	opts      Options

	selected  []models.Slot
	best      []models.Slot
	found     bool
	bestGaps  int
	nodes     int
	solutions int
	done      bool
	exhausted bool
}

func (s *searcher) descend(i int) {
	if s.done {
		return
	}
	if i == len(s.groups) {
		s.finish()
		return
	}
	for _, candidate := range s.orderedGroup(i) {
		if s.done {
			return
		}
		if s.opts.NodeBudget > 0 && s.nodes >= s.opts.NodeBudget {
			s.exhausted = true
			s.done = true
			return
		}
		s.nodes++
		if overlapsAny(candidate, s.mandatory) || overlapsAny(candidate, s.selected) {
			continue
		}
		s.selected = append(s.selected, candidate)
		if s.admissible() {
			s.descend(i + 1)
		}
		s.selected = s.selected[:len(s.selected)-1]
	}
}

// admissible re-checks the full predicate over mandatory plus the current
// selection, then applies the branch-and-bound prune when a best solution
// already exists. The partial gap total never decreases as slots are added,
// so pruning on it is conservative.
func (s *searcher) admissible() bool {
	placed := s.placed()
	if !MeetsRequirements(placed, s.reqs) {
		return false
	}
	if s.reqs.MinimizeGaps && s.found {
		current := TotalGapMinutes(placed)
		if s.opts.StrictPruning {
			return current < s.bestGaps
		}
		return current <= s.bestGaps
	}
	return true
}

func (s *searcher) finish() {
	placed := s.placed()
	if !MeetsRequirements(placed, s.reqs) {
		return
	}
	s.solutions++
	if s.reqs.MinimizeGaps {
		total := TotalGapMinutes(placed)
		if !s.found || total < s.bestGaps {
			s.bestGaps = total
			s.best = append([]models.Slot(nil), s.selected...)
			s.found = true
		}
		return
	}
	// First feasible solution wins; stop the entire search.
	s.best = append([]models.Slot(nil), s.selected...)
	s.found = true
	s.done = true
}

func (s *searcher) placed() []models.Slot {
	placed := make([]models.Slot, 0, len(s.mandatory)+len(s.selected))
	placed = append(placed, s.mandatory...)
	return append(placed, s.selected...)
}

// orderedGroup decides the candidate visiting order for group i. When
// minimizing gaps and something is already placed, candidates closest to the
// placed intervals come first; otherwise (day, start time) keeps the search
// deterministic.
func (s *searcher) orderedGroup(i int) []models.Slot {
	group := append([]models.Slot(nil), s.groups[i]...)
	if s.reqs.MinimizeGaps && len(s.mandatory)+len(s.selected) > 0 {
		placed := s.placed()
		sort.SliceStable(group, func(a, b int) bool {
			return nearestGapMinutes(group[a], placed) < nearestGapMinutes(group[b], placed)
		})
		return group
	}
	sortSlots(group)
	return group
}
