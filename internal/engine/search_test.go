package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prpo-skupina4/optimizator-ms/internal/models"
)

func TestSolveOverlappingMandatoryIsInfeasible(t *testing.T) {
	schedule := models.Schedule{Slots: []models.Slot{
		lecture(0, 8, 0, 90),
		lecture(0, 9, 0, 60), // overlaps the first by 30 minutes
	}}

	result := Solve(schedule, models.Requirements{}, nil, Options{})

	require.False(t, result.Feasible)
	require.NotNil(t, result.Slots)
	assert.Empty(t, result.Slots)
}

func TestSolveMandatoryOnExcludedDayIsInfeasible(t *testing.T) {
	schedule := models.Schedule{Slots: []models.Slot{lecture(2, 8, 0, 90)}}
	reqs := models.Requirements{ExcludedDays: []int{2}}

	result := Solve(schedule, reqs, nil, Options{})

	require.False(t, result.Feasible)
	assert.Empty(t, result.Slots)
}

func TestSolveMandatoryBeforeGlobalStartIsInfeasible(t *testing.T) {
	schedule := models.Schedule{Slots: []models.Slot{lecture(0, 8, 0, 90)}}
	reqs := models.Requirements{Start: timePtr(9, 0)}

	result := Solve(schedule, reqs, nil, Options{})

	require.False(t, result.Feasible)
	assert.Empty(t, result.Slots)
}

func TestSolveOneCandidatePerSubject(t *testing.T) {
	pool := []models.Slot{
		exercise(1, models.KindLab, 0, 8, 0, 90),
		exercise(1, models.KindLab, 1, 8, 0, 90),
		exercise(2, models.KindTutorial, 2, 10, 0, 90),
		exercise(2, models.KindTutorial, 3, 10, 0, 90),
	}
	reqs := models.Requirements{Requests: []models.ActivityRequest{
		{Subject: subject(1)},
		{Subject: subject(2)},
	}}

	result := Solve(models.Schedule{}, reqs, pool, Options{})

	require.True(t, result.Feasible)
	require.Len(t, result.Slots, 2)
	counts := map[int64]int{}
	for _, slot := range result.Slots {
		require.NotNil(t, slot.Subject)
		counts[slot.Subject.ID]++
	}
	assert.Equal(t, map[int64]int{1: 1, 2: 1}, counts)
	assert.Equal(t, 2, result.Stats.Groups)
	assert.Equal(t, 1, result.Stats.SolutionsFound)
}

func TestSolveGapMinimizationPrefersAdjacentCandidate(t *testing.T) {
	schedule := models.Schedule{Slots: []models.Slot{
		lectureFor(1, 0, 12, 0, 90), // 12:00-13:30 mandatory lecture
	}}
	pool := []models.Slot{
		exercise(1, models.KindLab, 0, 16, 0, 90),
		exercise(1, models.KindLab, 0, 10, 0, 90),
	}
	reqs := models.Requirements{
		MinimizeGaps: true,
		Requests: []models.ActivityRequest{
			{Subject: subject(1)},
		},
	}

	result := Solve(schedule, reqs, pool, Options{})

	require.True(t, result.Feasible)
	require.Len(t, result.Slots, 2)
	// mandatory slot at 12:00 stays; sorting puts the 10:00 pick first
	assert.Equal(t, 10*60, result.Slots[0].StartMinutes())
	assert.Equal(t, 12*60, result.Slots[1].StartMinutes())
	assert.Equal(t, 30, result.Stats.TotalGapMinutes)
}

func TestSolveGapMinimizationAcrossTwoRequests(t *testing.T) {
	pool := []models.Slot{
		exercise(1, models.KindLab, 0, 10, 0, 90),
		exercise(1, models.KindLab, 0, 16, 0, 90),
		exercise(2, models.KindTutorial, 0, 12, 0, 90),
	}
	reqs := models.Requirements{
		MinimizeGaps: true,
		Requests: []models.ActivityRequest{
			{Subject: subject(1)},
			{Subject: subject(2)},
		},
	}

	result := Solve(models.Schedule{}, reqs, pool, Options{})

	require.True(t, result.Feasible)
	require.Len(t, result.Slots, 2)
	assert.Equal(t, 10*60, result.Slots[0].StartMinutes())
	assert.Equal(t, 12*60, result.Slots[1].StartMinutes())
	assert.Equal(t, 30, result.Stats.TotalGapMinutes)
	// gap mode must still visit the alternative branch
	assert.GreaterOrEqual(t, result.Stats.SolutionsFound, 1)
}

func TestSolveStrictPruningFindsSameOptimum(t *testing.T) {
	pool := []models.Slot{
		exercise(1, models.KindLab, 0, 10, 0, 90),
		exercise(1, models.KindLab, 0, 16, 0, 90),
		exercise(2, models.KindTutorial, 0, 12, 0, 90),
	}
	reqs := models.Requirements{
		MinimizeGaps: true,
		Requests: []models.ActivityRequest{
			{Subject: subject(1)},
			{Subject: subject(2)},
		},
	}

	loose := Solve(models.Schedule{}, reqs, pool, Options{})
	strict := Solve(models.Schedule{}, reqs, pool, Options{StrictPruning: true})

	require.True(t, loose.Feasible)
	require.True(t, strict.Feasible)
	assert.Equal(t, loose.Stats.TotalGapMinutes, strict.Stats.TotalGapMinutes)
	assert.LessOrEqual(t, strict.Stats.NodesVisited, loose.Stats.NodesVisited)
}

func TestSolveEmptyGroupIsInfeasible(t *testing.T) {
	pool := []models.Slot{exercise(1, models.KindLab, 0, 10, 0, 90)}
	reqs := models.Requirements{Requests: []models.ActivityRequest{
		{Subject: subject(1)},
		{Subject: subject(99)}, // no candidates in the pool
	}}

	result := Solve(models.Schedule{}, reqs, pool, Options{})

	require.False(t, result.Feasible)
	assert.Empty(t, result.Slots)
	assert.Equal(t, 2, result.Stats.Groups)
	assert.Zero(t, result.Stats.NodesVisited)
}

func TestSolveMandatoryOnlySchedulePassesThrough(t *testing.T) {
	schedule := models.Schedule{Slots: []models.Slot{
		lecture(1, 10, 0, 90),
		lecture(0, 8, 0, 90),
	}}

	result := Solve(schedule, models.Requirements{}, nil, Options{})

	require.True(t, result.Feasible)
	require.Len(t, result.Slots, 2)
	assert.Equal(t, 0, result.Slots[0].Day)
	assert.Equal(t, 1, result.Slots[1].Day)
	assert.Zero(t, result.Stats.Groups)
}

func TestSolveSynthesizesRequestsFromScheduleSubjects(t *testing.T) {
	schedule := models.Schedule{Slots: []models.Slot{
		lectureFor(1, 0, 8, 0, 90),
	}}
	pool := []models.Slot{
		exercise(1, models.KindLab, 0, 10, 0, 90),
	}

	// no explicit requests; the schedule's subject still gets its exercise
	result := Solve(schedule, models.Requirements{}, pool, Options{})

	require.True(t, result.Feasible)
	require.Len(t, result.Slots, 2)
	assert.Equal(t, 1, result.Stats.Groups)
}

func TestSolveCandidateConflictingWithMandatoryIsSkipped(t *testing.T) {
	schedule := models.Schedule{Slots: []models.Slot{
		lectureFor(2, 0, 10, 0, 120), // 10:00-12:00
	}}
	pool := []models.Slot{
		exercise(1, models.KindLab, 0, 10, 30, 60), // collides with the lecture
		exercise(1, models.KindLab, 0, 13, 0, 60),
	}
	reqs := models.Requirements{Requests: []models.ActivityRequest{{Subject: subject(1)}}}

	result := Solve(schedule, reqs, pool, Options{})

	require.True(t, result.Feasible)
	require.Len(t, result.Slots, 2)
	assert.Equal(t, 13*60, result.Slots[1].StartMinutes())
}

func TestSolveRespectsBreaksForCandidates(t *testing.T) {
	pool := []models.Slot{
		exercise(1, models.KindLab, 0, 11, 30, 60), // crosses the lunch break
		exercise(1, models.KindLab, 0, 13, 0, 60),
	}
	reqs := models.Requirements{
		Breaks:   []models.BreakWindow{{Start: models.NewTimeOfDay(12, 0), Duration: 60, Day: 0}},
		Requests: []models.ActivityRequest{{Subject: subject(1)}},
	}

	result := Solve(models.Schedule{}, reqs, pool, Options{})

	require.True(t, result.Feasible)
	require.Len(t, result.Slots, 1)
	assert.Equal(t, 13*60, result.Slots[0].StartMinutes())
}

func TestSolveNodeBudgetBestEffort(t *testing.T) {
	pool := []models.Slot{
		exercise(1, models.KindLab, 0, 10, 0, 90),
		exercise(1, models.KindLab, 0, 16, 0, 90),
	}
	reqs := models.Requirements{
		MinimizeGaps: true,
		Requests:     []models.ActivityRequest{{Subject: subject(1)}},
	}

	result := Solve(models.Schedule{}, reqs, pool, Options{NodeBudget: 1})

	// the first placement completes before the budget trips, so the search
	// returns best-effort with the exhaustion flagged
	require.True(t, result.Feasible)
	require.Len(t, result.Slots, 1)
	assert.True(t, result.Stats.BudgetExhausted)
	assert.Equal(t, 1, result.Stats.NodesVisited)
}

func TestSolveDoesNotMutateInputs(t *testing.T) {
	schedule := models.Schedule{Slots: []models.Slot{lectureFor(2, 0, 8, 0, 90)}}
	pool := []models.Slot{
		exercise(1, models.KindLab, 0, 12, 0, 90),
		exercise(1, models.KindLab, 0, 10, 0, 90),
	}
	reqs := models.Requirements{
		MinimizeGaps: true,
		Requests:     []models.ActivityRequest{{Subject: subject(1)}},
	}

	_ = Solve(schedule, reqs, pool, Options{})

	require.Len(t, reqs.Requests, 1)
	assert.Equal(t, int64(1), reqs.Requests[0].Subject.ID)
	assert.Equal(t, 12*60, pool[0].StartMinutes())
	assert.Equal(t, 10*60, pool[1].StartMinutes())
	require.Len(t, schedule.Slots, 1)
}

func TestSolveOutputSortedByDayThenStart(t *testing.T) {
	schedule := models.Schedule{Slots: []models.Slot{
		lecture(3, 8, 0, 90),
		lecture(0, 14, 0, 90),
	}}
	pool := []models.Slot{
		exercise(1, models.KindLab, 0, 8, 0, 90),
		exercise(2, models.KindTutorial, 3, 12, 0, 90),
	}
	reqs := models.Requirements{Requests: []models.ActivityRequest{
		{Subject: subject(1)},
		{Subject: subject(2)},
	}}

	result := Solve(schedule, reqs, pool, Options{})

	require.True(t, result.Feasible)
	require.Len(t, result.Slots, 4)
	for i := 1; i < len(result.Slots); i++ {
		prev, cur := result.Slots[i-1], result.Slots[i]
		ordered := prev.Day < cur.Day || (prev.Day == cur.Day && prev.StartMinutes() <= cur.StartMinutes())
		assert.True(t, ordered, "slots out of order at index %d", i)
	}
}
