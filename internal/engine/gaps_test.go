package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prpo-skupina4/optimizator-ms/internal/models"
)

func TestTotalGapMinutesSingleDay(t *testing.T) {
	slots := []models.Slot{
		lecture(0, 8, 0, 60),  // 08:00-09:00
		lecture(0, 10, 0, 60), // gap 60
		lecture(0, 12, 0, 90), // gap 60
	}
	require.Equal(t, 120, TotalGapMinutes(slots))
}

func TestTotalGapMinutesOrderIndependent(t *testing.T) {
	slots := []models.Slot{
		lecture(0, 12, 0, 90),
		lecture(0, 8, 0, 60),
		lecture(0, 10, 0, 60),
	}
	require.Equal(t, 120, TotalGapMinutes(slots))
}

func TestTotalGapMinutesMergesOverlappingIntervals(t *testing.T) {
	slots := []models.Slot{
		lecture(0, 8, 0, 120),  // 08:00-10:00
		lecture(0, 9, 0, 60),   // contained
		lecture(0, 11, 0, 60),  // gap 60 after merged block
	}
	require.Equal(t, 60, TotalGapMinutes(slots))
}

func TestTotalGapMinutesAcrossDays(t *testing.T) {
	slots := []models.Slot{
		lecture(0, 8, 0, 60),
		lecture(0, 10, 0, 60), // gap 60 on day 0
		lecture(1, 8, 0, 60),
		lecture(1, 9, 30, 60), // gap 30 on day 1
	}
	require.Equal(t, 90, TotalGapMinutes(slots))
}

func TestTotalGapMinutesDegenerateSets(t *testing.T) {
	assert.Zero(t, TotalGapMinutes(nil))
	assert.Zero(t, TotalGapMinutes([]models.Slot{lecture(0, 8, 0, 60)}))
	assert.Zero(t, TotalGapMinutes([]models.Slot{lecture(0, 8, 0, 60), lecture(1, 8, 0, 60)}))
	// back to back, no idle time
	assert.Zero(t, TotalGapMinutes([]models.Slot{lecture(0, 8, 0, 60), lecture(0, 9, 0, 60)}))
}

func TestNearestGapMinutes(t *testing.T) {
	placed := []models.Slot{lecture(0, 12, 0, 90)} // 12:00-13:30

	// candidate before the placed interval
	assert.Equal(t, 30, nearestGapMinutes(lecture(0, 10, 0, 90), placed))
	// candidate after the placed interval
	assert.Equal(t, 150, nearestGapMinutes(lecture(0, 16, 0, 90), placed))
	// overlapping candidate must not dominate the ordering
	assert.Zero(t, nearestGapMinutes(lecture(0, 12, 30, 60), placed))
	// nothing placed on that day
	assert.Zero(t, nearestGapMinutes(lecture(3, 10, 0, 90), placed))
}

func TestNearestGapMinutesPicksClosestInterval(t *testing.T) {
	placed := []models.Slot{
		lecture(0, 8, 0, 60),  // 08:00-09:00
		lecture(0, 14, 0, 60), // 14:00-15:00
	}
	// 10:00-11:00 sits 60 after the first and 180 before the second
	assert.Equal(t, 60, nearestGapMinutes(lecture(0, 10, 0, 60), placed))
}
