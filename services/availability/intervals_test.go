package availability

import (
	"testing"
	"time"

	"screenline/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2026, time.January, 7, hour, min, 0, 0, time.UTC)
}

func window(startHour, endHour int) models.WorkWindow {
	return models.WorkWindow{DayStart: at(startHour, 0), DayEnd: at(endHour, 0)}
}

func busy(startHour, startMin, endHour, endMin int) models.BusyInterval {
	return models.BusyInterval{Start: at(startHour, startMin), End: at(endHour, endMin)}
}

func TestFreeIntervals_EmptyBusy(t *testing.T) {
	free := FreeIntervals(window(8, 17), nil)

	require.Len(t, free, 1)
	assert.Equal(t, at(8, 0), free[0].Start)
	assert.Equal(t, at(17, 0), free[0].End)
}

func TestFreeIntervals_SingleBusyBlock(t *testing.T) {
	free := FreeIntervals(window(8, 17), []models.BusyInterval{busy(9, 0, 10, 0)})

	require.Len(t, free, 2)
	assert.Equal(t, models.TimeRange{Start: at(8, 0), End: at(9, 0)}, free[0])
	assert.Equal(t, models.TimeRange{Start: at(10, 0), End: at(17, 0)}, free[1])
}

func TestFreeIntervals_ReconstructsWindow(t *testing.T) {
	// Non-overlapping busy intervals fully inside the window: free ∪ busy
	// must tile the window exactly.
	intervals := []models.BusyInterval{
		busy(9, 0, 9, 30),
		busy(11, 0, 12, 0),
		busy(14, 15, 15, 45),
	}
	free := FreeIntervals(window(8, 17), intervals)

	var covered time.Duration
	for _, f := range free {
		covered += f.Duration()
	}
	for _, b := range intervals {
		covered += b.End.Sub(b.Start)
	}
	assert.Equal(t, 9*time.Hour, covered)

	// Free intervals never overlap busy ones and stay ordered.
	for i := 1; i < len(free); i++ {
		assert.True(t, !free[i].Start.Before(free[i-1].End))
	}
}

func TestFreeIntervals_UnsortedInput(t *testing.T) {
	free := FreeIntervals(window(8, 17), []models.BusyInterval{
		busy(14, 0, 15, 0),
		busy(9, 0, 10, 0),
	})

	require.Len(t, free, 3)
	assert.Equal(t, at(8, 0), free[0].Start)
	assert.Equal(t, at(9, 0), free[0].End)
	assert.Equal(t, at(10, 0), free[1].Start)
	assert.Equal(t, at(14, 0), free[1].End)
	assert.Equal(t, at(15, 0), free[2].Start)
	assert.Equal(t, at(17, 0), free[2].End)
}

func TestFreeIntervals_MergeIsIdempotent(t *testing.T) {
	base := []models.BusyInterval{
		busy(9, 0, 11, 0),
		busy(13, 0, 14, 0),
	}
	withDuplicates := append([]models.BusyInterval{
		busy(9, 0, 11, 0),  // exact duplicate
		busy(9, 30, 10, 0), // nested sub-interval
	}, base...)

	assert.Equal(t, FreeIntervals(window(8, 17), base), FreeIntervals(window(8, 17), withDuplicates))
}

func TestFreeIntervals_OverlappingBusyCollapses(t *testing.T) {
	free := FreeIntervals(window(8, 17), []models.BusyInterval{
		busy(9, 0, 11, 0),
		busy(10, 0, 12, 0),
	})

	require.Len(t, free, 2)
	assert.Equal(t, models.TimeRange{Start: at(8, 0), End: at(9, 0)}, free[0])
	assert.Equal(t, models.TimeRange{Start: at(12, 0), End: at(17, 0)}, free[1])
}

func TestFreeIntervals_BusyBeforeWindowDoesNotRegressCursor(t *testing.T) {
	free := FreeIntervals(window(8, 17), []models.BusyInterval{
		busy(6, 0, 7, 0),
		busy(9, 0, 10, 0),
	})

	require.Len(t, free, 2)
	assert.Equal(t, at(8, 0), free[0].Start)
	assert.Equal(t, at(9, 0), free[0].End)
}

func TestFreeIntervals_BusyCoversWholeWindow(t *testing.T) {
	free := FreeIntervals(window(8, 17), []models.BusyInterval{busy(7, 0, 18, 0)})
	assert.Empty(t, free)
}

func TestFreeIntervals_BusyExtendsPastWindowEnd(t *testing.T) {
	free := FreeIntervals(window(8, 17), []models.BusyInterval{busy(16, 0, 19, 0)})

	require.Len(t, free, 1)
	assert.Equal(t, models.TimeRange{Start: at(8, 0), End: at(16, 0)}, free[0])
}

func TestFreeIntervals_InputNotMutated(t *testing.T) {
	input := []models.BusyInterval{
		busy(14, 0, 15, 0),
		busy(9, 0, 10, 0),
	}
	FreeIntervals(window(8, 17), input)

	assert.Equal(t, at(14, 0), input[0].Start)
	assert.Equal(t, at(9, 0), input[1].Start)
}
