package availability

import (
	"sort"

	"screenline/models"
)

// FreeIntervals returns the ordered gaps left inside the work window after
// subtracting the given busy intervals. Busy input may be unsorted,
// overlapping, or nested; it is never mutated.
func FreeIntervals(window models.WorkWindow, busy []models.BusyInterval) []models.TimeRange {
	sorted := make([]models.BusyInterval, len(busy))
	copy(sorted, busy)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start.Equal(sorted[j].Start) {
			return sorted[i].End.Before(sorted[j].End)
		}
		return sorted[i].Start.Before(sorted[j].Start)
	})

	var free []models.TimeRange
	cursor := window.DayStart

	for _, iv := range sorted {
		if !cursor.Before(window.DayEnd) {
			break
		}
		if cursor.Before(iv.Start) {
			gapEnd := iv.Start
			if gapEnd.After(window.DayEnd) {
				gapEnd = window.DayEnd
			}
			free = append(free, models.TimeRange{Start: cursor, End: gapEnd})
		}
		// The cursor only ever advances; an interval that ends before the
		// cursor (nested or fully before the window) cannot regress it.
		if iv.End.After(cursor) {
			cursor = iv.End
		}
	}

	if cursor.Before(window.DayEnd) {
		free = append(free, models.TimeRange{Start: cursor, End: window.DayEnd})
	}
	return free
}
