package availability

import (
	"time"

	"screenline/models"
)

// SliceSlots divides a free range into back-to-back slots of exactly d,
// left to right. A remainder shorter than d is discarded.
func SliceSlots(free models.TimeRange, d time.Duration) []models.Slot {
	if d <= 0 || !free.IsValid() {
		return nil
	}
	var slots []models.Slot
	for cursor := free.Start; !cursor.Add(d).After(free.End); cursor = cursor.Add(d) {
		slots = append(slots, models.Slot{Start: cursor, End: cursor.Add(d)})
	}
	return slots
}
