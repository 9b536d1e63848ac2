package models

import "time"

// TimeRange is a half-open [Start, End) span in the business timezone.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// IsValid reports whether the range has positive length.
func (r TimeRange) IsValid() bool {
	return r.Start.Before(r.End)
}

// Duration returns the length of the range.
func (r TimeRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// BusyInterval is a committed time range sourced from the external calendar.
// Inputs may arrive unsorted and overlapping; they are never mutated.
type BusyInterval struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Summary string    `json:"summary,omitempty"`
}

// WorkWindow is the daily open/close bounds for one calendar date.
type WorkWindow struct {
	DayStart time.Time `json:"dayStart"`
	DayEnd   time.Time `json:"dayEnd"`
}

// Slot is a bookable, fixed-duration sub-range of a free interval.
// Slots are ephemeral: recomputed per request, never stored.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
