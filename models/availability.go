package models

// AvailabilityResult is the outcome of one multi-day slot search.
type AvailabilityResult struct {
	PrimarySlot    *Slot  `json:"primarySlot,omitempty"`
	AlternateSlots []Slot `json:"alternateSlots,omitempty"`
	// Exhausted is true only when the full forward window was scanned
	// with zero slots found.
	Exhausted    bool `json:"exhausted"`
	SearchedDays int  `json:"searchedDays"`
}
