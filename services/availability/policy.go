package availability

import "time"

// SlotDuration derives the required slot length from the number of screens
// needing service. The result never drops below the base minimum, so every
// computed slot stays bookable no matter how small the job is.
func SlotDuration(screens, perScreenMinutes, baseMinutes int) time.Duration {
	if screens < 1 {
		screens = 1
	}
	d := time.Duration(screens*perScreenMinutes) * time.Minute
	base := time.Duration(baseMinutes) * time.Minute
	if d < base {
		return base
	}
	return d
}
