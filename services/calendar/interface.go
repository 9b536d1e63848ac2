package calendar

import (
	"context"
	"time"

	"screenline/models"
)

// Source lists the business's committed time ranges inside [from, to),
// normalized to the business timezone. Implementations must return an
// error on fetch failure rather than an empty busy set.
type Source interface {
	ListBusyIntervals(ctx context.Context, from, to time.Time) ([]models.BusyInterval, error)
}
