package conversation

import (
	"context"
	"time"

	"screenline/models"
)

// Intent tags dispatched by the conversational platform.
const (
	TagGetAvailability = "get_availability"
	TagMoreOptions     = "more_options"
	TagNextAvailable   = "next_available"
	TagConfirmBooking  = "confirm_booking"
	TagCaptureLead     = "capture_lead"
)

// Service handles one fulfillment turn. Business outcomes are always a
// well-formed response; only envelope-level failures surface as errors
// upstream of this interface.
type Service interface {
	Handle(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse
}

// Engine is the slice of the availability engine this package needs.
type Engine interface {
	SlotDuration(screens int) time.Duration
	Search(ctx context.Context, after time.Time, d time.Duration, maxDaysAhead, maxSlotsWanted int) (models.AvailabilityResult, error)
}

// LeadDispatcher forwards a captured lead to the downstream automation
// sink. Delivery is best-effort; failures never block the confirmation.
type LeadDispatcher interface {
	Dispatch(ctx context.Context, lead models.Lead) error
}
