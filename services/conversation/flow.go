package conversation

import (
	"context"
	"time"

	leadRepo "screenline/database/repository/lead"
	"screenline/models"
	"screenline/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultConversationService drives the booking flow state machine:
// initial -> offered_first -> showing_more -> completed. State is
// round-tripped through session parameters; nothing is held in memory
// between turns.
type DefaultConversationService struct {
	Engine     Engine
	Leads      leadRepo.LeadRepository
	Dispatcher LeadDispatcher
	Location   *time.Location

	BookingLink   string
	BusinessPhone string

	DateSearchDays    int
	NextAvailableDays int
	MaxSlotsWanted    int

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultConversationService) Handle(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	params := req.SessionInfo.Parameters
	state := models.SessionStateFromParameters(params)

	switch req.FulfillmentInfo.Tag {
	case TagGetAvailability:
		return s.handleGetAvailability(ctx, params, state)
	case TagMoreOptions:
		return s.handleMoreOptions(ctx, state)
	case TagNextAvailable:
		return s.handleNextAvailable(ctx, params, state)
	case TagConfirmBooking:
		return s.handleConfirmBooking(ctx, req.SessionInfo.Session, params, state)
	case TagCaptureLead:
		return s.handleCaptureLead(ctx, req.SessionInfo.Session, params, state)
	default:
		return s.textResponse(state,
			"I can help you schedule screen service. What day works for you?")
	}
}

func (s *DefaultConversationService) today() time.Time {
	now := s.now().In(s.Location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.Location)
}

func (s *DefaultConversationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// handleGetAvailability answers "when can you come out on/after this date".
func (s *DefaultConversationService) handleGetAvailability(ctx context.Context, params map[string]any, state models.SessionState) *models.WebhookResponse {
	today := s.today()
	state.Screens = models.CoerceScreens(params[models.ParamScreensNeeded])

	target := models.ParseTargetDate(params[models.ParamTargetDate], s.Location)
	if target.IsZero() || target.Before(today) {
		// Missing, malformed, or past dates normalize to tomorrow.
		target = today.AddDate(0, 0, 1)
	}

	if sameDay(target, today) {
		// Same-day booking is categorically off the table.
		state.Stage = models.StageCompleted
		state.BookingFlowCompleted = true
		return s.callUsResponse(state)
	}

	// Anchor one day back so the requested date itself is searched first.
	anchor := target.AddDate(0, 0, -1)
	return s.runOffer(ctx, state, anchor, s.DateSearchDays)
}

// handleNextAvailable answers "what's the soonest opening, any date".
func (s *DefaultConversationService) handleNextAvailable(ctx context.Context, params map[string]any, state models.SessionState) *models.WebhookResponse {
	state.Screens = models.CoerceScreens(params[models.ParamScreensNeeded])
	return s.runOffer(ctx, state, s.today(), s.NextAvailableDays)
}

// runOffer runs the search and presents the first slot with a yes/more
// choice, recording the anchor so "see more" replays the same result set.
func (s *DefaultConversationService) runOffer(ctx context.Context, state models.SessionState, anchor time.Time, searchDays int) *models.WebhookResponse {
	logger := utils.GetLogger()
	duration := s.Engine.SlotDuration(state.Screens)

	result, err := s.Engine.Search(ctx, anchor, duration, searchDays, s.MaxSlotsWanted)
	if err != nil {
		logger.Error("availability search failed", zap.Error(err))
		return s.couldNotCheckResponse(state)
	}

	if result.Exhausted {
		state.Stage = models.StageCompleted
		state.BookingFlowCompleted = true
		return s.noAvailabilityResponse(state)
	}

	state.Stage = models.StageOfferedFirst
	state.AnchorDate = anchor.Format("2006-01-02")
	state.SearchDays = searchDays
	state.ShowingMoreSlots = false
	return s.offerFirstResponse(state, *result.PrimarySlot)
}

// handleMoreOptions replays the original search and serves its tail. It
// never shifts the anchor: the page must come from the same result set the
// first slot was drawn from.
func (s *DefaultConversationService) handleMoreOptions(ctx context.Context, state models.SessionState) *models.WebhookResponse {
	logger := utils.GetLogger()

	if state.AnchorDate == "" {
		return s.textResponse(state,
			"What day would you like us to come out? I'll check the schedule.")
	}
	anchor, err := time.ParseInLocation("2006-01-02", state.AnchorDate, s.Location)
	if err != nil {
		return s.textResponse(state,
			"What day would you like us to come out? I'll check the schedule.")
	}
	searchDays := state.SearchDays
	if searchDays <= 0 {
		searchDays = s.DateSearchDays
	}

	duration := s.Engine.SlotDuration(state.Screens)
	result, err := s.Engine.Search(ctx, anchor, duration, searchDays, s.MaxSlotsWanted)
	if err != nil {
		logger.Error("availability search failed", zap.Error(err))
		return s.couldNotCheckResponse(state)
	}

	if result.Exhausted {
		state.Stage = models.StageCompleted
		state.BookingFlowCompleted = true
		return s.noAvailabilityResponse(state)
	}

	// Single-level pagination: this page plus the full-calendar fallback
	// link ends the flow for this attempt.
	state.Stage = models.StageShowingMore
	state.ShowingMoreSlots = true
	state.BookingFlowCompleted = true

	if len(result.AlternateSlots) == 0 {
		return s.noMoreOptionsResponse(state)
	}
	return s.moreOptionsResponse(state, result.AlternateSlots)
}

// handleConfirmBooking captures the accepted slot and the caller's contact
// details, records the lead, and hands it to the delivery queue.
func (s *DefaultConversationService) handleConfirmBooking(ctx context.Context, session string, params map[string]any, state models.SessionState) *models.WebhookResponse {
	logger := utils.GetLogger()

	name, _ := params["name"].(string)
	phone, _ := params["phone"].(string)
	address, _ := params["address"].(string)
	if phone == "" {
		return s.textResponse(state,
			"What's the best phone number to reach you at to confirm the appointment?")
	}

	lead := models.Lead{
		ID:      uuid.New().String(),
		Name:    name,
		Phone:   phone,
		Address: address,
		Screens: state.Screens,
		Session: session,
	}
	var slotLine string
	if raw, ok := params[models.ParamSelectedSlot].(string); ok && raw != "" {
		if start, err := time.Parse(time.RFC3339, raw); err == nil {
			start = start.In(s.Location)
			lead.SlotStart = start
			lead.SlotEnd = start.Add(s.Engine.SlotDuration(state.Screens))
			slotLine = slotLabel(models.Slot{Start: lead.SlotStart, End: lead.SlotEnd})
		}
	}

	s.captureLead(ctx, lead)

	state.Stage = models.StageCompleted
	state.BookingFlowCompleted = true
	if slotLine != "" {
		return s.textResponse(state,
			"You're booked for "+slotLine+".",
			"Our team will reach out shortly to confirm.")
	}
	logger.Warn("booking confirmed without a selected slot", zap.String("leadId", lead.ID))
	return s.textResponse(state,
		"Your request was submitted.",
		"Our team will reach out shortly to confirm a time.")
}

// handleCaptureLead records contact details when no slot was chosen, e.g.
// after the fallback link was shown.
func (s *DefaultConversationService) handleCaptureLead(ctx context.Context, session string, params map[string]any, state models.SessionState) *models.WebhookResponse {
	name, _ := params["name"].(string)
	phone, _ := params["phone"].(string)
	address, _ := params["address"].(string)
	if phone == "" {
		return s.textResponse(state,
			"What's the best phone number to reach you at?")
	}

	s.captureLead(ctx, models.Lead{
		ID:      uuid.New().String(),
		Name:    name,
		Phone:   phone,
		Address: address,
		Screens: state.Screens,
		Session: session,
	})

	state.Stage = models.StageCompleted
	state.BookingFlowCompleted = true
	return s.textResponse(state,
		"Thanks! Our team will reach out shortly.")
}

// captureLead records and forwards the lead. Both paths are best-effort:
// the conversational confirmation already happened and must not be blocked.
func (s *DefaultConversationService) captureLead(ctx context.Context, lead models.Lead) {
	logger := utils.GetLogger()
	if s.Leads != nil {
		if _, err := s.Leads.Create(ctx, lead); err != nil {
			logger.Error("failed to record lead", zap.String("leadId", lead.ID), zap.Error(err))
		}
	}
	if s.Dispatcher != nil {
		if err := s.Dispatcher.Dispatch(ctx, lead); err != nil {
			logger.Error("failed to enqueue lead delivery", zap.String("leadId", lead.ID), zap.Error(err))
		}
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
