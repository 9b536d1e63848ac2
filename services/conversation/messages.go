package conversation

import (
	"fmt"

	"screenline/models"
)

// slotLabel renders a slot the way it reads in conversation, e.g.
// "Monday, January 5 at 8:00 AM".
func slotLabel(s models.Slot) string {
	return s.Start.Format("Monday, January 2 at 3:04 PM")
}

func (s *DefaultConversationService) sessionInfo(state models.SessionState) *models.SessionInfo {
	return &models.SessionInfo{Parameters: state.Parameters()}
}

func (s *DefaultConversationService) textResponse(state models.SessionState, lines ...string) *models.WebhookResponse {
	return &models.WebhookResponse{
		FulfillmentResponse: models.FulfillmentResponse{
			Messages: []models.ResponseMessage{
				{Text: &models.TextMessage{Text: lines}},
			},
		},
		SessionInfo: s.sessionInfo(state),
	}
}

func (s *DefaultConversationService) offerFirstResponse(state models.SessionState, primary models.Slot) *models.WebhookResponse {
	line := fmt.Sprintf("Our next opening for %d screen(s) is %s.", state.Screens, slotLabel(primary))
	return &models.WebhookResponse{
		FulfillmentResponse: models.FulfillmentResponse{
			Messages: []models.ResponseMessage{
				{Text: &models.TextMessage{Text: []string{
					line,
					"Would you like to book it, or see more options?",
				}}},
			},
		},
		SessionInfo: s.sessionInfo(state),
	}
}

func (s *DefaultConversationService) moreOptionsResponse(state models.SessionState, alternates []models.Slot) *models.WebhookResponse {
	options := make([]models.ChipOption, 0, len(alternates)+1)
	for _, slot := range alternates {
		options = append(options, models.ChipOption{Text: slotLabel(slot)})
	}
	options = append(options, models.ChipOption{Text: "See Full Booking Calendar", Link: s.BookingLink})

	return &models.WebhookResponse{
		FulfillmentResponse: models.FulfillmentResponse{
			Messages: []models.ResponseMessage{
				{Text: &models.TextMessage{Text: []string{"Here are some other openings:"}}},
				{Payload: models.ChipsPayload(options)},
			},
		},
		SessionInfo: s.sessionInfo(state),
	}
}

func (s *DefaultConversationService) noMoreOptionsResponse(state models.SessionState) *models.WebhookResponse {
	return &models.WebhookResponse{
		FulfillmentResponse: models.FulfillmentResponse{
			Messages: []models.ResponseMessage{
				{Text: &models.TextMessage{Text: []string{
					"That's the only opening I could find around that date.",
				}}},
				{Payload: models.ChipsPayload([]models.ChipOption{
					{Text: "See Full Booking Calendar", Link: s.BookingLink},
				})},
			},
		},
		SessionInfo: s.sessionInfo(state),
	}
}

func (s *DefaultConversationService) noAvailabilityResponse(state models.SessionState) *models.WebhookResponse {
	return &models.WebhookResponse{
		FulfillmentResponse: models.FulfillmentResponse{
			Messages: []models.ResponseMessage{
				{Text: &models.TextMessage{Text: []string{"No available times found."}}},
				{Payload: models.ChipsPayload([]models.ChipOption{
					{Text: "See Full Booking Calendar", Link: s.BookingLink},
				})},
			},
		},
		SessionInfo: s.sessionInfo(state),
	}
}

// couldNotCheckResponse is the infrastructure-fault message. It is
// deliberately distinct from the zero-availability outcome.
func (s *DefaultConversationService) couldNotCheckResponse(state models.SessionState) *models.WebhookResponse {
	return s.textResponse(state,
		"Sorry, I couldn't check availability right now. Please try again in a moment.")
}

func (s *DefaultConversationService) callUsResponse(state models.SessionState) *models.WebhookResponse {
	line := "For same-day service, please give us a call"
	if s.BusinessPhone != "" {
		line += " at " + s.BusinessPhone
	}
	line += "."
	return s.textResponse(state, line)
}
