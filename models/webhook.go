package models

// WebhookRequest is the inbound fulfillment envelope from the
// conversational platform.
type WebhookRequest struct {
	FulfillmentInfo FulfillmentInfo `json:"fulfillmentInfo"`
	SessionInfo     SessionInfo     `json:"sessionInfo"`
}

type FulfillmentInfo struct {
	Tag string `json:"tag"`
}

type SessionInfo struct {
	Session    string         `json:"session,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// WebhookResponse is the outbound fulfillment envelope. Business outcomes,
// including "no availability", are always success-shaped.
type WebhookResponse struct {
	FulfillmentResponse FulfillmentResponse `json:"fulfillment_response"`
	SessionInfo         *SessionInfo        `json:"session_info,omitempty"`
}

type FulfillmentResponse struct {
	Messages []ResponseMessage `json:"messages"`
}

// ResponseMessage carries either plain text lines or a rich payload
// (selectable chips with booking links).
type ResponseMessage struct {
	Text    *TextMessage   `json:"text,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
}

type TextMessage struct {
	Text []string `json:"text"`
}

// ChipOption is one selectable option rendered to the user.
type ChipOption struct {
	Text string `json:"text"`
	Link string `json:"link,omitempty"`
}

// ChipsPayload builds the rich-content payload the platform renders as
// tappable chips.
func ChipsPayload(options []ChipOption) map[string]any {
	return map[string]any{
		"richContent": [][]map[string]any{
			{
				{
					"type":    "chips",
					"options": options,
				},
			},
		},
	}
}
