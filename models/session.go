package models

import (
	"strconv"
	"strings"
	"time"
)

// Stage identifies where a conversation sits in the booking flow.
type Stage string

const (
	StageInitial      Stage = "initial"
	StageOfferedFirst Stage = "offered_first"
	StageShowingMore  Stage = "showing_more"
	StageCompleted    Stage = "completed"
)

// Session parameter keys round-tripped through the conversational platform.
const (
	ParamStage            = "booking_stage"
	ParamAnchorDate       = "anchor_date"
	ParamSearchDays       = "search_days"
	ParamScreensNeeded    = "screens_needed"
	ParamTargetDate       = "target_date"
	ParamShowingMoreSlots = "showing_more_slots"
	ParamFlowCompleted    = "booking_flow_completed"
	ParamSelectedSlot     = "selected_slot"
)

// SessionState holds the conversational flags carried between turns. The
// platform owns its persistence; this service only reads and writes it
// through the session parameters of each request.
type SessionState struct {
	Stage                Stage  `json:"stage"`
	AnchorDate           string `json:"anchorDate,omitempty"` // ISO date the original search was anchored on
	SearchDays           int    `json:"searchDays,omitempty"` // window length of the original search
	Screens              int    `json:"screens"`
	ShowingMoreSlots     bool   `json:"showingMoreSlots"`
	BookingFlowCompleted bool   `json:"bookingFlowCompleted"`
}

// SessionStateFromParameters rebuilds the state from session parameters.
// Missing or malformed values degrade to the zero state, never fail.
func SessionStateFromParameters(params map[string]any) SessionState {
	st := SessionState{Stage: StageInitial, Screens: 1}
	if params == nil {
		return st
	}
	if v, ok := params[ParamStage].(string); ok && v != "" {
		st.Stage = Stage(v)
	}
	if v, ok := params[ParamAnchorDate].(string); ok {
		st.AnchorDate = v
	}
	switch v := params[ParamSearchDays].(type) {
	case float64:
		st.SearchDays = int(v)
	case int:
		st.SearchDays = v
	}
	st.Screens = CoerceScreens(params[ParamScreensNeeded])
	st.ShowingMoreSlots = coerceBool(params[ParamShowingMoreSlots])
	st.BookingFlowCompleted = coerceBool(params[ParamFlowCompleted])
	return st
}

// Parameters renders the state back into session parameters for the caller.
func (s SessionState) Parameters() map[string]any {
	return map[string]any{
		ParamStage:            string(s.Stage),
		ParamAnchorDate:       s.AnchorDate,
		ParamSearchDays:       s.SearchDays,
		ParamScreensNeeded:    s.Screens,
		ParamShowingMoreSlots: s.ShowingMoreSlots,
		ParamFlowCompleted:    s.BookingFlowCompleted,
	}
}

// CoerceScreens reads a job-size parameter that may arrive as a number,
// a numeric string, or be absent. Anything unusable degrades to 1.
func CoerceScreens(v any) int {
	switch n := v.(type) {
	case float64:
		if n >= 1 {
			return int(n)
		}
	case int:
		if n >= 1 {
			return n
		}
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(n)); err == nil && parsed >= 1 {
			return parsed
		}
	}
	return 1
}

func coerceBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true" || b == "yes"
	}
	return false
}

// ParseTargetDate reads a date parameter that may be an ISO string or a
// Dialogflow-style {year, month, day} object. Malformed input returns the
// zero time; callers substitute their own default.
func ParseTargetDate(v any, loc *time.Location) time.Time {
	switch d := v.(type) {
	case string:
		if t, err := time.ParseInLocation("2006-01-02", d, loc); err == nil {
			return t
		}
		if t, err := time.Parse(time.RFC3339, d); err == nil {
			return t.In(loc)
		}
	case map[string]any:
		year := numField(d, "year")
		month := numField(d, "month")
		day := numField(d, "day")
		if year > 0 && month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
		}
	}
	return time.Time{}
}

func numField(m map[string]any, key string) int {
	if f, ok := m[key].(float64); ok {
		return int(f)
	}
	return 0
}
