package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoerceScreens(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want int
	}{
		{"json number", float64(4), 4},
		{"int", 2, 2},
		{"numeric string", "3", 3},
		{"padded string", " 6 ", 6},
		{"zero", float64(0), 1},
		{"negative", float64(-2), 1},
		{"garbage string", "a few", 1},
		{"nil", nil, 1},
		{"wrong type", []string{"5"}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CoerceScreens(tc.in))
		})
	}
}

func TestParseTargetDate(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)

	t.Run("iso date string", func(t *testing.T) {
		got := ParseTargetDate("2026-03-10", loc)
		assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, loc), got)
	})

	t.Run("rfc3339 string", func(t *testing.T) {
		got := ParseTargetDate("2026-03-10T15:00:00Z", loc)
		assert.Equal(t, 2026, got.Year())
		assert.Equal(t, loc, got.Location())
	})

	t.Run("structured date object", func(t *testing.T) {
		got := ParseTargetDate(map[string]any{
			"year":  float64(2026),
			"month": float64(3),
			"day":   float64(10),
		}, loc)
		assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, loc), got)
	})

	t.Run("incomplete object is zero", func(t *testing.T) {
		got := ParseTargetDate(map[string]any{"year": float64(2026)}, loc)
		assert.True(t, got.IsZero())
	})

	t.Run("garbage is zero", func(t *testing.T) {
		assert.True(t, ParseTargetDate("next tuesday-ish", loc).IsZero())
		assert.True(t, ParseTargetDate(nil, loc).IsZero())
		assert.True(t, ParseTargetDate(42, loc).IsZero())
	})
}

func TestSessionStateRoundTrip(t *testing.T) {
	st := SessionState{
		Stage:                StageShowingMore,
		AnchorDate:           "2026-03-09",
		SearchDays:           7,
		Screens:              3,
		ShowingMoreSlots:     true,
		BookingFlowCompleted: true,
	}

	got := SessionStateFromParameters(st.Parameters())
	assert.Equal(t, st, got)
}

func TestSessionStateFromParameters_Defaults(t *testing.T) {
	st := SessionStateFromParameters(nil)
	assert.Equal(t, StageInitial, st.Stage)
	assert.Equal(t, 1, st.Screens)
	assert.False(t, st.BookingFlowCompleted)

	// Platform round-trips numbers as float64; both forms must read back.
	st = SessionStateFromParameters(map[string]any{
		ParamStage:         string(StageOfferedFirst),
		ParamSearchDays:    float64(14),
		ParamScreensNeeded: "2",
		ParamFlowCompleted: "true",
	})
	assert.Equal(t, StageOfferedFirst, st.Stage)
	assert.Equal(t, 14, st.SearchDays)
	assert.Equal(t, 2, st.Screens)
	assert.True(t, st.BookingFlowCompleted)
}
