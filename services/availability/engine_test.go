package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"screenline/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource serves canned busy intervals keyed by date, and records which
// dates were queried.
type stubSource struct {
	busyByDate map[string][]models.BusyInterval
	err        error
	queried    []string
}

func (s *stubSource) ListBusyIntervals(_ context.Context, from, _ time.Time) ([]models.BusyInterval, error) {
	day := from.Format("2006-01-02")
	s.queried = append(s.queried, day)
	if s.err != nil {
		return nil, s.err
	}
	return s.busyByDate[day], nil
}

func newTestEngine(src *stubSource) *DefaultAvailabilityEngine {
	return &DefaultAvailabilityEngine{
		Calendar:         src,
		Location:         time.UTC,
		DayStartHour:     8,
		DayEndHour:       17,
		BaseSlotMinutes:  60,
		PerScreenMinutes: 20,
		closedWeekdays: map[time.Weekday]bool{
			time.Saturday: true,
			time.Sunday:   true,
		},
	}
}

func dayBusy(day time.Time, startHour, endHour int) models.BusyInterval {
	return models.BusyInterval{
		Start: time.Date(day.Year(), day.Month(), day.Day(), startHour, 0, 0, 0, time.UTC),
		End:   time.Date(day.Year(), day.Month(), day.Day(), endHour, 0, 0, 0, time.UTC),
	}
}

func TestSlotsForDay_BusyMorningMeeting(t *testing.T) {
	// Work window 08:00-17:00, busy 09:00-10:00, 60-minute slots:
	// eight slots, skipping the 09:00 hour.
	day := time.Date(2026, time.January, 7, 0, 0, 0, 0, time.UTC) // Wednesday
	src := &stubSource{busyByDate: map[string][]models.BusyInterval{
		"2026-01-07": {dayBusy(day, 9, 10)},
	}}
	engine := newTestEngine(src)

	slots, err := engine.SlotsForDay(context.Background(), day, time.Hour)
	require.NoError(t, err)

	wantStarts := []int{8, 10, 11, 12, 13, 14, 15, 16}
	require.Len(t, slots, len(wantStarts))
	for i, s := range slots {
		assert.Equal(t, wantStarts[i], s.Start.Hour())
		assert.Equal(t, time.Hour, s.End.Sub(s.Start))
	}
}

func TestSlotsForDay_CalendarErrorPropagates(t *testing.T) {
	src := &stubSource{err: errors.New("upstream timeout")}
	engine := newTestEngine(src)

	_, err := engine.SlotsForDay(context.Background(), time.Date(2026, time.January, 7, 0, 0, 0, 0, time.UTC), time.Hour)
	require.Error(t, err)
	assert.ErrorContains(t, err, "upstream timeout")
}

func TestSearch_NeverSameDayAndSkipsWeekends(t *testing.T) {
	// Anchor Friday 2026-01-09. Saturday and Sunday are closed; Monday is
	// fully booked; Tuesday is open. The first slot must land on Tuesday.
	anchor := time.Date(2026, time.January, 9, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC)
	src := &stubSource{busyByDate: map[string][]models.BusyInterval{
		"2026-01-12": {dayBusy(monday, 8, 17)},
	}}
	engine := newTestEngine(src)

	result, err := engine.Search(context.Background(), anchor, time.Hour, 7, 4)
	require.NoError(t, err)
	require.NotNil(t, result.PrimarySlot)

	assert.False(t, result.Exhausted)
	assert.Equal(t, "2026-01-13", result.PrimarySlot.Start.Format("2006-01-02"))
	assert.Equal(t, time.Tuesday, result.PrimarySlot.Start.Weekday())

	// The anchor day itself is never queried, and no weekend day is.
	for _, day := range src.queried {
		parsed, perr := time.Parse("2006-01-02", day)
		require.NoError(t, perr)
		assert.NotEqual(t, "2026-01-09", day)
		assert.NotEqual(t, time.Saturday, parsed.Weekday())
		assert.NotEqual(t, time.Sunday, parsed.Weekday())
	}
}

func TestSearch_PrimaryPlusBoundedAlternates(t *testing.T) {
	// An open Monday yields nine hourly slots; the result carries only the
	// first plus three alternates, in chronological order.
	anchor := time.Date(2026, time.January, 11, 0, 0, 0, 0, time.UTC) // Sunday
	src := &stubSource{busyByDate: map[string][]models.BusyInterval{}}
	engine := newTestEngine(src)

	result, err := engine.Search(context.Background(), anchor, time.Hour, 7, 4)
	require.NoError(t, err)
	require.NotNil(t, result.PrimarySlot)

	assert.Equal(t, 8, result.PrimarySlot.Start.Hour())
	require.Len(t, result.AlternateSlots, 3)
	prev := *result.PrimarySlot
	for _, s := range result.AlternateSlots {
		assert.True(t, s.Start.After(prev.Start) || s.Start.Equal(prev.End))
		prev = s
	}
}

func TestSearch_ExhaustedWindow(t *testing.T) {
	anchor := time.Date(2026, time.January, 9, 0, 0, 0, 0, time.UTC)
	src := &stubSource{busyByDate: map[string][]models.BusyInterval{}}
	// Every queried day is fully booked.
	for offset := 1; offset <= 14; offset++ {
		day := anchor.AddDate(0, 0, offset)
		src.busyByDate[day.Format("2006-01-02")] = []models.BusyInterval{dayBusy(day, 8, 17)}
	}
	engine := newTestEngine(src)

	result, err := engine.Search(context.Background(), anchor, time.Hour, 7, 4)
	require.NoError(t, err)

	assert.True(t, result.Exhausted)
	assert.Nil(t, result.PrimarySlot)
	assert.Empty(t, result.AlternateSlots)
	assert.Equal(t, 5, result.SearchedDays)
}

func TestSearch_ErrorPropagates(t *testing.T) {
	src := &stubSource{err: errors.New("calendar unavailable")}
	engine := newTestEngine(src)

	_, err := engine.Search(context.Background(), time.Date(2026, time.January, 9, 0, 0, 0, 0, time.UTC), time.Hour, 7, 4)
	require.Error(t, err)
}

func TestSearch_AbortsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &stubSource{}
	engine := newTestEngine(src)

	_, err := engine.Search(ctx, time.Date(2026, time.January, 9, 0, 0, 0, 0, time.UTC), time.Hour, 7, 4)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, src.queried)
}

func TestEngine_SlotDurationUsesConfiguredPolicy(t *testing.T) {
	engine := newTestEngine(&stubSource{})
	assert.Equal(t, 60*time.Minute, engine.SlotDuration(3))
	assert.Equal(t, 100*time.Minute, engine.SlotDuration(5))
}
