package availability

import (
	"context"
	"fmt"
	"time"

	"screenline/config"
	"screenline/models"
	"screenline/services/calendar"
	"screenline/utils"

	"go.uber.org/zap"
)

// maxAlternates is how many extra slots ride along with the primary one.
const maxAlternates = 3

// DefaultAvailabilityEngine computes bookable slots from the injected
// calendar source. It holds no state beyond configuration: every call
// reflects the calendar as it is at call time.
type DefaultAvailabilityEngine struct {
	Calendar calendar.Source
	Location *time.Location

	DayStartHour     int
	DayEndHour       int
	BaseSlotMinutes  int
	PerScreenMinutes int

	closedWeekdays map[time.Weekday]bool
}

// NewEngine builds an engine from AppConfig with the given calendar source.
func NewEngine(src calendar.Source) (*DefaultAvailabilityEngine, error) {
	loc, err := time.LoadLocation(config.AppConfig.BusinessTimezone)
	if err != nil {
		return nil, fmt.Errorf("availability: loading business timezone %q: %w", config.AppConfig.BusinessTimezone, err)
	}
	return &DefaultAvailabilityEngine{
		Calendar:         src,
		Location:         loc,
		DayStartHour:     config.AppConfig.DayStartHour,
		DayEndHour:       config.AppConfig.DayEndHour,
		BaseSlotMinutes:  config.AppConfig.BaseSlotMinutes,
		PerScreenMinutes: config.AppConfig.PerScreenMinutes,
		closedWeekdays: map[time.Weekday]bool{
			time.Saturday: true,
			time.Sunday:   true,
		},
	}, nil
}

// SlotDuration applies the job-size policy with this engine's constants.
func (e *DefaultAvailabilityEngine) SlotDuration(screens int) time.Duration {
	return SlotDuration(screens, e.PerScreenMinutes, e.BaseSlotMinutes)
}

// WorkWindowFor returns the business-hours window for one calendar date.
func (e *DefaultAvailabilityEngine) WorkWindowFor(date time.Time) models.WorkWindow {
	d := date.In(e.Location)
	return models.WorkWindow{
		DayStart: time.Date(d.Year(), d.Month(), d.Day(), e.DayStartHour, 0, 0, 0, e.Location),
		DayEnd:   time.Date(d.Year(), d.Month(), d.Day(), e.DayEndHour, 0, 0, 0, e.Location),
	}
}

// SlotsForDay computes the ordered bookable slots for a single date. A
// calendar fetch failure propagates as an error; it is never substituted
// with an empty busy set, which would report false availability.
func (e *DefaultAvailabilityEngine) SlotsForDay(ctx context.Context, date time.Time, d time.Duration) ([]models.Slot, error) {
	window := e.WorkWindowFor(date)
	busy, err := e.Calendar.ListBusyIntervals(ctx, window.DayStart, window.DayEnd)
	if err != nil {
		return nil, fmt.Errorf("availability: fetching busy intervals for %s: %w", date.Format("2006-01-02"), err)
	}

	var slots []models.Slot
	for _, free := range FreeIntervals(window, busy) {
		slots = append(slots, SliceSlots(free, d)...)
	}
	return slots, nil
}

// Search scans forward day by day, strictly after the anchor date, skipping
// closed weekdays, until it has enough slots or the window is exhausted.
// Slots come back in chronological order. The same function backs both the
// "on or after this date" and "next available opening" queries; they differ
// only in anchor and window length.
func (e *DefaultAvailabilityEngine) Search(ctx context.Context, after time.Time, d time.Duration, maxDaysAhead, maxSlotsWanted int) (models.AvailabilityResult, error) {
	logger := utils.GetLogger()
	anchor := after.In(e.Location)
	dayZero := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, e.Location)

	var accumulated []models.Slot
	searched := 0

	for offset := 1; offset <= maxDaysAhead; offset++ {
		// Abort at day boundaries if the caller has gone away.
		select {
		case <-ctx.Done():
			return models.AvailabilityResult{}, ctx.Err()
		default:
		}

		day := dayZero.AddDate(0, 0, offset)
		if e.closedWeekdays[day.Weekday()] {
			continue
		}
		searched++

		slots, err := e.SlotsForDay(ctx, day, d)
		if err != nil {
			return models.AvailabilityResult{}, err
		}
		accumulated = append(accumulated, slots...)
		if len(accumulated) >= maxSlotsWanted {
			break
		}
	}

	result := models.AvailabilityResult{SearchedDays: searched}
	if len(accumulated) == 0 {
		result.Exhausted = true
		logger.Info("availability search exhausted",
			zap.String("after", dayZero.Format("2006-01-02")),
			zap.Int("daysAhead", maxDaysAhead))
		return result, nil
	}

	result.PrimarySlot = &accumulated[0]
	if len(accumulated) > 1 {
		alternates := accumulated[1:]
		if len(alternates) > maxAlternates {
			alternates = alternates[:maxAlternates]
		}
		result.AlternateSlots = alternates
	}
	return result, nil
}
