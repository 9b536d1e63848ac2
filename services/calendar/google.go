package calendar

import (
	"context"
	"fmt"
	"time"

	"screenline/models"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleSource reads busy intervals from a Google Calendar via the
// structured events API, queried by explicit time range.
type GoogleSource struct {
	svc        *gcal.Service
	calendarID string
	location   *time.Location
	timeout    time.Duration
}

// NewGoogleSource builds the calendar client once; the handle is reused
// across requests and never mutated afterwards.
func NewGoogleSource(ctx context.Context, credentialsFile, calendarID string, loc *time.Location, timeout time.Duration) (*GoogleSource, error) {
	opts := []option.ClientOption{option.WithScopes(gcal.CalendarReadonlyScope)}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	svc, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("calendar: creating google client: %w", err)
	}
	return &GoogleSource{
		svc:        svc,
		calendarID: calendarID,
		location:   loc,
		timeout:    timeout,
	}, nil
}

func (s *GoogleSource) ListBusyIntervals(ctx context.Context, from, to time.Time) ([]models.BusyInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	events, err := s.svc.Events.List(s.calendarID).
		Context(ctx).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		ShowDeleted(false).
		Do()
	if err != nil {
		return nil, fmt.Errorf("calendar: listing events: %w", err)
	}

	var busy []models.BusyInterval
	for _, ev := range events.Items {
		if ev.Status == "cancelled" || ev.Start == nil || ev.End == nil {
			continue
		}
		// All-day entries carry Date instead of DateTime; they block the
		// whole window and are expressed as the full queried range.
		if ev.Start.DateTime == "" || ev.End.DateTime == "" {
			busy = append(busy, models.BusyInterval{Start: from, End: to, Summary: ev.Summary})
			continue
		}
		start, err := time.Parse(time.RFC3339, ev.Start.DateTime)
		if err != nil {
			return nil, fmt.Errorf("calendar: parsing event start %q: %w", ev.Start.DateTime, err)
		}
		end, err := time.Parse(time.RFC3339, ev.End.DateTime)
		if err != nil {
			return nil, fmt.Errorf("calendar: parsing event end %q: %w", ev.End.DateTime, err)
		}
		busy = append(busy, models.BusyInterval{
			Start:   start.In(s.location),
			End:     end.In(s.location),
			Summary: ev.Summary,
		})
	}
	return busy, nil
}
