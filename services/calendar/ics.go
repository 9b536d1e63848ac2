package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"screenline/models"

	ical "github.com/arran4/golang-ical"
)

// ICSSource reads busy intervals from a subscribable ICS feed. The feed is
// fetched whole and filtered client-side to the requested range.
type ICSSource struct {
	client   *http.Client
	feedURL  string
	location *time.Location
}

func NewICSSource(feedURL string, loc *time.Location, timeout time.Duration) *ICSSource {
	return &ICSSource{
		client:   &http.Client{Timeout: timeout},
		feedURL:  feedURL,
		location: loc,
	}
}

func (s *ICSSource) ListBusyIntervals(ctx context.Context, from, to time.Time) ([]models.BusyInterval, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("calendar: building ics request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calendar: fetching ics feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("calendar: ics feed returned status %d", resp.StatusCode)
	}

	cal, err := ical.ParseCalendar(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("calendar: parsing ics feed: %w", err)
	}

	var busy []models.BusyInterval
	for _, ev := range cal.Events() {
		start, err := ev.GetStartAt()
		if err != nil {
			continue
		}
		end, err := ev.GetEndAt()
		if err != nil {
			continue
		}
		start = start.In(s.location)
		end = end.In(s.location)
		// Keep entries that overlap [from, to).
		if !end.After(from) || !start.Before(to) {
			continue
		}
		summary := ""
		if p := ev.GetProperty(ical.ComponentPropertySummary); p != nil {
			summary = p.Value
		}
		busy = append(busy, models.BusyInterval{Start: start, End: end, Summary: summary})
	}
	return busy, nil
}
