package services

import (
	"fmt"
	"time"

	"pridehub/models"
)

type EventPhase string

const (
	PhaseUpcoming EventPhase = "upcoming"
	PhaseOngoing  EventPhase = "ongoing"
	PhasePast     EventPhase = "past"
)

const (
	eventDateLayout = "2006-01-02"
	eventTimeLayout = "15:04"
)

// ClassifyEvent buckets an event relative to now. Stored dates and times
// are canonical YYYY-MM-DD and 24-hour HH:MM strings, so ordering is
// lexicographic; now is rendered with the same layouts. Never compare
// against a locale-formatted clock string here.
func ClassifyEvent(e models.Event, now time.Time) EventPhase {
	today := now.Format(eventDateLayout)
	clock := now.Format(eventTimeLayout)

	if e.StartDate > today || (e.StartDate == today && e.StartTime > clock) {
		return PhaseUpcoming
	}
	if e.EndDate < today || (e.EndDate == today && e.EndTime < clock) {
		return PhasePast
	}
	return PhaseOngoing
}

// FilterEventsByPhase keeps the events in the given phase, preserving
// input order.
func FilterEventsByPhase(events []models.Event, phase EventPhase, now time.Time) []models.Event {
	filtered := []models.Event{}
	for _, e := range events {
		if ClassifyEvent(e, now) == phase {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// ValidateEventWindow rejects malformed date or time strings and windows
// that end before they start.
func ValidateEventWindow(startDate, startTime, endDate, endTime string) error {
	layout := eventDateLayout + " " + eventTimeLayout
	start, err := time.Parse(layout, startDate+" "+startTime)
	if err != nil {
		return fmt.Errorf("%w: bad start %q %q", ErrInvalidRange, startDate, startTime)
	}
	end, err := time.Parse(layout, endDate+" "+endTime)
	if err != nil {
		return fmt.Errorf("%w: bad end %q %q", ErrInvalidRange, endDate, endTime)
	}
	if end.Before(start) {
		return ErrInvalidRange
	}
	return nil
}
