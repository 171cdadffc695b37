package event

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"aceup/models"
)

// RenderICS serializes a calendar event as an iCalendar document suitable
// for import into the members' own calendar apps. Times are emitted in UTC
// since stored schedules are already normalized to one zone.
func (s *DefaultEventService) RenderICS(event models.CalendarEvent) (string, error) {
	start, err := event.StartTime(time.UTC)
	if err != nil {
		return "", fmt.Errorf("failed to resolve event start: %w", err)
	}
	end, err := event.EndTime(time.UTC)
	if err != nil {
		return "", fmt.Errorf("failed to resolve event end: %w", err)
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodRequest)
	cal.SetProductId("-//AceUp//Group Calendar//EN")

	ve := cal.AddEvent(event.ID)
	ve.SetCreatedTime(event.CreatedAt)
	ve.SetDtStampTime(event.CreatedAt)
	ve.SetStartAt(start)
	ve.SetEndAt(end)
	ve.SetSummary(event.Title)
	if event.Description != "" {
		ve.SetDescription(event.Description)
	}
	for _, attendee := range event.AttendeeIDs {
		ve.AddAttendee(attendee, ical.ParticipationStatusNeedsAction)
	}

	return cal.Serialize(), nil
}
