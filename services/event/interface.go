package event

import (
	"context"
	"errors"

	eventRepo "aceup/database/repository/event"
	groupRepo "aceup/database/repository/group"
	"aceup/models"
)

// ErrEventNotFound is returned when an operation names an unknown event.
var ErrEventNotFound = errors.New("event not found")

// CreateEventRequest materializes a chosen common free slot into a group
// calendar event. Start/End are minutes from midnight on Date.
type CreateEventRequest struct {
	GroupID      string   `json:"groupId" binding:"required"`
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Date         string   `json:"date" binding:"required"` // "2006-01-02"
	Start        int      `json:"start"`
	End          int      `json:"end"`
	AttendeeIDs  []string `json:"attendeeIds" binding:"required,min=1"`
	SourceSlotID string   `json:"sourceSlotId"`
}

// RefreshEnqueuer schedules a background re-warm of a group's cached
// availability after a write.
type RefreshEnqueuer interface {
	EnqueueAvailabilityRefresh(ctx context.Context, groupID string) error
}

// Service turns chosen slots into persisted calendar events and renders
// them for export.
type Service interface {
	CreateFromSlot(ctx context.Context, req CreateEventRequest) (*models.CalendarEvent, error)
	Get(ctx context.Context, eventID string) (*models.CalendarEvent, error)
	ListGroupEvents(ctx context.Context, groupID string) ([]models.CalendarEvent, error)
	// Delete removes an event; ErrEventNotFound when it does not exist.
	Delete(ctx context.Context, eventID string) error
	// RenderICS serializes an event as an iCalendar document.
	RenderICS(event models.CalendarEvent) (string, error)
}

// DefaultEventService implements Service.
type DefaultEventService struct {
	Repo      eventRepo.EventRepository
	GroupRepo groupRepo.GroupRepository
	Refresher RefreshEnqueuer
}
