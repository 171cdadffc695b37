package eventRepo

import (
	"context"

	"aceup/models"
)

// EventRepository stores calendar events materialized from chosen free
// slots.
type EventRepository interface {
	Insert(ctx context.Context, event *models.CalendarEvent) error
	// GetByID returns nil (not an error) when the event does not exist.
	GetByID(ctx context.Context, eventID string) (*models.CalendarEvent, error)
	ListByGroup(ctx context.Context, groupID string) ([]models.CalendarEvent, error)
	Delete(ctx context.Context, eventID string) error
}
