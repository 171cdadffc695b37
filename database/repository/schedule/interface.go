package scheduleRepo

import (
	"context"

	"aceup/models"
)

// ScheduleRepository stores each member's weekly availability: day-of-week
// interval records plus recurring commitment definitions.
type ScheduleRepository interface {
	Upsert(ctx context.Context, weekly models.WeeklyAvailability) error
	// GetByMemberID returns nil (not an error) when the member has no
	// stored schedule.
	GetByMemberID(ctx context.Context, memberID string) (*models.WeeklyAvailability, error)
	// GetByMemberIDs returns whatever schedules exist for the given ids;
	// members without one are simply absent from the result.
	GetByMemberIDs(ctx context.Context, memberIDs []string) ([]models.WeeklyAvailability, error)
	Delete(ctx context.Context, memberID string) error
}
