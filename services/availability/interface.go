package availability

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	groupRepo "aceup/database/repository/group"
	scheduleRepo "aceup/database/repository/schedule"
	"aceup/models"
)

// Service answers availability queries for a group, one weekday at a time.
type Service interface {
	// GetGroupAvailability computes (or serves from cache) the common free
	// slots and conflicts for the group on the given weekday of the week
	// starting at weekStart.
	GetGroupAvailability(ctx context.Context, groupID string, weekStart time.Time, weekday time.Weekday, cfg models.EngineConfig) (models.AvailabilityResult, error)

	// GetGroupWeek computes availability for every weekday of the week.
	GetGroupWeek(ctx context.Context, groupID string, weekStart time.Time, cfg models.EngineConfig) (map[time.Weekday]models.AvailabilityResult, error)

	// InvalidateGroup drops every cached result for the group, e.g. after
	// a member's schedule changes.
	InvalidateGroup(ctx context.Context, groupID string) error
}

// DefaultAvailabilityService implements Service on top of the group and
// schedule repositories with a Redis read-through cache.
type DefaultAvailabilityService struct {
	GroupRepo    groupRepo.GroupRepository
	ScheduleRepo scheduleRepo.ScheduleRepository
	CacheClient  *redis.Client
	CacheTTL     time.Duration
}
