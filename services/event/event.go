package event

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"aceup/models"
	"aceup/services/availability"
	"aceup/utils"
)

// CreateFromSlot validates and persists a calendar event built from a
// chosen free slot, then schedules a cache re-warm for the group.
func (s *DefaultEventService) CreateFromSlot(ctx context.Context, req CreateEventRequest) (*models.CalendarEvent, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, fmt.Errorf("invalid event date %q: %w", req.Date, err)
	}
	if req.Start < 0 || req.End > models.MinutesPerDay-1 || req.Start >= req.End {
		return nil, fmt.Errorf("invalid event window [%d,%d)", req.Start, req.End)
	}

	group, err := s.GroupRepo.GetByID(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, availability.ErrGroupNotFound
	}

	event := &models.CalendarEvent{
		ID:           uuid.NewString(),
		GroupID:      req.GroupID,
		Title:        req.Title,
		Description:  req.Description,
		Date:         req.Date,
		Start:        req.Start,
		End:          req.End,
		AttendeeIDs:  req.AttendeeIDs,
		SourceSlotID: req.SourceSlotID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Insert(ctx, event); err != nil {
		return nil, err
	}

	if s.Refresher != nil {
		// The new commitment changes the group's availability; recompute
		// in the background rather than on the next query.
		if err := s.Refresher.EnqueueAvailabilityRefresh(ctx, req.GroupID); err != nil {
			utils.GetLogger().Warn("failed to enqueue availability refresh",
				zap.String("groupID", req.GroupID), zap.Error(err))
		}
	}
	return event, nil
}

func (s *DefaultEventService) Get(ctx context.Context, eventID string) (*models.CalendarEvent, error) {
	return s.Repo.GetByID(ctx, eventID)
}

func (s *DefaultEventService) ListGroupEvents(ctx context.Context, groupID string) ([]models.CalendarEvent, error) {
	return s.Repo.ListByGroup(ctx, groupID)
}

// Delete removes a stored event and schedules a cache re-warm for its
// group, since the freed window changes the availability picture.
func (s *DefaultEventService) Delete(ctx context.Context, eventID string) error {
	event, err := s.Repo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}
	if err := s.Repo.Delete(ctx, eventID); err != nil {
		return err
	}

	if s.Refresher != nil {
		if err := s.Refresher.EnqueueAvailabilityRefresh(ctx, event.GroupID); err != nil {
			utils.GetLogger().Warn("failed to enqueue availability refresh",
				zap.String("groupID", event.GroupID), zap.Error(err))
		}
	}
	return nil
}
