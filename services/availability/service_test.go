package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aceup/models"
)

type stubGroupRepo struct {
	group *models.Group
}

func (r *stubGroupRepo) Create(ctx context.Context, group *models.Group) error { return nil }
func (r *stubGroupRepo) GetByID(ctx context.Context, groupID string) (*models.Group, error) {
	if r.group != nil && r.group.ID == groupID {
		return r.group, nil
	}
	return nil, nil
}
func (r *stubGroupRepo) ListByMember(ctx context.Context, memberID string) ([]models.Group, error) {
	return nil, nil
}
func (r *stubGroupRepo) AddMember(ctx context.Context, groupID string, member models.GroupMember) error {
	return nil
}
func (r *stubGroupRepo) RemoveMember(ctx context.Context, groupID, memberID string) error {
	return nil
}
func (r *stubGroupRepo) Delete(ctx context.Context, groupID string) error { return nil }

type stubScheduleRepo struct {
	schedules []models.WeeklyAvailability
}

func (r *stubScheduleRepo) Upsert(ctx context.Context, weekly models.WeeklyAvailability) error {
	return nil
}
func (r *stubScheduleRepo) GetByMemberID(ctx context.Context, memberID string) (*models.WeeklyAvailability, error) {
	return nil, nil
}
func (r *stubScheduleRepo) GetByMemberIDs(ctx context.Context, memberIDs []string) ([]models.WeeklyAvailability, error) {
	return r.schedules, nil
}
func (r *stubScheduleRepo) Delete(ctx context.Context, memberID string) error { return nil }

func mondayFree(memberID string, start, end int) models.WeeklyAvailability {
	return models.WeeklyAvailability{
		MemberID: memberID,
		Days: []models.DayAvailability{{
			Weekday: time.Monday,
			Intervals: []models.AvailabilityInterval{
				{Start: start, End: end, Kind: models.KindFree, Priority: models.PriorityLow},
			},
		}},
	}
}

func newStubService(group *models.Group, schedules []models.WeeklyAvailability) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		GroupRepo:    &stubGroupRepo{group: group},
		ScheduleRepo: &stubScheduleRepo{schedules: schedules},
	}
}

func TestGetGroupAvailabilityUnknownGroup(t *testing.T) {
	svc := newStubService(nil, nil)
	_, err := svc.GetGroupAvailability(context.Background(), "missing", testWeekStart, time.Monday, models.DefaultEngineConfig())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGroupNotFound))
}

func TestGetGroupAvailabilityComputesWithoutCache(t *testing.T) {
	group := &models.Group{ID: "g1", Members: []models.GroupMember{
		{MemberID: "alice"}, {MemberID: "bob"},
	}}
	schedules := []models.WeeklyAvailability{
		mondayFree("alice", 540, 720),
		mondayFree("bob", 540, 660),
	}
	svc := newStubService(group, schedules)

	res, err := svc.GetGroupAvailability(context.Background(), "g1", testWeekStart, time.Monday, models.DefaultEngineConfig())
	require.NoError(t, err)
	require.Len(t, res.FreeSlots, 1)
	assert.Equal(t, 540, res.FreeSlots[0].Start)
	assert.Equal(t, 660, res.FreeSlots[0].End)
	assert.Equal(t, []string{"alice", "bob"}, res.FreeSlots[0].AvailableMemberIDs)
}

func TestGetGroupWeekCoversAllWeekdays(t *testing.T) {
	group := &models.Group{ID: "g1", Members: []models.GroupMember{{MemberID: "alice"}}}
	svc := newStubService(group, []models.WeeklyAvailability{mondayFree("alice", 540, 720)})

	week, err := svc.GetGroupWeek(context.Background(), "g1", testWeekStart, models.DefaultEngineConfig())
	require.NoError(t, err)
	require.Len(t, week, 7)

	assert.Len(t, week[time.Monday].FreeSlots, 1)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d == time.Monday {
			continue
		}
		assert.Empty(t, week[d].FreeSlots, "unexpected slots on %s", d)
	}
}

func TestCacheKeyVariesWithQuery(t *testing.T) {
	svc := newStubService(nil, nil)
	base, err := svc.cacheKey("g1", testWeekStart, time.Monday, models.DefaultEngineConfig())
	require.NoError(t, err)

	otherDay, err := svc.cacheKey("g1", testWeekStart, time.Tuesday, models.DefaultEngineConfig())
	require.NoError(t, err)
	assert.NotEqual(t, base, otherDay)

	cfg := models.DefaultEngineConfig()
	cfg.QuorumFraction = 0.5
	otherCfg, err := svc.cacheKey("g1", testWeekStart, time.Monday, cfg)
	require.NoError(t, err)
	assert.NotEqual(t, base, otherCfg)

	otherWeek, err := svc.cacheKey("g1", testWeekStart.AddDate(0, 0, 7), time.Monday, models.DefaultEngineConfig())
	require.NoError(t, err)
	assert.NotEqual(t, base, otherWeek)
}
