package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aceup/models"
	"aceup/services/availability"
)

type fakeAvailability struct {
	week map[time.Weekday]models.AvailabilityResult
}

func (f *fakeAvailability) GetGroupAvailability(ctx context.Context, groupID string, weekStart time.Time, weekday time.Weekday, cfg models.EngineConfig) (models.AvailabilityResult, error) {
	return f.week[weekday], nil
}

func (f *fakeAvailability) GetGroupWeek(ctx context.Context, groupID string, weekStart time.Time, cfg models.EngineConfig) (map[time.Weekday]models.AvailabilityResult, error) {
	return f.week, nil
}

func (f *fakeAvailability) InvalidateGroup(ctx context.Context, groupID string) error {
	return nil
}

type fakeGroupRepo struct {
	group *models.Group
}

func (r *fakeGroupRepo) Create(ctx context.Context, group *models.Group) error { return nil }
func (r *fakeGroupRepo) GetByID(ctx context.Context, groupID string) (*models.Group, error) {
	if r.group != nil && r.group.ID == groupID {
		return r.group, nil
	}
	return nil, nil
}
func (r *fakeGroupRepo) ListByMember(ctx context.Context, memberID string) ([]models.Group, error) {
	return nil, nil
}
func (r *fakeGroupRepo) AddMember(ctx context.Context, groupID string, member models.GroupMember) error {
	return nil
}
func (r *fakeGroupRepo) RemoveMember(ctx context.Context, groupID, memberID string) error {
	return nil
}
func (r *fakeGroupRepo) Delete(ctx context.Context, groupID string) error { return nil }

type fakeScheduleRepo struct {
	schedules map[string]models.WeeklyAvailability
}

func (r *fakeScheduleRepo) Upsert(ctx context.Context, weekly models.WeeklyAvailability) error {
	return nil
}
func (r *fakeScheduleRepo) GetByMemberID(ctx context.Context, memberID string) (*models.WeeklyAvailability, error) {
	if w, ok := r.schedules[memberID]; ok {
		return &w, nil
	}
	return nil, nil
}
func (r *fakeScheduleRepo) GetByMemberIDs(ctx context.Context, memberIDs []string) ([]models.WeeklyAvailability, error) {
	var out []models.WeeklyAvailability
	for _, id := range memberIDs {
		if w, ok := r.schedules[id]; ok {
			out = append(out, w)
		}
	}
	return out, nil
}
func (r *fakeScheduleRepo) Delete(ctx context.Context, memberID string) error { return nil }

var reportWeekStart = time.Date(2026, time.January, 4, 0, 0, 0, 0, time.UTC)

func committedDay(weekday time.Weekday, blocks int) models.DayAvailability {
	day := models.DayAvailability{Weekday: weekday}
	for i := 0; i < blocks; i++ {
		start := 540 + i*120
		day.Intervals = append(day.Intervals, models.AvailabilityInterval{
			Start: start, End: start + 60, Kind: models.KindLecture, Priority: models.PriorityMedium,
		})
	}
	return day
}

func newReportService(week map[time.Weekday]models.AvailabilityResult, schedules map[string]models.WeeklyAvailability) *DefaultAnalyticsService {
	return &DefaultAnalyticsService{
		Availability: &fakeAvailability{week: week},
		GroupRepo: &fakeGroupRepo{group: &models.Group{
			ID:   "g1",
			Name: "Study Group",
			Members: []models.GroupMember{
				{MemberID: "alice", DisplayName: "Alice"},
				{MemberID: "bob", DisplayName: "Bob"},
			},
		}},
		ScheduleRepo: &fakeScheduleRepo{schedules: schedules},
	}
}

func TestGroupWeekReportUnknownGroup(t *testing.T) {
	svc := newReportService(nil, nil)
	_, err := svc.GroupWeekReport(context.Background(), "missing", reportWeekStart)
	require.Error(t, err)
	assert.True(t, errors.Is(err, availability.ErrGroupNotFound))
}

func TestGroupWeekReportTotalsAndConflictCounts(t *testing.T) {
	week := map[time.Weekday]models.AvailabilityResult{
		time.Monday: {
			FreeSlots: []models.CommonFreeSlot{{Start: 540, End: 600}},
			Conflicts: []models.ConflictingSlot{{
				Start: 600, End: 660,
				Conflicts: []models.MemberConflict{{MemberA: "alice", MemberB: "bob", Type: models.ConflictTypeMismatch}},
			}},
		},
		time.Wednesday: {
			FreeSlots: []models.CommonFreeSlot{{Start: 540, End: 600}, {Start: 720, End: 780}},
		},
	}
	svc := newReportService(week, nil)

	report, err := svc.GroupWeekReport(context.Background(), "g1", reportWeekStart)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-04", report.WeekStart)
	assert.Equal(t, 3, report.TotalFreeSlots)
	assert.Equal(t, 1, report.TotalConflicts)

	require.Len(t, report.Members, 2)
	assert.Equal(t, "alice", report.Members[0].MemberID)
	assert.Equal(t, 1, report.Members[0].ConflictCount)
	assert.Equal(t, 1, report.Members[1].ConflictCount)
}

func TestGroupWeekReportLoadLevels(t *testing.T) {
	schedules := map[string]models.WeeklyAvailability{
		// Nine lecture blocks across the week: heavy.
		"alice": {
			MemberID: "alice",
			Days: []models.DayAvailability{
				committedDay(time.Monday, 3),
				committedDay(time.Wednesday, 3),
				committedDay(time.Friday, 3),
			},
		},
		// Two blocks: light.
		"bob": {
			MemberID: "bob",
			Days:     []models.DayAvailability{committedDay(time.Tuesday, 2)},
		},
	}
	svc := newReportService(nil, schedules)

	report, err := svc.GroupWeekReport(context.Background(), "g1", reportWeekStart)
	require.NoError(t, err)
	require.Len(t, report.Members, 2)

	alice := report.Members[0]
	assert.Equal(t, models.LoadHeavy, alice.Load)
	assert.Equal(t, 9, alice.CommittedBlocks)
	assert.Equal(t, 9*60, alice.CommittedMinutes)
	require.NotNil(t, alice.TopCommitment)
	assert.Equal(t, models.KindLecture, alice.TopCommitment.Kind)

	bob := report.Members[1]
	assert.Equal(t, models.LoadLight, bob.Load)
	assert.Equal(t, 2, bob.CommittedBlocks)
}

func TestGroupWeekReportFreeShare(t *testing.T) {
	schedules := map[string]models.WeeklyAvailability{
		"alice": {
			MemberID: "alice",
			Days: []models.DayAvailability{{
				Weekday: time.Monday,
				Intervals: []models.AvailabilityInterval{
					{Start: 540, End: 600, Kind: models.KindFree, Priority: models.PriorityLow},
					{Start: 600, End: 720, Kind: models.KindExam, Priority: models.PriorityHigh},
				},
			}},
		},
	}
	svc := newReportService(nil, schedules)

	report, err := svc.GroupWeekReport(context.Background(), "g1", reportWeekStart)
	require.NoError(t, err)

	alice := report.Members[0]
	assert.InDelta(t, 1.0/3.0, alice.FreeShare, 1e-9)
	require.NotNil(t, alice.TopCommitment)
	assert.Equal(t, models.KindExam, alice.TopCommitment.Kind)
}

func TestCommitmentScoreOrdering(t *testing.T) {
	exam := models.AvailabilityInterval{Kind: models.KindExam, Priority: models.PriorityHigh}
	meeting := models.AvailabilityInterval{Kind: models.KindMeeting, Priority: models.PriorityHigh}
	lecture := models.AvailabilityInterval{Kind: models.KindLecture, Priority: models.PriorityHigh}
	criticalExam := models.AvailabilityInterval{Kind: models.KindExam, Priority: models.PriorityCritical}

	assert.Greater(t, commitmentScore(exam), commitmentScore(meeting))
	assert.Greater(t, commitmentScore(meeting), commitmentScore(lecture))
	assert.Greater(t, commitmentScore(criticalExam), commitmentScore(exam))
}

func TestLoadLevelBoundaries(t *testing.T) {
	assert.Equal(t, models.LoadLight, loadLevel(4))
	assert.Equal(t, models.LoadModerate, loadLevel(5))
	assert.Equal(t, models.LoadModerate, loadLevel(7))
	assert.Equal(t, models.LoadHeavy, loadLevel(8))
}
