// Package analytics derives workload reports from the availability
// engine's verified outputs: committed time, free share, conflict
// involvement, and each member's most pressing commitment of the week.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	groupRepo "aceup/database/repository/group"
	scheduleRepo "aceup/database/repository/schedule"
	"aceup/models"
	"aceup/services/availability"
)

// Load bucket thresholds, in committed blocks per week.
const (
	moderateLoadBlocks = 5
	heavyLoadBlocks    = 8
)

// Service produces weekly workload reports for a group.
type Service interface {
	GroupWeekReport(ctx context.Context, groupID string, weekStart time.Time) (*models.GroupWeekReport, error)
}

// DefaultAnalyticsService implements Service on top of the availability
// service and the schedule store.
type DefaultAnalyticsService struct {
	Availability availability.Service
	GroupRepo    groupRepo.GroupRepository
	ScheduleRepo scheduleRepo.ScheduleRepository
}

// GroupWeekReport computes the report for the week starting at weekStart.
func (s *DefaultAnalyticsService) GroupWeekReport(ctx context.Context, groupID string, weekStart time.Time) (*models.GroupWeekReport, error) {
	group, err := s.GroupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, availability.ErrGroupNotFound
	}

	week, err := s.Availability.GetGroupWeek(ctx, groupID, weekStart, models.DefaultEngineConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to compute week availability for group %s: %w", groupID, err)
	}

	weeklies, err := s.ScheduleRepo.GetByMemberIDs(ctx, group.MemberIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch member schedules for group %s: %w", groupID, err)
	}
	weeklyByID := make(map[string]models.WeeklyAvailability, len(weeklies))
	for _, w := range weeklies {
		weeklyByID[w.MemberID] = w
	}

	conflictCounts := make(map[string]int)
	totalFree, totalConflicts := 0, 0
	for _, res := range week {
		totalFree += len(res.FreeSlots)
		totalConflicts += len(res.Conflicts)
		for _, cs := range res.Conflicts {
			seen := make(map[string]bool)
			for _, c := range cs.Conflicts {
				seen[c.MemberA] = true
				seen[c.MemberB] = true
			}
			for id := range seen {
				conflictCounts[id]++
			}
		}
	}

	members := make([]models.MemberWorkload, 0, len(group.Members))
	for _, gm := range group.Members {
		wl := models.MemberWorkload{
			MemberID:      gm.MemberID,
			DisplayName:   gm.DisplayName,
			ConflictCount: conflictCounts[gm.MemberID],
			Load:          models.LoadLight,
		}
		if weekly, ok := weeklyByID[gm.MemberID]; ok {
			summarizeMemberWeek(&wl, weekly, weekStart)
		}
		members = append(members, wl)
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].MemberID < members[j].MemberID
	})

	return &models.GroupWeekReport{
		GroupID:        groupID,
		WeekStart:      weekStart.Format("2006-01-02"),
		Members:        members,
		TotalFreeSlots: totalFree,
		TotalConflicts: totalConflicts,
		GeneratedAt:    time.Now().UTC(),
	}, nil
}

// summarizeMemberWeek folds one member's normalized week into the workload
// record. Invalid days count as unknown, matching the engine's behavior.
func summarizeMemberWeek(wl *models.MemberWorkload, weekly models.WeeklyAvailability, weekStart time.Time) {
	committedMinutes, committedBlocks := 0, 0
	freeMinutes, coveredMinutes := 0, 0
	var top *models.CommitmentHighlight

	for d := time.Sunday; d <= time.Saturday; d++ {
		day := availability.ExpandDaySchedule(weekly, d, weekStart)
		canonical, err := availability.NormalizeIntervals(weekly.MemberID, day.Intervals)
		if err != nil {
			continue
		}
		for _, iv := range canonical {
			dur := iv.End - iv.Start
			coveredMinutes += dur
			if iv.Kind == models.KindFree {
				freeMinutes += dur
				continue
			}
			if iv.Kind.Committed() {
				committedMinutes += dur
				committedBlocks++
			}
			score := commitmentScore(iv)
			if top == nil || score > top.Score {
				top = &models.CommitmentHighlight{
					Weekday:  d,
					Start:    iv.Start,
					End:      iv.End,
					Kind:     iv.Kind,
					Priority: iv.Priority,
					Label:    iv.Label,
					Score:    score,
				}
			}
		}
	}

	wl.CommittedMinutes = committedMinutes
	wl.CommittedBlocks = committedBlocks
	if coveredMinutes > 0 {
		wl.FreeShare = float64(freeMinutes) / float64(coveredMinutes)
	}
	wl.Load = loadLevel(committedBlocks)
	wl.TopCommitment = top
}

func loadLevel(blocks int) models.LoadLevel {
	switch {
	case blocks >= heavyLoadBlocks:
		return models.LoadHeavy
	case blocks >= moderateLoadBlocks:
		return models.LoadModerate
	}
	return models.LoadLight
}

// commitmentScore ranks commitments by priority weight scaled by kind:
// exams outrank meetings outrank routine blocks of the same priority.
func commitmentScore(iv models.AvailabilityInterval) float64 {
	weight := float64(iv.Priority.Rank()+1) * 25.0
	return weight * kindMultiplier(iv.Kind)
}

func kindMultiplier(kind models.IntervalKind) float64 {
	switch kind {
	case models.KindExam:
		return 1.2
	case models.KindMeeting:
		return 1.1
	case models.KindLecture, models.KindAssignment:
		return 1.0
	case models.KindBusy:
		return 0.9
	}
	return 0.8
}
