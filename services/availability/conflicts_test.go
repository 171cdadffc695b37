package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aceup/models"
)

func status(kind models.IntervalKind, p models.Priority) MemberStatus {
	return MemberStatus{Kind: kind, Priority: p}
}

func TestDetectConflictsNoParticipants(t *testing.T) {
	segments := []Segment{
		{Start: 540, End: 720, Status: map[string]MemberStatus{
			"alice": status(models.KindFree, models.PriorityLow),
			"bob":   status(models.KindFree, models.PriorityLow),
		}},
	}
	slots := DetectConflicts(segments, models.DefaultEngineConfig())
	assert.Empty(t, slots)
}

func TestDetectConflictsDoubleCommitment(t *testing.T) {
	segments := []Segment{
		{Start: 630, End: 660, Status: map[string]MemberStatus{
			"alice": status(models.KindMeeting, models.PriorityHigh),
			"bob":   status(models.KindExam, models.PriorityHigh),
		}},
	}
	slots := DetectConflicts(segments, models.DefaultEngineConfig())
	require.Len(t, slots, 1)
	require.Len(t, slots[0].Conflicts, 1)

	c := slots[0].Conflicts[0]
	assert.Equal(t, "alice", c.MemberA)
	assert.Equal(t, "bob", c.MemberB)
	// The kinds also differ, but two high-stakes obligations colliding is
	// the stronger classification.
	assert.Equal(t, models.ConflictDoubleCommitment, c.Type)
}

func TestDetectConflictsTypeMismatch(t *testing.T) {
	segments := []Segment{
		{Start: 540, End: 600, Status: map[string]MemberStatus{
			"alice": status(models.KindLecture, models.PriorityMedium),
			"bob":   status(models.KindMeeting, models.PriorityMedium),
		}},
	}
	slots := DetectConflicts(segments, models.DefaultEngineConfig())
	require.Len(t, slots, 1)
	require.Len(t, slots[0].Conflicts, 1)
	assert.Equal(t, models.ConflictTypeMismatch, slots[0].Conflicts[0].Type)
}

func TestDetectConflictsPriorityClash(t *testing.T) {
	segments := []Segment{
		{Start: 540, End: 600, Status: map[string]MemberStatus{
			"alice": status(models.KindBusy, models.PriorityCritical),
			"bob":   status(models.KindBusy, models.PriorityMedium),
		}},
	}
	slots := DetectConflicts(segments, models.DefaultEngineConfig())
	require.Len(t, slots, 1)
	require.Len(t, slots[0].Conflicts, 1)
	assert.Equal(t, models.ConflictPriorityClash, slots[0].Conflicts[0].Type)
}

func TestDetectConflictsAdjacentPrioritiesDoNotClash(t *testing.T) {
	segments := []Segment{
		{Start: 540, End: 600, Status: map[string]MemberStatus{
			"alice": status(models.KindBusy, models.PriorityHigh),
			"bob":   status(models.KindBusy, models.PriorityMedium),
		}},
	}
	slots := DetectConflicts(segments, models.DefaultEngineConfig())
	assert.Empty(t, slots)
}

func TestDetectConflictsRespectsPriorityThreshold(t *testing.T) {
	// Bob's personal block sits below the medium threshold, so it never
	// participates even against a critical commitment.
	segments := []Segment{
		{Start: 540, End: 600, Status: map[string]MemberStatus{
			"alice": status(models.KindExam, models.PriorityCritical),
			"bob":   status(models.KindPersonal, models.PriorityLow),
		}},
	}
	slots := DetectConflicts(segments, models.DefaultEngineConfig())
	assert.Empty(t, slots)

	cfg := models.DefaultEngineConfig()
	cfg.ConflictPriorityThreshold = models.PriorityLow
	slots = DetectConflicts(segments, cfg)
	require.Len(t, slots, 1)
	assert.Equal(t, models.ConflictPriorityClash, slots[0].Conflicts[0].Type)
}

func TestDetectConflictsMergesIdenticalAdjacentSegments(t *testing.T) {
	entry := map[string]MemberStatus{
		"alice": status(models.KindLecture, models.PriorityMedium),
		"bob":   status(models.KindMeeting, models.PriorityMedium),
	}
	segments := []Segment{
		{Start: 540, End: 600, Status: entry},
		{Start: 600, End: 660, Status: entry},
	}
	slots := DetectConflicts(segments, models.DefaultEngineConfig())
	require.Len(t, slots, 1)
	assert.Equal(t, 540, slots[0].Start)
	assert.Equal(t, 660, slots[0].End)
	assert.Equal(t, models.FormatWindow(540, 660), slots[0].Label)
}

func TestDetectConflictsDoesNotMergeAcrossGaps(t *testing.T) {
	// An identical conflict set on both sides of a removed window stays two
	// slots; merging across the gap would re-cover it.
	entry := map[string]MemberStatus{
		"alice": status(models.KindLecture, models.PriorityMedium),
		"bob":   status(models.KindMeeting, models.PriorityMedium),
	}
	segments := []Segment{
		{Start: 540, End: 600, Status: entry},
		{Start: 660, End: 720, Status: entry},
	}
	slots := DetectConflicts(segments, models.DefaultEngineConfig())
	require.Len(t, slots, 2)
	assert.Equal(t, 600, slots[0].End)
	assert.Equal(t, 660, slots[1].Start)
}

func TestDetectConflictsOrderedByStart(t *testing.T) {
	segments := []Segment{
		{Start: 540, End: 600, Status: map[string]MemberStatus{
			"alice": status(models.KindLecture, models.PriorityMedium),
			"bob":   status(models.KindMeeting, models.PriorityMedium),
		}},
		{Start: 600, End: 660, Status: map[string]MemberStatus{
			"alice": status(models.KindFree, models.PriorityLow),
			"bob":   status(models.KindMeeting, models.PriorityMedium),
		}},
		{Start: 660, End: 720, Status: map[string]MemberStatus{
			"alice": status(models.KindExam, models.PriorityHigh),
			"bob":   status(models.KindMeeting, models.PriorityHigh),
		}},
	}
	slots := DetectConflicts(segments, models.DefaultEngineConfig())
	require.Len(t, slots, 2)
	assert.Less(t, slots[0].Start, slots[1].Start)
	assert.Equal(t, models.ConflictTypeMismatch, slots[0].Conflicts[0].Type)
	assert.Equal(t, models.ConflictDoubleCommitment, slots[1].Conflicts[0].Type)
}

func TestClassifyPairSameKindSamePriority(t *testing.T) {
	_, ok := classifyPair(
		status(models.KindLecture, models.PriorityMedium),
		status(models.KindLecture, models.PriorityMedium),
	)
	assert.False(t, ok)
}
