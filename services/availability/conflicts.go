package availability

import (
	"sort"

	"github.com/google/uuid"

	"aceup/models"
)

// minimum gap, in priority levels, for a priorityClash.
const priorityClashGap = 2

// DetectConflicts scans the segment list for windows where two or more
// members' commitments collide. A member participates only when their
// status is non-free and at or above the configured priority threshold; a
// low-priority personal item never blocks a meeting. Touching segments with
// an identical conflict set merge into one slot; the input need not be
// gapless. Results are ordered by start minute.
func DetectConflicts(segments []Segment, cfg models.EngineConfig) []models.ConflictingSlot {
	threshold := cfg.ConflictPriorityThreshold.Rank()

	var slots []models.ConflictingSlot
	var open *models.ConflictingSlot

	flush := func() {
		if open != nil {
			slots = append(slots, *open)
			open = nil
		}
	}

	for _, seg := range segments {
		entries := segmentConflicts(seg, threshold)
		if len(entries) == 0 {
			flush()
			continue
		}
		if open != nil && open.End == seg.Start && conflictsEqual(open.Conflicts, entries) {
			open.End = seg.End
			open.Label = models.FormatWindow(open.Start, open.End)
			continue
		}
		flush()
		open = &models.ConflictingSlot{
			ID:        uuid.NewString(),
			Start:     seg.Start,
			End:       seg.End,
			Conflicts: entries,
			Label:     models.FormatWindow(seg.Start, seg.End),
		}
	}
	flush()

	return slots
}

// segmentConflicts classifies every conflicting member pair within one
// segment, ordered by member id.
func segmentConflicts(seg Segment, threshold int) []models.MemberConflict {
	var ids []string
	for id, st := range seg.Status {
		if st.Kind != models.KindFree && st.Priority.Rank() >= threshold {
			ids = append(ids, id)
		}
	}
	if len(ids) < 2 {
		return nil
	}
	sort.Strings(ids)

	var entries []models.MemberConflict
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if ct, ok := classifyPair(seg.Status[ids[i]], seg.Status[ids[j]]); ok {
				entries = append(entries, models.MemberConflict{
					MemberA: ids[i],
					MemberB: ids[j],
					Type:    ct,
				})
			}
		}
	}
	return entries
}

// classifyPair decides whether two committed statuses block a shared
// meeting, and why. Double commitment takes precedence: two high-stakes
// obligations colliding is the strongest signal regardless of whether the
// kinds also differ.
func classifyPair(a, b MemberStatus) (models.ConflictType, bool) {
	bothCommitted := a.Kind.Committed() && b.Kind.Committed()

	if bothCommitted && a.Priority.Rank() >= models.PriorityHigh.Rank() && b.Priority.Rank() >= models.PriorityHigh.Rank() {
		return models.ConflictDoubleCommitment, true
	}
	if bothCommitted && a.Kind != b.Kind {
		return models.ConflictTypeMismatch, true
	}
	if diff := a.Priority.Rank() - b.Priority.Rank(); diff >= priorityClashGap || diff <= -priorityClashGap {
		return models.ConflictPriorityClash, true
	}
	return "", false
}

func conflictsEqual(a, b []models.MemberConflict) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
