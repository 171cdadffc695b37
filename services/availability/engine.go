package availability

import (
	"fmt"
	"sync"
	"time"

	"aceup/models"
)

// ComputeAvailability runs the full pipeline for one (group, weekday) pair:
// per-member normalization (parallel), a single timeline sweep, then free
// slot extraction and conflict detection over the shared segment list. The
// computation is pure: inputs are read-only, nothing is cached, and
// identical inputs always produce identically ordered output. An empty
// member list yields an empty result.
func ComputeAvailability(members []models.MemberSchedule, weekday time.Weekday, cfg models.EngineConfig) models.AvailabilityResult {
	cfg = cfg.Normalize()

	if len(members) == 0 {
		return models.AvailabilityResult{
			FreeSlots: []models.CommonFreeSlot{},
			Conflicts: []models.ConflictingSlot{},
		}
	}

	type normalized struct {
		intervals []models.AvailabilityInterval
		err       error
	}
	results := make([]normalized, len(members))

	// Per-member normalization is embarrassingly parallel.
	var wg sync.WaitGroup
	for i := range members {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m := members[i]
			if m.Weekday != weekday {
				results[i].err = &InvalidIntervalError{
					MemberID: m.MemberID,
					Reason:   fmt.Errorf("schedule is for %s, not %s", m.Weekday, weekday),
				}
				return
			}
			results[i].intervals, results[i].err = NormalizeIntervals(m.MemberID, m.Intervals)
		}(i)
	}
	wg.Wait()

	schedules := make(map[string][]models.AvailabilityInterval, len(members))
	var skipped []models.SkippedMember
	knownCount := 0
	for i, m := range members {
		if results[i].err != nil {
			// A bad schedule demotes this member to unknown; everyone else
			// still gets a result.
			skipped = append(skipped, models.SkippedMember{
				MemberID: m.MemberID,
				Reason:   results[i].err.Error(),
			})
			continue
		}
		if len(results[i].intervals) == 0 {
			continue // no data for this weekday
		}
		schedules[m.MemberID] = results[i].intervals
		knownCount++
	}

	segments := SweepDay(schedules)

	// Free slots win where both conditions hold: a window where a quorum
	// can meet is an answer, not a problem, so conflict detection only sees
	// the segments left outside the emitted slots. The two lists therefore
	// never overlap.
	freeSlots := ExtractFreeSlots(segments, knownCount, cfg)
	conflicts := DetectConflicts(segmentsOutsideSlots(segments, freeSlots), cfg)

	if freeSlots == nil {
		freeSlots = []models.CommonFreeSlot{}
	}
	if conflicts == nil {
		conflicts = []models.ConflictingSlot{}
	}
	return models.AvailabilityResult{
		FreeSlots:      freeSlots,
		Conflicts:      conflicts,
		SkippedMembers: skipped,
	}
}

// segmentsOutsideSlots drops every segment covered by a free slot. Slots
// are unions of whole segments, so a segment is either fully inside one or
// fully outside.
func segmentsOutsideSlots(segments []Segment, slots []models.CommonFreeSlot) []Segment {
	if len(slots) == 0 {
		return segments
	}
	var out []Segment
	for _, seg := range segments {
		covered := false
		for _, slot := range slots {
			if seg.Start < slot.End && slot.Start < seg.End {
				covered = true
				break
			}
		}
		if !covered {
			out = append(out, seg)
		}
	}
	return out
}
