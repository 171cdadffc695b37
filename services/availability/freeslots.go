package availability

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"aceup/models"
)

// ExtractFreeSlots scans the segment list for maximal runs in which a
// quorum of known members is simultaneously free. knownCount is the number
// of members with any data for the weekday; members without data sit
// outside both the quorum denominator and the availability sets, since
// unknown is not evidence of availability.
func ExtractFreeSlots(segments []Segment, knownCount int, cfg models.EngineConfig) []models.CommonFreeSlot {
	if knownCount == 0 {
		return nil
	}
	quorum := int(math.Ceil(cfg.QuorumFraction * float64(knownCount)))
	if quorum < 1 {
		quorum = 1
	}

	type run struct {
		start, end int
		members    []string // intersection of free sets across the run
	}
	var slots []models.CommonFreeSlot
	var open *run

	flush := func() {
		if open == nil {
			return
		}
		duration := open.end - open.start
		if duration >= cfg.MinimumDurationMinutes {
			confidence := Confidence(len(open.members), knownCount, duration, cfg.IdealDurationMinutes)
			slots = append(slots, models.CommonFreeSlot{
				ID:                 uuid.NewString(),
				Start:              open.start,
				End:                open.end,
				DurationMinutes:    duration,
				AvailableMemberIDs: open.members,
				Confidence:         confidence,
				Strength:           models.StrengthForConfidence(confidence),
				Label:              models.FormatWindow(open.start, open.end),
			})
		}
		open = nil
	}

	for _, seg := range segments {
		free := freeMembers(seg)
		if len(free) < quorum {
			flush()
			continue
		}
		if open != nil {
			// Merging is allowed even when the exact free sets differ, as
			// long as the intersection across the whole run still meets
			// quorum: everyone in the merged set is free for the entire
			// window.
			merged := intersect(open.members, free)
			if len(merged) >= quorum {
				open.end = seg.End
				open.members = merged
				continue
			}
			flush()
		}
		open = &run{start: seg.Start, end: seg.End, members: free}
	}
	flush()

	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Confidence != slots[j].Confidence {
			return slots[i].Confidence > slots[j].Confidence
		}
		if slots[i].DurationMinutes != slots[j].DurationMinutes {
			return slots[i].DurationMinutes > slots[j].DurationMinutes
		}
		return slots[i].Start < slots[j].Start
	})
	return slots
}

// freeMembers returns the sorted ids of members free throughout a segment.
func freeMembers(seg Segment) []string {
	var ids []string
	for id, st := range seg.Status {
		if st.Kind == models.KindFree {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// intersect returns the elements common to two sorted string slices.
func intersect(a, b []string) []string {
	var out []string
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}
