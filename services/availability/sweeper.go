package availability

import (
	"sort"

	"aceup/models"
)

// MemberStatus is one member's state across a segment. The priority rides
// along because conflict classification needs it.
type MemberStatus struct {
	Kind     models.IntervalKind
	Priority models.Priority
}

// Segment is a sweep-produced maximal span over which every member's status
// is constant. Segments for one weekday partition [0,1440) with no gaps and
// no overlaps. A member absent from Status has no data for the span, which
// is distinct from being free.
type Segment struct {
	Start  int
	End    int
	Status map[string]MemberStatus
}

type boundary struct {
	minute int
	enter  bool
	member string
	status MemberStatus
}

// SweepDay merges all members' canonical interval lists for one weekday
// into an ordered, gapless, non-overlapping segment sequence spanning
// [0,1440). This single O(n log n) pass is the only place status-change
// detection happens; downstream consumers trust its output to be a correct
// partition.
func SweepDay(normalized map[string][]models.AvailabilityInterval) []Segment {
	var events []boundary
	for memberID, intervals := range normalized {
		for _, iv := range intervals {
			st := MemberStatus{Kind: iv.Kind, Priority: iv.Priority}
			events = append(events, boundary{minute: iv.Start, enter: true, member: memberID, status: st})
			events = append(events, boundary{minute: iv.End, enter: false, member: memberID, status: st})
		}
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].minute != events[j].minute {
			return events[i].minute < events[j].minute
		}
		// Exits apply before enters within a minute so an interval ending
		// exactly where the member's next one begins hands over cleanly
		// instead of leaving a zero-width gap.
		if events[i].enter != events[j].enter {
			return !events[i].enter
		}
		return events[i].member < events[j].member
	})

	current := make(map[string]MemberStatus)
	var segments []Segment
	prev := 0

	emit := func(end int) {
		if end <= prev {
			return
		}
		last := len(segments) - 1
		if last >= 0 && statusEqual(segments[last].Status, current) {
			segments[last].End = end
		} else {
			segments = append(segments, Segment{Start: prev, End: end, Status: copyStatus(current)})
		}
		prev = end
	}

	for i := 0; i < len(events); {
		minute := events[i].minute
		emit(minute)
		for i < len(events) && events[i].minute == minute {
			ev := events[i]
			if ev.enter {
				current[ev.member] = ev.status
			} else if current[ev.member] == ev.status {
				delete(current, ev.member)
			}
			i++
		}
	}
	emit(models.MinutesPerDay)

	return segments
}

func statusEqual(a, b map[string]MemberStatus) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

func copyStatus(m map[string]MemberStatus) map[string]MemberStatus {
	out := make(map[string]MemberStatus, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
