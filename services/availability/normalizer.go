package availability

import (
	"sort"

	"aceup/models"
)

// NormalizeIntervals validates and canonicalizes one member's raw intervals
// for a weekday: the result is ordered, non-overlapping, with same-kind
// adjacent runs merged. Where raw intervals overlap, the higher-priority
// interval's kind, priority and label win; on a tie the earlier-starting
// interval wins. Pure function over its input; the raw slice is never
// mutated.
func NormalizeIntervals(memberID string, raw []models.AvailabilityInterval) ([]models.AvailabilityInterval, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	for _, iv := range raw {
		if err := iv.Validate(); err != nil {
			return nil, &InvalidIntervalError{MemberID: memberID, Interval: iv, Reason: err}
		}
	}

	// Order candidates once so dominance ties resolve deterministically:
	// higher priority first, then earlier start.
	order := make([]int, len(raw))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := raw[order[a]], raw[order[b]]
		if ia.Priority.Rank() != ib.Priority.Rank() {
			return ia.Priority.Rank() > ib.Priority.Rank()
		}
		return ia.Start < ib.Start
	})

	// Elementary spans between consecutive boundary minutes.
	bounds := make([]int, 0, 2*len(raw))
	for _, iv := range raw {
		bounds = append(bounds, iv.Start, iv.End)
	}
	sort.Ints(bounds)
	bounds = dedupeInts(bounds)

	var out []models.AvailabilityInterval
	for i := 0; i+1 < len(bounds); i++ {
		spanStart, spanEnd := bounds[i], bounds[i+1]

		// First covering interval in dominance order wins the span.
		winner := -1
		for _, idx := range order {
			if raw[idx].Start <= spanStart && raw[idx].End >= spanEnd {
				winner = idx
				break
			}
		}
		if winner == -1 {
			continue // gap between intervals, stays unknown
		}

		w := raw[winner]
		last := len(out) - 1
		if last >= 0 && out[last].End == spanStart && out[last].Kind == w.Kind {
			// Same-kind adjacency merges; the higher-priority source keeps
			// its priority and label.
			out[last].End = spanEnd
			if w.Priority.Rank() > out[last].Priority.Rank() {
				out[last].Priority = w.Priority
				out[last].Label = w.Label
			}
			continue
		}
		out = append(out, models.AvailabilityInterval{
			Start:    spanStart,
			End:      spanEnd,
			Kind:     w.Kind,
			Priority: w.Priority,
			Label:    w.Label,
		})
	}

	return out, nil
}

func dedupeInts(sorted []int) []int {
	out := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			out = append(out, v)
		}
	}
	return out
}
