package models

import "fmt"

// IntervalKind classifies what a member is doing during an interval.
type IntervalKind string

const (
	KindFree       IntervalKind = "free"
	KindBusy       IntervalKind = "busy"
	KindTentative  IntervalKind = "tentative"
	KindLecture    IntervalKind = "lecture"
	KindExam       IntervalKind = "exam"
	KindAssignment IntervalKind = "assignment"
	KindMeeting    IntervalKind = "meeting"
	KindPersonal   IntervalKind = "personal"
)

// ValidIntervalKinds lists every kind accepted on input.
var ValidIntervalKinds = []IntervalKind{
	KindFree, KindBusy, KindTentative, KindLecture,
	KindExam, KindAssignment, KindMeeting, KindPersonal,
}

// IsValid reports whether k is one of the accepted kinds.
func (k IntervalKind) IsValid() bool {
	for _, v := range ValidIntervalKinds {
		if k == v {
			return true
		}
	}
	return false
}

// Committed reports whether the kind is a hard scheduled obligation.
// Busy, tentative and personal block time but are not commitments in the
// double-booking sense.
func (k IntervalKind) Committed() bool {
	switch k {
	case KindLecture, KindExam, KindAssignment, KindMeeting:
		return true
	}
	return false
}

// Priority orders intervals by how unlikely the member is to move them.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Rank maps a priority onto its position in the total order
// low < medium < high < critical. Unknown strings rank below low.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityMedium:
		return 1
	case PriorityHigh:
		return 2
	case PriorityCritical:
		return 3
	}
	return -1
}

// IsValid reports whether p is one of the four known priorities.
func (p Priority) IsValid() bool {
	return p.Rank() >= 0
}

// AvailabilityInterval is one member's state for a contiguous stretch of a
// weekday. Start and End are minutes from midnight (e.g. 540 for 9:00 AM);
// the interval covers [Start, End) and must not cross midnight.
type AvailabilityInterval struct {
	Start    int          `bson:"start" json:"start"`
	End      int          `bson:"end" json:"end"`
	Kind     IntervalKind `bson:"kind" json:"kind"`
	Priority Priority     `bson:"priority" json:"priority"`
	Label    string       `bson:"label,omitempty" json:"label,omitempty"`
}

// Validate checks the interval against the single-day frame. Midnight
// wrapping is rejected outright rather than split.
func (iv AvailabilityInterval) Validate() error {
	if iv.Start < 0 {
		return fmt.Errorf("interval start %d is negative", iv.Start)
	}
	if iv.End > MinutesPerDay-1 {
		return fmt.Errorf("interval end %d exceeds end of day", iv.End)
	}
	if iv.Start >= iv.End {
		return fmt.Errorf("interval start %d is not before end %d", iv.Start, iv.End)
	}
	if !iv.Kind.IsValid() {
		return fmt.Errorf("unknown interval kind %q", iv.Kind)
	}
	if !iv.Priority.IsValid() {
		return fmt.Errorf("unknown priority %q", iv.Priority)
	}
	return nil
}
