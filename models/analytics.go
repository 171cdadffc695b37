package models

import "time"

// LoadLevel buckets a member's weekly commitment count.
type LoadLevel string

const (
	LoadLight    LoadLevel = "light"    // fewer than 5 committed blocks
	LoadModerate LoadLevel = "moderate" // 5–7
	LoadHeavy    LoadLevel = "heavy"    // 8 or more
)

// CommitmentHighlight is the member's single most pressing commitment of
// the week, scored by priority weight and kind.
type CommitmentHighlight struct {
	Weekday  time.Weekday `json:"weekday"`
	Start    int          `json:"start"`
	End      int          `json:"end"`
	Kind     IntervalKind `json:"kind"`
	Priority Priority     `json:"priority"`
	Label    string       `json:"label,omitempty"`
	Score    float64      `json:"score"`
}

// MemberWorkload summarizes one member's week.
type MemberWorkload struct {
	MemberID         string               `json:"memberId"`
	DisplayName      string               `json:"displayName"`
	CommittedMinutes int                  `json:"committedMinutes"`
	CommittedBlocks  int                  `json:"committedBlocks"`
	FreeShare        float64              `json:"freeShare"` // fraction of covered time that is free
	ConflictCount    int                  `json:"conflictCount"`
	Load             LoadLevel            `json:"load"`
	TopCommitment    *CommitmentHighlight `json:"topCommitment,omitempty"`
}

// GroupWeekReport is the workload report for one group and week, derived
// from the availability engine's outputs rather than ad hoc heuristics.
type GroupWeekReport struct {
	GroupID        string           `json:"groupId"`
	WeekStart      string           `json:"weekStart"` // "2006-01-02"
	Members        []MemberWorkload `json:"members"`
	TotalFreeSlots int              `json:"totalFreeSlots"`
	TotalConflicts int              `json:"totalConflicts"`
	GeneratedAt    time.Time        `json:"generatedAt"`
}
