package models

// SlotStrength buckets a confidence score the way the app colors slots.
type SlotStrength string

const (
	StrengthStrong   SlotStrength = "strong"   // confidence >= 0.8
	StrengthModerate SlotStrength = "moderate" // confidence >= 0.5
	StrengthWeak     SlotStrength = "weak"
)

// StrengthForConfidence maps a [0,1] confidence onto its display bucket.
func StrengthForConfidence(c float64) SlotStrength {
	switch {
	case c >= 0.8:
		return StrengthStrong
	case c >= 0.5:
		return StrengthModerate
	}
	return StrengthWeak
}

// CommonFreeSlot is a maximal window in which every member listed in
// AvailableMemberIDs is free for the entire span. Slots for one weekday
// never overlap each other.
type CommonFreeSlot struct {
	ID                 string       `json:"id"`
	Start              int          `json:"start"` // minutes from midnight
	End                int          `json:"end"`
	DurationMinutes    int          `json:"durationMinutes"`
	AvailableMemberIDs []string     `json:"availableMemberIds"`
	Confidence         float64      `json:"confidence"`
	Strength           SlotStrength `json:"strength"`
	Label              string       `json:"label,omitempty"` // e.g. "9:00 AM - 10:30 AM"
}

// ConflictType classifies why two members' commitments block a shared
// meeting in an overlapping window.
type ConflictType string

const (
	// ConflictDoubleCommitment: both members hold high/critical committed
	// obligations in the window.
	ConflictDoubleCommitment ConflictType = "doubleCommitment"
	// ConflictTypeMismatch: the two commitments are of incompatible kinds
	// (e.g. exam vs meeting).
	ConflictTypeMismatch ConflictType = "typeMismatch"
	// ConflictPriorityClash: the two priorities differ by two or more
	// levels, so one side is unlikely to yield.
	ConflictPriorityClash ConflictType = "priorityClash"
)

// MemberConflict is one pairwise conflict inside a ConflictingSlot.
// MemberA sorts before MemberB.
type MemberConflict struct {
	MemberA string       `json:"memberA"`
	MemberB string       `json:"memberB"`
	Type    ConflictType `json:"conflictType"`
}

// ConflictingSlot is a window in which at least one member pair collides.
type ConflictingSlot struct {
	ID        string           `json:"id"`
	Start     int              `json:"start"`
	End       int              `json:"end"`
	Conflicts []MemberConflict `json:"conflicts"`
	Label     string           `json:"label,omitempty"`
}

// SkippedMember records a member whose day was demoted to unknown because
// their input failed validation. Surfaced to callers as a data-quality
// warning; never aborts the computation.
type SkippedMember struct {
	MemberID string `json:"memberId"`
	Reason   string `json:"reason"`
}

// AvailabilityResult is the full output of one (group, weekday) query.
type AvailabilityResult struct {
	FreeSlots      []CommonFreeSlot  `json:"freeSlots"`
	Conflicts      []ConflictingSlot `json:"conflicts"`
	SkippedMembers []SkippedMember   `json:"skippedMembers,omitempty"`
}

// Engine configuration defaults.
const (
	DefaultQuorumFraction         = 1.0
	DefaultMinimumDurationMinutes = 15
	DefaultIdealDurationMinutes   = 60
)

// DefaultConflictPriorityThreshold: committed intervals below this priority
// do not count as conflict-worthy.
const DefaultConflictPriorityThreshold = PriorityMedium

// EngineConfig tunes one availability computation.
type EngineConfig struct {
	QuorumFraction            float64  `json:"quorumFraction"`
	MinimumDurationMinutes    int      `json:"minimumDurationMinutes"`
	ConflictPriorityThreshold Priority `json:"conflictPriorityThreshold"`
	IdealDurationMinutes      int      `json:"idealDurationMinutes"`
}

// DefaultEngineConfig returns the engine defaults: full quorum, 15-minute
// minimum, medium conflict threshold, 60-minute ideal duration.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		QuorumFraction:            DefaultQuorumFraction,
		MinimumDurationMinutes:    DefaultMinimumDurationMinutes,
		ConflictPriorityThreshold: DefaultConflictPriorityThreshold,
		IdealDurationMinutes:      DefaultIdealDurationMinutes,
	}
}

// Normalize fills zero-valued fields with defaults so partially specified
// configs from API callers behave predictably.
func (c EngineConfig) Normalize() EngineConfig {
	if c.QuorumFraction <= 0 || c.QuorumFraction > 1 {
		c.QuorumFraction = DefaultQuorumFraction
	}
	if c.MinimumDurationMinutes <= 0 {
		c.MinimumDurationMinutes = DefaultMinimumDurationMinutes
	}
	if !c.ConflictPriorityThreshold.IsValid() {
		c.ConflictPriorityThreshold = DefaultConflictPriorityThreshold
	}
	if c.IdealDurationMinutes <= 0 {
		c.IdealDurationMinutes = DefaultIdealDurationMinutes
	}
	return c
}
