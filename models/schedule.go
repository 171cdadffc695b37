package models

import "time"

// MemberSchedule is one member's interval list for a single weekday, the
// unit of input the availability engine works on. The engine treats it as
// read-only.
type MemberSchedule struct {
	MemberID    string                 `bson:"memberId" json:"memberId"`
	DisplayName string                 `bson:"displayName" json:"displayName"`
	Weekday     time.Weekday           `bson:"weekday" json:"weekday"`
	Intervals   []AvailabilityInterval `bson:"intervals" json:"intervals"`
}

// DayAvailability holds the stored interval list for one weekday.
type DayAvailability struct {
	Weekday   time.Weekday           `bson:"weekday" json:"weekday"`
	Intervals []AvailabilityInterval `bson:"intervals" json:"intervals"`
}

// RecurringCommitment is a commitment defined by an RRULE (iCalendar
// recurrence rule) rather than a fixed weekday record. Occurrences are
// expanded into plain intervals for whichever week is being queried.
type RecurringCommitment struct {
	ID       string       `bson:"id" json:"id"`
	RRule    string       `bson:"rrule" json:"rrule"` // e.g. "DTSTART:20250901T000000Z\nRRULE:FREQ=WEEKLY;BYDAY=MO,WE"
	Start    int          `bson:"start" json:"start"` // minutes from midnight
	End      int          `bson:"end" json:"end"`
	Kind     IntervalKind `bson:"kind" json:"kind"`
	Priority Priority     `bson:"priority" json:"priority"`
	Label    string       `bson:"label,omitempty" json:"label,omitempty"`
}

// WeeklyAvailability is the persisted shape of a member's schedule: plain
// day-of-week records plus recurring definitions.
type WeeklyAvailability struct {
	MemberID    string                `bson:"memberId" json:"memberId"`
	DisplayName string                `bson:"displayName" json:"displayName"`
	Days        []DayAvailability     `bson:"days" json:"days"`
	Recurring   []RecurringCommitment `bson:"recurring,omitempty" json:"recurring,omitempty"`
	UpdatedAt   time.Time             `bson:"updatedAt" json:"updatedAt"`
}

// DayIntervals returns the stored intervals for a weekday, nil when the
// member has no record for it.
func (w WeeklyAvailability) DayIntervals(day time.Weekday) []AvailabilityInterval {
	for _, d := range w.Days {
		if d.Weekday == day {
			return d.Intervals
		}
	}
	return nil
}
