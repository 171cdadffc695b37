package models

import "time"

// CalendarEvent is a group event materialized from a chosen common free
// slot.
type CalendarEvent struct {
	ID           string    `bson:"id" json:"id"`
	GroupID      string    `bson:"groupId" json:"groupId"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	Date         string    `bson:"date" json:"date"` // "2006-01-02"
	Start        int       `bson:"start" json:"start"`
	End          int       `bson:"end" json:"end"`
	AttendeeIDs  []string  `bson:"attendeeIds" json:"attendeeIds"`
	SourceSlotID string    `bson:"sourceSlotId,omitempty" json:"sourceSlotId,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// StartTime resolves the event's absolute start in the given location.
func (e CalendarEvent) StartTime(loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", e.Date, loc)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(e.Start) * time.Minute), nil
}

// EndTime resolves the event's absolute end in the given location.
func (e CalendarEvent) EndTime(loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", e.Date, loc)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(e.End) * time.Minute), nil
}
