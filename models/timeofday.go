package models

import "fmt"

// MinutesPerDay bounds every minute index handled by the engine; all
// intervals live inside the closed day frame [0, 1440).
const MinutesPerDay = 1440

// TimeOfDay is a wall-clock time within a single day.
type TimeOfDay struct {
	Hour   int `bson:"hour" json:"hour"`
	Minute int `bson:"minute" json:"minute"`
}

// Minutes returns the time as minutes since midnight (0–1439).
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// TimeOfDayFromMinutes converts a minutes-since-midnight index back to a
// wall-clock time.
func TimeOfDayFromMinutes(m int) TimeOfDay {
	return TimeOfDay{Hour: m / 60, Minute: m % 60}
}

// FormatMinutes renders a minute index as a 12-hour clock label,
// e.g. 540 -> "9:00 AM".
func FormatMinutes(m int) string {
	hour := m / 60
	minute := m % 60
	suffix := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		hour -= 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, suffix)
}

// FormatWindow renders a [start,end) minute window, e.g. "9:00 AM - 10:30 AM".
func FormatWindow(start, end int) string {
	return FormatMinutes(start) + " - " + FormatMinutes(end)
}
