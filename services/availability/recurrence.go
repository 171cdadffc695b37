package availability

import (
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"aceup/models"
	"aceup/utils"
)

// ExpandDaySchedule builds one member's interval list for a weekday in the
// week starting at weekStart: the stored day-of-week record plus any
// recurring commitments with an occurrence on that date. Recurring
// definitions that fail to parse are skipped with a warning; a typo in one
// RRULE should not blank the member's whole day.
func ExpandDaySchedule(w models.WeeklyAvailability, weekday time.Weekday, weekStart time.Time) models.MemberSchedule {
	intervals := append([]models.AvailabilityInterval(nil), w.DayIntervals(weekday)...)

	day := dateForWeekday(weekStart, weekday)
	dayEnd := day.Add(24*time.Hour - time.Second)

	for _, rc := range w.Recurring {
		set, err := rrule.StrToRRuleSet(rc.RRule)
		if err != nil {
			utils.GetLogger().Warn("skipping unparseable recurrence rule",
				zap.String("memberID", w.MemberID),
				zap.String("rrule", rc.RRule),
				zap.Error(err))
			continue
		}
		occurrences := set.Between(day, dayEnd, true)
		if len(occurrences) == 0 {
			continue
		}
		intervals = append(intervals, models.AvailabilityInterval{
			Start:    rc.Start,
			End:      rc.End,
			Kind:     rc.Kind,
			Priority: rc.Priority,
			Label:    rc.Label,
		})
	}

	return models.MemberSchedule{
		MemberID:    w.MemberID,
		DisplayName: w.DisplayName,
		Weekday:     weekday,
		Intervals:   intervals,
	}
}

// dateForWeekday returns the date of the given weekday within the week
// beginning at weekStart (midnight, any weekday anchor).
func dateForWeekday(weekStart time.Time, weekday time.Weekday) time.Time {
	offset := (int(weekday) - int(weekStart.Weekday()) + 7) % 7
	d := weekStart.AddDate(0, 0, offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}
