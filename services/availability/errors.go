package availability

import (
	"errors"
	"fmt"

	"aceup/models"
)

// InvalidIntervalError flags bad schedule input for one member: a
// malformed interval, or a schedule attached to the wrong weekday. The
// engine never aborts on it: the member's day is demoted to unknown and
// the rest of the group still gets a result.
type InvalidIntervalError struct {
	MemberID string
	Interval models.AvailabilityInterval // zero when the whole schedule is at fault
	Reason   error
}

func (e *InvalidIntervalError) Error() string {
	if e.Interval == (models.AvailabilityInterval{}) {
		return fmt.Sprintf("invalid schedule for member %s: %v", e.MemberID, e.Reason)
	}
	return fmt.Sprintf("invalid interval [%d,%d) for member %s: %v",
		e.Interval.Start, e.Interval.End, e.MemberID, e.Reason)
}

func (e *InvalidIntervalError) Unwrap() error {
	return e.Reason
}

// ErrGroupNotFound is returned when an availability query names an unknown
// group.
var ErrGroupNotFound = errors.New("group not found")
