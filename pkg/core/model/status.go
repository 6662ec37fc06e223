package model

import "time"

// Status is the derived display classification of a locker.
type Status string

const (
	StatusAvailable Status = "available"
	StatusExpiring  Status = "expiring"
	StatusExpired   Status = "expired"
)

func (s Status) IsValid() bool {
	return s == StatusAvailable || s == StatusExpiring || s == StatusExpired
}

// ExpiryWarningDays is the window before an assignment's end date in which
// a locker is flagged as expiring.
const ExpiryWarningDays = 14

// Classify derives a locker's status at the given instant. Unassigned
// lockers are always available. An assigned locker with no end date is
// treated as expired so a missing date surfaces instead of reading as fine.
// The result depends on now, so it must be recomputed on every render.
func Classify(l Locker, now time.Time) Status {
	if !l.Assigned() {
		return StatusAvailable
	}
	if l.EndDate == nil {
		return StatusExpired
	}
	daysRemaining := l.EndDate.Sub(now).Hours() / 24
	switch {
	case daysRemaining < 0:
		return StatusExpired
	case daysRemaining < ExpiryWarningDays:
		return StatusExpiring
	default:
		return StatusAvailable
	}
}
