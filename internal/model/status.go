package model

import "time"

// Status is an item's derived freshness classification. It is computed from
// the expiry date at read time and never persisted.
type Status string

// Freshness statuses.
const (
	StatusSafe         Status = "safe"
	StatusExpiringSoon Status = "expiring-soon"
	StatusExpired      Status = "expired"
)

// ExpiringSoonDays is the number of days before expiry at which an item
// counts as expiring soon.
const ExpiringSoonDays = 5

// StatusOn classifies an expiry date relative to today. Both values are
// reduced to calendar dates first, so time-of-day and timezone cannot shift
// the day count. Expired if the expiry date has passed, ExpiringSoon from
// today through ExpiringSoonDays days out, Safe after that.
func StatusOn(today time.Time, expiry Date) Status {
	days := DateOf(today).DaysUntil(expiry)
	switch {
	case days < 0:
		return StatusExpired
	case days <= ExpiringSoonDays:
		return StatusExpiringSoon
	default:
		return StatusSafe
	}
}
