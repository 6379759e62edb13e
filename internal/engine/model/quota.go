package model

import "time"

// QuotaDateLayout is the calendar-day format used for quota rollover.
const QuotaDateLayout = "2006-01-02"

// QuotaState is the persisted daily counter bounding remote resolver calls.
// ResetDate is the calendar day the counter belongs to; a read on a later day
// replaces the state with a fresh one (lazy rollover, no background timer).
type QuotaState struct {
	Count     int    `json:"count"`
	ResetDate string `json:"reset_date"`
}

// FreshQuota returns a zeroed state for the given day.
func FreshQuota(day string) QuotaState {
	return QuotaState{Count: 0, ResetDate: day}
}

// QuotaDay formats now as a quota calendar day.
func QuotaDay(now time.Time) string {
	return now.Format(QuotaDateLayout)
}

// Rollover returns the state that applies on day, replacing stale counters
// with a fresh one. It reports whether a replacement happened so stores know
// to persist the rollover.
func (q QuotaState) Rollover(day string) (QuotaState, bool) {
	if q.ResetDate != day {
		return FreshQuota(day), true
	}
	return q, false
}
