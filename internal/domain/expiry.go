package domain

import "time"

// DaysBetween returns the number of whole calendar days from one date to
// another, ignoring the time of day. Matches the DATEDIFF semantics the
// expiry rules are defined on.
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// DaysRemaining computes the remaining shelf life of a lot imported on
// importDate for a product with the given shelf life. A negative result
// means the lot is expired.
func DaysRemaining(expiryDays int, importDate, today time.Time) int {
	return expiryDays - DaysBetween(importDate, today)
}

type ExpiryStatus int

const (
	ExpiryFresh ExpiryStatus = iota
	ExpiryNear
	ExpiryExpired
)

// ClassifyExpiry buckets a lot's remaining shelf life against a reporting
// threshold. Expired lots never classify as near-expiry.
func ClassifyExpiry(daysRemaining, nearThreshold int) ExpiryStatus {
	switch {
	case daysRemaining < 0:
		return ExpiryExpired
	case daysRemaining <= nearThreshold:
		return ExpiryNear
	default:
		return ExpiryFresh
	}
}
