package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysBetween_WholeDays(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(date(2026, 3, 10), date(2026, 3, 10)))
	assert.Equal(t, 1, DaysBetween(date(2026, 3, 10), date(2026, 3, 11)))
	assert.Equal(t, 31, DaysBetween(date(2026, 3, 10), date(2026, 4, 10)))
}

func TestDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	to := time.Date(2026, 3, 11, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysBetween(from, to))
}

func TestDaysRemaining(t *testing.T) {
	imported := date(2026, 3, 1)

	assert.Equal(t, 7, DaysRemaining(10, imported, date(2026, 3, 4)))
	assert.Equal(t, 0, DaysRemaining(10, imported, date(2026, 3, 11)))
	assert.Equal(t, -1, DaysRemaining(10, imported, date(2026, 3, 12)))
}

func TestClassifyExpiry(t *testing.T) {
	assert.Equal(t, ExpiryExpired, ClassifyExpiry(-1, 10))
	assert.Equal(t, ExpiryNear, ClassifyExpiry(0, 10))
	assert.Equal(t, ExpiryNear, ClassifyExpiry(10, 10))
	assert.Equal(t, ExpiryFresh, ClassifyExpiry(11, 10))
}

func TestClassifyExpiry_ExpiredNeverNear(t *testing.T) {
	// A lot one day past its shelf life belongs to the expired listing
	// only, regardless of how wide the near-expiry window is.
	assert.Equal(t, ExpiryExpired, ClassifyExpiry(-1, 365))
}
