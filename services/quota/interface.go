package quota

import (
	"context"
	"time"

	"trustcheck/models"
)

// Store is the capability handlers use to read and mutate a caller's daily
// usage record. Implementations do not guard the read-modify-write cycle:
// concurrent requests from the same caller may both pass the quota gate
// before either increments. That race is accepted.
type Store interface {
	// Get returns the caller's current record without applying the reset rule.
	// Callers with no stored record get a fresh zero-count record.
	Get(ctx context.Context, userID string) (models.UsageRecord, error)

	// ResetIfStale zeroes the record when LastReset falls on an earlier UTC
	// date, persisting the reset before returning the effective record.
	ResetIfStale(ctx context.Context, userID string) (models.UsageRecord, error)

	// Increment adds one to the caller's count, leaving LastReset untouched.
	Increment(ctx context.Context, userID string) error
}

// sameUTCDay reports whether both times fall on the same UTC calendar date.
func sameUTCDay(a, b time.Time) bool {
	return a.UTC().Format("2006-01-02") == b.UTC().Format("2006-01-02")
}
