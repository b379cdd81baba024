package models

import "time"

// UsageRecord tracks a caller's daily trust-check usage. It lives under the
// "usage" key of the identity provider's private metadata, or under a
// "usage:<userId>" key when the Redis quota backend is configured.
// Count resets to 0 whenever LastReset falls on an earlier UTC date.
type UsageRecord struct {
	Count     int       `json:"count"`
	LastReset time.Time `json:"lastReset"`
}

// TrustCheckRequest is the body of POST /api/check-trust. UserID is optional;
// requests without it are served anonymously, with no quota applied.
type TrustCheckRequest struct {
	Username string `json:"username"`
	UserID   string `json:"userId,omitempty"`
}

// TrustCheckResult carries the score extracted from the completion provider's
// free-text answer.
type TrustCheckResult struct {
	TrustScore int `json:"trustScore"`
}

// TrustLevel buckets a score the same way the frontend colors it.
type TrustLevel string

const (
	TrustLevelHigh   TrustLevel = "high"
	TrustLevelMedium TrustLevel = "medium"
	TrustLevelLow    TrustLevel = "low"
)

// LevelForScore maps a trust score to its qualitative label.
func LevelForScore(score int) TrustLevel {
	switch {
	case score >= 80:
		return TrustLevelHigh
	case score >= 60:
		return TrustLevelMedium
	default:
		return TrustLevelLow
	}
}
