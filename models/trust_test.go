package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelForScore(t *testing.T) {
	cases := []struct {
		score int
		level TrustLevel
	}{
		{100, TrustLevelHigh},
		{80, TrustLevelHigh},
		{79, TrustLevelMedium},
		{60, TrustLevelMedium},
		{59, TrustLevelLow},
		{0, TrustLevelLow},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.level, LevelForScore(tc.score), "score %d", tc.score)
	}
}

func TestUsageRecordWireFormat(t *testing.T) {
	rec := UsageRecord{
		Count:     2,
		LastReset: time.Date(2024, 5, 20, 9, 30, 0, 0, time.UTC),
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":2,"lastReset":"2024-05-20T09:30:00Z"}`, string(data))
}
