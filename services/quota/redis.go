package quota

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"trustcheck/models"
)

// RedisStore is the dedicated-storage quota backend, for deployments that
// prefer not to round-trip through the identity provider on every check.
// Records are stored as JSON under "usage:<userId>".
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func usageKey(userID string) string {
	return "usage:" + userID
}

func (s *RedisStore) Get(ctx context.Context, userID string) (models.UsageRecord, error) {
	rec, _, err := s.fetchRecord(ctx, userID)
	return rec, err
}

func (s *RedisStore) ResetIfStale(ctx context.Context, userID string) (models.UsageRecord, error) {
	rec, found, err := s.fetchRecord(ctx, userID)
	if err != nil {
		return models.UsageRecord{}, err
	}
	if found && !sameUTCDay(rec.LastReset, time.Now()) {
		rec = models.UsageRecord{Count: 0, LastReset: time.Now().UTC()}
		if err := s.writeRecord(ctx, userID, rec); err != nil {
			return models.UsageRecord{}, err
		}
	}
	return rec, nil
}

func (s *RedisStore) Increment(ctx context.Context, userID string) error {
	rec, _, err := s.fetchRecord(ctx, userID)
	if err != nil {
		return err
	}
	rec.Count++
	return s.writeRecord(ctx, userID, rec)
}

func (s *RedisStore) fetchRecord(ctx context.Context, userID string) (models.UsageRecord, bool, error) {
	data, err := s.client.Get(ctx, usageKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.UsageRecord{Count: 0, LastReset: time.Now().UTC()}, false, nil
	}
	if err != nil {
		return models.UsageRecord{}, false, fmt.Errorf("quota: fetch usage for %s: %w", userID, err)
	}
	var rec models.UsageRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return models.UsageRecord{}, false, fmt.Errorf("quota: decode usage for %s: %w", userID, err)
	}
	return rec, true, nil
}

func (s *RedisStore) writeRecord(ctx context.Context, userID string, rec models.UsageRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("quota: encode usage for %s: %w", userID, err)
	}
	if err := s.client.Set(ctx, usageKey(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("quota: store usage for %s: %w", userID, err)
	}
	return nil
}
