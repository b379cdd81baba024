package quota

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"trustcheck/models"
)

// ClerkStore keeps usage records inside the identity provider's per-user
// private metadata, under the "usage" key. The provider is the system of
// record; nothing is stored locally.
type ClerkStore struct {
	baseURL   string
	secretKey string
	client    *http.Client
}

// NewClerkStore returns a store backed by the Clerk REST API.
func NewClerkStore(baseURL, secretKey string) *ClerkStore {
	return &ClerkStore{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// clerkUser is the subset of the user object this store reads.
type clerkUser struct {
	PrivateMetadata map[string]json.RawMessage `json:"private_metadata"`
}

func (s *ClerkStore) Get(ctx context.Context, userID string) (models.UsageRecord, error) {
	rec, _, err := s.fetchRecord(ctx, userID)
	return rec, err
}

func (s *ClerkStore) ResetIfStale(ctx context.Context, userID string) (models.UsageRecord, error) {
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

func (s *ClerkStore) Increment(ctx context.Context, userID string) error {
	rec, _, err := s.fetchRecord(ctx, userID)
	if err != nil {
		return err
	}
	rec.Count++
	return s.writeRecord(ctx, userID, rec)
}

// fetchRecord loads the caller's usage record. Callers without one get a
// fresh zero-count record, which is not persisted until the first write.
func (s *ClerkStore) fetchRecord(ctx context.Context, userID string) (models.UsageRecord, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/v1/users/"+userID, nil)
	if err != nil {
		return models.UsageRecord{}, false, fmt.Errorf("clerk: build user request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.secretKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return models.UsageRecord{}, false, fmt.Errorf("clerk: fetch user %s: %w", userID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return models.UsageRecord{}, false, fmt.Errorf("clerk: fetch user %s: status %d: %s", userID, resp.StatusCode, body)
	}

	var usr clerkUser
	if err := json.NewDecoder(resp.Body).Decode(&usr); err != nil {
		return models.UsageRecord{}, false, fmt.Errorf("clerk: decode user %s: %w", userID, err)
	}

	raw, ok := usr.PrivateMetadata["usage"]
	if !ok {
		return models.UsageRecord{Count: 0, LastReset: time.Now().UTC()}, false, nil
	}
	var rec models.UsageRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return models.UsageRecord{}, false, fmt.Errorf("clerk: decode usage for %s: %w", userID, err)
	}
	return rec, true, nil
}

// writeRecord patches the usage record back into private metadata. Clerk
// deep-merges the patch, so only the "usage" key is touched.
func (s *ClerkStore) writeRecord(ctx context.Context, userID string, rec models.UsageRecord) error {
	payload := map[string]interface{}{
		"private_metadata": map[string]interface{}{"usage": rec},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("clerk: encode usage for %s: %w", userID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, s.baseURL+"/v1/users/"+userID+"/metadata", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("clerk: build metadata request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("clerk: update metadata for %s: %w", userID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("clerk: update metadata for %s: status %d: %s", userID, resp.StatusCode, respBody)
	}
	return nil
}
