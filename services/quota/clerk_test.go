package quota

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustcheck/models"
)

// fakeClerk serves the two endpoints the store uses: GET /v1/users/:id and
// PATCH /v1/users/:id/metadata.
type fakeClerk struct {
	usage   *models.UsageRecord
	patches []models.UsageRecord
}

func (f *fakeClerk) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v1/users/user_1":
			metadata := map[string]interface{}{}
			if f.usage != nil {
				metadata["usage"] = f.usage
			}
			json.NewEncoder(w).Encode(map[string]interface{}{"private_metadata": metadata})
		case r.Method == http.MethodPatch && r.URL.Path == "/v1/users/user_1/metadata":
			var patch struct {
				PrivateMetadata struct {
					Usage models.UsageRecord `json:"usage"`
				} `json:"private_metadata"`
			}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
			f.usage = &patch.PrivateMetadata.Usage
			f.patches = append(f.patches, patch.PrivateMetadata.Usage)
			w.Write([]byte("{}"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func newClerkStore(t *testing.T, clerk *fakeClerk) *ClerkStore {
	t.Helper()
	srv := httptest.NewServer(clerk.handler(t))
	t.Cleanup(srv.Close)
	return NewClerkStore(srv.URL, "sk_test_123")
}

func TestClerkStoreGetReadsPrivateMetadata(t *testing.T) {
	lastReset := time.Date(2024, 5, 20, 9, 30, 0, 0, time.UTC)
	clerk := &fakeClerk{usage: &models.UsageRecord{Count: 2, LastReset: lastReset}}
	store := newClerkStore(t, clerk)

	rec, err := store.Get(context.Background(), "user_1")

	require.NoError(t, err)
	assert.Equal(t, 2, rec.Count)
	assert.True(t, rec.LastReset.Equal(lastReset))
}

func TestClerkStoreGetDefaultsWhenNoUsageKey(t *testing.T) {
	store := newClerkStore(t, &fakeClerk{})

	rec, err := store.Get(context.Background(), "user_1")

	require.NoError(t, err)
	assert.Zero(t, rec.Count)
	assert.WithinDuration(t, time.Now(), rec.LastReset, time.Minute)
}

func TestClerkStoreResetIfStalePersistsReset(t *testing.T) {
	clerk := &fakeClerk{usage: &models.UsageRecord{
		Count:     3,
		LastReset: time.Now().UTC().AddDate(0, 0, -1),
	}}
	store := newClerkStore(t, clerk)

	rec, err := store.ResetIfStale(context.Background(), "user_1")

	require.NoError(t, err)
	assert.Zero(t, rec.Count)
	require.Len(t, clerk.patches, 1)
	assert.Zero(t, clerk.patches[0].Count)
}

func TestClerkStoreResetIfStaleLeavesFreshRecordAlone(t *testing.T) {
	clerk := &fakeClerk{usage: &models.UsageRecord{Count: 1, LastReset: time.Now().UTC()}}
	store := newClerkStore(t, clerk)

	rec, err := store.ResetIfStale(context.Background(), "user_1")

	require.NoError(t, err)
	assert.Equal(t, 1, rec.Count)
	assert.Empty(t, clerk.patches, "no write when the record is already today's")
}

func TestClerkStoreIncrement(t *testing.T) {
	lastReset := time.Now().UTC()
	clerk := &fakeClerk{usage: &models.UsageRecord{Count: 1, LastReset: lastReset}}
	store := newClerkStore(t, clerk)

	require.NoError(t, store.Increment(context.Background(), "user_1"))

	require.Len(t, clerk.patches, 1)
	assert.Equal(t, 2, clerk.patches[0].Count)
	assert.True(t, clerk.patches[0].LastReset.Equal(lastReset), "increment must not touch lastReset")
}

func TestClerkStoreSurfacesProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	store := NewClerkStore(srv.URL, "sk_test_123")

	_, err := store.Get(context.Background(), "user_1")

	require.Error(t, err)
}
