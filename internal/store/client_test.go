package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-key", slog.New(slog.DiscardHandler))
}

func TestClientSelect(t *testing.T) {
	var gotPath, gotQuery, gotKey, gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]row{{ID: "1", Title: "a"}, {ID: "2", Title: "b"}})
	})

	var rows []row
	err := client.Select(context.Background(), "campaigns", Where().Eq("status", "active"), &rows)
	require.NoError(t, err)

	assert.Equal(t, "/rest/v1/campaigns", gotPath)
	assert.Equal(t, "status=eq.active", gotQuery)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Len(t, rows, 2)
}

func TestClientSelectOne(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.RawQuery, "limit=1")
		json.NewEncoder(w).Encode([]row{{ID: "1", Title: "a"}})
	})

	var got row
	err := client.SelectOne(context.Background(), "campaigns", Where().Eq("id", "1"), &got)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Title)
}

func TestClientSelectOneNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	})

	var got row
	err := client.SelectOne(context.Background(), "campaigns", Where().Eq("id", "missing"), &got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientInsert(t *testing.T) {
	var gotMethod string
	var gotBody row
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	})

	err := client.Insert(context.Background(), "campaigns", row{ID: "1", Title: "new"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "new", gotBody.Title)
}

func TestClientUpdate(t *testing.T) {
	var gotMethod, gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
	})

	err := client.Update(context.Background(), "campaigns", Where().Eq("id", "1"), map[string]any{"title": "patched"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "id=eq.1", gotQuery)
}

func TestClientErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"permission denied"}`, http.StatusForbidden)
	})

	var rows []row
	err := client.Select(context.Background(), "campaigns", nil, &rows)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
