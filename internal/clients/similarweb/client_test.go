package similarweb

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchDomainDecodesRecords(t *testing.T) {
	var gotBody map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "run-sync-get-dataset-items")
		assert.Equal(t, "test-token", r.URL.Query().Get("token"))
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name": "example.com", "url": "example.com", "engagements": {"visits": 125000}}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", 5*time.Second)
	records, err := client.FetchDomain(context.Background(), "example.com")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"example.com"}, gotBody["websites"])
	require.NotNil(t, records[0].Name)
	assert.Equal(t, "example.com", *records[0].Name)
}

func TestFetchDomainEmptyDataset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", 5*time.Second)
	records, err := client.FetchDomain(context.Background(), "unknown.example")

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFetchDomainTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", 20*time.Millisecond)
	_, err := client.FetchDomain(context.Background(), "slow.example")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout), "expected ErrTimeout, got %v", err)
}

func TestFetchDomainUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", 5*time.Second)
	_, err := client.FetchDomain(context.Background(), "example.com")

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrTimeout))
}

func TestTokenConfigured(t *testing.T) {
	client := NewClient("http://localhost", "", time.Second)
	configured, prefix := client.TokenConfigured()
	assert.False(t, configured)
	assert.Equal(t, "NON_CONFIGURATO", prefix)

	client = NewClient("http://localhost", "apify_api_secret123", time.Second)
	configured, prefix = client.TokenConfigured()
	assert.True(t, configured)
	assert.Equal(t, "apify_api_...", prefix)
}
