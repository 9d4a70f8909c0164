package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoPassesPayloadAndStatusThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/knowledge-base", r.URL.Path)
		assert.Equal(t, "tariffe", r.URL.Query().Get("category"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success": true, "data": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	query := url.Values{"category": []string{"tariffe"}}
	payload, status, err := client.Do(context.Background(), http.MethodGet, "/knowledge-base", query, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.JSONEq(t, `{"success": true, "data": []}`, string(payload))
}

func TestSearchKnowledgeUnwrapsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/knowledge-base/search/ai", r.URL.Path)
		assert.Equal(t, "tariffe dhl", r.URL.Query().Get("query"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"success": true, "data": [{"_id": "kb1", "title": "Tariffe DHL", "content": "..."}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	items, err := client.SearchKnowledge(context.Background(), "tariffe dhl", 5)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "kb1", items[0].ID)
	assert.Equal(t, "Tariffe DHL", items[0].Title)
}

func TestSearchKnowledgeBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success": false, "error": "database unavailable"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.SearchKnowledge(context.Background(), "tariffe", 5)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database unavailable")
}

func TestGetProspectDecodesDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/similarweb/prospects/p42", r.URL.Path)
		w.Write([]byte(`{"success": true, "data": {
			"basic": {"id": "p42", "companyName": "Acme Srl", "status": "nuovo"},
			"businessInfo": {"monthlyShipments": 2100}
		}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	details, err := client.GetProspect(context.Background(), "p42")

	require.NoError(t, err)
	assert.Equal(t, "Acme Srl", details.Basic.CompanyName)
	assert.Equal(t, "nuovo", details.Basic.Status)
	require.NotNil(t, details.BusinessInfo)
	assert.Equal(t, int64(2100), details.BusinessInfo.MonthlyShipments)
}

func TestUpdateProspectStatusSendsNewStatus(t *testing.T) {
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/similarweb/prospects/p42/status", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	err := client.UpdateProspectStatus(context.Background(), "p42", "contattato")

	require.NoError(t, err)
	assert.Equal(t, "contattato", gotBody["status"])
}
