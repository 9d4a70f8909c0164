package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/Mbenve9198/bdr-tool-api/internal/clients/backend"
	"github.com/Mbenve9198/bdr-tool-api/internal/models"
	"github.com/Mbenve9198/bdr-tool-api/pkg/logger"
)

// KnowledgeService proxies the knowledge-base CRUD to the backend API.
// Read endpoints degrade to mock data when the backend is unreachable so
// the UI stays usable during backend outages (original behavior).
type KnowledgeService struct {
	backend *backend.Client
}

func NewKnowledgeService(backendAPI *backend.Client) *KnowledgeService {
	return &KnowledgeService{backend: backendAPI}
}

// List proxies the knowledge-base listing; on backend failure it returns
// the mock catalogue with a 200 so the admin UI still renders.
func (s *KnowledgeService) List(ctx context.Context, query url.Values) ([]byte, int) {
	payload, status, err := s.backend.Do(ctx, http.MethodGet, "/knowledge-base", query, nil)
	if err != nil || status >= 500 {
		logger.Warn("Knowledge base unreachable, serving mock data", "error", err, "status", status)
		return mustJSON(mockKnowledgeList()), http.StatusOK
	}
	return payload, status
}

// Create proxies a new knowledge-base entry to the backend.
func (s *KnowledgeService) Create(ctx context.Context, body []byte) ([]byte, int, error) {
	return s.backend.Do(ctx, http.MethodPost, "/knowledge-base", nil, body)
}

// Get proxies a single entry fetch.
func (s *KnowledgeService) Get(ctx context.Context, id string) ([]byte, int, error) {
	return s.backend.Do(ctx, http.MethodGet, "/knowledge-base/"+url.PathEscape(id), nil, nil)
}

// Update proxies an entry update.
func (s *KnowledgeService) Update(ctx context.Context, id string, body []byte) ([]byte, int, error) {
	return s.backend.Do(ctx, http.MethodPut, "/knowledge-base/"+url.PathEscape(id), nil, body)
}

// Delete proxies an entry deletion.
func (s *KnowledgeService) Delete(ctx context.Context, id string) ([]byte, int, error) {
	return s.backend.Do(ctx, http.MethodDelete, "/knowledge-base/"+url.PathEscape(id), nil, nil)
}

// Stats proxies the stats overview, with the same mock fallback as List.
func (s *KnowledgeService) Stats(ctx context.Context) ([]byte, int) {
	payload, status, err := s.backend.Do(ctx, http.MethodGet, "/knowledge-base/stats/overview", nil, nil)
	if err != nil || status >= 500 {
		logger.Warn("Knowledge base stats unreachable, serving mock data", "error", err, "status", status)
		return mustJSON(mockKnowledgeStats()), http.StatusOK
	}
	return payload, status
}

// SearchForContext fetches knowledge entries relevant to a chat query, for
// seeding the assistant prompt. Failures are swallowed: the chat works
// without knowledge context, just less informed.
func (s *KnowledgeService) SearchForContext(ctx context.Context, query string, limit int) []models.KnowledgeItem {
	items, err := s.backend.SearchKnowledge(ctx, query, limit)
	if err != nil {
		logger.Warn("Knowledge base search failed, continuing without context", "error", err)
		return nil
	}
	return items
}

type listEnvelope struct {
	Success bool                   `json:"success"`
	Data    []models.KnowledgeItem `json:"data"`
	Count   int                    `json:"count"`
}

type statsEnvelope struct {
	Success bool                  `json:"success"`
	Data    models.KnowledgeStats `json:"data"`
}

func mockKnowledgeList() listEnvelope {
	items := mockKnowledgeItems()
	return listEnvelope{Success: true, Data: items, Count: len(items)}
}

func mockKnowledgeStats() statsEnvelope {
	items := mockKnowledgeItems()
	stats := models.KnowledgeStats{TotalItems: len(items)}
	for _, item := range items {
		stats.CategoryStats = append(stats.CategoryStats, models.KnowledgeCategoryStats{
			Category:   item.Category,
			Count:      1,
			TotalViews: item.Usage.Views,
			TotalUsage: item.Usage.UsedInScripts,
		})
		stats.RecentItems = append(stats.RecentItems, models.KnowledgeRecentItem{
			ID:          item.ID,
			Title:       item.Title,
			Category:    item.Category,
			LastUpdated: item.LastUpdated,
		})
	}
	return statsEnvelope{Success: true, Data: stats}
}

// mockKnowledgeItems is the debug catalogue served when the backend is
// down.
func mockKnowledgeItems() []models.KnowledgeItem {
	now := time.Now()
	return []models.KnowledgeItem{
		{
			ID:          "mock1",
			Title:       "Introduzione a SendCloud",
			Category:    "funzionalità",
			Content:     "SendCloud è una piattaforma completa per la gestione delle spedizioni...",
			Tags:        []string{"introduzione", "overview"},
			Priority:    5,
			IsActive:    true,
			CreatedBy:   "admin",
			LastUpdated: now,
			Usage:       models.KnowledgeUsage{Views: 10, UsedInScripts: 5},
		},
		{
			ID:          "mock2",
			Title:       "Tariffe Competitive DHL",
			Category:    "tariffe-corrieri",
			Content:     "DHL offre tariffe competitive per spedizioni nazionali e internazionali...",
			Tags:        []string{"dhl", "tariffe", "competitive"},
			Priority:    4,
			IsActive:    true,
			CreatedBy:   "admin",
			LastUpdated: now,
			Usage:       models.KnowledgeUsage{Views: 25, UsedInScripts: 12},
		},
	}
}

func mustJSON(v any) []byte {
	payload, err := json.Marshal(v)
	if err != nil {
		// Mock shapes are static; marshaling them cannot fail.
		panic(err)
	}
	return payload
}
