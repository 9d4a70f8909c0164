package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Mbenve9198/bdr-tool-api/internal/clients/backend"
	"github.com/Mbenve9198/bdr-tool-api/internal/clients/similarweb"
	"github.com/Mbenve9198/bdr-tool-api/internal/config"
	"github.com/Mbenve9198/bdr-tool-api/internal/jobs"
	"github.com/Mbenve9198/bdr-tool-api/internal/models"
	"github.com/Mbenve9198/bdr-tool-api/internal/traffic"
	"github.com/Mbenve9198/bdr-tool-api/pkg/logger"
)

// AnalysisService orchestrates a website traffic analysis: fetch the raw
// record from the provider, run it through the pure traffic pipeline and
// persist the snapshot to the backend off the request path.
type AnalysisService struct {
	provider    *similarweb.Client
	backend     *backend.Client
	worker      *jobs.Worker
	assumptions traffic.Assumptions
}

// NewAnalysisService wires the analysis flow. The estimate assumptions
// come from configuration so a deployment can tune them without code
// changes.
func NewAnalysisService(provider *similarweb.Client, backendAPI *backend.Client, worker *jobs.Worker, cfg *config.Config) *AnalysisService {
	conversionRate := cfg.ConversionRatePercent
	orderValue := cfg.AverageOrderValue
	return &AnalysisService{
		provider: provider,
		backend:  backendAPI,
		worker:   worker,
		assumptions: traffic.Assumptions{
			ConversionRatePercent: &conversionRate,
			AverageOrderValue:     &orderValue,
		},
	}
}

// AnalyzeWebsite runs the full analysis for one website URL.
//
// The provider returns a list of zero or one records; an empty list means
// the site is unknown to the provider and surfaces as traffic.NoDataError,
// which is not the same as a known site with zero visits. A provider
// timeout propagates as similarweb.ErrTimeout and should be treated by
// callers as "no data yet".
func (s *AnalysisService) AnalyzeWebsite(ctx context.Context, websiteURL string) (*models.TrafficAnalysis, error) {
	domain, err := extractDomain(websiteURL)
	if err != nil {
		return nil, err
	}

	records, err := s.provider.FetchDomain(ctx, domain)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &traffic.NoDataError{Domain: domain}
	}

	profile, err := traffic.Normalize(records[0])
	if err != nil {
		return nil, err
	}
	estimate, err := traffic.EstimateBusiness(profile, s.assumptions)
	if err != nil {
		return nil, err
	}

	analysis := &models.TrafficAnalysis{
		ID:         uuid.NewString(),
		WebsiteURL: websiteURL,
		AnalyzedAt: time.Now().UTC(),
		Profile:    profile,
		Estimate:   estimate,
		Insights:   traffic.DeriveInsights(profile, estimate),
	}

	s.persistSnapshot(analysis)

	return analysis, nil
}

// persistSnapshot saves the analysis as a prospect on the backend,
// fire-and-forget: a persistence failure never fails the analysis.
func (s *AnalysisService) persistSnapshot(analysis *models.TrafficAnalysis) {
	if s.worker == nil || s.backend == nil {
		return
	}
	s.worker.EnqueueAsync(func(ctx context.Context) error {
		if err := s.backend.SaveAnalysis(ctx, analysis); err != nil {
			logger.Warn("Failed to persist analysis snapshot",
				"website", analysis.WebsiteURL, "error", err)
			return err
		}
		return nil
	})
}

// ProviderStatus reports whether the analytics provider token is
// configured, with a masked prefix for diagnostics.
func (s *AnalysisService) ProviderStatus() (bool, string) {
	return s.provider.TokenConfigured()
}

// extractDomain reduces a user-supplied website URL to the bare domain the
// provider expects. Accepts both full URLs and naked domains.
func extractDomain(websiteURL string) (string, error) {
	trimmed := strings.TrimSpace(websiteURL)
	if trimmed == "" {
		return "", &traffic.InvalidInputError{Reason: "website url is empty"}
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Host == "" {
		return "", &traffic.InvalidInputError{Reason: fmt.Sprintf("cannot parse website url %q", websiteURL)}
	}

	host := strings.ToLower(parsed.Host)
	host = strings.TrimPrefix(host, "www.")
	if h, _, found := strings.Cut(host, ":"); found {
		host = h
	}
	return host, nil
}
