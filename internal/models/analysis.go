package models

import (
	"time"

	"github.com/Mbenve9198/bdr-tool-api/internal/traffic"
)

// TrafficAnalysis is one completed website analysis: the normalized
// profile plus the derived sales estimate and insights. Built fresh per
// request, never mutated afterwards; persistence is the backend's job.
type TrafficAnalysis struct {
	ID         string                      `json:"id"`
	WebsiteURL string                      `json:"websiteUrl"`
	AnalyzedAt time.Time                   `json:"analyzedAt"`
	Profile    *traffic.SiteTrafficProfile `json:"profile"`
	Estimate   *traffic.BusinessEstimate   `json:"estimate"`
	Insights   []traffic.Insight           `json:"insights"`
}
