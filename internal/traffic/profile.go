// Package traffic converts raw third-party website-analytics payloads into
// normalized traffic profiles, sales estimates and insights for BDRs.
//
// Everything in this package is a pure function: no I/O, no logging, no
// retries. Callers own the provider call, its timeout and its error
// reporting.
package traffic

// Traffic channels recognized by the normalizer. A profile always carries
// one share entry per channel; channels missing from the raw record are 0.
const (
	ChannelDirect       = "direct"
	ChannelSearch       = "search"
	ChannelSocial       = "social"
	ChannelReferral     = "referral"
	ChannelPaidReferral = "paidReferral"
	ChannelMail         = "mail"
)

// Channels lists the known channels in display order.
var Channels = []string{
	ChannelDirect,
	ChannelSearch,
	ChannelSocial,
	ChannelReferral,
	ChannelPaidReferral,
	ChannelMail,
}

// Sentinels for display strings the provider did not supply.
const (
	UnknownSiteName    = "N/A"
	UnknownCategory    = "unclassified"
)

// CountryShare is one country of the traffic breakdown, in the provider's
// original order (descending by share; never re-sorted here).
//
// EstimatedVisits is computed from the raw unrounded share fraction, not
// from the rounded SharePercent, so per-country visit estimates do not
// compound rounding error.
type CountryShare struct {
	Code            string `json:"countryCode"`
	Name            string `json:"countryName"`
	SharePercent    int    `json:"sharePercent"`
	EstimatedVisits int64  `json:"estimatedVisits"`
}

// SiteTrafficProfile is the normalized view of one analyzed website. All
// numeric fields are in human display units: minutes, integer percents,
// visit counts.
type SiteTrafficProfile struct {
	URL               string         `json:"url"`
	Name              string         `json:"siteName"`
	Category          string         `json:"category"`
	GlobalRank        *int64         `json:"globalRank"`
	TotalVisits       int64          `json:"totalVisits"`
	TimeOnSiteMinutes int            `json:"timeOnSiteMinutes"`
	PagesPerVisit     float64        `json:"pagesPerVisit"`
	BounceRatePercent int            `json:"bounceRatePercent"`
	// Channel shares may legitimately not sum to 100: the provider
	// attributes overlapping channels. Do not "fix" them.
	ChannelSharePercent map[string]int `json:"trafficSources"`
	Countries           []CountryShare `json:"topCountries"`
}

// CountryEstimate carries the per-country slice of a business estimate.
type CountryEstimate struct {
	Code      string `json:"countryCode"`
	Name      string `json:"countryName"`
	Orders    int64  `json:"monthlyOrders"`
	Shipments int64  `json:"monthlyShipments"`
}

// BusinessEstimate is the sales heuristic derived from a profile: how many
// orders, shipments and how much revenue a site of this traffic likely
// does per month. Per-country figures are rounded independently and do not
// need to reconcile with the aggregate.
type BusinessEstimate struct {
	ConversionRatePercent float64           `json:"conversionRate"`
	AverageOrderValue     float64           `json:"averageOrderValue"`
	MonthlyOrders         int64             `json:"monthlyOrders"`
	MonthlyShipments      int64             `json:"monthlyShipments"`
	MonthlyRevenue        float64           `json:"monthlyRevenue"`
	PerCountry            []CountryEstimate `json:"perCountry"`
}

// Insight priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Insight kinds. Concentration, high-bounce and no-data are the contract;
// the rest are additional heuristics.
const (
	InsightConcentration  = "concentration"
	InsightHighBounce     = "high-bounce"
	InsightNoData         = "no-data"
	InsightHighVolume     = "high-volume"
	InsightSearchReliance = "search-reliance"
)

// Insight is a structured observation about a profile, shown to the BDR
// and folded into the assistant prompt.
type Insight struct {
	Kind                 string `json:"kind"`
	Message              string `json:"message"`
	Priority             string `json:"priority"`
	ActionableSuggestion string `json:"actionableSuggestion"`
}
