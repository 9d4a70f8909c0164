package traffic

// RawAnalyticsRecord is the untrusted payload returned by the traffic
// analytics provider for a single domain. Every field may be absent: the
// provider's schema drifts and partially scraped sites come back with
// whole sections missing, so all leaves are pointers.
//
// This file is the only place that knows the provider's field names. If
// the provider changes its schema, update the mapping here and nothing
// else.
type RawAnalyticsRecord struct {
	Name           *string            `json:"name"`
	URL            *string            `json:"url"`
	Title          *string            `json:"title"`
	Category       *string            `json:"category"`
	GlobalRank     *int64             `json:"globalRank"`
	CountryRank    *int64             `json:"countryRank"`
	Engagements    *RawEngagements    `json:"engagements"`
	TrafficSources *RawTrafficSources `json:"trafficSources"`
	TopCountries   []RawCountryShare  `json:"topCountries"`
}

// RawEngagements carries the provider's engagement metrics.
// TimeOnSite is in seconds, BounceRate is a 0-1 fraction.
type RawEngagements struct {
	Visits       *float64 `json:"visits"`
	TimeOnSite   *float64 `json:"timeOnSite"`
	PagePerVisit *float64 `json:"pagePerVisit"`
	BounceRate   *float64 `json:"bounceRate"`
}

// RawTrafficSources holds the per-channel visit shares as 0-1 fractions.
// Channels overlap in the provider's attribution model, so the shares do
// not necessarily sum to 1.
type RawTrafficSources struct {
	Direct        *float64 `json:"direct"`
	Search        *float64 `json:"search"`
	Social        *float64 `json:"social"`
	Referrals     *float64 `json:"referrals"`
	PaidReferrals *float64 `json:"paidReferrals"`
	Mail          *float64 `json:"mail"`
}

// RawCountryShare is one entry of the provider's country breakdown,
// ordered by descending share.
type RawCountryShare struct {
	Code  *string  `json:"countryAlpha2Code"`
	Name  *string  `json:"countryName"`
	Share *float64 `json:"visitsShare"`
}
