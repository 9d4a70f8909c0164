package traffic

import (
	"math"
	"strings"

	"github.com/pariz/gountries"
)

// countryDB resolves alpha-2 codes to display names when the provider
// omits the country name. Loaded once; gountries data is embedded.
var countryDB = gountries.New()

// Normalize converts a raw provider record into a SiteTrafficProfile.
//
// It fails only when the record carries no identity at all (neither domain
// nor URL): with nothing to identify the site there is nothing to
// normalize. Every other missing or malformed field degrades to a
// documented default: 0 for counts and percentages, nil for ranks,
// "N/A"/"unclassified" for display strings. All percent conversions
// multiply the 0-1 fraction by 100 and round half up.
func Normalize(raw RawAnalyticsRecord) (*SiteTrafficProfile, error) {
	domain := strings.TrimSpace(strValue(raw.Name))
	rawURL := strings.TrimSpace(strValue(raw.URL))
	if domain == "" && rawURL == "" {
		return nil, &InvalidInputError{Reason: "record has no domain or url"}
	}
	if rawURL == "" {
		rawURL = domain
	}

	name := strings.TrimSpace(strValue(raw.Title))
	if name == "" {
		name = domain
	}
	if name == "" {
		name = UnknownSiteName
	}

	category := strings.TrimSpace(strValue(raw.Category))
	if category == "" {
		category = UnknownCategory
	}

	profile := &SiteTrafficProfile{
		URL:        rawURL,
		Name:       name,
		Category:   category,
		GlobalRank: nonNegativeRank(raw.GlobalRank),
	}

	if eng := raw.Engagements; eng != nil {
		profile.TotalVisits = roundCount(finiteOrZero(eng.Visits))
		profile.TimeOnSiteMinutes = int(math.Round(math.Max(0, finiteOrZero(eng.TimeOnSite)) / 60))
		profile.PagesPerVisit = roundToTenth(finiteOrZero(eng.PagePerVisit))
		profile.BounceRatePercent = percent(finiteOrZero(eng.BounceRate))
	}

	profile.ChannelSharePercent = channelShares(raw.TrafficSources)
	profile.Countries = normalizeCountries(raw.TopCountries, profile.TotalVisits)

	return profile, nil
}

// percent converts a 0-1 share fraction to an integer percent, rounding
// half up. Out-of-range negatives collapse to 0.
func percent(fraction float64) int {
	if fraction <= 0 {
		return 0
	}
	return int(math.Round(fraction * 100))
}

func channelShares(src *RawTrafficSources) map[string]int {
	shares := make(map[string]int, len(Channels))
	for _, ch := range Channels {
		shares[ch] = 0
	}
	if src == nil {
		return shares
	}
	shares[ChannelDirect] = percent(finiteOrZero(src.Direct))
	shares[ChannelSearch] = percent(finiteOrZero(src.Search))
	shares[ChannelSocial] = percent(finiteOrZero(src.Social))
	shares[ChannelReferral] = percent(finiteOrZero(src.Referrals))
	shares[ChannelPaidReferral] = percent(finiteOrZero(src.PaidReferrals))
	shares[ChannelMail] = percent(finiteOrZero(src.Mail))
	return shares
}

// normalizeCountries keeps the provider's ordering verbatim: entries come
// pre-sorted by descending share and are neither re-sorted nor
// de-duplicated. Estimated visits use the raw unrounded share fraction.
func normalizeCountries(raw []RawCountryShare, totalVisits int64) []CountryShare {
	if len(raw) == 0 {
		return []CountryShare{}
	}
	countries := make([]CountryShare, 0, len(raw))
	for _, rc := range raw {
		code := strings.ToUpper(strings.TrimSpace(strValue(rc.Code)))
		share := finiteOrZero(rc.Share)
		if share < 0 {
			share = 0
		}
		countries = append(countries, CountryShare{
			Code:            code,
			Name:            countryName(code, strValue(rc.Name)),
			SharePercent:    percent(share),
			EstimatedVisits: int64(math.Round(float64(totalVisits) * share)),
		})
	}
	return countries
}

func countryName(code, providerName string) string {
	if providerName != "" {
		return providerName
	}
	if code == "" {
		return UnknownSiteName
	}
	country, err := countryDB.FindCountryByAlpha(code)
	if err != nil {
		return code
	}
	return country.Name.Common
}

func nonNegativeRank(rank *int64) *int64 {
	if rank == nil || *rank < 0 {
		return nil
	}
	r := *rank
	return &r
}

func roundCount(v float64) int64 {
	if v <= 0 {
		return 0
	}
	return int64(math.Round(v))
}

func roundToTenth(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Round(v*10) / 10
}

func finiteOrZero(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return *v
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
