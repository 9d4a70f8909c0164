package traffic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int64) *int64     { return &v }
func sptr(v string) *string   { return &v }

func TestNormalizeFullRecord(t *testing.T) {
	raw := RawAnalyticsRecord{
		Name:       sptr("shop.example.it"),
		URL:        sptr("https://shop.example.it"),
		Title:      sptr("Example Shop"),
		Category:   sptr("ecommerce/fashion"),
		GlobalRank: iptr(84210),
		Engagements: &RawEngagements{
			Visits:       fptr(125000),
			TimeOnSite:   fptr(95), // 1.58 min -> rounds to 2
			PagePerVisit: fptr(3.46),
			BounceRate:   fptr(0.85),
		},
		TrafficSources: &RawTrafficSources{
			Direct:        fptr(0.30),
			Search:        fptr(0.412),
			Social:        fptr(0.05),
			Referrals:     fptr(0.10),
			PaidReferrals: fptr(0.024),
			Mail:          fptr(0.01),
		},
		TopCountries: []RawCountryShare{
			{Code: sptr("IT"), Name: sptr("Italy"), Share: fptr(0.62)},
			{Code: sptr("FR"), Share: fptr(0.10)},
		},
	}

	profile, err := Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, "https://shop.example.it", profile.URL)
	assert.Equal(t, "Example Shop", profile.Name)
	assert.Equal(t, "ecommerce/fashion", profile.Category)
	require.NotNil(t, profile.GlobalRank)
	assert.Equal(t, int64(84210), *profile.GlobalRank)

	assert.Equal(t, int64(125000), profile.TotalVisits)
	assert.Equal(t, 2, profile.TimeOnSiteMinutes)
	assert.Equal(t, 3.5, profile.PagesPerVisit)
	assert.Equal(t, 85, profile.BounceRatePercent)

	assert.Equal(t, 30, profile.ChannelSharePercent[ChannelDirect])
	assert.Equal(t, 41, profile.ChannelSharePercent[ChannelSearch])
	assert.Equal(t, 5, profile.ChannelSharePercent[ChannelSocial])
	assert.Equal(t, 10, profile.ChannelSharePercent[ChannelReferral])
	assert.Equal(t, 2, profile.ChannelSharePercent[ChannelPaidReferral])
	assert.Equal(t, 1, profile.ChannelSharePercent[ChannelMail])

	require.Len(t, profile.Countries, 2)
	assert.Equal(t, "IT", profile.Countries[0].Code)
	assert.Equal(t, "Italy", profile.Countries[0].Name)
	assert.Equal(t, 62, profile.Countries[0].SharePercent)
	// Estimated visits come from the raw fraction, not the rounded percent.
	assert.Equal(t, int64(77500), profile.Countries[0].EstimatedVisits)
	// Country name resolved from the alpha-2 code when the provider omits it.
	assert.Equal(t, "France", profile.Countries[1].Name)
	assert.Equal(t, int64(12500), profile.Countries[1].EstimatedVisits)
}

func TestNormalizeMissingEngagementsDefaultsToZero(t *testing.T) {
	profile, err := Normalize(RawAnalyticsRecord{Name: sptr("quiet.example.com")})
	require.NoError(t, err)

	assert.Equal(t, int64(0), profile.TotalVisits)
	assert.Equal(t, 0, profile.TimeOnSiteMinutes)
	assert.Equal(t, 0.0, profile.PagesPerVisit)
	assert.Equal(t, 0, profile.BounceRatePercent)
	assert.Nil(t, profile.GlobalRank)
	assert.Equal(t, UnknownCategory, profile.Category)
	assert.Empty(t, profile.Countries)

	// Every known channel is present even with no source data.
	for _, ch := range Channels {
		share, ok := profile.ChannelSharePercent[ch]
		assert.True(t, ok, "channel %s missing", ch)
		assert.Equal(t, 0, share)
	}
}

func TestNormalizeWithoutIdentityFails(t *testing.T) {
	_, err := Normalize(RawAnalyticsRecord{
		Engagements: &RawEngagements{Visits: fptr(1000)},
	})
	require.Error(t, err)

	var invalid *InvalidInputError
	assert.True(t, errors.As(err, &invalid))
}

func TestNormalizeIdentityFallbacks(t *testing.T) {
	tests := []struct {
		name         string
		raw          RawAnalyticsRecord
		wantURL      string
		wantSiteName string
	}{
		{
			name:         "domain only",
			raw:          RawAnalyticsRecord{Name: sptr("example.com")},
			wantURL:      "example.com",
			wantSiteName: "example.com",
		},
		{
			name:         "url only",
			raw:          RawAnalyticsRecord{URL: sptr("https://example.com")},
			wantURL:      "https://example.com",
			wantSiteName: UnknownSiteName,
		},
		{
			name:         "title wins over domain",
			raw:          RawAnalyticsRecord{Name: sptr("example.com"), Title: sptr("Example Srl")},
			wantURL:      "example.com",
			wantSiteName: "Example Srl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := Normalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, profile.URL)
			assert.Equal(t, tt.wantSiteName, profile.Name)
		})
	}
}

func TestNormalizeDiscardsMalformedNumbers(t *testing.T) {
	negativeRank := int64(-5)
	raw := RawAnalyticsRecord{
		Name:       sptr("weird.example.com"),
		GlobalRank: &negativeRank,
		Engagements: &RawEngagements{
			Visits:     fptr(-200),
			TimeOnSite: fptr(-30),
		},
		TopCountries: []RawCountryShare{
			{Code: sptr("it"), Share: fptr(-0.2)},
		},
	}

	profile, err := Normalize(raw)
	require.NoError(t, err)

	assert.Nil(t, profile.GlobalRank)
	assert.Equal(t, int64(0), profile.TotalVisits)
	assert.Equal(t, 0, profile.TimeOnSiteMinutes)
	require.Len(t, profile.Countries, 1)
	assert.Equal(t, "IT", profile.Countries[0].Code)
	assert.Equal(t, 0, profile.Countries[0].SharePercent)
	assert.Equal(t, int64(0), profile.Countries[0].EstimatedVisits)
}

func TestNormalizePreservesCountryOrder(t *testing.T) {
	raw := RawAnalyticsRecord{
		Name: sptr("example.com"),
		TopCountries: []RawCountryShare{
			{Code: sptr("DE"), Share: fptr(0.20)},
			{Code: sptr("IT"), Share: fptr(0.55)}, // provider order kept even if not descending
			{Code: sptr("DE"), Share: fptr(0.20)}, // duplicates kept too
		},
	}

	profile, err := Normalize(raw)
	require.NoError(t, err)

	codes := make([]string, 0, len(profile.Countries))
	for _, c := range profile.Countries {
		codes = append(codes, c.Code)
	}
	assert.Equal(t, []string{"DE", "IT", "DE"}, codes)
}

func TestPercentRoundsHalfUp(t *testing.T) {
	tests := []struct {
		fraction float64
		want     int
	}{
		{0, 0},
		{0.005, 1},
		{0.014, 1},
		{0.025, 3},
		{0.62, 62},
		{0.999, 100},
		{1, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, percent(tt.fraction), "percent(%v)", tt.fraction)
	}
}
