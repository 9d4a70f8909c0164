package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Mbenve9198/bdr-tool-api/internal/models"
	"github.com/Mbenve9198/bdr-tool-api/internal/traffic"
)

func sampleAnalysis() *models.TrafficAnalysis {
	rank := int64(15000)
	return &models.TrafficAnalysis{
		ID:         "a1",
		WebsiteURL: "https://example.com",
		AnalyzedAt: time.Now(),
		Profile: &traffic.SiteTrafficProfile{
			URL:               "example.com",
			Name:              "example.com",
			Category:          "ecommerce/fashion",
			GlobalRank:        &rank,
			TotalVisits:       125000,
			TimeOnSiteMinutes: 2,
			PagesPerVisit:     3.5,
			BounceRatePercent: 45,
			ChannelSharePercent: map[string]int{
				traffic.ChannelDirect:       30,
				traffic.ChannelSearch:       50,
				traffic.ChannelSocial:       10,
				traffic.ChannelReferral:     5,
				traffic.ChannelPaidReferral: 3,
				traffic.ChannelMail:         2,
			},
			Countries: []traffic.CountryShare{
				{Code: "IT", Name: "Italy", SharePercent: 62, EstimatedVisits: 77500},
				{Code: "FR", Name: "France", SharePercent: 20, EstimatedVisits: 25000},
			},
		},
		Estimate: &traffic.BusinessEstimate{
			ConversionRatePercent: 2,
			AverageOrderValue:     75,
			MonthlyOrders:         2500,
			MonthlyShipments:      2625,
			MonthlyRevenue:        187500,
		},
		Insights: []traffic.Insight{
			{
				Kind:                 traffic.InsightConcentration,
				Message:              "Il 62% del traffico proviene da Italy.",
				Priority:             traffic.PriorityMedium,
				ActionableSuggestion: "Proponi tariffe dedicate per il mercato principale.",
			},
		},
	}
}

func TestTrafficSectionContainsProfileData(t *testing.T) {
	section := TrafficSection(sampleAnalysis())

	assert.Contains(t, section, "DATI TRAFFICO SITO WEB")
	assert.Contains(t, section, "URL: example.com")
	assert.Contains(t, section, "Visite mensili: 125000")
	assert.Contains(t, section, "Ranking globale: 15000")
	assert.Contains(t, section, "Pagine per visita: 3.5")
	assert.Contains(t, section, "Bounce rate: 45%")
	assert.Contains(t, section, "Italy: 62% (77500 visite)")
	assert.Contains(t, section, "Ricerca: 50%")
	assert.Contains(t, section, "Ordini mensili stimati: 2500")
	assert.Contains(t, section, "Il 62% del traffico proviene da Italy.")
	assert.Contains(t, section, "ISTRUZIONI SPECIFICHE")
}

func TestTrafficSectionMissingRank(t *testing.T) {
	analysis := sampleAnalysis()
	analysis.Profile.GlobalRank = nil

	section := TrafficSection(analysis)

	assert.Contains(t, section, "Ranking globale: N/A")
}

func TestTrafficSectionLimitsCountriesToFive(t *testing.T) {
	analysis := sampleAnalysis()
	analysis.Profile.Countries = []traffic.CountryShare{
		{Name: "Italy"}, {Name: "France"}, {Name: "Germany"},
		{Name: "Spain"}, {Name: "Portugal"}, {Name: "Austria"},
	}

	section := TrafficSection(analysis)

	assert.Contains(t, section, "Portugal")
	assert.NotContains(t, section, "Austria")
}

func TestTrafficSectionNilAnalysis(t *testing.T) {
	assert.Empty(t, TrafficSection(nil))
	assert.Empty(t, TrafficSection(&models.TrafficAnalysis{}))
}

func TestKnowledgeSection(t *testing.T) {
	assert.Empty(t, knowledgeSection(nil))

	items := []models.KnowledgeItem{
		{Title: "Tariffe DHL", Content: "DHL offre tariffe competitive..."},
	}
	section := knowledgeSection(items)
	assert.Contains(t, section, "Informazioni dalla Knowledge Base SendCloud")
	assert.Contains(t, section, "Tariffe DHL: DHL offre tariffe competitive...")
}
