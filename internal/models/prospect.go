package models

import "time"

// Prospect lifecycle statuses, as exposed to BDRs. The flow runs
// nuovo → contattato → interessato → qualificato → proposta and ends in
// chiuso-vinto or chiuso-perso; transitions are enforced by the
// statemachine package.
const (
	ProspectStatusNew        = "nuovo"
	ProspectStatusContacted  = "contattato"
	ProspectStatusInterested = "interessato"
	ProspectStatusQualified  = "qualificato"
	ProspectStatusProposal   = "proposta"
	ProspectStatusWon        = "chiuso-vinto"
	ProspectStatusLost       = "chiuso-perso"
)

// ProspectSummary is the list-view shape of a saved prospect.
type ProspectSummary struct {
	ID                 string       `json:"id"`
	CompanyName        string       `json:"companyName"`
	Website            string       `json:"website"`
	Industry           string       `json:"industry"`
	Size               string       `json:"size"`
	Status             string       `json:"status"`
	AnalysisDate       time.Time    `json:"analysisDate"`
	EstimatedShipments int64        `json:"estimatedShipments"`
	EstimatedRevenue   float64      `json:"estimatedRevenue"`
	LastInteraction    *Interaction `json:"lastInteraction"`
}

// ProspectBasic is the identity block of a prospect detail view.
type ProspectBasic struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	Website     string `json:"website"`
	Industry    string `json:"industry"`
	Size        string `json:"size"`
	Status      string `json:"status"`
}

// BusinessInfo carries the persisted business estimate summary the
// backend keeps alongside a prospect.
type BusinessInfo struct {
	EstimatedMonthlyVisits  int64   `json:"estimatedMonthlyVisits"`
	MonthlyOrders           int64   `json:"monthlyOrders"`
	ConversionRate          float64 `json:"conversionRate"`
	MonthlyShipments        int64   `json:"monthlyShipments"`
	EstimatedMonthlyRevenue float64 `json:"estimatedMonthlyRevenue"`
	AverageOrderValue       float64 `json:"averageOrderValue"`
}

// WebsiteAnalysis records when the traffic analysis was refreshed.
type WebsiteAnalysis struct {
	AnalysisDate time.Time `json:"analysisDate"`
}

// Interaction is one touchpoint with the prospect (call, email, demo).
type Interaction struct {
	Type       string    `json:"type"`
	Date       time.Time `json:"date"`
	Notes      string    `json:"notes"`
	Outcome    string    `json:"outcome"`
	NextAction string    `json:"nextAction,omitempty"`
}

// ProspectDetails is the full detail view: identity, persisted business
// estimates, interaction history and the traffic analysis snapshot.
type ProspectDetails struct {
	Basic           ProspectBasic    `json:"basic"`
	BusinessInfo    *BusinessInfo    `json:"businessInfo"`
	WebsiteAnalysis *WebsiteAnalysis `json:"websiteAnalysis"`
	Interactions    []Interaction    `json:"interactions"`
	Analysis        *TrafficAnalysis `json:"similarwebData"`
}
