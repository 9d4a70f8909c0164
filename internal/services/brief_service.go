package services

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"

	"github.com/Mbenve9198/bdr-tool-api/internal/models"
	"github.com/Mbenve9198/bdr-tool-api/internal/traffic"
)

//go:embed templates/brief/*.html
var briefTemplates embed.FS

// BriefService renders a one-page cold-call brief PDF for a prospect:
// identity, traffic profile, business estimates and talking points.
type BriefService struct {
	tmpl *template.Template
}

func NewBriefService() (*BriefService, error) {
	tmpl, err := template.ParseFS(briefTemplates, "templates/brief/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse brief templates: %w", err)
	}
	return &BriefService{tmpl: tmpl}, nil
}

type briefCountry struct {
	Name            string
	SharePercent    int
	EstimatedVisits int64
}

type briefInteraction struct {
	Date    string
	Type    string
	Outcome string
	Notes   string
}

type briefData struct {
	CompanyName string
	Website     string
	Industry    string
	Status      string
	GeneratedAt string

	HasTraffic        bool
	TotalVisits       int64
	TimeOnSiteMinutes int
	PagesPerVisit     string
	BounceRatePercent int
	Countries         []briefCountry

	HasEstimate      bool
	MonthlyOrders    int64
	MonthlyShipments int64
	MonthlyRevenue   string

	Insights     []traffic.Insight
	Interactions []briefInteraction
}

// ColdCallBrief renders the brief as a PDF and returns the bytes with a
// suggested filename.
func (s *BriefService) ColdCallBrief(ctx context.Context, details *models.ProspectDetails) ([]byte, string, error) {
	data := buildBriefData(details)

	var html bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&html, "cold_call.html", data); err != nil {
		return nil, "", fmt.Errorf("failed to execute brief template: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, "", fmt.Errorf("failed to create pdf generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(html.Bytes()))
	page.EnableLocalFileAccess.Set(true)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, "", fmt.Errorf("failed to create pdf: %w", err)
	}

	filename := fmt.Sprintf("brief_%s_%s.pdf", details.Basic.ID, time.Now().Format("2006-01-02"))
	return pdfg.Buffer().Bytes(), filename, nil
}

func buildBriefData(details *models.ProspectDetails) briefData {
	data := briefData{
		CompanyName: details.Basic.CompanyName,
		Website:     details.Basic.Website,
		Industry:    details.Basic.Industry,
		Status:      details.Basic.Status,
		GeneratedAt: time.Now().Format("02/01/2006 15:04"),
	}

	if analysis := details.Analysis; analysis != nil && analysis.Profile != nil {
		profile := analysis.Profile
		data.HasTraffic = true
		data.TotalVisits = profile.TotalVisits
		data.TimeOnSiteMinutes = profile.TimeOnSiteMinutes
		data.PagesPerVisit = fmt.Sprintf("%.1f", profile.PagesPerVisit)
		data.BounceRatePercent = profile.BounceRatePercent
		for _, country := range profile.Countries {
			data.Countries = append(data.Countries, briefCountry{
				Name:            country.Name,
				SharePercent:    country.SharePercent,
				EstimatedVisits: country.EstimatedVisits,
			})
		}
		data.Insights = analysis.Insights

		if estimate := analysis.Estimate; estimate != nil {
			data.HasEstimate = true
			data.MonthlyOrders = estimate.MonthlyOrders
			data.MonthlyShipments = estimate.MonthlyShipments
			data.MonthlyRevenue = fmt.Sprintf("%.0f", estimate.MonthlyRevenue)
		}
	}

	for _, interaction := range details.Interactions {
		data.Interactions = append(data.Interactions, briefInteraction{
			Date:    interaction.Date.Format("02/01/2006"),
			Type:    interaction.Type,
			Outcome: interaction.Outcome,
			Notes:   interaction.Notes,
		})
	}

	return data
}
