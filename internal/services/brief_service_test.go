package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mbenve9198/bdr-tool-api/internal/models"
)

func TestNewBriefServiceParsesTemplates(t *testing.T) {
	svc, err := NewBriefService()
	require.NoError(t, err)
	require.NotNil(t, svc.tmpl)
	assert.NotNil(t, svc.tmpl.Lookup("cold_call.html"))
}

func TestBriefTemplateRenders(t *testing.T) {
	svc, err := NewBriefService()
	require.NoError(t, err)

	details := sampleProspectDetails()
	details.Interactions = []models.Interaction{
		{Type: "call", Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Outcome: "interessato", Notes: "richiamare"},
	}

	var html bytes.Buffer
	err = svc.tmpl.ExecuteTemplate(&html, "cold_call.html", buildBriefData(details))
	require.NoError(t, err)

	rendered := html.String()
	assert.Contains(t, rendered, "Acme Srl")
	assert.Contains(t, rendered, "Mercati Principali")
	assert.Contains(t, rendered, "Italy")
	assert.Contains(t, rendered, "10/03/2025")
}

func TestBuildBriefData(t *testing.T) {
	data := buildBriefData(sampleProspectDetails())

	assert.Equal(t, "Acme Srl", data.CompanyName)
	assert.True(t, data.HasTraffic)
	assert.Equal(t, int64(125000), data.TotalVisits)
	assert.Equal(t, "3.5", data.PagesPerVisit)
	assert.True(t, data.HasEstimate)
	assert.Equal(t, int64(2625), data.MonthlyShipments)
	require.Len(t, data.Countries, 2)
	assert.Equal(t, "Italy", data.Countries[0].Name)
}

func TestBuildBriefDataWithoutAnalysis(t *testing.T) {
	details := sampleProspectDetails()
	details.Analysis = nil

	data := buildBriefData(details)

	assert.False(t, data.HasTraffic)
	assert.False(t, data.HasEstimate)
	assert.Empty(t, data.Countries)
}
