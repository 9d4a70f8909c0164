package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mbenve9198/bdr-tool-api/internal/clients/similarweb"
	"github.com/Mbenve9198/bdr-tool-api/internal/services"
	"github.com/Mbenve9198/bdr-tool-api/internal/traffic"
)

type AnalysisHandler struct {
	analysisSvc *services.AnalysisService
}

func NewAnalysisHandler(analysisSvc *services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisSvc: analysisSvc}
}

type AnalyzeRequest struct {
	WebsiteURL string `json:"websiteUrl"`
}

// Analyze runs the full traffic analysis for a website URL.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.WebsiteURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "URL del sito web richiesto",
		})
		return
	}

	analysis, err := h.analysisSvc.AnalyzeWebsite(c.Request.Context(), req.WebsiteURL)
	if err != nil {
		var invalid *traffic.InvalidInputError
		var noData *traffic.NoDataError
		switch {
		case errors.As(err, &invalid):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "URL del sito web non valido",
			})
		case errors.As(err, &noData):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Nessun dato disponibile per questo sito web",
			})
		case errors.Is(err, similarweb.ErrTimeout):
			c.JSON(http.StatusRequestTimeout, gin.H{
				"success": false,
				"error":   "Timeout durante l'analisi del sito web. Riprova tra qualche minuto.",
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"success": false,
				"error":   "Errore durante l'analisi del sito web",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    analysis,
	})
}

// ConfigCheck reports whether the analytics provider token is configured.
func (h *AnalysisHandler) ConfigCheck(c *gin.Context) {
	configured, tokenPrefix := h.analysisSvc.ProviderStatus()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"apifyTokenConfigured": configured,
			"tokenPrefix":          tokenPrefix,
		},
	})
}
