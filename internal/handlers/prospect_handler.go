package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mbenve9198/bdr-tool-api/internal/services"
	"github.com/Mbenve9198/bdr-tool-api/internal/statemachine"
)

type ProspectHandler struct {
	prospectSvc *services.ProspectService
	exportSvc   *services.ExportService
	briefSvc    *services.BriefService
}

func NewProspectHandler(prospectSvc *services.ProspectService, exportSvc *services.ExportService, briefSvc *services.BriefService) *ProspectHandler {
	return &ProspectHandler{
		prospectSvc: prospectSvc,
		exportSvc:   exportSvc,
		briefSvc:    briefSvc,
	}
}

func (h *ProspectHandler) List(c *gin.Context) {
	payload, status, err := h.prospectSvc.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Backend non raggiungibile"})
		return
	}
	c.Data(status, jsonContentType, payload)
}

func (h *ProspectHandler) Get(c *gin.Context) {
	payload, status, err := h.prospectSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Backend non raggiungibile"})
		return
	}
	c.Data(status, jsonContentType, payload)
}

func (h *ProspectHandler) Create(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Corpo della richiesta non valido"})
		return
	}
	payload, status, err := h.prospectSvc.Create(c.Request.Context(), body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Backend non raggiungibile"})
		return
	}
	c.Data(status, jsonContentType, payload)
}

type StatusChangeRequest struct {
	Event string `json:"event" binding:"required"`
}

// ChangeStatus applies a lifecycle event to the prospect. Transitions not
// allowed by the lifecycle are rejected without touching the backend.
func (h *ProspectHandler) ChangeStatus(c *gin.Context) {
	var req StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Evento di stato richiesto"})
		return
	}

	newStatus, err := h.prospectSvc.ChangeStatus(c.Request.Context(), c.Param("id"), req.Event)
	if err != nil {
		if statemachine.IsTransitionError(err) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Transizione di stato non consentita"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Aggiornamento stato non riuscito"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"status": newStatus},
	})
}

// Export downloads the prospect's analysis as csv, xlsx or pdf.
func (h *ProspectHandler) Export(c *gin.Context) {
	format := c.Query("format")

	details, err := h.prospectSvc.Details(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Prospect non trovato"})
		return
	}

	var data []byte
	var filename string

	switch format {
	case "csv":
		data, filename, err = h.exportSvc.ExportCSV(c.Request.Context(), details)
	case "xlsx":
		data, filename, err = h.exportSvc.ExportXLSX(c.Request.Context(), details)
	case "pdf":
		data, filename, err = h.exportSvc.ExportPDF(c.Request.Context(), details)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Formato non valido (csv, xlsx, pdf)"})
		return
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": fmt.Sprintf("Generazione %s non riuscita", format)})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/octet-stream", data)
}

// Brief downloads the cold-call brief PDF for the prospect.
func (h *ProspectHandler) Brief(c *gin.Context) {
	details, err := h.prospectSvc.Details(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Prospect non trovato"})
		return
	}

	data, filename, err := h.briefSvc.ColdCallBrief(c.Request.Context(), details)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Generazione brief non riuscita"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
