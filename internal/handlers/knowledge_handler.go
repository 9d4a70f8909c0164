package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mbenve9198/bdr-tool-api/internal/services"
)

const jsonContentType = "application/json"

// KnowledgeHandler proxies the knowledge-base endpoints to the backend,
// passing bodies and status codes through untouched.
type KnowledgeHandler struct {
	knowledgeSvc *services.KnowledgeService
}

func NewKnowledgeHandler(knowledgeSvc *services.KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{knowledgeSvc: knowledgeSvc}
}

func (h *KnowledgeHandler) List(c *gin.Context) {
	payload, status := h.knowledgeSvc.List(c.Request.Context(), c.Request.URL.Query())
	c.Data(status, jsonContentType, payload)
}

func (h *KnowledgeHandler) Create(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Corpo della richiesta non valido"})
		return
	}
	payload, status, err := h.knowledgeSvc.Create(c.Request.Context(), body)
	h.proxy(c, payload, status, err)
}

func (h *KnowledgeHandler) Get(c *gin.Context) {
	payload, status, err := h.knowledgeSvc.Get(c.Request.Context(), c.Param("id"))
	h.proxy(c, payload, status, err)
}

func (h *KnowledgeHandler) Update(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Corpo della richiesta non valido"})
		return
	}
	payload, status, err := h.knowledgeSvc.Update(c.Request.Context(), c.Param("id"), body)
	h.proxy(c, payload, status, err)
}

func (h *KnowledgeHandler) Delete(c *gin.Context) {
	payload, status, err := h.knowledgeSvc.Delete(c.Request.Context(), c.Param("id"))
	h.proxy(c, payload, status, err)
}

func (h *KnowledgeHandler) Stats(c *gin.Context) {
	payload, status := h.knowledgeSvc.Stats(c.Request.Context())
	c.Data(status, jsonContentType, payload)
}

func (h *KnowledgeHandler) proxy(c *gin.Context, payload []byte, status int, err error) {
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Knowledge base non raggiungibile"})
		return
	}
	c.Data(status, jsonContentType, payload)
}
