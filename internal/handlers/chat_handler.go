package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mbenve9198/bdr-tool-api/internal/services"
	"github.com/Mbenve9198/bdr-tool-api/pkg/logger"
)

type ChatHandler struct {
	chatSvc *services.ChatService
}

func NewChatHandler(chatSvc *services.ChatService) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc}
}

// Chat streams the assistant's reply as server-sent events. Each content
// chunk arrives as a "data:" line; the stream ends with "data: [DONE]".
func (h *ChatHandler) Chat(c *gin.Context) {
	var req services.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Messaggi della conversazione richiesti"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Streaming non supportato"})
		return
	}

	err := h.chatSvc.Stream(c.Request.Context(), req, func(chunk string) error {
		if _, err := c.Writer.WriteString("data: " + chunk + "\n\n"); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})
	if err != nil {
		if errors.Is(err, services.ErrAssistantNotConfigured) {
			// Headers not sent yet only if no chunk was written; SSE
			// clients treat this as an error event either way.
			c.Writer.WriteString("data: {\"error\": \"Assistente non configurato\"}\n\n")
			flusher.Flush()
			return
		}
		logger.Error("Chat stream failed", "error", err)
		c.Writer.WriteString("data: {\"error\": \"Errore durante la generazione della risposta\"}\n\n")
		flusher.Flush()
		return
	}

	c.Writer.WriteString("data: [DONE]\n\n")
	flusher.Flush()
}
