package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Mbenve9198/bdr-tool-api/internal/config"
	"github.com/Mbenve9198/bdr-tool-api/internal/services"
)

func newChatRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// No API key: the handler must answer with an SSE error event
	cfg := &config.Config{OpenAIModel: "gpt-4o"}
	handler := NewChatHandler(services.NewChatService(cfg, nil, nil))

	router := gin.New()
	router.POST("/api/v1/chat", handler.Chat)
	return router
}

func TestChatRequiresMessages(t *testing.T) {
	router := newChatRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(`{"messages": []}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Messaggi della conversazione richiesti")
}

func TestChatUnconfiguredAssistantStreamsError(t *testing.T) {
	router := newChatRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(`{"messages": [{"role": "user", "content": "ciao"}]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
	assert.Contains(t, w.Body.String(), "Assistente non configurato")
}
