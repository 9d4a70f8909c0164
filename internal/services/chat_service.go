package services

import (
	"context"
	"errors"
	"io"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Mbenve9198/bdr-tool-api/internal/clients/similarweb"
	"github.com/Mbenve9198/bdr-tool-api/internal/config"
	"github.com/Mbenve9198/bdr-tool-api/internal/traffic"
	"github.com/Mbenve9198/bdr-tool-api/pkg/logger"
)

// Chat modes. Anything else gets the base persona only.
const (
	ChatModeColdCall        = "cold-call"
	ChatModeOfferGeneration = "offer-generation"
)

// ErrAssistantNotConfigured is returned when OPENAI_API_KEY is unset.
var ErrAssistantNotConfigured = errors.New("assistant is not configured: missing OpenAI API key")

// ChatMessage is one turn of the conversation, OpenAI roles.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatFormData carries the optional per-mode parameters the UI sends
// alongside the conversation.
type ChatFormData struct {
	Query       string `json:"query"`
	WebsiteURL  string `json:"websiteUrl"`
	CompanyName string `json:"companyName"`
	Industry    string `json:"industry"`
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
	Mode     string        `json:"mode"`
	FormData *ChatFormData `json:"formData"`
}

// ChatService streams assistant completions, with a system prompt built
// from the chat mode, the knowledge base and a fresh traffic analysis of
// the prospect's website when one is provided.
type ChatService struct {
	client    *openai.Client
	model     string
	knowledge *KnowledgeService
	analysis  *AnalysisService
}

func NewChatService(cfg *config.Config, knowledge *KnowledgeService, analysis *AnalysisService) *ChatService {
	svc := &ChatService{
		model:     cfg.OpenAIModel,
		knowledge: knowledge,
		analysis:  analysis,
	}
	if cfg.OpenAIAPIKey != "" {
		svc.client = openai.NewClient(cfg.OpenAIAPIKey)
	}
	return svc
}

// Stream sends the conversation to the model and invokes onDelta for
// every content chunk as it arrives. Returns once the stream is done or
// onDelta reports an error (e.g. the client disconnected).
func (s *ChatService) Stream(ctx context.Context, req ChatRequest, onDelta func(chunk string) error) error {
	if s.client == nil {
		return ErrAssistantNotConfigured
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: s.BuildSystemPrompt(ctx, req),
	})
	for _, msg := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	stream, err := s.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:    s.model,
		Messages: messages,
		Stream:   true,
	})
	if err != nil {
		return err
	}
	defer stream.Close()

	for {
		response, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if len(response.Choices) == 0 {
			continue
		}
		if chunk := response.Choices[0].Delta.Content; chunk != "" {
			if err := onDelta(chunk); err != nil {
				return err
			}
		}
	}
}

// BuildSystemPrompt assembles the system prompt for one request: persona,
// mode section, live traffic data and knowledge-base context.
func (s *ChatService) BuildSystemPrompt(ctx context.Context, req ChatRequest) string {
	prompt := baseSystemPrompt

	switch req.Mode {
	case ChatModeColdCall:
		prompt += coldCallSection
		prompt += s.trafficContext(ctx, req.FormData)
	case ChatModeOfferGeneration:
		prompt += offerGenerationSection
	}

	if query := contextQuery(req); query != "" {
		items := s.knowledge.SearchForContext(ctx, query, 5)
		prompt += knowledgeSection(items)
	}

	return prompt
}

// trafficContext analyzes the prospect's website for the cold-call mode.
// A site unknown to the provider or a provider timeout is not an error
// here: the chat proceeds without traffic data.
func (s *ChatService) trafficContext(ctx context.Context, form *ChatFormData) string {
	if form == nil || form.WebsiteURL == "" {
		return ""
	}

	analysis, err := s.analysis.AnalyzeWebsite(ctx, form.WebsiteURL)
	if err != nil {
		var noData *traffic.NoDataError
		var invalid *traffic.InvalidInputError
		switch {
		case errors.As(err, &noData), errors.As(err, &invalid), errors.Is(err, similarweb.ErrTimeout):
			logger.Debug("No traffic data for chat context", "website", form.WebsiteURL, "error", err)
		default:
			logger.Warn("Traffic analysis for chat context failed", "website", form.WebsiteURL, "error", err)
		}
		return ""
	}
	return TrafficSection(analysis)
}

// contextQuery picks the text to search the knowledge base with: the last
// user message, falling back to the form query.
func contextQuery(req ChatRequest) string {
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Content != "" {
			return req.Messages[i].Content
		}
	}
	if req.FormData != nil {
		return req.FormData.Query
	}
	return ""
}
