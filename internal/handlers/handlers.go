package handlers

import (
	"github.com/Mbenve9198/bdr-tool-api/internal/services"
)

// Handlers holds all handler instances
type Handlers struct {
	Health    *HealthHandler
	Analysis  *AnalysisHandler
	Knowledge *KnowledgeHandler
	Prospect  *ProspectHandler
	Chat      *ChatHandler
	Job       *JobHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(),
		Analysis:  NewAnalysisHandler(svcs.Analysis),
		Knowledge: NewKnowledgeHandler(svcs.Knowledge),
		Prospect:  NewProspectHandler(svcs.Prospect, svcs.Export, svcs.Brief),
		Chat:      NewChatHandler(svcs.Chat),
		Job:       NewJobHandler(svcs.Job),
	}
}
