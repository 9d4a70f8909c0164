package services

import (
	"github.com/Mbenve9198/bdr-tool-api/internal/clients/backend"
	"github.com/Mbenve9198/bdr-tool-api/internal/clients/similarweb"
	"github.com/Mbenve9198/bdr-tool-api/internal/config"
	"github.com/Mbenve9198/bdr-tool-api/internal/jobs"
)

// Services holds all service instances
type Services struct {
	Analysis  *AnalysisService
	Knowledge *KnowledgeService
	Prospect  *ProspectService
	Chat      *ChatService
	Export    *ExportService
	Brief     *BriefService
	Job       *JobService
}

// NewServices creates all service instances
func NewServices(provider *similarweb.Client, backendAPI *backend.Client, worker *jobs.Worker, cfg *config.Config) (*Services, error) {
	analysisSvc := NewAnalysisService(provider, backendAPI, worker, cfg)
	knowledgeSvc := NewKnowledgeService(backendAPI)

	briefSvc, err := NewBriefService()
	if err != nil {
		return nil, err
	}

	return &Services{
		Analysis:  analysisSvc,
		Knowledge: knowledgeSvc,
		Prospect:  NewProspectService(backendAPI),
		Chat:      NewChatService(cfg, knowledgeSvc, analysisSvc),
		Export:    NewExportService(),
		Brief:     briefSvc,
		Job:       NewJobService(worker),
	}, nil
}
