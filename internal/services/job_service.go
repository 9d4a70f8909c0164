package services

import "github.com/Mbenve9198/bdr-tool-api/internal/jobs"

// JobService exposes the background worker's counters for the ops endpoint.
type JobService struct {
	worker *jobs.Worker
}

func NewJobService(worker *jobs.Worker) *JobService {
	return &JobService{worker: worker}
}

func (s *JobService) Stats() jobs.WorkerStats {
	return s.worker.GetStats()
}
