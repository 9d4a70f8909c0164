package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mbenve9198/bdr-tool-api/internal/services"
)

type JobHandler struct {
	jobService *services.JobService
}

func NewJobHandler(jobSvc *services.JobService) *JobHandler {
	return &JobHandler{jobService: jobSvc}
}

// Status returns statistics about background jobs (active, completed,
// failed, queue length).
func (h *JobHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.jobService.Stats())
}
