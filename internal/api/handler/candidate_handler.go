package handler

import (
	"Hustings/internal/pkg/response"
	"Hustings/internal/service"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	engagementSvc service.EngagementService
}

func NewCandidateHandler(engagementSvc service.EngagementService) *CandidateHandler {
	return &CandidateHandler{engagementSvc: engagementSvc}
}

// GetTopCandidates 互动得分前 10 的候选人
func (s *CandidateHandler) GetTopCandidates(c *gin.Context) {
	top, err := s.engagementSvc.GetTopCandidates(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, top)
}

// GetPanel 每个职位得分最高的候选人
func (s *CandidateHandler) GetPanel(c *gin.Context) {
	panel, err := s.engagementSvc.GetPanel(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, panel)
}
