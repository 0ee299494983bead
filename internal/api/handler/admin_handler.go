package handler

import (
	"Hustings/internal/pkg/consts"
	"Hustings/internal/pkg/response"
	"Hustings/internal/service"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	engagementSvc service.EngagementService
}

func NewAdminHandler(engagementSvc service.EngagementService) *AdminHandler {
	return &AdminHandler{engagementSvc: engagementSvc}
}

// GetEngagement 全部候选人的互动明细
func (s *AdminHandler) GetEngagement(c *gin.Context) {
	all, err := s.engagementSvc.GetEngagement(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessEnvelope(c, all)
}

// RefreshEngagement 重新拉取并写入缓存
func (s *AdminHandler) RefreshEngagement(c *gin.Context) {
	ctx := c.Request.Context()
	res, err := s.engagementSvc.Refresh(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	log.InfoContext(ctx, "engagement refreshed by admin",
		"user_id", c.GetString(consts.CtxUserID),
		"candidates", res.Candidates,
	)
	response.SuccessEnvelope(c, res)
}
