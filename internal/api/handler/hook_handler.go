package handler

import (
	"Hustings/internal/api/dto"
	"Hustings/internal/pkg/response"
	"Hustings/internal/pkg/util"
	"Hustings/internal/service"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HookHandler struct {
	engagementSvc service.EngagementService
}

func NewHookHandler(engagementSvc service.EngagementService) *HookHandler {
	return &HookHandler{engagementSvc: engagementSvc}
}

// EngagementChanged CMS 数据变化回调，丢弃缓存的计数
func (s *HookHandler) EngagementChanged(c *gin.Context) {
	var req dto.EngagementHookDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, service.ErrParamInvalid.Error(), err.Error())
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, service.ErrParamInvalid.Error(), err.Error())
		return
	}

	ctx := c.Request.Context()
	if err := s.engagementSvc.Invalidate(ctx); err != nil {
		response.Error(c, err)
		return
	}
	log.InfoContext(ctx, "engagement invalidated by hook",
		"event", req.Event,
		"collection", req.Collection,
		"keys", len(req.Keys),
	)
	response.SuccessEnvelope(c, nil)
}
