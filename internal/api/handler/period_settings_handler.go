package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"school-portal/backend/internal/dto"
	"school-portal/backend/internal/service"
	"school-portal/backend/pkg/response"
)

// PeriodSettingsHandler 节次配置模块 Handler
type PeriodSettingsHandler struct {
	svc service.PeriodSettingsService
}

// NewPeriodSettingsHandler 创建 PeriodSettingsHandler 实例
func NewPeriodSettingsHandler(svc service.PeriodSettingsService) *PeriodSettingsHandler {
	return &PeriodSettingsHandler{svc: svc}
}

// GetSettings 读取当前节次配置
// GET /api/v1/period-settings
func (h *PeriodSettingsHandler) GetSettings(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context())
	if err != nil {
		handlePeriodSettingsError(c, err)
		return
	}
	response.OK(c, resp)
}

// UpdateSettings 整体替换节次配置
// PUT /api/v1/period-settings
func (h *PeriodSettingsHandler) UpdateSettings(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePeriodSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 20000, err.Error())
		return
	}

	resp, err := h.svc.Update(c.Request.Context(), &req, userID)
	if err != nil {
		handlePeriodSettingsError(c, err)
		return
	}
	response.OK(c, resp)
}

// handlePeriodSettingsError 统一节次配置模块错误映射
func handlePeriodSettingsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPeriodSettingsNotFound):
		response.NotFound(c, 20001, err.Error())
	case errors.Is(err, service.ErrGridPeriodDuration),
		errors.Is(err, service.ErrGridLunchDuration),
		errors.Is(err, service.ErrGridLunchAfter),
		errors.Is(err, service.ErrGridStartTime):
		response.ErrorWithDetails(c, http.StatusBadRequest, 20002, "节次配置无效", err.Error())
	default:
		response.InternalError(c)
	}
}
