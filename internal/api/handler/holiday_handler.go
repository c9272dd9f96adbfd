package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"school-portal/backend/internal/dto"
	"school-portal/backend/internal/service"
	"school-portal/backend/pkg/response"
)

// HolidayHandler 假期模块 Handler
type HolidayHandler struct {
	svc service.HolidayService
}

// NewHolidayHandler 创建 HolidayHandler 实例
func NewHolidayHandler(svc service.HolidayService) *HolidayHandler {
	return &HolidayHandler{svc: svc}
}

// ListHolidays 列出全部假期区间
// GET /api/v1/holidays
func (h *HolidayHandler) ListHolidays(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		handleHolidayError(c, err)
		return
	}
	response.OK(c, resp)
}

// CreateHoliday 创建假期区间
// POST /api/v1/holidays
func (h *HolidayHandler) CreateHoliday(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 23000, err.Error())
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		handleHolidayError(c, err)
		return
	}
	response.Created(c, resp)
}

// DeleteHoliday 删除假期区间
// DELETE /api/v1/holidays/:id
func (h *HolidayHandler) DeleteHoliday(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleHolidayError(c, err)
		return
	}
	response.OK(c, nil)
}

// handleHolidayError 统一假期模块错误映射
func handleHolidayError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrHolidayNotFound):
		response.NotFound(c, 23001, err.Error())
	case errors.Is(err, service.ErrHolidayDateInvalid),
		errors.Is(err, service.ErrHolidayRangeInvalid):
		response.ErrorWithDetails(c, http.StatusBadRequest, 23002, "假期区间无效", err.Error())
	default:
		response.InternalError(c)
	}
}
