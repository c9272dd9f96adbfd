package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"school-portal/backend/internal/dto"
	"school-portal/backend/internal/service"
	apperrors "school-portal/backend/pkg/errors"
	"school-portal/backend/pkg/response"
)

// TimetableHandler 课表编辑模块 Handler（管理员）
type TimetableHandler struct {
	svc service.TimetableService
}

// NewTimetableHandler 创建 TimetableHandler 实例
func NewTimetableHandler(svc service.TimetableService) *TimetableHandler {
	return &TimetableHandler{svc: svc}
}

// GetGrid 读取班级的编辑器网格
// GET /api/v1/timetable/classes/:classId/grid
func (h *TimetableHandler) GetGrid(c *gin.Context) {
	resp, err := h.svc.GetGrid(c.Request.Context(), c.Param("classId"))
	if err != nil {
		handleTimetableError(c, err)
		return
	}
	response.OK(c, resp)
}

// GetCellDraft 打开格子时的草稿预填
// GET /api/v1/timetable/classes/:classId/cells/:day/:period
func (h *TimetableHandler) GetCellDraft(c *gin.Context) {
	day, period, ok := parseCellParams(c)
	if !ok {
		return
	}

	resp, err := h.svc.GetCellDraft(c.Request.Context(), c.Param("classId"), day, period)
	if err != nil {
		handleTimetableError(c, err)
		return
	}
	response.OK(c, resp)
}

// SaveCell 保存格子（空格子新建，已有条目覆盖）
// PUT /api/v1/timetable/classes/:classId/cells/:day/:period
func (h *TimetableHandler) SaveCell(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	day, period, ok := parseCellParams(c)
	if !ok {
		return
	}

	var req dto.SaveCellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 21000, err.Error())
		return
	}

	resp, err := h.svc.SaveCell(c.Request.Context(), c.Param("classId"), day, period, &req, userID)
	if err != nil {
		handleTimetableError(c, err)
		return
	}
	response.OK(c, resp)
}

// DeleteEntry 删除课表条目，返回所属班级回读的网格
// DELETE /api/v1/timetable/entries/:id
func (h *TimetableHandler) DeleteEntry(c *gin.Context) {
	resp, err := h.svc.DeleteEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleTimetableError(c, err)
		return
	}
	response.OK(c, resp)
}

// parseCellParams 解析路径中的 :day / :period
func parseCellParams(c *gin.Context) (int, int, bool) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		response.BadRequest(c, 21001, "星期参数无效")
		return 0, 0, false
	}
	period, err := strconv.Atoi(c.Param("period"))
	if err != nil {
		response.BadRequest(c, 21001, "节次参数无效")
		return 0, 0, false
	}
	return day, period, true
}

// handleTimetableError 统一课表编辑模块错误映射
func handleTimetableError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTimetableClassNotFound),
		errors.Is(err, service.ErrTimetableSubjectNotFound),
		errors.Is(err, service.ErrTimetableTeacherNotFound):
		response.NotFound(c, 21002, err.Error())
	case errors.Is(err, service.ErrTimetableEntryNotFound):
		response.NotFound(c, 21003, err.Error())
	case errors.Is(err, service.ErrTimetableCellIsLunch),
		errors.Is(err, service.ErrTimetableCellOutOfRange),
		errors.Is(err, service.ErrTimetableDraftIncomplete):
		response.ErrorWithDetails(c, http.StatusBadRequest, 21004, "格子或草稿无效", err.Error())
	case errors.Is(err, apperrors.ErrOptimisticLock):
		response.Conflict(c, 21005, err.Error())
	case errors.Is(err, service.ErrPeriodSettingsNotFound):
		response.NotFound(c, 20001, err.Error())
	default:
		response.InternalError(c)
	}
}
